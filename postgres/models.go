package postgres

import (
	"time"

	"github.com/uptrace/bun"
)

// A blob is one durable key-value slot. The store's whole dataset lives in
// a single row per key, mirroring the original single-slot storage layout
// rather than a relational review schema.
type blob struct {
	bun.BaseModel `bun:"table:blobs"`

	Key       string    `bun:",pk"`
	Data      []byte    `bun:"data,type:jsonb,notnull"`
	UpdatedAt time.Time `bun:",nullzero,default:now()"`
}
