// Package model holds the review and reply records shared by the store,
// the collection engine and the API.
package model

// BrandReplyAuthor is the reserved author name for official brand replies.
// Views render replies by this author with a distinct badge.
const BrandReplyAuthor = "Maska Team"

// A Review represents a submitted customer review. The JSON field names
// double as the persisted blob layout, so they must not change without a
// storage migration.
type Review struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Rating       float64 `json:"rating"`
	Text         string  `json:"text"`
	Verified     bool    `json:"verified"`
	CreatedAt    int64   `json:"createdAt"` // epoch milliseconds
	Image        string  `json:"image,omitempty"`
	Email        string  `json:"email,omitempty"`
	HelpfulCount int     `json:"helpfulCount"`
	Replies      []Reply `json:"replies,omitempty"`
}

// A Reply is a threaded response attached to a review. Replies are
// append-only; there is no edit or delete.
type Reply struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}

// HasImage reports whether the review carries an image reference, either an
// asset path or an inline-encoded image.
func (r Review) HasImage() bool {
	return r.Image != ""
}
