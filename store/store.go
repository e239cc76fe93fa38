// Package store owns the canonical review collection for a session and its
// best-effort persistence to a durable key-value slot.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/maska-snacks/review-wall/model"
)

// ErrNotFound is returned by a Blob when the key has never been written.
var ErrNotFound = errors.New("blob not found")

// A Blob provides the durable key-value slots the store persists to. A nil
// data write is never issued.
type Blob interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}

// Default blob keys. They match the original storage layout so an existing
// dataset keeps loading across deployments.
const (
	DefaultReviewsKey = "maska_reviews_v1"
	DefaultHelpfulKey = "helpfulReviews"
)

// AnonymousAuthor is used when a reply is submitted without an author name.
const AnonymousAuthor = "Anonymous"

// Store holds the in-memory review collection and the per-session helpful
// map, persisting both after every mutation. All methods are safe for
// concurrent use; each mutation runs to completion before the next is
// admitted.
type Store struct {
	Logger *slog.Logger
	Blob   Blob

	// ReviewsKey and HelpfulKey override the default blob keys when set.
	ReviewsKey string
	HelpfulKey string

	mu      sync.Mutex
	reviews []model.Review
	helpful map[string]bool
}

func (s *Store) reviewsKey() string {
	if s.ReviewsKey != "" {
		return s.ReviewsKey
	}
	return DefaultReviewsKey
}

func (s *Store) helpfulKey() string {
	if s.HelpfulKey != "" {
		return s.HelpfulKey
	}
	return DefaultHelpfulKey
}

// Load rehydrates the collection and helpful map from the blob slots. Any
// failure (missing key, backend error, malformed JSON, wrong shape) falls
// back to the seed, or an empty helpful map, rather than surfacing an
// error.
func (s *Store) Load(ctx context.Context, seed []model.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reviews = append([]model.Review(nil), seed...)
	data, err := s.Blob.Get(ctx, s.reviewsKey())
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		s.Logger.Error("Could not read persisted reviews, using seed", "error", err.Error())
	default:
		var reviews []model.Review
		if err := json.Unmarshal(data, &reviews); err != nil {
			s.Logger.Error("Persisted reviews are malformed, using seed", "error", err.Error())
		} else if reviews == nil {
			// A literal null unmarshals without error but is not an array.
			s.Logger.Error("Persisted reviews are not an array, using seed")
		} else {
			s.reviews = reviews
		}
	}

	s.helpful = make(map[string]bool)
	data, err = s.Blob.Get(ctx, s.helpfulKey())
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		s.Logger.Error("Could not read helpful marks, starting empty", "error", err.Error())
	default:
		var helpful map[string]bool
		if err := json.Unmarshal(data, &helpful); err != nil {
			s.Logger.Error("Helpful marks are malformed, starting empty", "error", err.Error())
		} else if helpful != nil {
			s.helpful = helpful
		}
	}
}

// Reviews returns a copy of the collection in storage order. Storage order
// is most-recent-submission-first and is not a rendering order; views sort
// explicitly via the feed package.
func (s *Store) Reviews() []model.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Review(nil), s.reviews...)
}

// AddReview prepends the review to the collection and persists. A blank ID
// or zero timestamp is filled in, matching the creation contract.
func (s *Store) AddReview(ctx context.Context, r model.Review) model.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().UnixMilli()
	}
	s.reviews = append([]model.Review{r}, s.reviews...)
	s.saveReviews(ctx)
	return r
}

// AddReply appends a reply with a fresh id and current timestamp to the
// review's thread and persists. An unknown review id or an empty trimmed
// text is a silent no-op, reported through ok.
func (s *Store) AddReply(ctx context.Context, reviewID, author, text string) (reply model.Reply, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Reply{}, false
	}
	if author = strings.TrimSpace(author); author == "" {
		author = AnonymousAuthor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reviews {
		if s.reviews[i].ID != reviewID {
			continue
		}
		reply = model.Reply{
			ID:        uuid.NewString(),
			Author:    author,
			Text:      text,
			CreatedAt: time.Now().UnixMilli(),
		}
		s.reviews[i].Replies = append(s.reviews[i].Replies, reply)
		s.saveReviews(ctx)
		return reply, true
	}
	return model.Reply{}, false
}

// ToggleHelpful flips the helpful mark for the review id and persists the
// map, returning the new state. Marks are keyed per review id only; the
// design is single-session, there is no per-user scoping.
func (s *Store) ToggleHelpful(ctx context.Context, reviewID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.helpful == nil {
		s.helpful = make(map[string]bool)
	}
	s.helpful[reviewID] = !s.helpful[reviewID]
	marked := s.helpful[reviewID]

	data, err := json.Marshal(s.helpful)
	if err != nil {
		s.Logger.Error("Could not encode helpful marks", "error", err.Error())
		return marked
	}
	if err := s.Blob.Set(ctx, s.helpfulKey(), data); err != nil {
		s.Logger.Error("Could not persist helpful marks", "error", err.Error())
	}
	return marked
}

// Helpful returns a copy of the helpful map for rendering.
func (s *Store) Helpful() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]bool, len(s.helpful))
	for id, marked := range s.helpful {
		out[id] = marked
	}
	return out
}

// saveReviews persists the full collection, best effort. Write failures are
// logged and swallowed: the in-memory state stays correct for the session
// and the next load simply misses unsaved changes. Callers must hold mu.
func (s *Store) saveReviews(ctx context.Context) {
	data, err := json.Marshal(s.reviews)
	if err != nil {
		s.Logger.Error("Could not encode reviews", "error", err.Error())
		return
	}
	if err := s.Blob.Set(ctx, s.reviewsKey(), data); err != nil {
		s.Logger.Error("Could not persist reviews", "error", err.Error())
	}
}
