// Package stats computes the summary statistics and rating distribution the
// review views display.
package stats

import (
	"math"

	"github.com/maska-snacks/review-wall/feed"
	"github.com/maska-snacks/review-wall/model"
)

// Stats summarises a review collection. VerifiedPercent is nil for an empty
// collection and set, possibly to zero, for any other; a wall with no
// verified purchases still reports 0%.
type Stats struct {
	Average         float64 `json:"average"` // mean rating, 1 decimal
	Total           int     `json:"total"`
	Verified        int     `json:"verified"`
	WithImages      int     `json:"with_images"`
	VerifiedPercent *int    `json:"verified_percent,omitempty"`
}

// Summarize computes summary statistics over reviews. An empty collection
// yields the zero Stats.
func Summarize(reviews []model.Review) Stats {
	if len(reviews) == 0 {
		return Stats{}
	}

	s := Stats{Total: len(reviews)}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
		if r.Verified {
			s.Verified++
		}
		if r.HasImage() {
			s.WithImages++
		}
	}
	s.Average = math.Round(sum/float64(s.Total)*10) / 10
	pct := int(math.Round(100 * float64(s.Verified) / float64(s.Total)))
	s.VerifiedPercent = &pct
	return s
}

// Histogram buckets reviews by rounded rating. All five buckets are always
// present. Ratings rounding outside 1..5 are dropped; the data model
// guarantees they do not occur, but a corrupt persisted blob could carry
// them.
func Histogram(reviews []model.Review) map[int]int {
	hist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, r := range reviews {
		b := feed.RatingBucket(r.Rating)
		if b >= 1 && b <= 5 {
			hist[b]++
		}
	}
	return hist
}

// Percentages converts histogram counts to percentages of total, all zero
// when total is 0.
func Percentages(hist map[int]int, total int) map[int]float64 {
	out := make(map[int]float64, len(hist))
	for b, n := range hist {
		if total > 0 {
			out[b] = 100 * float64(n) / float64(total)
		} else {
			out[b] = 0
		}
	}
	return out
}
