// Package feed implements the review collection engine: a pure
// filter/sort pipeline over a review collection plus the two consumption
// modes the views layer on top of it (incremental reveal and fixed
// pagination).
package feed

import (
	"math"
	"sort"
	"strings"

	"github.com/maska-snacks/review-wall/model"
)

// A SortOrder selects the ordering applied after filtering.
type SortOrder string

const (
	SortNewest  SortOrder = "newest"  // descending createdAt
	SortHighest SortOrder = "highest" // descending rating
	SortLowest  SortOrder = "lowest"  // ascending rating
)

// ParseSortOrder maps a raw string to a SortOrder, falling back to
// SortHighest for anything unrecognised.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortNewest, SortHighest, SortLowest:
		return SortOrder(s)
	default:
		return SortHighest
	}
}

// Options are the user-controlled view options fed into Select.
type Options struct {
	// Search keeps reviews whose text or author name contains the query
	// case-insensitively. Ignored when blank after trimming.
	Search string

	// ImageOnly keeps only reviews carrying an image. It is honoured only
	// when WithImageFilter is set, because not every view exposes the
	// images-only toggle.
	ImageOnly       bool
	WithImageFilter bool

	// Rating keeps only reviews whose rounded rating equals it. 0 disables
	// the filter.
	Rating int

	VerifiedOnly bool

	Sort SortOrder
}

// Select applies the filter pipeline and sort to reviews and returns the
// ordered subset. The pipeline order is fixed: search, image, rating,
// verified, sort. Select never mutates its input and is deterministic for a
// given input.
func Select(reviews []model.Review, opts Options) []model.Review {
	out := make([]model.Review, 0, len(reviews))

	query := strings.ToLower(strings.TrimSpace(opts.Search))
	for _, r := range reviews {
		if query != "" &&
			!strings.Contains(strings.ToLower(r.Text), query) &&
			!strings.Contains(strings.ToLower(r.Name), query) {
			continue
		}
		if opts.WithImageFilter && opts.ImageOnly && !r.HasImage() {
			continue
		}
		if opts.Rating != 0 && RatingBucket(r.Rating) != opts.Rating {
			continue
		}
		if opts.VerifiedOnly && !r.Verified {
			continue
		}
		out = append(out, r)
	}

	// Stable so that equal keys keep their pre-sort relative order and
	// repeated renders with unchanged input stay deterministic.
	switch opts.Sort {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt > out[j].CreatedAt
		})
	case SortLowest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating < out[j].Rating
		})
	default: // SortHighest
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	}

	return out
}

// RatingBucket rounds a rating to its integer star bucket, half up.
func RatingBucket(rating float64) int {
	return int(math.Floor(rating + 0.5))
}
