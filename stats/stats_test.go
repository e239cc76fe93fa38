package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/maska-snacks/review-wall/model"
)

func ratings(vals ...float64) []model.Review {
	out := make([]model.Review, len(vals))
	for i, v := range vals {
		out[i] = model.Review{Rating: v}
	}
	return out
}

func percent(n int) *int {
	return &n
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		reviews []model.Review
		want    Stats
	}{
		{
			name:    "Empty",
			reviews: nil,
			want:    Stats{},
		},
		{
			name:    "Example",
			reviews: ratings(5, 5, 4, 3, 1),
			want:    Stats{Average: 3.6, Total: 5, VerifiedPercent: percent(0)},
		},
		{
			name: "VerifiedAndImages",
			reviews: []model.Review{
				{Rating: 5, Verified: true, Image: "/a.jpg"},
				{Rating: 4, Verified: true},
				{Rating: 3},
			},
			want: Stats{Average: 4, Total: 3, Verified: 2, WithImages: 1, VerifiedPercent: percent(67)},
		},
		{
			name:    "AverageRoundsToOneDecimal",
			reviews: ratings(5, 4), // 4.5 stays 4.5
			want:    Stats{Average: 4.5, Total: 2, VerifiedPercent: percent(0)},
		},
		{
			name:    "AllVerifiedIsHundredPercent",
			reviews: []model.Review{{Rating: 2, Verified: true}},
			want:    Stats{Average: 2, Total: 1, Verified: 1, VerifiedPercent: percent(100)},
		},
		{
			// Zero percent is reported, not omitted; only the empty
			// collection leaves VerifiedPercent unset.
			name:    "NoneVerifiedIsZeroPercent",
			reviews: ratings(4, 4, 4),
			want:    Stats{Average: 4, Total: 3, VerifiedPercent: percent(0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.reviews)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHistogram(t *testing.T) {
	tests := []struct {
		name    string
		reviews []model.Review
		want    map[int]int
	}{
		{
			name:    "Empty",
			reviews: nil,
			want:    map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
		},
		{
			name:    "Example",
			reviews: ratings(5, 5, 4, 3, 1),
			want:    map[int]int{1: 1, 2: 0, 3: 1, 4: 1, 5: 2},
		},
		{
			name:    "HalfRoundsUp",
			reviews: ratings(4.5, 3.4, 2.5),
			want:    map[int]int{1: 0, 2: 0, 3: 2, 4: 0, 5: 1},
		},
		{
			name: "OutOfRangeDropped",
			// Should not occur given the rating invariant, but a corrupt
			// blob could carry it.
			reviews: ratings(0.2, 6, 5),
			want:    map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Histogram(tt.reviews)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Histogram mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPercentages(t *testing.T) {
	hist := map[int]int{1: 1, 2: 0, 3: 1, 4: 1, 5: 2}
	got := Percentages(hist, 5)
	want := map[int]float64{1: 20, 2: 0, 3: 20, 4: 20, 5: 40}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Percentages mismatch (-want +got):\n%s", diff)
	}
}

func TestPercentages_zeroTotal(t *testing.T) {
	got := Percentages(map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, 0)
	for b, pct := range got {
		if pct != 0 {
			t.Errorf("Bucket %d percent = %v, want 0 for empty collection", b, pct)
		}
	}
}
