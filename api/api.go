package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/maska-snacks/review-wall/api/validator"
	"github.com/maska-snacks/review-wall/feed"
	"github.com/maska-snacks/review-wall/model"
	"github.com/maska-snacks/review-wall/stats"
)

// A Store owns the canonical review collection and the helpful map.
type Store interface {
	Reviews() []model.Review
	Helpful() map[string]bool
	AddReview(ctx context.Context, r model.Review) model.Review
	AddReply(ctx context.Context, reviewID, author, text string) (model.Reply, bool)
	ToggleHelpful(ctx context.Context, reviewID string) bool
}

// API provides the REST endpoints for the review wall. The four page
// variants are all clients of the same surface; they differ only in the
// view options and consumption mode they request.
type API struct {
	Logger *slog.Logger
	Store  Store
	Val    *validator.Validator

	// Consumption-mode defaults; zero values fall back to the original
	// page's numbers.
	InitialCount int // reveal mode starting count
	RevealStep   int // reveal mode "show more" step
	PageSize     int // fixed pagination page size

	once sync.Once
	mux  *http.ServeMux
}

const (
	defaultInitialCount = 3
	defaultRevealStep   = 3
	defaultPageSize     = 6
)

func (a *API) setupRoutes() {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /reviews", a.listReviews)
	mux.HandleFunc("GET /reviews/stats", a.reviewStats)
	mux.HandleFunc("POST /reviews", a.createReview)
	mux.HandleFunc("POST /reviews/{reviewID}/replies", a.createReply)
	mux.HandleFunc("POST /reviews/{reviewID}/helpful", a.toggleHelpful)

	a.mux = mux
}

func (a *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.once.Do(a.setupRoutes)
	a.Logger.Info("Request received", "method", r.Method, "path", r.URL.Path)
	a.mux.ServeHTTP(w, r)
}

func (a *API) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.Logger.Error("Could not encode JSON body", "error", err.Error())
	}
}

func (a *API) respondError(w http.ResponseWriter, status int, err error, msg string) {
	type response struct {
		Error string `json:"error"`
	}
	a.Logger.Error("Error", "error", err.Error())
	a.respond(w, status, response{Error: msg})
}

func (a *API) validateBody(w http.ResponseWriter, s any) bool {
	errs := a.Val.ValidateStruct(s)
	type response struct {
		Errors []validator.ValidationError `json:"errors"`
	}

	if len(errs) > 0 {
		a.respond(w, http.StatusBadRequest, &response{
			Errors: errs,
		})
		return false
	}
	return true
}

// reviewItem decorates a review with the viewer's helpful mark.
type reviewItem struct {
	model.Review
	Helpful bool `json:"helpful"`
}

func (a *API) listReviews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := feed.Options{
		Search:          q.Get("q"),
		ImageOnly:       q.Get("images_only") == "true",
		WithImageFilter: q.Has("images_only"),
		VerifiedOnly:    q.Get("verified") == "true",
		Sort:            feed.ParseSortOrder(q.Get("sort")),
	}
	if v := q.Get("rating"); v != "" {
		rating, err := strconv.Atoi(v)
		if err != nil || rating < 0 || rating > 5 {
			a.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid rating %q", v), "Invalid rating filter")
			return
		}
		opts.Rating = rating
	}

	all := a.Store.Reviews()
	filtered := feed.Select(all, opts)
	helpful := a.Store.Helpful()

	items := func(lo, hi int) []reviewItem {
		out := make([]reviewItem, 0, hi-lo)
		for _, rv := range filtered[lo:hi] {
			out = append(out, reviewItem{Review: rv, Helpful: helpful[rv.ID]})
		}
		return out
	}

	// Fixed pagination when a page is requested, incremental reveal
	// otherwise.
	if q.Has("page") {
		type response struct {
			Reviews      []reviewItem `json:"reviews"`
			Total        int          `json:"total"`
			OverallTotal int          `json:"overall_total"`
			Page         int          `json:"page"`
			TotalPages   int          `json:"total_pages"`
		}

		page, err := strconv.Atoi(q.Get("page"))
		if err != nil {
			a.respondError(w, http.StatusBadRequest, err, "Invalid page")
			return
		}
		size := a.PageSize
		if size == 0 {
			size = defaultPageSize
		}
		if v := q.Get("page_size"); v != "" {
			size, err = strconv.Atoi(v)
			if err != nil || size < 1 {
				a.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid page_size %q", v), "Invalid page size")
				return
			}
		}

		pager := feed.NewPager(size)
		pager.Set(page)
		lo, hi := pager.Bounds(len(filtered))
		a.respond(w, http.StatusOK, response{
			Reviews:      items(lo, hi),
			Total:        len(filtered),
			OverallTotal: len(all),
			Page:         pager.Page(len(filtered)),
			TotalPages:   pager.TotalPages(len(filtered)),
		})
		return
	}

	type response struct {
		Reviews      []reviewItem `json:"reviews"`
		Total        int          `json:"total"`
		OverallTotal int          `json:"overall_total"`
		Shown        int          `json:"shown"`
		Next         int          `json:"next"`
		CanShowMore  bool         `json:"can_show_more"`
	}

	initial := a.InitialCount
	if initial == 0 {
		initial = defaultInitialCount
	}
	step := a.RevealStep
	if step == 0 {
		step = defaultRevealStep
	}

	reveal := feed.NewReveal(initial, step)
	if v := q.Get("shown"); v != "" {
		shown, err := strconv.Atoi(v)
		if err != nil || shown < 0 {
			a.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid shown %q", v), "Invalid shown count")
			return
		}
		reveal.Show(shown, len(filtered))
	}

	visible := reveal.Visible(len(filtered))
	a.respond(w, http.StatusOK, response{
		Reviews:      items(0, visible),
		Total:        len(filtered),
		OverallTotal: len(all),
		Shown:        visible,
		Next:         reveal.Next(len(filtered)),
		CanShowMore:  reveal.CanShowMore(len(filtered)),
	})
}

func (a *API) reviewStats(w http.ResponseWriter, r *http.Request) {
	type response struct {
		stats.Stats
		Distribution        map[int]int     `json:"distribution"`
		DistributionPercent map[int]float64 `json:"distribution_percent"`
	}

	reviews := a.Store.Reviews()
	summary := stats.Summarize(reviews)
	hist := stats.Histogram(reviews)

	a.respond(w, http.StatusOK, response{
		Stats:               summary,
		Distribution:        hist,
		DistributionPercent: stats.Percentages(hist, summary.Total),
	})
}

func (a *API) createReview(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Name   string  `json:"name" validate:"required,min=2,max=60"`
		Rating float64 `json:"rating" validate:"required,gte=1,lte=5"`
		Text   string  `json:"text" validate:"required,min=8,max=500"`
		Email  string  `json:"email" validate:"omitempty,email"`
		Image  string  `json:"image"`
	}

	var body request
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		a.respondError(w, http.StatusBadRequest, err, "Could not decode request body")
		return
	}

	body.Name = strings.TrimSpace(body.Name)
	body.Text = strings.TrimSpace(body.Text)
	if valid := a.validateBody(w, &body); !valid {
		return
	}

	if err := r.Body.Close(); err != nil {
		a.respondError(w, http.StatusInternalServerError, err, "Could not close request body")
		return
	}

	// Verified is never set by submission; it comes from an order-matching
	// process outside this system.
	review := a.Store.AddReview(r.Context(), model.Review{
		Name:   body.Name,
		Rating: body.Rating,
		Text:   body.Text,
		Email:  strings.TrimSpace(body.Email),
		Image:  body.Image,
	})

	a.respond(w, http.StatusCreated, review)
}

func (a *API) createReply(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Author string `json:"author"`
		Text   string `json:"text"`
	}

	reviewID := r.PathValue("reviewID")
	var body request
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.respondError(w, http.StatusBadRequest, err, "Could not decode request body")
		return
	}
	if err := r.Body.Close(); err != nil {
		a.respondError(w, http.StatusInternalServerError, err, "Invalid request body")
		return
	}

	reply, ok := a.Store.AddReply(r.Context(), reviewID, body.Author, body.Text)
	if !ok {
		// Unknown review or empty text is a silent no-op, not an error.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	a.respond(w, http.StatusCreated, reply)
}

func (a *API) toggleHelpful(w http.ResponseWriter, r *http.Request) {
	type response struct {
		ReviewID string `json:"review_id"`
		Helpful  bool   `json:"helpful"`
	}

	reviewID := r.PathValue("reviewID")
	marked := a.Store.ToggleHelpful(r.Context(), reviewID)

	a.respond(w, http.StatusOK, response{
		ReviewID: reviewID,
		Helpful:  marked,
	})
}
