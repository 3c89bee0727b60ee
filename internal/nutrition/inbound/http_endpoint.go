package inbound

import (
	"time"

	"github.com/muhdemir/lifehub/internal/nutrition/entity"
	"github.com/muhdemir/lifehub/internal/nutrition/usecase"
	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/pkg/router"
)

const dateLayout = "2006-01-02"

// HTTPEndpoint exposes HTTP handlers for product lookup and the meal log.
type HTTPEndpoint struct {
	uc uc
}

// Lookup resolves a barcode or free-text query to nutrition facts.
// An empty query is a miss, not an error.
func (h *HTTPEndpoint) Lookup(r *router.Request) (any, error) {
	q := r.GetQuery("q")
	if q == "" {
		return newLookupResponse(false, nil), nil
	}

	mode := usecase.LookupMode(r.GetQuery("mode"))
	if mode == "" {
		mode = usecase.LookupModeText
	}

	resp, err := h.uc.Lookup(r.Context(), usecase.LookupInput{Query: q, Mode: mode})
	if err != nil {
		return nil, err
	}

	return newLookupResponse(resp.Found, resp.Results), nil
}

func (h *HTTPEndpoint) MealCreate(r *router.Request) (any, error) {
	var req MealCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	eatenOn, err := parseDate(req.EatenOn)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.MealCreate(r.Context(), usecase.MealCreateInput{
		Name:     req.Name,
		EatenOn:  eatenOn,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	})
	if err != nil {
		return nil, err
	}

	return newMealResponse(resp.Meal), nil
}

func (h *HTTPEndpoint) MealList(r *router.Request) (any, error) {
	date, err := queryDate(r)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.MealList(r.Context(), usecase.MealListInput{Date: date})
	if err != nil {
		return nil, err
	}

	meals := make([]MealResponse, 0, len(resp.Meals))
	for _, m := range resp.Meals {
		meals = append(meals, newMealResponse(m))
	}

	return MealListResponse{Meals: meals}, nil
}

func (h *HTTPEndpoint) MealDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.MealDelete(r.Context(), usecase.MealDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return MealDeleteResponse{}, nil
}

func (h *HTTPEndpoint) Summary(r *router.Request) (any, error) {
	date, err := queryDate(r)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.Summary(r.Context(), usecase.SummaryInput{Date: date})
	if err != nil {
		return nil, err
	}

	return summaryResponse(resp.Summary), nil
}

func summaryResponse(sum entity.DailySummary) SummaryResponse {
	return SummaryResponse{
		Date:     sum.Date.Format(dateLayout),
		Meals:    sum.Meals,
		Calories: sum.Calories,
		Protein:  sum.Protein,
		Carbs:    sum.Carbs,
		Fat:      sum.Fat,
	}
}

// queryDate reads the date query parameter, defaulting to today.
func queryDate(r *router.Request) (time.Time, error) {
	date, err := r.GetQueryDate("date", dateLayout)
	if err != nil {
		return time.Time{}, err
	}
	if date.IsZero() {
		now := time.Now().UTC()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	return date, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	date, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, goerror.NewInvalidFormat("eaten_on must be YYYY-MM-DD")
	}

	return date, nil
}
