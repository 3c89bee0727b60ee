package inbound

import (
	"github.com/muhdemir/lifehub/internal/nutrition/entity"
	"github.com/samber/lo"
)

type LookupItem struct {
	Source   string `json:"source"`
	Barcode  string `json:"barcode,omitempty"`
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
}

type LookupResponse struct {
	Found   bool         `json:"found"`
	Results []LookupItem `json:"results"`
}

func newLookupResponse(found bool, results []entity.LookupResult) LookupResponse {
	return LookupResponse{
		Found: found,
		Results: lo.Map(results, func(r entity.LookupResult, _ int) LookupItem {
			return LookupItem{
				Source:   string(r.Source),
				Barcode:  r.Barcode,
				Name:     r.Name,
				Brand:    r.Brand,
				Calories: r.Calories,
				Protein:  r.Protein,
				Carbs:    r.Carbs,
				Fat:      r.Fat,
			}
		}),
	}
}

type MealCreateRequest struct {
	Name     string `json:"name"`
	EatenOn  string `json:"eaten_on"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
}

type MealResponse struct {
	ID       int64  `json:"id,string"`
	Name     string `json:"name"`
	EatenOn  string `json:"eaten_on"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
}

func newMealResponse(m entity.Meal) MealResponse {
	return MealResponse{
		ID:       m.ID,
		Name:     m.Name,
		EatenOn:  m.EatenOn.Format(dateLayout),
		Calories: m.Calories,
		Protein:  m.Protein,
		Carbs:    m.Carbs,
		Fat:      m.Fat,
	}
}

type MealListResponse struct {
	Meals []MealResponse `json:"meals"`
}

type MealDeleteResponse struct{}

func (MealDeleteResponse) Message() string {
	return "Meal deleted"
}

type SummaryResponse struct {
	Date     string `json:"date"`
	Meals    int    `json:"meals"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
}
