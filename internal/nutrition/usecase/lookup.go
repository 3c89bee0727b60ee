package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/muhdemir/lifehub/internal/nutrition/entity"
	"github.com/muhdemir/lifehub/internal/pkg/goerror"
)

const localSearchLimit = 3

type LookupMode string

const (
	LookupModeBarcode LookupMode = "barcode"
	LookupModeText    LookupMode = "text"
)

type LookupInput struct {
	Query string     `validate:"required"`
	Mode  LookupMode `validate:"required,oneof=barcode text"`
}

type LookupOutput struct {
	Found   bool
	Results []entity.LookupResult
}

// Lookup resolves a barcode or free-text query to nutrition facts.
//
// The operation never fails towards the caller for upstream or storage
// reasons; every such failure is logged and degrades to a miss or a smaller
// result set. Only an invalid input is an error.
func (s *Usecase) Lookup(ctx context.Context, in LookupInput) (*LookupOutput, error) {
	ctx, span := s.startSpan(ctx, "Lookup")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	if in.Mode == LookupModeBarcode {
		return s.lookupBarcode(ctx, in.Query), nil
	}

	return s.lookupText(ctx, in.Query), nil
}

func (s *Usecase) lookupBarcode(ctx context.Context, barcode string) *LookupOutput {
	cached, err := s.repoDB.GetProductByBarcode(ctx, barcode)
	if err == nil {
		return &LookupOutput{
			Found:   true,
			Results: []entity.LookupResult{productToResult(*cached)},
		}
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "product cache read failed, falling through to api", "error", err)
	}

	remote, err := s.foodAPI.GetProduct(ctx, barcode)
	if err != nil {
		if !errors.Is(err, goerror.ErrNotFound) {
			slog.WarnContext(ctx, "product api lookup failed", "barcode", barcode, "error", err)
		}

		return &LookupOutput{Found: false, Results: []entity.LookupResult{}}
	}

	s.cacheProduct(ctx, barcode, *remote)

	return &LookupOutput{
		Found:   true,
		Results: []entity.LookupResult{*remote},
	}
}

func (s *Usecase) lookupText(ctx context.Context, query string) *LookupOutput {
	results := []entity.LookupResult{}

	local, err := s.repoDB.SearchProductsByName(ctx, query, localSearchLimit)
	if err != nil {
		slog.WarnContext(ctx, "product cache search failed", "error", err)
	}
	for _, p := range local {
		results = append(results, productToResult(p))
	}

	remote, err := s.foodAPI.Search(ctx, query)
	if err != nil {
		slog.WarnContext(ctx, "product api search failed", "query", query, "error", err)
	}

	// Remote rows without a caloric value are noise for a food log. Local
	// and remote rows are not deduplicated against each other.
	for _, r := range remote {
		if r.Calories <= 0 {
			continue
		}
		results = append(results, r)
	}

	return &LookupOutput{
		Found:   len(results) > 0,
		Results: results,
	}
}

// cacheProduct persists an api result under its barcode. The cache is
// write-once; a concurrent insert of the same barcode is not an error.
func (s *Usecase) cacheProduct(ctx context.Context, barcode string, r entity.LookupResult) {
	err := s.repoDB.CreateProduct(ctx, entity.Product{
		ID:       s.uid.Generate(),
		Barcode:  barcode,
		Name:     r.Name,
		Brand:    r.Brand,
		Calories: r.Calories,
		Protein:  r.Protein,
		Carbs:    r.Carbs,
		Fat:      r.Fat,
	})
	if err != nil && !errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "failed to cache product", "barcode", barcode, "error", err)
	}
}

func productToResult(p entity.Product) entity.LookupResult {
	return entity.LookupResult{
		Source:   entity.SourceLocal,
		Barcode:  p.Barcode,
		Name:     p.Name,
		Brand:    p.Brand,
		Calories: p.Calories,
		Protein:  p.Protein,
		Carbs:    p.Carbs,
		Fat:      p.Fat,
	}
}
