package entity

import "time"

// Source tells where a lookup result came from.
type Source string

const (
	SourceLocal Source = "local"
	SourceAPI   Source = "api"
)

// Product is a food item with its macros per 100g.
//
// Macros are whole numbers: upstream fractions are floored and negative
// values clamped to zero at the edge, so the rest of the code never sees
// anything else.
type Product struct {
	ID        int64
	Barcode   string
	Name      string
	Brand     string
	Calories  int
	Protein   int
	Carbs     int
	Fat       int
	CreatedAt time.Time
}

// LookupResult is one row of a lookup response.
type LookupResult struct {
	Source   Source
	Barcode  string
	Name     string
	Brand    string
	Calories int
	Protein  int
	Carbs    int
	Fat      int
}
