// internal/domain/catalog/browse.go
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder enumerates the orderings the shopping page offers
type SortOrder string

// Supported sort orders
const (
	SortDefault   SortOrder = "default"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortNameAsc   SortOrder = "name_asc"
	SortNameDesc  SortOrder = "name_desc"
)

// DefaultPriceCeiling is the slider bound shown when the catalog is empty
const DefaultPriceCeiling int64 = 65000

// BrowseRequest carries the shopping page filter state
type BrowseRequest struct {
	Search   string    `form:"search"`
	MaxPrice int64     `form:"max_price"`
	Sort     SortOrder `form:"sort"`
}

// BrowseResult is the filtered, ordered product view plus the filter bounds
// that were actually applied.
type BrowseResult struct {
	Products     []Product `json:"products"`
	PriceCeiling int64     `json:"price_ceiling"`
	MaxPrice     int64     `json:"max_price"`
}

// PriceCeiling returns the upper bound of the price filter: the maximum price
// across all products, or DefaultPriceCeiling for an empty catalog. Prices are
// whole currency units, so the ceiling is exactly the maximum.
func PriceCeiling(products []Product) int64 {
	if len(products) == 0 {
		return DefaultPriceCeiling
	}
	ceiling := products[0].Price
	for _, p := range products[1:] {
		if p.Price > ceiling {
			ceiling = p.Price
		}
	}
	return ceiling
}

// ClampMaxPrice bounds a requested max price to [0, ceiling]. A selection that
// outlives a catalog change must come down to the new ceiling.
func ClampMaxPrice(maxPrice, ceiling int64) int64 {
	if maxPrice < 0 {
		return 0
	}
	if maxPrice > ceiling {
		return ceiling
	}
	return maxPrice
}

// Browse filters and orders a product list for the shopping page. The input
// slice is never mutated; sorting is stable so equal keys keep catalog order.
// An empty result is a valid, displayable state.
func Browse(products []Product, req BrowseRequest) BrowseResult {
	ceiling := PriceCeiling(products)
	maxPrice := ClampMaxPrice(req.MaxPrice, ceiling)
	search := strings.ToLower(strings.TrimSpace(req.Search))

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Price > maxPrice {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, req.Sort)

	return BrowseResult{
		Products:     filtered,
		PriceCeiling: ceiling,
		MaxPrice:     maxPrice,
	}
}

// IsValidSortOrder reports whether the given value is a supported sort order
func IsValidSortOrder(order SortOrder) bool {
	switch order {
	case SortDefault, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return true
	}
	return false
}

func sortProducts(products []Product, order SortOrder) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNameAsc:
		cl := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return cl.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortNameDesc:
		cl := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return cl.CompareString(products[i].Name, products[j].Name) > 0
		})
	default:
		// catalog order
	}
}
