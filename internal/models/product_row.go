package models

// ProductRow is one product's totals over the whole queried period, produced
// by grouping the filtered conversions on product identity. Descriptive
// fields come from the first conversion seen for the identity; metric fields
// are sums. Recomputed on every filter/group pass, never updated in place.
type ProductRow struct {
	SatelliteName    string `json:"satellite_name"`
	ProductCardID    string `json:"product_card_id"`
	ShopItemID       string `json:"shop_item_id"`
	ShopItemName     string `json:"shop_item_name"`
	PortalCategoryID string `json:"portal_category_id"`

	Metrics
}

// ReportTotals is the period-wide summary over every loaded conversion,
// recomputed whenever a new report is loaded.
type ReportTotals struct {
	Visits          SubTotals  `json:"visits"`
	Orders          SubTotals  `json:"orders"`
	Revenue         SubTotals  `json:"revenue"`
	CostsWithVAT    CostTotals `json:"costs_with_vat"`
	CostsWithoutVAT CostTotals `json:"costs_without_vat"`
}

type SubTotals struct {
	Total     float64 `json:"total"`
	Free      float64 `json:"free"`
	Bidded    float64 `json:"bidded"`
	NotBidded float64 `json:"not_bidded"`
}

type CostTotals struct {
	Total     float64 `json:"total"`
	Bidded    float64 `json:"bidded"`
	NotBidded float64 `json:"not_bidded"`
}
