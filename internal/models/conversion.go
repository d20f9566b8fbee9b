package models

// Conversion is one normalized click/conversion observation, one row per
// (date, click source, product) as the Heureka report returns them. All
// metric groups are flattened into named numeric fields at load time; the
// value is never mutated afterwards.
type Conversion struct {
	Date             string `json:"date"`
	ClickSource      string `json:"click_source"`
	OnBiddedPosition bool   `json:"on_bidded_position"`
	SatelliteName    string `json:"satellite_name"`
	ProductCardID    string `json:"product_card_id"`
	ShopItemID       string `json:"shop_item_id"`
	ShopItemName     string `json:"shop_item_name"`
	PortalCategoryID string `json:"portal_category_id"`

	// embedded so the metric fields serialize flat, as clients expect them
	Metrics
}

// Metrics holds the five flattened metric families. Visits, orders and
// revenue carry a free sub-total; the two cost families do not (the report
// has no cost on free clicks).
type Metrics struct {
	VisitsTotal     float64 `json:"visits_total"`
	VisitsFree      float64 `json:"visits_free"`
	VisitsBidded    float64 `json:"visits_bidded"`
	VisitsNotBidded float64 `json:"visits_not_bidded"`

	CostsWithVATTotal     float64 `json:"costs_with_vat_total"`
	CostsWithVATBidded    float64 `json:"costs_with_vat_bidded"`
	CostsWithVATNotBidded float64 `json:"costs_with_vat_not_bidded"`

	CostsWithoutVATTotal     float64 `json:"costs_without_vat_total"`
	CostsWithoutVATBidded    float64 `json:"costs_without_vat_bidded"`
	CostsWithoutVATNotBidded float64 `json:"costs_without_vat_not_bidded"`

	OrdersTotal     float64 `json:"orders_total"`
	OrdersFree      float64 `json:"orders_free"`
	OrdersBidded    float64 `json:"orders_bidded"`
	OrdersNotBidded float64 `json:"orders_not_bidded"`

	RevenueTotal     float64 `json:"revenue_total"`
	RevenueFree      float64 `json:"revenue_free"`
	RevenueBidded    float64 `json:"revenue_bidded"`
	RevenueNotBidded float64 `json:"revenue_not_bidded"`
}

// Add sums another metric set into the receiver.
func (m *Metrics) Add(o Metrics) {
	m.VisitsTotal += o.VisitsTotal
	m.VisitsFree += o.VisitsFree
	m.VisitsBidded += o.VisitsBidded
	m.VisitsNotBidded += o.VisitsNotBidded

	m.CostsWithVATTotal += o.CostsWithVATTotal
	m.CostsWithVATBidded += o.CostsWithVATBidded
	m.CostsWithVATNotBidded += o.CostsWithVATNotBidded

	m.CostsWithoutVATTotal += o.CostsWithoutVATTotal
	m.CostsWithoutVATBidded += o.CostsWithoutVATBidded
	m.CostsWithoutVATNotBidded += o.CostsWithoutVATNotBidded

	m.OrdersTotal += o.OrdersTotal
	m.OrdersFree += o.OrdersFree
	m.OrdersBidded += o.OrdersBidded
	m.OrdersNotBidded += o.OrdersNotBidded

	m.RevenueTotal += o.RevenueTotal
	m.RevenueFree += o.RevenueFree
	m.RevenueBidded += o.RevenueBidded
	m.RevenueNotBidded += o.RevenueNotBidded
}
