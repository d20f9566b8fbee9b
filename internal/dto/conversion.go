package dto

// RawConversion is one record as the Heureka reports API returns it. The
// upstream feed is loosely typed: metric values arrive as numbers, numeric
// strings or null, shop item ids as numbers or strings, the bidded flag as
// whatever the ingest pipeline emitted that day. Everything here is
// optional-safe; normalization decides what the values mean.
type RawConversion struct {
	Date             string          `json:"date"`
	ClickSource      string          `json:"click_source"`
	OnBiddedPosition any             `json:"on_bidded_position"`
	SatelliteName    string          `json:"satellite_name"`
	ProductCardID    string          `json:"product_card_id"`
	ShopItem         *RawShopItem    `json:"shop_item"`
	PortalCategory   *RawIDRef       `json:"portal_category"`
	Visits           *RawMetricGroup `json:"visits"`
	CostsWithVAT     *RawMetricGroup `json:"costs_with_vat"`
	CostsWithoutVAT  *RawMetricGroup `json:"costs_without_vat"`
	Orders           *RawMetricGroup `json:"orders"`
	Revenue          *RawMetricGroup `json:"revenue"`
}

// RawMetricGroup is a nested metric breakdown. Cost groups never carry free.
type RawMetricGroup struct {
	Total     any `json:"total"`
	Free      any `json:"free"`
	Bidded    any `json:"bidded"`
	NotBidded any `json:"not_bidded"`
}

// RawShopItem carries the shop item identity; id may be a number or string.
type RawShopItem struct {
	ID   any    `json:"id"`
	Name string `json:"name"`
}

// RawIDRef is a bare id reference (portal category).
type RawIDRef struct {
	ID any `json:"id"`
}

// ConversionsPayload is the provider response body.
type ConversionsPayload struct {
	Conversions []RawConversion `json:"conversions"`
}
