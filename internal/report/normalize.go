package report

import (
	"strconv"

	"github.com/tkadlec/conversions-backend/internal/dto"
	"github.com/tkadlec/conversions-backend/internal/models"
)

// Normalize flattens one raw provider record into a typed conversion. Total
// function: malformed or missing fields degrade to zero values, never error.
// Partial upstream data is expected and must not halt reporting.
func Normalize(raw dto.RawConversion) models.Conversion {
	c := models.Conversion{
		Date:             raw.Date,
		ClickSource:      raw.ClickSource,
		OnBiddedPosition: truthy(raw.OnBiddedPosition),
		SatelliteName:    raw.SatelliteName,
		ProductCardID:    raw.ProductCardID,
	}

	if raw.ShopItem != nil {
		c.ShopItemID = coerceString(raw.ShopItem.ID)
		c.ShopItemName = raw.ShopItem.Name
	}
	if raw.PortalCategory != nil {
		c.PortalCategoryID = coerceString(raw.PortalCategory.ID)
	}

	if g := raw.Visits; g != nil {
		c.VisitsTotal = num(g.Total)
		c.VisitsFree = num(g.Free)
		c.VisitsBidded = num(g.Bidded)
		c.VisitsNotBidded = num(g.NotBidded)
	}
	if g := raw.CostsWithVAT; g != nil {
		c.CostsWithVATTotal = num(g.Total)
		c.CostsWithVATBidded = num(g.Bidded)
		c.CostsWithVATNotBidded = num(g.NotBidded)
	}
	if g := raw.CostsWithoutVAT; g != nil {
		c.CostsWithoutVATTotal = num(g.Total)
		c.CostsWithoutVATBidded = num(g.Bidded)
		c.CostsWithoutVATNotBidded = num(g.NotBidded)
	}
	if g := raw.Orders; g != nil {
		c.OrdersTotal = num(g.Total)
		c.OrdersFree = num(g.Free)
		c.OrdersBidded = num(g.Bidded)
		c.OrdersNotBidded = num(g.NotBidded)
	}
	if g := raw.Revenue; g != nil {
		c.RevenueTotal = num(g.Total)
		c.RevenueFree = num(g.Free)
		c.RevenueBidded = num(g.Bidded)
		c.RevenueNotBidded = num(g.NotBidded)
	}

	return c
}

// NormalizeAll flattens a whole provider payload, preserving order.
func NormalizeAll(raws []dto.RawConversion) []models.Conversion {
	out := make([]models.Conversion, len(raws))
	for i, raw := range raws {
		out[i] = Normalize(raw)
	}
	return out
}

// num coerces a decoded JSON value to a number. Missing, null, empty-string
// and non-numeric values all become 0.
func num(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int:
		return float64(x)
	case string:
		if x == "" {
			return 0
		}
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// coerceString renders an id that may arrive as a number or string.
func coerceString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	default:
		return ""
	}
}

// truthy interprets the bidded flag the way the upstream feed means it:
// booleans as-is, numbers by non-zero, strings by non-empty, null as false.
func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case float64:
		return x != 0
	case int:
		return x != 0
	case string:
		return x != ""
	case nil:
		return false
	default:
		return true
	}
}
