package report

import (
	"strconv"
	"strings"

	"github.com/tkadlec/conversions-backend/internal/models"
)

// GroupByProduct collapses conversions into one row per product identity,
// summing metric fields. Output order is first-seen order of identities in
// the input; sorting is a separate downstream step.
//
// Identity resolution is the first non-empty of: trimmed product card id,
// "sid_"+shop item id, "n_"+shop item name, "idx_"+position. The fallback
// chain is deliberate policy: records sharing a trimmed product card id
// merge even when their shop items differ, and a record with no identity at
// all stays its own row.
func GroupByProduct(rows []models.Conversion) []models.ProductRow {
	byKey := map[string]*models.ProductRow{}
	var order []string

	for i, r := range rows {
		key := productKey(r, i)
		row, ok := byKey[key]
		if !ok {
			row = &models.ProductRow{
				SatelliteName:    r.SatelliteName,
				ProductCardID:    r.ProductCardID,
				ShopItemID:       r.ShopItemID,
				ShopItemName:     r.ShopItemName,
				PortalCategoryID: r.PortalCategoryID,
			}
			byKey[key] = row
			order = append(order, key)
		}
		row.Add(r.Metrics)
	}

	out := make([]models.ProductRow, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}
	return out
}

func productKey(r models.Conversion, idx int) string {
	if id := strings.TrimSpace(r.ProductCardID); id != "" {
		return id
	}
	if r.ShopItemID != "" {
		return "sid_" + r.ShopItemID
	}
	if r.ShopItemName != "" {
		return "n_" + r.ShopItemName
	}
	return "idx_" + strconv.Itoa(idx)
}
