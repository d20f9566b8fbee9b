package report

import (
	"strconv"
	"strings"

	"github.com/tkadlec/conversions-backend/internal/models"
)

// csvColumns is the fixed export column set, in order. The export always
// covers the whole filtered/grouped/sorted set, not the visible page.
var csvColumns = []string{
	"shop_item_name",
	"visits_total",
	"costs_with_vat_total",
	"orders_total",
	"revenue_total",
	"shop_item_id",
}

// ToCSV renders product rows as CSV: header row, fields quoted only when
// they contain a comma, quote or newline (embedded quotes doubled), rows
// joined by \n with no trailing newline. The BOM for spreadsheet apps is the
// download handler's business, not the serializer's.
func ToCSV(rows []models.ProductRow) string {
	var b strings.Builder
	b.WriteString(strings.Join(csvColumns, ","))

	for _, r := range rows {
		fields := []string{
			r.ShopItemName,
			formatNumber(r.VisitsTotal),
			formatNumber(r.CostsWithVATTotal),
			formatNumber(r.OrdersTotal),
			formatNumber(r.RevenueTotal),
			r.ShopItemID,
		}
		b.WriteByte('\n')
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(csvField(f))
		}
	}
	return b.String()
}

func csvField(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// formatNumber renders a metric value the shortest way that round-trips,
// matching how the table prints raw values (12 not 12.00, 12.5 not 12.50).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
