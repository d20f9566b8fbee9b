package report

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tkadlec/conversions-backend/internal/dto"
	"github.com/tkadlec/conversions-backend/internal/models"
)

// columnValue reads one sortable column off a product row. Numeric columns
// yield float64, identity columns string; the comparator picks its mode from
// the value type.
var columnValue = map[string]func(models.ProductRow) any{
	dto.ColShopItemName:      func(r models.ProductRow) any { return r.ShopItemName },
	dto.ColShopItemID:        func(r models.ProductRow) any { return r.ShopItemID },
	dto.ColVisitsTotal:       func(r models.ProductRow) any { return r.VisitsTotal },
	dto.ColCostsWithVATTotal: func(r models.ProductRow) any { return r.CostsWithVATTotal },
	dto.ColOrdersTotal:       func(r models.ProductRow) any { return r.OrdersTotal },
	dto.ColRevenueTotal:      func(r models.ProductRow) any { return r.RevenueTotal },
}

// SortColumn validates a column id, falling back to the default column.
func SortColumn(column string) string {
	if _, ok := columnValue[column]; ok {
		return column
	}
	return dto.DefaultSortColumn
}

// Sort orders product rows by one column. Numbers compare numerically,
// strings under Czech collation. Stable: ties keep their input order. The
// input slice is left untouched; a new ordering is returned.
func Sort(rows []models.ProductRow, column string, desc bool) []models.ProductRow {
	value := columnValue[SortColumn(column)]
	coll := collate.New(language.Czech)

	out := make([]models.ProductRow, len(rows))
	copy(out, rows)

	sort.SliceStable(out, func(i, j int) bool {
		c := compareValues(coll, value(out[i]), value(out[j]))
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compareValues(coll *collate.Collator, a, b any) int {
	na, aNum := a.(float64)
	nb, bNum := b.(float64)
	if aNum && bNum {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	return coll.CompareString(toString(a), toString(b))
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return formatNumber(v.(float64))
}
