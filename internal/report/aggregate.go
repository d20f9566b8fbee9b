package report

import (
	"github.com/tkadlec/conversions-backend/internal/dto"
	"github.com/tkadlec/conversions-backend/internal/models"
	"github.com/tkadlec/conversions-backend/pkg/helpers"
)

// Aggregate sums the five metric families over every conversion in one pass.
// Addition only, so the result does not depend on input order; an empty
// input yields all-zero totals.
func Aggregate(rows []models.Conversion) models.ReportTotals {
	var t models.ReportTotals
	for _, r := range rows {
		t.Visits.Total += r.VisitsTotal
		t.Visits.Free += r.VisitsFree
		t.Visits.Bidded += r.VisitsBidded
		t.Visits.NotBidded += r.VisitsNotBidded

		t.Orders.Total += r.OrdersTotal
		t.Orders.Free += r.OrdersFree
		t.Orders.Bidded += r.OrdersBidded
		t.Orders.NotBidded += r.OrdersNotBidded

		t.Revenue.Total += r.RevenueTotal
		t.Revenue.Free += r.RevenueFree
		t.Revenue.Bidded += r.RevenueBidded
		t.Revenue.NotBidded += r.RevenueNotBidded

		t.CostsWithVAT.Total += r.CostsWithVATTotal
		t.CostsWithVAT.Bidded += r.CostsWithVATBidded
		t.CostsWithVAT.NotBidded += r.CostsWithVATNotBidded

		t.CostsWithoutVAT.Total += r.CostsWithoutVATTotal
		t.CostsWithoutVAT.Bidded += r.CostsWithoutVATBidded
		t.CostsWithoutVAT.NotBidded += r.CostsWithoutVATNotBidded
	}
	return t
}

// DeriveKPIs computes the summary ratios. Each is left nil when its
// denominator is zero, so an undefined ratio is omitted rather than
// reported as 0.
func DeriveKPIs(t models.ReportTotals) dto.KPIs {
	var k dto.KPIs
	if t.CostsWithVAT.Total > 0 {
		k.ROAS = helpers.Ptr(t.Revenue.Total / t.CostsWithVAT.Total)
	}
	if t.Revenue.Total > 0 {
		k.PNO = helpers.Ptr(t.CostsWithVAT.Total / t.Revenue.Total * 100)
	}
	return k
}
