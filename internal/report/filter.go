package report

import (
	"sort"
	"strings"

	"github.com/tkadlec/conversions-backend/internal/dto"
	"github.com/tkadlec/conversions-backend/internal/models"
)

// Filter applies the table predicates to the conversion list, ANDed: search
// as case-insensitive substring of shop item name or id, click source as
// exact match, bidded as the tri-state flag. Empty criteria pass everything.
// Order-preserving; rows are never mutated.
func Filter(rows []models.Conversion, c dto.FilterCriteria) []models.Conversion {
	search := strings.ToLower(strings.TrimSpace(c.Search))
	clickSource := strings.TrimSpace(c.ClickSource)
	bidded := strings.TrimSpace(c.Bidded)

	out := make([]models.Conversion, 0, len(rows))
	for _, r := range rows {
		if search != "" {
			name := strings.ToLower(r.ShopItemName)
			id := strings.ToLower(r.ShopItemID)
			if !strings.Contains(name, search) && !strings.Contains(id, search) {
				continue
			}
		}
		if clickSource != "" && r.ClickSource != clickSource {
			continue
		}
		if bidded == "true" && !r.OnBiddedPosition {
			continue
		}
		if bidded == "false" && r.OnBiddedPosition {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ClickSources lists the distinct non-empty click source values, sorted, for
// the filter dropdown.
func ClickSources(rows []models.Conversion) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range rows {
		if r.ClickSource == "" || seen[r.ClickSource] {
			continue
		}
		seen[r.ClickSource] = true
		out = append(out, r.ClickSource)
	}
	sort.Strings(out)
	return out
}
