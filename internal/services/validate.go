package services

import (
	"fmt"
	"regexp"
	"time"

	"github.com/tkadlec/conversions-backend/internal/dto"
	"github.com/tkadlec/conversions-backend/internal/errs"
)

const dateLayout = "2006-01-02"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// parseDate validates a report date: YYYY-MM-DD, a real calendar date, year
// within 2000–2100.
func parseDate(s string) (time.Time, error) {
	if !dateRe.MatchString(s) {
		return time.Time{}, errs.NewValidationError("Špatný formát date. Očekává se YYYY-MM-DD.")
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, errs.NewValidationError("Špatný formát date. Očekává se YYYY-MM-DD.")
	}
	if y := t.Year(); y < 2000 || y > 2100 {
		return time.Time{}, errs.NewValidationError("Špatný formát date. Očekává se YYYY-MM-DD.")
	}
	return t, nil
}

// resolveRange turns load args into an inclusive [from, to] pair. A single
// date is a one-day range; a range requires both ends, ordered, at most
// maxRangeDays long.
func resolveRange(args dto.LoadReportArgs, maxRangeDays int) (from, to time.Time, err error) {
	switch {
	case args.DateFrom != "" || args.DateTo != "":
		if args.DateFrom == "" {
			return from, to, errs.NewValidationError("Parametr date_from je povinný.")
		}
		if args.DateTo == "" {
			return from, to, errs.NewValidationError("Parametr date_to je povinný.")
		}
		if from, err = parseDate(args.DateFrom); err != nil {
			return from, to, err
		}
		if to, err = parseDate(args.DateTo); err != nil {
			return from, to, err
		}
		if from.After(to) {
			return from, to, errs.NewValidationError("Datum Od musí být před nebo rovno Datum Do.")
		}
		if days := int(to.Sub(from).Hours()/24) + 1; days > maxRangeDays {
			return from, to, errs.NewValidationError(fmt.Sprintf("Rozmezí může být maximálně %d dní.", maxRangeDays))
		}
		return from, to, nil

	case args.Date != "":
		if from, err = parseDate(args.Date); err != nil {
			return from, to, err
		}
		return from, from, nil

	default:
		return from, to, errs.NewValidationError("Zadejte rozmezí (Od a Do) nebo jeden den (parametr date).")
	}
}
