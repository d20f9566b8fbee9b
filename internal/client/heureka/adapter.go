package heurekaclient

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/tkadlec/conversions-backend/internal/dto"
	"github.com/tkadlec/conversions-backend/internal/errs"
)

const (
	reportsPath    = "/v1/reports/conversions"
	requestTimeout = 30 * time.Second
)

// Adapter talks to the Heureka Conversion measurement reports API. Heureka
// publishes no Go SDK, so this is a thin hand-rolled client; the API key is
// attached server-side and never leaves this process.
type Adapter struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewAdapter(baseURL, apiKey string) *Adapter {
	return &Adapter{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// FetchDay downloads the conversion records for one date (YYYY-MM-DD).
// Provider failures come back as errs.ProviderError with the user-facing
// message the product ships; they are never retried here.
func (a *Adapter) FetchDay(ctx context.Context, date string) ([]dto.RawConversion, error) {
	if a.apiKey == "" {
		return nil, errs.NewProviderError(http.StatusUnauthorized, "Neplatný nebo chybějící API klíč", false)
	}

	u := a.baseURL + reportsPath + "?date=" + url.QueryEscape(date)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-heureka-api-key", a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, errs.NewProviderError(http.StatusBadGateway, "API je nedostupné (timeout)", true)
		}
		return nil, errs.NewProviderError(http.StatusBadGateway, "API je nedostupné", true)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusUnauthorized:
		return nil, errs.NewProviderError(http.StatusUnauthorized, "Neplatný nebo chybějící API klíč", false)
	case http.StatusForbidden:
		return nil, errs.NewProviderError(http.StatusForbidden, "Chybí oprávnění", false)
	case http.StatusUnprocessableEntity:
		return nil, errs.NewProviderError(http.StatusUnprocessableEntity, "Špatný formát date", false)
	default:
		return nil, errs.NewProviderError(resp.StatusCode, "API vrátilo chybu", false)
	}

	var payload dto.ConversionsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errs.NewProviderError(http.StatusBadGateway, "Neplatná odpověď API", true)
	}
	return payload.Conversions, nil
}

func isTimeout(err error) bool {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return true
	}
	return errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, context.DeadlineExceeded)
}
