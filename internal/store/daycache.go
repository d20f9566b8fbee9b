package store

import (
	"context"

	"github.com/tkadlec/conversions-backend/internal/dto"
)

// DayCache keeps raw provider payloads per report date so repeated loads of
// the same day skip the upstream call. Entries expire after the configured
// TTL; a cache failure is treated as a miss by callers, never surfaced.
type DayCache interface {
	Get(ctx context.Context, date string) ([]dto.RawConversion, bool, error)
	Set(ctx context.Context, date string, recs []dto.RawConversion) error
}
