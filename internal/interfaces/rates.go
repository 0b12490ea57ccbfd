package interfaces

import (
	"context"
	"time"

	"github.com/convertly/convertly-api/internal/client/exchangerate"
	"github.com/convertly/convertly-api/internal/rates"
)

// RateProvider fetches live rates from a remote source.
type RateProvider interface {
	GetLatestRates(ctx context.Context, base string) (*exchangerate.LatestRatesResponse, error)
}

// RateRepository persists the last known good rate table.
type RateRepository interface {
	SaveTable(ctx context.Context, table *rates.Table) error
	LoadTable(ctx context.Context, base string) (*rates.Table, error)
}

// RateEventPublisher announces newly installed rate tables.
type RateEventPublisher interface {
	PublishRatesUpdated(ctx context.Context, table *rates.Table) error
}

// ServiceMetrics records conversion and refresh outcomes.
type ServiceMetrics interface {
	RecordConversion(domain string, success bool, duration time.Duration)
	RecordRefresh(source string, success bool, duration time.Duration)
	SetRateTable(version uint64, currencies int)
}
