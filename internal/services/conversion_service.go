package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/convertly/convertly-api/internal/constants"
	"github.com/convertly/convertly-api/internal/conversion"
	"github.com/convertly/convertly-api/internal/interfaces"
	"github.com/convertly/convertly-api/internal/logger"
	"github.com/convertly/convertly-api/internal/rates"
	"github.com/convertly/convertly-api/internal/types/api/params"
	"github.com/convertly/convertly-api/internal/types/api/responses"
)

const (
	currencyAmountPlaces = 2
	currencyRatePlaces   = 6
)

// ConversionService binds the conversion core to the current rate snapshot.
type ConversionService struct {
	converter *conversion.Converter
	store     *rates.Store
	metrics   interfaces.ServiceMetrics
	logger    *zap.Logger
}

// NewConversionService creates a conversion service reading rates from
// store. metrics may be nil.
func NewConversionService(store *rates.Store, metrics interfaces.ServiceMetrics) *ConversionService {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &ConversionService{
		converter: conversion.NewConverter(),
		store:     store,
		metrics:   metrics,
		logger:    logger.Log,
	}
}

// snapshot returns the current table as a RateTable, or an untyped nil when
// no table has been published yet.
func (s *ConversionService) snapshot() conversion.RateTable {
	t := s.store.Load()
	if t == nil {
		return nil
	}
	return t
}

func (s *ConversionService) record(domainHint string, res conversion.Result, duration time.Duration) {
	domain := string(res.Domain)
	if domain == "" {
		domain = strings.ToLower(strings.TrimSpace(domainHint))
		if _, err := conversion.ParseDomain(domain); err != nil {
			domain = ""
		}
	}
	s.metrics.RecordConversion(domain, res.Success(), duration)
	if !res.Success() {
		s.logger.Debug("Conversion rejected",
			zap.String("type", domainHint),
			zap.String("kind", string(conversion.KindOf(res.Err))),
			zap.Error(res.Err))
	}
}

// Convert performs a single conversion against one rate snapshot.
func (s *ConversionService) Convert(ctx context.Context, p params.ConvertParams) conversion.Result {
	start := time.Now()
	res := s.converter.Convert(conversion.Request{
		Domain:   p.Type,
		Value:    p.Value,
		FromUnit: p.FromUnit,
		ToUnit:   p.ToUnit,
	}, s.snapshot())
	s.record(p.Type, res, time.Since(start))
	return res
}

// ConvertMany converts every value against the same snapshot, so a rate
// refresh in the middle of a batch cannot mix tables.
func (s *ConversionService) ConvertMany(ctx context.Context, p params.ConvertBatchParams) []conversion.Result {
	start := time.Now()
	results := s.converter.ConvertMany(p.Type, p.Values, p.FromUnit, p.ToUnit, s.snapshot())

	each := time.Duration(0)
	if len(results) > 0 {
		each = time.Since(start) / time.Duration(len(results))
	}
	for _, res := range results {
		s.record(p.Type, res, each)
	}
	return results
}

// ConvertCurrency is the legacy currency conversion. Missing currencies
// default to INR and USD; the amount is rounded to 2 places and the rate to 6.
func (s *ConversionService) ConvertCurrency(ctx context.Context, p params.CurrencyConversionParams) (*responses.CurrencyConversionResult, error) {
	from := rates.NormalizeCode(p.FromCurrency)
	if from == "" {
		from = constants.DefaultFromCurrency
	}
	to := rates.NormalizeCode(p.ToCurrency)
	if to == "" {
		to = constants.DefaultToCurrency
	}

	table := s.snapshot()
	start := time.Now()
	converted := s.converter.Convert(conversion.Request{
		Domain: string(conversion.DomainCurrency), Value: p.Amount, FromUnit: from, ToUnit: to,
	}, table)
	s.record(string(conversion.DomainCurrency), converted, time.Since(start))
	if converted.Err != nil {
		return nil, converted.Err
	}

	unit := s.converter.Convert(conversion.Request{
		Domain: string(conversion.DomainCurrency), Value: 1, FromUnit: from, ToUnit: to,
	}, table)
	if unit.Err != nil {
		return nil, unit.Err
	}

	return &responses.CurrencyConversionResult{
		ConvertedAmount: conversion.Round(converted.Converted, currencyAmountPlaces),
		FromSymbol:      table.Symbol(from),
		ToSymbol:        table.Symbol(to),
		Rate:            conversion.Round(unit.Converted, currencyRatePlaces),
		Amount:          p.Amount,
		FromCurrency:    from,
		ToCurrency:      to,
	}, nil
}

// Rates returns the current snapshot, or nil before the first refresh.
func (s *ConversionService) Rates(ctx context.Context) *rates.Table {
	return s.store.Load()
}

// Units lists the units of one domain, or of every domain when domain is
// empty. Currency units are the codes of the current snapshot.
func (s *ConversionService) Units(ctx context.Context, domain string) ([]responses.UnitDomain, error) {
	domains := conversion.Domains()
	if strings.TrimSpace(domain) != "" {
		d, err := conversion.ParseDomain(domain)
		if err != nil {
			return nil, err
		}
		domains = []conversion.Domain{d}
	}

	out := make([]responses.UnitDomain, 0, len(domains))
	for _, d := range domains {
		var units []conversion.Unit
		if d == conversion.DomainCurrency {
			units = conversion.CurrencyUnits(s.snapshot())
		} else {
			reg, _ := conversion.RegistryFor(d)
			units = reg.Units()
		}

		infos := make([]responses.UnitInfo, 0, len(units))
		for _, u := range units {
			infos = append(infos, responses.UnitInfo{ID: u.ID, Symbol: u.Symbol, Aliases: u.Aliases})
		}
		out = append(out, responses.UnitDomain{Type: string(d), Units: infos})
	}
	return out, nil
}

type noopMetrics struct{}

func (noopMetrics) RecordConversion(string, bool, time.Duration) {}
func (noopMetrics) RecordRefresh(string, bool, time.Duration)    {}
func (noopMetrics) SetRateTable(uint64, int)                     {}
