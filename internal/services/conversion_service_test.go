package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/convertly/convertly-api/internal/conversion"
	"github.com/convertly/convertly-api/internal/mocks"
	"github.com/convertly/convertly-api/internal/rates"
	"github.com/convertly/convertly-api/internal/types/api/params"
)

func usdTable(t *testing.T) *rates.Table {
	t.Helper()
	tbl, err := rates.NewTable("USD", map[string]float64{"USD": 1, "INR": 83}, nil, "provider", time.Now())
	require.NoError(t, err)
	return tbl.WithVersion(1)
}

func TestConversionService_Convert(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := mocks.NewMockServiceMetrics(ctrl)
	metrics.EXPECT().RecordConversion("currency", true, gomock.Any())
	metrics.EXPECT().RecordConversion("length", false, gomock.Any())
	metrics.EXPECT().RecordConversion("", false, gomock.Any())

	svc := NewConversionService(rates.NewStore(usdTable(t)), metrics)
	ctx := context.Background()

	res := svc.Convert(ctx, params.ConvertParams{Type: "currency", Value: 1, FromUnit: "USD", ToUnit: "INR"})
	require.True(t, res.Success())
	assert.Equal(t, 83.0, res.Converted)
	assert.Equal(t, "1 USD × (83 / 1) = 83 INR", res.Formula)

	res = svc.Convert(ctx, params.ConvertParams{Type: "Length", Value: 1, FromUnit: "meter", ToUnit: "parsec"})
	assert.ErrorIs(t, res.Err, conversion.ErrUnknownUnit)

	res = svc.Convert(ctx, params.ConvertParams{Type: "volume", Value: 1, FromUnit: "l", ToUnit: "ml"})
	assert.ErrorIs(t, res.Err, conversion.ErrUnknownDomain)
}

func TestConversionService_NoRatesLoaded(t *testing.T) {
	svc := NewConversionService(rates.NewStore(nil), nil)

	res := svc.Convert(context.Background(), params.ConvertParams{Type: "currency", Value: 1, FromUnit: "USD", ToUnit: "INR"})
	assert.ErrorIs(t, res.Err, conversion.ErrDegenerateRate)

	res = svc.Convert(context.Background(), params.ConvertParams{Type: "temperature", Value: 100, FromUnit: "C", ToUnit: "F"})
	require.True(t, res.Success())
	assert.Equal(t, 212.0, res.Converted)
}

func TestConversionService_ConvertManyUsesOneSnapshot(t *testing.T) {
	store := rates.NewStore(usdTable(t))
	svc := NewConversionService(store, nil)

	results := svc.ConvertMany(context.Background(), params.ConvertBatchParams{
		Type: "currency", Values: []float64{1, 2, 3}, FromUnit: "USD", ToUnit: "INR",
	})
	require.Len(t, results, 3)
	for i, want := range []float64{83, 166, 249} {
		assert.Equal(t, want, results[i].Converted)
	}
}

func TestConversionService_ConvertCurrency(t *testing.T) {
	svc := NewConversionService(rates.NewStore(rates.DefaultTable()), nil)
	ctx := context.Background()

	res, err := svc.ConvertCurrency(ctx, params.CurrencyConversionParams{Amount: 100})
	require.NoError(t, err)
	assert.Equal(t, "INR", res.FromCurrency)
	assert.Equal(t, "USD", res.ToCurrency)
	assert.Equal(t, 1.2, res.ConvertedAmount)
	assert.Equal(t, 0.012, res.Rate)
	assert.Equal(t, "₹", res.FromSymbol)
	assert.Equal(t, "$", res.ToSymbol)
	assert.Equal(t, 100.0, res.Amount)

	res, err = svc.ConvertCurrency(ctx, params.CurrencyConversionParams{Amount: 10, FromCurrency: "usd", ToCurrency: "gbp"})
	require.NoError(t, err)
	assert.Equal(t, 7.92, res.ConvertedAmount)
	assert.Equal(t, 0.791667, res.Rate)

	_, err = svc.ConvertCurrency(ctx, params.CurrencyConversionParams{Amount: 1, FromCurrency: "XYZ"})
	assert.ErrorIs(t, err, conversion.ErrUnknownUnit)
}

func TestConversionService_Units(t *testing.T) {
	svc := NewConversionService(rates.NewStore(rates.DefaultTable()), nil)
	ctx := context.Background()

	all, err := svc.Units(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "currency", all[0].Type)
	ids := make([]string, 0, len(all[0].Units))
	for _, u := range all[0].Units {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []string{"EUR", "GBP", "INR", "USD"}, ids)

	temp, err := svc.Units(ctx, "TEMPERATURE")
	require.NoError(t, err)
	require.Len(t, temp, 1)
	assert.Len(t, temp[0].Units, 4)
	assert.Equal(t, "celsius", temp[0].Units[0].ID)
	assert.Equal(t, "C", temp[0].Units[0].Symbol)

	_, err = svc.Units(ctx, "volume")
	assert.ErrorIs(t, err, conversion.ErrUnknownDomain)
}

func TestConversionService_Rates(t *testing.T) {
	store := rates.NewStore(nil)
	svc := NewConversionService(store, nil)
	assert.Nil(t, svc.Rates(context.Background()))

	tbl := usdTable(t)
	store.Replace(tbl)
	assert.Same(t, tbl, svc.Rates(context.Background()))
}
