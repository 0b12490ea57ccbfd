package rates

import (
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	fetched := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("normalizes codes and fills symbols", func(t *testing.T) {
		tbl, err := NewTable(" usd ", map[string]float64{"usd": 1, "inr": 83, "xyz": 2}, map[string]string{"inr": "Rs"}, "provider", fetched)
		require.NoError(t, err)

		assert.Equal(t, "USD", tbl.Base())
		assert.Equal(t, []string{"INR", "USD", "XYZ"}, tbl.Codes())
		assert.Equal(t, "Rs", tbl.Symbol("INR"))
		assert.Equal(t, "$", tbl.Symbol("usd"))
		assert.Equal(t, "XYZ", tbl.Symbol("XYZ"))
		assert.Equal(t, "provider", tbl.Source())
		assert.Equal(t, fetched, tbl.FetchedAt())

		r, ok := tbl.Rate("inr")
		require.True(t, ok)
		assert.Equal(t, 83.0, r)
	})

	tests := []struct {
		name  string
		base  string
		rates map[string]float64
		err   string
	}{
		{"missing base", "", map[string]float64{"USD": 1}, "base currency is required"},
		{"empty rates", "USD", nil, "rate table is empty"},
		{"empty code", "USD", map[string]float64{" ": 1}, "rate table contains an empty currency code"},
		{"nan rate", "USD", map[string]float64{"USD": math.NaN()}, "rate for USD is not a finite number"},
		{"inf rate", "USD", map[string]float64{"EUR": math.Inf(1)}, "rate for EUR is not a finite number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := NewTable(tt.base, tt.rates, nil, "seed", fetched)
			assert.Nil(t, tbl)
			assert.EqualError(t, err, tt.err)
		})
	}
}

func TestTable_CopiesAreIndependent(t *testing.T) {
	src := map[string]float64{"USD": 1, "INR": 83}
	tbl, err := NewTable("USD", src, nil, "seed", time.Time{})
	require.NoError(t, err)

	src["USD"] = 99
	r, _ := tbl.Rate("USD")
	assert.Equal(t, 1.0, r)

	out := tbl.Rates()
	out["INR"] = 0
	r, _ = tbl.Rate("INR")
	assert.Equal(t, 83.0, r)

	syms := tbl.Symbols()
	syms["USD"] = "?"
	assert.Equal(t, "$", tbl.Symbol("USD"))
}

func TestTable_NilSafe(t *testing.T) {
	var tbl *Table
	assert.Equal(t, "", tbl.Base())
	assert.Equal(t, 0, tbl.Len())
	assert.Nil(t, tbl.Codes())
	assert.Empty(t, tbl.Rates())
	assert.Empty(t, tbl.Symbols())
	assert.Equal(t, "€", tbl.Symbol("eur"))
	assert.Nil(t, tbl.WithVersion(3))
	_, ok := tbl.Rate("USD")
	assert.False(t, ok)
}

func TestTable_WithVersionAndSource(t *testing.T) {
	tbl := DefaultTable()
	v := tbl.WithVersion(7).WithSource("current")

	assert.Equal(t, uint64(0), tbl.Version())
	assert.Equal(t, "seed", tbl.Source())
	assert.Equal(t, uint64(7), v.Version())
	assert.Equal(t, "current", v.Source())
	assert.True(t, tbl.SameRates(v))
}

func TestTable_SameRates(t *testing.T) {
	a, _ := NewTable("USD", map[string]float64{"USD": 1, "INR": 83}, nil, "provider", time.Time{})
	b, _ := NewTable("usd", map[string]float64{"inr": 83, "usd": 1}, nil, "store", time.Now())
	c, _ := NewTable("USD", map[string]float64{"USD": 1, "INR": 84}, nil, "provider", time.Time{})
	d, _ := NewTable("INR", map[string]float64{"USD": 1, "INR": 83}, nil, "provider", time.Time{})

	assert.True(t, a.SameRates(b))
	assert.False(t, a.SameRates(c))
	assert.False(t, a.SameRates(d))
	assert.False(t, a.SameRates(nil))

	var empty *Table
	assert.True(t, empty.SameRates(nil))
}

func TestDefaultTable(t *testing.T) {
	tbl := DefaultTable()
	assert.Equal(t, "INR", tbl.Base())
	assert.Equal(t, map[string]float64{"INR": 1, "USD": 0.012, "EUR": 0.011, "GBP": 0.0095}, tbl.Rates())
	assert.Equal(t, map[string]string{"INR": "₹", "USD": "$", "EUR": "€", "GBP": "£"}, tbl.Symbols())
	assert.Equal(t, "seed", tbl.Source())
}

func TestLoadSeedFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "rates.yaml")
	require.NoError(t, os.WriteFile(good, []byte("base: usd\nrates:\n  USD: 1\n  INR: 83.2\nsymbols:\n  INR: \"₹\"\n"), 0o600))

	tbl, err := LoadSeedFile(good)
	require.NoError(t, err)
	assert.Equal(t, "USD", tbl.Base())
	r, ok := tbl.Rate("INR")
	require.True(t, ok)
	assert.Equal(t, 83.2, r)
	assert.Equal(t, "₹", tbl.Symbol("INR"))

	_, err = LoadSeedFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read seed file")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("base: [\n"), 0o600))
	_, err = LoadSeedFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode seed rates")

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("base: USD\n"), 0o600))
	_, err = LoadSeedFile(empty)
	assert.EqualError(t, err, "invalid seed rates: rate table is empty")
}

func TestStore(t *testing.T) {
	s := NewStore(nil)
	assert.Nil(t, s.Load())

	first := DefaultTable().WithVersion(1)
	assert.Nil(t, s.Replace(first))
	assert.Same(t, first, s.Load())

	second := DefaultTable().WithVersion(2)
	assert.Same(t, first, s.Replace(second))
	assert.Same(t, second, s.Load())
}

func TestStore_ConcurrentReadersSeeWholeTables(t *testing.T) {
	s := NewStore(DefaultTable().WithVersion(1))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				tbl := s.Load()
				assert.Equal(t, 4, tbl.Len())
			}
		}()
	}
	for v := uint64(2); v < 200; v++ {
		s.Replace(DefaultTable().WithVersion(v))
	}
	wg.Wait()
	assert.Equal(t, uint64(199), s.Load().Version())
}

func TestSymbolFor(t *testing.T) {
	assert.Equal(t, "₹", SymbolFor("inr"))
	assert.Equal(t, "¥", SymbolFor("JPY"))
	assert.Equal(t, "ABC", SymbolFor(" abc "))
}
