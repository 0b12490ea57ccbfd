package rates

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Table is an immutable snapshot of exchange rates relative to Base.
// All methods are safe on a nil *Table and behave as an empty table.
type Table struct {
	base      string
	rates     map[string]float64
	symbols   map[string]string
	source    string
	fetchedAt time.Time
	version   uint64
}

// NewTable validates and copies the given rates into a new snapshot. Codes
// are upper-cased. Missing symbols are filled from SymbolFor.
func NewTable(base string, rates map[string]float64, symbols map[string]string, source string, fetchedAt time.Time) (*Table, error) {
	base = NormalizeCode(base)
	if base == "" {
		return nil, errors.New("base currency is required")
	}
	if len(rates) == 0 {
		return nil, errors.New("rate table is empty")
	}

	t := &Table{
		base:      base,
		rates:     make(map[string]float64, len(rates)),
		symbols:   make(map[string]string, len(rates)),
		source:    source,
		fetchedAt: fetchedAt,
	}
	for code, rate := range rates {
		c := NormalizeCode(code)
		if c == "" {
			return nil, errors.New("rate table contains an empty currency code")
		}
		if math.IsNaN(rate) || math.IsInf(rate, 0) {
			return nil, errors.Errorf("rate for %s is not a finite number", c)
		}
		t.rates[c] = rate
	}
	for code := range t.rates {
		sym := ""
		for k, v := range symbols {
			if NormalizeCode(k) == code {
				sym = strings.TrimSpace(v)
				break
			}
		}
		if sym == "" {
			sym = SymbolFor(code)
		}
		t.symbols[code] = sym
	}
	return t, nil
}

// NormalizeCode trims and upper-cases a currency code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// WithVersion returns a copy of t stamped with version v.
func (t *Table) WithVersion(v uint64) *Table {
	if t == nil {
		return nil
	}
	cp := *t
	cp.version = v
	return &cp
}

// WithSource returns a copy of t attributed to source.
func (t *Table) WithSource(source string) *Table {
	if t == nil {
		return nil
	}
	cp := *t
	cp.source = source
	return &cp
}

func (t *Table) Base() string {
	if t == nil {
		return ""
	}
	return t.base
}

func (t *Table) Source() string {
	if t == nil {
		return ""
	}
	return t.source
}

func (t *Table) FetchedAt() time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.fetchedAt
}

func (t *Table) Version() uint64 {
	if t == nil {
		return 0
	}
	return t.version
}

// Rate returns the rate of code relative to the base currency.
func (t *Table) Rate(code string) (float64, bool) {
	if t == nil {
		return 0, false
	}
	r, ok := t.rates[NormalizeCode(code)]
	return r, ok
}

// Symbol returns the display symbol of code.
func (t *Table) Symbol(code string) string {
	c := NormalizeCode(code)
	if t != nil {
		if s, ok := t.symbols[c]; ok {
			return s
		}
	}
	return SymbolFor(c)
}

// Codes returns the currency codes in the table, sorted.
func (t *Table) Codes() []string {
	if t == nil {
		return nil
	}
	codes := make([]string, 0, len(t.rates))
	for c := range t.rates {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Rates returns a copy of the code to rate map.
func (t *Table) Rates() map[string]float64 {
	out := make(map[string]float64)
	if t == nil {
		return out
	}
	for k, v := range t.rates {
		out[k] = v
	}
	return out
}

// Symbols returns a copy of the code to symbol map.
func (t *Table) Symbols() map[string]string {
	out := make(map[string]string)
	if t == nil {
		return out
	}
	for k, v := range t.symbols {
		out[k] = v
	}
	return out
}

// Len is the number of currencies in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rates)
}

// SameRates reports whether both tables carry the same base and rate set.
func (t *Table) SameRates(other *Table) bool {
	if t.Len() != other.Len() || t.Base() != other.Base() {
		return false
	}
	if t == nil {
		return true
	}
	for code, rate := range t.rates {
		o, ok := other.rates[code]
		if !ok || o != rate {
			return false
		}
	}
	return true
}
