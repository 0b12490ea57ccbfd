package conversion

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Unit is a named measurement within a domain.
//
// Linear units (length, weight, currency) carry Factor, the size of one unit
// expressed in the domain's base unit. Temperature scales carry an affine pair
// relative to Celsius: celsius = (v - Offset) × Num / Den.
type Unit struct {
	ID      string
	Symbol  string
	Aliases []string

	Factor decimal.Decimal

	Offset   decimal.Decimal
	Num, Den int64
	toBase   string
	fromBase string
	label    string
}

// Label is how the unit is printed after a number in formula strings.
func (u Unit) Label() string {
	if u.label != "" {
		return u.label
	}
	return " " + u.ID
}

// Registry resolves unit names for one domain. It is immutable once built.
type Registry struct {
	domain Domain
	units  []Unit
	index  map[string]int
}

func newRegistry(domain Domain, units []Unit) *Registry {
	r := &Registry{
		domain: domain,
		units:  units,
		index:  make(map[string]int, len(units)*3),
	}
	for i, u := range units {
		r.index[normalizeUnit(u.ID)] = i
		r.index[normalizeUnit(u.Symbol)] = i
		for _, alias := range u.Aliases {
			r.index[normalizeUnit(alias)] = i
		}
	}
	return r
}

func normalizeUnit(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Domain reports which domain the registry serves.
func (r *Registry) Domain() Domain {
	return r.domain
}

// Lookup resolves a unit by ID, symbol or alias, case-insensitively.
func (r *Registry) Lookup(name string) (Unit, bool) {
	i, ok := r.index[normalizeUnit(name)]
	if !ok {
		return Unit{}, false
	}
	return r.units[i], true
}

// Units returns the registry's units in declaration order.
func (r *Registry) Units() []Unit {
	out := make([]Unit, len(r.units))
	copy(out, r.units)
	return out
}

func linear(id, symbol, factor string, aliases ...string) Unit {
	return Unit{
		ID:      id,
		Symbol:  symbol,
		Aliases: aliases,
		Factor:  decimal.RequireFromString(factor),
	}
}

func lengthUnits() []Unit {
	return []Unit{
		linear("millimeter", "mm", "0.001", "millimeters", "millimetre"),
		linear("centimeter", "cm", "0.01", "centimeters", "centimetre"),
		linear("meter", "m", "1", "meters", "metre"),
		linear("kilometer", "km", "1000", "kilometers", "kilometre"),
		linear("inch", "in", "0.0254", "inches"),
		linear("foot", "ft", "0.3048", "feet"),
		linear("yard", "yd", "0.9144", "yards"),
		linear("mile", "mi", "1609.344", "miles"),
	}
}

func weightUnits() []Unit {
	return []Unit{
		linear("milligram", "mg", "0.000001", "milligrams"),
		linear("gram", "g", "0.001", "grams"),
		linear("kilogram", "kg", "1", "kilograms"),
		linear("tonne", "t", "1000", "tonnes", "metric_ton"),
		linear("ounce", "oz", "0.028349523125", "ounces"),
		linear("pound", "lb", "0.45359237", "pounds", "lbs"),
		linear("stone", "st", "6.35029318", "stones"),
	}
}

func temperatureUnits() []Unit {
	return []Unit{
		{
			ID: "celsius", Symbol: "C", Aliases: []string{"°c", "centigrade"},
			Offset: decimal.Zero, Num: 1, Den: 1,
			toBase: "%s", fromBase: "%s", label: "° C",
		},
		{
			ID: "fahrenheit", Symbol: "F", Aliases: []string{"°f"},
			Offset: decimal.NewFromInt(32), Num: 5, Den: 9,
			toBase: "(%s - 32) × 5/9", fromBase: "(%s × 9/5) + 32", label: "° F",
		},
		{
			ID: "kelvin", Symbol: "K",
			Offset: decimal.RequireFromString("273.15"), Num: 1, Den: 1,
			toBase: "%s - 273.15", fromBase: "%s + 273.15", label: " K",
		},
		{
			ID: "rankine", Symbol: "R", Aliases: []string{"°r"},
			Offset: decimal.RequireFromString("491.67"), Num: 5, Den: 9,
			toBase: "(%s - 491.67) × 5/9", fromBase: "(%s × 9/5) + 491.67", label: "° R",
		},
	}
}

var (
	lengthRegistry      = newRegistry(DomainLength, lengthUnits())
	weightRegistry      = newRegistry(DomainWeight, weightUnits())
	temperatureRegistry = newRegistry(DomainTemperature, temperatureUnits())
)

// RegistryFor returns the fixed unit registry of a physical domain. Currency
// has no fixed registry: its units are the codes of the current rate table.
func RegistryFor(domain Domain) (*Registry, bool) {
	switch domain {
	case DomainLength:
		return lengthRegistry, true
	case DomainWeight:
		return weightRegistry, true
	case DomainTemperature:
		return temperatureRegistry, true
	}
	return nil, false
}

// CurrencyUnits lists the currencies of a rate table as units, sorted by code.
func CurrencyUnits(table RateTable) []Unit {
	if table == nil {
		return nil
	}
	codes := table.Codes()
	sort.Strings(codes)
	units := make([]Unit, 0, len(codes))
	for _, code := range codes {
		rate, _ := table.Rate(code)
		factor, ok := finiteDecimal(rate)
		if !ok {
			factor = decimal.Zero
		}
		units = append(units, Unit{
			ID:     code,
			Symbol: table.Symbol(code),
			Factor: factor,
		})
	}
	return units
}
