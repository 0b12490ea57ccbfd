package conversion

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// formulaPlaces is the number of decimal places printed in formula strings.
	formulaPlaces = 6

	// quotientDigits is the number of significant digits quo keeps.
	quotientDigits = 20
)

// RateTable is the read-only currency snapshot a conversion runs against.
// Rates are relative to a common base currency.
type RateTable interface {
	Rate(code string) (float64, bool)
	Codes() []string
	Symbol(code string) string
}

// Request is a single conversion request.
type Request struct {
	Domain   string
	Value    float64
	FromUnit string
	ToUnit   string
}

// Result is the outcome of a single conversion. When Err is set, Converted
// and Formula are zero.
type Result struct {
	Domain    Domain
	Value     float64
	From      string
	To        string
	Converted float64
	Formula   string
	Err       error
}

// Success reports whether the conversion produced a value.
func (r Result) Success() bool {
	return r.Err == nil
}

// Converter applies domain conversion rules. It holds no mutable state and is
// safe for concurrent use.
type Converter struct{}

// NewConverter creates a converter over the built-in unit registries.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert converts req.Value from req.FromUnit to req.ToUnit. Currency
// conversions read rates from table; other domains ignore it.
func (c *Converter) Convert(req Request, table RateTable) Result {
	res := Result{Value: req.Value}

	domain, err := ParseDomain(req.Domain)
	if err != nil {
		res.Err = err
		return res
	}
	res.Domain = domain

	if math.IsNaN(req.Value) || math.IsInf(req.Value, 0) {
		res.Err = newError(KindMalformedInput, "value must be a finite number")
		return res
	}

	var (
		converted decimal.Decimal
		formula   string
		from, to  string
	)
	switch domain {
	case DomainTemperature:
		from, to, converted, formula, err = convertTemperature(req)
	case DomainLength, DomainWeight:
		from, to, converted, formula, err = convertLinear(domain, req)
	case DomainCurrency:
		from, to, converted, formula, err = convertCurrency(req, table)
	}
	if err != nil {
		res.Err = err
		return res
	}

	out := converted.InexactFloat64()
	if math.IsInf(out, 0) {
		res.Err = newError(KindMalformedInput, "result is out of range")
		return res
	}

	res.From, res.To = from, to
	res.Converted = out
	res.Formula = formula
	return res
}

// ConvertMany converts every value with the same units against one table
// snapshot. Each item succeeds or fails on its own.
func (c *Converter) ConvertMany(domain string, values []float64, from, to string, table RateTable) []Result {
	results := make([]Result, len(values))
	for i, v := range values {
		results[i] = c.Convert(Request{Domain: domain, Value: v, FromUnit: from, ToUnit: to}, table)
	}
	return results
}

func lookupUnits(reg *Registry, req Request) (Unit, Unit, error) {
	from, ok := reg.Lookup(req.FromUnit)
	if !ok {
		return Unit{}, Unit{}, unknownUnit(reg.Domain(), req.FromUnit)
	}
	to, ok := reg.Lookup(req.ToUnit)
	if !ok {
		return Unit{}, Unit{}, unknownUnit(reg.Domain(), req.ToUnit)
	}
	return from, to, nil
}

func unknownUnit(domain Domain, name string) *Error {
	if strings.TrimSpace(name) == "" {
		return newError(KindUnknownUnit, "%s unit is required", domain)
	}
	return newError(KindUnknownUnit, "unknown %s unit: %s", domain, name)
}

func identityFormula(v decimal.Decimal, u Unit) string {
	q := formatNumber(v) + u.Label()
	return q + " = " + q
}

func convertLinear(domain Domain, req Request) (string, string, decimal.Decimal, string, error) {
	reg, _ := RegistryFor(domain)
	from, to, err := lookupUnits(reg, req)
	if err != nil {
		return "", "", decimal.Zero, "", err
	}

	v := decimal.NewFromFloat(req.Value)
	if from.ID == to.ID {
		return from.ID, to.ID, v, identityFormula(v, from), nil
	}
	if !from.Factor.IsPositive() {
		return "", "", decimal.Zero, "", newError(KindDegenerateRate, "invalid conversion factor for %s", from.ID)
	}
	if !to.Factor.IsPositive() {
		return "", "", decimal.Zero, "", newError(KindDegenerateRate, "invalid conversion factor for %s", to.ID)
	}

	factor := quo(from.Factor, to.Factor)
	result := quo(v.Mul(from.Factor), to.Factor)
	formula := fmt.Sprintf("%s%s × %s = %s%s",
		formatNumber(v), from.Label(), formatNumber(factor), formatNumber(result), to.Label())
	return from.ID, to.ID, result, formula, nil
}

func convertTemperature(req Request) (string, string, decimal.Decimal, string, error) {
	from, to, err := lookupUnits(temperatureRegistry, req)
	if err != nil {
		return "", "", decimal.Zero, "", err
	}

	v := decimal.NewFromFloat(req.Value)
	if from.ID == to.ID {
		return from.ID, to.ID, v, identityFormula(v, from), nil
	}
	for _, u := range []Unit{from, to} {
		if u.Num == 0 || u.Den == 0 {
			return "", "", decimal.Zero, "", newError(KindDegenerateRate, "invalid scale for %s", u.ID)
		}
	}

	// Units on the same scale differ only by their offsets.
	if from.Num*to.Den == to.Num*from.Den {
		shift := to.Offset.Sub(from.Offset)
		result := v.Add(shift)
		op := "+"
		if shift.IsNegative() {
			op = "-"
		}
		formula := fmt.Sprintf("%s %s %s = %s%s",
			formatNumber(v), op, formatNumber(shift.Abs()), formatNumber(result), to.Label())
		return from.ID, to.ID, result, formula, nil
	}

	celsius := quo(v.Sub(from.Offset).Mul(decimal.NewFromInt(from.Num)), decimal.NewFromInt(from.Den))
	result := quo(celsius.Mul(decimal.NewFromInt(to.Den)), decimal.NewFromInt(to.Num)).Add(to.Offset)

	// Only a template that scales its operand needs the inner step grouped.
	inner := fmt.Sprintf(from.toBase, formatNumber(v))
	if from.toBase != "%s" && strings.HasPrefix(to.fromBase, "(%s ×") {
		inner = "(" + inner + ")"
	}
	expr := fmt.Sprintf(to.fromBase, inner)
	formula := fmt.Sprintf("%s = %s%s", expr, formatNumber(result), to.Label())
	return from.ID, to.ID, result, formula, nil
}

func convertCurrency(req Request, table RateTable) (string, string, decimal.Decimal, string, error) {
	if table == nil {
		return "", "", decimal.Zero, "", newError(KindDegenerateRate, "exchange rates are not loaded")
	}
	from := strings.ToUpper(strings.TrimSpace(req.FromUnit))
	to := strings.ToUpper(strings.TrimSpace(req.ToUnit))

	fromRate, ok := table.Rate(from)
	if !ok {
		return "", "", decimal.Zero, "", unknownUnit(DomainCurrency, req.FromUnit)
	}
	toRate, ok := table.Rate(to)
	if !ok {
		return "", "", decimal.Zero, "", unknownUnit(DomainCurrency, req.ToUnit)
	}

	v := decimal.NewFromFloat(req.Value)
	unit := Unit{ID: from}
	if from == to {
		return from, to, v, identityFormula(v, unit), nil
	}

	fromDec, ok := finiteDecimal(fromRate)
	if !ok || !fromDec.IsPositive() {
		return "", "", decimal.Zero, "", newError(KindDegenerateRate, "invalid exchange rate for %s", from)
	}
	toDec, ok := finiteDecimal(toRate)
	if !ok || !toDec.IsPositive() {
		return "", "", decimal.Zero, "", newError(KindDegenerateRate, "invalid exchange rate for %s", to)
	}

	result := quo(v.Mul(toDec), fromDec)
	formula := fmt.Sprintf("%s %s × (%s / %s) = %s %s",
		formatNumber(v), from, toDec.String(), fromDec.String(), formatNumber(result), to)
	return from, to, result, formula, nil
}

func finiteDecimal(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

// quo divides a by b to quotientDigits significant digits. Div rounds to a
// fixed number of places, which turns small quotients into zero.
func quo(a, b decimal.Decimal) decimal.Decimal {
	if a.IsZero() {
		return decimal.Zero
	}
	places := int64(quotientDigits) - (magnitude(a) - magnitude(b)) + 1
	if places < int64(decimal.DivisionPrecision) {
		places = int64(decimal.DivisionPrecision)
	}
	return a.DivRound(b, int32(places))
}

// magnitude returns the power of ten of d's leading digit. d must be non-zero.
func magnitude(d decimal.Decimal) int64 {
	return int64(d.NumDigits()) + int64(d.Exponent()) - 1
}

// formatNumber prints at most formulaPlaces decimals with trailing zeros
// trimmed. Values below 10^-formulaPlaces keep formulaPlaces significant
// digits instead of printing as 0.
func formatNumber(d decimal.Decimal) string {
	places := int64(formulaPlaces)
	if !d.IsZero() {
		if m := magnitude(d); m <= -formulaPlaces {
			places = formulaPlaces - 1 - m
		}
	}
	return d.Round(int32(places)).String()
}

// Round rounds f half away from zero to the given number of places.
func Round(f float64, places int32) float64 {
	d, ok := finiteDecimal(f)
	if !ok {
		return f
	}
	return d.Round(places).InexactFloat64()
}
