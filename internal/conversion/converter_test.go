package conversion

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapTable map[string]float64

func (m mapTable) Rate(code string) (float64, bool) {
	r, ok := m[code]
	return r, ok
}

func (m mapTable) Codes() []string {
	codes := make([]string, 0, len(m))
	for c := range m {
		codes = append(codes, c)
	}
	return codes
}

func (m mapTable) Symbol(code string) string {
	if code == "USD" {
		return "$"
	}
	return code
}

var testRates = mapTable{"USD": 1, "INR": 83, "EUR": 0.92, "GBP": 0.79}

func convert(t *testing.T, domain string, v float64, from, to string) Result {
	t.Helper()
	return NewConverter().Convert(Request{Domain: domain, Value: v, FromUnit: from, ToUnit: to}, testRates)
}

func TestConvert_FixedPoints(t *testing.T) {
	tests := []struct {
		name    string
		domain  string
		value   float64
		from    string
		to      string
		want    float64
		formula string
	}{
		{"freezing point", "temperature", 0, "celsius", "fahrenheit", 32, "(0 × 9/5) + 32 = 32° F"},
		{"boiling point", "temperature", 100, "celsius", "fahrenheit", 212, "(100 × 9/5) + 32 = 212° F"},
		{"boiling point back", "temperature", 212, "F", "C", 100, "(212 - 32) × 5/9 = 100° C"},
		{"absolute zero", "temperature", 0, "kelvin", "celsius", -273.15, "0 - 273.15 = -273.15° C"},
		{"kelvin to fahrenheit", "temperature", 273.15, "K", "F", 32, "((273.15 - 273.15) × 9/5) + 32 = 32° F"},
		{"fahrenheit to kelvin", "temperature", 32, "F", "K", 273.15, "(32 - 32) × 5/9 + 273.15 = 273.15 K"},
		{"fahrenheit to rankine", "temperature", 0, "F", "R", 459.67, "0 + 459.67 = 459.67° R"},
		{"rankine to fahrenheit", "temperature", 491.67, "R", "F", 32, "491.67 - 459.67 = 32° F"},
		{"celsius to kelvin", "temperature", 0, "C", "K", 273.15, "0 + 273.15 = 273.15 K"},
		{"negative forty", "temperature", -40, "celsius", "fahrenheit", -40, "(-40 × 9/5) + 32 = -40° F"},
		{"millimeter to kilometer", "length", 1e-12, "mm", "km", 1e-18, "0.000000000001 millimeter × 0.000001 = 0.000000000000000001 kilometer"},
		{"meter to centimeter", "length", 1, "meter", "centimeter", 100, "1 meter × 100 = 100 centimeter"},
		{"mile to kilometer", "length", 1, "mi", "km", 1.609344, "1 mile × 1.609344 = 1.609344 kilometer"},
		{"pound to kilogram", "weight", 10, "lb", "kg", 4.5359237, "10 pound × 0.453592 = 4.535924 kilogram"},
		{"gram to kilogram", "weight", 1500, "g", "kg", 1.5, "1500 gram × 0.001 = 1.5 kilogram"},
		{"usd to inr", "currency", 1, "USD", "INR", 83, "1 USD × (83 / 1) = 83 INR"},
		{"inr to usd", "currency", 166, "inr", "usd", 2, "166 INR × (1 / 83) = 2 USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := convert(t, tt.domain, tt.value, tt.from, tt.to)
			require.True(t, res.Success(), "unexpected error: %v", res.Err)
			assert.InDelta(t, tt.want, res.Converted, 1e-9)
			assert.Equal(t, tt.formula, res.Formula)
		})
	}
}

func TestConvert_ExactResults(t *testing.T) {
	assert.Equal(t, 32.0, convert(t, "temperature", 0, "celsius", "fahrenheit").Converted)
	assert.Equal(t, 212.0, convert(t, "temperature", 100, "celsius", "fahrenheit").Converted)
	assert.Equal(t, 100.0, convert(t, "length", 1, "meter", "centimeter").Converted)
	assert.Equal(t, 83.0, convert(t, "currency", 1, "USD", "INR").Converted)
}

func TestConvert_Identity(t *testing.T) {
	values := []float64{0, -40, 1.5, 123456.789, -0.001}
	units := map[string][]string{
		"temperature": {"celsius", "fahrenheit", "kelvin", "rankine"},
		"length":      {"millimeter", "inch", "mile"},
		"weight":      {"ounce", "stone", "tonne"},
		"currency":    {"USD", "INR", "EUR"},
	}

	for domain, names := range units {
		for _, unit := range names {
			for _, v := range values {
				res := convert(t, domain, v, unit, unit)
				require.True(t, res.Success(), "%s %s: %v", domain, unit, res.Err)
				assert.Equal(t, v, res.Converted, "%s %s", domain, unit)
			}
		}
	}

	assert.Equal(t, "25° C = 25° C", convert(t, "temperature", 25, "C", "celsius").Formula)
	assert.Equal(t, "5 meter = 5 meter", convert(t, "length", 5, "m", "meter").Formula)
	assert.Equal(t, "10 USD = 10 USD", convert(t, "currency", 10, "usd", "USD").Formula)
}

func TestConvert_RoundTrip(t *testing.T) {
	values := []float64{0, 1, -17.5, 98.6, 1234.5678, 0.0001, 1e-12, -3e-15, 6.02e23}
	pairs := []struct {
		domain string
		a, b   string
	}{
		{"length", "millimeter", "kilometer"},
		{"length", "inch", "kilometer"},
		{"length", "yard", "millimeter"},
		{"weight", "ounce", "stone"},
		{"weight", "milligram", "pound"},
		{"currency", "EUR", "GBP"},
		{"currency", "INR", "USD"},
	}

	for _, p := range pairs {
		for _, v := range values {
			there := convert(t, p.domain, v, p.a, p.b)
			require.True(t, there.Success(), "%v", there.Err)
			back := convert(t, p.domain, there.Converted, p.b, p.a)
			require.True(t, back.Success(), "%v", back.Err)
			assertRelative(t, v, back.Converted, 1e-12, "%s %s<->%s %v", p.domain, p.a, p.b, v)
		}
	}
}

// Temperature offsets cancel on the way back, so values near zero keep
// only the precision float64 has at the offset's magnitude.
func TestConvert_RoundTripTemperature(t *testing.T) {
	values := []float64{0, 1, -17.5, 98.6, 1234.5678, 0.0001, -40}
	pairs := [][2]string{
		{"celsius", "fahrenheit"},
		{"fahrenheit", "kelvin"},
		{"rankine", "celsius"},
		{"fahrenheit", "rankine"},
		{"kelvin", "celsius"},
	}

	for _, p := range pairs {
		for _, v := range values {
			there := convert(t, "temperature", v, p[0], p[1])
			require.True(t, there.Success(), "%v", there.Err)
			back := convert(t, "temperature", there.Converted, p[1], p[0])
			require.True(t, back.Success(), "%v", back.Err)
			assertRelative(t, v, back.Converted, 1e-8, "%s<->%s %v", p[0], p[1], v)
		}
	}
}

func TestConvert_SmallValuesKeepPrecision(t *testing.T) {
	res := convert(t, "length", 1e-12, "millimeter", "kilometer")
	require.True(t, res.Success())
	assert.Equal(t, 1e-18, res.Converted)

	back := convert(t, "length", res.Converted, "kilometer", "millimeter")
	require.True(t, back.Success())
	assert.Equal(t, 1e-12, back.Converted)

	res = convert(t, "currency", 1e-9, "INR", "USD")
	require.True(t, res.Success())
	assert.InEpsilon(t, 1e-9/83, res.Converted, 1e-15)
}

func TestConvert_ResultOutOfRange(t *testing.T) {
	res := convert(t, "length", math.MaxFloat64, "kilometer", "millimeter")
	require.False(t, res.Success())
	assert.ErrorIs(t, res.Err, ErrMalformedInput)
	assert.Equal(t, "result is out of range", res.Err.Error())
	assert.Zero(t, res.Converted)
	assert.Empty(t, res.Formula)
}

func assertRelative(t *testing.T, want, got, epsilon float64, msgAndArgs ...interface{}) {
	t.Helper()
	if want == 0 {
		assert.Equal(t, want, got, msgAndArgs...)
		return
	}
	assert.InEpsilon(t, want, got, epsilon, msgAndArgs...)
}

func TestConvert_NegativeAndZeroPassThrough(t *testing.T) {
	res := convert(t, "length", -2, "meter", "centimeter")
	require.True(t, res.Success())
	assert.Equal(t, -200.0, res.Converted)

	res = convert(t, "currency", 0, "USD", "INR")
	require.True(t, res.Success())
	assert.Equal(t, 0.0, res.Converted)
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name   string
		req    Request
		table  RateTable
		kind   Kind
		target error
		msg    string
	}{
		{
			name:   "unknown length unit",
			req:    Request{Domain: "length", Value: 5, FromUnit: "meter", ToUnit: "parsec"},
			table:  testRates,
			kind:   KindUnknownUnit,
			target: ErrUnknownUnit,
			msg:    "unknown length unit: parsec",
		},
		{
			name:   "missing unit",
			req:    Request{Domain: "weight", Value: 5, FromUnit: "", ToUnit: "kg"},
			table:  testRates,
			kind:   KindUnknownUnit,
			target: ErrUnknownUnit,
			msg:    "weight unit is required",
		},
		{
			name:   "unknown currency",
			req:    Request{Domain: "currency", Value: 5, FromUnit: "USD", ToUnit: "XYZ"},
			table:  testRates,
			kind:   KindUnknownUnit,
			target: ErrUnknownUnit,
			msg:    "unknown currency unit: XYZ",
		},
		{
			name:   "unknown domain",
			req:    Request{Domain: "volume", Value: 1, FromUnit: "liter", ToUnit: "gallon"},
			table:  testRates,
			kind:   KindUnknownDomain,
			target: ErrUnknownDomain,
			msg:    "unsupported conversion type: volume",
		},
		{
			name:   "zero rate",
			req:    Request{Domain: "currency", Value: 1, FromUnit: "ZZZ", ToUnit: "USD"},
			table:  mapTable{"ZZZ": 0, "USD": 1},
			kind:   KindDegenerateRate,
			target: ErrDegenerateRate,
			msg:    "invalid exchange rate for ZZZ",
		},
		{
			name:   "nan rate",
			req:    Request{Domain: "currency", Value: 1, FromUnit: "USD", ToUnit: "NAN"},
			table:  mapTable{"NAN": math.NaN(), "USD": 1},
			kind:   KindDegenerateRate,
			target: ErrDegenerateRate,
			msg:    "invalid exchange rate for NAN",
		},
		{
			name:   "no table",
			req:    Request{Domain: "currency", Value: 1, FromUnit: "USD", ToUnit: "INR"},
			table:  nil,
			kind:   KindDegenerateRate,
			target: ErrDegenerateRate,
			msg:    "exchange rates are not loaded",
		},
		{
			name:   "infinite value",
			req:    Request{Domain: "length", Value: math.Inf(1), FromUnit: "m", ToUnit: "cm"},
			table:  testRates,
			kind:   KindMalformedInput,
			target: ErrMalformedInput,
			msg:    "value must be a finite number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewConverter().Convert(tt.req, tt.table)
			require.False(t, res.Success())
			assert.Equal(t, tt.kind, KindOf(res.Err))
			assert.True(t, errors.Is(res.Err, tt.target))
			assert.EqualError(t, res.Err, tt.msg)
			assert.Zero(t, res.Converted)
			assert.Empty(t, res.Formula)
		})
	}
}

func TestConvertMany(t *testing.T) {
	results := NewConverter().ConvertMany("currency", []float64{1, 10, 100}, "USD", "INR", testRates)
	require.Len(t, results, 3)
	for i, want := range []float64{83, 830, 8300} {
		require.True(t, results[i].Success())
		assert.Equal(t, want, results[i].Converted)
	}

	results = NewConverter().ConvertMany("length", []float64{1, math.NaN()}, "m", "cm", nil)
	require.Len(t, results, 2)
	assert.True(t, results[0].Success())
	assert.Equal(t, KindMalformedInput, KindOf(results[1].Err))
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("boom")))
	assert.Equal(t, KindMalformedInput, KindOf(MalformedInput("bad value %q", "x")))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.24, Round(1.235, 2))
	assert.Equal(t, -1.24, Round(-1.235, 2))
	assert.Equal(t, 0.012048, Round(1.0/83, 6))
	assert.True(t, math.IsNaN(Round(math.NaN(), 2)))
}
