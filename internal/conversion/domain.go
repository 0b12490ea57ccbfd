package conversion

import "strings"

// Domain is a category of convertible units.
type Domain string

const (
	DomainCurrency    Domain = "currency"
	DomainTemperature Domain = "temperature"
	DomainLength      Domain = "length"
	DomainWeight      Domain = "weight"
)

// Domains lists every supported domain in display order.
func Domains() []Domain {
	return []Domain{DomainCurrency, DomainTemperature, DomainLength, DomainWeight}
}

// ParseDomain resolves a request "type" field.
func ParseDomain(raw string) (Domain, error) {
	d := Domain(strings.ToLower(strings.TrimSpace(raw)))
	switch d {
	case DomainCurrency, DomainTemperature, DomainLength, DomainWeight:
		return d, nil
	}
	if raw == "" {
		return "", newError(KindUnknownDomain, "conversion type is required")
	}
	return "", newError(KindUnknownDomain, "unsupported conversion type: %s", raw)
}
