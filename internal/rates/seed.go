package rates

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/convertly/convertly-api/internal/constants"
)

// seedFile is the YAML shape of a seed rate table:
//
//	base: INR
//	rates:
//	  INR: 1
//	  USD: 0.012
//	symbols:
//	  INR: "₹"
type seedFile struct {
	Base    string             `yaml:"base"`
	Rates   map[string]float64 `yaml:"rates"`
	Symbols map[string]string  `yaml:"symbols"`
}

// DefaultTable is the built-in INR-based table used when no provider, store or
// seed file can supply rates.
func DefaultTable() *Table {
	t, err := NewTable(constants.INRCurrency,
		map[string]float64{
			"INR": 1.0,
			"USD": 0.012,
			"EUR": 0.011,
			"GBP": 0.0095,
		},
		map[string]string{
			"INR": "₹",
			"USD": "$",
			"EUR": "€",
			"GBP": "£",
		},
		constants.RateSourceSeed,
		time.Time{},
	)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseSeed decodes a YAML seed table.
func ParseSeed(data []byte) (*Table, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "failed to decode seed rates")
	}
	t, err := NewTable(f.Base, f.Rates, f.Symbols, constants.RateSourceSeed, time.Time{})
	if err != nil {
		return nil, errors.Wrap(err, "invalid seed rates")
	}
	return t, nil
}

// LoadSeedFile reads a YAML seed table from path.
func LoadSeedFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read seed file %s", path)
	}
	return ParseSeed(data)
}
