// Package cli implements convertctl, an offline front end to the conversion
// core.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/convertly/convertly-api/internal/client/exchangerate"
	"github.com/convertly/convertly-api/internal/constants"
	"github.com/convertly/convertly-api/internal/logger"
	"github.com/convertly/convertly-api/internal/rates"
	"github.com/convertly/convertly-api/internal/services"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	seedFile    string
	online      bool
	providerURL string
	apiKey      string
	base        string
	asJSON      bool
	debug       bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "convertctl",
		Short:        "convertctl converts currency, temperature, length and weight from the terminal",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.debug {
				logger.InitLogger(constants.ProdEnvironment)
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.seedFile, "seed-file", os.Getenv(constants.EnvRatesSeedFile), "YAML rate table used when offline")
	flags.BoolVar(&opts.online, "online", false, "fetch live rates from the provider before converting")
	flags.StringVar(&opts.providerURL, "provider-url", os.Getenv(constants.EnvRatesProviderURL), "rate provider base URL")
	flags.StringVar(&opts.apiKey, "api-key", os.Getenv(constants.EnvRatesAPIKey), "rate provider API key")
	flags.StringVar(&opts.base, "base", constants.INRCurrency, "base currency requested from the provider")
	flags.BoolVar(&opts.asJSON, "json", false, "print results as JSON")
	flags.BoolVar(&opts.debug, "debug", false, "log to stderr")

	cmd.AddCommand(convertCmd(opts))
	cmd.AddCommand(unitsCmd(opts))
	cmd.AddCommand(ratesCmd(opts))
	return cmd
}

// loadStore returns a store holding the seed table, refreshed from the
// provider first when --online is set. Provider failures are reported on
// errOut and the seed is kept.
func loadStore(ctx context.Context, opts *rootOptions, errOut io.Writer) (*rates.Store, error) {
	seed := rates.DefaultTable()
	if opts.seedFile != "" {
		t, err := rates.LoadSeedFile(opts.seedFile)
		if err != nil {
			return nil, err
		}
		seed = t
	}

	if !opts.online {
		return rates.NewStore(seed), nil
	}

	store := rates.NewStore(nil)
	svc := services.NewExchangeRateService(store, services.ExchangeRateServiceConfig{
		BaseCurrency: opts.base,
		Provider:     exchangerate.NewClient(opts.providerURL, opts.apiKey),
		Seed:         seed,
	})
	if _, err := svc.Refresh(ctx); err != nil {
		fmt.Fprintf(errOut, "warning: using %s rates: %v\n", store.Load().Source(), err)
	}
	return store, nil
}
