package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/convertly/convertly-api/internal/types/api/responses"
)

func ratesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Show the exchange rate table in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := loadStore(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			table := store.Load()

			out := cmd.OutOrStdout()
			if opts.asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(responses.RateTableResponse{
					Base:    table.Base(),
					Rates:   table.Rates(),
					Symbols: table.Symbols(),
					Source:  table.Source(),
					Version: table.Version(),
				})
			}

			fmt.Fprintf(out, "Base:   %s\n", table.Base())
			fmt.Fprintf(out, "Source: %s\n\n", table.Source())
			for _, code := range table.Codes() {
				rate, _ := table.Rate(code)
				fmt.Fprintf(out, "%-4s %-4s %g\n", code, table.Symbol(code), rate)
			}
			return nil
		},
	}
}
