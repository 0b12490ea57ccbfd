package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/convertly/convertly-api/internal/services"
	"github.com/convertly/convertly-api/internal/types/api/responses"
)

func unitsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "units [type]",
		Short: "List supported units",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			domain := ""
			if len(args) == 1 {
				domain = args[0]
			}
			domains, err := services.NewConversionService(store, nil).Units(cmd.Context(), domain)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(responses.UnitsResponse{Domains: domains})
			}

			for _, d := range domains {
				fmt.Fprintf(out, "%s:\n", d.Type)
				for _, u := range d.Units {
					line := fmt.Sprintf("  %-12s %s", u.ID, u.Symbol)
					if len(u.Aliases) > 0 {
						line += "  (" + strings.Join(u.Aliases, ", ") + ")"
					}
					fmt.Fprintln(out, line)
				}
			}
			return nil
		},
	}
}
