package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/convertly/convertly-api/internal/conversion"
	"github.com/convertly/convertly-api/internal/services"
	"github.com/convertly/convertly-api/internal/types/api/params"
	"github.com/convertly/convertly-api/internal/types/api/responses"
)

const resultPlaces = 4

func convertCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [flags] <type> <from> <to> <value>...",
		Short: "Convert one or more values",
		Long: `Convert one or more values between units of the same type.

Flags must come before the type. Everything after it is positional, so
negative values such as -40 are read as values.`,
		Example: `  convertctl convert temperature celsius fahrenheit -40 0 100
  convertctl convert --seed-file rates.yaml currency USD INR 25`,
		Args: cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			svc := services.NewConversionService(store, nil)

			domain, from, to := args[0], args[1], args[2]
			items := make([]responses.BatchConvertItem, 0, len(args)-3)
			failed := 0
			for _, raw := range args[3:] {
				item := responses.BatchConvertItem{Value: raw}
				v, perr := strconv.ParseFloat(raw, 64)
				if perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
					item.Error = conversion.MalformedInput("value must be a number: %s", raw).Error()
					items = append(items, item)
					failed++
					continue
				}
				item.Value = v

				res := svc.Convert(cmd.Context(), params.ConvertParams{Type: domain, Value: v, FromUnit: from, ToUnit: to})
				if !res.Success() {
					item.Error = res.Err.Error()
					failed++
				} else {
					result := conversion.Round(res.Converted, resultPlaces)
					item.Success = true
					item.Result = &result
					item.Formula = res.Formula
				}
				items = append(items, item)
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(responses.BatchConvertResponse{Success: failed == 0, Results: items}); err != nil {
					return err
				}
			} else {
				for _, item := range items {
					if item.Success {
						fmt.Fprintln(out, item.Formula)
					} else {
						fmt.Fprintf(out, "error: %s\n", item.Error)
					}
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d conversions failed", failed, len(items))
			}
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
