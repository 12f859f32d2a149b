package main

import (
	"fmt"

	"github.com/Gunvolt24/foodcart/pkg/validate"
	"github.com/spf13/cobra"
)

const maxReportedRejections = 20

func newValidateOrdersCmd() *cobra.Command {
	var (
		in     string
		format string
	)

	cmd := &cobra.Command{
		Use:   "validate-orders",
		Short: "Проверить файл заявок (JSON или JSONL) и вывести валидные в каноническом виде",
		Example: `  foodctl validate-orders --in orders.jsonl
  foodctl validate-orders --in order.json --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := validate.InputFormat(format)
			switch f {
			case validate.FormatAuto, validate.FormatJSON, validate.FormatJSONL:
			default:
				return fmt.Errorf("unsupported format %q (auto|json|jsonl)", format)
			}

			rep, err := validate.ValidateFile(cmd.Context(), validate.NewOrderValidator(), in, f, cmd.OutOrStdout())
			stderr := cmd.ErrOrStderr()
			for i, r := range rep.Rejected {
				if i == maxReportedRejections {
					fmt.Fprintf(stderr, "... ещё %d\n", len(rep.Rejected)-i)
					break
				}
				fmt.Fprintf(stderr, "#%d: %v\n", r.Line, r.Err)
			}
			if rep.Valid > 0 || len(rep.Rejected) > 0 {
				fmt.Fprintln(stderr, rep.Summary())
			}
			return err
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "путь к файлу заявок")
	cmd.Flags().StringVar(&format, "format", string(validate.FormatAuto), "формат: auto|json|jsonl")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
