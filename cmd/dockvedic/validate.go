package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarat-asymmetrica/dockvedic/internal/prmfile"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	var sfSections, stageSections string

	cmd := &cobra.Command{
		Use:   "validate <parameter-file>",
		Short: "parse a parameter file and report the scoring/transform sections it defines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := prmfile.ParseFile(args[0])
			if err != nil {
				return err
			}

			agg, err := prmfile.CreateSFAggFromSource(src, "root", sfSections)
			if err != nil {
				return fmt.Errorf("scoring function sections: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scoring function: %d term(s)\n", len(agg.Children()))
			for _, child := range agg.Children() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-24s class=%s weight=%.3g range=%.3g\n",
					child.GetFullName(), child.GetClass(), child.Weight(), child.Range())
			}

			if stageSections != "" {
				pipeline, err := prmfile.CreateTransformAggFromSource(src, "protocol", stageSections, nil, nil)
				if err != nil {
					return fmt.Errorf("transform sections: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "transform pipeline: %d stage(s)\n", len(pipeline.Children()))
				for _, stage := range pipeline.Children() {
					fmt.Fprintf(cmd.OutOrStdout(), "  %-24s class=%s\n", stage.GetFullName(), stage.GetClass())
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	cmd.Flags().StringVar(&sfSections, "sf-sections", "", "comma-separated scoring-function section allow-list (default: scan all)")
	cmd.Flags().StringVar(&stageSections, "stage-sections", "", "comma-separated protocol section allow-list to also validate as a transform pipeline")
	return cmd
}
