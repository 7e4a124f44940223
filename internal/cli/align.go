package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalign/grid"
)

func newAlignCmd(f *globalFlags) *cobra.Command {
	var withGrid bool
	cmd := &cobra.Command{
		Use:   "align [file]",
		Short: "Align one pair of sequences",
		Long:  `Reads {"x": [...], "y": [...]} from file or stdin and prints a JSON report with the best score and its grid position.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			s, err := f.strategy(cmd)
			if err != nil {
				return err
			}
			pair, err := readPair(cmd, args)
			if err != nil {
				return err
			}

			logger.Debug("aligning", "len_x", len(pair.X), "len_y", len(pair.Y))
			prog := newProgress(logger)
			res, err := s.Align(pair.X, pair.Y)
			if err != nil {
				return fmt.Errorf("align: %w", err)
			}
			prog.done("aligned", "score", res.Score(), "position", res.Position())

			return writeJSON(cmd.OutOrStdout(), NewReport(pair.ID, res, withGrid))
		},
	}
	cmd.Flags().BoolVar(&withGrid, "grid", false, "include the full grid in the report")

	return cmd
}

func newInspectCmd(f *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the filled grid of one pair",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.strategy(cmd)
			if err != nil {
				return err
			}
			pair, err := readPair(cmd, args)
			if err != nil {
				return err
			}
			res, err := s.Align(pair.X, pair.Y)
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, grid.Format(res.Grid()))
			fmt.Fprintf(out, "score=%g at %v\n", res.Score(), res.Position())

			return nil
		},
	}
}
