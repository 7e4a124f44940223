package cli

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newBatchCmd(f *globalFlags) *cobra.Command {
	var (
		workers  int
		withGrid bool
	)
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Align many pairs concurrently",
		Long:  `Reads a JSON array of {"id", "x", "y"} objects and prints one report per pair, in input order.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers <= 0 {
				return fmt.Errorf("%d: %w", workers, ErrBadWorkers)
			}
			logger := loggerFromContext(cmd.Context())

			s, err := f.strategy(cmd)
			if err != nil {
				return err
			}
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			pairs, err := decodePairs(in)
			in.Close()
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			reports := make([]Report, len(pairs))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(workers)
			for i, p := range pairs {
				i, p := i, p
				if p.ID == "" {
					p.ID = strconv.Itoa(i)
				}
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					res, err := s.Align(p.X, p.Y)
					if err != nil {
						return fmt.Errorf("pair %s: %w", p.ID, err)
					}
					logger.Debug("aligned pair", "id", p.ID, "score", res.Score())
					reports[i] = NewReport(p.ID, res, withGrid)

					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			prog.done("aligned batch", "pairs", len(pairs), "workers", workers)

			return writeJSON(cmd.OutOrStdout(), reports)
		},
	}
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of concurrent alignments")
	cmd.Flags().BoolVar(&withGrid, "grid", false, "include full grids in the reports")

	return cmd
}
