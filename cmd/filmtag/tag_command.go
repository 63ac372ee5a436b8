package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"filmtag/internal/negative"
)

func newTagCommand(ctx *commandContext) *cobra.Command {
	var rollPaths []string
	var rollID string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "tag IMAGE...",
		Short: "Write logbook metadata into scanned images",
		Long: `Pairs the selected roll's frames with the given image files by position
(frame 1 with the first file, and so on) and writes each frame's metadata
into its image. With --dry-run the computed tags are printed instead.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(rollPaths) == 0 {
				return fmt.Errorf("at least one roll document is required (-r)")
			}
			if rollID == "" {
				return fmt.Errorf("a roll identifier is required (--id)")
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			store, err := ctx.loadStore(rollPaths)
			if err != nil {
				return err
			}
			roll, err := store.Find(rollID)
			if err != nil {
				return err
			}

			extensions := negative.NewExtensionSet(cfg.Images.ExtraExtensions...)
			pairs, err := negative.Match(roll, args, extensions)
			if err != nil {
				return err
			}

			var writer negative.Writer
			dry := &negative.DryRunWriter{}
			if dryRun {
				writer = dry
			} else {
				live, err := negative.NewExiftoolWriter(cfg.Exiftool.Binary)
				if err != nil {
					return err
				}
				defer func() {
					if err := live.Close(); err != nil {
						logger.Warn("close exiftool", slog.Any("error", err))
					}
				}()
				writer = live
			}

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(pairs))
			failed := 0
			for _, pair := range pairs {
				status := "tagged"
				if dryRun {
					status = "computed"
				}

				tags, err := negative.Generate(roll, pair.Frame)
				switch {
				case errors.Is(err, negative.ErrNoApplicableMetadata):
					logger.Info("frame has no metadata to write",
						slog.String("roll", roll.ID), slog.Int("frame", pair.Frame.Number))
					status = "skipped"
				case err != nil:
					return err
				default:
					if err := writer.Apply(cmd.Context(), pair.Path, tags); err != nil {
						// A failed write must not block the files after it.
						logger.Error("write failed",
							slog.String("path", pair.Path), slog.Any("error", err))
						status = "failed"
						failed++
					}
				}

				rows = append(rows, []string{
					roll.ID,
					instantLabel(pair.Frame.DateTime),
					pair.Path,
					status,
				})
			}

			fmt.Fprintln(out, renderTable(
				[]string{"Roll", "Timestamp", "File", "Status"},
				rows,
				nil,
			))

			if dryRun {
				for _, applied := range dry.Writes {
					fmt.Fprintf(out, "\n%s:\n%s", applied.Path, applied.Tags)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(pairs))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&rollPaths, "rolls", "r", nil, "Logbook document to ingest (repeatable)")
	cmd.Flags().StringVar(&rollID, "id", "", "Roll identifier to tag")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Compute tags without writing them")
	return cmd
}
