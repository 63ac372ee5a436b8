package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"filmtag/internal/metadata"
	"filmtag/internal/negative"
)

func newApplyMetadataCommand(ctx *commandContext) *cobra.Command {
	var authorPath string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply-metadata IMAGE...",
		Short: "Write author and license metadata into images",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			path := authorPath
			if path == "" {
				path = cfg.Metadata.AuthorPath
			}
			if path == "" {
				return fmt.Errorf("an author metadata document is required (-m or metadata.author_path)")
			}
			author, err := metadata.Load(path)
			if err != nil {
				return err
			}

			extensions := negative.NewExtensionSet(cfg.Images.ExtraExtensions...)
			for _, image := range args {
				if !extensions.Recognizes(image) {
					return fmt.Errorf("%w: %s", negative.ErrUnknownExtension, image)
				}
				if _, err := os.Stat(image); err != nil {
					return fmt.Errorf("%w: %s", negative.ErrFileNotFound, image)
				}
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

			tags := author.Tags(time.Now().Year())
			out := cmd.OutOrStdout()
			failed := 0
			for _, image := range args {
				if err := writer.Apply(cmd.Context(), image, tags); err != nil {
					logger.Error("write failed", slog.String("path", image), slog.Any("error", err))
					failed++
					continue
				}
				if dryRun {
					fmt.Fprintf(out, "%s:\n%s", image, tags)
				} else {
					fmt.Fprintf(out, "tagged %s\n", image)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&authorPath, "metadata", "m", "", "Author metadata TOML document")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Compute tags without writing them")
	return cmd
}
