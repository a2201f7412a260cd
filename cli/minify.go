package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"flux-pwa-generator/config"
	"flux-pwa-generator/minifier"
	apperrors "flux-pwa-generator/pkg/errors"
	"flux-pwa-generator/pkg/logger"
)

func newMinifyCommand() *cobra.Command {
	var (
		dryRun  bool
		exclude []string
	)

	cmd := &cobra.Command{
		Use:   "minify <folder>",
		Short: "Minify every supported file of a folder in place",
		Long: `Walks <folder> recursively and overwrites each supported file with its
minified form:

  .js .cjs     script
  .mjs         ES module
  .css         stylesheet
  .htm .html   HTML
  .xml .svg    XML
  .json        JSON
  .py .sh      trimmed, blank lines removed

Other files are left alone. The first failure stops the run.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return apperrors.Wrap(apperrors.ErrUsage, err, "")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GlobalConfig.Minify
			if cmd.Flags().Changed("dry-run") {
				cfg.DryRun = dryRun
			}
			cfg.Exclude = append(cfg.Exclude[:len(cfg.Exclude):len(cfg.Exclude)], exclude...)

			m := minifier.New(
				minifier.WithLogger(logger.Logger),
				minifier.WithExclude(cfg.Exclude...),
				minifier.WithDryRun(cfg.DryRun),
			)

			stats, err := m.MinifyFolder(cmd.Context(), args[0])
			if err != nil {
				return classify(err)
			}

			verb := "Minified"
			if cfg.DryRun {
				verb = "Would minify"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d files (%d skipped): %d -> %d bytes\n",
				verb, stats.Processed, stats.Skipped, stats.BytesBefore, stats.BytesAfter)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Minify without writing files")
	cmd.Flags().StringArrayVar(&exclude, "exclude", nil, "Glob of paths to skip, relative to <folder> (repeatable)")

	return cmd
}

// classify tags engine failures for the exit code; walk, I/O and
// cancellation errors are returned as they are.
func classify(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) || errors.Is(err, context.Canceled) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrEngine, err, "")
}
