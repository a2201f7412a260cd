package cli

import (
	"github.com/spf13/cobra"

	"flux-pwa-generator/config"
	apperrors "flux-pwa-generator/pkg/errors"
	"flux-pwa-generator/pkg/logger"
)

func NewRootCommand() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	root := &cobra.Command{
		Use:   "flux-pwa-generator",
		Short: "Build helpers for Progressive Web Apps",
		Long: `flux-pwa-generator prepares Progressive Web App sources for release.

The minify command rewrites scripts, stylesheets, markup, JSON, python and
shell files of a folder in place.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadConfig(configPath); err != nil {
				return apperrors.Wrap(apperrors.ErrConfig, err, "Failed to load "+configPath)
			}
			if cmd.Flags().Changed("log-level") {
				config.GlobalConfig.Log.Level = logLevel
			}
			return logger.Init(logger.Options{
				Level:  config.GlobalConfig.Log.Level,
				File:   config.GlobalConfig.Log.File,
				Output: cmd.OutOrStdout(),
			})
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return apperrors.Wrap(apperrors.ErrUsage, err, "")
	})

	root.AddCommand(newMinifyCommand())

	return root
}
