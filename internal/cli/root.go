package cli

import (
	"io"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/xrpicker/xrpicker/internal/branding"
	"github.com/xrpicker/xrpicker/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose bool
	logger  = log.Default()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` finds the OpenXR runtimes and implicit API layers installed on this
machine, shows which ones are active, and switches between them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		xdg.Reload()
		config.Load()
		setupLogging(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// setupLogging installs the process-wide logger. --verbose wins over the
// log_level setting; an unknown level falls back to the default.
func setupLogging(w io.Writer) {
	level, err := log.ParseLevel(strings.ToLower(config.LogLevel()))
	if err != nil {
		level = log.WarnLevel
	}
	if verbose {
		level = log.DebugLevel
	}
	logger = log.NewWithOptions(w, log.Options{
		Prefix: branding.CLIName(),
		Level:  level,
	})
	log.SetDefault(logger)
	if err != nil {
		logger.Warn("ignoring invalid log level", "key", config.KeyLogLevel, "value", config.LogLevel())
	}
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
