package cli

import (
	"github.com/ryuuhei0729/swimtime/internal/config"
	"github.com/ryuuhei0729/swimtime/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

// state shared by the subcommands of one invocation
type app struct {
	verbose    bool
	configPath string
	settings   config.Settings
	logger     *logging.Logger
}

func NewRootCmd() *cobra.Command {
	a := &app{logger: logging.Nop()}

	rootCmd := &cobra.Command{
		Use:   "swimtime",
		Short: "Parse abbreviated swim times and OCR'd practice menus",
		Long: `Swimtime parses the shorthand swimmers use to write lap times.

Quick time tokens such as "31-2", "2-3" or "1-05-3" are expanded using the
previous entry, and raw OCR text of a practice whiteboard is turned into
structured practice menus.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = logging.New(a.verbose, zapcore.AddSync(cmd.ErrOrStderr()))
			return a.loadSettings()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().
		BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&a.configPath, "config", "", "Config file path (default $XDG_CONFIG_HOME/swimtime/config.toml)")

	rootCmd.AddCommand(
		newQuickCmd(a),
		newOCRCmd(a),
		newFormatCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) loadSettings() error {
	path := a.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	a.settings = settings

	a.logger.Debugw("Loaded settings",
		"config", path,
		"format", settings.Format,
		"precise", settings.Precise,
		"reset_on_blank", settings.ResetOnBlank,
	)
	return nil
}

// outputFormat lets --json override the configured format
func (a *app) outputFormat(cmd *cobra.Command) string {
	if cmd.Flags().Changed("json") {
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return "json"
		}
		return "text"
	}
	return a.settings.Format
}

func (a *app) precise(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("precise") {
		v, _ := cmd.Flags().GetBool("precise")
		return v
	}
	return a.settings.Precise
}
