package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"data-gate/internal/logging"
	"data-gate/internal/source"
)

var (
	cfgFile string
	RunID   string
	Logger  *zerolog.Logger
)

// errRejected makes a strict run exit non-zero without printing usage.
var errRejected = errors.New("file rejected")

var RootCmd = &cobra.Command{
	Use:   "data-gate",
	Short: "Check uploaded data files against a rule sheet",
	Long: `
     _       _                       _
  __| | __ _| |_ __ _    __ _  __ _| |_ ___
 / _  |/ _  | __/ _  |  / _  |/ _  | __/ _ \
| (_| | (_| | || (_| | | (_| | (_| | ||  __/
 \__,_|\__,_|\__\__,_|  \__, |\__,_|\__\___|
                        |___/
DATA GATE - schema reconciliation for CSV and spreadsheet uploads
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		RunID = uuid.New().String()
		base := logging.NewLogger(&logging.Config{LogLevel: viper.GetString("log_level")})
		logger := base.With().Str("run_id", RunID).Logger()
		Logger = &logger
		logging.SetGlobalLogger(Logger)

		if f := viper.ConfigFileUsed(); f != "" {
			Logger.Debug().Str("file", f).Msg("using config file")
		}
		return nil
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := source.DefaultOptions()
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./data-gate.yaml)")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.String("encoding", defaults.Encoding, "encoding of CSV input (utf-8, iso-8859-1, iso-8859-15, windows-1252)")
	flags.String("separator", defaults.Separator, `field separator of CSV input (";", ",", "|", "\t")`)
	flags.String("quoting", defaults.Quoting, "quote character of CSV input (none, single, double)")
	flags.String("vocabulary", "", "data type vocabulary (default, reduced or a configured name)")
	flags.String("out-separator", ",", "field separator of written files")
	flags.String("out-quoting", "double", "quoting of written files (none, all, single, double)")

	viper.BindPFlag("log_level", flags.Lookup("log-level"))
	viper.BindPFlag("input.encoding", flags.Lookup("encoding"))
	viper.BindPFlag("input.separator", flags.Lookup("separator"))
	viper.BindPFlag("input.quoting", flags.Lookup("quoting"))
	viper.BindPFlag("vocabulary", flags.Lookup("vocabulary"))
	viper.BindPFlag("output.separator", flags.Lookup("out-separator"))
	viper.BindPFlag("output.quoting", flags.Lookup("out-quoting"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("data-gate")
		viper.SetConfigType("yaml")
	}

	// DATA_GATE_INPUT_ENCODING overrides input.encoding, and so on.
	viper.SetEnvPrefix("data_gate")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
		}
	}
}
