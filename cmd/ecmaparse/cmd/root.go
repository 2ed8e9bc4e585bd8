package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	cfgFile    string
	verbose    bool
	jsonLogs   bool
	sourceType string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ecmaparse",
	Short: "ECMAScript lexer and parser front end",
	Long: `ecmaparse tokenizes and parses ECMAScript source text and prints the
resulting token stream or Abstract Syntax Tree.

This is a syntax front end only: no evaluation, no module resolution, no
semantic analysis beyond the early errors ECMA-262 requires of a parser.`,
	Version:           Version,
	PersistentPreRunE: initConfig,
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./.ecmaparse.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "emit structured JSON logs instead of human-readable output")
	rootCmd.PersistentFlags().StringVar(&sourceType, "source-type", "unknown", "grammar to parse under: script, module, or unknown (module if a top-level import/export is found)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("json-logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	_ = viper.BindPFlag("source-type", rootCmd.PersistentFlags().Lookup("source-type"))
}

// initConfig loads .ecmaparse.yaml (if present) and ECMAPARSE_* environment
// overrides via viper, then builds the zap logger every subcommand uses.
func initConfig(cmd *cobra.Command, args []string) error {
	v := viper.GetViper()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".ecmaparse")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("ECMAPARSE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	verbose = v.GetBool("verbose")
	jsonLogs = v.GetBool("json-logs")
	if st := v.GetString("source-type"); st != "" {
		sourceType = st
	}

	var zcfg zap.Config
	if jsonLogs {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	if !verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	built, err := zcfg.Build()
	if err != nil {
		logger = zap.NewNop()
	} else {
		logger = built
	}
	return nil
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
