package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	viraconfig "github.com/msto63/vira/foundation/core/config"
	viraerror "github.com/msto63/vira/foundation/core/error"
	viralog "github.com/msto63/vira/foundation/core/log"
	virapreproc "github.com/msto63/vira/frontend/preproc"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "virapre <input.vira> <output>",
	Short: "Vira preprocessor - expands macros and includes",
	Long: `virapre runs the Vira preprocessing stage: it reads raw source,
resolves #include directives, applies #define/#undef macros, and writes
the fully expanded text for the downstream front end.

On any fatal condition (missing include, depth or macro-table overflow,
malformed directive) the output file may be left truncated.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPreprocess,
}

func runPreprocess(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := buildLogger(cfg)

	input, err := os.Open(args[0])
	if err != nil {
		return viraerror.Wrapf(err, "cannot open input %q", args[0]).
			WithCode(viraerror.CodeFileNotFound)
	}
	defer input.Close()

	output, err := os.Create(args[1])
	if err != nil {
		return viraerror.Wrapf(err, "cannot create output %q", args[1]).
			WithCode(viraerror.CodeIO)
	}
	defer output.Close()

	runner := virapreproc.New(virapreproc.Options{
		IncludePaths:    cfg.Preprocessor.IncludePaths,
		MaxMacros:       cfg.Preprocessor.MaxMacros,
		MaxIncludeDepth: cfg.Preprocessor.MaxIncludeDepth,
		Logger:          logger,
	})

	if err := runner.Run(input, output, args[0]); err != nil {
		return err
	}

	logger.Info("Preprocessing completed", viralog.Fields{
		"input":  args[0],
		"output": args[1],
	})
	return nil
}

func loadConfig() (*viraconfig.Config, error) {
	if cfgFile == "" {
		return viraconfig.Default(), nil
	}
	return viraconfig.Load(cfgFile)
}

func buildLogger(cfg *viraconfig.Config) *viralog.Logger {
	level, _ := viralog.ParseLevel(cfg.Log.Level)
	if verbose {
		level = viralog.LevelDebug
	}
	format, _ := viralog.ParseFormat(cfg.Log.Format)

	return viralog.New().
		WithName("virapre").
		WithLevel(level).
		WithFormat(format).
		WithRunID(uuid.NewString())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, diagnostic(err))
		os.Exit(1)
	}
}

// diagnostic renders an error for standard error, preferring the
// positioned form for typed errors
func diagnostic(err error) string {
	var verr *viraerror.Error
	if errors.As(err, &verr) {
		return verr.Diagnostic()
	}
	return err.Error()
}
