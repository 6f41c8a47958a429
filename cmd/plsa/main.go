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
	virafrontend "github.com/msto63/vira/frontend"
	viraast "github.com/msto63/vira/frontend/ast"
)

var (
	cfgFile  string
	verbose  bool
	printAST bool
	check    bool
)

var rootCmd = &cobra.Command{
	Use:   "plsa <input.vira>",
	Short: "Vira syntax analyzer - lexes, parses, and checks source",
	Long: `plsa runs the Vira front end over an already-preprocessed source
file: lexing, recursive descent parsing with per-statement error
recovery, and an optional semantic check.

The parser reports every syntax error it can recover past; the semantic
checker stops at the first violation.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := buildLogger(cfg)

	source, err := os.ReadFile(args[0])
	if err != nil {
		return viraerror.Wrapf(err, "cannot open input %q", args[0]).
			WithCode(viraerror.CodeFileNotFound)
	}

	engine := virafrontend.NewEngine(virafrontend.Options{
		Logger:         logger,
		CheckSemantics: check,
		MaxSourceSize:  cfg.Frontend.MaxSourceSize,
	})

	result := engine.Run(string(source), args[0])

	// All recovered syntax errors are reported, not just the first
	for _, syntaxErr := range result.SyntaxErrors {
		fmt.Fprintf(os.Stderr, "%s: %s\n", args[0], syntaxErr.Error())
	}

	if result.Err != nil {
		return result.Err
	}
	if len(result.SyntaxErrors) > 0 {
		os.Exit(1)
	}

	if printAST {
		fmt.Print(viraast.NewPrinter().Print(result.Program))
	}

	if check {
		fmt.Println("Syntax check passed.")
	}
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
		WithName("plsa").
		WithLevel(level).
		WithFormat(format).
		WithRunID(uuid.NewString())
}

func init() {
	rootCmd.Flags().BoolVar(&printAST, "ast", false, "print the parsed AST as an indented tree")
	rootCmd.Flags().BoolVar(&check, "check", false, "run the semantic checker")
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
