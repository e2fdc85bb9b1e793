// Package cmd implements the fluentstr command line.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Gobd/fluentstr"
	"github.com/Gobd/fluentstr/internal/config"
	"github.com/Gobd/fluentstr/internal/logging"
)

type app struct {
	cfgFile string
	envFile string
	verbose bool

	cfg *config.Config
	log zerolog.Logger
}

// NewRootCmd returns the fluentstr command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "fluentstr",
		Short: "Chainable text transformations",
		Long: `fluentstr applies chains of text transformations to its input.

Input is taken from the arguments, joined by spaces, or from stdin when
no arguments are given.

Commands:
  apply    - run operations eagerly or as a lazy pipeline
  stats    - character, word and line statistics
  check    - assert rules and print their OpenAPI schema
  convert  - parse the input into a typed value
  recipes  - list operations and configured recipes`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./fluentstr.yml)")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "env file (default: ./.env)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(
		newApplyCmd(a),
		newStatsCmd(a),
		newCheckCmd(a),
		newConvertCmd(a),
		newRecipesCmd(a),
	)
	return rootCmd
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) init(stderr io.Writer) error {
	var opts []config.Option
	if a.cfgFile != "" {
		opts = append(opts, config.WithConfigFile(a.cfgFile))
	}
	if a.envFile != "" {
		opts = append(opts, config.WithEnvFile(a.envFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	a.cfg = cfg
	a.log = logging.New(cfg.Log, stderr)
	fluentstr.SetLogger(a.log)
	return nil
}

// input joins args, or reads stdin when there are none. A single trailing
// newline from stdin is dropped.
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
