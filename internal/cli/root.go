package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formvalidator/pkg/config"
	"github.com/dmitrymomot/formvalidator/pkg/logger"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

var outputFormats = []string{outputJSON, outputYAML}

// ErrInvalid is returned by check --strict when the document does not validate.
var ErrInvalid = errors.New("document is not valid")

// app carries state shared by every command of one invocation.
type app struct {
	cfg    Config
	output string
	log    *slog.Logger
}

// NewRootCmd builds the formcheck command tree.
func NewRootCmd(cfg Config) *cobra.Command {
	a := &app{cfg: cfg, log: logger.Discard()}

	root := &cobra.Command{
		Use:           "formcheck",
		Short:         "Check and convert serialized validator fields and forms",
		Long:          `Reads a serialized Validator or ValidatorForm document (JSON or YAML), applies value changes and reports validity and rule errors.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(outputFormats, a.output) {
				return fmt.Errorf("invalid output format: %s (valid: %v)", a.output, outputFormats)
			}
			if a.cfg.LogFormat != logger.FormatJSON && a.cfg.LogFormat != logger.FormatText {
				return fmt.Errorf("invalid log format: %s", a.cfg.LogFormat)
			}
			a.log = logger.New(
				logger.WithEnvironment(a.cfg.Env, "formcheck"),
				logger.WithLevel(a.cfg.LogLevel),
				logger.WithFormat(a.cfg.LogFormat),
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithContextValue("source", sourceKey{}),
				logger.WithContextExtractors(payloadFromContext),
			).With(logger.Command(cmd.Name()))
			cmd.SetContext(context.WithValue(cmd.Context(), sourceKey{}, inputSource(args)))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.output, "output", "o", cfg.Output, "output format (json|yaml)")
	root.AddCommand(newCheckCmd(a), newConvertCmd(a))
	return root
}

// Execute loads configuration from the environment and runs the command
// tree. Exit code 1 indicates an error or, with --strict, an invalid document.
func Execute() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "formcheck: %v\n", err)
		os.Exit(1)
	}

	root := NewRootCmd(cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "formcheck: %v\n", err)
		os.Exit(1)
	}
}
