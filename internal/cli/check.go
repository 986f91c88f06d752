package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formvalidator/pkg/logger"
	"github.com/dmitrymomot/formvalidator/pkg/validator"
)

// report is the output of the check command.
type report struct {
	Type   validator.PayloadType `json:"type" yaml:"type"`
	Valid  bool                  `json:"valid" yaml:"valid"`
	Errors any                   `json:"errors" yaml:"errors"`
}

func newCheckCmd(a *app) *cobra.Command {
	var (
		sets   []string
		value  string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "check [FILE|-]",
		Short: "Report validity and rule errors of a document",
		Long: `Parses a Validator or ValidatorForm document, applies --set (forms) or
--value (single fields) changes, and prints {"type", "valid", "errors"}.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadDocument(cmd, args)
			if err != nil {
				return err
			}

			var rep report
			switch {
			case doc.form != nil:
				if cmd.Flags().Changed("value") {
					return fmt.Errorf("--value applies to Validator documents; use --set name=value for forms")
				}
				if err := applyChanges(doc.form, sets); err != nil {
					return err
				}
				errs := doc.form.Errors()
				for _, name := range doc.form.Names() {
					if e, ok := errs[name]; ok {
						a.logViolations(cmd.Context(), name, e)
					}
				}
				rep = report{Type: validator.PayloadForm, Valid: doc.form.Valid(), Errors: errs}
			default:
				if len(sets) > 0 {
					return fmt.Errorf("--set applies to ValidatorForm documents; use --value for a single field")
				}
				if cmd.Flags().Changed("value") {
					doc.field.Change(value)
				}
				errs := doc.field.Errors()
				a.logViolations(cmd.Context(), "", errs)
				rep = report{Type: validator.PayloadField, Valid: errs.Empty(), Errors: errs}
			}

			a.log.InfoContext(cmd.Context(), "check finished", logger.Valid(rep.Valid))
			if err := a.write(cmd, rep); err != nil {
				return err
			}
			if strict && !rep.Valid {
				return ErrInvalid
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "change a form field, as name=value (repeatable)")
	cmd.Flags().StringVar(&value, "value", "", "change the value of a single field document")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when the document is not valid")
	return cmd
}

// applyChanges applies name=value assignments in order.
func applyChanges(form *validator.Form, sets []string) error {
	for _, set := range sets {
		name, value, ok := strings.Cut(set, "=")
		if !ok || name == "" {
			return fmt.Errorf("invalid --set %q: expected name=value", set)
		}
		if err := form.Change(name, value); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) logViolations(ctx context.Context, field string, errs validator.Errors) {
	kinds := errs.Kinds()
	if len(kinds) == 0 {
		return
	}
	attrs := []any{logger.Violations(len(kinds))}
	if field != "" {
		attrs = append(attrs, logger.Field(field))
	}
	for _, k := range kinds {
		a.log.DebugContext(ctx, "rule failed", append(attrs, logger.Rule(string(k)))...)
	}
}
