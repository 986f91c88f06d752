package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formvalidator/pkg/logger"
	"github.com/dmitrymomot/formvalidator/pkg/validator"
)

// document is a parsed Validator or ValidatorForm; exactly one is set.
type document struct {
	field *validator.Field
	form  *validator.Form
}

func (d document) toJSON() map[string]any {
	if d.form != nil {
		return d.form.ToJSON()
	}
	return d.field.ToJSON()
}

// readInput reads the file named by args[0], or stdin when it is absent or "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}

// loadDocument reads and parses the input. JSON text is parsed directly,
// anything else as YAML. The detected document type is stored in the command
// context for later log records.
func (a *app) loadDocument(cmd *cobra.Command, args []string) (document, error) {
	data, err := readInput(cmd, args)
	if err != nil {
		return document{}, fmt.Errorf("read input: %w", err)
	}

	kind, err := validator.DetectPayload(data)
	if err != nil {
		a.log.ErrorContext(cmd.Context(), "unrecognised document", logger.Error(err))
		return document{}, err
	}
	cmd.SetContext(withPayload(cmd.Context(), kind))
	ctx := cmd.Context()

	var doc document
	isJSON := json.Valid(data)
	switch kind {
	case validator.PayloadForm:
		if isJSON {
			doc.form, err = validator.ParseForm(data)
		} else {
			doc.form, err = validator.ParseFormYAML(data)
		}
	default:
		if isJSON {
			doc.field, err = validator.ParseField(data)
		} else {
			doc.field, err = validator.ParseFieldYAML(data)
		}
	}
	if err != nil {
		a.log.ErrorContext(ctx, "parse failed", logger.Error(err))
		return document{}, err
	}

	a.log.DebugContext(ctx, "document parsed")
	return doc, nil
}

// write encodes v to the command's output in the selected format.
func (a *app) write(cmd *cobra.Command, v any) error {
	var (
		data []byte
		err  error
	)
	switch a.output {
	case outputYAML:
		data, err = yaml.Marshal(v)
	default:
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
