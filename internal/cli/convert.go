package cli

import (
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [FILE|-]",
		Short: "Re-encode a document in the --output format",
		Long: `Parses a Validator or ValidatorForm document and writes it back in the
format chosen with --output. The document passes through the parser, so
unknown fields are dropped and numbers are normalized.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadDocument(cmd, args)
			if err != nil {
				return err
			}
			return a.write(cmd, doc.toJSON())
		},
	}
}
