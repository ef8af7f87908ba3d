package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/site2api/internal/extract"
	"github.com/sells-group/site2api/internal/model"
	"github.com/sells-group/site2api/internal/scrape"
	"github.com/sells-group/site2api/pkg/firecrawl"
)

var (
	extractPrompt string
	extractFields []string
)

var extractCmd = &cobra.Command{
	Use:   "extract <url>",
	Short: "Extract structured data from a URL and print it as a markdown table",
	Long: `Extract structured data from a URL via Firecrawl's extract API.

Use --prompt to describe what to extract and --field name:type to
constrain the output schema (types: str, bool, int, float).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if _, err := scrape.ValidateURL(args[0]); err != nil {
			return err
		}

		fields, err := parseFieldFlags(extractFields)
		if err != nil {
			return err
		}

		_, fc, err := buildClients()
		if err != nil {
			return err
		}

		resp, err := fc.Extract(ctx, firecrawl.ExtractRequest{
			URLs:   []string{args[0]},
			Prompt: extractPrompt,
			Schema: extract.Schema(fields),
		})
		if err != nil {
			return err
		}

		status, err := firecrawl.PollExtract(ctx, fc, resp.ID)
		if err != nil {
			return err
		}

		table, err := extract.Render(status.Data)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), table)

		return nil
	},
}

// parseFieldFlags parses repeated --field name:type flags. The type is
// optional and defaults to str.
func parseFieldFlags(raw []string) ([]model.Field, error) {
	fields := make([]model.Field, 0, len(raw))
	for _, f := range raw {
		name, typ, found := strings.Cut(f, ":")
		if name == "" {
			return nil, eris.Errorf("extract: invalid field %q, expected name:type", f)
		}
		ft := model.FieldTypeString
		if found {
			ft = model.FieldType(typ)
			if !ft.Valid() {
				return nil, eris.Errorf("extract: unknown field type %q (want str, bool, int, or float)", typ)
			}
		}
		fields = append(fields, model.Field{Name: name, Type: ft})
	}
	return fields, nil
}

func init() {
	extractCmd.Flags().StringVar(&extractPrompt, "prompt", "", "what to extract from the page")
	extractCmd.Flags().StringArrayVar(&extractFields, "field", nil, "schema field as name:type (repeatable)")
	rootCmd.AddCommand(extractCmd)
}
