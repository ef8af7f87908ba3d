package extract

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rotisserie/eris"
)

// NoData is rendered when the provider returned an empty result.
const NoData = "No data available."

// Render decodes a raw extraction payload and renders it as markdown.
// Objects become a one-row table, arrays of objects a multi-row table,
// and bare strings a plain text line.
func Render(data json.RawMessage) (string, error) {
	if len(data) == 0 || string(data) == "null" {
		return NoData, nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return "", eris.Wrap(err, "extract: decode result")
	}

	switch val := v.(type) {
	case string:
		return "Extracted text: " + val, nil
	case map[string]any:
		return MarkdownTable([]map[string]any{Flatten(val)}), nil
	case []any:
		rows := make([]map[string]any, 0, len(val))
		for _, item := range val {
			obj, ok := item.(map[string]any)
			if !ok {
				return "", eris.New("extract: result array contains non-object items")
			}
			rows = append(rows, Flatten(obj))
		}
		return MarkdownTable(rows), nil
	default:
		return "", eris.Errorf("extract: unsupported result type %T", v)
	}
}

// MarkdownTable renders flattened rows as a GitHub-flavored markdown
// table. Columns are the union of all row keys, sorted for stable
// output; missing cells render empty.
func MarkdownTable(rows []map[string]any) string {
	if len(rows) == 0 {
		return NoData
	}

	colSet := map[string]struct{}{}
	for _, row := range rows {
		for k := range row {
			colSet[k] = struct{}{}
		}
	}
	if len(colSet) == 0 {
		return NoData
	}
	cols := make([]string, 0, len(colSet))
	for k := range colSet {
		cols = append(cols, k)
	}
	sort.Strings(cols)

	t := table.NewWriter()

	// Keep field names as the user typed them.
	style := table.StyleDefault
	style.Format.Header = text.FormatDefault
	t.SetStyle(style)

	header := make(table.Row, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	t.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(cols))
		for i, c := range cols {
			if v, ok := row[c]; ok && v != nil {
				r[i] = fmt.Sprintf("%v", v)
			} else {
				r[i] = ""
			}
		}
		t.AppendRow(r)
	}

	return t.RenderMarkdown()
}
