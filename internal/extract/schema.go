// Package extract builds extraction schemas and renders extraction
// results as markdown tables.
package extract

import (
	"strings"

	"github.com/sells-group/site2api/internal/model"
)

// Schema builds a JSON-schema object from the schema-builder fields.
// Fields with empty names are skipped; when no field has a name the
// result is nil, which means prompt-only extraction.
func Schema(fields []model.Field) map[string]any {
	props := map[string]any{}
	for _, f := range fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			continue
		}
		props[name] = map[string]any{"type": f.Type.JSONType()}
	}
	if len(props) == 0 {
		return nil
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
	}
}
