package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/site2api/internal/model"
)

func TestSchema(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fields    []model.Field
		wantNil   bool
		wantProps map[string]string
	}{
		{
			name:    "no fields",
			fields:  nil,
			wantNil: true,
		},
		{
			name: "all names empty",
			fields: []model.Field{
				{Name: "", Type: model.FieldTypeString},
				{Name: "   ", Type: model.FieldTypeInt},
			},
			wantNil: true,
		},
		{
			name: "mixed types",
			fields: []model.Field{
				{Name: "company_mission", Type: model.FieldTypeString},
				{Name: "is_hiring", Type: model.FieldTypeBool},
				{Name: "employee_count", Type: model.FieldTypeInt},
				{Name: "rating", Type: model.FieldTypeFloat},
			},
			wantProps: map[string]string{
				"company_mission": "string",
				"is_hiring":       "boolean",
				"employee_count":  "integer",
				"rating":          "number",
			},
		},
		{
			name: "empty names skipped",
			fields: []model.Field{
				{Name: "mission", Type: model.FieldTypeString},
				{Name: "", Type: model.FieldTypeBool},
			},
			wantProps: map[string]string{"mission": "string"},
		},
		{
			name: "unknown type falls back to string",
			fields: []model.Field{
				{Name: "x", Type: model.FieldType("datetime")},
			},
			wantProps: map[string]string{"x": "string"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			schema := Schema(tt.fields)
			if tt.wantNil {
				assert.Nil(t, schema)
				return
			}
			require.NotNil(t, schema)
			assert.Equal(t, "object", schema["type"])

			props, ok := schema["properties"].(map[string]any)
			require.True(t, ok)
			require.Len(t, props, len(tt.wantProps))
			for name, typ := range tt.wantProps {
				prop, ok := props[name].(map[string]any)
				require.True(t, ok, "missing property %s", name)
				assert.Equal(t, typ, prop["type"])
			}
		})
	}
}
