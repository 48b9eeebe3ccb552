package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoreSchema(name string) *Schema {
	return &Schema{
		Name: name,
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score":    map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
				"feedback": map[string]any{"type": "string"},
			},
			"required":             []string{"score", "feedback"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"score":85,"feedback":"good recovery"}`)
	assert.NoError(t, validateResponse(scoreSchema("validate-ok"), raw))
}

func TestValidateResponse_NilSchema(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`not even json`)))
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(scoreSchema("validate-malformed"), json.RawMessage(`{"score":`))

	var inv *ErrInvalidResponse
	require.ErrorAs(t, err, &inv)
	assert.Contains(t, inv.Error(), "invalid JSON")
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	err := validateResponse(scoreSchema("validate-missing"), json.RawMessage(`{"score":85}`))

	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}

func TestValidateResponse_OutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"score":150,"feedback":"x"}`)
	err := validateResponse(scoreSchema("validate-range"), raw)

	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}

func TestValidateResponse_CachedSchemaReused(t *testing.T) {
	schema := scoreSchema("validate-cache")

	require.NoError(t, validateResponse(schema, json.RawMessage(`{"score":1,"feedback":"a"}`)))

	_, ok := schemaCache.Load(schema.Name)
	assert.True(t, ok)

	// Second call hits the cache and still validates correctly.
	err := validateResponse(schema, json.RawMessage(`{"score":"bad","feedback":"a"}`))
	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}
