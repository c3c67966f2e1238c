package docs_test

import (
	"encoding/json"
	"testing"

	"boardy/docs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerDocIsValidJSON(t *testing.T) {
	raw := docs.SwaggerInfo.ReadDoc()

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "2.0", doc["swagger"])
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/drag-end")
	assert.Contains(t, paths, "/tasks/{id}/labels/{label_id}")
}
