package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDocListsRoutes(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "MDDRC Training API", doc.Info.Title)
	assert.NotEmpty(t, doc.Paths)

	tests := []struct {
		path   string
		method string
	}{
		{"/api/auth/login", "post"},
		{"/api/sessions/{id}/release/{gate}", "post"},
		{"/api/sessions/{id}/assigned-participants", "get"},
		{"/api/certificates/upload/{sid}/{pid}", "post"},
		{"/api/admin/data-management/audit-logs/{type}/{id}", "get"},
	}
	for _, tc := range tests {
		assert.Contains(t, doc.Paths[tc.path], tc.method, tc.path)
	}
	assert.Contains(t, doc.Definitions, "dto.LoginRequest")
	assert.Contains(t, doc.Definitions, "models.User")
}
