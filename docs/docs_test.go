package docs

import (
	"encoding/json"
	"testing"
)

func TestSwaggerInfoRegistered(t *testing.T) {
	if SwaggerInfo == nil {
		t.Fatal("swagger info not initialized")
	}
	if SwaggerInfo.Title == "" {
		t.Fatal("swagger info missing title")
	}
}

func TestSwaggerDocListsRoutes(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("swagger doc is not valid JSON: %v", err)
	}
	for _, path := range []string{
		"/health", "/api/status", "/api/dashboard", "/api/summary", "/api/decision",
		"/api/signals", "/api/charts/{chart}", "/api/render/{chart}",
	} {
		if _, ok := doc.Paths[path]["get"]; !ok {
			t.Errorf("missing GET %s", path)
		}
	}
}
