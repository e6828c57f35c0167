package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureSchemaReturnsExistingID(t *testing.T) {
	var registerCalls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/subjects/roster_events-value/versions/latest":
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 17, "version": 3})
		case r.Method == http.MethodPost:
			registerCalls++
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewSchemaRegistryClient(server.URL)

	id, err := client.EnsureSchema(context.Background(), "roster_events-value", studentSignedUpSchema)
	require.NoError(t, err)
	require.Equal(t, 17, id)
	require.Zero(t, registerCalls, "existing subjects should not be re-registered")
}

func TestEnsureSchemaRegistersMissingSubject(t *testing.T) {
	var registered struct {
		SchemaType string `json:"schemaType"`
		Schema     string `json:"schema"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
		case r.Method == http.MethodPost && r.URL.Path == "/subjects/roster_events-value/versions":
			require.Equal(t, "application/vnd.schemaregistry.v1+json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&registered))
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 5})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewSchemaRegistryClient(server.URL)

	id, err := client.EnsureSchema(context.Background(), "roster_events-value", studentSignedUpSchema)
	require.NoError(t, err)
	require.Equal(t, 5, id)
	require.Equal(t, "JSON", registered.SchemaType)
	require.JSONEq(t, studentSignedUpSchema, registered.Schema)
}

func TestEnsureSchemaSurfacesRegistryError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error_code":50001,"message":"store is down"}`))
	}))
	defer server.Close()

	client := NewSchemaRegistryClient(server.URL)

	_, err := client.EnsureSchema(context.Background(), "roster_events-value", studentSignedUpSchema)
	require.Error(t, err)
	require.Contains(t, err.Error(), "store is down")
}
