package ideaform

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capstone-ideas/ideagen-backend/internal/idea_generation/domain"
)

func TestEndpointClient_Generate(t *testing.T) {
	var (
		gotPath   string
		gotMethod string
		gotCT     string
		gotReq    domain.GenerationRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod, gotCT = r.URL.Path, r.Method, r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"output":"**Title**: Tide"}`))
	}))
	defer srv.Close()

	client := NewEndpointClient(srv.URL+"/api/", nil)
	req := domain.GenerationRequest{Body: "oceans", Categories: []string{"Environment", "Data Science"}}

	out, err := client.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "**Title**: Tide", out)

	assert.Equal(t, "/api/generate", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotCT)
	if diff := cmp.Diff(req, gotReq); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestEndpointClient_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"server error", http.StatusInternalServerError, `{"error":"Internal Server Error"}`, "status 500: Internal Server Error"},
		{"bad request", http.StatusBadRequest, `{"error":"Missing \"fields\" in request data"}`, "status 400"},
		{"created is not ok", http.StatusCreated, `{"output":"x"}`, "status 201"},
		{"malformed body", http.StatusOK, `<html>`, "failed to decode response"},
		{"missing output", http.StatusOK, `{"result":"x"}`, "response has no output"},
		{"null output", http.StatusOK, `{"output":null}`, "response has no output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewEndpointClient(srv.URL, nil).Generate(context.Background(), domain.GenerationRequest{Categories: []string{"Gaming"}})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEndpointClient_EmptyOutputIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"output":""}`))
	}))
	defer srv.Close()

	out, err := NewEndpointClient(srv.URL, nil).Generate(context.Background(), domain.GenerationRequest{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestEndpointClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewEndpointClient(url, nil).Generate(context.Background(), domain.GenerationRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to call generation endpoint")
}
