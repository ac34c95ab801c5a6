package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixhire/fixhire-api/internal/domain/model"
	"github.com/fixhire/fixhire-api/internal/ports"
)

func newTestGenerator(t *testing.T, handler http.HandlerFunc) *Generator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	return NewGeneratorWithClient(openai.NewClientWithConfig(cfg), "test-model")
}

func sampleInput() ports.GenerateInput {
	return ports.GenerateInput{
		Customer: model.CustomerInput{
			FullName:               "Juan Dela Cruz",
			Phone:                  "+639171234567",
			PreferredContactMethod: "text",
		},
		Vehicle: model.VehicleInput{
			Year:  "2015",
			Make:  "Toyota",
			Model: "Vios",
		},
		Diagnostic: model.DiagnosticInput{
			OBD2Data: "P0301",
			Symptoms: "Engine rattling at idle, rough start in the morning.",
		},
		Preferences: model.Preferences{
			DetailLevel: "Detailed",
			Language:    "English",
			Tone:        "More Technical",
		},
	}
}

func TestGeneratorGenerate(t *testing.T) {
	t.Parallel()

	var gotBody []byte
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    "cmpl-1",
			"model": "test-model-2024",
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": `{"mostLikelyIssue":"Worn spark plugs"}`}},
			},
		})
	})

	out, err := gen.Generate(context.Background(), sampleInput())
	require.NoError(t, err)
	assert.Equal(t, `{"mostLikelyIssue":"Worn spark plugs"}`, out.RawText)
	assert.Equal(t, "test-model-2024", out.ModelID)

	var req struct {
		Model          string `json:"model"`
		ResponseFormat struct {
			Type string `json:"type"`
		} `json:"response_format"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &req))
	assert.Equal(t, "test-model", req.Model)
	assert.Equal(t, "json_object", req.ResponseFormat.Type)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "expert automotive diagnostic AI")
	assert.Equal(t, "user", req.Messages[1].Role)
	assert.Contains(t, req.Messages[1].Content, "Engine rattling at idle")
	assert.Contains(t, req.Messages[1].Content, `"detailLevel": "Detailed"`)
}

func TestGeneratorGenerateEmptyResponse(t *testing.T) {
	t.Parallel()

	gen := newTestGenerator(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "cmpl-1",
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "   "}},
			},
		})
	})

	_, err := gen.Generate(context.Background(), sampleInput())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestGeneratorGenerateNoChoices(t *testing.T) {
	t.Parallel()

	gen := newTestGenerator(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "cmpl-1", "choices": []any{}})
	})

	_, err := gen.Generate(context.Background(), sampleInput())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestGeneratorGenerateUpstreamError(t *testing.T) {
	t.Parallel()

	gen := newTestGenerator(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	})

	_, err := gen.Generate(context.Background(), sampleInput())
	require.Error(t, err)
}

func TestNewGeneratorRequiresKey(t *testing.T) {
	t.Parallel()

	_, err := NewGenerator("", "")
	require.Error(t, err)

	gen, err := NewGenerator("key", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, gen.model)
}
