package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynastyos/dynasty-ops-api/internal/application/dto"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json limpio", `{"message":"hola"}`, `{"message":"hola"}`},
		{"bloque markdown", "```json\n{\"message\":\"hola\"}\n```", `{"message":"hola"}`},
		{"bloque sin lenguaje", "```\n{\"message\":\"hola\"}\n```", `{"message":"hola"}`},
		{"texto alrededor", `Claro, aquí está: {"message":"hola"} ¡Saludos!`, `{"message":"hola"}`},
		{"sin json", "no hay nada estructurado aquí", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.in))
		})
	}
}

func TestNormalizeTone(t *testing.T) {
	assert.Equal(t, "service", normalizeTone(" Service "))
	assert.Equal(t, "retention", normalizeTone("retention"))
	assert.Equal(t, "commercial", normalizeTone("commercial"))
	assert.Equal(t, "commercial", normalizeTone("amistoso")) // fuera del contrato
}

func TestSuggestFollowUp_SinAPIKey(t *testing.T) {
	svc := NewAnthropicService("", "claude-3-5-haiku-20241022", "")

	_, err := svc.SuggestFollowUp(context.Background(), dto.AIFollowUpRequest{StoreName: "Tienda Doña Marta"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
}

func TestSuggestFollowUp_RespuestaValida(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key-test", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		resp := map[string]any{
			"content": []map[string]string{
				{"type": "text", "text": "```json\n{\"message\":\"Hola Tienda Doña Marta\",\"tone\":\"retention\",\"confidence\":1.4,\"reasoning\":\"lleva 30 días sin visita\"}\n```"},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	svc := NewAnthropicService("key-test", "claude-3-5-haiku-20241022", server.URL)

	out, err := svc.SuggestFollowUp(context.Background(), dto.AIFollowUpRequest{
		StoreName:   "Tienda Doña Marta",
		StoreStatus: "at_risk",
		DaysNoVisit: 30,
	})

	require.NoError(t, err)
	assert.Equal(t, "Hola Tienda Doña Marta", out.Message)
	assert.Equal(t, "retention", out.Tone)
	assert.Equal(t, 1.0, out.Confidence, "confidence fuera de rango se recorta a [0,1]")
}

func TestSuggestFollowUp_ErrorDeAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"límite alcanzado"}}`))
	}))
	defer server.Close()

	svc := NewAnthropicService("key-test", "claude-3-5-haiku-20241022", server.URL)

	_, err := svc.SuggestFollowUp(context.Background(), dto.AIFollowUpRequest{StoreName: "Tienda"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit_error")
}
