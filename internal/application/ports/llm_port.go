package ports

import (
	"context"

	"github.com/dynastyos/dynasty-ops-api/internal/application/dto"
)

// LLMService define el puerto de salida hacia el oráculo de completado de
// texto (Anthropic, Gemini, mock). La aplicación solo conoce este contrato,
// no la implementación concreta (DIP).
type LLMService interface {
	// SuggestFollowUp redacta un mensaje de seguimiento para una tienda a
	// partir de su contexto (estado, días sin visita, incidencia abierta).
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	SuggestFollowUp(ctx context.Context, req dto.AIFollowUpRequest) (*dto.AIFollowUpDTO, error)
}
