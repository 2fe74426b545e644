package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/dynastyos/dynasty-ops-api/internal/application/dto"
	"github.com/dynastyos/dynasty-ops-api/internal/application/ports"
)

// AIUseCase orquesta la redacción de seguimientos comerciales asistida por IA.
// Aplica un timeout de 10 segundos en cada llamada al LLM para evitar
// que las latencias externas bloqueen los goroutines del servidor.
type AIUseCase struct {
	llm ports.LLMService
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(llm ports.LLMService) *AIUseCase {
	return &AIUseCase{llm: llm}
}

// SuggestFollowUp valida la entrada y delega al servicio de LLM.
// Envuelve el contexto con un timeout de 10 s para respetar los SLAs de la API.
func (uc *AIUseCase) SuggestFollowUp(
	ctx context.Context,
	req dto.AIFollowUpRequest,
) (*dto.AIFollowUpDTO, error) {
	if req.StoreName == "" {
		return nil, fmt.Errorf("store_name es obligatorio")
	}

	// Timeout de 10 s: las llamadas a LLMs pueden demorar varios segundos.
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := uc.llm.SuggestFollowUp(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("seguimiento IA: %w", err)
	}

	return result, nil
}
