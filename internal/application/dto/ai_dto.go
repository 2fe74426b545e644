package dto

// AIFollowUpRequest body para POST /api/ai/follow-up.
type AIFollowUpRequest struct {
	StoreName    string `json:"store_name" validate:"required"`
	StoreStatus  string `json:"store_status" validate:"omitempty"`
	DaysNoVisit  int    `json:"days_without_visit" validate:"min=0"`
	IssueSummary string `json:"issue_summary" validate:"omitempty,max=500"`
}

// AIFollowUpDTO sugerencia de seguimiento generada por el LLM.
type AIFollowUpDTO struct {
	Message    string  `json:"message"`     // texto listo para enviar a la tienda
	Tone       string  `json:"tone"`        // commercial | service | retention
	Confidence float64 `json:"confidence"`  // 0.0 – 1.0
	Reasoning  string  `json:"reasoning"`
}
