package dto

import "github.com/agi040922/HR-Management-sub000/internal/engine"

// ── 최적화 모듈 DTO ──

// OptimizeRequest 스케줄 최적화 실행 요청
type OptimizeRequest struct {
	TemplateID string `json:"template_id" binding:"required,uuid"`
}

// OptimizeResponse 최적화 실행 응답 (이력 ID + 엔진 결과 전문)
type OptimizeResponse struct {
	RecordID string                    `json:"record_id"`
	Result   engine.OptimizationResult `json:"result"`
	Cached   bool                      `json:"cached"`
}

// OptimizationHistoryRequest 최적화 이력 조회 파라미터
type OptimizationHistoryRequest struct {
	Page     int `form:"page,default=1"       binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// OptimizationHistoryItem 최적화 이력 목록 항목
type OptimizationHistoryItem struct {
	RecordID        string  `json:"record_id"`
	TemplateID      string  `json:"template_id"`
	CurrentCost     int64   `json:"current_cost"`
	OptimizedCost   int64   `json:"optimized_cost"`
	Savings         int64   `json:"savings"`
	SavingsPercent  float64 `json:"savings_percent"`
	RiskLevel       string  `json:"risk_level"`
	ComplianceScore float64 `json:"compliance_score"`
	SuggestionCount int     `json:"suggestion_count"`
	CreatedAt       string  `json:"created_at"`
}
