package model

import "time"

// OptimizationRecord 스케줄 최적화 이력 테이블 — optimization_records 에 대응
// 실행 시점의 제안 전문을 suggestions JSONB 에 스냅샷으로 보관한다.
type OptimizationRecord struct {
	RecordID        string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"record_id"`
	StoreID         string         `gorm:"type:uuid;not null;index"                       json:"store_id"`
	TemplateID      string         `gorm:"type:uuid;not null"                             json:"template_id"`
	CurrentCost     int64          `gorm:"not null"                                       json:"current_cost"` // 원 단위
	OptimizedCost   int64          `gorm:"not null"                                       json:"optimized_cost"`
	Savings         int64          `gorm:"not null"                                       json:"savings"`
	SavingsPercent  float64        `gorm:"type:numeric(5,2);not null"                     json:"savings_percent"`
	RiskLevel       string         `gorm:"type:varchar(10);not null"                      json:"risk_level"` // LOW | MEDIUM | HIGH
	ComplianceScore float64        `gorm:"type:numeric(4,3);not null"                     json:"compliance_score"`
	Suggestions     SuggestionList `gorm:"type:jsonb;not null;default:'[]'"               json:"suggestions"`
	CreatedAt       time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	CreatedBy       *string        `gorm:"type:uuid"                                      json:"created_by,omitempty"`
}

// TableName 테이블명 지정
func (OptimizationRecord) TableName() string { return "optimization_records" }
