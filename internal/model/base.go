package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/agi040922/HR-Management-sub000/internal/engine"
)

// ── PostgreSQL JSONB 커스텀 타입 ──

// WeekData weekly_templates.week_data JSONB 컬럼에 대응하는 주간 스케줄 블롭.
// GORM Scanner/Valuer 인터페이스를 구현한다.
type WeekData engine.Week

// Scan PostgreSQL 이 반환한 JSONB 를 engine.Week 구조로 역직렬화한다.
func (w *WeekData) Scan(src interface{}) error {
	if src == nil {
		*w = WeekData{}
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("WeekData.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(b, (*engine.Week)(w))
}

// Value engine.Week 를 JSONB 텍스트로 직렬화한다.
func (w WeekData) Value() (driver.Value, error) {
	return json.Marshal(engine.Week(w))
}

// Week 엔진 값 타입으로 변환
func (w WeekData) Week() engine.Week { return engine.Week(w) }

// SuggestionList optimization_records.suggestions JSONB 컬럼에 대응.
type SuggestionList []engine.Suggestion

// Scan JSONB → []engine.Suggestion
func (s *SuggestionList) Scan(src interface{}) error {
	if src == nil {
		*s = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("SuggestionList.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(b, (*[]engine.Suggestion)(s))
}

// Value []engine.Suggestion → JSONB
func (s SuggestionList) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]engine.Suggestion(s))
}

// BaseModel 공통 감사 필드 (모든 비즈니스 모델에 임베드)
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	CreatedBy *string   `gorm:"type:uuid"                          json:"created_by,omitempty"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
	UpdatedBy *string   `gorm:"type:uuid"                          json:"updated_by,omitempty"`
}

// SoftDeleteModel 소프트 삭제를 지원하는 감사 필드
type SoftDeleteModel struct {
	BaseModel
	DeletedAt gorm.DeletedAt `gorm:"index"     json:"deleted_at,omitempty"`
	DeletedBy *string        `gorm:"type:uuid" json:"deleted_by,omitempty"`
}

// VersionedModel 낙관적 잠금을 지원하는 소프트 삭제 모델
type VersionedModel struct {
	SoftDeleteModel
	Version int `gorm:"not null;default:1" json:"version"`
}
