package dto

import "github.com/agi040922/HR-Management-sub000/internal/engine"

// ── 주간 스케줄 템플릿 모듈 DTO ──

// CreateTemplateRequest 템플릿 생성 요청
type CreateTemplateRequest struct {
	Name        string `json:"name"         binding:"required,min=1,max=100"`
	SlotMinutes int    `json:"slot_minutes" binding:"omitempty,oneof=10 15 20 30 60"`
}

// UpdateTemplateRequest 템플릿 메타데이터 수정 요청
type UpdateTemplateRequest struct {
	Name     *string `json:"name"      binding:"omitempty,min=1,max=100"`
	IsActive *bool   `json:"is_active"`
	Version  int     `json:"version"   binding:"required,min=1"`
}

// SetOperatingHoursRequest 요일별 영업시간 설정 요청
// is_open=false 이면 시간 필드는 무시되고 해당 요일 배정이 초기화된다.
type SetOperatingHoursRequest struct {
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time"  binding:"omitempty,len=5"`
	CloseTime string `json:"close_time" binding:"omitempty,len=5"`
	Version   int    `json:"version"    binding:"required,min=1"`
}

// BreakPeriodRequest 휴게시간 항목
type BreakPeriodRequest struct {
	Start string `json:"start" binding:"required,len=5"`
	End   string `json:"end"   binding:"required,len=5"`
	Name  string `json:"name"  binding:"omitempty,max=50"`
}

// SetBreaksRequest 요일별 휴게시간 설정 요청
type SetBreaksRequest struct {
	Breaks  []BreakPeriodRequest `json:"breaks"  binding:"dive"`
	Version int                  `json:"version" binding:"required,min=1"`
}

// AssignSlotRequest 슬롯 배정/해제 요청
type AssignSlotRequest struct {
	Day        int    `json:"day"         binding:"min=0,max=6"`
	Slot       string `json:"slot"        binding:"required,len=5"`
	EmployeeID int64  `json:"employee_id" binding:"required,min=1"`
	Version    int    `json:"version"     binding:"required,min=1"`
}

// TemplateResponse 템플릿 응답 (주간 블롭 전문 포함)
type TemplateResponse struct {
	TemplateID  string      `json:"template_id"`
	StoreID     string      `json:"store_id"`
	Name        string      `json:"name"`
	SlotMinutes int         `json:"slot_minutes"`
	Week        engine.Week `json:"week"`
	IsActive    bool        `json:"is_active"`
	Version     int         `json:"version"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}

// TemplateSummaryResponse 템플릿 목록용 요약 응답
type TemplateSummaryResponse struct {
	TemplateID  string `json:"template_id"`
	Name        string `json:"name"`
	SlotMinutes int    `json:"slot_minutes"`
	IsActive    bool   `json:"is_active"`
	Version     int    `json:"version"`
	UpdatedAt   string `json:"updated_at"`
}
