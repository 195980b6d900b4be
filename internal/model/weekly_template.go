package model

// WeeklyTemplate 주간 스케줄 템플릿 테이블 — weekly_templates 에 대응
// 요일별 영업시간 / 휴게시간 / 슬롯 배정은 week_data JSONB 블롭에 저장한다.
type WeeklyTemplate struct {
	TemplateID  string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"template_id"`
	StoreID     string   `gorm:"type:uuid;not null;index"                       json:"store_id"`
	Name        string   `gorm:"type:varchar(100);not null"                     json:"name"`
	SlotMinutes int      `gorm:"type:smallint;not null;default:30"              json:"slot_minutes"`
	WeekData    WeekData `gorm:"type:jsonb;not null;default:'[]'"               json:"week_data"`
	IsActive    bool     `gorm:"not null;default:true"                          json:"is_active"`
	VersionedModel

	// 연관
	Store *Store `gorm:"foreignKey:StoreID;references:StoreID" json:"store,omitempty"`
}

// TableName 테이블명 지정
func (WeeklyTemplate) TableName() string { return "weekly_templates" }
