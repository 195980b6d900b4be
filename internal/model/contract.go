package model

import "time"

// 근로계약 상태
const (
	ContractStatusDraft      = "draft"
	ContractStatusSigned     = "signed"
	ContractStatusTerminated = "terminated"
)

// LaborContract 근로계약 테이블 — labor_contracts 에 대응
type LaborContract struct {
	ContractID  string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"contract_id"`
	EmployeeID  int64      `gorm:"not null;index"                                 json:"employee_id"`
	StoreID     string     `gorm:"type:uuid;not null;index"                       json:"store_id"`
	HourlyWage  int64      `gorm:"not null"                                       json:"hourly_wage"`
	WeeklyHours float64    `gorm:"type:numeric(5,2);not null"                     json:"weekly_hours"`
	StartDate   time.Time  `gorm:"type:date;not null"                             json:"start_date"`
	EndDate     *time.Time `gorm:"type:date"                                      json:"end_date,omitempty"`
	Workplace   string     `gorm:"type:varchar(255)"                              json:"workplace,omitempty"`
	Duties      string     `gorm:"type:varchar(500)"                              json:"duties,omitempty"`
	Status      string     `gorm:"type:varchar(20);not null;default:'draft'"      json:"status"` // draft | signed | terminated
	VersionedModel

	// 연관
	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`
	Store    *Store    `gorm:"foreignKey:StoreID;references:StoreID"       json:"store,omitempty"`
}

// TableName 테이블명 지정
func (LaborContract) TableName() string { return "labor_contracts" }
