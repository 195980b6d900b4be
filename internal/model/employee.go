package model

// 직원 직급
const (
	PositionStaff   = "staff"
	PositionManager = "manager"
)

// Employee 직원 테이블 — employees 에 대응
type Employee struct {
	EmployeeID int64  `gorm:"primaryKey;autoIncrement"                json:"employee_id"`
	StoreID    string `gorm:"type:uuid;not null;index"                json:"store_id"`
	Name       string `gorm:"type:varchar(100);not null"              json:"name"`
	Position   string `gorm:"type:varchar(50);not null;default:'staff'" json:"position"`
	HourlyWage int64  `gorm:"not null"                                json:"hourly_wage"` // 원 단위
	IsActive   bool   `gorm:"not null;default:true"                   json:"is_active"`
	VersionedModel

	// 연관
	Store *Store `gorm:"foreignKey:StoreID;references:StoreID" json:"store,omitempty"`
}

// TableName 테이블명 지정
func (Employee) TableName() string { return "employees" }
