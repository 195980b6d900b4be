package dto

// ── 근로계약 모듈 DTO ──

// CreateContractRequest 근로계약 생성 요청
type CreateContractRequest struct {
	EmployeeID  int64   `json:"employee_id"  binding:"required,min=1"`
	HourlyWage  int64   `json:"hourly_wage"  binding:"required,min=1"`
	WeeklyHours float64 `json:"weekly_hours" binding:"required,gt=0,lte=52"`
	StartDate   string  `json:"start_date"   binding:"required,len=10"` // YYYY-MM-DD
	EndDate     string  `json:"end_date"     binding:"omitempty,len=10"`
	Workplace   string  `json:"workplace"    binding:"omitempty,max=255"`
	Duties      string  `json:"duties"       binding:"omitempty,max=500"`
}

// UpdateContractRequest 근로계약 수정 요청
type UpdateContractRequest struct {
	HourlyWage  *int64   `json:"hourly_wage"  binding:"omitempty,min=1"`
	WeeklyHours *float64 `json:"weekly_hours" binding:"omitempty,gt=0,lte=52"`
	EndDate     *string  `json:"end_date"     binding:"omitempty,len=10"`
	Workplace   *string  `json:"workplace"    binding:"omitempty,max=255"`
	Duties      *string  `json:"duties"       binding:"omitempty,max=500"`
	Status      *string  `json:"status"       binding:"omitempty,oneof=draft signed terminated"`
	Version     int      `json:"version"      binding:"required,min=1"`
}

// ContractResponse 근로계약 응답
type ContractResponse struct {
	ContractID   string  `json:"contract_id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	StoreID      string  `json:"store_id"`
	HourlyWage   int64   `json:"hourly_wage"`
	WeeklyHours  float64 `json:"weekly_hours"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date,omitempty"`
	Workplace    string  `json:"workplace,omitempty"`
	Duties       string  `json:"duties,omitempty"`
	Status       string  `json:"status"`
	Version      int     `json:"version"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}
