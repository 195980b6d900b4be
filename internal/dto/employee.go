package dto

// ── 직원 모듈 DTO ──

// CreateEmployeeRequest 직원 등록 요청
// 시급은 최저임금 미만이면 서비스 계층에서 거부한다.
type CreateEmployeeRequest struct {
	Name       string `json:"name"        binding:"required,min=1,max=100"`
	Position   string `json:"position"    binding:"omitempty,oneof=staff manager"`
	HourlyWage int64  `json:"hourly_wage" binding:"required,min=1"`
}

// UpdateEmployeeRequest 직원 수정 요청
type UpdateEmployeeRequest struct {
	Name       *string `json:"name"        binding:"omitempty,min=1,max=100"`
	Position   *string `json:"position"    binding:"omitempty,oneof=staff manager"`
	HourlyWage *int64  `json:"hourly_wage" binding:"omitempty,min=1"`
	IsActive   *bool   `json:"is_active"`
	Version    int     `json:"version"     binding:"required,min=1"`
}

// EmployeeListRequest 직원 목록 조회 파라미터
type EmployeeListRequest struct {
	ActiveOnly bool `form:"active_only"`
}

// EmployeeResponse 직원 응답
type EmployeeResponse struct {
	EmployeeID int64  `json:"employee_id"`
	StoreID    string `json:"store_id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	HourlyWage int64  `json:"hourly_wage"`
	IsActive   bool   `json:"is_active"`
	Version    int    `json:"version"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
