package dto

import "github.com/agi040922/HR-Management-sub000/internal/engine"

// ── 급여 모듈 DTO ──

// PayrollQuery 급여 조회 파라미터
type PayrollQuery struct {
	TemplateID string `form:"template_id" binding:"required,uuid"`
}

// EmployeePayrollResponse 직원 1인 급여 명세 응답
type EmployeePayrollResponse struct {
	EmployeeID   int64                `json:"employee_id"`
	EmployeeName string               `json:"employee_name"`
	HourlyWage   int64                `json:"hourly_wage"`
	WeeklyHours  engine.WeekHours     `json:"weekly_hours"`
	Monthly      engine.MonthlySalary `json:"monthly"`
	Net          engine.NetSalary     `json:"net"`
	EmployerCost string               `json:"employer_cost"` // 원 단위 문자열
}

// StorePayrollResponse 매장 전체 급여 요약 응답
type StorePayrollResponse struct {
	StoreID           string                    `json:"store_id"`
	TemplateID        string                    `json:"template_id"`
	Employees         []EmployeePayrollResponse `json:"employees"`
	TotalGrossSalary  string                    `json:"total_gross_salary"`
	TotalEmployerCost string                    `json:"total_employer_cost"`
}
