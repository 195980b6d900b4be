package handler

import "github.com/agi040922/HR-Management-sub000/internal/service"

// Handler 모든 Handler의 집계 진입점
type Handler struct {
	Store    *StoreHandler
	Employee *EmployeeHandler
	Template *TemplateHandler
	Payroll  *PayrollHandler
	Optimize *OptimizeHandler
	Contract *ContractHandler
	Export   *ExportHandler
}

// NewHandler Handler 집계 생성
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Store:    NewStoreHandler(svc.Store),
		Employee: NewEmployeeHandler(svc.Employee),
		Template: NewTemplateHandler(svc.Template),
		Payroll:  NewPayrollHandler(svc.Payroll),
		Optimize: NewOptimizeHandler(svc.Optimize),
		Contract: NewContractHandler(svc.Contract),
		Export:   NewExportHandler(svc.Export),
	}
}
