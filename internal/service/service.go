package service

import (
	"go.uber.org/zap"

	"github.com/agi040922/HR-Management-sub000/config"
	"github.com/agi040922/HR-Management-sub000/internal/repository"
	"github.com/agi040922/HR-Management-sub000/pkg/redis"
)

// Service 모든 Service 의 집합 진입점
type Service struct {
	Store    StoreService
	Employee EmployeeService
	Template TemplateService
	Payroll  PayrollService
	Optimize OptimizeService
	Contract ContractService
	Export   ExportService
}

// NewService Service 집합 생성
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	cache *redis.Client,
	logger *zap.Logger,
) *Service {
	payroll := NewPayrollService(repo, logger)
	return &Service{
		Store:    NewStoreService(repo, logger),
		Employee: NewEmployeeService(cfg, repo, logger),
		Template: NewTemplateService(repo, logger),
		Payroll:  payroll,
		Optimize: NewOptimizeService(cfg, repo, cache, logger),
		Contract: NewContractService(cfg, repo, logger),
		Export:   NewExportService(repo, payroll, logger),
	}
}
