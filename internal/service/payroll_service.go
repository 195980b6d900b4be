package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/agi040922/HR-Management-sub000/internal/dto"
	"github.com/agi040922/HR-Management-sub000/internal/engine"
	"github.com/agi040922/HR-Management-sub000/internal/model"
	"github.com/agi040922/HR-Management-sub000/internal/repository"
)

// ── 급여 모듈 비즈니스 에러 ──

var ErrTemplateStoreMismatch = errors.New("템플릿이 해당 매장 소속이 아닙니다")

// PayrollService 급여 산출 비즈니스 인터페이스.
// 스케줄 템플릿의 슬롯 배정에서 주간 근로시간을 집계하고
// 2025년 법정 요율로 월급 / 4대보험 / 실수령액을 산출한다.
type PayrollService interface {
	// StorePayroll 매장 전체 직원의 급여 명세 요약
	StorePayroll(ctx context.Context, storeID string, templateID string, callerID string) (*dto.StorePayrollResponse, error)
	// EmployeePayroll 직원 1인 급여 명세
	EmployeePayroll(ctx context.Context, employeeID int64, templateID string, callerID string) (*dto.EmployeePayrollResponse, error)
}

type payrollService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPayrollService PayrollService 인스턴스 생성
func NewPayrollService(repo *repository.Repository, logger *zap.Logger) PayrollService {
	return &payrollService{repo: repo, logger: logger}
}

func (s *payrollService) StorePayroll(ctx context.Context, storeID string, templateID string, callerID string) (*dto.StorePayrollResponse, error) {
	tpl, err := s.getStoreTemplate(ctx, storeID, templateID, callerID)
	if err != nil {
		return nil, err
	}

	emps, err := s.repo.Employee.ListByStore(ctx, storeID, true)
	if err != nil {
		s.logger.Error("직원 목록 조회 실패", zap.String("store_id", storeID), zap.Error(err))
		return nil, err
	}

	week := tpl.WeekData.Week()
	resp := &dto.StorePayrollResponse{
		StoreID:    storeID,
		TemplateID: templateID,
		Employees:  make([]dto.EmployeePayrollResponse, 0, len(emps)),
	}

	totalGross := decimal.Zero
	totalCost := decimal.Zero
	for i := range emps {
		item, err := s.buildPayroll(&emps[i], week)
		if err != nil {
			return nil, err
		}
		resp.Employees = append(resp.Employees, *item)
		totalGross = totalGross.Add(item.Monthly.TotalSalary)
		cost, _ := decimal.NewFromString(item.EmployerCost)
		totalCost = totalCost.Add(cost)
	}
	resp.TotalGrossSalary = totalGross.String()
	resp.TotalEmployerCost = totalCost.String()
	return resp, nil
}

func (s *payrollService) EmployeePayroll(ctx context.Context, employeeID int64, templateID string, callerID string) (*dto.EmployeePayrollResponse, error) {
	emp, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("직원 조회 실패", zap.Int64("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	tpl, err := s.getStoreTemplate(ctx, emp.StoreID, templateID, callerID)
	if err != nil {
		return nil, err
	}

	return s.buildPayroll(emp, tpl.WeekData.Week())
}

// buildPayroll 직원 1인의 주간 집계 → 월급 / 실수령액 / 사업주 비용 산출
func (s *payrollService) buildPayroll(emp *model.Employee, week engine.Week) (*dto.EmployeePayrollResponse, error) {
	hours := engine.WeeklyHoursForEmployee(week, emp.EmployeeID)

	monthly, err := engine.CalculateMonthlySalary(hours, emp.HourlyWage)
	if err != nil {
		s.logger.Error("월급 산출 실패", zap.Int64("employee_id", emp.EmployeeID), zap.Error(err))
		return nil, err
	}
	net, err := engine.CalculateNetSalary(monthly.TotalSalary, nil)
	if err != nil {
		return nil, err
	}

	return &dto.EmployeePayrollResponse{
		EmployeeID:   emp.EmployeeID,
		EmployeeName: emp.Name,
		HourlyWage:   emp.HourlyWage,
		WeeklyHours:  hours,
		Monthly:      monthly,
		Net:          net,
		EmployerCost: engine.CalculateEmployerCost(monthly.TotalSalary).String(),
	}, nil
}

// getStoreTemplate 템플릿 조회 + 매장 일치 + 소유권 검증
func (s *payrollService) getStoreTemplate(ctx context.Context, storeID string, templateID string, callerID string) (*model.WeeklyTemplate, error) {
	store, err := s.repo.Store.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		s.logger.Error("매장 조회 실패", zap.String("store_id", storeID), zap.Error(err))
		return nil, err
	}
	if store.OwnerID != callerID {
		return nil, ErrStoreForbidden
	}

	tpl, err := s.repo.Template.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("템플릿 조회 실패", zap.String("template_id", templateID), zap.Error(err))
		return nil, err
	}
	if tpl.StoreID != storeID {
		return nil, ErrTemplateStoreMismatch
	}
	return tpl, nil
}
