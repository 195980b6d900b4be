package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/agi040922/HR-Management-sub000/config"
	"github.com/agi040922/HR-Management-sub000/internal/dto"
	"github.com/agi040922/HR-Management-sub000/internal/model"
	"github.com/agi040922/HR-Management-sub000/internal/repository"
)

// ── 직원 모듈 비즈니스 에러 ──

var (
	ErrEmployeeNotFound  = errors.New("직원을 찾을 수 없습니다")
	ErrWageBelowMinimum  = errors.New("시급이 최저임금보다 낮습니다")
	ErrEmployeeStoreMism = errors.New("직원이 해당 매장 소속이 아닙니다")
)

// EmployeeService 직원 비즈니스 인터페이스
type EmployeeService interface {
	Create(ctx context.Context, storeID string, req *dto.CreateEmployeeRequest, callerID string) (*dto.EmployeeResponse, error)
	GetByID(ctx context.Context, id int64, callerID string) (*dto.EmployeeResponse, error)
	ListByStore(ctx context.Context, storeID string, req *dto.EmployeeListRequest, callerID string) ([]dto.EmployeeResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest, callerID string) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, id int64, callerID string) error
}

type employeeService struct {
	minimumWage int64
	repo        *repository.Repository
	logger      *zap.Logger
}

// NewEmployeeService EmployeeService 인스턴스 생성.
// 최저임금은 설정에서 주입한다 (연도 개정 시 배포 없이 변경 가능).
func NewEmployeeService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{minimumWage: cfg.Payroll.MinimumWage, repo: repo, logger: logger}
}

func (s *employeeService) Create(ctx context.Context, storeID string, req *dto.CreateEmployeeRequest, callerID string) (*dto.EmployeeResponse, error) {
	if err := s.checkStoreOwner(ctx, storeID, callerID); err != nil {
		return nil, err
	}
	if req.HourlyWage < s.minimumWage {
		return nil, ErrWageBelowMinimum
	}

	position := req.Position
	if position == "" {
		position = model.PositionStaff
	}

	emp := &model.Employee{
		StoreID:    storeID,
		Name:       req.Name,
		Position:   position,
		HourlyWage: req.HourlyWage,
		IsActive:   true,
	}
	emp.CreatedBy = &callerID
	emp.UpdatedBy = &callerID

	if err := s.repo.Employee.Create(ctx, emp); err != nil {
		s.logger.Error("직원 등록 실패", zap.String("store_id", storeID), zap.Error(err))
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

func (s *employeeService) GetByID(ctx context.Context, id int64, callerID string) (*dto.EmployeeResponse, error) {
	emp, err := s.getOwnedEmployee(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

func (s *employeeService) ListByStore(ctx context.Context, storeID string, req *dto.EmployeeListRequest, callerID string) ([]dto.EmployeeResponse, error) {
	if err := s.checkStoreOwner(ctx, storeID, callerID); err != nil {
		return nil, err
	}

	emps, err := s.repo.Employee.ListByStore(ctx, storeID, req.ActiveOnly)
	if err != nil {
		s.logger.Error("직원 목록 조회 실패", zap.String("store_id", storeID), zap.Error(err))
		return nil, err
	}

	resp := make([]dto.EmployeeResponse, 0, len(emps))
	for i := range emps {
		resp = append(resp, *toEmployeeResponse(&emps[i]))
	}
	return resp, nil
}

func (s *employeeService) Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest, callerID string) (*dto.EmployeeResponse, error) {
	emp, err := s.getOwnedEmployee(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	if req.HourlyWage != nil && *req.HourlyWage < s.minimumWage {
		return nil, ErrWageBelowMinimum
	}

	emp.Version = req.Version
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.HourlyWage != nil {
		emp.HourlyWage = *req.HourlyWage
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}
	emp.UpdatedBy = &callerID

	if err := s.repo.Employee.Update(ctx, emp); err != nil {
		if isOptimisticLock(err) {
			return nil, ErrVersionStale
		}
		s.logger.Error("직원 수정 실패", zap.Int64("employee_id", id), zap.Error(err))
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

func (s *employeeService) Delete(ctx context.Context, id int64, callerID string) error {
	if _, err := s.getOwnedEmployee(ctx, id, callerID); err != nil {
		return err
	}
	if err := s.repo.Employee.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("직원 삭제 실패", zap.Int64("employee_id", id), zap.Error(err))
		return err
	}
	return nil
}

// checkStoreOwner 매장 존재 + 소유권 검증
func (s *employeeService) checkStoreOwner(ctx context.Context, storeID string, callerID string) error {
	store, err := s.repo.Store.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStoreNotFound
		}
		s.logger.Error("매장 조회 실패", zap.String("store_id", storeID), zap.Error(err))
		return err
	}
	if store.OwnerID != callerID {
		return ErrStoreForbidden
	}
	return nil
}

// getOwnedEmployee 직원 조회 후 소속 매장의 소유권까지 검증
func (s *employeeService) getOwnedEmployee(ctx context.Context, id int64, callerID string) (*model.Employee, error) {
	emp, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("직원 조회 실패", zap.Int64("employee_id", id), zap.Error(err))
		return nil, err
	}
	if err := s.checkStoreOwner(ctx, emp.StoreID, callerID); err != nil {
		return nil, err
	}
	return emp, nil
}

func toEmployeeResponse(emp *model.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		EmployeeID: emp.EmployeeID,
		StoreID:    emp.StoreID,
		Name:       emp.Name,
		Position:   emp.Position,
		HourlyWage: emp.HourlyWage,
		IsActive:   emp.IsActive,
		Version:    emp.Version,
		CreatedAt:  emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  emp.UpdatedAt.Format(time.RFC3339),
	}
}
