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

// ── 근로계약 모듈 비즈니스 에러 ──

var (
	ErrContractNotFound    = errors.New("근로계약을 찾을 수 없습니다")
	ErrContractInvalidDate = errors.New("계약 기간이 올바르지 않습니다")
)

const contractDateLayout = "2006-01-02"

// ContractService 근로계약 비즈니스 인터페이스
type ContractService interface {
	Create(ctx context.Context, storeID string, req *dto.CreateContractRequest, callerID string) (*dto.ContractResponse, error)
	GetByID(ctx context.Context, id string, callerID string) (*dto.ContractResponse, error)
	ListByStore(ctx context.Context, storeID string, callerID string) ([]dto.ContractResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateContractRequest, callerID string) (*dto.ContractResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type contractService struct {
	minimumWage int64
	repo        *repository.Repository
	logger      *zap.Logger
}

// NewContractService ContractService 인스턴스 생성
func NewContractService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ContractService {
	return &contractService{minimumWage: cfg.Payroll.MinimumWage, repo: repo, logger: logger}
}

func (s *contractService) Create(ctx context.Context, storeID string, req *dto.CreateContractRequest, callerID string) (*dto.ContractResponse, error) {
	if err := s.checkStoreOwner(ctx, storeID, callerID); err != nil {
		return nil, err
	}
	if req.HourlyWage < s.minimumWage {
		return nil, ErrWageBelowMinimum
	}

	emp, err := s.repo.Employee.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	if emp.StoreID != storeID {
		return nil, ErrEmployeeStoreMism
	}

	startDate, err := time.Parse(contractDateLayout, req.StartDate)
	if err != nil {
		return nil, ErrContractInvalidDate
	}
	var endDate *time.Time
	if req.EndDate != "" {
		ed, err := time.Parse(contractDateLayout, req.EndDate)
		if err != nil || ed.Before(startDate) {
			return nil, ErrContractInvalidDate
		}
		endDate = &ed
	}

	c := &model.LaborContract{
		EmployeeID:  req.EmployeeID,
		StoreID:     storeID,
		HourlyWage:  req.HourlyWage,
		WeeklyHours: req.WeeklyHours,
		StartDate:   startDate,
		EndDate:     endDate,
		Workplace:   req.Workplace,
		Duties:      req.Duties,
		Status:      model.ContractStatusDraft,
	}
	c.CreatedBy = &callerID
	c.UpdatedBy = &callerID

	if err := s.repo.Contract.Create(ctx, c); err != nil {
		s.logger.Error("근로계약 생성 실패", zap.String("store_id", storeID), zap.Error(err))
		return nil, err
	}
	c.Employee = emp
	return toContractResponse(c), nil
}

func (s *contractService) GetByID(ctx context.Context, id string, callerID string) (*dto.ContractResponse, error) {
	c, err := s.getOwnedContract(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	return toContractResponse(c), nil
}

func (s *contractService) ListByStore(ctx context.Context, storeID string, callerID string) ([]dto.ContractResponse, error) {
	if err := s.checkStoreOwner(ctx, storeID, callerID); err != nil {
		return nil, err
	}

	cs, err := s.repo.Contract.ListByStore(ctx, storeID)
	if err != nil {
		s.logger.Error("근로계약 목록 조회 실패", zap.String("store_id", storeID), zap.Error(err))
		return nil, err
	}

	resp := make([]dto.ContractResponse, 0, len(cs))
	for i := range cs {
		resp = append(resp, *toContractResponse(&cs[i]))
	}
	return resp, nil
}

func (s *contractService) Update(ctx context.Context, id string, req *dto.UpdateContractRequest, callerID string) (*dto.ContractResponse, error) {
	c, err := s.getOwnedContract(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	if req.HourlyWage != nil && *req.HourlyWage < s.minimumWage {
		return nil, ErrWageBelowMinimum
	}

	c.Version = req.Version
	if req.HourlyWage != nil {
		c.HourlyWage = *req.HourlyWage
	}
	if req.WeeklyHours != nil {
		c.WeeklyHours = *req.WeeklyHours
	}
	if req.EndDate != nil {
		ed, err := time.Parse(contractDateLayout, *req.EndDate)
		if err != nil || ed.Before(c.StartDate) {
			return nil, ErrContractInvalidDate
		}
		c.EndDate = &ed
	}
	if req.Workplace != nil {
		c.Workplace = *req.Workplace
	}
	if req.Duties != nil {
		c.Duties = *req.Duties
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	c.UpdatedBy = &callerID

	if err := s.repo.Contract.Update(ctx, c); err != nil {
		if isOptimisticLock(err) {
			return nil, ErrVersionStale
		}
		s.logger.Error("근로계약 수정 실패", zap.String("contract_id", id), zap.Error(err))
		return nil, err
	}
	return toContractResponse(c), nil
}

func (s *contractService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.getOwnedContract(ctx, id, callerID); err != nil {
		return err
	}
	if err := s.repo.Contract.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("근로계약 삭제 실패", zap.String("contract_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *contractService) checkStoreOwner(ctx context.Context, storeID string, callerID string) error {
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

func (s *contractService) getOwnedContract(ctx context.Context, id string, callerID string) (*model.LaborContract, error) {
	c, err := s.repo.Contract.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		s.logger.Error("근로계약 조회 실패", zap.String("contract_id", id), zap.Error(err))
		return nil, err
	}
	if err := s.checkStoreOwner(ctx, c.StoreID, callerID); err != nil {
		return nil, err
	}
	return c, nil
}

func toContractResponse(c *model.LaborContract) *dto.ContractResponse {
	resp := &dto.ContractResponse{
		ContractID:  c.ContractID,
		EmployeeID:  c.EmployeeID,
		StoreID:     c.StoreID,
		HourlyWage:  c.HourlyWage,
		WeeklyHours: c.WeeklyHours,
		StartDate:   c.StartDate.Format(contractDateLayout),
		Workplace:   c.Workplace,
		Duties:      c.Duties,
		Status:      c.Status,
		Version:     c.Version,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
	if c.EndDate != nil {
		resp.EndDate = c.EndDate.Format(contractDateLayout)
	}
	if c.Employee != nil {
		resp.EmployeeName = c.Employee.Name
	}
	return resp
}
