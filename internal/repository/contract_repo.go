package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/agi040922/HR-Management-sub000/internal/model"
	pkgerrors "github.com/agi040922/HR-Management-sub000/pkg/errors"
)

// ContractRepository 근로계약 데이터 접근 인터페이스
type ContractRepository interface {
	Create(ctx context.Context, c *model.LaborContract) error
	GetByID(ctx context.Context, id string) (*model.LaborContract, error)
	ListByStore(ctx context.Context, storeID string) ([]model.LaborContract, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]model.LaborContract, error)
	Update(ctx context.Context, c *model.LaborContract) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

// contractRepo ContractRepository 의 GORM 구현
type contractRepo struct {
	db *gorm.DB
}

// NewContractRepo ContractRepository 인스턴스 생성
func NewContractRepo(db *gorm.DB) ContractRepository {
	return &contractRepo{db: db}
}

func (r *contractRepo) Create(ctx context.Context, c *model.LaborContract) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contractRepo) GetByID(ctx context.Context, id string) (*model.LaborContract, error) {
	var c model.LaborContract
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("contract_id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contractRepo) ListByStore(ctx context.Context, storeID string) ([]model.LaborContract, error) {
	var cs []model.LaborContract
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&cs).Error
	return cs, err
}

func (r *contractRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]model.LaborContract, error) {
	var cs []model.LaborContract
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&cs).Error
	return cs, err
}

// Update 낙관적 잠금 갱신
func (r *contractRepo) Update(ctx context.Context, c *model.LaborContract) error {
	oldVersion := c.Version
	result := r.db.WithContext(ctx).
		Model(c).
		Where("contract_id = ? AND version = ?", c.ContractID, oldVersion).
		Updates(map[string]interface{}{
			"hourly_wage":  c.HourlyWage,
			"weekly_hours": c.WeeklyHours,
			"start_date":   c.StartDate,
			"end_date":     c.EndDate,
			"workplace":    c.Workplace,
			"duties":       c.Duties,
			"status":       c.Status,
			"updated_by":   c.UpdatedBy,
			"version":      oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	c.Version = oldVersion + 1
	return nil
}

func (r *contractRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.LaborContract{}).
		Where("contract_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
