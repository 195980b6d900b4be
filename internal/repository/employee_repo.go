package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/agi040922/HR-Management-sub000/internal/model"
	pkgerrors "github.com/agi040922/HR-Management-sub000/pkg/errors"
)

// EmployeeRepository 직원 데이터 접근 인터페이스
type EmployeeRepository interface {
	Create(ctx context.Context, emp *model.Employee) error
	GetByID(ctx context.Context, id int64) (*model.Employee, error)
	ListByStore(ctx context.Context, storeID string, activeOnly bool) ([]model.Employee, error)
	Update(ctx context.Context, emp *model.Employee) error
	Delete(ctx context.Context, id int64, deletedBy string) error
}

// employeeRepo EmployeeRepository 의 GORM 구현
type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo EmployeeRepository 인스턴스 생성
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, emp *model.Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *employeeRepo) GetByID(ctx context.Context, id int64) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", id).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepo) ListByStore(ctx context.Context, storeID string, activeOnly bool) ([]model.Employee, error) {
	var emps []model.Employee
	q := r.db.WithContext(ctx).
		Where("store_id = ?", storeID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("employee_id ASC").Find(&emps).Error
	return emps, err
}

// Update 낙관적 잠금 갱신
func (r *employeeRepo) Update(ctx context.Context, emp *model.Employee) error {
	oldVersion := emp.Version
	result := r.db.WithContext(ctx).
		Model(emp).
		Where("employee_id = ? AND version = ?", emp.EmployeeID, oldVersion).
		Updates(map[string]interface{}{
			"name":        emp.Name,
			"position":    emp.Position,
			"hourly_wage": emp.HourlyWage,
			"is_active":   emp.IsActive,
			"updated_by":  emp.UpdatedBy,
			"version":     oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	emp.Version = oldVersion + 1
	return nil
}

func (r *employeeRepo) Delete(ctx context.Context, id int64, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("employee_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
