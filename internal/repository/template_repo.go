package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/agi040922/HR-Management-sub000/internal/model"
	pkgerrors "github.com/agi040922/HR-Management-sub000/pkg/errors"
)

// TemplateRepository 주간 스케줄 템플릿 데이터 접근 인터페이스
type TemplateRepository interface {
	Create(ctx context.Context, tpl *model.WeeklyTemplate) error
	GetByID(ctx context.Context, id string) (*model.WeeklyTemplate, error)
	ListByStore(ctx context.Context, storeID string) ([]model.WeeklyTemplate, error)
	Update(ctx context.Context, tpl *model.WeeklyTemplate) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

// templateRepo TemplateRepository 의 GORM 구현
type templateRepo struct {
	db *gorm.DB
}

// NewTemplateRepo TemplateRepository 인스턴스 생성
func NewTemplateRepo(db *gorm.DB) TemplateRepository {
	return &templateRepo{db: db}
}

func (r *templateRepo) Create(ctx context.Context, tpl *model.WeeklyTemplate) error {
	return r.db.WithContext(ctx).Create(tpl).Error
}

func (r *templateRepo) GetByID(ctx context.Context, id string) (*model.WeeklyTemplate, error) {
	var tpl model.WeeklyTemplate
	err := r.db.WithContext(ctx).
		Where("template_id = ?", id).
		First(&tpl).Error
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *templateRepo) ListByStore(ctx context.Context, storeID string) ([]model.WeeklyTemplate, error) {
	var tpls []model.WeeklyTemplate
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&tpls).Error
	return tpls, err
}

// Update 낙관적 잠금 갱신. 스케줄 편집은 동시 수정 충돌이 잦아
// 버전 불일치 시 ErrOptimisticLock 으로 클라이언트 재시도를 유도한다.
func (r *templateRepo) Update(ctx context.Context, tpl *model.WeeklyTemplate) error {
	oldVersion := tpl.Version
	result := r.db.WithContext(ctx).
		Model(tpl).
		Where("template_id = ? AND version = ?", tpl.TemplateID, oldVersion).
		Updates(map[string]interface{}{
			"name":         tpl.Name,
			"slot_minutes": tpl.SlotMinutes,
			"week_data":    tpl.WeekData,
			"is_active":    tpl.IsActive,
			"updated_by":   tpl.UpdatedBy,
			"version":      oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	tpl.Version = oldVersion + 1
	return nil
}

func (r *templateRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.WeeklyTemplate{}).
		Where("template_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
