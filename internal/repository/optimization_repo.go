package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/agi040922/HR-Management-sub000/internal/model"
)

// OptimizationRepository 최적화 이력 데이터 접근 인터페이스.
// 이력은 불변 스냅샷이므로 갱신/삭제는 제공하지 않는다.
type OptimizationRepository interface {
	Create(ctx context.Context, rec *model.OptimizationRecord) error
	GetByID(ctx context.Context, id string) (*model.OptimizationRecord, error)
	ListByStore(ctx context.Context, storeID string, offset, limit int) ([]model.OptimizationRecord, int64, error)
}

// optimizationRepo OptimizationRepository 의 GORM 구현
type optimizationRepo struct {
	db *gorm.DB
}

// NewOptimizationRepo OptimizationRepository 인스턴스 생성
func NewOptimizationRepo(db *gorm.DB) OptimizationRepository {
	return &optimizationRepo{db: db}
}

func (r *optimizationRepo) Create(ctx context.Context, rec *model.OptimizationRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *optimizationRepo) GetByID(ctx context.Context, id string) (*model.OptimizationRecord, error) {
	var rec model.OptimizationRecord
	err := r.db.WithContext(ctx).
		Where("record_id = ?", id).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *optimizationRepo) ListByStore(ctx context.Context, storeID string, offset, limit int) ([]model.OptimizationRecord, int64, error) {
	var (
		recs  []model.OptimizationRecord
		total int64
	)
	q := r.db.WithContext(ctx).
		Model(&model.OptimizationRecord{}).
		Where("store_id = ?", storeID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&recs).Error
	return recs, total, err
}
