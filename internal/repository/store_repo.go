package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/agi040922/HR-Management-sub000/internal/model"
	pkgerrors "github.com/agi040922/HR-Management-sub000/pkg/errors"
)

// StoreRepository 매장 데이터 접근 인터페이스
type StoreRepository interface {
	Create(ctx context.Context, store *model.Store) error
	GetByID(ctx context.Context, id string) (*model.Store, error)
	ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]model.Store, int64, error)
	Update(ctx context.Context, store *model.Store) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

// storeRepo StoreRepository 의 GORM 구현
type storeRepo struct {
	db *gorm.DB
}

// NewStoreRepo StoreRepository 인스턴스 생성
func NewStoreRepo(db *gorm.DB) StoreRepository {
	return &storeRepo{db: db}
}

func (r *storeRepo) Create(ctx context.Context, store *model.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepo) GetByID(ctx context.Context, id string) (*model.Store, error) {
	var store model.Store
	err := r.db.WithContext(ctx).
		Where("store_id = ?", id).
		First(&store).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepo) ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]model.Store, int64, error) {
	var (
		stores []model.Store
		total  int64
	)
	q := r.db.WithContext(ctx).
		Model(&model.Store{}).
		Where("owner_id = ?", ownerID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&stores).Error
	return stores, total, err
}

// Update 낙관적 잠금 갱신. 버전이 밀렸으면 ErrOptimisticLock 을 반환한다.
func (r *storeRepo) Update(ctx context.Context, store *model.Store) error {
	oldVersion := store.Version
	result := r.db.WithContext(ctx).
		Model(store).
		Where("store_id = ? AND version = ?", store.StoreID, oldVersion).
		Updates(map[string]interface{}{
			"name":       store.Name,
			"address":    store.Address,
			"phone":      store.Phone,
			"is_active":  store.IsActive,
			"updated_by": store.UpdatedBy,
			"version":    oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	store.Version = oldVersion + 1
	return nil
}

func (r *storeRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Store{}).
		Where("store_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
