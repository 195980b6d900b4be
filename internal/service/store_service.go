package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/agi040922/HR-Management-sub000/internal/dto"
	"github.com/agi040922/HR-Management-sub000/internal/model"
	"github.com/agi040922/HR-Management-sub000/internal/repository"
)

// ── 매장 모듈 비즈니스 에러 ──

var (
	ErrStoreNotFound  = errors.New("매장을 찾을 수 없습니다")
	ErrStoreForbidden = errors.New("해당 매장에 대한 권한이 없습니다")
	ErrVersionStale   = errors.New("다른 사용자가 먼저 수정했습니다. 새로고침 후 다시 시도하세요")
)

// StoreService 매장 비즈니스 인터페이스
type StoreService interface {
	Create(ctx context.Context, req *dto.CreateStoreRequest, callerID string) (*dto.StoreResponse, error)
	GetByID(ctx context.Context, id string, callerID string) (*dto.StoreResponse, error)
	List(ctx context.Context, req *dto.StoreListRequest, callerID string) ([]dto.StoreResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateStoreRequest, callerID string) (*dto.StoreResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type storeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStoreService StoreService 인스턴스 생성
func NewStoreService(repo *repository.Repository, logger *zap.Logger) StoreService {
	return &storeService{repo: repo, logger: logger}
}

func (s *storeService) Create(ctx context.Context, req *dto.CreateStoreRequest, callerID string) (*dto.StoreResponse, error) {
	store := &model.Store{
		Name:     req.Name,
		OwnerID:  callerID,
		Address:  req.Address,
		Phone:    req.Phone,
		IsActive: true,
	}
	store.CreatedBy = &callerID
	store.UpdatedBy = &callerID

	if err := s.repo.Store.Create(ctx, store); err != nil {
		s.logger.Error("매장 생성 실패", zap.Error(err))
		return nil, err
	}
	return toStoreResponse(store), nil
}

func (s *storeService) GetByID(ctx context.Context, id string, callerID string) (*dto.StoreResponse, error) {
	store, err := s.getOwnedStore(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

func (s *storeService) List(ctx context.Context, req *dto.StoreListRequest, callerID string) ([]dto.StoreResponse, int64, error) {
	page, pageSize := normalizePage(req.Page, req.PageSize)

	stores, total, err := s.repo.Store.ListByOwner(ctx, callerID, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.Error("매장 목록 조회 실패", zap.Error(err))
		return nil, 0, err
	}

	resp := make([]dto.StoreResponse, 0, len(stores))
	for i := range stores {
		resp = append(resp, *toStoreResponse(&stores[i]))
	}
	return resp, total, nil
}

func (s *storeService) Update(ctx context.Context, id string, req *dto.UpdateStoreRequest, callerID string) (*dto.StoreResponse, error) {
	store, err := s.getOwnedStore(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	// 클라이언트가 본 버전 기준으로 갱신해 동시 수정을 감지한다
	store.Version = req.Version
	if req.Name != nil {
		store.Name = *req.Name
	}
	if req.Address != nil {
		store.Address = *req.Address
	}
	if req.Phone != nil {
		store.Phone = *req.Phone
	}
	if req.IsActive != nil {
		store.IsActive = *req.IsActive
	}
	store.UpdatedBy = &callerID

	if err := s.repo.Store.Update(ctx, store); err != nil {
		if isOptimisticLock(err) {
			return nil, ErrVersionStale
		}
		s.logger.Error("매장 수정 실패", zap.String("store_id", id), zap.Error(err))
		return nil, err
	}
	return toStoreResponse(store), nil
}

func (s *storeService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.getOwnedStore(ctx, id, callerID); err != nil {
		return err
	}
	if err := s.repo.Store.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("매장 삭제 실패", zap.String("store_id", id), zap.Error(err))
		return err
	}
	return nil
}

// getOwnedStore 매장 조회 + 소유권 검증 공통 경로
func (s *storeService) getOwnedStore(ctx context.Context, id string, callerID string) (*model.Store, error) {
	store, err := s.repo.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		s.logger.Error("매장 조회 실패", zap.String("store_id", id), zap.Error(err))
		return nil, err
	}
	if store.OwnerID != callerID {
		return nil, ErrStoreForbidden
	}
	return store, nil
}

func toStoreResponse(store *model.Store) *dto.StoreResponse {
	return &dto.StoreResponse{
		StoreID:   store.StoreID,
		Name:      store.Name,
		OwnerID:   store.OwnerID,
		Address:   store.Address,
		Phone:     store.Phone,
		IsActive:  store.IsActive,
		Version:   store.Version,
		CreatedAt: store.CreatedAt.Format(time.RFC3339),
		UpdatedAt: store.UpdatedAt.Format(time.RFC3339),
	}
}
