package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/agi040922/HR-Management-sub000/config"
	"github.com/agi040922/HR-Management-sub000/internal/dto"
	"github.com/agi040922/HR-Management-sub000/internal/engine"
	"github.com/agi040922/HR-Management-sub000/internal/model"
	"github.com/agi040922/HR-Management-sub000/internal/repository"
	"github.com/agi040922/HR-Management-sub000/pkg/redis"
)

// ── 최적화 모듈 비즈니스 에러 ──

var ErrOptimizationNotFound = errors.New("최적화 이력을 찾을 수 없습니다")

// OptimizeService 스케줄 비용 최적화 비즈니스 인터페이스.
// 실행 결과는 이력으로 영속화하고, 동일 템플릿 버전에 대한
// 재실행은 캐시에서 반환한다 (엔진은 결정적이므로 안전).
type OptimizeService interface {
	Run(ctx context.Context, storeID string, req *dto.OptimizeRequest, callerID string) (*dto.OptimizeResponse, error)
	History(ctx context.Context, storeID string, req *dto.OptimizationHistoryRequest, callerID string) ([]dto.OptimizationHistoryItem, int64, error)
	GetRecord(ctx context.Context, storeID string, recordID string, callerID string) (*model.OptimizationRecord, error)
}

type optimizeService struct {
	cacheTTL time.Duration
	repo     *repository.Repository
	cache    *redis.Client
	logger   *zap.Logger
}

// NewOptimizeService OptimizeService 인스턴스 생성. cache 는 nil 허용 (캐시 없이 동작).
func NewOptimizeService(cfg *config.Config, repo *repository.Repository, cache *redis.Client, logger *zap.Logger) OptimizeService {
	return &optimizeService{
		cacheTTL: cfg.Payroll.OptimizeCacheTTL,
		repo:     repo,
		cache:    cache,
		logger:   logger,
	}
}

func (s *optimizeService) Run(ctx context.Context, storeID string, req *dto.OptimizeRequest, callerID string) (*dto.OptimizeResponse, error) {
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

	tpl, err := s.repo.Template.GetByID(ctx, req.TemplateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("템플릿 조회 실패", zap.String("template_id", req.TemplateID), zap.Error(err))
		return nil, err
	}
	if tpl.StoreID != storeID {
		return nil, ErrTemplateStoreMismatch
	}

	// 동일 템플릿 버전에 대한 재실행은 캐시로 응답
	cacheKey := fmt.Sprintf("optimize:%s:v%d", tpl.TemplateID, tpl.Version)
	if s.cache != nil {
		var cached dto.OptimizeResponse
		if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
			cached.Cached = true
			return &cached, nil
		} else if !errors.Is(err, redis.ErrCacheMiss) {
			s.logger.Warn("최적화 캐시 조회 실패", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	emps, err := s.repo.Employee.ListByStore(ctx, storeID, true)
	if err != nil {
		s.logger.Error("직원 목록 조회 실패", zap.String("store_id", storeID), zap.Error(err))
		return nil, err
	}

	week := tpl.WeekData.Week()
	schedules := make([]engine.WorkerSchedule, 0, len(emps))
	for _, emp := range emps {
		schedules = append(schedules, engine.WorkerSchedule{
			Worker: engine.Worker{
				ID:         emp.EmployeeID,
				Name:       emp.Name,
				HourlyWage: emp.HourlyWage,
				Position:   emp.Position,
			},
			Days: engine.DailyHoursForEmployee(week, emp.EmployeeID),
		})
	}

	result, err := engine.OptimizeSchedule(schedules)
	if err != nil {
		s.logger.Error("최적화 실행 실패", zap.String("template_id", tpl.TemplateID), zap.Error(err))
		return nil, err
	}

	rec := &model.OptimizationRecord{
		StoreID:         storeID,
		TemplateID:      tpl.TemplateID,
		CurrentCost:     result.CurrentTotalCost.IntPart(),
		OptimizedCost:   result.OptimizedTotalCost.IntPart(),
		Savings:         result.TotalSavings.IntPart(),
		SavingsPercent:  result.SavingsPercent,
		RiskLevel:       string(result.OverallRisk),
		ComplianceScore: result.ComplianceScore,
		Suggestions:     model.SuggestionList(result.Suggestions),
		CreatedBy:       &callerID,
	}
	if err := s.repo.Optimization.Create(ctx, rec); err != nil {
		s.logger.Error("최적화 이력 저장 실패", zap.String("template_id", tpl.TemplateID), zap.Error(err))
		return nil, err
	}

	resp := &dto.OptimizeResponse{RecordID: rec.RecordID, Result: result}
	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKey, resp, s.cacheTTL); err != nil {
			s.logger.Warn("최적화 캐시 저장 실패", zap.String("key", cacheKey), zap.Error(err))
		}
	}
	return resp, nil
}

func (s *optimizeService) History(ctx context.Context, storeID string, req *dto.OptimizationHistoryRequest, callerID string) ([]dto.OptimizationHistoryItem, int64, error) {
	store, err := s.repo.Store.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrStoreNotFound
		}
		return nil, 0, err
	}
	if store.OwnerID != callerID {
		return nil, 0, ErrStoreForbidden
	}

	page, pageSize := normalizePage(req.Page, req.PageSize)
	recs, total, err := s.repo.Optimization.ListByStore(ctx, storeID, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.Error("최적화 이력 조회 실패", zap.String("store_id", storeID), zap.Error(err))
		return nil, 0, err
	}

	items := make([]dto.OptimizationHistoryItem, 0, len(recs))
	for _, r := range recs {
		items = append(items, dto.OptimizationHistoryItem{
			RecordID:        r.RecordID,
			TemplateID:      r.TemplateID,
			CurrentCost:     r.CurrentCost,
			OptimizedCost:   r.OptimizedCost,
			Savings:         r.Savings,
			SavingsPercent:  r.SavingsPercent,
			RiskLevel:       r.RiskLevel,
			ComplianceScore: r.ComplianceScore,
			SuggestionCount: len(r.Suggestions),
			CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		})
	}
	return items, total, nil
}

func (s *optimizeService) GetRecord(ctx context.Context, storeID string, recordID string, callerID string) (*model.OptimizationRecord, error) {
	store, err := s.repo.Store.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	if store.OwnerID != callerID {
		return nil, ErrStoreForbidden
	}

	rec, err := s.repo.Optimization.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOptimizationNotFound
		}
		s.logger.Error("최적화 이력 조회 실패", zap.String("record_id", recordID), zap.Error(err))
		return nil, err
	}
	if rec.StoreID != storeID {
		return nil, ErrOptimizationNotFound
	}
	return rec, nil
}
