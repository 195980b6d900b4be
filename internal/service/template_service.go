package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/agi040922/HR-Management-sub000/internal/dto"
	"github.com/agi040922/HR-Management-sub000/internal/engine"
	"github.com/agi040922/HR-Management-sub000/internal/model"
	"github.com/agi040922/HR-Management-sub000/internal/repository"
)

// ── 템플릿 모듈 비즈니스 에러 ──

var (
	ErrTemplateNotFound = errors.New("스케줄 템플릿을 찾을 수 없습니다")
	ErrInvalidWeekday   = errors.New("요일은 0(월)~6(일) 범위여야 합니다")
	ErrInvalidTimeInput = errors.New("시간 형식이 올바르지 않습니다")
)

// TemplateService 주간 스케줄 템플릿 비즈니스 인터페이스.
// 영업시간/휴게시간/슬롯 배정의 규칙 검증은 engine 패키지에 위임하고,
// 이 계층은 소유권 검증과 블롭 영속화를 담당한다.
type TemplateService interface {
	Create(ctx context.Context, storeID string, req *dto.CreateTemplateRequest, callerID string) (*dto.TemplateResponse, error)
	GetByID(ctx context.Context, id string, callerID string) (*dto.TemplateResponse, error)
	ListByStore(ctx context.Context, storeID string, callerID string) ([]dto.TemplateSummaryResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateTemplateRequest, callerID string) (*dto.TemplateResponse, error)
	Delete(ctx context.Context, id string, callerID string) error

	// SetOperatingHours 요일별 영업시간 설정. 폐점 처리 시 해당 요일 배정이 초기화되고,
	// 시간 축소 시 범위 밖 슬롯 배정은 자동 제거된다.
	SetOperatingHours(ctx context.Context, id string, day int, req *dto.SetOperatingHoursRequest, callerID string) (*dto.TemplateResponse, error)
	// SetBreaks 요일별 휴게시간 설정. 휴게시간과 겹치는 슬롯 배정은 자동 제거된다.
	SetBreaks(ctx context.Context, id string, day int, req *dto.SetBreaksRequest, callerID string) (*dto.TemplateResponse, error)
	// AssignSlot 슬롯에 직원 배정 (무효 슬롯은 무시되어 멱등)
	AssignSlot(ctx context.Context, id string, req *dto.AssignSlotRequest, callerID string) (*dto.TemplateResponse, error)
	// UnassignSlot 슬롯 배정 해제
	UnassignSlot(ctx context.Context, id string, req *dto.AssignSlotRequest, callerID string) (*dto.TemplateResponse, error)
}

type templateService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTemplateService TemplateService 인스턴스 생성
func NewTemplateService(repo *repository.Repository, logger *zap.Logger) TemplateService {
	return &templateService{repo: repo, logger: logger}
}

func (s *templateService) Create(ctx context.Context, storeID string, req *dto.CreateTemplateRequest, callerID string) (*dto.TemplateResponse, error) {
	if err := s.checkStoreOwner(ctx, storeID, callerID); err != nil {
		return nil, err
	}

	slotMinutes := req.SlotMinutes
	if slotMinutes == 0 {
		slotMinutes = 30
	}

	tpl := &model.WeeklyTemplate{
		StoreID:     storeID,
		Name:        req.Name,
		SlotMinutes: slotMinutes,
		WeekData:    model.WeekData(engine.NewWeek(slotMinutes)),
		IsActive:    true,
	}
	tpl.CreatedBy = &callerID
	tpl.UpdatedBy = &callerID

	if err := s.repo.Template.Create(ctx, tpl); err != nil {
		s.logger.Error("템플릿 생성 실패", zap.String("store_id", storeID), zap.Error(err))
		return nil, err
	}
	return toTemplateResponse(tpl), nil
}

func (s *templateService) GetByID(ctx context.Context, id string, callerID string) (*dto.TemplateResponse, error) {
	tpl, err := s.getOwnedTemplate(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	return toTemplateResponse(tpl), nil
}

func (s *templateService) ListByStore(ctx context.Context, storeID string, callerID string) ([]dto.TemplateSummaryResponse, error) {
	if err := s.checkStoreOwner(ctx, storeID, callerID); err != nil {
		return nil, err
	}

	tpls, err := s.repo.Template.ListByStore(ctx, storeID)
	if err != nil {
		s.logger.Error("템플릿 목록 조회 실패", zap.String("store_id", storeID), zap.Error(err))
		return nil, err
	}

	resp := make([]dto.TemplateSummaryResponse, 0, len(tpls))
	for _, t := range tpls {
		resp = append(resp, dto.TemplateSummaryResponse{
			TemplateID:  t.TemplateID,
			Name:        t.Name,
			SlotMinutes: t.SlotMinutes,
			IsActive:    t.IsActive,
			Version:     t.Version,
			UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}

func (s *templateService) Update(ctx context.Context, id string, req *dto.UpdateTemplateRequest, callerID string) (*dto.TemplateResponse, error) {
	tpl, err := s.getOwnedTemplate(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	tpl.Version = req.Version
	if req.Name != nil {
		tpl.Name = *req.Name
	}
	if req.IsActive != nil {
		tpl.IsActive = *req.IsActive
	}

	return s.persist(ctx, tpl, callerID)
}

func (s *templateService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.getOwnedTemplate(ctx, id, callerID); err != nil {
		return err
	}
	if err := s.repo.Template.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("템플릿 삭제 실패", zap.String("template_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *templateService) SetOperatingHours(ctx context.Context, id string, day int, req *dto.SetOperatingHoursRequest, callerID string) (*dto.TemplateResponse, error) {
	tpl, err := s.getOwnedTemplate(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	weekday := engine.Weekday(day)
	if !weekday.Valid() {
		return nil, ErrInvalidWeekday
	}

	week, err := tpl.WeekData.Week().WithOperatingHours(weekday, req.IsOpen, req.OpenTime, req.CloseTime)
	if err != nil {
		return nil, wrapEngineError(err)
	}

	tpl.Version = req.Version
	tpl.WeekData = model.WeekData(week)
	return s.persist(ctx, tpl, callerID)
}

func (s *templateService) SetBreaks(ctx context.Context, id string, day int, req *dto.SetBreaksRequest, callerID string) (*dto.TemplateResponse, error) {
	tpl, err := s.getOwnedTemplate(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	weekday := engine.Weekday(day)
	if !weekday.Valid() {
		return nil, ErrInvalidWeekday
	}

	breaks := make([]engine.BreakPeriod, 0, len(req.Breaks))
	for _, b := range req.Breaks {
		breaks = append(breaks, engine.BreakPeriod{Start: b.Start, End: b.End, Name: b.Name})
	}

	week, err := tpl.WeekData.Week().WithBreaks(weekday, breaks)
	if err != nil {
		return nil, wrapEngineError(err)
	}

	tpl.Version = req.Version
	tpl.WeekData = model.WeekData(week)
	return s.persist(ctx, tpl, callerID)
}

func (s *templateService) AssignSlot(ctx context.Context, id string, req *dto.AssignSlotRequest, callerID string) (*dto.TemplateResponse, error) {
	return s.mutateSlot(ctx, id, req, callerID, engine.Week.Assign)
}

func (s *templateService) UnassignSlot(ctx context.Context, id string, req *dto.AssignSlotRequest, callerID string) (*dto.TemplateResponse, error) {
	return s.mutateSlot(ctx, id, req, callerID, engine.Week.Unassign)
}

// mutateSlot 배정/해제 공통 경로. 엔진 변이는 무효 입력에 대해
// 원본을 그대로 반환하므로 별도 검증 없이 결과를 저장한다.
func (s *templateService) mutateSlot(
	ctx context.Context,
	id string,
	req *dto.AssignSlotRequest,
	callerID string,
	mutate func(engine.Week, engine.Weekday, string, int64) engine.Week,
) (*dto.TemplateResponse, error) {
	tpl, err := s.getOwnedTemplate(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	weekday := engine.Weekday(req.Day)
	if !weekday.Valid() {
		return nil, ErrInvalidWeekday
	}

	week := mutate(tpl.WeekData.Week(), weekday, req.Slot, req.EmployeeID)

	tpl.Version = req.Version
	tpl.WeekData = model.WeekData(week)
	return s.persist(ctx, tpl, callerID)
}

// persist 낙관적 잠금으로 블롭 저장 후 응답 변환
func (s *templateService) persist(ctx context.Context, tpl *model.WeeklyTemplate, callerID string) (*dto.TemplateResponse, error) {
	tpl.UpdatedBy = &callerID
	if err := s.repo.Template.Update(ctx, tpl); err != nil {
		if isOptimisticLock(err) {
			return nil, ErrVersionStale
		}
		s.logger.Error("템플릿 저장 실패", zap.String("template_id", tpl.TemplateID), zap.Error(err))
		return nil, err
	}
	return toTemplateResponse(tpl), nil
}

func (s *templateService) checkStoreOwner(ctx context.Context, storeID string, callerID string) error {
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

func (s *templateService) getOwnedTemplate(ctx context.Context, id string, callerID string) (*model.WeeklyTemplate, error) {
	tpl, err := s.repo.Template.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("템플릿 조회 실패", zap.String("template_id", id), zap.Error(err))
		return nil, err
	}
	if err := s.checkStoreOwner(ctx, tpl.StoreID, callerID); err != nil {
		return nil, err
	}
	return tpl, nil
}

// wrapEngineError 엔진 검증 에러를 사용자 메시지가 있는 비즈니스 에러로 변환
func wrapEngineError(err error) error {
	var fe *engine.FormatError
	var ve *engine.ValidationError
	if errors.As(err, &fe) || errors.As(err, &ve) {
		return errors.Join(ErrInvalidTimeInput, err)
	}
	return err
}

func toTemplateResponse(tpl *model.WeeklyTemplate) *dto.TemplateResponse {
	return &dto.TemplateResponse{
		TemplateID:  tpl.TemplateID,
		StoreID:     tpl.StoreID,
		Name:        tpl.Name,
		SlotMinutes: tpl.SlotMinutes,
		Week:        tpl.WeekData.Week(),
		IsActive:    tpl.IsActive,
		Version:     tpl.Version,
		CreatedAt:   tpl.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   tpl.UpdatedAt.Format(time.RFC3339),
	}
}
