package service

import (
	"context"
	"errors"
	"testing"

	"github.com/agi040922/HR-Management-sub000/internal/dto"
)

func setupTemplateService(t *testing.T) (TemplateService, string) {
	t.Helper()
	repo, _ := setupTestRepo()
	svc := NewTemplateService(repo, testLogger())

	tpl, err := svc.Create(context.Background(), testStoreKey, &dto.CreateTemplateRequest{Name: "기본 템플릿"}, testOwnerID)
	if err != nil {
		t.Fatalf("템플릿 생성 실패: %v", err)
	}
	return svc, tpl.TemplateID
}

// ── Create 테스트 ──

func TestTemplateService_Create_Defaults(t *testing.T) {
	repo, _ := setupTestRepo()
	svc := NewTemplateService(repo, testLogger())

	result, err := svc.Create(context.Background(), testStoreKey, &dto.CreateTemplateRequest{Name: "기본"}, testOwnerID)
	if err != nil {
		t.Fatalf("Create 는 성공해야 합니다: %v", err)
	}
	if result.SlotMinutes != 30 {
		t.Errorf("슬롯 단위 기본값 기대=30, 실제=%d", result.SlotMinutes)
	}
	for d, day := range result.Week.Days {
		if day.Open {
			t.Errorf("신규 템플릿의 %d요일은 휴무여야 합니다", d)
		}
	}
}

// ── SetOperatingHours 테스트 ──

func TestTemplateService_SetOperatingHours_Success(t *testing.T) {
	svc, tplID := setupTemplateService(t)

	result, err := svc.SetOperatingHours(context.Background(), tplID, 0, &dto.SetOperatingHoursRequest{
		IsOpen:    true,
		OpenTime:  "09:00",
		CloseTime: "18:00",
		Version:   1,
	}, testOwnerID)
	if err != nil {
		t.Fatalf("SetOperatingHours 는 성공해야 합니다: %v", err)
	}
	day := result.Week.Days[0]
	if !day.Open || day.OpenTime != "09:00" || day.CloseTime != "18:00" {
		t.Errorf("영업시간이 반영되지 않았습니다: %+v", day)
	}
	if result.Version != 2 {
		t.Errorf("갱신 후 버전 기대=2, 실제=%d", result.Version)
	}
}

func TestTemplateService_SetOperatingHours_InvalidDay(t *testing.T) {
	svc, tplID := setupTemplateService(t)

	_, err := svc.SetOperatingHours(context.Background(), tplID, 7, &dto.SetOperatingHoursRequest{
		IsOpen:    true,
		OpenTime:  "09:00",
		CloseTime: "18:00",
		Version:   1,
	}, testOwnerID)
	if !errors.Is(err, ErrInvalidWeekday) {
		t.Errorf("기대 ErrInvalidWeekday, 실제: %v", err)
	}
}

func TestTemplateService_SetOperatingHours_InvalidTime(t *testing.T) {
	svc, tplID := setupTemplateService(t)

	_, err := svc.SetOperatingHours(context.Background(), tplID, 0, &dto.SetOperatingHoursRequest{
		IsOpen:    true,
		OpenTime:  "25:00",
		CloseTime: "18:00",
		Version:   1,
	}, testOwnerID)
	if !errors.Is(err, ErrInvalidTimeInput) {
		t.Errorf("기대 ErrInvalidTimeInput, 실제: %v", err)
	}
}

// ── AssignSlot / UnassignSlot 테스트 ──

func TestTemplateService_AssignAndUnassign(t *testing.T) {
	svc, tplID := setupTemplateService(t)
	ctx := context.Background()

	if _, err := svc.SetOperatingHours(ctx, tplID, 0, &dto.SetOperatingHoursRequest{
		IsOpen: true, OpenTime: "09:00", CloseTime: "18:00", Version: 1,
	}, testOwnerID); err != nil {
		t.Fatalf("영업시간 설정 실패: %v", err)
	}

	result, err := svc.AssignSlot(ctx, tplID, &dto.AssignSlotRequest{
		Day: 0, Slot: "09:00", EmployeeID: 1, Version: 2,
	}, testOwnerID)
	if err != nil {
		t.Fatalf("AssignSlot 은 성공해야 합니다: %v", err)
	}
	if ids := result.Week.Days[0].Slots["09:00"]; len(ids) != 1 || ids[0] != 1 {
		t.Errorf("슬롯 배정이 반영되지 않았습니다: %v", ids)
	}

	result, err = svc.UnassignSlot(ctx, tplID, &dto.AssignSlotRequest{
		Day: 0, Slot: "09:00", EmployeeID: 1, Version: 3,
	}, testOwnerID)
	if err != nil {
		t.Fatalf("UnassignSlot 은 성공해야 합니다: %v", err)
	}
	if _, ok := result.Week.Days[0].Slots["09:00"]; ok {
		t.Error("배정 해제 후 빈 슬롯 항목은 제거되어야 합니다")
	}
}

// SetBreaks 가 휴게시간과 겹치는 배정을 자동 제거하는지 검증
func TestTemplateService_SetBreaks_PrunesAssignments(t *testing.T) {
	svc, tplID := setupTemplateService(t)
	ctx := context.Background()

	if _, err := svc.SetOperatingHours(ctx, tplID, 0, &dto.SetOperatingHoursRequest{
		IsOpen: true, OpenTime: "09:00", CloseTime: "18:00", Version: 1,
	}, testOwnerID); err != nil {
		t.Fatalf("영업시간 설정 실패: %v", err)
	}
	if _, err := svc.AssignSlot(ctx, tplID, &dto.AssignSlotRequest{
		Day: 0, Slot: "12:00", EmployeeID: 1, Version: 2,
	}, testOwnerID); err != nil {
		t.Fatalf("슬롯 배정 실패: %v", err)
	}

	result, err := svc.SetBreaks(ctx, tplID, 0, &dto.SetBreaksRequest{
		Breaks:  []dto.BreakPeriodRequest{{Start: "12:00", End: "13:00", Name: "점심"}},
		Version: 3,
	}, testOwnerID)
	if err != nil {
		t.Fatalf("SetBreaks 는 성공해야 합니다: %v", err)
	}
	if _, ok := result.Week.Days[0].Slots["12:00"]; ok {
		t.Error("휴게시간과 겹치는 배정은 제거되어야 합니다")
	}
	if len(result.Week.Days[0].Breaks) != 1 {
		t.Errorf("휴게시간 기대 1건, 실제 %d건", len(result.Week.Days[0].Breaks))
	}
}

// ── 낙관적 잠금 테스트 ──

func TestTemplateService_Mutate_VersionStale(t *testing.T) {
	svc, tplID := setupTemplateService(t)
	ctx := context.Background()

	if _, err := svc.SetOperatingHours(ctx, tplID, 0, &dto.SetOperatingHoursRequest{
		IsOpen: true, OpenTime: "09:00", CloseTime: "18:00", Version: 1,
	}, testOwnerID); err != nil {
		t.Fatalf("영업시간 설정 실패: %v", err)
	}

	// 버전 1 로 재시도 → 충돌
	_, err := svc.AssignSlot(ctx, tplID, &dto.AssignSlotRequest{
		Day: 0, Slot: "09:00", EmployeeID: 1, Version: 1,
	}, testOwnerID)
	if !errors.Is(err, ErrVersionStale) {
		t.Errorf("기대 ErrVersionStale, 실제: %v", err)
	}
}

// ── 소유권 테스트 ──

func TestTemplateService_GetByID_Forbidden(t *testing.T) {
	svc, tplID := setupTemplateService(t)

	_, err := svc.GetByID(context.Background(), tplID, testOtherID)
	if !errors.Is(err, ErrStoreForbidden) {
		t.Errorf("기대 ErrStoreForbidden, 실제: %v", err)
	}
}
