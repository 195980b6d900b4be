package service

import (
	"context"
	"errors"
	"testing"

	"github.com/agi040922/HR-Management-sub000/internal/dto"
	"github.com/agi040922/HR-Management-sub000/internal/engine"
)

// buildPartTimeWeek 월~화 09:00~17:00 배정 (주 16시간, 주휴수당 대상)
func buildPartTimeWeek(t *testing.T, employeeID int64) engine.Week {
	t.Helper()
	week := engine.NewWeek(30)
	for d := engine.Monday; d <= engine.Tuesday; d++ {
		var err error
		week, err = week.WithOperatingHours(d, true, "09:00", "17:00")
		if err != nil {
			t.Fatalf("영업시간 설정 실패: %v", err)
		}
		slots, err := engine.GenerateTimeSlots("09:00", "17:00", 30)
		if err != nil {
			t.Fatalf("슬롯 생성 실패: %v", err)
		}
		for _, slot := range slots {
			week = week.Assign(d, slot, employeeID)
		}
	}
	return week
}

// ── Run 테스트 ──

func TestOptimizeService_Run_PersistsRecord(t *testing.T) {
	repo, mocks := setupTestRepo()
	svc := NewOptimizeService(testConfig(), repo, nil, testLogger())

	empID := addTestEmployee(repo, testStoreKey, "김파트", 10030)
	tplID := addTestTemplate(t, repo, buildPartTimeWeek(t, empID))

	result, err := svc.Run(context.Background(), testStoreKey, &dto.OptimizeRequest{TemplateID: tplID}, testOwnerID)
	if err != nil {
		t.Fatalf("Run 은 성공해야 합니다: %v", err)
	}

	// 주 16시간 → 14시간 단축 제안 1건
	if len(result.Result.Suggestions) != 1 {
		t.Fatalf("기대 제안 1건, 실제 %d건", len(result.Result.Suggestions))
	}
	if result.Result.Suggestions[0].Type != engine.SuggestReduceHours {
		t.Errorf("기대 유형=%s, 실제=%s", engine.SuggestReduceHours, result.Result.Suggestions[0].Type)
	}
	if result.Cached {
		t.Error("첫 실행은 캐시 응답이 아니어야 합니다")
	}

	// 이력 영속화 검증
	rec, ok := mocks.optimization.records[result.RecordID]
	if !ok {
		t.Fatalf("이력이 저장되지 않았습니다: %s", result.RecordID)
	}
	if rec.StoreID != testStoreKey || rec.TemplateID != tplID {
		t.Errorf("이력 소속이 올바르지 않습니다: %+v", rec)
	}
	if rec.Savings <= 0 {
		t.Errorf("절감액은 양수여야 합니다: %d", rec.Savings)
	}
	if len(rec.Suggestions) != 1 {
		t.Errorf("제안 스냅샷 기대 1건, 실제 %d건", len(rec.Suggestions))
	}
}

func TestOptimizeService_Run_TemplateMismatch(t *testing.T) {
	repo, _ := setupTestRepo()
	svc := NewOptimizeService(testConfig(), repo, nil, testLogger())

	tplID := addTestTemplate(t, repo, engine.NewWeek(30))
	// 템플릿을 다른 매장 ID 로 요청
	_, err := svc.Run(context.Background(), "store-999", &dto.OptimizeRequest{TemplateID: tplID}, testOwnerID)
	if !errors.Is(err, ErrStoreNotFound) {
		t.Errorf("기대 ErrStoreNotFound, 실제: %v", err)
	}
}

func TestOptimizeService_Run_Forbidden(t *testing.T) {
	repo, _ := setupTestRepo()
	svc := NewOptimizeService(testConfig(), repo, nil, testLogger())

	tplID := addTestTemplate(t, repo, engine.NewWeek(30))
	_, err := svc.Run(context.Background(), testStoreKey, &dto.OptimizeRequest{TemplateID: tplID}, testOtherID)
	if !errors.Is(err, ErrStoreForbidden) {
		t.Errorf("기대 ErrStoreForbidden, 실제: %v", err)
	}
}

// ── History 테스트 ──

func TestOptimizeService_History(t *testing.T) {
	repo, _ := setupTestRepo()
	svc := NewOptimizeService(testConfig(), repo, nil, testLogger())

	empID := addTestEmployee(repo, testStoreKey, "김파트", 10030)
	tplID := addTestTemplate(t, repo, buildPartTimeWeek(t, empID))

	run, err := svc.Run(context.Background(), testStoreKey, &dto.OptimizeRequest{TemplateID: tplID}, testOwnerID)
	if err != nil {
		t.Fatalf("Run 은 성공해야 합니다: %v", err)
	}

	items, total, err := svc.History(context.Background(), testStoreKey, &dto.OptimizationHistoryRequest{Page: 1, PageSize: 10}, testOwnerID)
	if err != nil {
		t.Fatalf("History 는 성공해야 합니다: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("기대 이력 1건, 실제 total=%d len=%d", total, len(items))
	}
	if items[0].RecordID != run.RecordID {
		t.Errorf("기대 RecordID=%s, 실제=%s", run.RecordID, items[0].RecordID)
	}
	if items[0].SuggestionCount != 1 {
		t.Errorf("기대 제안 수=1, 실제=%d", items[0].SuggestionCount)
	}
}

// ── GetRecord 테스트 ──

func TestOptimizeService_GetRecord_WrongStore(t *testing.T) {
	repo, _ := setupTestRepo()
	svc := NewOptimizeService(testConfig(), repo, nil, testLogger())

	empID := addTestEmployee(repo, testStoreKey, "김파트", 10030)
	tplID := addTestTemplate(t, repo, buildPartTimeWeek(t, empID))

	run, err := svc.Run(context.Background(), testStoreKey, &dto.OptimizeRequest{TemplateID: tplID}, testOwnerID)
	if err != nil {
		t.Fatalf("Run 은 성공해야 합니다: %v", err)
	}

	// 타 매장 경로로 조회 → 감춰야 한다
	otherStore := &dto.CreateStoreRequest{Name: "2호점"}
	storeSvc := NewStoreService(repo, testLogger())
	created, err := storeSvc.Create(context.Background(), otherStore, testOwnerID)
	if err != nil {
		t.Fatalf("매장 생성 실패: %v", err)
	}

	_, err = svc.GetRecord(context.Background(), created.StoreID, run.RecordID, testOwnerID)
	if !errors.Is(err, ErrOptimizationNotFound) {
		t.Errorf("기대 ErrOptimizationNotFound, 실제: %v", err)
	}
}
