package service

import (
	"context"
	"errors"
	"testing"

	"github.com/agi040922/HR-Management-sub000/internal/dto"
)

func setupContractService(t *testing.T) (ContractService, int64) {
	t.Helper()
	repo, _ := setupTestRepo()
	empID := addTestEmployee(repo, testStoreKey, "김직원", 11000)
	return NewContractService(testConfig(), repo, testLogger()), empID
}

// ── Create 테스트 ──

func TestContractService_Create_Success(t *testing.T) {
	svc, empID := setupContractService(t)

	result, err := svc.Create(context.Background(), testStoreKey, &dto.CreateContractRequest{
		EmployeeID:  empID,
		HourlyWage:  11000,
		WeeklyHours: 20,
		StartDate:   "2025-03-01",
		Workplace:   "서울시 마포구",
		Duties:      "매장 운영 보조",
	}, testOwnerID)
	if err != nil {
		t.Fatalf("Create 는 성공해야 합니다: %v", err)
	}
	if result.Status != "draft" {
		t.Errorf("신규 계약 상태는 draft 여야 합니다: %s", result.Status)
	}
	if result.EmployeeName != "김직원" {
		t.Errorf("기대 직원명=김직원, 실제=%s", result.EmployeeName)
	}
	if result.StartDate != "2025-03-01" {
		t.Errorf("기대 시작일=2025-03-01, 실제=%s", result.StartDate)
	}
	if result.EndDate != "" {
		t.Errorf("종료일 미지정 계약은 빈 값이어야 합니다: %s", result.EndDate)
	}
}

func TestContractService_Create_BelowMinimumWage(t *testing.T) {
	svc, empID := setupContractService(t)

	_, err := svc.Create(context.Background(), testStoreKey, &dto.CreateContractRequest{
		EmployeeID:  empID,
		HourlyWage:  9500,
		WeeklyHours: 20,
		StartDate:   "2025-03-01",
	}, testOwnerID)
	if !errors.Is(err, ErrWageBelowMinimum) {
		t.Errorf("기대 ErrWageBelowMinimum, 실제: %v", err)
	}
}

func TestContractService_Create_EndBeforeStart(t *testing.T) {
	svc, empID := setupContractService(t)

	_, err := svc.Create(context.Background(), testStoreKey, &dto.CreateContractRequest{
		EmployeeID:  empID,
		HourlyWage:  11000,
		WeeklyHours: 20,
		StartDate:   "2025-03-01",
		EndDate:     "2025-02-01",
	}, testOwnerID)
	if !errors.Is(err, ErrContractInvalidDate) {
		t.Errorf("기대 ErrContractInvalidDate, 실제: %v", err)
	}
}

func TestContractService_Create_EmployeeOtherStore(t *testing.T) {
	repo, _ := setupTestRepo()
	svc := NewContractService(testConfig(), repo, testLogger())

	// 타 매장 소속 직원
	otherEmpID := addTestEmployee(repo, "store-other", "남남", 11000)

	_, err := svc.Create(context.Background(), testStoreKey, &dto.CreateContractRequest{
		EmployeeID:  otherEmpID,
		HourlyWage:  11000,
		WeeklyHours: 20,
		StartDate:   "2025-03-01",
	}, testOwnerID)
	if !errors.Is(err, ErrEmployeeStoreMism) {
		t.Errorf("기대 ErrEmployeeStoreMism, 실제: %v", err)
	}
}

// ── Update 테스트 ──

func TestContractService_Update_StatusTransition(t *testing.T) {
	svc, empID := setupContractService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, testStoreKey, &dto.CreateContractRequest{
		EmployeeID:  empID,
		HourlyWage:  11000,
		WeeklyHours: 20,
		StartDate:   "2025-03-01",
	}, testOwnerID)
	if err != nil {
		t.Fatalf("Create 실패: %v", err)
	}

	signed := "signed"
	result, err := svc.Update(ctx, created.ContractID, &dto.UpdateContractRequest{
		Status:  &signed,
		Version: 1,
	}, testOwnerID)
	if err != nil {
		t.Fatalf("Update 는 성공해야 합니다: %v", err)
	}
	if result.Status != "signed" {
		t.Errorf("기대 상태=signed, 실제=%s", result.Status)
	}
	if result.Version != 2 {
		t.Errorf("갱신 후 버전 기대=2, 실제=%d", result.Version)
	}
}

// ── Delete 테스트 ──

func TestContractService_Delete_NotFound(t *testing.T) {
	svc, _ := setupContractService(t)

	if err := svc.Delete(context.Background(), "ct-999", testOwnerID); !errors.Is(err, ErrContractNotFound) {
		t.Errorf("기대 ErrContractNotFound, 실제: %v", err)
	}
}
