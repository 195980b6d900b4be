package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/agi040922/HR-Management-sub000/config"
	"github.com/agi040922/HR-Management-sub000/internal/model"
	"github.com/agi040922/HR-Management-sub000/internal/repository"
)

// ── 테스트 공통 준비 ──

const (
	testOwnerID  = "owner-001"
	testOtherID  = "owner-002"
	testMinWage  = int64(10030)
	testStoreKey = "store-001"
)

type testRepos struct {
	store        *mockStoreRepo
	employee     *mockEmployeeRepo
	template     *mockTemplateRepo
	contract     *mockContractRepo
	optimization *mockOptimizationRepo
}

// setupTestRepo 소유자 owner-001 의 매장 1곳이 등록된 리포지토리 집합
func setupTestRepo() (*repository.Repository, *testRepos) {
	mocks := &testRepos{
		store:        newMockStoreRepo(),
		employee:     newMockEmployeeRepo(),
		template:     newMockTemplateRepo(),
		contract:     newMockContractRepo(),
		optimization: newMockOptimizationRepo(),
	}
	repo := &repository.Repository{
		Store:        mocks.store,
		Employee:     mocks.employee,
		Template:     mocks.template,
		Contract:     mocks.contract,
		Optimization: mocks.optimization,
	}

	_ = mocks.store.Create(context.Background(), &model.Store{
		Name:     "테스트 편의점",
		OwnerID:  testOwnerID,
		IsActive: true,
	})
	return repo, mocks
}

func testConfig() *config.Config {
	return &config.Config{
		Payroll: config.PayrollConfig{
			MinimumWage:      testMinWage,
			OptimizeCacheTTL: 10 * time.Minute,
		},
	}
}

func testLogger() *zap.Logger { return zap.NewNop() }

// addTestEmployee 테스트 직원 등록 후 ID 반환
func addTestEmployee(repo *repository.Repository, storeID, name string, wage int64) int64 {
	emp := &model.Employee{
		StoreID:    storeID,
		Name:       name,
		Position:   model.PositionStaff,
		HourlyWage: wage,
		IsActive:   true,
	}
	_ = repo.Employee.Create(context.Background(), emp)
	return emp.EmployeeID
}
