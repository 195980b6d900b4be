package repository

import "gorm.io/gorm"

// Repository 모든 Repository 의 집합 진입점
type Repository struct {
	Store        StoreRepository
	Employee     EmployeeRepository
	Template     TemplateRepository
	Contract     ContractRepository
	Optimization OptimizationRepository
}

// NewRepository Repository 집합 생성
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Store:        NewStoreRepo(db),
		Employee:     NewEmployeeRepo(db),
		Template:     NewTemplateRepo(db),
		Contract:     NewContractRepo(db),
		Optimization: NewOptimizationRepo(db),
	}
}
