package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/agi040922/HR-Management-sub000/internal/model"
	pkgerrors "github.com/agi040922/HR-Management-sub000/pkg/errors"
)

// ── Mock StoreRepository ──

type mockStoreRepo struct {
	stores map[string]*model.Store
	seq    int
}

func newMockStoreRepo() *mockStoreRepo {
	return &mockStoreRepo{stores: make(map[string]*model.Store)}
}

func (m *mockStoreRepo) Create(_ context.Context, store *model.Store) error {
	if store.StoreID == "" {
		m.seq++
		store.StoreID = fmt.Sprintf("store-%03d", m.seq)
	}
	if store.Version == 0 {
		store.Version = 1
	}
	store.CreatedAt = time.Now()
	store.UpdatedAt = time.Now()
	cp := *store
	m.stores[store.StoreID] = &cp
	return nil
}

func (m *mockStoreRepo) GetByID(_ context.Context, id string) (*model.Store, error) {
	if s, ok := m.stores[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStoreRepo) ListByOwner(_ context.Context, ownerID string, offset, limit int) ([]model.Store, int64, error) {
	var all []model.Store
	for _, s := range m.stores {
		if s.OwnerID == ownerID {
			all = append(all, *s)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].StoreID < all[j].StoreID })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockStoreRepo) Update(_ context.Context, store *model.Store) error {
	existing, ok := m.stores[store.StoreID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if existing.Version != store.Version {
		return pkgerrors.ErrOptimisticLock
	}
	store.Version++
	cp := *store
	m.stores[store.StoreID] = &cp
	return nil
}

func (m *mockStoreRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.stores, id)
	return nil
}

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[int64]*model.Employee
	seq       int64
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[int64]*model.Employee)}
}

func (m *mockEmployeeRepo) Create(_ context.Context, emp *model.Employee) error {
	if emp.EmployeeID == 0 {
		m.seq++
		emp.EmployeeID = m.seq
	}
	if emp.Version == 0 {
		emp.Version = 1
	}
	emp.CreatedAt = time.Now()
	emp.UpdatedAt = time.Now()
	cp := *emp
	m.employees[emp.EmployeeID] = &cp
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id int64) (*model.Employee, error) {
	if e, ok := m.employees[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) ListByStore(_ context.Context, storeID string, activeOnly bool) ([]model.Employee, error) {
	var result []model.Employee
	for _, e := range m.employees {
		if e.StoreID != storeID {
			continue
		}
		if activeOnly && !e.IsActive {
			continue
		}
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EmployeeID < result[j].EmployeeID })
	return result, nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, emp *model.Employee) error {
	existing, ok := m.employees[emp.EmployeeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if existing.Version != emp.Version {
		return pkgerrors.ErrOptimisticLock
	}
	emp.Version++
	cp := *emp
	m.employees[emp.EmployeeID] = &cp
	return nil
}

func (m *mockEmployeeRepo) Delete(_ context.Context, id int64, _ string) error {
	delete(m.employees, id)
	return nil
}

// ── Mock TemplateRepository ──

type mockTemplateRepo struct {
	templates map[string]*model.WeeklyTemplate
	seq       int
}

func newMockTemplateRepo() *mockTemplateRepo {
	return &mockTemplateRepo{templates: make(map[string]*model.WeeklyTemplate)}
}

func (m *mockTemplateRepo) Create(_ context.Context, tpl *model.WeeklyTemplate) error {
	if tpl.TemplateID == "" {
		m.seq++
		tpl.TemplateID = fmt.Sprintf("tpl-%03d", m.seq)
	}
	if tpl.Version == 0 {
		tpl.Version = 1
	}
	tpl.CreatedAt = time.Now()
	tpl.UpdatedAt = time.Now()
	cp := *tpl
	m.templates[tpl.TemplateID] = &cp
	return nil
}

func (m *mockTemplateRepo) GetByID(_ context.Context, id string) (*model.WeeklyTemplate, error) {
	if t, ok := m.templates[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTemplateRepo) ListByStore(_ context.Context, storeID string) ([]model.WeeklyTemplate, error) {
	var result []model.WeeklyTemplate
	for _, t := range m.templates {
		if t.StoreID == storeID {
			result = append(result, *t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].TemplateID < result[j].TemplateID })
	return result, nil
}

func (m *mockTemplateRepo) Update(_ context.Context, tpl *model.WeeklyTemplate) error {
	existing, ok := m.templates[tpl.TemplateID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if existing.Version != tpl.Version {
		return pkgerrors.ErrOptimisticLock
	}
	tpl.Version++
	cp := *tpl
	m.templates[tpl.TemplateID] = &cp
	return nil
}

func (m *mockTemplateRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.templates, id)
	return nil
}

// ── Mock ContractRepository ──

type mockContractRepo struct {
	contracts map[string]*model.LaborContract
	seq       int
}

func newMockContractRepo() *mockContractRepo {
	return &mockContractRepo{contracts: make(map[string]*model.LaborContract)}
}

func (m *mockContractRepo) Create(_ context.Context, c *model.LaborContract) error {
	if c.ContractID == "" {
		m.seq++
		c.ContractID = fmt.Sprintf("ct-%03d", m.seq)
	}
	if c.Version == 0 {
		c.Version = 1
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()
	cp := *c
	m.contracts[c.ContractID] = &cp
	return nil
}

func (m *mockContractRepo) GetByID(_ context.Context, id string) (*model.LaborContract, error) {
	if c, ok := m.contracts[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockContractRepo) ListByStore(_ context.Context, storeID string) ([]model.LaborContract, error) {
	var result []model.LaborContract
	for _, c := range m.contracts {
		if c.StoreID == storeID {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ContractID < result[j].ContractID })
	return result, nil
}

func (m *mockContractRepo) ListByEmployee(_ context.Context, employeeID int64) ([]model.LaborContract, error) {
	var result []model.LaborContract
	for _, c := range m.contracts {
		if c.EmployeeID == employeeID {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockContractRepo) Update(_ context.Context, c *model.LaborContract) error {
	existing, ok := m.contracts[c.ContractID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if existing.Version != c.Version {
		return pkgerrors.ErrOptimisticLock
	}
	c.Version++
	cp := *c
	m.contracts[c.ContractID] = &cp
	return nil
}

func (m *mockContractRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.contracts, id)
	return nil
}

// ── Mock OptimizationRepository ──

type mockOptimizationRepo struct {
	records map[string]*model.OptimizationRecord
	seq     int
}

func newMockOptimizationRepo() *mockOptimizationRepo {
	return &mockOptimizationRepo{records: make(map[string]*model.OptimizationRecord)}
}

func (m *mockOptimizationRepo) Create(_ context.Context, rec *model.OptimizationRecord) error {
	if rec.RecordID == "" {
		m.seq++
		rec.RecordID = fmt.Sprintf("opt-%03d", m.seq)
	}
	rec.CreatedAt = time.Now()
	cp := *rec
	m.records[rec.RecordID] = &cp
	return nil
}

func (m *mockOptimizationRepo) GetByID(_ context.Context, id string) (*model.OptimizationRecord, error) {
	if r, ok := m.records[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOptimizationRepo) ListByStore(_ context.Context, storeID string, offset, limit int) ([]model.OptimizationRecord, int64, error) {
	var all []model.OptimizationRecord
	for _, r := range m.records {
		if r.StoreID == storeID {
			all = append(all, *r)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].RecordID < all[j].RecordID })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}
