package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agi040922/HR-Management-sub000/internal/dto"
	"github.com/agi040922/HR-Management-sub000/internal/service"
	"github.com/agi040922/HR-Management-sub000/pkg/response"
)

// EmployeeHandler 직원 모듈 HTTP 핸들러
type EmployeeHandler struct {
	empSvc service.EmployeeService
}

// NewEmployeeHandler EmployeeHandler 생성
func NewEmployeeHandler(empSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{empSvc: empSvc}
}

// parseEmployeeID 경로 파라미터에서 직원 ID를 파싱한다.
func parseEmployeeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "직원 ID가 올바르지 않습니다")
		return 0, false
	}
	return id, true
}

// ListEmployees 매장 직원 목록 조회
// GET /api/v1/stores/:id/employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	storeID := c.Param("id")
	if storeID == "" {
		response.BadRequest(c, 10001, "매장 ID는 필수입니다")
		return
	}

	var req dto.EmployeeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	employees, err := h.empSvc.ListByStore(c.Request.Context(), storeID, &req, callerID)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, gin.H{"list": employees})
}

// GetEmployee 직원 상세 조회
// GET /api/v1/employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := parseEmployeeID(c)
	if !ok {
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	emp, err := h.empSvc.GetByID(c.Request.Context(), id, callerID)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, emp)
}

// CreateEmployee 직원 등록
// POST /api/v1/stores/:id/employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	storeID := c.Param("id")
	if storeID == "" {
		response.BadRequest(c, 10001, "매장 ID는 필수입니다")
		return
	}

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	emp, err := h.empSvc.Create(c.Request.Context(), storeID, &req, callerID)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.Created(c, emp)
}

// UpdateEmployee 직원 정보 수정
// PUT /api/v1/employees/:id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseEmployeeID(c)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	emp, err := h.empSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, emp)
}

// DeleteEmployee 직원 삭제 (소프트 삭제)
// DELETE /api/v1/employees/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseEmployeeID(c)
	if !ok {
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.empSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleEmployeeError 직원 모듈 비즈니스 오류 일괄 처리
func (h *EmployeeHandler) handleEmployeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12001, "직원을 찾을 수 없습니다")
	case errors.Is(err, service.ErrWageBelowMinimum):
		response.BadRequest(c, 12002, "시급이 최저임금보다 낮습니다")
	case errors.Is(err, service.ErrEmployeeStoreMism):
		response.BadRequest(c, 12003, "직원이 해당 매장 소속이 아닙니다")
	case errors.Is(err, service.ErrStoreNotFound):
		response.NotFound(c, 11001, "매장을 찾을 수 없습니다")
	case errors.Is(err, service.ErrStoreForbidden):
		response.Forbidden(c, 11002, "해당 매장에 대한 권한이 없습니다")
	case errors.Is(err, service.ErrVersionStale):
		response.Conflict(c, 11003, "다른 사용자가 먼저 수정했습니다. 새로고침 후 다시 시도하세요")
	default:
		response.InternalError(c)
	}
}
