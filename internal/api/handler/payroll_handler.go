package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/agi040922/HR-Management-sub000/internal/dto"
	"github.com/agi040922/HR-Management-sub000/internal/service"
	"github.com/agi040922/HR-Management-sub000/pkg/response"
)

// PayrollHandler 급여 산출 모듈 HTTP 핸들러
type PayrollHandler struct {
	paySvc service.PayrollService
}

// NewPayrollHandler PayrollHandler 생성
func NewPayrollHandler(paySvc service.PayrollService) *PayrollHandler {
	return &PayrollHandler{paySvc: paySvc}
}

// GetStorePayroll 매장 전체 급여 대장 조회
// GET /api/v1/stores/:id/payroll?template_id=...
func (h *PayrollHandler) GetStorePayroll(c *gin.Context) {
	storeID := c.Param("id")
	if storeID == "" {
		response.BadRequest(c, 10001, "매장 ID는 필수입니다")
		return
	}

	var q dto.PayrollQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "template_id 파라미터가 올바르지 않습니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	payroll, err := h.paySvc.StorePayroll(c.Request.Context(), storeID, q.TemplateID, callerID)
	if err != nil {
		h.handlePayrollError(c, err)
		return
	}

	response.OK(c, payroll)
}

// GetEmployeePayroll 직원 1인 급여 명세 조회
// GET /api/v1/employees/:id/payroll?template_id=...
func (h *PayrollHandler) GetEmployeePayroll(c *gin.Context) {
	id, ok := parseEmployeeID(c)
	if !ok {
		return
	}

	var q dto.PayrollQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "template_id 파라미터가 올바르지 않습니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	payroll, err := h.paySvc.EmployeePayroll(c.Request.Context(), id, q.TemplateID, callerID)
	if err != nil {
		h.handlePayrollError(c, err)
		return
	}

	response.OK(c, payroll)
}

// handlePayrollError 급여 모듈 비즈니스 오류 일괄 처리
func (h *PayrollHandler) handlePayrollError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTemplateStoreMismatch):
		response.BadRequest(c, 14001, "템플릿이 해당 매장 소속이 아닙니다")
	case errors.Is(err, service.ErrTemplateNotFound):
		response.NotFound(c, 13001, "스케줄 템플릿을 찾을 수 없습니다")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12001, "직원을 찾을 수 없습니다")
	case errors.Is(err, service.ErrStoreNotFound):
		response.NotFound(c, 11001, "매장을 찾을 수 없습니다")
	case errors.Is(err, service.ErrStoreForbidden):
		response.Forbidden(c, 11002, "해당 매장에 대한 권한이 없습니다")
	default:
		response.InternalError(c)
	}
}
