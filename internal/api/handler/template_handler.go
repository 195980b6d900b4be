package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agi040922/HR-Management-sub000/internal/dto"
	"github.com/agi040922/HR-Management-sub000/internal/service"
	"github.com/agi040922/HR-Management-sub000/pkg/response"
)

// TemplateHandler 주간 스케줄 템플릿 모듈 HTTP 핸들러
type TemplateHandler struct {
	tplSvc service.TemplateService
}

// NewTemplateHandler TemplateHandler 생성
func NewTemplateHandler(tplSvc service.TemplateService) *TemplateHandler {
	return &TemplateHandler{tplSvc: tplSvc}
}

// ListTemplates 매장의 템플릿 목록 조회
// GET /api/v1/stores/:id/schedule-templates
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	storeID := c.Param("id")
	if storeID == "" {
		response.BadRequest(c, 10001, "매장 ID는 필수입니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	templates, err := h.tplSvc.ListByStore(c.Request.Context(), storeID, callerID)
	if err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.OK(c, gin.H{"list": templates})
}

// GetTemplate 템플릿 상세 조회 (주간 구조 전체 포함)
// GET /api/v1/schedule-templates/:id
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "템플릿 ID는 필수입니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	tpl, err := h.tplSvc.GetByID(c.Request.Context(), id, callerID)
	if err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.OK(c, tpl)
}

// CreateTemplate 템플릿 생성
// POST /api/v1/stores/:id/schedule-templates
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	storeID := c.Param("id")
	if storeID == "" {
		response.BadRequest(c, 10001, "매장 ID는 필수입니다")
		return
	}

	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	tpl, err := h.tplSvc.Create(c.Request.Context(), storeID, &req, callerID)
	if err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.Created(c, tpl)
}

// UpdateTemplate 템플릿 이름 등 메타데이터 수정
// PUT /api/v1/schedule-templates/:id
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "템플릿 ID는 필수입니다")
		return
	}

	var req dto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	tpl, err := h.tplSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.OK(c, tpl)
}

// DeleteTemplate 템플릿 삭제 (소프트 삭제)
// DELETE /api/v1/schedule-templates/:id
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "템플릿 ID는 필수입니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.tplSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.OK(c, nil)
}

// SetOperatingHours 특정 요일의 영업시간 설정
// PUT /api/v1/schedule-templates/:id/days/:day/hours
func (h *TemplateHandler) SetOperatingHours(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "템플릿 ID는 필수입니다")
		return
	}

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		response.BadRequest(c, 10001, "요일 파라미터가 올바르지 않습니다")
		return
	}

	var req dto.SetOperatingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	tpl, err := h.tplSvc.SetOperatingHours(c.Request.Context(), id, day, &req, callerID)
	if err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.OK(c, tpl)
}

// SetBreaks 특정 요일의 휴게시간 설정
// PUT /api/v1/schedule-templates/:id/days/:day/breaks
func (h *TemplateHandler) SetBreaks(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "템플릿 ID는 필수입니다")
		return
	}

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		response.BadRequest(c, 10001, "요일 파라미터가 올바르지 않습니다")
		return
	}

	var req dto.SetBreaksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	tpl, err := h.tplSvc.SetBreaks(c.Request.Context(), id, day, &req, callerID)
	if err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.OK(c, tpl)
}

// AssignSlot 슬롯에 직원 배정
// POST /api/v1/schedule-templates/:id/slots/assign
func (h *TemplateHandler) AssignSlot(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "템플릿 ID는 필수입니다")
		return
	}

	var req dto.AssignSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	tpl, err := h.tplSvc.AssignSlot(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.OK(c, tpl)
}

// UnassignSlot 슬롯에서 직원 배정 해제
// POST /api/v1/schedule-templates/:id/slots/unassign
func (h *TemplateHandler) UnassignSlot(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "템플릿 ID는 필수입니다")
		return
	}

	var req dto.AssignSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	tpl, err := h.tplSvc.UnassignSlot(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.OK(c, tpl)
}

// handleTemplateError 템플릿 모듈 비즈니스 오류 일괄 처리
func (h *TemplateHandler) handleTemplateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTemplateNotFound):
		response.NotFound(c, 13001, "스케줄 템플릿을 찾을 수 없습니다")
	case errors.Is(err, service.ErrInvalidWeekday):
		response.BadRequest(c, 13002, "요일은 0(월)~6(일) 범위여야 합니다")
	case errors.Is(err, service.ErrInvalidTimeInput):
		response.BadRequest(c, 13003, "시간 형식이 올바르지 않습니다")
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
