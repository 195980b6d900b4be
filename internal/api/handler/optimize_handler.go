package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/agi040922/HR-Management-sub000/internal/dto"
	"github.com/agi040922/HR-Management-sub000/internal/service"
	"github.com/agi040922/HR-Management-sub000/pkg/response"
)

// OptimizeHandler 스케줄 비용 최적화 모듈 HTTP 핸들러
type OptimizeHandler struct {
	optSvc service.OptimizeService
}

// NewOptimizeHandler OptimizeHandler 생성
func NewOptimizeHandler(optSvc service.OptimizeService) *OptimizeHandler {
	return &OptimizeHandler{optSvc: optSvc}
}

// RunOptimization 최적화 분석 실행
// POST /api/v1/stores/:id/optimize
func (h *OptimizeHandler) RunOptimization(c *gin.Context) {
	storeID := c.Param("id")
	if storeID == "" {
		response.BadRequest(c, 10001, "매장 ID는 필수입니다")
		return
	}

	var req dto.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.optSvc.Run(c.Request.Context(), storeID, &req, callerID)
	if err != nil {
		h.handleOptimizeError(c, err)
		return
	}

	response.OK(c, result)
}

// ListOptimizations 최적화 이력 목록 조회
// GET /api/v1/stores/:id/optimizations
func (h *OptimizeHandler) ListOptimizations(c *gin.Context) {
	storeID := c.Param("id")
	if storeID == "" {
		response.BadRequest(c, 10001, "매장 ID는 필수입니다")
		return
	}

	var req dto.OptimizationHistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	items, total, err := h.optSvc.History(c.Request.Context(), storeID, &req, callerID)
	if err != nil {
		h.handleOptimizeError(c, err)
		return
	}

	response.OKPage(c, items, total, req.Page, req.PageSize)
}

// GetOptimization 최적화 이력 상세 조회
// GET /api/v1/stores/:id/optimizations/:record_id
func (h *OptimizeHandler) GetOptimization(c *gin.Context) {
	storeID := c.Param("id")
	recordID := c.Param("record_id")
	if storeID == "" || recordID == "" {
		response.BadRequest(c, 10001, "매장 ID와 이력 ID는 필수입니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	record, err := h.optSvc.GetRecord(c.Request.Context(), storeID, recordID, callerID)
	if err != nil {
		h.handleOptimizeError(c, err)
		return
	}

	response.OK(c, record)
}

// handleOptimizeError 최적화 모듈 비즈니스 오류 일괄 처리
func (h *OptimizeHandler) handleOptimizeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOptimizationNotFound):
		response.NotFound(c, 15001, "최적화 이력을 찾을 수 없습니다")
	case errors.Is(err, service.ErrTemplateStoreMismatch):
		response.BadRequest(c, 14001, "템플릿이 해당 매장 소속이 아닙니다")
	case errors.Is(err, service.ErrTemplateNotFound):
		response.NotFound(c, 13001, "스케줄 템플릿을 찾을 수 없습니다")
	case errors.Is(err, service.ErrStoreNotFound):
		response.NotFound(c, 11001, "매장을 찾을 수 없습니다")
	case errors.Is(err, service.ErrStoreForbidden):
		response.Forbidden(c, 11002, "해당 매장에 대한 권한이 없습니다")
	default:
		response.InternalError(c)
	}
}
