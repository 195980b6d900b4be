package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/agi040922/HR-Management-sub000/internal/dto"
	"github.com/agi040922/HR-Management-sub000/internal/service"
	"github.com/agi040922/HR-Management-sub000/pkg/response"
)

// StoreHandler 매장 모듈 HTTP 핸들러
type StoreHandler struct {
	storeSvc service.StoreService
}

// NewStoreHandler StoreHandler 생성
func NewStoreHandler(storeSvc service.StoreService) *StoreHandler {
	return &StoreHandler{storeSvc: storeSvc}
}

// ListStores 내 매장 목록 조회
// GET /api/v1/stores
func (h *StoreHandler) ListStores(c *gin.Context) {
	var req dto.StoreListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	stores, total, err := h.storeSvc.List(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleStoreError(c, err)
		return
	}

	response.OKPage(c, stores, total, req.Page, req.PageSize)
}

// GetStore 매장 상세 조회
// GET /api/v1/stores/:id
func (h *StoreHandler) GetStore(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "매장 ID는 필수입니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	store, err := h.storeSvc.GetByID(c.Request.Context(), id, callerID)
	if err != nil {
		h.handleStoreError(c, err)
		return
	}

	response.OK(c, store)
}

// CreateStore 매장 생성
// POST /api/v1/stores
func (h *StoreHandler) CreateStore(c *gin.Context) {
	var req dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	store, err := h.storeSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleStoreError(c, err)
		return
	}

	response.Created(c, store)
}

// UpdateStore 매장 수정
// PUT /api/v1/stores/:id
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "매장 ID는 필수입니다")
		return
	}

	var req dto.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	store, err := h.storeSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleStoreError(c, err)
		return
	}

	response.OK(c, store)
}

// DeleteStore 매장 삭제 (소프트 삭제)
// DELETE /api/v1/stores/:id
func (h *StoreHandler) DeleteStore(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "매장 ID는 필수입니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.storeSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleStoreError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleStoreError 매장 모듈 비즈니스 오류 일괄 처리
func (h *StoreHandler) handleStoreError(c *gin.Context, err error) {
	switch {
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
