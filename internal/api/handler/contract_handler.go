package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/agi040922/HR-Management-sub000/internal/dto"
	"github.com/agi040922/HR-Management-sub000/internal/service"
	"github.com/agi040922/HR-Management-sub000/pkg/response"
)

// ContractHandler 근로계약 모듈 HTTP 핸들러
type ContractHandler struct {
	ctSvc service.ContractService
}

// NewContractHandler ContractHandler 생성
func NewContractHandler(ctSvc service.ContractService) *ContractHandler {
	return &ContractHandler{ctSvc: ctSvc}
}

// ListContracts 매장 근로계약 목록 조회
// GET /api/v1/stores/:id/contracts
func (h *ContractHandler) ListContracts(c *gin.Context) {
	storeID := c.Param("id")
	if storeID == "" {
		response.BadRequest(c, 10001, "매장 ID는 필수입니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	contracts, err := h.ctSvc.ListByStore(c.Request.Context(), storeID, callerID)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.OK(c, gin.H{"list": contracts})
}

// GetContract 근로계약 상세 조회
// GET /api/v1/contracts/:id
func (h *ContractHandler) GetContract(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "계약 ID는 필수입니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	contract, err := h.ctSvc.GetByID(c.Request.Context(), id, callerID)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.OK(c, contract)
}

// CreateContract 근로계약 작성
// POST /api/v1/stores/:id/contracts
func (h *ContractHandler) CreateContract(c *gin.Context) {
	storeID := c.Param("id")
	if storeID == "" {
		response.BadRequest(c, 10001, "매장 ID는 필수입니다")
		return
	}

	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	contract, err := h.ctSvc.Create(c.Request.Context(), storeID, &req, callerID)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.Created(c, contract)
}

// UpdateContract 근로계약 수정
// PUT /api/v1/contracts/:id
func (h *ContractHandler) UpdateContract(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "계약 ID는 필수입니다")
		return
	}

	var req dto.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	contract, err := h.ctSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.OK(c, contract)
}

// DeleteContract 근로계약 삭제 (소프트 삭제)
// DELETE /api/v1/contracts/:id
func (h *ContractHandler) DeleteContract(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "계약 ID는 필수입니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.ctSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleContractError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleContractError 근로계약 모듈 비즈니스 오류 일괄 처리
func (h *ContractHandler) handleContractError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrContractNotFound):
		response.NotFound(c, 16001, "근로계약을 찾을 수 없습니다")
	case errors.Is(err, service.ErrContractInvalidDate):
		response.BadRequest(c, 16002, "계약 기간이 올바르지 않습니다")
	case errors.Is(err, service.ErrWageBelowMinimum):
		response.BadRequest(c, 12002, "시급이 최저임금보다 낮습니다")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12001, "직원을 찾을 수 없습니다")
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
