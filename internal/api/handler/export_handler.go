package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/agi040922/HR-Management-sub000/internal/dto"
	"github.com/agi040922/HR-Management-sub000/internal/service"
	"github.com/agi040922/HR-Management-sub000/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler 문서 내보내기 모듈 HTTP 핸들러
type ExportHandler struct {
	expSvc service.ExportService
}

// NewExportHandler ExportHandler 생성
func NewExportHandler(expSvc service.ExportService) *ExportHandler {
	return &ExportHandler{expSvc: expSvc}
}

// writeFile 파일 다운로드 응답 작성
// 한글 파일명은 RFC 5987 방식(filename*=UTF-8'')으로 인코딩한다.
func writeFile(c *gin.Context, buf *bytes.Buffer, filename, contentType string) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", contentType)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// ExportPayroll 급여 대장 XLSX 다운로드
// GET /api/v1/stores/:id/export/payroll?template_id=...
func (h *ExportHandler) ExportPayroll(c *gin.Context) {
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

	buf, filename, err := h.expSvc.ExportPayroll(c.Request.Context(), storeID, q.TemplateID, callerID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeFile(c, buf, filename, contentTypeXLSX)
}

// ExportSchedule 주간 스케줄 XLSX 다운로드
// GET /api/v1/schedule-templates/:id/export/xlsx
func (h *ExportHandler) ExportSchedule(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "템플릿 ID는 필수입니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.expSvc.ExportSchedule(c.Request.Context(), id, callerID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeFile(c, buf, filename, contentTypeXLSX)
}

// ExportScheduleICS 주간 스케줄 iCalendar 다운로드
// GET /api/v1/schedule-templates/:id/export/ics
func (h *ExportHandler) ExportScheduleICS(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "템플릿 ID는 필수입니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.expSvc.ExportScheduleICS(c.Request.Context(), id, callerID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeFile(c, buf, filename, contentTypeICS)
}

// ExportContract 표준근로계약서 XLSX 다운로드
// GET /api/v1/contracts/:id/export
func (h *ExportHandler) ExportContract(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "계약 ID는 필수입니다")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.expSvc.ExportContract(c.Request.Context(), id, callerID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeFile(c, buf, filename, contentTypeXLSX)
}

// handleExportError 내보내기 모듈 비즈니스 오류 일괄 처리
func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportEmptySchedule):
		response.NotFound(c, 17001, "배정된 스케줄이 없습니다")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	case errors.Is(err, service.ErrTemplateStoreMismatch):
		response.BadRequest(c, 14001, "템플릿이 해당 매장 소속이 아닙니다")
	case errors.Is(err, service.ErrTemplateNotFound):
		response.NotFound(c, 13001, "스케줄 템플릿을 찾을 수 없습니다")
	case errors.Is(err, service.ErrContractNotFound):
		response.NotFound(c, 16001, "근로계약을 찾을 수 없습니다")
	case errors.Is(err, service.ErrStoreNotFound):
		response.NotFound(c, 11001, "매장을 찾을 수 없습니다")
	case errors.Is(err, service.ErrStoreForbidden):
		response.Forbidden(c, 11002, "해당 매장에 대한 권한이 없습니다")
	default:
		response.InternalError(c)
	}
}
