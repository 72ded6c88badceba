// pdf.go handles the PDF upload endpoint.
//
// POST /api/v1/pdf/extract — Upload a PDF; returns its text and study prompts
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/study-prompts-api/internal/middleware"
	"github.com/Shimizu-Technology/study-prompts-api/internal/models"
	pdfservice "github.com/Shimizu-Technology/study-prompts-api/internal/services/pdf"
	"github.com/Shimizu-Technology/study-prompts-api/internal/services/prompts"
	"github.com/Shimizu-Technology/study-prompts-api/internal/services/worker"
)

// uploadField is the multipart field the file must be sent under.
const uploadField = "file"

// ExtractPDF handles PDF file upload, text extraction and prompt generation.
// POST /api/v1/pdf/extract
//
// Accepts multipart file upload with field name "file". The decode runs on
// the worker pool; this handler waits for it up to DecodeTimeout.
func (h *Handler) ExtractPDF(c *gin.Context) {
	// Limit request body size
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadSize)

	file, header, err := c.Request.FormFile(uploadField)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: fmt.Sprintf("No PDF file provided. Upload a file with the field name '%s'. Max size: %dMB.", uploadField, h.MaxUploadSize>>20),
			Code:    http.StatusBadRequest,
		})
		return
	}
	defer file.Close()

	// Media type is the Document Source's call, never the pipeline's.
	if !isPDFUpload(header.Filename, header.Header.Get("Content-Type")) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_file_type",
			Message: fmt.Sprintf("Unsupported file '%s'. Only PDF files are accepted.", header.Filename),
			Code:    http.StatusBadRequest,
		})
		return
	}

	// Go Pattern: io.ReadAll reads the entire reader into a byte slice.
	// The pdf library needs random access, so the whole file lives in memory.
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "read_error",
			Message: "Failed to read uploaded file",
			Code:    http.StatusBadRequest,
		})
		return
	}

	runID := middleware.GetRequestID(c)
	log := h.Logger.With().Str("run_id", runID).Str("filename", header.Filename).Logger()
	if claims := middleware.GetClaims(c); claims != nil {
		log = log.With().Str("subject", claims.Subject).Logger()
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.DecodeTimeout)
	defer cancel()

	result, err := h.Runner.Submit(ctx, runID, data)
	if err != nil {
		status, body := extractionError(err)
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Int("status", status).Msg("PDF extraction failed")
		} else {
			log.Warn().Err(err).Int("status", status).Msg("PDF extraction rejected")
		}
		c.JSON(status, body)
		return
	}

	resp := models.ExtractResponse{
		RunID:     runID,
		Filename:  header.Filename,
		Text:      result.Text,
		Prompts:   result.Prompts,
		PageCount: result.PageCount,
	}
	if result.Empty() {
		resp.Message = prompts.EmptyStateMessage
	}

	log.Info().
		Int("pages", result.PageCount).
		Int("prompts", len(result.Prompts)).
		Msg("PDF processed")

	c.JSON(http.StatusOK, resp)
}

// extractionError maps a pipeline or pool error to a status and body.
// A DecodeError must stay distinguishable from an empty-but-valid result,
// which never reaches here.
func extractionError(err error) (int, models.ErrorResponse) {
	switch {
	case pdfservice.IsDecodeError(err):
		return http.StatusInternalServerError, models.ErrorResponse{
			Error:   "extraction_failed",
			Message: "PDF text extraction failed: " + err.Error(),
			Code:    http.StatusInternalServerError,
		}
	case errors.Is(err, worker.ErrQueueFull), errors.Is(err, worker.ErrPoolStopped):
		return http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "queue_full",
			Message: "The server is busy processing other documents. Try again shortly.",
			Code:    http.StatusServiceUnavailable,
		}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, models.ErrorResponse{
			Error:   "extraction_timeout",
			Message: "PDF processing took too long and was abandoned",
			Code:    http.StatusGatewayTimeout,
		}
	default:
		return http.StatusInternalServerError, models.ErrorResponse{
			Error:   "extraction_failed",
			Message: "PDF processing failed: " + err.Error(),
			Code:    http.StatusInternalServerError,
		}
	}
}

// isPDFUpload accepts a .pdf filename, or an explicit application/pdf
// Content-Type for clients that send files without an extension.
func isPDFUpload(filename, contentType string) bool {
	if strings.ToLower(filepath.Ext(filename)) == ".pdf" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/pdf"
}
