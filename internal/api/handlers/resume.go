package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"resumeforge/internal/api/validation"
	"resumeforge/internal/exporter"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

var resumeValidator = validator.New()

func init() {
	// Register shared resume validators
	validation.RegisterResumeValidators(resumeValidator)
}

// PreviewResumeHandler handles the POST /api/v1/resume/preview endpoint
func PreviewResumeHandler(pipeline *exporter.Pipeline) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestID(c)
		logger := logging.GetGlobalLogger()

		var req models.PreviewRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to parse preview request body", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return badRequest(c, requestID, "invalid_request", "Invalid request body: "+err.Error())
		}
		if err := resumeValidator.Struct(&req); err != nil {
			return badRequest(c, requestID, "validation_failed", "Request validation failed: "+err.Error())
		}

		view := utils.GetStringOrDefault(req.View, "tabs")
		logger.Info("Processing resume preview request", map[string]interface{}{
			"request_id": requestID,
			"template":   req.Resume.Template,
			"view":       view,
		})

		html, err := pipeline.Preview(c.Request().Context(), req.Resume, view)
		if err != nil {
			return pipelineError(c, requestID, err)
		}
		return c.HTML(http.StatusOK, html)
	}
}

// PreviewMarkupHandler handles the POST /api/v1/resume/preview/markup
// endpoint, rendering user-edited markup directly. Malformed markup is
// repaired with a visible warning, never rejected.
func PreviewMarkupHandler(pipeline *exporter.Pipeline) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestID(c)

		var req models.MarkupPreviewRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, requestID, "invalid_request", "Invalid request body: "+err.Error())
		}
		if err := resumeValidator.Struct(&req); err != nil {
			return badRequest(c, requestID, "validation_failed", "Request validation failed: "+err.Error())
		}

		view := utils.GetStringOrDefault(req.View, "tabs")
		html := pipeline.PreviewMarkup(c.Request().Context(), req.Markup, req.Template, view)
		return c.HTML(http.StatusOK, html)
	}
}

// ExportResumeHandler handles the POST /api/v1/resume/export endpoint,
// returning the PDF as a download attachment
func ExportResumeHandler(pipeline *exporter.Pipeline) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestID(c)
		logger := logging.GetGlobalLogger()

		var req models.ExportRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, requestID, "invalid_request", "Invalid request body: "+err.Error())
		}
		if err := resumeValidator.Struct(&req); err != nil {
			return badRequest(c, requestID, "validation_failed", "Request validation failed: "+err.Error())
		}

		logger.Info("Processing resume export request", map[string]interface{}{
			"request_id": requestID,
			"template":   req.Resume.Template,
		})

		export, err := pipeline.Export(c.Request().Context(), req.Resume)
		if err != nil {
			return pipelineError(c, requestID, err)
		}

		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename=%q`, export.Filename))
		return c.Blob(http.StatusOK, "application/pdf", export.Data)
	}
}

// MarkupResumeHandler handles the POST /api/v1/resume/markup endpoint,
// returning the assembled markup document for hand editing
func MarkupResumeHandler(pipeline *exporter.Pipeline) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestID(c)

		var req models.MarkupRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, requestID, "invalid_request", "Invalid request body: "+err.Error())
		}
		if err := resumeValidator.Struct(&req); err != nil {
			return badRequest(c, requestID, "validation_failed", "Request validation failed: "+err.Error())
		}

		document, err := pipeline.Markup(c.Request().Context(), req.Resume)
		if err != nil {
			return pipelineError(c, requestID, err)
		}
		return c.JSON(http.StatusOK, models.MarkupResponse{
			Markup:   document,
			Template: utils.GetStringOrDefault(req.Resume.Template, models.DefaultTemplate),
		})
	}
}

// ListTemplatesHandler handles GET /api/v1/templates
func ListTemplatesHandler(pipeline *exporter.Pipeline) echo.HandlerFunc {
	return func(c echo.Context) error {
		activeOnly := c.QueryParam("active") == "true"
		templates := pipeline.Templates(c.Request().Context(), activeOnly)
		return c.JSON(http.StatusOK, models.TemplateListResponse{Templates: templates})
	}
}

func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}

func badRequest(c echo.Context, requestID, code, message string) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}

// pipelineError maps the exporter sentinel errors onto HTTP responses
func pipelineError(c echo.Context, requestID string, err error) error {
	logger := logging.GetGlobalLogger()

	switch {
	case errors.Is(err, exporter.ErrValidation):
		return badRequest(c, requestID, "validation_failed", err.Error())
	case errors.Is(err, exporter.ErrLayout):
		logger.Error("PDF export failed", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:     "layout_failed",
			Message:   "PDF generation failed",
			RequestID: requestID,
			Timestamp: time.Now(),
		})
	default:
		logger.Error("Resume pipeline failed", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:     "internal_error",
			Message:   "Failed to process resume",
			RequestID: requestID,
			Timestamp: time.Now(),
		})
	}
}
