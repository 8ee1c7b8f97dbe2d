package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trw5157-hue/garage/internal/api/metrics"
	"github.com/trw5157-hue/garage/internal/core/ports"
)

// NotificationHandler fronts the mocked third-party integrations. All three
// endpoints are manager-only and return canned success payloads.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// SendWhatsApp handles POST /notifications/whatsapp.
//
// @Summary      Queue a WhatsApp notification (mock)
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      whatsAppRequest  true  "Job and message"
// @Success      200   {object}  ports.NotificationResult
// @Failure      404   {object}  errorResponse
// @Router       /notifications/whatsapp [post]
func (h *NotificationHandler) SendWhatsApp(c echo.Context) error {
	var req whatsAppRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.SendWhatsApp(c.Request().Context(), req.JobID, req.Message)
	if err != nil {
		return err
	}

	metrics.NotificationsQueuedTotal.WithLabelValues(ports.ChannelWhatsApp).Inc()
	return c.JSON(http.StatusOK, result)
}

// SendInvoiceEmail handles POST /email/invoice?job_id=.
//
// @Summary      Queue an invoice email (mock)
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        job_id  query     string  true  "Job ID"
// @Success      200     {object}  ports.NotificationResult
// @Failure      404     {object}  errorResponse
// @Router       /email/invoice [post]
func (h *NotificationHandler) SendInvoiceEmail(c echo.Context) error {
	jobID := c.QueryParam("job_id")
	if jobID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "job_id is required")
	}

	result, err := h.service.SendInvoiceEmail(c.Request().Context(), jobID)
	if err != nil {
		return err
	}

	metrics.NotificationsQueuedTotal.WithLabelValues(ports.ChannelEmail).Inc()
	return c.JSON(http.StatusOK, result)
}

// ExportSheets handles POST /export/google-sheets.
//
// @Summary      Export all jobs to a spreadsheet (mock)
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.ExportResult
// @Router       /export/google-sheets [post]
func (h *NotificationHandler) ExportSheets(c echo.Context) error {
	result, err := h.service.ExportJobs(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.NotificationsQueuedTotal.WithLabelValues(ports.ChannelSheets).Inc()
	return c.JSON(http.StatusOK, result)
}
