package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trw5157-hue/garage/internal/api/metrics"
	"github.com/trw5157-hue/garage/internal/core/ports"
)

// InvoiceHandler generates and streams PDF invoices.
type InvoiceHandler struct {
	service ports.InvoiceService
}

func NewInvoiceHandler(service ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// Generate handles POST /jobs/:id/invoice (manager only). The PDF is built
// on demand from the posted charges and streamed back; nothing is stored.
//
// @Summary      Generate a PDF invoice for a job
// @Tags         invoices
// @Accept       json
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id    path      string          true  "Job ID"
// @Param        body  body      invoiceRequest  true  "Itemised charges"
// @Success      200   {file}    binary
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /jobs/{id}/invoice [post]
func (h *InvoiceHandler) Generate(c echo.Context) error {
	var req invoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	invoice, err := h.service.Generate(c.Request().Context(), c.Param("id"), toInvoiceCharges(req))
	if err != nil {
		return err
	}

	metrics.InvoicesGeneratedTotal.Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=invoice_`+invoice.Number+`.pdf`)
	return c.Blob(http.StatusOK, "application/pdf", invoice.Content)
}
