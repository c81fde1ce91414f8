package api

import (
	"log/slog"
	"net/http"

	"sales-invoicing/internal/domain/sharedkernel"
	reqdto "sales-invoicing/internal/handler/dto/request"
	resdto "sales-invoicing/internal/handler/dto/response"
	"sales-invoicing/internal/handler/httperr"
	"sales-invoicing/internal/handler/middleware"
	"sales-invoicing/internal/pkg/config"
	"sales-invoicing/internal/pkg/errs"
	"sales-invoicing/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	cmds            commands.InvoiceCommands
	defaultCurrency sharedkernel.Currency
	logger          *slog.Logger
}

func NewInvoiceHandler(cmds commands.InvoiceCommands, cfg config.Config, logger *slog.Logger) (*InvoiceHandler, error) {
	cur, err := sharedkernel.ParseCurrency(cfg.Invoice.DefaultCurrency)
	if err != nil {
		return nil, errs.Wrap(err, "INVOICE_DEFAULT_CURRENCY")
	}
	return &InvoiceHandler{cmds: cmds, defaultCurrency: cur, logger: logger}, nil
}

// @Summary Issue invoice
// @Description Issue an invoice for a client from product lines. Every line is taxed by the tax service; the invoice is not stored.
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueInvoiceRequest true "Invoice request"
// @Success 201 {object} resdto.InvoiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/invoices [post]
func (h *InvoiceHandler) IssueInvoice(c *gin.Context) {
	var req reqdto.IssueInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", "Invalid request format", nil)
		return
	}

	params, err := req.ToParams(h.defaultCurrency)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", "Invalid request", nil)
		return
	}

	invoice, err := h.cmds.IssueInvoice(c.Request.Context(), params)
	if err != nil {
		h.abortIssueError(c, err)
		return
	}

	if operatorID, ok := middleware.GetOperatorID(c); ok {
		h.logger.InfoContext(c.Request.Context(), "invoice issued",
			"invoice_id", invoice.ID().String(),
			"operator_id", operatorID.String(),
			"lines", invoice.Len(),
		)
	}
	c.JSON(http.StatusCreated, resdto.FromInvoice(invoice, h.defaultCurrency))
}

func (h *InvoiceHandler) abortIssueError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrInvalidRequest):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", "Invalid request", nil)
	case errs.Is(err, commands.ErrClientNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "CLIENT_NOT_FOUND", "Client not found", nil)
	case errs.Is(err, commands.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "PRODUCT_NOT_FOUND", "Product not found", nil)
	case errs.Is(err, commands.ErrUnsupportedProductType):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "UNSUPPORTED_PRODUCT_TYPE", "Product type cannot be taxed", nil)
	case errs.Is(err, commands.ErrTaxCalculationFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "TAX_SERVICE_FAILED", "Tax calculation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "INTERNAL", "Internal server error", nil)
	}
}
