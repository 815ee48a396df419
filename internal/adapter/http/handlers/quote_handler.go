package handlers

import (
	"context"
	"log"
	"net/http"

	response "fieldflow/internal/adapter/http/dto/response"
	"fieldflow/internal/adapter/http/middleware"
	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// @Summary      Get a quote
// @Tags         quotes
// @Produce      json
// @Param        X-Owner-ID  header    string  true  "Tenant id"
// @Param        quote_id    path      string  true  "quote_id"
// @Success      200         {object}  response.QuoteResponse
// @Failure      401,404     {object}  pkg.HTTPError
// @Router       /quotes/{quote_id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	h.respondQuote(c, "get", h.usecase.GetByID)
}

// @Summary      Approve a quote
// @Tags         quotes
// @Produce      json
// @Param        X-Owner-ID   header    string  true  "Tenant id"
// @Param        quote_id     path      string  true  "quote_id"
// @Success      200          {object}  response.QuoteResponse
// @Failure      401,404,412  {object}  pkg.HTTPError
// @Router       /quotes/{quote_id}/approve [patch]
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.respondQuote(c, "approve", h.usecase.Approve)
}

// @Summary      Reject a quote
// @Tags         quotes
// @Produce      json
// @Param        X-Owner-ID   header    string  true  "Tenant id"
// @Param        quote_id     path      string  true  "quote_id"
// @Success      200          {object}  response.QuoteResponse
// @Failure      401,404,412  {object}  pkg.HTTPError
// @Router       /quotes/{quote_id}/reject [patch]
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.respondQuote(c, "reject", h.usecase.Reject)
}

func (h *QuoteHandler) respondQuote(
	c *gin.Context,
	action string,
	fn func(ctx context.Context, ownerID, id string) (entities.Quote, error),
) {
	ownerID := middleware.OwnerID(c)
	quoteID := c.Param("quote_id")

	quote, err := fn(c.Request.Context(), ownerID, quoteID)
	if err != nil {
		log.Printf("[quote][handler] %s failed quote_id=%s err=%v", action, quoteID, err)
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}
