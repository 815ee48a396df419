package handlers

import (
	"log"
	"net/http"

	response "fieldflow/internal/adapter/http/dto/response"
	"fieldflow/internal/adapter/http/middleware"
	"fieldflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves owner-scoped payment reads and confirmations.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Param        X-Owner-ID  header    string  true  "Tenant id"
// @Param        payment_id  path      string  true  "payment_id"
// @Success      200         {object}  response.PaymentResponse
// @Failure      401,404     {object}  pkg.HTTPError
// @Router       /payments/{payment_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	paymentID := c.Param("payment_id")

	payment, err := h.usecase.GetByID(c.Request.Context(), ownerID, paymentID)
	if err != nil {
		log.Printf("[payment][handler] get failed payment_id=%s err=%v", paymentID, err)
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// ConfirmPayment records a PENDING or OVERDUE payment as received.
//
// @Summary      Confirm a payment
// @Tags         payments
// @Produce      json
// @Param        X-Owner-ID   header    string  true  "Tenant id"
// @Param        payment_id   path      string  true  "payment_id"
// @Success      200          {object}  response.PaymentResponse
// @Failure      401,404,412  {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/confirm [patch]
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	paymentID := c.Param("payment_id")
	log.Printf("[payment][handler] confirm start owner_id=%s payment_id=%s", ownerID, paymentID)

	payment, err := h.usecase.Confirm(c.Request.Context(), ownerID, paymentID)
	if err != nil {
		log.Printf("[payment][handler] confirm failed payment_id=%s err=%v", paymentID, err)
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] confirm success payment_id=%s status=%s", payment.ID, payment.Status)

	c.JSON(http.StatusOK, response.FromPayment(payment))
}
