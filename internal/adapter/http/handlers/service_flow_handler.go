package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	request "fieldflow/internal/adapter/http/dto/request"
	response "fieldflow/internal/adapter/http/dto/response"
	"fieldflow/internal/adapter/http/middleware"
	"fieldflow/internal/domain/entities"
	"fieldflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceFlowHandler exposes the quote to work order to payment flow.
type ServiceFlowHandler struct {
	usecase usecase.IServiceFlowUseCase
}

func NewServiceFlowHandler(uc usecase.IServiceFlowUseCase) *ServiceFlowHandler {
	return &ServiceFlowHandler{usecase: uc}
}

// ConvertQuote creates a work order from an approved quote.
//
// @Summary      Convert an approved quote into a work order
// @Tags         service-flow
// @Accept       json
// @Produce      json
// @Param        X-Owner-ID  header    string                        true  "Tenant id"
// @Param        quote_id    path      string                        true  "quote_id"
// @Param        payload     body      request.ConvertQuoteRequest   true  "Work order data"
// @Success      201         {object}  response.WorkOrderDetailsResponse
// @Failure      400,401,404,412  {object}  pkg.HTTPError
// @Router       /quotes/{quote_id}/work-order [post]
func (h *ServiceFlowHandler) ConvertQuote(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	quoteID := c.Param("quote_id")
	log.Printf("[flow][handler] convert start owner_id=%s quote_id=%s", ownerID, quoteID)

	var payload request.ConvertQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[flow][handler] convert invalid payload quote_id=%s err=%v", quoteID, err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	details, err := h.usecase.ConvertQuote(c.Request.Context(), ownerID, quoteID, usecase.ConvertQuoteInput{
		Title:         payload.Title,
		Description:   payload.Description,
		ScheduledDate: payload.ScheduledDate,
		EquipmentIDs:  payload.EquipmentIDs,
	})
	if err != nil {
		log.Printf("[flow][handler] convert failed quote_id=%s err=%v", quoteID, err)
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkOrderDetails(details))
}

// CompleteWorkOrder marks a work order DONE. The body is optional.
//
// @Summary      Complete a work order
// @Tags         service-flow
// @Accept       json
// @Produce      json
// @Param        X-Owner-ID     header    string                            true   "Tenant id"
// @Param        work_order_id  path      string                            true   "work_order_id"
// @Param        payload        body      request.CompleteWorkOrderRequest  false  "Completion options"
// @Success      200            {object}  response.CompletedWorkOrderResponse
// @Failure      400,401,404,412  {object}  pkg.HTTPError
// @Router       /work-orders/{work_order_id}/complete [post]
func (h *ServiceFlowHandler) CompleteWorkOrder(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	workOrderID := c.Param("work_order_id")
	log.Printf("[flow][handler] complete start owner_id=%s work_order_id=%s", ownerID, workOrderID)

	payload, err := readCompleteRequest(c)
	if err != nil {
		log.Printf("[flow][handler] complete invalid payload work_order_id=%s err=%v", workOrderID, err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	completed, err := h.usecase.CompleteWorkOrder(c.Request.Context(), ownerID, workOrderID, usecase.CompleteOptions{
		SkipChecklistValidation: payload.SkipChecklistValidation,
	})
	if err != nil {
		log.Printf("[flow][handler] complete failed work_order_id=%s err=%v", workOrderID, err)
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompletedWorkOrder(completed))
}

// GeneratePayment issues a payment for a DONE work order.
//
// @Summary      Generate a payment for a completed work order
// @Tags         service-flow
// @Accept       json
// @Produce      json
// @Param        X-Owner-ID     header    string                          true  "Tenant id"
// @Param        work_order_id  path      string                          true  "work_order_id"
// @Param        payload        body      request.GeneratePaymentRequest  true  "Billing data"
// @Success      201            {object}  response.PaymentResponse
// @Failure      400,401,404,412  {object}  pkg.HTTPError
// @Router       /work-orders/{work_order_id}/payments [post]
func (h *ServiceFlowHandler) GeneratePayment(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	workOrderID := c.Param("work_order_id")
	log.Printf("[flow][handler] generate-payment start owner_id=%s work_order_id=%s", ownerID, workOrderID)

	var payload request.GeneratePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[flow][handler] generate-payment invalid payload work_order_id=%s err=%v", workOrderID, err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	dueDate, err := payload.ResolveDueDate()
	if err != nil {
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	payment, err := h.usecase.GeneratePayment(c.Request.Context(), ownerID, workOrderID, usecase.GeneratePaymentInput{
		BillingType: entities.BillingType(strings.TrimSpace(payload.BillingType)),
		DueDate:     dueDate,
		Value:       payload.Value,
	})
	if err != nil {
		log.Printf("[flow][handler] generate-payment failed work_order_id=%s err=%v", workOrderID, err)
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[flow][handler] generate-payment success work_order_id=%s payment_id=%s status=%s", workOrderID, payment.ID, payment.Status)

	c.JSON(http.StatusCreated, response.FromPayment(payment))
}

// @Summary      Client timeline
// @Tags         service-flow
// @Produce      json
// @Param        X-Owner-ID  header    string  true  "Tenant id"
// @Param        client_id   path      string  true  "client_id"
// @Success      200         {array}   response.TimelineEventResponse
// @Failure      401,404     {object}  pkg.HTTPError
// @Router       /clients/{client_id}/timeline [get]
func (h *ServiceFlowHandler) GetClientTimeline(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	clientID := c.Param("client_id")

	events, err := h.usecase.GetClientTimeline(c.Request.Context(), ownerID, clientID)
	if err != nil {
		log.Printf("[flow][handler] timeline failed client_id=%s err=%v", clientID, err)
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTimeline(events))
}

// @Summary      Work order financial extract
// @Tags         service-flow
// @Produce      json
// @Param        X-Owner-ID     header    string  true  "Tenant id"
// @Param        work_order_id  path      string  true  "work_order_id"
// @Success      200            {object}  response.WorkOrderExtractResponse
// @Failure      401,404        {object}  pkg.HTTPError
// @Router       /work-orders/{work_order_id}/extract [get]
func (h *ServiceFlowHandler) GetWorkOrderExtract(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	workOrderID := c.Param("work_order_id")

	extract, err := h.usecase.GetWorkOrderExtract(c.Request.Context(), ownerID, workOrderID)
	if err != nil {
		log.Printf("[flow][handler] extract failed work_order_id=%s err=%v", workOrderID, err)
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrderExtract(extract))
}

func readCompleteRequest(c *gin.Context) (request.CompleteWorkOrderRequest, error) {
	var payload request.CompleteWorkOrderRequest
	raw, err := c.GetRawData()
	if err != nil {
		return payload, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return payload, nil
	}
	err = json.Unmarshal(raw, &payload)
	return payload, err
}
