package routes

import (
	"fieldflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes     = "/quotes"
	PathWorkOrders = "/work-orders"
	PathClients    = "/clients"
	PathPayments   = "/payments"
)

func addServiceFlowRoutes(rg *gin.RouterGroup, flow *handlers.ServiceFlowHandler, quotes *handlers.QuoteHandler, payments *handlers.PaymentHandler) {
	q := rg.Group(PathQuotes)
	{
		q.GET("/:quote_id", quotes.GetQuote)
		q.PATCH("/:quote_id/approve", quotes.ApproveQuote)
		q.PATCH("/:quote_id/reject", quotes.RejectQuote)
		q.POST("/:quote_id/work-order", flow.ConvertQuote)
	}

	wo := rg.Group(PathWorkOrders)
	{
		wo.POST("/:work_order_id/complete", flow.CompleteWorkOrder)
		wo.POST("/:work_order_id/payments", flow.GeneratePayment)
		wo.GET("/:work_order_id/extract", flow.GetWorkOrderExtract)
	}

	rg.Group(PathClients).GET("/:client_id/timeline", flow.GetClientTimeline)

	p := rg.Group(PathPayments)
	{
		p.GET("/:payment_id", payments.GetPayment)
		p.PATCH("/:payment_id/confirm", payments.ConfirmPayment)
	}
}
