package response

import "fieldflow/internal/domain/entities"

type ChecklistSummaryResponse struct {
	ID            string `json:"id"`
	TemplateID    string `json:"template_id"`
	Title         string `json:"title"`
	TotalItems    int    `json:"total_items"`
	RequiredItems int    `json:"required_items"`
	AnsweredItems int    `json:"answered_items"`
	Complete      bool   `json:"complete"`
}

type WorkOrderExtractResponse struct {
	WorkOrder  WorkOrderResponse          `json:"work_order"`
	Client     ClientResponse             `json:"client"`
	Quote      *QuoteResponse             `json:"quote,omitempty"`
	Payments   []PaymentResponse          `json:"payments"`
	Checklists []ChecklistSummaryResponse `json:"checklists"`
	Equipments []EquipmentResponse        `json:"equipments"`
	Financial  entities.FinancialSummary  `json:"financial_summary"`
}

func FromWorkOrderExtract(e entities.WorkOrderExtract) WorkOrderExtractResponse {
	checklists := make([]ChecklistSummaryResponse, 0, len(e.Checklists))
	for _, c := range e.Checklists {
		checklists = append(checklists, ChecklistSummaryResponse{
			ID:            c.ID,
			TemplateID:    c.TemplateID,
			Title:         c.Title,
			TotalItems:    c.Progress.TotalItems,
			RequiredItems: c.Progress.RequiredItems,
			AnsweredItems: c.Progress.AnsweredItems,
			Complete:      c.Complete,
		})
	}

	res := WorkOrderExtractResponse{
		WorkOrder: FromWorkOrder(e.WorkOrder),
		Client: ClientResponse{
			ID:       e.Client.ID,
			Name:     e.Client.Name,
			Email:    e.Client.Email,
			Phone:    e.Client.Phone,
			Document: e.Client.Document,
		},
		Payments:   FromPayments(e.Payments),
		Checklists: checklists,
		Equipments: FromEquipments(e.Equipments),
		Financial:  e.Financial,
	}
	if e.Quote != nil {
		q := FromQuote(*e.Quote)
		res.Quote = &q
	}
	return res
}
