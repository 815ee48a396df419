package entities

// FinancialSummary is derived from a work order's quote and payments; it is never stored.
type FinancialSummary struct {
	TotalQuoted  float64 `json:"total_quoted"`
	TotalPaid    float64 `json:"total_paid"`
	TotalPending float64 `json:"total_pending"`
	Balance      float64 `json:"balance"`
}

type ClientSummary struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	Document string
}

type ChecklistSummary struct {
	ID         string
	TemplateID string
	Title      string
	Progress   ChecklistProgress
	Complete   bool
}

// WorkOrderExtract is the read model of everything attached to a work order.
type WorkOrderExtract struct {
	WorkOrder  WorkOrder
	Client     ClientSummary
	Quote      *Quote
	Payments   []Payment
	Checklists []ChecklistSummary
	Equipments []Equipment
	Financial  FinancialSummary
}
