package payroll

type ProcessPayrollRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"gte=0"`
	Month      string  `json:"month" binding:"required"`
}

type TransactionResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	Amount        float64 `json:"amount"`
	Month         string  `json:"month"`
	ProcessedDate string  `json:"processed_date"`
}
