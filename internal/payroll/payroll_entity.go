package payroll

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction is one salary payment for one employee for one calendar month,
// stored in the "salaries" collection. EmployeeName is snapshotted at process
// time so later renames do not rewrite history. Immutable once inserted.
type Transaction struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID    string             `bson:"employeeId"`
	EmployeeName  string             `bson:"employeeName"`
	Amount        float64            `bson:"amount"`
	Month         string             `bson:"month"`
	ProcessedDate time.Time          `bson:"processedDate"`
}

// EmployeeRef is the slice of the employee document payroll needs for the
// name snapshot.
type EmployeeRef struct {
	EmployeeID string `bson:"employeeId"`
	Name       string `bson:"name"`
}
