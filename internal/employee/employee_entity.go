package employee

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Employee lives in the "employees" collection. EmployeeID is the externally
// assigned code (e.g. EMP001), unique via index; _id stays Mongo's own.
type Employee struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID  string             `bson:"employeeId"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	Designation string             `bson:"designation"`
	Status      string             `bson:"status"`
	JoinedDate  time.Time          `bson:"joinedDate"`
}
