package payroll

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	Insert(ctx context.Context, txn *Transaction) error
	FindByEmployeeAndMonth(ctx context.Context, code, month string) (*Transaction, error)
	FindByMonth(ctx context.Context, month string) ([]Transaction, error)
	FindEmployeeByCode(ctx context.Context, code string) (*EmployeeRef, error)
}

type repository struct {
	salaries  *mongo.Collection
	employees *mongo.Collection
}

func NewRepository(salaries, employees *mongo.Collection) Repository {
	return &repository{salaries: salaries, employees: employees}
}

func (r *repository) Insert(ctx context.Context, txn *Transaction) error {
	res, err := r.salaries.InsertOne(ctx, txn)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		txn.ID = oid
	}
	return nil
}

func (r *repository) FindByEmployeeAndMonth(ctx context.Context, code, month string) (*Transaction, error) {
	var txn Transaction
	err := r.salaries.FindOne(ctx, bson.M{
		"employeeId": code,
		"month":      month,
	}).Decode(&txn)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// FindByMonth matches month by exact string equality; an empty month returns
// the whole history.
func (r *repository) FindByMonth(ctx context.Context, month string) ([]Transaction, error) {
	filter := bson.M{}
	if month != "" {
		filter["month"] = month
	}

	cursor, err := r.salaries.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var txns []Transaction
	if err := cursor.All(ctx, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *repository) FindEmployeeByCode(ctx context.Context, code string) (*EmployeeRef, error) {
	var ref EmployeeRef
	err := r.employees.FindOne(ctx, bson.M{"employeeId": code}).Decode(&ref)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}
