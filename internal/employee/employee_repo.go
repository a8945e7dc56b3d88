package employee

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Insert(ctx context.Context, emp *Employee) error
	FindByCode(ctx context.Context, code string) (*Employee, error)
	FindAll(ctx context.Context, activeOnly bool) ([]Employee, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, name, email, designation string) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) Repository {
	return &repository{col: col}
}

func (r *repository) Insert(ctx context.Context, emp *Employee) error {
	res, err := r.col.InsertOne(ctx, emp)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		emp.ID = oid
	}
	return nil
}

func (r *repository) FindByCode(ctx context.Context, code string) (*Employee, error) {
	var emp Employee
	err := r.col.FindOne(ctx, bson.M{"employeeId": code}).Decode(&emp)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) FindAll(ctx context.Context, activeOnly bool) ([]Employee, error) {
	filter := bson.M{}
	if activeOnly {
		filter["status"] = StatusActive
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var emps []Employee
	if err := cursor.All(ctx, &emps); err != nil {
		return nil, err
	}
	return emps, nil
}

func (r *repository) UpdateFields(ctx context.Context, id primitive.ObjectID, name, email, designation string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":        name,
			"email":       email,
			"designation": designation,
		}},
	)
	return err
}

func (r *repository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	return err
}
