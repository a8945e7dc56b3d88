package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-ems/internal/employee"
	employeeerrors "go-ems/internal/employee/errors"
	employeeMock "go-ems/internal/employee/mock"
	"go-ems/internal/shared/apperror"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/mock/gomock"
)

func duplicateKeyErr() error {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{
			{Code: 11000, Message: "E11000 duplicate key error"},
		},
	}
}

func TestEmployeeService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	req := employee.RegisterEmployeeRequest{
		EmployeeID:  "EMP001",
		Name:        "Alice",
		Email:       "a@x.com",
		Designation: "Engineer",
	}

	t.Run("success", func(t *testing.T) {
		repo := employeeMock.NewMockRepository(ctrl)
		svc := employee.NewService(repo, nil)

		before := time.Now()

		repo.EXPECT().
			FindByCode(ctx, "EMP001").
			Return(nil, mongo.ErrNoDocuments)

		repo.EXPECT().
			Insert(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, emp *employee.Employee) error {
				assert.Equal(t, "EMP001", emp.EmployeeID)
				assert.Equal(t, "Alice", emp.Name)
				assert.Equal(t, "a@x.com", emp.Email)
				assert.Equal(t, "Engineer", emp.Designation)
				assert.Equal(t, employee.StatusActive, emp.Status)
				assert.False(t, emp.JoinedDate.Before(before))
				assert.False(t, emp.JoinedDate.After(time.Now()))
				emp.ID = primitive.NewObjectID()
				return nil
			})

		resp, err := svc.Register(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "EMP001", resp.EmployeeID)
		assert.Equal(t, employee.StatusActive, resp.Status)
	})

	t.Run("duplicate code yields conflict without a write", func(t *testing.T) {
		repo := employeeMock.NewMockRepository(ctrl)
		svc := employee.NewService(repo, nil)

		repo.EXPECT().
			FindByCode(ctx, "EMP001").
			Return(&employee.Employee{EmployeeID: "EMP001"}, nil)
		// No Insert expectation: a duplicate must not write.

		_, err := svc.Register(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeCodeTaken)
	})

	t.Run("racing duplicate caught by unique index", func(t *testing.T) {
		repo := employeeMock.NewMockRepository(ctrl)
		svc := employee.NewService(repo, nil)

		repo.EXPECT().
			FindByCode(ctx, "EMP001").
			Return(nil, mongo.ErrNoDocuments)

		repo.EXPECT().
			Insert(ctx, gomock.Any()).
			Return(duplicateKeyErr())

		_, err := svc.Register(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeCodeTaken)
	})

	t.Run("storage failure is wrapped", func(t *testing.T) {
		repo := employeeMock.NewMockRepository(ctrl)
		svc := employee.NewService(repo, nil)

		repo.EXPECT().
			FindByCode(ctx, "EMP001").
			Return(nil, errors.New("connection reset"))

		_, err := svc.Register(ctx, req)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeServiceUnavailable, appErr.Code)
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	t.Run("active only filter is forwarded", func(t *testing.T) {
		repo := employeeMock.NewMockRepository(ctrl)
		svc := employee.NewService(repo, nil)

		repo.EXPECT().
			FindAll(ctx, true).
			Return([]employee.Employee{
				{EmployeeID: "EMP001", Name: "Alice", Status: employee.StatusActive},
			}, nil)

		resp, err := svc.GetAll(ctx, true)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "EMP001", resp[0].EmployeeID)
	})

	t.Run("all records when activeOnly is false", func(t *testing.T) {
		repo := employeeMock.NewMockRepository(ctrl)
		svc := employee.NewService(repo, nil)

		repo.EXPECT().
			FindAll(ctx, false).
			Return([]employee.Employee{
				{EmployeeID: "EMP001", Status: employee.StatusActive},
				{EmployeeID: "EMP002", Status: employee.StatusInactive},
			}, nil)

		resp, err := svc.GetAll(ctx, false)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	t.Run("miss populates cache with active employees", func(t *testing.T) {
		repo := employeeMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := employee.NewService(repo, rdb)

		emps := []employee.Employee{
			{EmployeeID: "EMP001", Name: "Alice", Status: employee.StatusActive},
		}
		cached, _ := json.Marshal([]employee.EmployeeResponse{
			{
				ID:         primitive.NilObjectID.Hex(),
				EmployeeID: "EMP001",
				Name:       "Alice",
				Status:     employee.StatusActive,
				JoinedDate: time.Time{}.Format(time.RFC3339),
			},
		})

		redisMock.ExpectGet(employee.OptionsCacheKey).RedisNil()
		repo.EXPECT().
			FindAll(ctx, true).
			Return(emps, nil)
		redisMock.ExpectSet(employee.OptionsCacheKey, cached, 1*time.Hour).SetVal("OK")

		resp, err := svc.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Alice", resp[0].Name)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("hit skips the repository", func(t *testing.T) {
		repo := employeeMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := employee.NewService(repo, rdb)

		cached, _ := json.Marshal([]employee.EmployeeResponse{
			{EmployeeID: "EMP001", Name: "Alice"},
		})
		redisMock.ExpectGet(employee.OptionsCacheKey).SetVal(string(cached))

		resp, err := svc.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	req := employee.UpdateEmployeeRequest{
		Name:        "Alice B",
		Email:       "ab@x.com",
		Designation: "Senior Engineer",
	}

	t.Run("success overwrites fields", func(t *testing.T) {
		repo := employeeMock.NewMockRepository(ctrl)
		svc := employee.NewService(repo, nil)

		oid := primitive.NewObjectID()

		repo.EXPECT().
			UpdateFields(ctx, oid, "Alice B", "ab@x.com", "Senior Engineer").
			Return(nil)

		resp, err := svc.Update(ctx, oid.Hex(), req)

		assert.NoError(t, err)
		assert.Equal(t, "Alice B", resp.Name)
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		repo := employeeMock.NewMockRepository(ctrl)
		svc := employee.NewService(repo, nil)

		_, err := svc.Update(ctx, "not-an-object-id", req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}

func TestEmployeeService_Archive(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	t.Run("sets inactive, twice is idempotent", func(t *testing.T) {
		repo := employeeMock.NewMockRepository(ctrl)
		svc := employee.NewService(repo, nil)

		oid := primitive.NewObjectID()

		repo.EXPECT().
			SetStatus(ctx, oid, employee.StatusInactive).
			Return(nil).
			Times(2)

		assert.NoError(t, svc.Archive(ctx, oid.Hex()))
		assert.NoError(t, svc.Archive(ctx, oid.Hex()))
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		repo := employeeMock.NewMockRepository(ctrl)
		svc := employee.NewService(repo, nil)

		err := svc.Archive(ctx, "nope")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}
