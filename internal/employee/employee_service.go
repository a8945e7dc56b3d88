package employee

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const OptionsCacheKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Archive(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Register(
	ctx context.Context,
	req RegisterEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("email", req.Email),
	)

	// Friendly pre-check; the unique index still backstops the race.
	_, err := s.repo.FindByCode(ctx, req.EmployeeID)
	if err == nil {
		s.logger.Warn("register employee code already in use",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
		)
		return EmployeeResponse{}, employeeerrors.ErrEmployeeCodeTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		s.logger.Error("register employee lookup failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	emp := &Employee{
		EmployeeID:  req.EmployeeID,
		Name:        req.Name,
		Email:       req.Email,
		Designation: req.Designation,
		Status:      StatusActive,
		JoinedDate:  time.Now(),
	}

	if err := s.repo.Insert(ctx, emp); err != nil {
		s.logger.Error("register employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("register employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", emp.EmployeeID),
	)

	return mapToResponse(*emp), nil
}

func (s *service) GetAll(
	ctx context.Context,
	activeOnly bool,
) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.Bool("active_only", activeOnly))
	emps, err := s.repo.FindAll(ctx, activeOnly)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(emps), nil
}

// GetOptions serves the payroll form's employee picker: active employees
// only, cached in Redis with singleflight collapsing concurrent misses.
func (s *service) GetOptions(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		emps, err := s.repo.FindAll(ctx, true)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(emps)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, OptionsCacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("id", id))

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	// Unconditional overwrite; a missing document is a silent no-op.
	if err := s.repo.UpdateFields(ctx, oid, req.Name, req.Email, req.Designation); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success", zap.String("id", id))

	return EmployeeResponse{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		Designation: req.Designation,
	}, nil
}

func (s *service) Archive(ctx context.Context, id string) error {
	s.logger.Debug("archive employee requested", zap.String("id", id))

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	// Soft delete; archiving twice just sets Inactive again.
	if err := s.repo.SetStatus(ctx, oid, StatusInactive); err != nil {
		s.logger.Error("archive employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("archive employee success", zap.String("id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", OptionsCacheKey),
		)
	}
}

func mapToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          emp.ID.Hex(),
		EmployeeID:  emp.EmployeeID,
		Name:        emp.Name,
		Email:       emp.Email,
		Designation: emp.Designation,
		Status:      emp.Status,
		JoinedDate:  emp.JoinedDate.Format(time.RFC3339),
	}
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToResponse(e)
	}
	return res
}
