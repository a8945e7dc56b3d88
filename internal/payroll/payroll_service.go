package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-ems/internal/events"
	"go-ems/internal/messaging/kafka"
	payrollerrors "go-ems/internal/payroll/errors"
	"go-ems/internal/shared/contextutil"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Process(ctx context.Context, req ProcessPayrollRequest) (TransactionResponse, error)
	History(ctx context.Context, month string) ([]TransactionResponse, error)
}

type service struct {
	repo      Repository
	publisher kafka.Publisher
	logger    *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithPublisher(repo, nil, logger...)
}

func NewServiceWithPublisher(repo Repository, publisher kafka.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		repo:      repo,
		publisher: publisher,
		logger:    l,
	}
}

func (s *service) Process(
	ctx context.Context,
	req ProcessPayrollRequest,
) (TransactionResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("process payroll requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("month", req.Month),
	)

	if _, err := time.Parse("2006-01", req.Month); err != nil {
		s.logger.Warn("process payroll invalid month",
			zap.String("request_id", rid),
			zap.String("month", req.Month),
		)
		return TransactionResponse{}, payrollerrors.ErrInvalidMonthFormat
	}
	if req.Amount < 0 {
		return TransactionResponse{}, payrollerrors.ErrInvalidAmount
	}

	emp, err := s.repo.FindEmployeeByCode(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.logger.Warn("process payroll employee not found",
				zap.String("request_id", rid),
				zap.String("employee_id", req.EmployeeID),
			)
			return TransactionResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		s.logger.Error("process payroll employee lookup failed", zap.String("request_id", rid), zap.Error(err))
		return TransactionResponse{}, mapRepositoryError(err)
	}

	// Friendly duplicate pre-check; the compound unique index is still the
	// authority when two calls race.
	_, err = s.repo.FindByEmployeeAndMonth(ctx, req.EmployeeID, req.Month)
	if err == nil {
		s.logger.Warn("process payroll already processed",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.String("month", req.Month),
		)
		return TransactionResponse{}, payrollerrors.ErrAlreadyProcessed
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		s.logger.Error("process payroll duplicate lookup failed", zap.String("request_id", rid), zap.Error(err))
		return TransactionResponse{}, mapRepositoryError(err)
	}

	txn := &Transaction{
		EmployeeID:    req.EmployeeID,
		EmployeeName:  emp.Name,
		Amount:        req.Amount,
		Month:         req.Month,
		ProcessedDate: time.Now(),
	}

	if err := s.repo.Insert(ctx, txn); err != nil {
		s.logger.Error("process payroll persist failed", zap.String("request_id", rid), zap.Error(err))
		return TransactionResponse{}, mapRepositoryError(err)
	}

	s.publishProcessed(ctx, rid, txn)

	s.logger.Info("process payroll success",
		zap.String("request_id", rid),
		zap.String("employee_id", txn.EmployeeID),
		zap.String("month", txn.Month),
	)

	return mapToResponse(*txn), nil
}

func (s *service) History(
	ctx context.Context,
	month string,
) ([]TransactionResponse, error) {
	s.logger.Debug("payroll history requested", zap.String("month", month))
	txns, err := s.repo.FindByMonth(ctx, month)
	if err != nil {
		s.logger.Error("payroll history failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(txns), nil
}

// publishProcessed is best effort: the transaction is already committed, so a
// broker hiccup is logged, never surfaced to the caller.
func (s *service) publishProcessed(ctx context.Context, rid string, txn *Transaction) {
	if s.publisher == nil {
		return
	}

	event := events.PayrollProcessedEvent{
		EventType:    "payroll_processed",
		RequestID:    rid,
		EmployeeID:   txn.EmployeeID,
		EmployeeName: txn.EmployeeName,
		Amount:       txn.Amount,
		Month:        txn.Month,
		OccurredAt:   time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal payroll event failed", zap.String("request_id", rid), zap.Error(err))
		return
	}

	if err := s.publisher.Publish(ctx, kafka.Message{
		Topic:     events.PayrollProcessedTopic,
		Key:       txn.EmployeeID,
		EventType: event.EventType,
		Payload:   payload,
	}); err != nil {
		s.logger.Error("publish payroll event failed",
			zap.String("request_id", rid),
			zap.String("employee_id", txn.EmployeeID),
			zap.Error(err),
		)
	}
}

func mapToResponse(txn Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            txn.ID.Hex(),
		EmployeeID:    txn.EmployeeID,
		EmployeeName:  txn.EmployeeName,
		Amount:        txn.Amount,
		Month:         txn.Month,
		ProcessedDate: txn.ProcessedDate.Format(time.RFC3339),
	}
}

func mapToListResponse(txns []Transaction) []TransactionResponse {
	resp := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		resp[i] = mapToResponse(txn)
	}
	return resp
}
