package report_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-ems/internal/payroll"
	payrollerrors "go-ems/internal/payroll/errors"
	"go-ems/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakePayrollService struct {
	HistoryFn func(ctx context.Context, month string) ([]payroll.TransactionResponse, error)
}

func (f *fakePayrollService) Process(ctx context.Context, req payroll.ProcessPayrollRequest) (payroll.TransactionResponse, error) {
	panic("not used")
}
func (f *fakePayrollService) History(ctx context.Context, month string) ([]payroll.TransactionResponse, error) {
	return f.HistoryFn(ctx, month)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestReportHandler_Export(t *testing.T) {
	t.Run("xlsx download with month filename", func(t *testing.T) {
		svc := &fakePayrollService{
			HistoryFn: func(ctx context.Context, month string) ([]payroll.TransactionResponse, error) {
				assert.Equal(t, "2024-03", month)
				return sampleTxns, nil
			},
		}

		r := setupRouter()
		r.GET("/reports/payroll", report.NewHandler(svc).Export)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/payroll?month=2024-03", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			w.Header().Get("Content-Type"),
		)
		assert.Contains(t, w.Header().Get("Content-Disposition"), `Salary_2024-03.xlsx`)

		rows := readRows(t, w.Body.Bytes())
		assert.Len(t, rows, len(sampleTxns)+1)
	})

	t.Run("csv variant", func(t *testing.T) {
		svc := &fakePayrollService{
			HistoryFn: func(ctx context.Context, month string) ([]payroll.TransactionResponse, error) {
				return sampleTxns, nil
			},
		}

		r := setupRouter()
		r.GET("/reports/payroll", report.NewHandler(svc).Export)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/payroll?month=2024-03&format=csv", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
		assert.Contains(t, w.Header().Get("Content-Disposition"), `Salary_2024-03.csv`)
		assert.Contains(t, w.Body.String(), "EMP001,Alice,5000,2024-03")
	})

	t.Run("empty month exports everything", func(t *testing.T) {
		svc := &fakePayrollService{
			HistoryFn: func(ctx context.Context, month string) ([]payroll.TransactionResponse, error) {
				assert.Empty(t, month)
				return nil, nil
			},
		}

		r := setupRouter()
		r.GET("/reports/payroll", report.NewHandler(svc).Export)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/payroll", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), `Salary_all.xlsx`)
	})

	t.Run("unknown format returns 400", func(t *testing.T) {
		svc := &fakePayrollService{}

		r := setupRouter()
		r.GET("/reports/payroll", report.NewHandler(svc).Export)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/payroll?format=pdf", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("storage failure propagates the error envelope", func(t *testing.T) {
		svc := &fakePayrollService{
			HistoryFn: func(ctx context.Context, month string) ([]payroll.TransactionResponse, error) {
				return nil, payrollerrors.ErrEmployeeNotFound
			},
		}

		r := setupRouter()
		r.GET("/reports/payroll", report.NewHandler(svc).Export)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/payroll", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":false`)
	})
}
