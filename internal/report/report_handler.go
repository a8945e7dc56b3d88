package report

import (
	"fmt"
	"net/http"

	"go-ems/internal/payroll"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	payrolls payroll.Service
	logger   *zap.Logger
}

func NewHandler(payrolls payroll.Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{payrolls: payrolls, logger: l}
}

// Export streams the payroll history for a month (or everything when month is
// empty) as a spreadsheet download. format=csv switches to the CSV variant.
func (h *Handler) Export(c *gin.Context) {
	month := c.Query("month")
	format := c.DefaultQuery("format", "xlsx")
	h.logger.Debug("http export payroll report",
		zap.String("month", month),
		zap.String("format", format),
	)

	if format != "xlsx" && format != "csv" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "format must be xlsx or csv", nil)
		return
	}

	txns, err := h.payrolls.History(c.Request.Context(), month)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("report request failed",
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
			zap.String("message", httpErr.Message),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	label := month
	if label == "" {
		label = "all"
	}

	var (
		data        []byte
		contentType string
		filename    string
	)

	switch format {
	case "csv":
		data, err = BuildCSV(txns)
		contentType = "text/csv"
		filename = fmt.Sprintf("Salary_%s.csv", label)
	default:
		data, err = BuildXLSX(txns)
		contentType = xlsxContentType
		filename = fmt.Sprintf("Salary_%s.xlsx", label)
	}
	if err != nil {
		h.logger.Error("build report failed", zap.String("format", format), zap.Error(err))
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Failed to build report", nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}
