package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/salary"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/cron"
)

// JobsHandler exposes manual triggers for the scheduled jobs, so an admin
// can rerun a sweep or a compile without waiting for the next tick.
type JobsHandler interface {
	RunAbsenceSweep(w http.ResponseWriter, r *http.Request)
	RunSalaryCompile(w http.ResponseWriter, r *http.Request)
	RunTotalsRecompute(w http.ResponseWriter, r *http.Request)
}

type jobsHandlerImpl struct {
	attendanceJobs *cron.AttendanceJobs
	salaryService  salary.SalaryService
}

func NewJobsHandler(attendanceJobs *cron.AttendanceJobs, salaryService salary.SalaryService) JobsHandler {
	return &jobsHandlerImpl{
		attendanceJobs: attendanceJobs,
		salaryService:  salaryService,
	}
}

// RunAbsenceSweep implements JobsHandler.
func (h *jobsHandlerImpl) RunAbsenceSweep(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceJobs.MarkAbsentEmployees(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence sweep completed", nil)
}

// RunTotalsRecompute implements JobsHandler.
func (h *jobsHandlerImpl) RunTotalsRecompute(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceJobs.RecomputeEmployeeTotals(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Running totals recompute completed", nil)
}

// RunSalaryCompile implements JobsHandler.
func (h *jobsHandlerImpl) RunSalaryCompile(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}

	compiled, err := h.salaryService.CompileAll(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary compilation completed", map[string]interface{}{
		"year":     year,
		"month":    month,
		"compiled": compiled,
	})
}
