package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/timesheet"
	"github.com/suweldo-hr/suweldo-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	RecordPunch(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{timesheetService: timesheetService}
}

func (h *timesheetHandlerImpl) RecordPunch(w http.ResponseWriter, r *http.Request) {
	var req timesheet.RecordPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	punch, err := h.timesheetService.RecordPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", timesheet.ToPunchResponse(punch))
}

func (h *timesheetHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	dateRange, err := timesheet.NewDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.timesheetService.Aggregate(r.Context(), employeeID, dateRange)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheet.ToPeriodSummaryResponse(summary))
}
