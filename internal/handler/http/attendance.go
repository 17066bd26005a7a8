package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nova-forge/hrms-backend-go/internal/domain/attendance"
	"github.com/nova-forge/hrms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if req.EmployeeID <= 0 {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	rec, err := a.attendanceService.CheckIn(r.Context(), req.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", rec)
}

// CheckOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if req.EmployeeID <= 0 {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	rec, err := a.attendanceService.CheckOut(r.Context(), req.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", rec)
}

// List implements AttendanceHandler. An employee_id query parameter narrows
// the listing to one employee.
func (a *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		employeeID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "employee_id must be an integer", nil)
			return
		}

		records, err := a.attendanceService.ListByEmployee(r.Context(), employeeID)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		response.Success(w, records)
		return
	}

	records, err := a.attendanceService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Reset implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Reset(w http.ResponseWriter, r *http.Request) {
	if err := a.attendanceService.Reset(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance data reset successfully", nil)
}
