package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nova-forge/hrms-backend-go/internal/domain/analytics"
	"github.com/nova-forge/hrms-backend-go/internal/domain/leave"
	"github.com/nova-forge/hrms-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	Reports(w http.ResponseWriter, r *http.Request)
	EmployeeStats(w http.ResponseWriter, r *http.Request)
	Policies(w http.ResponseWriter, r *http.Request)
	SetPolicy(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
	leaveService     leave.LeaveService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService, leaveService leave.LeaveService) AnalyticsHandler {
	return &AnalyticsHandlerImpl{
		analyticsService: analyticsService,
		leaveService:     leaveService,
	}
}

// Dashboard implements AnalyticsHandler.
func (a *AnalyticsHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := a.analyticsService.Dashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Reports implements AnalyticsHandler.
func (a *AnalyticsHandlerImpl) Reports(w http.ResponseWriter, r *http.Request) {
	data, err := a.analyticsService.Reports(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}

// EmployeeStats implements AnalyticsHandler.
func (a *AnalyticsHandlerImpl) EmployeeStats(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Employee ID must be an integer", nil)
		return
	}

	stats, err := a.analyticsService.EmployeeStats(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Policies implements AnalyticsHandler.
func (a *AnalyticsHandlerImpl) Policies(w http.ResponseWriter, r *http.Request) {
	policies, err := a.leaveService.Policies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, policies)
}

// SetPolicy implements AnalyticsHandler.
func (a *AnalyticsHandlerImpl) SetPolicy(w http.ResponseWriter, r *http.Request) {
	var req leave.SetPolicyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetPolicy decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := a.leaveService.SetPolicy(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave policy updated successfully", nil)
}
