package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nova-forge/hrms-backend-go/internal/handler/http/response"
	"github.com/nova-forge/hrms-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Token(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService jwt.Service
}

func NewAuthHandler(jwtService jwt.Service) AuthHandler {
	return &AuthHandlerImpl{jwtService: jwtService}
}

type tokenRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Role       string `json:"role"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

// Token issues a development access token for the given employee. There is
// no credential check behind it.
func (a *AuthHandlerImpl) Token(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Token decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if req.EmployeeID <= 0 {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}
	if req.Role == "" {
		req.Role = "employee"
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(req.EmployeeID, req.Role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	})
}
