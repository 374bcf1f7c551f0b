package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"alumninexus/internal/delivery/http/helpers"
	"alumninexus/internal/delivery/http/middleware"
	"alumninexus/internal/domain"
)

// roleTokenTTL bounds how long a self-asserted role token stays valid.
const roleTokenTTL = 24 * time.Hour

// SelectRoleRequest is the request body for POST /api/auth/role.
type SelectRoleRequest struct {
	Role string `json:"role"`
}

// Validate implements Validator.
func (s SelectRoleRequest) Validate() []string {
	if strings.TrimSpace(s.Role) == "" {
		return []string{"Missing required fields: role"}
	}
	if !domain.ValidRole(s.Role) {
		return []string{"Invalid role. Must be 'student' or 'admin'"}
	}
	return nil
}

// RoleResponse carries the issued token and the role it asserts.
type RoleResponse struct {
	Role  string `json:"role"`
	Token string `json:"token,omitempty"`
}

type AuthController struct {
	Logger *slog.Logger
	Issuer domain.RoleTokenIssuer
}

func NewAuthController(logger *slog.Logger, issuer domain.RoleTokenIssuer) *AuthController {
	return &AuthController{
		Logger: logger,
		Issuer: issuer,
	}
}

// SelectRole godoc
// @Summary Select a portal role
// @Description Issues a signed token asserting the chosen role. There is no credential check; the role is self-asserted.
// @Tags auth
// @Accept json
// @Produce json
// @Param role body SelectRoleRequest true "Role to assume"
// @Success 200 {object} helpers.APIResponse "data contains the role and token"
// @Failure 400 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/auth/role [post]
func (c *AuthController) SelectRole(w http.ResponseWriter, r *http.Request) {
	var req SelectRoleRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Issuer.Issue(req.Role, roleTokenTTL)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to issue role token")
		return
	}
	helpers.WriteJSONData(w, http.StatusOK, RoleResponse{Role: req.Role, Token: token})
}

// CurrentRole godoc
// @Summary Get the caller's role
// @Description Echoes the role carried by the Bearer token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the role"
// @Failure 401 {object} helpers.APIResponse
// @Router /api/auth/role [get]
func (c *AuthController) CurrentRole(w http.ResponseWriter, r *http.Request) {
	role, ok := middleware.RoleFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, "missing or malformed authorization header")
		return
	}
	helpers.WriteJSONData(w, http.StatusOK, RoleResponse{Role: role})
}
