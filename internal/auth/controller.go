package auth

import (
	"net/http"

	"busline/internal/shared/apperrors"
	"busline/internal/shared/middleware"
	"busline/internal/shared/utils/response"
	"busline/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
	log       *logger.Logger
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
		log:       logger.GetDefault(),
	}
}

// bind decodes the JSON body and runs the validate tags on it.
func (c *Controller) bind(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		response.RespondError(ctx, apperrors.FromBinding(err))
		return false
	}
	if err := c.validator.Struct(req); err != nil {
		response.RespondError(ctx, apperrors.FromBinding(err))
		return false
	}
	return true
}

// Register handles POST /register/
//
// @Summary Register an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} response.StandardApiResponse{data=AuthResponse}
// @Failure 400 {object} response.StandardApiResponse
// @Failure 409 {object} response.StandardApiResponse
// @Failure 503 {object} response.StandardApiResponse
// @Router /register/ [post]
func (c *Controller) Register(ctx *gin.Context) {
	var req RegisterRequest
	if !c.bind(ctx, &req) {
		return
	}

	resp, err := c.service.Register(ctx.Request.Context(), &req)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	resp.Redirect = "/ticket_booking/"
	response.RespondJSON(ctx, "success", http.StatusCreated, "User registered successfully", resp, nil)
}

// Login handles POST /login/
//
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} response.StandardApiResponse{data=AuthResponse}
// @Failure 400 {object} response.StandardApiResponse
// @Failure 401 {object} response.StandardApiResponse
// @Router /login/ [post]
func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if !c.bind(ctx, &req) {
		return
	}

	resp, err := c.service.Login(ctx.Request.Context(), &req)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.log.LogAuthFailure(ctx.Request.Context(), "invalid credentials", ctx.ClientIP())
		}
		response.RespondError(ctx, err)
		return
	}

	resp.Redirect = "/ticket_booking/"
	response.RespondJSON(ctx, "success", http.StatusOK, "Login successful", resp, nil)
}

// RefreshToken handles POST /token/refresh/
//
// @Summary Refresh the access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} response.StandardApiResponse{data=TokenPair}
// @Failure 400 {object} response.StandardApiResponse
// @Failure 401 {object} response.StandardApiResponse
// @Router /token/refresh/ [post]
func (c *Controller) RefreshToken(ctx *gin.Context) {
	var req RefreshTokenRequest
	if !c.bind(ctx, &req) {
		return
	}

	tokenPair, err := c.service.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.log.LogAuthFailure(ctx.Request.Context(), "invalid refresh token", ctx.ClientIP())
		}
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Token refreshed successfully", tokenPair, nil)
}

// Logout handles POST /logout/
//
// @Summary Log out and drop staged passengers
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.StandardApiResponse
// @Failure 401 {object} response.StandardApiResponse
// @Router /logout/ [post]
func (c *Controller) Logout(ctx *gin.Context) {
	sc, err := middleware.CurrentSession(ctx)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	if err := c.service.Logout(ctx.Request.Context(), sc); err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Logged out successfully", gin.H{"redirect": "/login/"}, nil)
}

// ChangePassword handles PUT /change_password/
//
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Passwords"
// @Success 200 {object} response.StandardApiResponse
// @Failure 400 {object} response.StandardApiResponse
// @Failure 401 {object} response.StandardApiResponse
// @Router /change_password/ [put]
func (c *Controller) ChangePassword(ctx *gin.Context) {
	sc, err := middleware.CurrentSession(ctx)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	var req ChangePasswordRequest
	if !c.bind(ctx, &req) {
		return
	}

	if err := c.service.ChangePassword(ctx.Request.Context(), sc.UserID, &req); err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Password changed successfully", nil, nil)
}

// GetMe handles GET /me/
//
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.StandardApiResponse{data=UserResponse}
// @Failure 401 {object} response.StandardApiResponse
// @Failure 404 {object} response.StandardApiResponse
// @Router /me/ [get]
func (c *Controller) GetMe(ctx *gin.Context) {
	sc, err := middleware.CurrentSession(ctx)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	userData := map[string]interface{}{
		"id":    sc.UserID.String(),
		"email": sc.Email,
		"role":  string(sc.Role),
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "User data retrieved successfully", userData, nil)
}
