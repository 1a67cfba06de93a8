package wallets

import (
	"net/http"

	"busline/internal/shared/apperrors"
	"busline/internal/shared/middleware"
	"busline/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetBalance handles GET /add_money/
//
// @Summary Wallet balance
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.StandardApiResponse{data=BalanceResponse}
// @Failure 401 {object} response.StandardApiResponse
// @Router /add_money/ [get]
func (ctrl *Controller) GetBalance(c *gin.Context) {
	sc, err := middleware.CurrentSession(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	wallet, err := ctrl.service.GetBalance(c.Request.Context(), sc.UserID)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Wallet balance retrieved",
		BalanceResponse{UserID: wallet.UserID, Balance: wallet.Balance}, nil)
}

// TopUp handles POST /add_money/
//
// @Summary Top up the wallet
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TopUpRequest true "Amount"
// @Success 200 {object} response.StandardApiResponse{data=TopUpResponse}
// @Failure 400 {object} response.StandardApiResponse
// @Failure 401 {object} response.StandardApiResponse
// @Failure 503 {object} response.StandardApiResponse
// @Router /add_money/ [post]
func (ctrl *Controller) TopUp(c *gin.Context) {
	sc, err := middleware.CurrentSession(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	var req TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apperrors.FromBinding(err))
		return
	}

	wallet, err := ctrl.service.TopUp(c.Request.Context(), sc.UserID, req.Amount)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Money added to wallet", TopUpResponse{
		Amount:   req.Amount,
		Balance:  wallet.Balance,
		Redirect: "/ticket_booking/",
	}, nil)
}
