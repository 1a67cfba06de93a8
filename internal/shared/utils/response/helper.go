package response

import (
	"errors"
	"net/http"

	"busline/internal/shared/apperrors"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// RespondError maps the shared error taxonomy onto the response envelope.
func RespondError(c *gin.Context, err error) {
	_ = c.Error(err)

	var (
		validationErr apperrors.ValidationError
		fundsErr      apperrors.InsufficientFundsError
		notFoundErr   apperrors.NotFoundError
		authErr       apperrors.AuthorizationError
		conflictErr   apperrors.ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		var details interface{}
		if len(validationErr.Fields) > 0 {
			details = validationErr.Fields
		}
		RespondJSON(c, "error", http.StatusBadRequest, validationErr.Error(), nil, details)
	case errors.As(err, &fundsErr):
		RespondJSON(c, "error", http.StatusPaymentRequired, "Insufficient wallet balance. Add money first.",
			gin.H{
				"redirect":  "/add_money/",
				"required":  fundsErr.Required,
				"available": fundsErr.Available,
				"shortfall": fundsErr.Shortfall(),
			}, nil)
	case errors.As(err, &notFoundErr):
		RespondJSON(c, "error", http.StatusNotFound, notFoundErr.Error(), nil, nil)
	case errors.As(err, &authErr):
		code := http.StatusForbidden
		if authErr.Unauthenticated {
			code = http.StatusUnauthorized
		}
		RespondJSON(c, "error", code, authErr.Error(), nil, nil)
	case errors.As(err, &conflictErr):
		RespondJSON(c, "error", http.StatusConflict, conflictErr.Error(), nil, nil)
	case apperrors.IsStorage(err):
		RespondJSON(c, "error", http.StatusServiceUnavailable, "Temporary storage failure, please retry", nil, nil)
	default:
		RespondJSON(c, "error", http.StatusInternalServerError, "Internal server error", nil, nil)
	}
}
