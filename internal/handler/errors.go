package handler

import (
	"errors"
	"net/http"
	"strconv"

	"awqaf/internal/distribution"
	"awqaf/internal/logger"
	"awqaf/internal/middleware"
	"awqaf/internal/repository"
	"awqaf/internal/service"
	"awqaf/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// RegisterValidators adds the custom binding tags used by the request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	return v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		_, err := decimal.NewFromString(fl.Field().String())
		return err == nil
	})
}

// statusFor maps domain and service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, distribution.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, distribution.ErrOverAllocation),
		errors.Is(err, service.ErrWaqfExists),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrPayoutFinalized),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrNationalIDTaken),
		errors.Is(err, repository.ErrLockNotObtained):
		return http.StatusConflict
	case errors.Is(err, distribution.ErrInvalidShare),
		errors.Is(err, distribution.ErrInvalidAmount),
		errors.Is(err, distribution.ErrNoRules),
		errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidRefresh):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err in the standard envelope. Unexpected errors are logged
// and their details kept out of the response.
func writeError(c *gin.Context, log *logrus.Logger, module string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.LogError(log, module, c.HandlerName(), c.FullPath(), nil, err)
		c.JSON(status, response.Error(status, "Internal server error"))
		return
	}
	c.JSON(status, response.Error(status, err.Error()))
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
}

// govIDFrom returns the waqf gov id validated by RequireWaqfAccess.
func govIDFrom(c *gin.Context) int64 {
	if v, ok := c.Get(middleware.ContextGovID); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	id, _ := strconv.ParseInt(c.Param("govId"), 10, 64)
	return id
}

func userIDFrom(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

func nationalIDFrom(c *gin.Context) string {
	return c.GetString(middleware.ContextNationalID)
}
