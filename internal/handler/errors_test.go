package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"awqaf/internal/distribution"
	"awqaf/internal/logger"
	"awqaf/internal/repository"
	"awqaf/internal/service"
	"awqaf/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{distribution.NewNotFound("waqf", "7"), http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", &distribution.OverAllocationError{CurrentTotal: decimal.NewFromInt(80), Requested: decimal.NewFromInt(25)}), http.StatusConflict},
		{service.ErrWaqfExists, http.StatusConflict},
		{&service.TransitionError{From: "completed", To: "pending"}, http.StatusConflict},
		{service.ErrPayoutFinalized, http.StatusConflict},
		{repository.ErrLockNotObtained, http.StatusConflict},
		{service.ErrEmailTaken, http.StatusConflict},
		{&distribution.InvalidShareError{ShareType: "percent", Reason: "must be between 0 and 100"}, http.StatusBadRequest},
		{distribution.ErrInvalidAmount, http.StatusBadRequest},
		{distribution.ErrNoRules, http.StatusBadRequest},
		{fmt.Errorf("%w: bad date", service.ErrInvalidInput), http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrInvalidRefresh, http.StatusUnauthorized},
		{service.ErrForbidden, http.StatusForbidden},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.status, statusFor(tc.err))
		})
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	render := func(err error) (int, response.Response) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/waqfs/7", nil)
		writeError(c, logger.Discard(), "test", err)

		var body response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return w.Code, body
	}

	code, body := render(errors.New("pq: password authentication failed"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", body.Error)
	assert.Equal(t, "error", body.Status)

	code, body = render(distribution.NewNotFound("beneficiary", "abc"))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "beneficiary not found: abc", body.Error)
}

func TestDecimalValidator(t *testing.T) {
	require.NoError(t, RegisterValidators())
	gin.SetMode(gin.TestMode)

	type payload struct {
		Amount string `json:"amount" binding:"required,decimal"`
	}
	bind := func(raw string) error {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		var p payload
		return c.ShouldBindJSON(&p)
	}

	assert.NoError(t, bind(`{"amount":"1250.75"}`))
	assert.Error(t, bind(`{"amount":"12,50"}`))
}
