package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unistep/loyalty-backend/internal/pkg/models"
	"github.com/unistep/loyalty-backend/internal/pkg/otperr"
	"github.com/unistep/loyalty-backend/internal/utils"
	"github.com/unistep/loyalty-backend/services/loyalty/mocks"
)

func newHandlerTest(t *testing.T) (*UserHandler, *mocks.MockUserUC, *echo.Echo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userUC := mocks.NewMockUserUC(ctrl)
	e := echo.New()
	e.Validator = utils.NewRequestValidator()
	return NewUserHandler(userUC), userUC, e
}

func doJSON(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGenerateOTP_Success(t *testing.T) {
	h, userUC, e := newHandlerTest(t)

	userUC.EXPECT().
		GenerateOTP(gomock.Any(), "555123456").
		Return(nil)

	c, rec := doJSON(e, http.MethodPost, "/auth/otp/generate", `{"phone_number": "555123456"}`)

	require.NoError(t, h.GenerateOTP(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestGenerateOTP_MissingPhoneNumber(t *testing.T) {
	h, _, e := newHandlerTest(t)

	c, rec := doJSON(e, http.MethodPost, "/auth/otp/generate", `{}`)

	require.NoError(t, h.GenerateOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Phone number is required")
}

func TestGenerateOTP_DeliveryFailure(t *testing.T) {
	h, userUC, e := newHandlerTest(t)

	userUC.EXPECT().
		GenerateOTP(gomock.Any(), "555123456").
		Return(otperr.ErrDeliveryFailed)

	c, rec := doJSON(e, http.MethodPost, "/auth/otp/generate", `{"phone_number": "555123456"}`)

	require.NoError(t, h.GenerateOTP(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGenerateOTP_InternalError(t *testing.T) {
	h, userUC, e := newHandlerTest(t)

	userUC.EXPECT().
		GenerateOTP(gomock.Any(), "555123456").
		Return(errors.New("redis down"))

	c, rec := doJSON(e, http.MethodPost, "/auth/otp/generate", `{"phone_number": "555123456"}`)

	require.NoError(t, h.GenerateOTP(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "redis", "internal details stay out of the response")
}

func TestVerifyOTP_Success(t *testing.T) {
	h, userUC, e := newHandlerTest(t)

	userUC.EXPECT().
		VerifyOTP(gomock.Any(), "555123456", "4821").
		Return(&models.AuthResponse{
			Token:       "signed.jwt.token",
			PhoneNumber: "555123456",
			ExpiresAt:   1767225600,
		}, nil)

	c, rec := doJSON(e, http.MethodPost, "/auth/otp/verify", `{"phone_number": "555123456", "code": "4821"}`)

	require.NoError(t, h.VerifyOTP(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
}

func TestVerifyOTP_MissingFields(t *testing.T) {
	h, _, e := newHandlerTest(t)

	c, rec := doJSON(e, http.MethodPost, "/auth/otp/verify", `{"phone_number": "555123456"}`)

	require.NoError(t, h.VerifyOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Phone number and code are required")
}

func TestVerifyOTP_RejectionStatuses(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"no challenge", otperr.ErrNotFound, "No verification code found"},
		{"expired", otperr.ErrExpired, "expired"},
		{"wrong code", otperr.ErrMismatch, "Invalid verification code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, userUC, e := newHandlerTest(t)

			userUC.EXPECT().
				VerifyOTP(gomock.Any(), "555123456", "0000").
				Return(nil, tt.err)

			c, rec := doJSON(e, http.MethodPost, "/auth/otp/verify", `{"phone_number": "555123456", "code": "0000"}`)

			require.NoError(t, h.VerifyOTP(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
		})
	}
}
