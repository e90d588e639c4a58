package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/nutrition-tracker/internal/storage"
)

// Мок сервиса с методом Register
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Register(ctx context.Context, email, password string) (int64, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(int64), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantMessage    string
		wantError      string
	}{
		{
			name: "valid registration",
			requestBody: Request{
				Email:    "user1@example.com",
				Password: "password123",
			},
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantMessage:    "User registered successfully",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name: "validation error - missing password",
			requestBody: Request{
				Email: "user1@example.com",
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Password is a required field",
		},
		{
			name: "validation error - missing email",
			requestBody: Request{
				Password: "password123",
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Email is a required field",
		},
		{
			name: "email already registered",
			requestBody: Request{
				Email:    "taken@example.com",
				Password: "password123",
			},
			mockErr:        storage.ErrUserAlreadyExists,
			mockCalled:     true,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Email already registered",
		},
		{
			name: "storage failure",
			requestBody: Request{
				Email:    "user1@example.com",
				Password: "password123",
			},
			mockErr:        errors.New("connection lost"),
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			if tt.mockCalled {
				serviceMock.On("Register", mock.Anything, mock.Anything, mock.Anything).
					Return(int64(1), tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), serviceMock)

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(bodyBytes))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, got["message"])
			}
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got["error"])
			}
			serviceMock.AssertExpectations(t)
		})
	}
}
