package create

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

	"github.com/magabrotheeeer/nutrition-tracker/internal/services/meal"
)

// Мок сервиса с методом Add
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Add(ctx context.Context, entry meal.Entry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func fptr(v float64) *float64 {
	return &v
}

func TestCreateHandler_ServeHTTP(t *testing.T) {
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
			name: "valid meal",
			requestBody: Request{
				Name:     "Oeufs",
				Calories: fptr(150),
				Proteins: fptr(12),
				Carbs:    fptr(1),
				Fats:     fptr(10),
			},
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantMessage:    "Meal added successfully",
		},
		{
			name: "negative macros accepted",
			requestBody: Request{
				Name:     "Erreur de saisie",
				Calories: fptr(-100),
				Proteins: fptr(-5),
				Carbs:    fptr(0),
				Fats:     fptr(0),
			},
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantMessage:    "Meal added successfully",
		},
		{
			name: "explicit zero macros accepted",
			requestBody: Request{
				Name:     "Eau",
				Calories: fptr(0),
				Proteins: fptr(0),
				Carbs:    fptr(0),
				Fats:     fptr(0),
			},
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantMessage:    "Meal added successfully",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name: "validation error - missing name",
			requestBody: Request{
				Calories: fptr(150),
				Proteins: fptr(12),
				Carbs:    fptr(1),
				Fats:     fptr(10),
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Name is a required field",
		},
		{
			name:           "validation error - missing macros",
			requestBody:    Request{Name: "Oeufs"},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Calories is a required field, field Proteins is a required field, field Carbs is a required field, field Fats is a required field",
		},
		{
			name: "storage failure",
			requestBody: Request{
				Name:     "Oeufs",
				Calories: fptr(150),
				Proteins: fptr(12),
				Carbs:    fptr(1),
				Fats:     fptr(10),
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
				serviceMock.On("Add", mock.Anything, mock.Anything).
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

			req := httptest.NewRequest(http.MethodPost, "/meals", bytes.NewReader(bodyBytes))
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

// Заголовок Authorization на этом маршруте не проверяется: запрос без токена
// и запрос с мусорным токеном проходят одинаково.
func TestCreateHandler_AuthorizationHeaderIgnored(t *testing.T) {
	serviceMock := new(ServiceMock)
	serviceMock.On("Add", mock.Anything, mock.Anything).Return(int64(1), nil).Twice()

	handler := New(newNoopLogger(), serviceMock)
	body, err := json.Marshal(Request{
		Name:     "Oeufs",
		Calories: fptr(150),
		Proteins: fptr(12),
		Carbs:    fptr(1),
		Fats:     fptr(10),
	})
	require.NoError(t, err)

	for _, header := range []string{"", "Bearer garbage-token"} {
		req := httptest.NewRequest(http.MethodPost, "/meals", bytes.NewReader(body))
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	}
	serviceMock.AssertExpectations(t)
}
