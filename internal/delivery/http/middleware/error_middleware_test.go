package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "favorites/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantLogged bool
	}{
		{
			name:       "domain error",
			err:        errors.Wrap(domainerrors.Forbidden("You are not allowed to edit this product"), "update product"),
			wantStatus: http.StatusForbidden,
			wantBody:   `{"status":403,"message":"You are not allowed to edit this product"}`,
		},
		{
			name:       "missing field",
			err:        domainerrors.MissingField("No product price."),
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"status":405,"message":"No product price."}`,
		},
		{
			name:       "echo error keeps its code",
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantBody:   `{"status":413,"message":"Request Entity Too Large"}`,
		},
		{
			name:       "internal details never leak",
			err:        domainerrors.DatabaseExecute(errors.New("pq: relation missing"), "find product"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"status":500,"message":"internal server error"}`,
			wantLogged: true,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"status":500,"message":"internal server error"}`,
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/product", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			if tt.wantLogged {
				assert.Contains(t, logs.String(), "Unhandled error")
			} else {
				assert.Empty(t, logs.String())
			}
		})
	}
}
