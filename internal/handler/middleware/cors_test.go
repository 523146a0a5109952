//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"court-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRequired(t *testing.T) {
	got := withRequired([]string{"content-type", "X-Trace"}, bookingRequestHeaders)

	assert.Equal(t, []string{"content-type", "X-Trace", "Authorization", "Idempotency-Key"}, got)
}

func TestNewCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		origins     []string
		origin      string
		wantOrigin  string
		wantCreds   string
		wantExposed bool
	}{
		{
			name:        "listed origin keeps credentials",
			origins:     []string{"http://localhost:3000"},
			origin:      "http://localhost:3000",
			wantOrigin:  "http://localhost:3000",
			wantCreds:   "true",
			wantExposed: true,
		},
		{
			name:        "wildcard drops credentials",
			origins:     []string{"*"},
			origin:      "http://venue.example",
			wantOrigin:  "*",
			wantCreds:   "",
			wantExposed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(NewCORSMiddleware(config.CORSConfig{
				AllowOrigins:     tt.origins,
				AllowMethods:     []string{"GET", "POST"},
				AllowCredentials: true,
				MaxAge:           time.Hour,
			}))
			r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCreds, w.Header().Get("Access-Control-Allow-Credentials"))
			assert.Equal(t, tt.wantExposed, w.Header().Get("Access-Control-Expose-Headers") != "")
		})
	}
}
