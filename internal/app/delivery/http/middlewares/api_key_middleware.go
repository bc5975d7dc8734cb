package middlewares

import (
	"context"
	"crypto/subtle"
	"net/http"
	"tutorat-service/internal/pkg/constvars"
	"tutorat-service/internal/pkg/exceptions"
	"tutorat-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// RequireSuperadminAPIKey rejects any request whose x-api-key does not match the configured key.
func (m *Middlewares) RequireSuperadminAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderAPIKey)
		if apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyRequired(nil))
			return
		}

		expected := m.InternalConfig.App.SuperadminAPIKey
		if expected == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			m.Log.Warn("API Key authentication failed",
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingMethodKey, r.Method),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH_KEY, true)

		m.Log.Info("API Key authentication successful",
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
