package middleware

import (
	"net/http"
	"strings"

	"github.com/dukapoint/pos_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// untrackedPaths are infrastructure endpoints not worth an analytics event.
var untrackedPaths = map[string]bool{
	"/health": true,
}

// PosthogMiddleware emits one analytics event per successful authenticated
// request, named after the matched route (e.g. "/api/v1/shifts" becomes
// "api_v1_shifts"). Requests that fail, hit untracked paths, or carry no
// user identity are skipped.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		if eventName == "" {
			// No matched route, e.g. a 404.
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}
