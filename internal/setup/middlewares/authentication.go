package middlewares

import (
	"net/http"
	"strings"

	"github.com/tmc-recipes/meals-backend/internal/utils"
)

// VerifyAccessToken accepts the session token from the Authorization header
// or the session cookie and injects the authenticated userId header for the
// controllers downstream.
func VerifyAccessToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var authorization string
		if header := r.Header.Get("Authorization"); header != "" {
			authorization = header
		} else if cookie, err := r.Cookie("session-token"); err == nil {
			authorization = cookie.Value
		} else {
			http.Error(w, "Missing or invalid access token", http.StatusUnauthorized)
			return
		}

		authorization = strings.TrimPrefix(authorization, "Bearer ")
		if authorization == "" {
			http.Error(w, "Missing or invalid access token", http.StatusUnauthorized)
			return
		}

		claims, err := utils.NewAccessTokenUtil().DecodeToken(authorization)
		if err != nil {
			http.Error(w, "Invalid or expired access token", http.StatusUnauthorized)
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			http.Error(w, "Invalid or expired access token", http.StatusUnauthorized)
			return
		}

		r.Header.Set("userId", sub)

		next.ServeHTTP(w, r)
	})
}
