package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/suweldo-hr/suweldo-backend-go/internal/handler/http/response"
)

// RequireCompany rejects tokens without a tenant. Every payroll route
// is company-scoped, so a token missing the claim can never be served.
func RequireCompany(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Missing access token")
			return
		}

		companyID, ok := claims["company_id"].(string)
		if !ok || companyID == "" {
			response.Forbidden(w, "Token is not bound to a company")
			return
		}

		next.ServeHTTP(w, r)
	})
}
