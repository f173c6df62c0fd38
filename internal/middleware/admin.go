package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
)

const AdminSecretHeader = "X-Admin-Secret"

// AdminSecret rejects requests whose X-Admin-Secret header does not match
// secret. With an empty secret every request is rejected.
func AdminSecret(secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminSecretHeader)
			if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
