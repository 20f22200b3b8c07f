package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/hideapp/reminder-service/internal/utils"
)

// UserIDHeader carries the opaque identifier of the calling user. It is
// trusted as-is: there is no authentication beyond its presence.
const UserIDHeader = "X-User-Id"

// RequireUser extracts the caller's id from the X-User-Id header and stores
// it in the request context. A missing header is rejected with 401, a value
// that is not a UUID with 422.
func RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Missing X-User-Id header.")
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusUnprocessableEntity, "Invalid X-User-Id header.")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.SetUserID(r.Context(), userID)))
	}
}
