package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/hideapp/reminder-service/internal/handlers"
	"github.com/hideapp/reminder-service/internal/middleware"
)

// NewRouter builds the application mux. Handlers are passed in explicitly so
// the router never reaches for package-level state.
func NewRouter(reminderHandler *handlers.ReminderHandler, healthHandler *handlers.HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check routes
	mux.HandleFunc("GET /healthz", healthHandler.HealthCheck)
	mux.HandleFunc("GET /livez", healthHandler.LivenessCheck)
	mux.HandleFunc("GET /readyz", healthHandler.ReadinessCheck)

	// Reminder routes, all scoped to the caller via X-User-Id
	mux.HandleFunc("GET /reminder/{id}", middleware.RequireUser(reminderHandler.GetReminder))
	mux.HandleFunc("GET /reminder/{$}", middleware.RequireUser(reminderHandler.ListReminders))
	mux.HandleFunc("POST /reminder/{$}", middleware.RequireUser(reminderHandler.CreateReminder))
	mux.HandleFunc("DELETE /reminder/{id}", middleware.RequireUser(reminderHandler.DeleteReminder))

	// API documentation
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("GET /{$}", rootHandler)

	return mux
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Reminder service is running."))
}
