package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hideapp/reminder-service/internal/dto"
	"github.com/hideapp/reminder-service/internal/models"
	"github.com/hideapp/reminder-service/internal/repository"
	"github.com/hideapp/reminder-service/internal/utils"
)

// ReminderHandler manages reminder endpoints. Every operation is scoped to
// the caller identified by the X-User-Id header: a reminder is only visible
// and mutable through its owner.
type ReminderHandler struct {
	repo *repository.Repository[models.Reminder]
}

// NewReminderHandler creates a new ReminderHandler
func NewReminderHandler(db *gorm.DB) *ReminderHandler {
	return &ReminderHandler{repo: repository.New[models.Reminder](db)}
}

func reminderResponse(r models.Reminder) dto.ReminderResponse {
	return dto.ReminderResponse{
		ID:     r.ID.String(),
		UserID: r.UserID.String(),
		Date:   utils.FormatDate(r.Date),
		Text:   r.Text,
	}
}

// GetReminder handles GET /reminder/{id}
// @Summary Get a reminder by id
// @Tags reminder
// @Produce json
// @Param id path string true "Reminder ID"
// @Param X-User-Id header string true "Calling user ID"
// @Success 200 {object} dto.ReminderResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /reminder/{id} [get]
func (h *ReminderHandler) GetReminder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Missing X-User-Id header.")
		return
	}

	reminderID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusUnprocessableEntity, "Reminder id must be a UUID.")
		return
	}

	reminder, err := h.repo.Get(r.Context(),
		repository.Eq("id", reminderID),
		repository.Eq("user_id", userID),
	)
	if err != nil {
		slog.ErrorContext(r.Context(), "could not fetch reminder", slog.Any("error", err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	if reminder == nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Reminder not found.")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, reminderResponse(*reminder))
}

// ListReminders handles GET /reminder/ with an optional inclusive date range
// @Summary List the caller's reminders
// @Tags reminder
// @Produce json
// @Param X-User-Id header string true "Calling user ID"
// @Param start_date query string false "Lower bound (YYYY-MM-DD, inclusive)"
// @Param end_date query string false "Upper bound (YYYY-MM-DD, inclusive)"
// @Success 200 {array} dto.ReminderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /reminder/ [get]
func (h *ReminderHandler) ListReminders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Missing X-User-Id header.")
		return
	}

	conds := []repository.Condition{repository.Eq("user_id", userID)}

	q := r.URL.Query()
	if v := strings.TrimSpace(q.Get("start_date")); v != "" {
		startDate, err := utils.ParseDate(v)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "start_date must be an ISO 8601 date (YYYY-MM-DD).")
			return
		}
		conds = append(conds, repository.Gte("date", startDate))
	}
	if v := strings.TrimSpace(q.Get("end_date")); v != "" {
		endDate, err := utils.ParseDate(v)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "end_date must be an ISO 8601 date (YYYY-MM-DD).")
			return
		}
		conds = append(conds, repository.Lte("date", endDate))
	}

	reminders, err := h.repo.Filter(r.Context(), conds...)
	if err != nil {
		slog.ErrorContext(r.Context(), "could not list reminders", slog.Any("error", err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	// Always an array, never null, even for the empty owned set.
	out := make([]dto.ReminderResponse, 0, len(reminders))
	for _, reminder := range reminders {
		out = append(out, reminderResponse(reminder))
	}
	utils.WriteJSONResponse(w, http.StatusOK, out)
}

// CreateReminder handles POST /reminder/
// @Summary Create a reminder
// @Tags reminder
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Calling user ID"
// @Param payload body dto.CreateReminderRequest true "Reminder payload"
// @Success 201 {object} dto.ReminderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /reminder/ [post]
func (h *ReminderHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Missing X-User-Id header.")
		return
	}

	var req dto.CreateReminderRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	if req.Date == "" || req.Text == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "date and text are required.")
		return
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "date must be an ISO 8601 date (YYYY-MM-DD).")
		return
	}

	// Check-then-act: two concurrent identical creates can both pass this
	// probe. The duplicate guard is best effort, not a constraint.
	existing, err := h.repo.Get(r.Context(),
		repository.Eq("user_id", userID),
		repository.Eq("date", date),
		repository.Eq("text", req.Text),
	)
	if err != nil {
		slog.ErrorContext(r.Context(), "could not check for duplicate reminder", slog.Any("error", err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	if existing != nil {
		utils.WriteErrorResponse(w, http.StatusConflict, "Reminder already exists.")
		return
	}

	reminder := models.Reminder{
		ID:     uuid.New(),
		UserID: userID,
		Date:   date,
		Text:   req.Text,
	}
	if err := h.repo.Create(r.Context(), &reminder); err != nil {
		slog.ErrorContext(r.Context(), "could not create reminder", slog.Any("error", err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, reminderResponse(reminder))
}

// DeleteReminder handles DELETE /reminder/{id}
// @Summary Delete a reminder by id
// @Tags reminder
// @Produce json
// @Param id path string true "Reminder ID"
// @Param X-User-Id header string true "Calling user ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /reminder/{id} [delete]
func (h *ReminderHandler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Missing X-User-Id header.")
		return
	}

	reminderID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusUnprocessableEntity, "Reminder id must be a UUID.")
		return
	}

	conds := []repository.Condition{
		repository.Eq("id", reminderID),
		repository.Eq("user_id", userID),
	}

	reminder, err := h.repo.Get(r.Context(), conds...)
	if err != nil {
		slog.ErrorContext(r.Context(), "could not fetch reminder", slog.Any("error", err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	if reminder == nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Reminder not found.")
		return
	}

	if err := h.repo.Delete(r.Context(), conds...); err != nil {
		slog.ErrorContext(r.Context(), "could not delete reminder", slog.Any("error", err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Reminder deleted successfully."})
}
