package dto

// CreateReminderRequest is the payload for POST /reminder/.
// The id and user_id are never accepted from the client: the id is generated
// server-side and the owner comes from the X-User-Id header.
type CreateReminderRequest struct {
	Date string `json:"date" example:"2024-01-15"`
	Text string `json:"text" example:"Renew passport"`
}

// ReminderResponse is the wire shape returned by every reminder read.
type ReminderResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Date   string `json:"date" example:"2024-01-15"`
	Text   string `json:"text"`
}
