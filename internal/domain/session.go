package domain

// Session is the process-memory login state for one client. There is no
// logout, expiry, or persistence; a session lives until the server stops.
type Session struct {
	Token   string `json:"-"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}
