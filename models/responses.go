package models

// MessageResponse is the generic success body: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the generic failure body: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
