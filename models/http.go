package models

// SignupRequest is the body of POST /api/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateTaskRequest is the body of POST /api/tasks.
// Status falls back to [DefaultTaskStatus] when empty.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
	DueDate     string `json:"due_date"`
}

// TaskUpdate is the body of PUT /api/tasks/{id}.
//
// Omitted and empty fields are indistinguishable and both keep the stored
// value (see [Task.Merge]).
type TaskUpdate struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}
