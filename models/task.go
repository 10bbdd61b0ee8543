package models

// DefaultTaskStatus is assigned to a task created without a status.
const DefaultTaskStatus = "Pending"

// Task is a work item owned by exactly one user.
//
// The owner is set at creation and never changes. Every read, update and
// delete of a task is filtered by both TaskID and UserID.
type Task struct {
	// TaskID is the opaque unique identifier of the task (UUID string).
	TaskID string `json:"task_id"`

	// Title is a short human-readable summary. Titles are not unique.
	Title string `json:"title"`

	// Description is free-form text. May be empty.
	Description string `json:"description"`

	// Status is a free-form state label. Defaults to [DefaultTaskStatus].
	Status string `json:"status"`

	// DueDate is stored exactly as supplied by the client.
	DueDate string `json:"due_date"`

	// UserID references the owning [User].
	UserID string `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// Merge applies a partial update to a copy of t and returns it.
//
// Empty strings in upd keep the stored value: a client cannot clear a field
// by sending "". All four mutable fields are present in the result, so the
// caller can rewrite them unconditionally.
func (t Task) Merge(upd TaskUpdate) Task {
	if upd.Title != "" {
		t.Title = upd.Title
	}
	if upd.Description != "" {
		t.Description = upd.Description
	}
	if upd.Status != "" {
		t.Status = upd.Status
	}
	if upd.DueDate != "" {
		t.DueDate = upd.DueDate
	}
	return t
}
