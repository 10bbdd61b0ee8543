package store

// Queries are written with "?" placeholders and rebound per dialect by
// [DB.rebind].
const (
	createUser = `INSERT INTO users (user_id, name, email, password, created_at)
    VALUES (?, ?, ?, ?, ?);`

	findUserByEmail = `SELECT user_id, name, email, password, created_at
    FROM users
    WHERE email = ?;`
)

const tasksTable = "tasks"

var taskColumns = []string{"task_id", "title", "description", "status", "due_date", "user_id"}
