package client

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-task-tracker/internal/adapter"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/mock"
	"github.com/MKhiriev/go-task-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*App, *mock.MockServerAdapter, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	out := &bytes.Buffer{}
	return NewApp(m, out, logger.Nop()), m, out
}

func TestApp_Run_NoCommand(t *testing.T) {
	app, _, out := newTestApp(t)

	err := app.Run(context.Background(), nil)

	assert.ErrorIs(t, err, ErrNoCommand)
	assert.Contains(t, out.String(), "usage:")
}

func TestApp_Run_UnknownCommand(t *testing.T) {
	app, _, out := newTestApp(t)

	err := app.Run(context.Background(), []string{"frobnicate"})

	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "frobnicate")
	assert.Contains(t, out.String(), "commands:")
}

func TestApp_Run_Help(t *testing.T) {
	app, _, out := newTestApp(t)

	require.NoError(t, app.Run(context.Background(), []string{"help"}))
	assert.Contains(t, out.String(), "usage:")
}

func TestApp_Signup(t *testing.T) {
	app, m, out := newTestApp(t)

	m.EXPECT().Signup(gomock.Any(), models.SignupRequest{
		Name: "Ann", Email: "ann@example.com", Password: "secret",
	}).Return(nil)

	err := app.Run(context.Background(), []string{"signup", "-name", "Ann", "-email", "ann@example.com", "-password", "secret"})

	require.NoError(t, err)
	assert.Equal(t, "User registered successfully\n", out.String())
}

func TestApp_Signup_Error(t *testing.T) {
	app, m, out := newTestApp(t)

	m.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(adapter.ErrBadRequest)

	err := app.Run(context.Background(), []string{"signup", "-email", "ann@example.com"})

	assert.ErrorIs(t, err, adapter.ErrBadRequest)
	assert.Empty(t, out.String())
}

func TestApp_Signup_BadFlag(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"signup", "-nope"})

	assert.Error(t, err)
}

func TestApp_Login_PrintsToken(t *testing.T) {
	app, m, out := newTestApp(t)

	m.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "ann@example.com", Password: "secret"}).
		Return("header.payload.sig", nil)

	err := app.Run(context.Background(), []string{"login", "-email", "ann@example.com", "-password", "secret"})

	require.NoError(t, err)
	assert.Equal(t, "header.payload.sig\n", out.String())
}

func TestApp_Validate(t *testing.T) {
	app, m, out := newTestApp(t)

	m.EXPECT().ValidateToken(gomock.Any()).Return(nil)

	require.NoError(t, app.Run(context.Background(), []string{"validate"}))
	assert.Equal(t, "Valid JWT\n", out.String())
}

func TestApp_Validate_Unauthorized(t *testing.T) {
	app, m, _ := newTestApp(t)

	m.EXPECT().ValidateToken(gomock.Any()).Return(adapter.ErrUnauthorized)

	assert.ErrorIs(t, app.Run(context.Background(), []string{"validate"}), adapter.ErrUnauthorized)
}

func TestApp_List(t *testing.T) {
	app, m, out := newTestApp(t)

	m.EXPECT().ListTasks(gomock.Any()).Return([]models.Task{
		{TaskID: "t-1", Title: "Write report", Status: "Pending", DueDate: "2026-11-01"},
		{TaskID: "t-2", Title: "Review", Status: "Done"},
	}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"list"}))

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "TITLE")
	assert.Contains(t, string(lines[1]), "Write report")
	assert.Contains(t, string(lines[1]), "2026-11-01")
	assert.Contains(t, string(lines[2]), "t-2")
}

func TestApp_List_Empty(t *testing.T) {
	app, m, out := newTestApp(t)

	m.EXPECT().ListTasks(gomock.Any()).Return([]models.Task{}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"list"}))
	assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("\n")))
}

func TestApp_Create(t *testing.T) {
	app, m, out := newTestApp(t)

	m.EXPECT().CreateTask(gomock.Any(), models.CreateTaskRequest{
		Title: "Write report", Description: "Q3", DueDate: "2026-11-01",
	}).Return(nil)

	err := app.Run(context.Background(), []string{"create", "-title", "Write report", "-description", "Q3", "-due", "2026-11-01"})

	require.NoError(t, err)
	assert.Equal(t, "Task added successfully\n", out.String())
}

func TestApp_Get(t *testing.T) {
	app, m, out := newTestApp(t)

	task := models.Task{TaskID: "t-1", Title: "Write report", Status: "Pending", UserID: "u-1"}
	m.EXPECT().GetTask(gomock.Any(), "t-1").Return(task, nil)

	require.NoError(t, app.Run(context.Background(), []string{"get", "t-1"}))

	var got models.Task
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, task, got)
}

func TestApp_Get_MissingID(t *testing.T) {
	app, _, _ := newTestApp(t)

	assert.ErrorIs(t, app.Run(context.Background(), []string{"get"}), ErrMissingTaskID)
}

func TestApp_Get_NotFound(t *testing.T) {
	app, m, _ := newTestApp(t)

	m.EXPECT().GetTask(gomock.Any(), "t-9").Return(models.Task{}, adapter.ErrNotFound)

	assert.ErrorIs(t, app.Run(context.Background(), []string{"get", "t-9"}), adapter.ErrNotFound)
}

func TestApp_Update(t *testing.T) {
	app, m, out := newTestApp(t)

	m.EXPECT().UpdateTask(gomock.Any(), "t-1", models.TaskUpdate{Status: "Done"}).Return(nil)

	require.NoError(t, app.Run(context.Background(), []string{"update", "t-1", "-status", "Done"}))
	assert.Equal(t, "Task updated successfully\n", out.String())
}

func TestApp_Update_FlagBeforeID(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"update", "-status", "Done"})

	assert.ErrorIs(t, err, ErrMissingTaskID)
}

func TestApp_Delete(t *testing.T) {
	app, m, out := newTestApp(t)

	m.EXPECT().DeleteTask(gomock.Any(), "t-1").Return(nil)

	require.NoError(t, app.Run(context.Background(), []string{"delete", "t-1"}))
	assert.Equal(t, "Task delete successfully\n", out.String())
}

func TestApp_Version(t *testing.T) {
	app, m, out := newTestApp(t)

	m.EXPECT().Version(gomock.Any()).Return(models.VersionResponse{
		Version: "v1.2.0", Date: "2026-10-01", Commit: "abc123",
	}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"version"}))
	assert.Contains(t, out.String(), "Server version: v1.2.0")
	assert.Contains(t, out.String(), "Server build commit: abc123")
}

func TestApp_Health(t *testing.T) {
	app, m, out := newTestApp(t)

	m.EXPECT().Health(gomock.Any()).Return(nil)
	require.NoError(t, app.Run(context.Background(), []string{"health"}))
	assert.Equal(t, "OK\n", out.String())

	app, m, _ = newTestApp(t)
	m.EXPECT().Health(gomock.Any()).Return(adapter.ErrServiceUnavailable)
	assert.ErrorIs(t, app.Run(context.Background(), []string{"health"}), adapter.ErrServiceUnavailable)
}

func TestApp_ImplementsClient(t *testing.T) {
	var _ Client = (*App)(nil)
}
