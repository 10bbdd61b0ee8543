package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MKhiriev/go-task-tracker/internal/adapter"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/models"
)

const usage = `usage: task-client <command> [flags] [task-id]

commands:
  signup   -name NAME -email EMAIL -password PASSWORD
  login    -email EMAIL -password PASSWORD   (prints the token for ADAPTER_TOKEN)
  validate                                    check the stored token
  list                                        list your tasks
  create   -title TITLE [-description D] [-status S] [-due DATE]
  get      TASK_ID
  update   TASK_ID [-title T] [-description D] [-status S] [-due DATE]
  delete   TASK_ID
  version                                     server build information
  health                                      server health
`

type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter: serverAdapter,
		out:     out,
		logger:  logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrNoCommand
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Msg("running client command")

	switch command {
	case "signup":
		return a.signup(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "validate":
		return a.validate(ctx)
	case "list":
		return a.list(ctx)
	case "create":
		return a.create(ctx, rest)
	case "get":
		return a.get(ctx, rest)
	case "update":
		return a.update(ctx, rest)
	case "delete":
		return a.delete(ctx, rest)
	case "version":
		return a.version(ctx)
	case "health":
		return a.health(ctx)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func (a *App) signup(ctx context.Context, args []string) error {
	var req models.SignupRequest
	fs := newFlagSet("signup", a.out)
	fs.StringVar(&req.Name, "name", "", "display name")
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.adapter.Signup(ctx, req); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "User registered successfully")
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	var req models.LoginRequest
	fs := newFlagSet("login", a.out)
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := a.adapter.Login(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, token)
	return nil
}

func (a *App) validate(ctx context.Context) error {
	if err := a.adapter.ValidateToken(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Valid JWT")
	return nil
}

func (a *App) list(ctx context.Context) error {
	tasks, err := a.adapter.ListTasks(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tDUE")
	for _, t := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.TaskID, t.Title, t.Status, t.DueDate)
	}
	return tw.Flush()
}

func (a *App) create(ctx context.Context, args []string) error {
	var req models.CreateTaskRequest
	fs := newFlagSet("create", a.out)
	fs.StringVar(&req.Title, "title", "", "task title")
	fs.StringVar(&req.Description, "description", "", "task description")
	fs.StringVar(&req.Status, "status", "", "task status (default Pending)")
	fs.StringVar(&req.DueDate, "due", "", "due date")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.adapter.CreateTask(ctx, req); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Task added successfully")
	return nil
}

func (a *App) get(ctx context.Context, args []string) error {
	taskID, _, err := splitTaskID(args)
	if err != nil {
		return err
	}

	task, err := a.adapter.GetTask(ctx, taskID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(task)
}

func (a *App) update(ctx context.Context, args []string) error {
	taskID, rest, err := splitTaskID(args)
	if err != nil {
		return err
	}

	var upd models.TaskUpdate
	fs := newFlagSet("update", a.out)
	fs.StringVar(&upd.Title, "title", "", "new title")
	fs.StringVar(&upd.Description, "description", "", "new description")
	fs.StringVar(&upd.Status, "status", "", "new status")
	fs.StringVar(&upd.DueDate, "due", "", "new due date")
	if err = fs.Parse(rest); err != nil {
		return err
	}

	if err = a.adapter.UpdateTask(ctx, taskID, upd); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Task updated successfully")
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	taskID, _, err := splitTaskID(args)
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteTask(ctx, taskID); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Task delete successfully")
	return nil
}

func (a *App) version(ctx context.Context) error {
	v, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Server version: %s\nServer build date: %s\nServer build commit: %s\n", v.Version, v.Date, v.Commit)
	return nil
}

func (a *App) health(ctx context.Context) error {
	if err := a.adapter.Health(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "OK")
	return nil
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

// splitTaskID takes the leading positional task id; flags may follow it.
func splitTaskID(args []string) (string, []string, error) {
	if len(args) == 0 || args[0] == "" || args[0][0] == '-' {
		return "", nil, ErrMissingTaskID
	}
	return args[0], args[1:], nil
}
