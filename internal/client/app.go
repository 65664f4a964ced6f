// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/MKhiriev/go-user-hub/internal/service"
	"github.com/MKhiriev/go-user-hub/internal/workers"
	"github.com/MKhiriev/go-user-hub/models"
)

// App is the interactive client application. It restores cached sessions on
// startup, keeps the session manager and background workers running for the
// whole process lifetime, and dispatches typed commands against the client
// service layer.
type App struct {
	services *service.ClientServices
	jobs     *workers.Workers
	logger   *logger.Logger

	in  io.Reader
	out io.Writer
}

// NewApp assembles the client application from its already constructed
// dependencies. Input and output default to stdin and stdout.
func NewApp(services *service.ClientServices, jobs *workers.Workers, logger *logger.Logger) *App {
	return &App{
		services: services,
		jobs:     jobs,
		logger:   logger,
		in:       os.Stdin,
		out:      os.Stdout,
	}
}

// Run starts the command loop and blocks until the user quits or the process
// receives a termination signal.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.services.SessionSvc.Restore(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("session restore failed")
	}

	go a.services.SessionSvc.Run(ctx)
	go a.jobs.Run(ctx)

	a.printf("user hub client (tab %s). Type 'help' for commands.\n", a.services.SessionSvc.TabID())

	scanner := bufio.NewScanner(a.in)
	for {
		a.printf("> ")

		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "quit" || fields[0] == "exit" {
			break
		}

		if err := a.dispatch(ctx, fields[0], fields[1:]); err != nil {
			a.printf("error: %v\n", err)
		}
	}

	return scanner.Err()
}

func (a *App) dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "help":
		a.printHelp()
		return nil
	case "register":
		return a.register(ctx, args)
	case "login":
		return a.login(ctx, args)
	case "admin-login":
		return a.adminLogin(ctx, args)
	case "whoami":
		return a.whoami(ctx)
	case "update":
		return a.update(ctx, args)
	case "upload-image":
		return a.uploadImage(ctx, args)
	case "logout":
		return a.logout(ctx, args)
	case "users":
		return a.listUsers(ctx)
	case "add-user":
		return a.addUser(ctx, args)
	case "update-user":
		return a.updateUser(ctx, args)
	case "delete-user":
		return a.deleteUser(ctx, args)
	default:
		return fmt.Errorf("unknown command %q, type 'help' for the command list", command)
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.New("usage: register <name> <email> <password>")
	}

	session, err := a.services.SessionSvc.Register(ctx, models.RegisterRequest{
		Name:     args[0],
		Email:    args[1],
		Password: args[2],
	})
	if err != nil {
		return err
	}

	a.printf("registered and logged in as %s\n", session.User.Email)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: login <email> <password>")
	}

	session, err := a.services.SessionSvc.Login(ctx, models.LoginRequest{Email: args[0], Password: args[1]})
	if err != nil {
		return err
	}

	a.printf("logged in as %s\n", session.User.Email)
	return nil
}

func (a *App) adminLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: admin-login <email> <password>")
	}

	session, err := a.services.SessionSvc.AdminLogin(ctx, models.LoginRequest{Email: args[0], Password: args[1]})
	if err != nil {
		return err
	}

	a.printf("admin session opened for %s\n", session.User.Email)
	return nil
}

// whoami re-fetches the profile from the server rather than echoing the
// cached identity, so a deleted account surfaces immediately.
func (a *App) whoami(ctx context.Context) error {
	user, err := a.services.SessionSvc.RefreshProfile(ctx)
	if err != nil {
		return err
	}

	a.printUser(user)
	return nil
}

func (a *App) update(ctx context.Context, args []string) error {
	req, err := parseUpdateFields(args)
	if err != nil {
		return err
	}

	user, err := a.services.SessionSvc.UpdateData(ctx, req)
	if err != nil {
		return err
	}

	a.printf("profile updated\n")
	a.printUser(user)
	return nil
}

func (a *App) uploadImage(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: upload-image <path>")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read image file: %w", err)
	}

	user, err := a.services.SessionSvc.UploadProfileImage(ctx, filepath.Base(args[0]), data)
	if err != nil {
		return err
	}

	a.printf("profile image updated: %s\n", user.ProfileImageURL)
	return nil
}

func (a *App) logout(ctx context.Context, args []string) error {
	class := models.SessionClassUser
	if len(args) == 1 && args[0] == "admin" {
		class = models.SessionClassAdmin
	}

	if err := a.services.SessionSvc.Logout(ctx, class); err != nil {
		return err
	}

	a.printf("%s session closed\n", class)
	return nil
}

func (a *App) listUsers(ctx context.Context) error {
	users, err := a.services.UsersService.ListUsers(ctx)
	if err != nil {
		return err
	}

	a.printf("%d user(s):\n", len(users))
	for _, user := range users {
		a.printUser(user)
	}
	return nil
}

func (a *App) addUser(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.New("usage: add-user <name> <email> <password>")
	}

	user, err := a.services.UsersService.AddUser(ctx, models.RegisterRequest{
		Name:     args[0],
		Email:    args[1],
		Password: args[2],
	})
	if err != nil {
		return err
	}

	a.printf("user added\n")
	a.printUser(user)
	return nil
}

func (a *App) updateUser(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: update-user <id> name=<value> email=<value>")
	}

	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q", args[0])
	}

	req, err := parseUpdateFields(args[1:])
	if err != nil {
		return err
	}
	req.UserID = userID

	user, err := a.services.UsersService.UpdateUser(ctx, req)
	if err != nil {
		return err
	}

	a.printf("user updated\n")
	a.printUser(user)
	return nil
}

func (a *App) deleteUser(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: delete-user <id>")
	}

	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q", args[0])
	}

	if err := a.services.UsersService.DeleteUser(ctx, models.DeleteUserRequest{UserID: userID}); err != nil {
		return err
	}

	a.printf("user %d deleted\n", userID)
	return nil
}

// parseUpdateFields turns name=<value> and email=<value> arguments into an
// update request. At least one field must be present.
func parseUpdateFields(args []string) (models.UpdateDataRequest, error) {
	var req models.UpdateDataRequest

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || value == "" {
			return models.UpdateDataRequest{}, fmt.Errorf("expected name=<value> or email=<value>, got %q", arg)
		}

		switch key {
		case "name":
			name := value
			req.Name = &name
		case "email":
			email := value
			req.Email = &email
		default:
			return models.UpdateDataRequest{}, fmt.Errorf("unknown field %q", key)
		}
	}

	if req.Name == nil && req.Email == nil {
		return models.UpdateDataRequest{}, errors.New("nothing to update")
	}

	return req, nil
}

func (a *App) printUser(user models.User) {
	role := "user"
	if user.IsAdmin {
		role = "admin"
	}

	a.printf("  #%d %s <%s> [%s]", user.UserID, user.Name, user.Email, role)
	if user.ProfileImageURL != "" {
		a.printf(" image=%s", user.ProfileImageURL)
	}
	a.printf("\n")
}

func (a *App) printHelp() {
	a.printf(`commands:
  register <name> <email> <password>      create an account and log in
  login <email> <password>                open the user session
  admin-login <email> <password>          open the admin session
  whoami                                  show the current profile (server-checked)
  update name=<v> email=<v>               change own name and/or email
  upload-image <path>                     upload a new profile image
  logout [admin]                          close the user (or admin) session
  users                                   list all users (admin)
  add-user <name> <email> <password>      create a user (admin)
  update-user <id> name=<v> email=<v>     change a user (admin)
  delete-user <id>                        delete a user (admin)
  quit                                    exit
`)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
