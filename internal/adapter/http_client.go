package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-hub/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig carries the settings of the HTTP server adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs a [ServerAdapter] speaking the server's
// REST API over resty.
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// authedRequest builds a request carrying the stored bearer token.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.Token())
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/user/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("register decode response: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/user/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("login decode response: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) AdminLogin(ctx context.Context, req models.LoginRequest) (models.AdminAuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/admin/login")
	if err != nil {
		return models.AdminAuthResponse{}, fmt.Errorf("admin login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AdminAuthResponse{}, err
	}

	var auth models.AdminAuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AdminAuthResponse{}, fmt.Errorf("admin login decode response: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/user/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var envelope models.UserResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.User{}, fmt.Errorf("profile decode response: %w", err)
	}

	return envelope.User, nil
}

func (h *httpServerAdapter) UpdateData(ctx context.Context, req models.UpdateDataRequest) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/user/update-data/" + strconv.FormatInt(req.UserID, 10))
	if err != nil {
		return models.User{}, fmt.Errorf("update data request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var envelope models.UserResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.User{}, fmt.Errorf("update data decode response: %w", err)
	}

	return envelope.User, nil
}

func (h *httpServerAdapter) UploadProfileImage(ctx context.Context, filename string, data []byte) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetFileReader("profileImage", filename, bytes.NewReader(data)).
		Post("/api/user/update-profile")
	if err != nil {
		return models.User{}, fmt.Errorf("upload profile image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var envelope models.UserResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.User{}, fmt.Errorf("upload profile image decode response: %w", err)
	}

	return envelope.User, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/admin/dataFetching")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope models.UsersResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("list users decode response: %w", err)
	}

	return envelope.Data, nil
}

func (h *httpServerAdapter) AddUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/admin/addUser")
	if err != nil {
		return models.User{}, fmt.Errorf("add user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var envelope models.UserResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.User{}, fmt.Errorf("add user decode response: %w", err)
	}

	return envelope.User, nil
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, req models.UpdateDataRequest) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/admin/updateUser")
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var envelope models.UserResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.User{}, fmt.Errorf("update user decode response: %w", err)
	}

	return envelope.User, nil
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, req models.DeleteUserRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Delete("/api/admin/deleteUser")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}
