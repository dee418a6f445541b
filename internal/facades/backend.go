package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-auth-web/internal/logger"
	"github.com/sbilibin2017/gw-auth-web/internal/models"
)

// maxErrorBody bounds how much of a failed response is kept for diagnostics.
const maxErrorBody = 64 << 10

// BackendHTTPFacade calls the remote authentication backend over HTTP/JSON.
type BackendHTTPFacade struct {
	client     *http.Client
	baseURL    string
	loginPath  string
	signupPath string
}

// NewBackendHTTPFacade creates a facade for the backend at baseURL.
func NewBackendHTTPFacade(client *http.Client, baseURL, loginPath, signupPath string) *BackendHTTPFacade {
	if client == nil {
		client = http.DefaultClient
	}
	return &BackendHTTPFacade{
		client:     client,
		baseURL:    strings.TrimRight(baseURL, "/"),
		loginPath:  loginPath,
		signupPath: signupPath,
	}
}

// EmployeeLogin posts the credentials to the login endpoint.
func (f *BackendHTTPFacade) EmployeeLogin(ctx context.Context, creds models.Credentials) (*models.BackendResponse, error) {
	return f.post(ctx, f.loginPath, creds)
}

// SignupUser posts the registration form to the signup endpoint.
func (f *BackendHTTPFacade) SignupUser(ctx context.Context, req models.SignupRequest) (*models.BackendResponse, error) {
	return f.post(ctx, f.signupPath, req)
}

func (f *BackendHTTPFacade) post(ctx context.Context, path string, payload any) (*models.BackendResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := f.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("backend request failed", "url", url, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		berr := &models.BackendError{StatusCode: resp.StatusCode, Body: string(raw)}
		var envelope models.BackendResponse
		if json.Unmarshal(raw, &envelope) == nil {
			berr.Response = &envelope
		}
		logger.Log.Infow("backend request rejected", "url", url, "status", resp.StatusCode, "msg", berr.Msg())
		return nil, berr
	}

	var envelope models.BackendResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		logger.Log.Errorw("failed to decode backend response", "url", url, "error", err)
		return nil, fmt.Errorf("decode backend response: %w", err)
	}

	logger.Log.Infow("backend request completed", "url", url, "status", resp.StatusCode, "envelope_status", envelope.Status)
	return &envelope, nil
}
