package accessservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент для проверки прав пользователей в AccessService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента AccessService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// HasPermission проверяет, выдано ли пользователю право code.
// Неизвестный пользователь трактуется как пользователь без прав
func (c *Client) HasPermission(ctx context.Context, userID int64, code string) (bool, error) {
	endpoint := fmt.Sprintf("%s/internal/users/%d/permissions/%s", c.baseURL, userID, url.PathEscape(code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("HasPermission: AccessService unavailable for user_id=%d, permission=%s: %v", userID, code, err)
		return false, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		c.log.Warn("HasPermission: user_id=%d not found in AccessService", userID)
		return false, nil
	case http.StatusBadRequest:
		return false, fmt.Errorf("%w: invalid user ID or permission code", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result PermissionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return result.Allowed, nil
}
