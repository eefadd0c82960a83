package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/roadtripai/tripsync/pkg/api"
)

// Параметры retry политики по умолчанию
const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 3
	baseRetryDelay    = 1 * time.Second
	maxRetryDelay     = 10 * time.Second
)

// Client представляет HTTP клиент для взаимодействия с сервером синхронизации.
// Транзиентные ошибки (408, 429, 5xx, сетевые) повторяются с экспоненциальным
// backoff; 409 и прочие 4xx возвращаются сразу без повторов.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxRetries int
}

// Options настройки клиента
type Options struct {
	Timeout    time.Duration // таймаут одного HTTP запроса (0 = DefaultTimeout)
	MaxRetries int           // общее количество попыток, включая первую (0 = DefaultMaxRetries)
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	return &Client{
		baseURL:    baseURL,
		maxRetries: maxRetries,
		httpClient: &http.Client{
			Timeout: timeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// RegisterDevice регистрирует новое устройство
func (c *Client) RegisterDevice(ctx context.Context, req api.RegisterDeviceRequest) (*api.RegisterDeviceResponse, error) {
	var resp api.RegisterDeviceResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/devices/register", "", nil, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register device request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию устройства
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/devices/login", "", nil, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// CreateDocument создает документ в коллекции
func (c *Client) CreateDocument(ctx context.Context, accessToken string, doc *api.Document) (*api.Document, error) {
	var resp api.Document
	path := fmt.Sprintf("/api/v1/%s", doc.Collection)
	err := c.doRequest(ctx, http.MethodPost, path, accessToken, nil, doc, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateDocument обновляет документ. При force=true сервер пропускает
// проверку версии (client-wins / manual разрешение конфликтов).
func (c *Client) UpdateDocument(ctx context.Context, accessToken string, doc *api.Document, force bool) (*api.Document, error) {
	var resp api.Document
	path := fmt.Sprintf("/api/v1/%s/%s", doc.Collection, doc.ID)

	var headers map[string]string
	if force {
		headers = map[string]string{api.HeaderForceUpdate: "true"}
	}

	err := c.doRequest(ctx, http.MethodPut, path, accessToken, headers, doc, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteDocument удаляет документ; идемпотентно
func (c *Client) DeleteDocument(ctx context.Context, accessToken, collection, id string) error {
	path := fmt.Sprintf("/api/v1/%s/%s", collection, id)
	return c.doRequest(ctx, http.MethodDelete, path, accessToken, nil, nil, nil)
}

// GetDocument возвращает текущее серверное представление документа
func (c *Client) GetDocument(ctx context.Context, accessToken, collection, id string) (*api.Document, error) {
	var resp api.Document
	path := fmt.Sprintf("/api/v1/%s/%s", collection, id)
	err := c.doRequest(ctx, http.MethodGet, path, accessToken, nil, nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Ping проверяет доступность сервера. Выполняется без retry:
// это дешевая проба связности, отрицательный ответ означает offline.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return &Error{StatusCode: resp.StatusCode, Message: "health check failed"}
	}

	return nil
}

// doRequest выполняет HTTP запрос с retry политикой.
// Каждая попытка строит запрос заново, чтобы body мог быть перечитан.
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, headers map[string]string, body, result interface{}) error {
	url := c.baseURL + path

	var jsonData []byte
	if body != nil {
		var err error
		jsonData, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	backoff := retry.NewExponential(baseRetryDelay)
	backoff = retry.WithCappedDuration(maxRetryDelay, backoff)
	// go-retry считает повторы после первой попытки, поэтому всего
	// выполняется не больше maxRetries запросов
	backoff = retry.WithMaxRetries(uint64(c.maxRetries-1), backoff)

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		var bodyReader io.Reader
		if jsonData != nil {
			bodyReader = bytes.NewReader(jsonData)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		if jsonData != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if accessToken != "" {
			req.Header.Set("Authorization", "Bearer "+accessToken)
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// Сетевые ошибки и таймауты считаем транзиентными
			return retry.RetryableError(fmt.Errorf("request failed: %w", err))
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("failed to read response body: %w", err))
		}

		// Конфликт версий: возвращаем сразу с серверным документом
		if resp.StatusCode == http.StatusConflict {
			var conflictResp api.ConflictResponse
			if err := json.Unmarshal(respBody, &conflictResp); err != nil {
				return &ConflictError{Message: string(respBody)}
			}
			return &ConflictError{Document: conflictResp.Document, Message: conflictResp.Error}
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			apiErr := &Error{StatusCode: resp.StatusCode}
			var errResp api.ErrorResponse
			if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
				apiErr.Message = errResp.Error
			} else {
				apiErr.Message = string(respBody)
			}

			if apiErr.Transient() {
				return retry.RetryableError(apiErr)
			}
			return apiErr
		}

		// Декодируем успешный ответ
		if result != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, result); err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}
		}

		return nil
	})
}
