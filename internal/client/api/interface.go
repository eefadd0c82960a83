package api

import (
	"context"

	"github.com/roadtripai/tripsync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс Remote API Client для Sync Driver,
// Conflict Resolver и CLI. Реализация выполняет retry с экспоненциальным
// backoff на транзиентных ошибках (408, 429, 5xx).
type ClientAPI interface {
	// RegisterDevice регистрирует новое устройство на сервере
	RegisterDevice(ctx context.Context, req api.RegisterDeviceRequest) (*api.RegisterDeviceResponse, error)

	// Login выполняет аутентификацию устройства
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// CreateDocument создает документ в коллекции (POST /{collection})
	CreateDocument(ctx context.Context, accessToken string, doc *api.Document) (*api.Document, error)

	// UpdateDocument обновляет документ (PUT /{collection}/{id}).
	// При force=true добавляется заголовок принудительной перезаписи
	// и сервер пропускает проверку версии.
	UpdateDocument(ctx context.Context, accessToken string, doc *api.Document, force bool) (*api.Document, error)

	// DeleteDocument удаляет документ (DELETE /{collection}/{id}); идемпотентно
	DeleteDocument(ctx context.Context, accessToken, collection, id string) error

	// GetDocument возвращает текущее серверное представление документа
	GetDocument(ctx context.Context, accessToken, collection, id string) (*api.Document, error)

	// Ping проверяет доступность сервера (GET /health).
	// Используется Sync Driver как проба связности перед drain-циклом.
	Ping(ctx context.Context) error
}
