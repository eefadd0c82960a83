// Package auth управляет учетными данными устройства на клиенте:
// регистрация, получение токена и локальная сессия.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	httpClient "github.com/roadtripai/tripsync/internal/client/api"
	"github.com/roadtripai/tripsync/internal/client/storage"
	"github.com/roadtripai/tripsync/internal/validation"
	pkgapi "github.com/roadtripai/tripsync/pkg/api"
)

// ErrNotAuthenticated возвращается когда нет действующей сессии
var ErrNotAuthenticated = errors.New("not authenticated: run login first")

// Service предоставляет функции авторизации устройства
type Service struct {
	apiClient httpClient.ClientAPI
	authStore storage.AuthStorage
}

// NewService создает новый сервис авторизации
func NewService(apiClient httpClient.ClientAPI, authStore storage.AuthStorage) *Service {
	return &Service{
		apiClient: apiClient,
		authStore: authStore,
	}
}

// RegisterResult содержит результат регистрации устройства
type RegisterResult struct {
	DeviceID   string // UUID устройства, выданный сервером
	DeviceName string
}

// Register регистрирует устройство на сервере и сохраняет его
// идентификатор локально. Токен доступа выдается отдельным Login.
func (s *Service) Register(ctx context.Context, deviceName, secret string) (*RegisterResult, error) {
	// Валидация входных данных
	if err := validation.ValidateDeviceName(deviceName); err != nil {
		return nil, fmt.Errorf("invalid device name: %w", err)
	}
	if err := validation.ValidateSecret(secret); err != nil {
		return nil, fmt.Errorf("invalid secret: %w", err)
	}

	resp, err := s.apiClient.RegisterDevice(ctx, pkgapi.RegisterDeviceRequest{
		DeviceName: deviceName,
		Secret:     secret,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	// Сохраняем идентификатор устройства: login сможет использовать его
	// без повторного ввода
	if err := s.authStore.SaveAuth(ctx, &storage.AuthData{
		DeviceID:   resp.DeviceID,
		DeviceName: deviceName,
	}); err != nil {
		return nil, fmt.Errorf("failed to save device id: %w", err)
	}

	return &RegisterResult{
		DeviceID:   resp.DeviceID,
		DeviceName: deviceName,
	}, nil
}

// LoginResult содержит результат авторизации
type LoginResult struct {
	DeviceID    string
	AccessToken string
	ExpiresAt   int64 // unix время истечения токена
}

// Login получает токен доступа для устройства и сохраняет сессию.
// Пустой deviceID означает "использовать сохраненный при регистрации".
func (s *Service) Login(ctx context.Context, deviceID, secret string) (*LoginResult, error) {
	if err := validation.ValidateSecret(secret); err != nil {
		return nil, fmt.Errorf("invalid secret: %w", err)
	}

	deviceName := ""
	if deviceID == "" {
		stored, err := s.authStore.GetAuth(ctx)
		if err != nil {
			if errors.Is(err, storage.ErrAuthNotFound) {
				return nil, errors.New("no registered device found: pass device id or register first")
			}
			return nil, fmt.Errorf("failed to load stored device: %w", err)
		}
		deviceID = stored.DeviceID
		deviceName = stored.DeviceName
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		DeviceID: deviceID,
		Secret:   secret,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	expiresAt := time.Now().Unix() + resp.ExpiresIn
	if err := s.authStore.SaveAuth(ctx, &storage.AuthData{
		DeviceID:    deviceID,
		DeviceName:  deviceName,
		AccessToken: resp.AccessToken,
		ExpiresAt:   expiresAt,
	}); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &LoginResult{
		DeviceID:    deviceID,
		AccessToken: resp.AccessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout удаляет локальную сессию. Сервер не уведомляется:
// токены короткоживущие и протухают сами.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.authStore.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// IsAuthenticated сообщает, есть ли действующая сессия
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	authData, err := s.authStore.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return false, nil
		}
		return false, err
	}

	if authData.AccessToken == "" {
		return false, nil
	}
	if authData.ExpiresAt > 0 && authData.ExpiresAt <= time.Now().Unix() {
		return false, nil
	}
	return true, nil
}

// AccessToken возвращает токен действующей сессии
func (s *Service) AccessToken(ctx context.Context) (string, error) {
	ok, err := s.IsAuthenticated(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNotAuthenticated
	}

	authData, err := s.authStore.GetAuth(ctx)
	if err != nil {
		return "", err
	}
	return authData.AccessToken, nil
}
