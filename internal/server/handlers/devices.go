package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/roadtripai/tripsync/internal/crypto"
	"github.com/roadtripai/tripsync/internal/models"
	"github.com/roadtripai/tripsync/internal/server/jwt"
	"github.com/roadtripai/tripsync/internal/server/storage"
	"github.com/roadtripai/tripsync/internal/validation"
	"github.com/roadtripai/tripsync/pkg/api"
)

// DeviceHandler обрабатывает регистрацию и аутентификацию устройств
type DeviceHandler struct {
	logger  *slog.Logger
	devices storage.DeviceStorage
	tokens  *jwt.Service
}

// NewDeviceHandler создает новый handler для устройств
func NewDeviceHandler(logger *slog.Logger, devices storage.DeviceStorage, tokens *jwt.Service) *DeviceHandler {
	return &DeviceHandler{
		logger:  logger,
		devices: devices,
		tokens:  tokens,
	}
}

// Register обрабатывает POST /api/v1/devices/register
// Регистрация нового устройства
func (h *DeviceHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateDeviceName(req.DeviceName); err != nil {
		h.logger.WarnContext(ctx, "invalid device name", slog.String("device_name", req.DeviceName), slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateSecret(req.Secret); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	secretHash, err := crypto.HashSecret(req.Secret)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash secret", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	device := &models.Device{
		ID:         uuid.New().String(),
		Name:       req.DeviceName,
		SecretHash: secretHash,
		CreatedAt:  time.Now(),
	}

	if err := h.devices.CreateDevice(ctx, device); err != nil {
		h.logger.ErrorContext(ctx, "failed to create device", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "device registered",
		slog.String("device_name", req.DeviceName),
		slog.String("device_id", device.ID))

	resp := api.RegisterDeviceResponse{
		DeviceID: device.ID,
		Message:  "Device registered successfully",
	}

	sendJSON(h.logger, w, resp, http.StatusCreated)
}

// Login обрабатывает POST /api/v1/devices/login
// Аутентификация устройства по секрету
func (h *DeviceHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.DeviceID == "" {
		sendError(h.logger, w, "device_id is required", http.StatusBadRequest)
		return
	}
	if req.Secret == "" {
		sendError(h.logger, w, "secret is required", http.StatusBadRequest)
		return
	}

	device, err := h.devices.GetDevice(ctx, req.DeviceID)
	if err != nil {
		if errors.Is(err, storage.ErrDeviceNotFound) {
			h.logger.WarnContext(ctx, "login failed: device not found", slog.String("device_id", req.DeviceID))
			sendError(h.logger, w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get device", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := crypto.VerifySecret(req.Secret, device.SecretHash); err != nil {
		if errors.Is(err, crypto.ErrSecretMismatch) {
			h.logger.WarnContext(ctx, "login failed: invalid secret", slog.String("device_id", req.DeviceID))
			sendError(h.logger, w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to verify secret", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	accessToken, expiresIn, err := h.tokens.GenerateAccessToken(device.ID, device.Name)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Не критичная ошибка, логируем но не прерываем
	if err := h.devices.UpdateLastLogin(ctx, device.ID, time.Now()); err != nil {
		h.logger.WarnContext(ctx, "failed to update last login", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "device logged in", slog.String("device_id", device.ID))

	resp := api.TokenResponse{
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
