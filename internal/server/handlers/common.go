// Package handlers реализует HTTP обработчики сервера синхронизации.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/roadtripai/tripsync/pkg/api"
)

// contextKey тип для ключей контекста
type contextKey string

const (
	// DeviceIDKey ключ для хранения device_id в контексте
	DeviceIDKey contextKey = "device_id"
	// DeviceNameKey ключ для хранения device_name в контексте
	DeviceNameKey contextKey = "device_name"
)

// GetDeviceID извлекает device_id из контекста запроса
func GetDeviceID(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(DeviceIDKey).(string)
	return deviceID, ok
}

// GetDeviceName извлекает device_name из контекста запроса
func GetDeviceName(ctx context.Context) (string, bool) {
	deviceName, ok := ctx.Value(DeviceNameKey).(string)
	return deviceName, ok
}

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   message,
		Message: http.StatusText(statusCode),
	}
	sendJSON(logger, w, resp, statusCode)
}
