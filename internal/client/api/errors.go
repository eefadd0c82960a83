package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/roadtripai/tripsync/pkg/api"
)

// Error представляет HTTP ошибку сервера с кодом статуса.
// Позволяет вызывающему коду различать классы ошибок через errors.As.
type Error struct {
	Message    string
	StatusCode int
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Transient сообщает, относится ли статус к транзиентным ошибкам,
// которые имеет смысл повторять с backoff
func (e *Error) Transient() bool {
	switch e.StatusCode {
	case http.StatusRequestTimeout, // 408
		http.StatusTooManyRequests,     // 429
		http.StatusInternalServerError, // 500
		http.StatusBadGateway,          // 502
		http.StatusServiceUnavailable,  // 503
		http.StatusGatewayTimeout:      // 504
		return true
	}
	return false
}

// ConflictError представляет отклонение мутации по версии (HTTP 409).
// Несет текущее серверное представление документа для server-wins
// и manual разрешения.
type ConflictError struct {
	Document api.Document
	Message  string
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	if e.Message == "" {
		return "version conflict"
	}
	return fmt.Sprintf("version conflict: %s", e.Message)
}

// IsConflict проверяет, является ли ошибка конфликтом версий
func IsConflict(err error) (*ConflictError, bool) {
	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr, true
	}
	return nil, false
}
