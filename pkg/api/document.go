package api

import (
	"encoding/json"
	"time"
)

// HeaderForceUpdate заголовок принудительной перезаписи документа.
// Используется при разрешении конфликтов в режимах client-wins и manual:
// сервер пропускает проверку версии и принимает документ как есть.
const HeaderForceUpdate = "X-Force-Update"

// Document представляет wire-формат документа коллекции.
// В запросах поле Version содержит базовую версию клиента (optimistic
// concurrency), в ответах — текущую версию сервера.
type Document struct {
	UpdatedAt  time.Time       `json:"updated_at"`
	Collection string          `json:"collection"`
	ID         string          `json:"id"`
	OriginID   string          `json:"origin_id"`
	Payload    json.RawMessage `json:"payload"`
	Version    int64           `json:"version"`
	Timestamp  int64           `json:"timestamp"` // клиентское время мутации (unix ms)
}

// ConflictResponse представляет тело ответа 409 Conflict.
// Содержит текущее серверное представление документа, чтобы клиент
// мог выполнить server-wins или manual разрешение без отдельного GET.
type ConflictResponse struct {
	Document Document `json:"document"`
	Error    string   `json:"error"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
