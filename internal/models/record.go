package models

import (
	"encoding/json"
	"time"
)

// Record представляет локальную копию доменной записи.
// Содержимым записи владеет Local Store: Sync Driver никогда не мутирует
// запись напрямую, только через интерфейс хранилища.
type Record struct {
	UpdatedAt  time.Time       `json:"updated_at"`
	Collection string          `json:"collection"` // Collection имя коллекции (например, "stories")
	ID         string          `json:"id"`         // ID идентификатор записи в коллекции
	Payload    json.RawMessage `json:"payload"`    // Payload JSON-сериализованные данные записи
	Version    int64           `json:"version"`    // Version последняя подтвержденная сервером версия
}

// Clone создает глубокую копию записи
func (r *Record) Clone() *Record {
	clone := *r
	if r.Payload != nil {
		clone.Payload = make(json.RawMessage, len(r.Payload))
		copy(clone.Payload, r.Payload)
	}
	return &clone
}
