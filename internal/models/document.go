package models

import (
	"encoding/json"
	"time"
)

// Document представляет серверную копию документа коллекции.
// Version монотонно увеличивается сервером при каждой записи и служит
// базой для optimistic concurrency проверки.
type Document struct {
	UpdatedAt  time.Time       `json:"updated_at"`
	DeviceID   string          `json:"device_id"`  // DeviceID устройство-владелец документа
	Collection string          `json:"collection"` // Collection имя коллекции
	ID         string          `json:"id"`         // ID идентификатор документа в коллекции
	OriginID   string          `json:"origin_id"`  // OriginID устройство, породившее последнюю запись
	Payload    json.RawMessage `json:"payload"`    // Payload JSON-сериализованные данные
	Version    int64           `json:"version"`    // Version серверный счетчик версий
	Timestamp  int64           `json:"timestamp"`  // Timestamp клиентское время мутации (unix ms)
}

// Clone создает глубокую копию документа
func (d *Document) Clone() *Document {
	clone := *d
	if d.Payload != nil {
		clone.Payload = make(json.RawMessage, len(d.Payload))
		copy(clone.Payload, d.Payload)
	}
	return &clone
}
