package models

import "encoding/json"

// OpType тип мутации, записанной в очередь синхронизации.
type OpType string

// Типы операций
const (
	OpCreate OpType = "create"
	OpUpdate OpType = "update"
	OpDelete OpType = "delete"
)

// OpStatus статус операции в очереди синхронизации.
type OpStatus string

// Статусы операций.
// Переходы: pending -> {completed | failed | conflict};
// failed -> pending (повтор на следующем тике);
// conflict -> completed (после разрешения конфликта операция удаляется).
const (
	StatusPending   OpStatus = "pending"
	StatusCompleted OpStatus = "completed"
	StatusFailed    OpStatus = "failed"
	StatusConflict  OpStatus = "conflict"
)

// SyncOperation представляет одну отложенную мутацию (create/update/delete)
// над удаленной коллекцией. Операции обрабатываются в FIFO порядке и
// удаляются из очереди только при терминальном успехе или явном
// разрешении конфликта.
type SyncOperation struct {
	ID         string          `json:"id"`          // ID уникальный идентификатор операции (UUID)
	Type       OpType          `json:"type"`        // Type тип мутации
	Collection string          `json:"collection"`  // Collection имя целевой коллекции
	DocumentID string          `json:"document_id"` // DocumentID идентификатор целевой записи
	OriginID   string          `json:"origin_id"`   // OriginID устройство, породившее операцию
	Payload    json.RawMessage `json:"payload,omitempty"`
	Timestamp  int64           `json:"timestamp"` // Timestamp клиентское время создания (unix ms)
	Version    int64           `json:"version"`   // Version базовая версия клиента на момент enqueue
	Status     OpStatus        `json:"status"`
	Force      bool            `json:"force,omitempty"` // Force отправлять с принудительной перезаписью (после разрешения конфликта)
}

// Attemptable сообщает, может ли операция быть отправлена на сервер
// на текущем тике. Конфликтные операции не повторяются автоматически.
func (op *SyncOperation) Attemptable() bool {
	return op.Status == StatusPending || op.Status == StatusFailed
}

// Clone создает глубокую копию операции
func (op *SyncOperation) Clone() *SyncOperation {
	clone := *op
	if op.Payload != nil {
		clone.Payload = make(json.RawMessage, len(op.Payload))
		copy(clone.Payload, op.Payload)
	}
	return &clone
}
