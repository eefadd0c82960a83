package models

import "fmt"

// ConflictPolicy политика разрешения конфликтов версий.
type ConflictPolicy string

// Поддерживаемые политики
const (
	PolicyServerWins ConflictPolicy = "server-wins"
	PolicyClientWins ConflictPolicy = "client-wins"
	PolicyManual     ConflictPolicy = "manual"
)

// ParseConflictPolicy валидирует строковое значение политики.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch ConflictPolicy(s) {
	case PolicyServerWins, PolicyClientWins, PolicyManual:
		return ConflictPolicy(s), nil
	}
	return "", fmt.Errorf("unknown conflict resolution policy: %q", s)
}

// SyncMetadata представляет процессное состояние синхронизации.
// Инициализируется при первом запуске, сохраняется в Local Store
// и переживает перезапуски процесса.
type SyncMetadata struct {
	DeviceID          string         `json:"device_id"`           // DeviceID идентификатор установки (постоянный)
	ConflictPolicy    ConflictPolicy `json:"conflict_resolution"` // ConflictPolicy настроенная политика
	LastSyncTimestamp int64          `json:"last_sync_timestamp"` // LastSyncTimestamp время последнего успешного цикла (unix ms)
	Version           int64          `json:"version"`             // Version монотонный счетчик успешных round-trip
}

// Clone возвращает копию метаданных
func (m *SyncMetadata) Clone() *SyncMetadata {
	if m == nil {
		return nil
	}
	clone := *m
	return &clone
}

// ConflictRecord представляет сохраненный снимок конфликта для manual режима.
// Создается, когда сервер отклонил мутацию по версии, и уничтожается
// после того как приложение передало разрешенный payload.
// Инвариант: не более одного ConflictRecord на operation id.
type ConflictRecord struct {
	OperationID   string `json:"operation_id"`
	ServerVersion []byte `json:"server_version"` // серверное представление документа (JSON)
	ClientVersion []byte `json:"client_version"` // локальная мутация на момент конфликта (JSON)
}
