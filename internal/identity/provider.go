// Package identity выдает стабильный идентификатор устройства.
// Идентификатор генерируется один раз и сохраняется в метаданных
// синхронизации, чтобы переустановка процесса не меняла originId
// исходящих мутаций.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/roadtripai/tripsync/internal/client/storage"
	"github.com/roadtripai/tripsync/internal/models"
)

//go:generate moq -out provider_mock.go . Provider

// Provider определяет источник идентификатора устройства.
// Sync Driver и data service получают его через DI, а не через
// глобальное состояние.
type Provider interface {
	// DeviceID возвращает стабильный идентификатор текущего устройства
	DeviceID(ctx context.Context) (string, error)
}

// StoredProvider хранит идентификатор в metadata storage.
// Первый вызов DeviceID генерирует UUID и сохраняет его.
type StoredProvider struct {
	metadata storage.MetadataStorage
}

// NewStoredProvider создает провайдер поверх metadata storage
func NewStoredProvider(metadata storage.MetadataStorage) *StoredProvider {
	return &StoredProvider{metadata: metadata}
}

// DeviceID возвращает сохраненный идентификатор, генерируя его при
// первом обращении
func (p *StoredProvider) DeviceID(ctx context.Context) (string, error) {
	meta, err := p.metadata.LoadMetadata(ctx)
	if err != nil && !errors.Is(err, storage.ErrMetadataNotFound) {
		return "", fmt.Errorf("failed to load sync metadata: %w", err)
	}

	if meta == nil {
		meta = &models.SyncMetadata{
			ConflictPolicy: models.PolicyServerWins,
		}
	}

	if meta.DeviceID != "" {
		return meta.DeviceID, nil
	}

	meta.DeviceID = uuid.NewString()
	if err := p.metadata.PersistMetadata(ctx, meta); err != nil {
		return "", fmt.Errorf("failed to persist device id: %w", err)
	}

	return meta.DeviceID, nil
}

// StaticProvider возвращает фиксированный идентификатор.
// Используется в тестах и при явной конфигурации.
type StaticProvider string

// DeviceID возвращает фиксированный идентификатор
func (p StaticProvider) DeviceID(_ context.Context) (string, error) {
	return string(p), nil
}
