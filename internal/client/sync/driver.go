// Package sync реализует драйвер синхронизации: периодический
// drain-цикл, который отправляет накопленные операции на сервер
// в FIFO порядке.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	httpClient "github.com/roadtripai/tripsync/internal/client/api"
	"github.com/roadtripai/tripsync/internal/client/queue"
	"github.com/roadtripai/tripsync/internal/client/resolve"
	"github.com/roadtripai/tripsync/internal/client/storage"
	"github.com/roadtripai/tripsync/internal/models"
	"github.com/roadtripai/tripsync/pkg/api"
)

// Ошибки драйвера
var (
	// ErrSyncInProgress возвращается при повторном входе в drain-цикл.
	// Перекрывающийся вызов не выполняет работу.
	ErrSyncInProgress = errors.New("sync cycle already in progress")

	// ErrOffline возвращается когда сервер недоступен.
	// Очередь остается нетронутой до следующего тика.
	ErrOffline = errors.New("sync server unreachable")

	// ErrNotAuthenticated возвращается когда устройство не залогинено
	ErrNotAuthenticated = errors.New("device is not authenticated")
)

// DefaultInterval интервал между фоновыми drain-циклами
const DefaultInterval = 5 * time.Minute

// Result содержит итог одного drain-цикла
type Result struct {
	Completed int // количество успешно отправленных операций
	Failed    int // количество операций, завершившихся ошибкой
	Conflicts int // количество конфликтов версий
	Remaining int // размер очереди после цикла
}

// Driver управляет фоновой синхронизацией.
// Один Driver владеет одним drain-циклом: повторный вход блокируется
// атомарным флагом, поэтому таймер и ручной запуск не пересекаются.
type Driver struct {
	apiClient httpClient.ClientAPI
	queue     *queue.Queue
	records   storage.RecordStorage
	metadata  storage.MetadataStorage
	auth      storage.AuthStorage
	resolver  *resolve.Resolver
	logger    *slog.Logger

	interval time.Duration
	policy   models.ConflictPolicy

	running atomic.Bool
	kick    chan struct{}
}

// Options настройки драйвера
type Options struct {
	// Interval период фоновых drain-циклов (0 = DefaultInterval)
	Interval time.Duration

	// Policy политика разрешения конфликтов (пустая = server-wins)
	Policy models.ConflictPolicy
}

// NewDriver создает драйвер синхронизации
func NewDriver(
	apiClient httpClient.ClientAPI,
	q *queue.Queue,
	records storage.RecordStorage,
	metadata storage.MetadataStorage,
	auth storage.AuthStorage,
	resolver *resolve.Resolver,
	logger *slog.Logger,
	opts Options,
) *Driver {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	policy := opts.Policy
	if policy == "" {
		policy = models.PolicyServerWins
	}

	return &Driver{
		apiClient: apiClient,
		queue:     q,
		records:   records,
		metadata:  metadata,
		auth:      auth,
		resolver:  resolver,
		logger:    logger,
		interval:  interval,
		policy:    policy,
		kick:      make(chan struct{}, 1),
	}
}

// Notify сигнализирует драйверу, что появилась работа (новая операция
// в очереди или восстановилась связность). Неблокирующий вызов.
func (d *Driver) Notify() {
	select {
	case d.kick <- struct{}{}:
	default:
	}
}

// Run запускает фоновый цикл синхронизации до отмены контекста.
// Каждый тик таймера и каждый Notify запускают один drain-цикл.
func (d *Driver) Run(ctx context.Context) error {
	d.logger.Info("Sync driver started", "interval", d.interval)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("Sync driver stopped")
			return ctx.Err()
		case <-ticker.C:
		case <-d.kick:
		}

		result, err := d.SyncNow(ctx)
		switch {
		case err == nil:
			if result.Completed > 0 || result.Failed > 0 || result.Conflicts > 0 {
				d.logger.Info("Sync cycle finished",
					"completed", result.Completed,
					"failed", result.Failed,
					"conflicts", result.Conflicts,
					"remaining", result.Remaining)
			}
		case errors.Is(err, ErrSyncInProgress):
			// Перекрывающийся запуск: предыдущий цикл еще работает
		case errors.Is(err, ErrOffline), errors.Is(err, ErrNotAuthenticated):
			d.logger.Debug("Sync cycle skipped", "reason", err)
		case errors.Is(err, context.Canceled):
			return err
		default:
			d.logger.Error("Sync cycle failed", "error", err)
		}
	}
}

// SyncNow выполняет один drain-цикл: отправляет операции из очереди
// в FIFO порядке, пока очередь не опустеет или не случится ошибка.
// Повторный вход во время работающего цикла возвращает ErrSyncInProgress.
func (d *Driver) SyncNow(ctx context.Context) (*Result, error) {
	if !d.running.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer d.running.Store(false)

	result := &Result{Remaining: d.queue.Len()}

	if d.queue.PendingCount() == 0 {
		return result, nil
	}

	authData, err := d.auth.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to load auth data: %w", err)
	}

	// Дешевая проба связности перед отправкой очереди
	if err := d.apiClient.Ping(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOffline, err)
	}

	policy := d.currentPolicy(ctx)

	d.logger.Debug("Draining sync queue",
		"pending", d.queue.PendingCount(),
		"policy", policy)

drain:
	for {
		op, ok := d.queue.NextAttemptable()
		if !ok {
			break
		}

		err := d.dispatch(ctx, authData.AccessToken, op)
		switch {
		case err == nil:
			if removeErr := d.queue.Remove(ctx, op.ID); removeErr != nil {
				return nil, fmt.Errorf("failed to remove completed operation: %w", removeErr)
			}
			result.Completed++

		case isConflict(err):
			conflictErr, _ := httpClient.IsConflict(err)
			if resolveErr := d.resolver.Resolve(ctx, op, &conflictErr.Document, policy); resolveErr != nil {
				return nil, fmt.Errorf("failed to resolve conflict: %w", resolveErr)
			}
			result.Conflicts++

		default:
			// Любая другая ошибка (включая постоянные 4xx) оставляет
			// операцию в очереди: она будет повторена на следующем тике
			d.logger.Warn("Operation failed, will retry next cycle",
				"operation_id", op.ID,
				"type", op.Type,
				"error", err)
			if markErr := d.queue.MarkFailed(ctx, op.ID); markErr != nil {
				return nil, fmt.Errorf("failed to mark operation as failed: %w", markErr)
			}
			result.Failed++
			break drain
		}
	}

	result.Remaining = d.queue.Len()

	if result.Completed > 0 && result.Failed == 0 {
		d.advanceMetadata(ctx)
	}

	return result, nil
}

// dispatch отправляет одну операцию на сервер и применяет результат
// к локальному хранилищу
func (d *Driver) dispatch(ctx context.Context, accessToken string, op *models.SyncOperation) error {
	doc := &api.Document{
		Collection: op.Collection,
		ID:         op.DocumentID,
		OriginID:   op.OriginID,
		Payload:    op.Payload,
		Version:    op.Version,
		Timestamp:  op.Timestamp,
	}

	switch op.Type {
	case models.OpCreate:
		// Конфликтный create после разрешения повторяется как
		// принудительное обновление: документ на сервере уже существует
		if op.Force {
			updated, err := d.apiClient.UpdateDocument(ctx, accessToken, doc, true)
			if err != nil {
				return err
			}
			return d.applyServerDocument(ctx, updated)
		}

		created, err := d.apiClient.CreateDocument(ctx, accessToken, doc)
		if err != nil {
			return err
		}
		return d.applyServerDocument(ctx, created)

	case models.OpUpdate:
		updated, err := d.apiClient.UpdateDocument(ctx, accessToken, doc, op.Force)
		if err != nil {
			return err
		}
		return d.applyServerDocument(ctx, updated)

	case models.OpDelete:
		if err := d.apiClient.DeleteDocument(ctx, accessToken, op.Collection, op.DocumentID); err != nil {
			return err
		}
		if err := d.records.DeleteRecord(ctx, op.Collection, op.DocumentID); err != nil {
			return fmt.Errorf("failed to delete local record: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown operation type: %q", op.Type)
	}
}

// applyServerDocument записывает подтвержденную сервером версию
// документа в локальное хранилище и перебазирует оставшиеся в очереди
// операции над этим документом
func (d *Driver) applyServerDocument(ctx context.Context, doc *api.Document) error {
	record := &models.Record{
		Collection: doc.Collection,
		ID:         doc.ID,
		Payload:    doc.Payload,
		Version:    doc.Version,
		UpdatedAt:  time.Now(),
	}
	if err := d.records.PutRecord(ctx, record); err != nil {
		return fmt.Errorf("failed to store confirmed record: %w", err)
	}

	// Более молодые операции над документом ставились в очередь до того,
	// как сервер подтвердил новую версию; без перебазирования они
	// самоконфликтуют с только что отправленной мутацией
	if err := d.queue.Rebase(ctx, doc.Collection, doc.ID, doc.Version); err != nil {
		return fmt.Errorf("failed to rebase queued operations: %w", err)
	}

	return nil
}

// currentPolicy возвращает политику из сохраненных метаданных,
// с откатом на настройку драйвера
func (d *Driver) currentPolicy(ctx context.Context) models.ConflictPolicy {
	meta, err := d.metadata.LoadMetadata(ctx)
	if err != nil || meta == nil || meta.ConflictPolicy == "" {
		return d.policy
	}
	return meta.ConflictPolicy
}

// advanceMetadata фиксирует успешный цикл: обновляет отметку времени
// и монотонный счетчик синхронизаций
func (d *Driver) advanceMetadata(ctx context.Context) {
	meta, err := d.metadata.LoadMetadata(ctx)
	if err != nil || meta == nil {
		meta = &models.SyncMetadata{ConflictPolicy: d.policy}
	}

	meta.LastSyncTimestamp = time.Now().UnixMilli()
	meta.Version++

	if err := d.metadata.PersistMetadata(ctx, meta); err != nil {
		// Ошибка сохранения метаданных не откатывает успешный цикл
		d.logger.Warn("Failed to persist sync metadata", "error", err)
	}
}

func isConflict(err error) bool {
	_, ok := httpClient.IsConflict(err)
	return ok
}
