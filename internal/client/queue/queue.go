// Package queue реализует очередь отложенных мутаций.
// Очередь живет в памяти и после каждой мутации сохраняется целиком
// в Local Store, поэтому переживает перезапуски процесса.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/roadtripai/tripsync/internal/client/storage"
	"github.com/roadtripai/tripsync/internal/models"
)

// ErrOperationNotFound возвращается когда операции нет в очереди
var ErrOperationNotFound = errors.New("operation not found in queue")

// Queue упорядоченная очередь операций синхронизации.
// Порядок строго FIFO: операции отправляются в порядке постановки,
// что сохраняет причинность мутаций одного документа.
type Queue struct {
	store  storage.QueueStorage
	logger *slog.Logger

	mu  sync.Mutex
	ops []*models.SyncOperation
}

// New создает очередь поверх QueueStorage.
// Перед использованием нужно вызвать Load для восстановления
// сохраненного состояния.
func New(store storage.QueueStorage, logger *slog.Logger) *Queue {
	return &Queue{
		store:  store,
		logger: logger,
	}
}

// Load восстанавливает очередь из Local Store
func (q *Queue) Load(ctx context.Context) error {
	ops, err := q.store.LoadQueue(ctx)
	if err != nil {
		return fmt.Errorf("failed to load sync queue: %w", err)
	}

	q.mu.Lock()
	q.ops = ops
	q.mu.Unlock()

	q.logger.Debug("Sync queue loaded", "operations", len(ops))
	return nil
}

// Enqueue добавляет операцию в хвост очереди и сохраняет очередь.
// Пустые ID, Status и Timestamp заполняются автоматически.
func (q *Queue) Enqueue(ctx context.Context, op *models.SyncOperation) error {
	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	if op.Status == "" {
		op.Status = models.StatusPending
	}
	if op.Timestamp == 0 {
		op.Timestamp = time.Now().UnixMilli()
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.ops = append(q.ops, op.Clone())

	if err := q.persistLocked(ctx); err != nil {
		// Откатываем in-memory состояние, чтобы не потерять инвариант
		// "очередь в памяти совпадает с очередью на диске"
		q.ops = q.ops[:len(q.ops)-1]
		return err
	}

	q.logger.Debug("Operation enqueued",
		"operation_id", op.ID,
		"type", op.Type,
		"collection", op.Collection,
		"document_id", op.DocumentID)

	return nil
}

// NextAttemptable возвращает копию первой операции, которую можно
// отправить на текущем тике (pending или failed). Конфликтная операция
// ждет явного разрешения и паркует свой документ целиком: более молодые
// мутации того же документа не отправляются раньше нее.
func (q *Queue) NextAttemptable() (*models.SyncOperation, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	parked := make(map[string]struct{})
	for _, op := range q.ops {
		key := op.Collection + "/" + op.DocumentID
		if !op.Attemptable() {
			parked[key] = struct{}{}
			continue
		}
		if _, blocked := parked[key]; blocked {
			continue
		}
		return op.Clone(), true
	}
	return nil, false
}

// Get возвращает копию операции по идентификатору
func (q *Queue) Get(opID string) (*models.SyncOperation, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, op := range q.ops {
		if op.ID == opID {
			return op.Clone(), nil
		}
	}
	return nil, ErrOperationNotFound
}

// Remove удаляет операцию из очереди (успешная отправка или
// разрешенный конфликт) и сохраняет очередь
func (q *Queue) Remove(ctx context.Context, opID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	idx := -1
	for i, op := range q.ops {
		if op.ID == opID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrOperationNotFound
	}

	removed := q.ops[idx]
	q.ops = append(q.ops[:idx], q.ops[idx+1:]...)

	if err := q.persistLocked(ctx); err != nil {
		// Возвращаем операцию на прежнее место
		q.ops = append(q.ops[:idx], append([]*models.SyncOperation{removed}, q.ops[idx:]...)...)
		return err
	}

	return nil
}

// MarkFailed помечает операцию как неуспешную. Операция остается в
// очереди и будет повторена на следующем тике синхронизации.
func (q *Queue) MarkFailed(ctx context.Context, opID string) error {
	return q.setStatus(ctx, opID, models.StatusFailed)
}

// MarkConflict помечает операцию как конфликтную. Такая операция не
// отправляется автоматически и ждет разрешения конфликта.
func (q *Queue) MarkConflict(ctx context.Context, opID string) error {
	return q.setStatus(ctx, opID, models.StatusConflict)
}

// MarkPending возвращает операцию в состояние pending
// (после client-wins или manual разрешения с повторной отправкой)
func (q *Queue) MarkPending(ctx context.Context, opID string) error {
	return q.setStatus(ctx, opID, models.StatusPending)
}

func (q *Queue) setStatus(ctx context.Context, opID string, status models.OpStatus) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, op := range q.ops {
		if op.ID == opID {
			prev := op.Status
			op.Status = status
			if err := q.persistLocked(ctx); err != nil {
				op.Status = prev
				return err
			}
			return nil
		}
	}
	return ErrOperationNotFound
}

// ForceRetry возвращает операцию в состояние pending с флагом
// принудительной перезаписи. Используется при client-wins и manual
// разрешении конфликтов: повторная отправка обходит проверку версии.
func (q *Queue) ForceRetry(ctx context.Context, opID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, op := range q.ops {
		if op.ID == opID {
			prevStatus, prevForce := op.Status, op.Force
			op.Status = models.StatusPending
			op.Force = true
			if err := q.persistLocked(ctx); err != nil {
				op.Status, op.Force = prevStatus, prevForce
				return err
			}
			return nil
		}
	}
	return ErrOperationNotFound
}

// Rebase обновляет базовую версию оставшихся операций над документом
// после подтвержденной сервером мутации. Офлайн-правки одного документа
// ставятся в очередь с одной и той же базовой версией; без перебазирования
// вторая правка самоконфликтует с первой после ее подтверждения.
func (q *Queue) Rebase(ctx context.Context, collection, documentID string, version int64) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	prev := make(map[string]int64)
	for _, op := range q.ops {
		if op.Collection == collection && op.DocumentID == documentID && op.Version != version {
			prev[op.ID] = op.Version
			op.Version = version
		}
	}
	if len(prev) == 0 {
		return nil
	}

	if err := q.persistLocked(ctx); err != nil {
		for _, op := range q.ops {
			if v, ok := prev[op.ID]; ok {
				op.Version = v
			}
		}
		return err
	}

	q.logger.Debug("Queued operations rebased",
		"collection", collection,
		"document_id", documentID,
		"version", version,
		"operations", len(prev))

	return nil
}

// SetPayload заменяет payload операции (manual разрешение конфликта)
func (q *Queue) SetPayload(ctx context.Context, opID string, payload []byte) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, op := range q.ops {
		if op.ID == opID {
			prev := op.Payload
			op.Payload = append([]byte(nil), payload...)
			if err := q.persistLocked(ctx); err != nil {
				op.Payload = prev
				return err
			}
			return nil
		}
	}
	return ErrOperationNotFound
}

// Snapshot возвращает копию всех операций в FIFO порядке
func (q *Queue) Snapshot() []*models.SyncOperation {
	q.mu.Lock()
	defer q.mu.Unlock()

	ops := make([]*models.SyncOperation, 0, len(q.ops))
	for _, op := range q.ops {
		ops = append(ops, op.Clone())
	}
	return ops
}

// PendingCount возвращает количество операций, ожидающих отправки
// (pending и failed)
func (q *Queue) PendingCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	count := 0
	for _, op := range q.ops {
		if op.Attemptable() {
			count++
		}
	}
	return count
}

// ConflictCount возвращает количество операций в состоянии conflict
func (q *Queue) ConflictCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	count := 0
	for _, op := range q.ops {
		if op.Status == models.StatusConflict {
			count++
		}
	}
	return count
}

// Len возвращает общий размер очереди
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.ops)
}

// persistLocked сохраняет очередь целиком; вызывается под mutex
func (q *Queue) persistLocked(ctx context.Context) error {
	if err := q.store.PersistQueue(ctx, q.ops); err != nil {
		return fmt.Errorf("failed to persist sync queue: %w", err)
	}
	return nil
}
