// Package resolve реализует разрешение конфликтов версий.
// Конфликт возникает, когда сервер отклоняет мутацию из-за расхождения
// версий. Дальнейшее поведение определяет настроенная политика:
// server-wins, client-wins или manual.
package resolve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/roadtripai/tripsync/internal/client/queue"
	"github.com/roadtripai/tripsync/internal/client/storage"
	"github.com/roadtripai/tripsync/internal/models"
	"github.com/roadtripai/tripsync/pkg/api"
)

// Resolver применяет политику разрешения к конфликтной операции.
// Сам с сервером не общается: client-wins и manual возвращают операцию
// в очередь с флагом принудительной перезаписи, и повторную отправку
// выполняет обычный drain-цикл.
type Resolver struct {
	queue     *queue.Queue
	records   storage.RecordStorage
	conflicts storage.ConflictStorage
	logger    *slog.Logger
}

// NewResolver создает resolver
func NewResolver(q *queue.Queue, records storage.RecordStorage, conflicts storage.ConflictStorage, logger *slog.Logger) *Resolver {
	return &Resolver{
		queue:     q,
		records:   records,
		conflicts: conflicts,
		logger:    logger,
	}
}

// Resolve применяет политику к операции, отклоненной сервером.
// serverDoc - текущее серверное представление документа из 409 ответа.
func (r *Resolver) Resolve(ctx context.Context, op *models.SyncOperation, serverDoc *api.Document, policy models.ConflictPolicy) error {
	r.logger.Info("Resolving version conflict",
		"operation_id", op.ID,
		"collection", op.Collection,
		"document_id", op.DocumentID,
		"policy", policy)

	switch policy {
	case models.PolicyServerWins:
		return r.resolveServerWins(ctx, op, serverDoc)
	case models.PolicyClientWins:
		return r.resolveClientWins(ctx, op)
	case models.PolicyManual:
		return r.resolveManual(ctx, op, serverDoc)
	default:
		return fmt.Errorf("unknown conflict resolution policy: %q", policy)
	}
}

// resolveServerWins принимает серверную версию: локальная запись
// заменяется серверным документом, операция удаляется из очереди.
// Повторное применение того же серверного документа идемпотентно.
func (r *Resolver) resolveServerWins(ctx context.Context, op *models.SyncOperation, serverDoc *api.Document) error {
	record := &models.Record{
		Collection: op.Collection,
		ID:         op.DocumentID,
		Payload:    serverDoc.Payload,
		Version:    serverDoc.Version,
		UpdatedAt:  time.Now(),
	}
	if err := r.records.PutRecord(ctx, record); err != nil {
		return fmt.Errorf("failed to apply server version: %w", err)
	}

	if err := r.queue.Remove(ctx, op.ID); err != nil {
		return fmt.Errorf("failed to remove resolved operation: %w", err)
	}

	r.logger.Info("Conflict resolved: server version accepted",
		"operation_id", op.ID,
		"server_version", serverDoc.Version)
	return nil
}

// resolveClientWins возвращает операцию в очередь с флагом
// принудительной перезаписи. Следующая отправка обойдет проверку
// версии на сервере.
func (r *Resolver) resolveClientWins(ctx context.Context, op *models.SyncOperation) error {
	if err := r.queue.ForceRetry(ctx, op.ID); err != nil {
		return fmt.Errorf("failed to schedule forced retry: %w", err)
	}

	r.logger.Info("Conflict resolved: local version will overwrite server",
		"operation_id", op.ID)
	return nil
}

// resolveManual сохраняет снимок обеих версий и помечает операцию
// конфликтной. Операция ждет явного разрешения через ResolveManual.
func (r *Resolver) resolveManual(ctx context.Context, op *models.SyncOperation, serverDoc *api.Document) error {
	serverJSON, err := json.Marshal(serverDoc)
	if err != nil {
		return fmt.Errorf("failed to serialize server document: %w", err)
	}

	clientJSON, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("failed to serialize client operation: %w", err)
	}

	conflict := &models.ConflictRecord{
		OperationID:   op.ID,
		ServerVersion: serverJSON,
		ClientVersion: clientJSON,
	}
	if err := r.conflicts.SaveConflict(ctx, conflict); err != nil {
		return fmt.Errorf("failed to save conflict snapshot: %w", err)
	}

	if err := r.queue.MarkConflict(ctx, op.ID); err != nil {
		return fmt.Errorf("failed to mark operation as conflicted: %w", err)
	}

	r.logger.Info("Conflict stored for manual resolution", "operation_id", op.ID)
	return nil
}

// ResolveManual завершает manual конфликт разрешенным payload.
// Локальная запись обновляется, операция возвращается в очередь
// с принудительной перезаписью, снимок конфликта удаляется.
// Разрешение операции без сохраненного снимка - no-op: снимок уже
// удален повторным вызовом или конфликта не было.
func (r *Resolver) ResolveManual(ctx context.Context, operationID string, payload []byte) error {
	if _, err := r.conflicts.GetConflict(ctx, operationID); err != nil {
		if errors.Is(err, storage.ErrConflictNotFound) {
			r.logger.Debug("No conflict snapshot to resolve", "operation_id", operationID)
			return nil
		}
		return fmt.Errorf("failed to load conflict snapshot: %w", err)
	}

	op, err := r.queue.Get(operationID)
	if err != nil {
		return fmt.Errorf("failed to find conflicted operation: %w", err)
	}

	if err := r.queue.SetPayload(ctx, operationID, payload); err != nil {
		return fmt.Errorf("failed to update operation payload: %w", err)
	}

	// Локальная копия сразу отражает разрешенное состояние,
	// не дожидаясь подтверждения сервера
	record, err := r.records.GetRecord(ctx, op.Collection, op.DocumentID)
	if err != nil {
		record = &models.Record{
			Collection: op.Collection,
			ID:         op.DocumentID,
		}
	}
	record.Payload = append([]byte(nil), payload...)
	record.UpdatedAt = time.Now()
	if err := r.records.PutRecord(ctx, record); err != nil {
		return fmt.Errorf("failed to update local record: %w", err)
	}

	if err := r.queue.ForceRetry(ctx, operationID); err != nil {
		return fmt.Errorf("failed to schedule forced retry: %w", err)
	}

	if err := r.conflicts.DeleteConflict(ctx, operationID); err != nil {
		return fmt.Errorf("failed to delete conflict snapshot: %w", err)
	}

	r.logger.Info("Manual conflict resolved", "operation_id", operationID)
	return nil
}

// PendingConflicts возвращает сохраненные снимки конфликтов
func (r *Resolver) PendingConflicts(ctx context.Context) ([]*models.ConflictRecord, error) {
	conflicts, err := r.conflicts.ListConflicts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conflicts: %w", err)
	}
	return conflicts, nil
}
