package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/roadtripai/tripsync/internal/models"
	"github.com/roadtripai/tripsync/internal/server/storage"
	"github.com/roadtripai/tripsync/internal/validation"
	"github.com/roadtripai/tripsync/pkg/api"
)

// DocumentHandler обрабатывает CRUD запросы к документам коллекций.
// Версионирование: сервер увеличивает version при каждой записи; PUT с
// несовпадающей базовой версией получает 409 с текущим серверным
// документом, если не передан заголовок принудительной перезаписи.
type DocumentHandler struct {
	logger    *slog.Logger
	documents storage.DocumentStorage
}

// NewDocumentHandler создает новый handler для документов
func NewDocumentHandler(logger *slog.Logger, documents storage.DocumentStorage) *DocumentHandler {
	return &DocumentHandler{
		logger:    logger,
		documents: documents,
	}
}

// Create обрабатывает POST /api/v1/{collection}
// Создание документа; 409 если id уже занят
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deviceID, ok := GetDeviceID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	collection := r.PathValue("collection")
	if err := validation.ValidateCollection(collection); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	var req api.Document
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode document", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateDocumentID(req.ID); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	doc := &models.Document{
		DeviceID:   deviceID,
		Collection: collection,
		ID:         req.ID,
		OriginID:   req.OriginID,
		Payload:    req.Payload,
		Version:    1,
		Timestamp:  req.Timestamp,
		UpdatedAt:  time.Now(),
	}

	if err := h.documents.InsertDocument(ctx, doc); err != nil {
		if errors.Is(err, storage.ErrDocumentAlreadyExists) {
			h.sendConflict(ctx, w, deviceID, collection, req.ID, "document already exists")
			return
		}
		h.logger.ErrorContext(ctx, "failed to insert document", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "document created",
		slog.String("collection", collection),
		slog.String("id", req.ID),
		slog.String("device_id", deviceID))

	sendJSON(h.logger, w, toAPIDocument(doc), http.StatusCreated)
}

// Update обрабатывает PUT /api/v1/{collection}/{id}
// Обновление с optimistic concurrency проверкой базовой версии.
// Заголовок X-Force-Update: true пропускает проверку.
func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deviceID, ok := GetDeviceID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	collection := r.PathValue("collection")
	id := r.PathValue("id")
	if err := validation.ValidateCollection(collection); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateDocumentID(id); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	var req api.Document
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode document", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	force := r.Header.Get(api.HeaderForceUpdate) == "true"

	current, err := h.documents.GetDocument(ctx, deviceID, collection, id)
	if err != nil && !errors.Is(err, storage.ErrDocumentNotFound) {
		h.logger.ErrorContext(ctx, "failed to get document", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if current == nil && !force {
		sendError(h.logger, w, "document not found", http.StatusNotFound)
		return
	}

	var currentVersion int64
	if current != nil {
		currentVersion = current.Version
	}

	doc := &models.Document{
		DeviceID:   deviceID,
		Collection: collection,
		ID:         id,
		OriginID:   req.OriginID,
		Payload:    req.Payload,
		Version:    currentVersion + 1,
		Timestamp:  req.Timestamp,
		UpdatedAt:  time.Now(),
	}

	if force {
		// Принудительная перезапись: client-wins / manual разрешение
		if err := h.documents.ReplaceDocument(ctx, doc); err != nil {
			h.logger.ErrorContext(ctx, "failed to force-replace document", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
			return
		}

		h.logger.InfoContext(ctx, "document force-updated",
			slog.String("collection", collection),
			slog.String("id", id),
			slog.Int64("version", doc.Version))

		sendJSON(h.logger, w, toAPIDocument(doc), http.StatusOK)
		return
	}

	if currentVersion != req.Version {
		h.logger.WarnContext(ctx, "document version conflict",
			slog.String("collection", collection),
			slog.String("id", id),
			slog.Int64("base_version", req.Version),
			slog.Int64("server_version", currentVersion))
		h.sendConflictDocument(ctx, w, current, "document version conflict")
		return
	}

	if err := h.documents.UpdateDocument(ctx, doc, currentVersion); err != nil {
		switch {
		case errors.Is(err, storage.ErrVersionMismatch):
			// Версия ушла вперед между чтением и записью
			h.sendConflict(ctx, w, deviceID, collection, id, "document version conflict")
		case errors.Is(err, storage.ErrDocumentNotFound):
			sendError(h.logger, w, "document not found", http.StatusNotFound)
		default:
			h.logger.ErrorContext(ctx, "failed to update document", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.logger.InfoContext(ctx, "document updated",
		slog.String("collection", collection),
		slog.String("id", id),
		slog.Int64("version", doc.Version))

	sendJSON(h.logger, w, toAPIDocument(doc), http.StatusOK)
}

// Get обрабатывает GET /api/v1/{collection}/{id}
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deviceID, ok := GetDeviceID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	collection := r.PathValue("collection")
	id := r.PathValue("id")

	doc, err := h.documents.GetDocument(ctx, deviceID, collection, id)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			sendError(h.logger, w, "document not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get document", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, toAPIDocument(doc), http.StatusOK)
}

// List обрабатывает GET /api/v1/{collection}
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deviceID, ok := GetDeviceID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	collection := r.PathValue("collection")
	if err := validation.ValidateCollection(collection); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	docs, err := h.documents.ListDocuments(ctx, deviceID, collection)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list documents", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	apiDocs := make([]api.Document, 0, len(docs))
	for _, doc := range docs {
		apiDocs = append(apiDocs, toAPIDocument(doc))
	}

	sendJSON(h.logger, w, apiDocs, http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/{collection}/{id}
// Идемпотентно: удаление отсутствующего документа тоже 204
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deviceID, ok := GetDeviceID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	collection := r.PathValue("collection")
	id := r.PathValue("id")

	if err := h.documents.DeleteDocument(ctx, deviceID, collection, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete document", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "document deleted",
		slog.String("collection", collection),
		slog.String("id", id))

	w.WriteHeader(http.StatusNoContent)
}

// sendConflict загружает текущий серверный документ и отвечает 409
func (h *DocumentHandler) sendConflict(ctx context.Context, w http.ResponseWriter, deviceID, collection, id, message string) {
	current, err := h.documents.GetDocument(ctx, deviceID, collection, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load conflicting document", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}
	h.sendConflictDocument(ctx, w, current, message)
}

// sendConflictDocument отвечает 409 с текущим серверным документом,
// чтобы клиент мог выполнить разрешение без отдельного GET
func (h *DocumentHandler) sendConflictDocument(_ context.Context, w http.ResponseWriter, current *models.Document, message string) {
	resp := api.ConflictResponse{
		Document: toAPIDocument(current),
		Error:    message,
	}
	sendJSON(h.logger, w, resp, http.StatusConflict)
}

// toAPIDocument конвертирует серверную модель в wire-формат
func toAPIDocument(doc *models.Document) api.Document {
	return api.Document{
		UpdatedAt:  doc.UpdatedAt,
		Collection: doc.Collection,
		ID:         doc.ID,
		OriginID:   doc.OriginID,
		Payload:    doc.Payload,
		Version:    doc.Version,
		Timestamp:  doc.Timestamp,
	}
}
