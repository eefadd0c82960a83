// Package data реализует типизированный доступ к локальным записям.
// Каждая мутация применяется к Local Store и ставится в очередь
// синхронизации, после чего драйвер получает сигнал о новой работе.
package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roadtripai/tripsync/internal/client/queue"
	"github.com/roadtripai/tripsync/internal/client/storage"
	"github.com/roadtripai/tripsync/internal/identity"
	"github.com/roadtripai/tripsync/internal/models"
)

// Service определяет интерфейс клиентского data сервиса
type Service interface {
	SaveStory(ctx context.Context, story *models.Story) error
	GetStory(ctx context.Context, id string) (*models.Story, error)
	ListStories(ctx context.Context) ([]*models.Story, error)
	DeleteStory(ctx context.Context, id string) error

	SaveTopic(ctx context.Context, topic *models.ConversationTopic) error
	GetTopic(ctx context.Context, id string) (*models.ConversationTopic, error)
	ListTopics(ctx context.Context) ([]*models.ConversationTopic, error)
	DeleteTopic(ctx context.Context, id string) error

	SaveFeedback(ctx context.Context, feedback *models.Feedback) error
	ListFeedback(ctx context.Context) ([]*models.Feedback, error)
}

// service handles local-first data operations
type service struct {
	records  storage.RecordStorage
	queue    *queue.Queue
	identity identity.Provider
	notify   func()
}

// NewService creates a new data service.
// notify вызывается после каждой поставленной в очередь операции
// (оппортунистический запуск синхронизации); может быть nil.
func NewService(records storage.RecordStorage, q *queue.Queue, identity identity.Provider, notify func()) Service {
	return &service{
		records:  records,
		queue:    q,
		identity: identity,
		notify:   notify,
	}
}

// SaveStory сохраняет историю локально и ставит мутацию в очередь
func (s *service) SaveStory(ctx context.Context, story *models.Story) error {
	now := time.Now()
	if story.ID == "" {
		story.ID = uuid.New().String()
		story.CreatedAt = now
	}
	story.UpdatedAt = now

	return s.save(ctx, models.CollectionStories, story.ID, story)
}

// GetStory возвращает историю из локального хранилища
func (s *service) GetStory(ctx context.Context, id string) (*models.Story, error) {
	var story models.Story
	if err := s.get(ctx, models.CollectionStories, id, &story); err != nil {
		return nil, err
	}
	return &story, nil
}

// ListStories возвращает все локальные истории
func (s *service) ListStories(ctx context.Context) ([]*models.Story, error) {
	records, err := s.records.ListRecords(ctx, models.CollectionStories)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	stories := make([]*models.Story, 0, len(records))
	for _, record := range records {
		var story models.Story
		if err := json.Unmarshal(record.Payload, &story); err != nil {
			// Пропускаем поврежденные записи
			continue
		}
		stories = append(stories, &story)
	}
	return stories, nil
}

// DeleteStory удаляет историю локально и ставит удаление в очередь
func (s *service) DeleteStory(ctx context.Context, id string) error {
	return s.delete(ctx, models.CollectionStories, id)
}

// SaveTopic сохраняет тему разговора локально и ставит мутацию в очередь
func (s *service) SaveTopic(ctx context.Context, topic *models.ConversationTopic) error {
	if topic.ID == "" {
		topic.ID = uuid.New().String()
	}
	topic.LastRaisedAt = time.Now()

	return s.save(ctx, models.CollectionTopics, topic.ID, topic)
}

// GetTopic возвращает тему из локального хранилища
func (s *service) GetTopic(ctx context.Context, id string) (*models.ConversationTopic, error) {
	var topic models.ConversationTopic
	if err := s.get(ctx, models.CollectionTopics, id, &topic); err != nil {
		return nil, err
	}
	return &topic, nil
}

// ListTopics возвращает все локальные темы разговоров
func (s *service) ListTopics(ctx context.Context) ([]*models.ConversationTopic, error) {
	records, err := s.records.ListRecords(ctx, models.CollectionTopics)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	topics := make([]*models.ConversationTopic, 0, len(records))
	for _, record := range records {
		var topic models.ConversationTopic
		if err := json.Unmarshal(record.Payload, &topic); err != nil {
			continue
		}
		topics = append(topics, &topic)
	}
	return topics, nil
}

// DeleteTopic удаляет тему локально и ставит удаление в очередь
func (s *service) DeleteTopic(ctx context.Context, id string) error {
	return s.delete(ctx, models.CollectionTopics, id)
}

// SaveFeedback сохраняет отзыв локально и ставит мутацию в очередь
func (s *service) SaveFeedback(ctx context.Context, feedback *models.Feedback) error {
	if feedback.Rating < 1 || feedback.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", feedback.Rating)
	}
	if feedback.ID == "" {
		feedback.ID = uuid.New().String()
	}
	feedback.SubmittedAt = time.Now()

	return s.save(ctx, models.CollectionFeedback, feedback.ID, feedback)
}

// ListFeedback возвращает все локальные отзывы
func (s *service) ListFeedback(ctx context.Context) ([]*models.Feedback, error) {
	records, err := s.records.ListRecords(ctx, models.CollectionFeedback)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	feedback := make([]*models.Feedback, 0, len(records))
	for _, record := range records {
		var fb models.Feedback
		if err := json.Unmarshal(record.Payload, &fb); err != nil {
			continue
		}
		feedback = append(feedback, &fb)
	}
	return feedback, nil
}

// save записывает payload в Local Store и ставит create/update
// операцию в очередь синхронизации
func (s *service) save(ctx context.Context, collection, id string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	// Тип операции и базовая версия зависят от наличия локальной записи
	opType := models.OpCreate
	var version int64
	existing, err := s.records.GetRecord(ctx, collection, id)
	switch {
	case err == nil:
		opType = models.OpUpdate
		version = existing.Version
	case errors.Is(err, storage.ErrRecordNotFound):
	default:
		return fmt.Errorf("failed to check existing record: %w", err)
	}

	record := &models.Record{
		Collection: collection,
		ID:         id,
		Payload:    data,
		Version:    version,
		UpdatedAt:  time.Now(),
	}
	if err := s.records.PutRecord(ctx, record); err != nil {
		return fmt.Errorf("failed to store record: %w", err)
	}

	if err := s.enqueue(ctx, opType, collection, id, data, version); err != nil {
		return err
	}
	return nil
}

// get читает запись из Local Store и десериализует payload
func (s *service) get(ctx context.Context, collection, id string, out any) error {
	record, err := s.records.GetRecord(ctx, collection, id)
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}
	if err := json.Unmarshal(record.Payload, out); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return nil
}

// delete удаляет запись из Local Store и ставит delete операцию в очередь
func (s *service) delete(ctx context.Context, collection, id string) error {
	var version int64
	if existing, err := s.records.GetRecord(ctx, collection, id); err == nil {
		version = existing.Version
	}

	if err := s.records.DeleteRecord(ctx, collection, id); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	return s.enqueue(ctx, models.OpDelete, collection, id, nil, version)
}

// enqueue ставит операцию в очередь и сигнализирует драйверу
func (s *service) enqueue(ctx context.Context, opType models.OpType, collection, id string, payload []byte, version int64) error {
	deviceID, err := s.identity.DeviceID(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve device id: %w", err)
	}

	op := &models.SyncOperation{
		Type:       opType,
		Collection: collection,
		DocumentID: id,
		OriginID:   deviceID,
		Payload:    payload,
		Version:    version,
	}
	if err := s.queue.Enqueue(ctx, op); err != nil {
		return fmt.Errorf("failed to enqueue operation: %w", err)
	}

	if s.notify != nil {
		s.notify()
	}
	return nil
}
