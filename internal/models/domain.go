package models

import "time"

// Имена коллекций, синхронизируемых приложением
const (
	CollectionStories  = "stories"
	CollectionTopics   = "topics"
	CollectionFeedback = "feedback"
)

// Story представляет сохраненную историю поездки.
type Story struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ID          string    `json:"id"`          // ID уникальный идентификатор истории (UUID)
	Title       string    `json:"title"`       // Title заголовок истории
	Content     string    `json:"content"`     // Content текст истории
	Origin      string    `json:"origin"`      // Origin точка начала маршрута
	Destination string    `json:"destination"` // Destination точка назначения
	Persona     string    `json:"persona"`     // Persona голосовой персонаж, озвучивший историю
	PlayCount   int       `json:"play_count"`  // PlayCount количество воспроизведений
	Favorite    bool      `json:"favorite"`    // Favorite флаг избранного
}

// ConversationTopic представляет тему разговора, поднятую в поездке.
type ConversationTopic struct {
	LastRaisedAt time.Time `json:"last_raised_at"`
	ID           string    `json:"id"`      // ID уникальный идентификатор темы (UUID)
	Topic        string    `json:"topic"`   // Topic название темы
	Context      string    `json:"context"` // Context заметки о контексте разговора
}

// Feedback представляет оценку истории пользователем.
type Feedback struct {
	SubmittedAt time.Time `json:"submitted_at"`
	ID          string    `json:"id"`       // ID уникальный идентификатор отзыва (UUID)
	StoryID     string    `json:"story_id"` // StoryID история, к которой относится отзыв
	Comment     string    `json:"comment"`  // Comment текстовый комментарий
	Rating      int       `json:"rating"`   // Rating оценка от 1 до 5
}
