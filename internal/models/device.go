package models

import "time"

// Device представляет зарегистрированное устройство на сервере.
// Секрет устройства хранится только в виде argon2id хеша.
type Device struct {
	CreatedAt  time.Time  `json:"created_at"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	ID         string     `json:"id"`   // ID UUID устройства
	Name       string     `json:"name"` // Name человекочитаемое имя устройства
	SecretHash string     `json:"-"`    // SecretHash argon2id хеш секрета
}
