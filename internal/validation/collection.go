package validation

import (
	"fmt"
	"regexp"
)

// CollectionPattern определяет допустимый формат имени коллекции
// Только строчные латинские буквы (a-z), цифры (0-9), дефис (-), нижнее подчеркивание (_)
// Длина: 1-64 символа, первый символ - буква
var CollectionPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]{0,63}$`)

// DocumentIDPattern определяет допустимый формат идентификатора документа
// Буквы, цифры, дефис, нижнее подчеркивание, точка. Длина: 1-128 символов
var DocumentIDPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,128}$`)

const (
	// MaxCollectionLen максимальная длина имени коллекции
	MaxCollectionLen = 64
	// MaxDocumentIDLen максимальная длина идентификатора документа
	MaxDocumentIDLen = 128
)

// ValidateCollection проверяет, что имя коллекции соответствует требованиям.
// Имя коллекции попадает в URL пути и в ключи локального хранилища,
// поэтому формат ограничен строчными буквами, цифрами, "-" и "_".
func ValidateCollection(collection string) error {
	if collection == "" {
		return fmt.Errorf("collection name cannot be empty")
	}

	if len(collection) > MaxCollectionLen {
		return fmt.Errorf("collection name must not exceed %d characters", MaxCollectionLen)
	}

	if !CollectionPattern.MatchString(collection) {
		return fmt.Errorf("collection name must start with a letter and contain only lowercase letters, numbers, hyphens and underscores")
	}

	return nil
}

// ValidateDocumentID проверяет, что идентификатор документа соответствует требованиям
func ValidateDocumentID(id string) error {
	if id == "" {
		return fmt.Errorf("document id cannot be empty")
	}

	if len(id) > MaxDocumentIDLen {
		return fmt.Errorf("document id must not exceed %d characters", MaxDocumentIDLen)
	}

	if !DocumentIDPattern.MatchString(id) {
		return fmt.Errorf("document id can only contain letters, numbers, dots, hyphens and underscores")
	}

	return nil
}

// ValidateDeviceName проверяет минимальные требования к имени устройства
func ValidateDeviceName(name string) error {
	const maxDeviceNameLen = 64

	if name == "" {
		return fmt.Errorf("device name cannot be empty")
	}

	if len(name) > maxDeviceNameLen {
		return fmt.Errorf("device name must not exceed %d characters", maxDeviceNameLen)
	}

	return nil
}

// ValidateSecret проверяет минимальные требования к секрету устройства
// Минимум 12 символов
func ValidateSecret(secret string) error {
	const minSecretLen = 12

	if secret == "" {
		return fmt.Errorf("secret cannot be empty")
	}

	if len(secret) < minSecretLen {
		return fmt.Errorf("secret must be at least %d characters long", minSecretLen)
	}

	return nil
}
