package api

// RegisterDeviceRequest представляет запрос на регистрацию нового устройства
type RegisterDeviceRequest struct {
	DeviceName string `json:"device_name"` // человекочитаемое имя устройства
	Secret     string `json:"secret"`      // секрет устройства (хешируется на сервере)
}

// RegisterDeviceResponse представляет ответ на успешную регистрацию
type RegisterDeviceResponse struct {
	DeviceID string `json:"device_id"` // UUID устройства
	Message  string `json:"message"`   // сообщение об успешной регистрации
}

// LoginRequest представляет запрос на аутентификацию устройства
type LoginRequest struct {
	DeviceID string `json:"device_id"` // UUID устройства
	Secret   string `json:"secret"`    // секрет устройства
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	AccessToken string `json:"access_token"` // JWT access token
	ExpiresIn   int64  `json:"expires_in"`   // время жизни access token в секундах
}
