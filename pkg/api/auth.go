package api

// LoginRequest представляет запрос на аутентификацию оператора
type LoginRequest struct {
	Username string `json:"username"` // имя оператора из конфигурации сервера
	Password string `json:"password"` // пароль в открытом виде, передается только по TLS
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	AccessToken string `json:"access_token"` // JWT access token
	TokenType   string `json:"token_type"`   // всегда "Bearer"
	ExpiresIn   int64  `json:"expires_in"`   // время жизни access token в секундах
}

// FieldError describes one rejected field of a request body.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error  string       `json:"error"`            // описание ошибки
	Fields []FieldError `json:"fields,omitempty"` // ошибки валидации по полям
}
