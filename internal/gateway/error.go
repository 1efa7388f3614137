package gateway

import "fmt"

// Kind - закрытый набор классов ошибок шлюза
type Kind string

const (
	// KindConfig - адрес API не сконфигурирован или неразрешим
	KindConfig Kind = "config"
	// KindNetwork - запрос не дошел до API (таймаут, отказ соединения)
	KindNetwork Kind = "network"
	// KindHTTP - API ответил статусом >= 400
	KindHTTP Kind = "http"
	// KindValidation - запрос отклонен до отправки (клиентская проверка)
	KindValidation Kind = "validation"
)

// Error - единственный тип ошибок, который возвращает Client.
// Message - detail из тела ответа, либо запасной текст.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("gateway: %s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("gateway: %s: %s", e.Kind, e.Message)
}

func configError(message string) *Error {
	return &Error{Kind: KindConfig, Message: message}
}

func networkError(message string) *Error {
	return &Error{Kind: KindNetwork, Message: message}
}

func validationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// IsUnauthorized - true для HTTP 401: сессию надо сбросить без повтора запроса
func IsUnauthorized(err error) bool {
	gwErr, ok := err.(*Error)
	return ok && gwErr.Kind == KindHTTP && gwErr.Status == 401
}

// IsConfig - true для ошибок конфигурации адреса API
func IsConfig(err error) bool {
	gwErr, ok := err.(*Error)
	return ok && gwErr.Kind == KindConfig
}

// IsNetwork - true, когда API недоступен
func IsNetwork(err error) bool {
	gwErr, ok := err.(*Error)
	return ok && gwErr.Kind == KindNetwork
}
