package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для ошибок домена
(провайдеры, пользователи, сообщения, категории).
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (400).
// Оригинальный API отвечал 400 на дубликат username/email, сохраняем это.
func ErrAlreadyExists(domain, message string) *AppError {
	return New(CodeAlreadyExists, domain, message, http.StatusBadRequest)
}

var ErrProviderNotFound = New(
	CodeNotFound,
	"provider",
	"Provider not found",
	http.StatusNotFound,
)

var ErrCategoryNotFound = New(
	CodeNotFound,
	"category",
	"Category not found",
	http.StatusNotFound,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Incorrect username or password",
	http.StatusUnauthorized,
)

var ErrAccountDisabled = New(
	CodeForbidden,
	"auth",
	"Account is disabled",
	http.StatusForbidden,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Not enough permissions",
	http.StatusForbidden,
)

// ErrLastSuperAdmin - попытка удалить или понизить последнего супер-админа
var ErrLastSuperAdmin = New(
	CodeInvalidOperation,
	"admin",
	"Cannot remove the last super admin",
	http.StatusBadRequest,
)

// --- Загрузка файлов ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"upload",
	"Файл слишком большой (макс. 5MB)",
	http.StatusBadRequest,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"upload",
	"Недопустимый формат файла",
	http.StatusBadRequest,
)
