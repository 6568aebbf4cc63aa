package common

import (
	"errors"

	"sfera/domain"
)

// ErrorText maps domain errors to the user-facing Russian copy shown in
// status lines. Unknown errors fall back to their Error() string.
func ErrorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyPost):
		return "Пост не может быть пустым"
	case errors.Is(err, domain.ErrEmptyComment):
		return "Комментарий не может быть пустым"
	case errors.Is(err, domain.ErrEmptyMessage):
		return "Сообщение не может быть пустым"
	case errors.Is(err, domain.ErrEmptyCredentials):
		return "Заполните email и пароль"
	}
	return err.Error()
}
