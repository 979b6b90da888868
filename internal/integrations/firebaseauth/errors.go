package firebaseauth

import "errors"

var (
	// ErrInvalidToken возвращается, когда токен не прошел проверку
	ErrInvalidToken = errors.New("firebaseauth: invalid id token")

	// ErrEmailNotVerified возвращается, когда email пользователя не подтвержден
	ErrEmailNotVerified = errors.New("firebaseauth: email not verified")

	// ErrInternal возвращается при ошибке инициализации клиента
	ErrInternal = errors.New("firebaseauth: internal error")
)
