package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессии нет или она истекла
	ErrSessionNotFound = errors.New("session.storage: session not found")

	// ErrEncode возвращается при ошибке сериализации сессии
	ErrEncode = errors.New("session.storage: failed to encode session")

	// ErrStorage возвращается при ошибках хранилища
	ErrStorage = errors.New("session.storage: storage error")
)
