package domain

import "errors"

var (
	// ErrGeocoderUnavailable — геокодер не ответил или ответил не-2xx.
	ErrGeocoderUnavailable = errors.New("geocoder unavailable")
	// ErrGeocoderMalformed — ответ геокодера не удалось разобрать.
	ErrGeocoderMalformed = errors.New("geocoder response malformed")
	// ErrUnknownProduct — в заявке товар, которого нет в каталоге.
	ErrUnknownProduct = errors.New("unknown product")
	// ErrInvalidCredentials — неверный логин/пароль или нет прав менеджера.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
