package service

import "errors"

// Ошибки валидации. Проверяются до любого обращения к хранилищу: при их
// возникновении запись не вставляется и запрос не выполняется.
var (
	// ErrIdentifierMissing - не передан ни телефон, ни email.
	ErrIdentifierMissing = errors.New("phone number or email is required")

	// ErrCoordinatesMissing - на записи отсутствует широта или долгота.
	ErrCoordinatesMissing = errors.New("latitude and longitude are required")

	// ErrCoordinatesOutOfRange - широта вне [-90, 90] или долгота вне [-180, 180].
	ErrCoordinatesOutOfRange = errors.New("latitude must be in [-90, 90] and longitude in [-180, 180]")
)
