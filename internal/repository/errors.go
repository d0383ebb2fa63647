package repository

import "errors"

var (
	// ErrActivityNotFound возвращается, если кружка с таким названием нет.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAlreadyRegistered возвращается при повторной записи того же email.
	ErrAlreadyRegistered = errors.New("participant already registered")

	// ErrNotRegistered возвращается при отписке email, которого нет в списке.
	ErrNotRegistered = errors.New("participant not registered")

	// ErrCapacityExceeded возвращается, если в кружке не осталось мест.
	ErrCapacityExceeded = errors.New("activity capacity exceeded")

	// ErrInvalidSeed возвращается при некорректных начальных данных.
	ErrInvalidSeed = errors.New("invalid seed")
)
