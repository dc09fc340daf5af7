package service

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNoChange marks a request that was accepted but changed nothing: a
// missing required field, or a write aimed at a row that does not exist.
var ErrNoChange = errors.New("nothing to change")

// ErrInvalidInput wraps input that cannot be used at all, such as an
// undecodable photo.
var ErrInvalidInput = errors.New("invalid input")

// IsNotFound reports whether err means the addressed row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// noChangeIfMissing turns a not-found write into ErrNoChange.
func noChangeIfMissing(err error) error {
	if IsNotFound(err) {
		return ErrNoChange
	}
	return err
}
