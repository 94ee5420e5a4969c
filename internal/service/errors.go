package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
	ErrInvalid   = errors.New("invalid request")
)

// storeErr maps repository errors onto the service sentinels. entity names
// the resource in the message, e.g. "product not found".
func storeErr(entity string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s %w", entity, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s %w", entity, ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", entity, err)
	}
}

func duplicate(entity, field string) error {
	return fmt.Errorf("%s with this %s %w", entity, field, ErrDuplicate)
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalid, msg)
}

// reference reports a missing referenced row as an invalid request.
func reference(entity string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invalid(entity + " does not exist")
	}
	return storeErr(entity, err)
}
