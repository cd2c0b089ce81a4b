package services

import (
	"errors"
	"fmt"
)

// ErrNotFound matches every NotFoundError
var ErrNotFound = errors.New("not found")

// NotFoundError names the entity and id that do not exist
type NotFoundError struct {
	Entity string
	ID     uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d does not exist", e.Entity, e.ID)
}

// Is lets errors.Is(err, ErrNotFound) match
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
