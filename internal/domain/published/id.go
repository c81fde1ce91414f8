package published

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptyID = errors.New("id cannot be empty")

// ID is opaque; nothing outside this package relies on its format.
type ID struct {
	value string
}

func NewID(value string) (ID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return ID{}, ErrEmptyID
	}
	return ID{value: value}, nil
}

// MustID is for fixtures and constants.
func MustID(value string) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func GenerateID() ID {
	return ID{value: uuid.NewString()}
}

func (i ID) String() string { return i.value }
func (i ID) IsZero() bool   { return i.value == "" }

type IDGenerator interface {
	Generate() ID
}

type UUIDGenerator struct{}

func NewUUIDGenerator() IDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) Generate() ID {
	return GenerateID()
}
