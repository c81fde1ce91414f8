package published

import (
	"errors"
	"strings"
)

var ErrEmptyClientName = errors.New("client name cannot be empty")

type ClientData struct {
	id   ID
	name string
}

func NewClientData(id ID, name string) (ClientData, error) {
	if id.IsZero() {
		return ClientData{}, ErrEmptyID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ClientData{}, ErrEmptyClientName
	}
	return ClientData{id: id, name: name}, nil
}

func (c ClientData) ID() ID       { return c.id }
func (c ClientData) Name() string { return c.name }
