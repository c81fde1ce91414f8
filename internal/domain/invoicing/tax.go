package invoicing

import (
	"strings"

	"sales-invoicing/internal/domain/sharedkernel"
)

type Tax struct {
	amount      sharedkernel.Money
	description string
}

func NewTax(amount sharedkernel.Money, description string) (Tax, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Tax{}, ErrEmptyTaxDescription
	}
	return Tax{amount: amount, description: description}, nil
}

func (t Tax) Amount() sharedkernel.Money { return t.amount }
func (t Tax) Description() string        { return t.description }

func (t Tax) Equal(other Tax) bool {
	return t.description == other.description && t.amount.Equal(other.amount)
}
