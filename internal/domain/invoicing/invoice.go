package invoicing

import (
	"sales-invoicing/internal/domain/published"
	"sales-invoicing/internal/domain/sharedkernel"
)

type InvoiceLine struct {
	item RequestItem
	tax  Tax
}

func (l InvoiceLine) Item() RequestItem { return l.item }
func (l InvoiceLine) Tax() Tax          { return l.tax }

type Invoice struct {
	id     published.ID
	client published.ClientData
	lines  []InvoiceLine
}

// NewInvoice creates an empty invoice. Lines are only ever appended by BookKeeper.
func NewInvoice(id published.ID, client published.ClientData) *Invoice {
	return &Invoice{id: id, client: client}
}

func (i *Invoice) addItem(item RequestItem, tax Tax) {
	i.lines = append(i.lines, InvoiceLine{item: item, tax: tax})
}

func (i *Invoice) ID() published.ID             { return i.id }
func (i *Invoice) Client() published.ClientData { return i.client }

func (i *Invoice) Lines() []InvoiceLine {
	out := make([]InvoiceLine, len(i.lines))
	copy(out, i.lines)
	return out
}

func (i *Invoice) Len() int { return len(i.lines) }

// Net sums the lines' total cost. An empty invoice totals zero in the given currency.
func (i *Invoice) Net(cur sharedkernel.Currency) (sharedkernel.Money, error) {
	sum := sharedkernel.ZeroIn(cur)
	for _, l := range i.lines {
		var err error
		if sum, err = sum.Add(l.item.TotalCost()); err != nil {
			return sharedkernel.Money{}, err
		}
	}
	return sum, nil
}

// Gross is Net plus every line's tax.
func (i *Invoice) Gross(cur sharedkernel.Currency) (sharedkernel.Money, error) {
	sum, err := i.Net(cur)
	if err != nil {
		return sharedkernel.Money{}, err
	}
	for _, l := range i.lines {
		if sum, err = sum.Add(l.tax.Amount()); err != nil {
			return sharedkernel.Money{}, err
		}
	}
	return sum, nil
}
