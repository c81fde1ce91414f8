package catalog

import (
	"errors"
	"strings"
	"time"

	"sales-invoicing/internal/domain/published"
	"sales-invoicing/internal/domain/sharedkernel"
)

var (
	ErrInvalidProductType  = errors.New("invalid product type")
	ErrEmptyProductName    = errors.New("product name cannot be empty")
	ErrProductNameTooLong  = errors.New("product name is too long (max 255 characters)")
	ErrMissingProductID    = errors.New("product id is required")
	ErrNegativeProductCost = errors.New("product price cannot be negative")
)

const MaxProductNameLength = 255

type ProductType string

const (
	ProductTypeStandard ProductType = "STANDARD"
	ProductTypeFood     ProductType = "FOOD"
	ProductTypeDrug     ProductType = "DRUG"
)

func (t ProductType) String() string {
	return string(t)
}

func (t ProductType) IsValid() bool {
	switch t {
	case ProductTypeStandard, ProductTypeFood, ProductTypeDrug:
		return true
	default:
		return false
	}
}

func ParseProductType(s string) (ProductType, error) {
	t := ProductType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidProductType
	}
	return t, nil
}

// ProductData is a point-in-time copy of a catalog product. It has no link back to the
// live catalog entry, so later price changes never leak into an issued invoice.
type ProductData struct {
	productID    published.ID
	name         string
	price        sharedkernel.Money
	productType  ProductType
	snapshotDate *time.Time
}

func NewProductData(
	productID published.ID,
	name string,
	price sharedkernel.Money,
	productType ProductType,
	snapshotDate *time.Time,
) (ProductData, error) {
	if productID.IsZero() {
		return ProductData{}, ErrMissingProductID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ProductData{}, ErrEmptyProductName
	}
	if len(name) > MaxProductNameLength {
		return ProductData{}, ErrProductNameTooLong
	}
	if price.Amount().IsNegative() {
		return ProductData{}, ErrNegativeProductCost
	}
	if !productType.IsValid() {
		return ProductData{}, ErrInvalidProductType
	}

	var snap *time.Time
	if snapshotDate != nil {
		t := *snapshotDate
		snap = &t
	}

	return ProductData{
		productID:    productID,
		name:         name,
		price:        price,
		productType:  productType,
		snapshotDate: snap,
	}, nil
}

func (p ProductData) ProductID() published.ID   { return p.productID }
func (p ProductData) Name() string              { return p.name }
func (p ProductData) Price() sharedkernel.Money { return p.price }
func (p ProductData) Type() ProductType         { return p.productType }

// SnapshotDate returns a copy; nil when the snapshot time is unknown.
func (p ProductData) SnapshotDate() *time.Time {
	if p.snapshotDate == nil {
		return nil
	}
	t := *p.snapshotDate
	return &t
}
