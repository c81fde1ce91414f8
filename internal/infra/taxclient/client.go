package taxclient

import (
	"context"
	"net/http"
	"time"

	"sales-invoicing/internal/domain/catalog"
	"sales-invoicing/internal/domain/invoicing"
	"sales-invoicing/internal/domain/sharedkernel"
	"sales-invoicing/internal/pkg/config"
	"sales-invoicing/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
)

const calculatePath = "/api/tax/calculate"

// ErrTaxService marks failures of the remote call itself. Match it with errs.Is.
var ErrTaxService = errs.New("tax service request failed")

type calculateRequest struct {
	ProductType string `json:"product_type"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
}

type calculateResponse struct {
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

// Client is an invoicing.TaxPolicy backed by the remote tax service.
type Client struct {
	http *resty.Client
}

var _ invoicing.TaxPolicy = (*Client)(nil)

func NewClient(cfg config.TaxServiceConfig) *Client {
	c := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(100 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})
	return &Client{http: c}
}

func (c *Client) CalculateTax(ctx context.Context, productType catalog.ProductType, amount sharedkernel.Money) (invoicing.Tax, error) {
	var out calculateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(calculateRequest{
			ProductType: productType.String(),
			Amount:      amount.Amount().String(),
			Currency:    amount.Currency().String(),
		}).
		SetResult(&out).
		Post(calculatePath)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return invoicing.Tax{}, errs.Wrap(ctxErr, "tax service call cancelled")
		}
		return invoicing.Tax{}, errs.Mark(errs.Wrap(err, "tax service unreachable"), ErrTaxService)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return toTax(out)
	case http.StatusUnprocessableEntity:
		return invoicing.Tax{}, errs.Mark(errs.New("tax service rejected product type "+productType.String()), invoicing.ErrUnsupportedProductType)
	default:
		return invoicing.Tax{}, errs.Mark(errs.New("tax service answered "+resp.Status()), ErrTaxService)
	}
}

// toTax marks every decoding failure as ErrTaxService while keeping the cause.
func toTax(out calculateResponse) (invoicing.Tax, error) {
	cur, err := sharedkernel.ParseCurrency(out.Currency)
	if err != nil {
		return invoicing.Tax{}, invalidResponse(err)
	}
	amount, err := sharedkernel.NewMoneyFromString(out.Amount, cur)
	if err != nil {
		return invoicing.Tax{}, invalidResponse(err)
	}
	tax, err := invoicing.NewTax(amount, out.Description)
	if err != nil {
		return invoicing.Tax{}, invalidResponse(err)
	}
	return tax, nil
}

func invalidResponse(err error) error {
	return errs.Mark(errs.Wrap(err, "invalid tax service response"), ErrTaxService)
}
