//go:build unit || e2e

// Package taxstub serves the tax service contract from a fixed rate table.
package taxstub

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Rates by product type. Types missing here answer 422.
var Rates = map[string]struct {
	Rate        decimal.Decimal
	Description string
}{
	"STANDARD": {Rate: decimal.RequireFromString("0.23"), Description: "VAT 23%"},
	"FOOD":     {Rate: decimal.RequireFromString("0.08"), Description: "VAT 8%"},
}

type calculateRequest struct {
	ProductType string `json:"product_type" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Currency    string `json:"currency" binding:"required,len=3"`
}

func NewServer() *httptest.Server {
	r := gin.New()
	r.POST("/api/tax/calculate", calculate)
	return httptest.NewServer(r)
}

func calculate(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rate, ok := Rates[req.ProductType]
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unsupported product type"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"amount":      amount.Mul(rate.Rate).Round(2).String(),
		"currency":    req.Currency,
		"description": rate.Description,
	})
}
