package service

import (
	"github.com/freshmart-next/internal/models"

	"github.com/shopspring/decimal"
)

// CartLineView is one line of a cart snapshot.
type CartLineView struct {
	Product  string       `json:"product"`
	Price    models.Money `json:"price"`
	Quantity int          `json:"quantity"`
}

// CartSnapshot is the derived aggregate view of a cart. It is recomputed on
// every read and never persisted.
type CartSnapshot struct {
	TotalProducts int            `json:"total_products"`
	TotalPrice    models.Money   `json:"total_price"`
	Products      []CartLineView `json:"products"`
}

type cartPair struct {
	Product  *models.Product
	Quantity int
}

// buildSnapshot computes the aggregate for an ordered sequence of
// (product, quantity) pairs: line count, Σ price×quantity in exact decimal
// arithmetic, and per-line detail preserving input order.
func buildSnapshot(pairs []cartPair) *CartSnapshot {
	total := decimal.Zero
	views := make([]CartLineView, 0, len(pairs))
	for _, pair := range pairs {
		lineTotal := pair.Product.Price.Decimal.Mul(decimal.NewFromInt(int64(pair.Quantity)))
		total = total.Add(lineTotal)
		views = append(views, CartLineView{
			Product:  pair.Product.Name,
			Price:    pair.Product.Price,
			Quantity: pair.Quantity,
		})
	}
	return &CartSnapshot{
		TotalProducts: len(pairs),
		TotalPrice:    models.NewMoneyFromDecimal(total),
		Products:      views,
	}
}
