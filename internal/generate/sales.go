package generate

import (
	"datasynth/internal/dataset"
)

var (
	products = []string{
		"Laptop", "Mouse", "Keyboard", "Monitor", "Headphones",
		"Webcam", "Speaker", "Phone", "Tablet", "Charger",
	}
	categories     = []string{"Electronics", "Accessories", "Computing", "Mobile"}
	paymentMethods = []string{"Credit Card", "Debit Card", "PayPal", "Cash"}
	regions        = []string{"North", "South", "East", "West", "Central"}
	discounts      = []int{0, 5, 10, 15, 20}
)

// salesTable builds purchase transactions with a derived total so the
// amount always matches quantity times unit price.
func (g *Generator) salesTable(count int) *dataset.Table {
	t := dataset.New("sales",
		"transaction_id", "customer_id", "product_name", "category",
		"quantity", "unit_price", "total_amount", "discount_percent",
		"payment_method", "transaction_date", "sales_rep", "region")

	now := g.anchor
	for i := 0; i < count; i++ {
		quantity := 1 + g.rng.Intn(5)
		unitPrice := round2f(10 + g.rng.Float64()*1990)
		t.Append(
			g.uuid(),
			g.uuid(),
			g.pick(products),
			g.pick(categories),
			quantity,
			unitPrice,
			round2f(float64(quantity)*unitPrice),
			discounts[g.rng.Intn(len(discounts))],
			g.pick(paymentMethods),
			g.fake.DateRange(now.AddDate(-1, 0, 0), now),
			g.fake.Name(),
			g.pick(regions),
		)
	}
	return t
}
