// Package catalog holds the fixed product inventory the promotion wizard
// selects from. The inventory is static application data, not user state,
// so it lives in code rather than in the key-value store.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/avillega/petstore-admin/internal/models"
)

// Product is a purchasable item a promotion can apply to.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category models.Category `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// products is the full inventory, three per category.
var products = []Product{
	{ID: "1", Name: "Croquetas Premium Perro", Category: models.CategoryAlimento, Price: price("25.99")},
	{ID: "2", Name: "Alimento Húmedo Gato", Category: models.CategoryAlimento, Price: price("18.50")},
	{ID: "3", Name: "Snacks Naturales", Category: models.CategoryAlimento, Price: price("12.75")},
	{ID: "4", Name: "Pelota Interactiva", Category: models.CategoryJuguetes, Price: price("15.99")},
	{ID: "5", Name: "Ratón de Cuerda", Category: models.CategoryJuguetes, Price: price("8.99")},
	{ID: "6", Name: "Hueso de Goma", Category: models.CategoryJuguetes, Price: price("10.50")},
	{ID: "7", Name: "Shampoo Antipulgas", Category: models.CategoryCuidado, Price: price("14.25")},
	{ID: "8", Name: "Cepillo Deslanador", Category: models.CategoryCuidado, Price: price("19.99")},
	{ID: "9", Name: "Cortaúñas Profesional", Category: models.CategoryCuidado, Price: price("11.80")},
	{ID: "10", Name: "Collar Ajustable", Category: models.CategoryAccesorios, Price: price("13.45")},
	{ID: "11", Name: "Cama Acolchada", Category: models.CategoryAccesorios, Price: price("45.00")},
	{ID: "12", Name: "Transportadora Mediana", Category: models.CategoryAccesorios, Price: price("52.90")},
}

// All returns the full inventory in catalog order.
func All() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// ByCategory returns the products belonging to the given category, in
// catalog order. An unknown category yields an empty list.
func ByCategory(c models.Category) []Product {
	out := []Product{}
	for _, p := range products {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

// IDsFor returns the product ids belonging to the given category. The
// wizard uses this to restrict the selectable products.
func IDsFor(c models.Category) map[string]bool {
	out := make(map[string]bool)
	for _, p := range products {
		if p.Category == c {
			out[p.ID] = true
		}
	}
	return out
}
