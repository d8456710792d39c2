package view

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/avc/analytics-dashboard/internal/domain"
	"golang.org/x/text/cases"
)

// ProductField представляет поле сортировки товаров
type ProductField string

const (
	ProductFieldName     ProductField = "name"
	ProductFieldPrice    ProductField = "price"
	ProductFieldQuantity ProductField = "quantity"
	ProductFieldRevenue  ProductField = "revenue"
)

// ParseProductField проверяет имя поля сортировки товаров
func ParseProductField(s string) (ProductField, error) {
	switch f := ProductField(s); f {
	case ProductFieldName, ProductFieldPrice, ProductFieldQuantity, ProductFieldRevenue:
		return f, nil
	}
	return "", fmt.Errorf("unknown product field %q", s)
}

// ProductQuery содержит параметры отображения таблицы товаров.
// Товары фильтруются только глобальным запросом.
type ProductQuery struct {
	GlobalTerm string
	Sort       Sort[ProductField]
}

// Products фильтрует товары по названию и сортирует их
func Products(products []domain.Product, q ProductQuery) []domain.Product {
	fold := cases.Fold()
	term := fold.String(q.GlobalTerm)

	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if term == "" || strings.Contains(fold.String(p.Name), term) {
			result = append(result, p)
		}
	}

	if q.Sort.Active() {
		var compare func(a, b domain.Product) int
		switch q.Sort.Field {
		case ProductFieldPrice:
			compare = func(a, b domain.Product) int { return cmp.Compare(a.Price, b.Price) }
		case ProductFieldQuantity:
			compare = func(a, b domain.Product) int { return cmp.Compare(a.Quantity, b.Quantity) }
		case ProductFieldRevenue:
			compare = func(a, b domain.Product) int { return cmp.Compare(a.Revenue, b.Revenue) }
		default:
			compare = func(a, b domain.Product) int {
				return strings.Compare(fold.String(a.Name), fold.String(b.Name))
			}
		}
		if q.Sort.Direction == Descending {
			asc := compare
			compare = func(a, b domain.Product) int { return asc(b, a) }
		}
		slices.SortStableFunc(result, compare)
	}

	return result
}
