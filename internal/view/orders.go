package view

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/avc/analytics-dashboard/internal/domain"
	"golang.org/x/text/cases"
)

// OrderField представляет поле сортировки заказов
type OrderField string

const (
	OrderFieldID       OrderField = "id"
	OrderFieldCustomer OrderField = "customer"
	OrderFieldLocation OrderField = "location"
	OrderFieldMember   OrderField = "member"
	OrderFieldStatus   OrderField = "status"
	OrderFieldDate     OrderField = "date"
	OrderFieldAmount   OrderField = "amount"
)

// ParseOrderField проверяет имя поля сортировки заказов
func ParseOrderField(s string) (OrderField, error) {
	switch f := OrderField(s); f {
	case OrderFieldID, OrderFieldCustomer, OrderFieldLocation, OrderFieldMember,
		OrderFieldStatus, OrderFieldDate, OrderFieldAmount:
		return f, nil
	}
	return "", fmt.Errorf("unknown order field %q", s)
}

// OrderQuery содержит параметры отображения таблицы заказов
type OrderQuery struct {
	LocalTerm  string
	GlobalTerm string
	Sort       Sort[OrderField]
}

// term возвращает локальный запрос, если он задан, иначе глобальный
func (q OrderQuery) term() string {
	if q.LocalTerm != "" {
		return q.LocalTerm
	}
	return q.GlobalTerm
}

// Orders фильтрует и сортирует загруженную страницу заказов.
// Входной срез не изменяется.
func Orders(orders []domain.Order, q OrderQuery) []domain.Order {
	fold := cases.Fold()
	term := fold.String(q.term())

	result := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if term == "" || matchesOrder(fold, o, term) {
			result = append(result, o)
		}
	}

	if q.Sort.Active() {
		compare := orderComparator(fold, q.Sort.Field)
		if q.Sort.Direction == Descending {
			asc := compare
			compare = func(a, b domain.Order) int { return asc(b, a) }
		}
		slices.SortStableFunc(result, compare)
	}

	return result
}

func matchesOrder(fold cases.Caser, o domain.Order, term string) bool {
	for _, field := range []string{o.ID, o.Customer, o.Location, o.Member} {
		if strings.Contains(fold.String(field), term) {
			return true
		}
	}
	return false
}

func orderComparator(fold cases.Caser, field OrderField) func(a, b domain.Order) int {
	switch field {
	case OrderFieldAmount:
		return func(a, b domain.Order) int { return cmp.Compare(a.Amount, b.Amount) }
	case OrderFieldDate:
		return func(a, b domain.Order) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}

	value := func(o domain.Order) string {
		switch field {
		case OrderFieldCustomer:
			return o.Customer
		case OrderFieldLocation:
			return o.Location
		case OrderFieldMember:
			return o.Member
		case OrderFieldStatus:
			return string(o.Status)
		}
		return o.ID
	}
	return func(a, b domain.Order) int {
		return strings.Compare(fold.String(value(a)), fold.String(value(b)))
	}
}
