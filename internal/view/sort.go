package view

import (
	"fmt"
	"strings"
	"sync"
)

// Direction представляет направление сортировки
type Direction int

const (
	Unsorted Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	}
	return ""
}

// MarshalText кодирует направление как "asc", "desc" или пустую строку
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDirection разбирает направление из строки "asc" или "desc"
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "":
		return Unsorted, nil
	case "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	}
	return Unsorted, fmt.Errorf("unknown sort direction %q", s)
}

// Sort представляет состояние сортировки по полю
type Sort[F ~string] struct {
	Field     F         `json:"field"`
	Direction Direction `json:"direction"`
}

// Active сообщает, задана ли сортировка
func (s Sort[F]) Active() bool {
	return s.Field != "" && s.Direction != Unsorted
}

// Toggle переключает сортировку по полю: asc, desc, без сортировки.
// Выбор другого поля всегда начинает с asc.
func (s Sort[F]) Toggle(field F) Sort[F] {
	if field != s.Field || s.Direction == Unsorted {
		return Sort[F]{Field: field, Direction: Ascending}
	}
	if s.Direction == Ascending {
		return Sort[F]{Field: field, Direction: Descending}
	}
	return Sort[F]{}
}

// Controls хранит состояние сортировки таблиц между запросами
type Controls struct {
	mu       sync.Mutex
	orders   Sort[OrderField]
	products Sort[ProductField]
}

// NewControls создает Controls без сортировки
func NewControls() *Controls {
	return &Controls{}
}

// ToggleOrders переключает сортировку таблицы заказов
func (c *Controls) ToggleOrders(field OrderField) Sort[OrderField] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orders = c.orders.Toggle(field)
	return c.orders
}

// ToggleProducts переключает сортировку таблицы товаров
func (c *Controls) ToggleProducts(field ProductField) Sort[ProductField] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = c.products.Toggle(field)
	return c.products
}

// Orders возвращает текущую сортировку заказов
func (c *Controls) Orders() Sort[OrderField] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orders
}

// Products возвращает текущую сортировку товаров
func (c *Controls) Products() Sort[ProductField] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.products
}
