package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/avc/analytics-dashboard/internal/domain"
)

// GetOrders возвращает страницу заказов
func (c *Client) GetOrders(ctx context.Context, page, limit int) (*domain.OrdersPage, error) {
	path := fmt.Sprintf("/orders?page=%d&limit=%d", page, limit)

	var result domain.OrdersPage
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetOrder возвращает заказ по ID
func (c *Client) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder создает заказ
func (c *Client) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodPost, "/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrder частично обновляет заказ
func (c *Client) UpdateOrder(ctx context.Context, id string, req domain.UpdateOrderRequest) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(id), req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus меняет статус заказа
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	body := struct {
		Status domain.OrderStatus `json:"status"`
	}{Status: status}

	var order domain.Order
	if err := c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(id)+"/status", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteOrder удаляет заказ
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/orders/"+url.PathEscape(id), nil, nil)
}

// GetOrderStats возвращает агрегированную статистику заказов
func (c *Client) GetOrderStats(ctx context.Context) (*domain.OrderStats, error) {
	var stats domain.OrderStats
	if err := c.do(ctx, http.MethodGet, "/orders/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
