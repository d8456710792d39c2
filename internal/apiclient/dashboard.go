package apiclient

import (
	"context"
	"net/http"

	"github.com/avc/analytics-dashboard/internal/domain"
)

// GetDashboardData возвращает полный снимок дашборда
func (c *Client) GetDashboardData(ctx context.Context) (*domain.DashboardData, error) {
	var data domain.DashboardData
	if err := c.do(ctx, http.MethodGet, "/dashboard/overview", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetMetrics возвращает текущие метрики
func (c *Client) GetMetrics(ctx context.Context) (*domain.Metrics, error) {
	var metrics domain.Metrics
	if err := c.do(ctx, http.MethodGet, "/dashboard/metrics", nil, &metrics); err != nil {
		return nil, err
	}
	return &metrics, nil
}

// RefreshMetrics запрашивает обновление метрик
func (c *Client) RefreshMetrics(ctx context.Context) (*domain.Metrics, error) {
	var metrics domain.Metrics
	if err := c.do(ctx, http.MethodPost, "/dashboard/refresh-metrics", nil, &metrics); err != nil {
		return nil, err
	}
	return &metrics, nil
}
