package store

import (
	"slices"
	"time"

	"github.com/avc/analytics-dashboard/internal/domain"
)

// DashboardState содержит метрики и данные графиков дашборда
type DashboardState struct {
	Metrics           domain.Metrics           `json:"metrics"`
	ChartData         []domain.ChartPoint      `json:"chartData"`
	TopProducts       []domain.Product         `json:"topProducts"`
	RevenueByLocation []domain.LocationRevenue `json:"revenueByLocation"`
	loadable
	LastUpdated *time.Time `json:"lastUpdated"`

	overviewRequest string
}

func initialDashboard() DashboardState {
	return DashboardState{
		Metrics: domain.Metrics{Customers: 3781, Orders: 1219, Revenue: 695, Growth: 30.1},
		ChartData: []domain.ChartPoint{
			{Period: "Jan", Projected: 400, Actual: 380},
			{Period: "Feb", Projected: 450, Actual: 420},
			{Period: "Mar", Projected: 500, Actual: 480},
			{Period: "Apr", Projected: 550, Actual: 520},
			{Period: "May", Projected: 600, Actual: 580},
			{Period: "Jun", Projected: 650, Actual: 620},
		},
		TopProducts: []domain.Product{
			{ID: "1", Name: "ASUS Rolex-high Wrist", Price: 38.51, Quantity: 82, Revenue: 3158.18},
			{ID: "2", Name: "Marco Lightweight Shirt", Price: 74.21, Quantity: 37, Revenue: 2745.95},
			{ID: "3", Name: "Half Sleeve Shirt", Price: 33.68, Quantity: 64, Revenue: 2155.48},
			{ID: "4", Name: "Lightweight Jacket", Price: 8.04, Quantity: 184, Revenue: 1480.0},
			{ID: "5", Name: "Marco Shoes", Price: 27.63, Quantity: 64, Revenue: 1768.57},
		},
		RevenueByLocation: []domain.LocationRevenue{
			{Location: "New York", Percentage: 40},
			{Location: "San Francisco", Percentage: 30},
			{Location: "Sydney", Percentage: 20},
			{Location: "Singapore", Percentage: 10},
		},
	}
}

func (d DashboardState) clone() DashboardState {
	d.ChartData = slices.Clone(d.ChartData)
	d.TopProducts = slices.Clone(d.TopProducts)
	d.RevenueByLocation = slices.Clone(d.RevenueByLocation)
	if d.LastUpdated != nil {
		ts := *d.LastUpdated
		d.LastUpdated = &ts
	}
	return d
}

// FetchDashboardData загружает полный снимок дашборда
type FetchDashboardData struct {
	Outcome Outcome[domain.DashboardData]
}

func (a FetchDashboardData) Type() string { return "dashboard/fetchDashboardData/" + a.Outcome.Phase.String() }

func (a FetchDashboardData) apply(s *State, now time.Time) {
	d := &s.Dashboard
	o := a.Outcome
	switch o.Phase {
	case PhasePending:
		if o.RequestID != "" {
			d.overviewRequest = o.RequestID
		}
		d.begin()
	case PhaseFulfilled:
		if stale(d.overviewRequest, o.RequestID) {
			return
		}
		d.succeed()
		d.Metrics = o.Value.Metrics
		d.ChartData = slices.Clone(o.Value.ChartData)
		d.TopProducts = slices.Clone(o.Value.TopProducts)
		d.RevenueByLocation = slices.Clone(o.Value.RevenueByLocation)
		d.LastUpdated = &now
	case PhaseRejected:
		if stale(d.overviewRequest, o.RequestID) {
			return
		}
		d.fail(o.Err)
	}
}

// FetchMetrics загружает текущие метрики
type FetchMetrics struct {
	Outcome Outcome[domain.Metrics]
}

func (a FetchMetrics) Type() string { return "dashboard/fetchMetrics/" + a.Outcome.Phase.String() }

func (a FetchMetrics) apply(s *State, now time.Time) {
	s.Dashboard.applyMetrics(a.Outcome, now)
}

// RefreshMetrics запрашивает обновленные метрики
type RefreshMetrics struct {
	Outcome Outcome[domain.Metrics]
}

func (a RefreshMetrics) Type() string { return "dashboard/refreshMetrics/" + a.Outcome.Phase.String() }

func (a RefreshMetrics) apply(s *State, now time.Time) {
	s.Dashboard.applyMetrics(a.Outcome, now)
}

func (d *DashboardState) applyMetrics(o Outcome[domain.Metrics], now time.Time) {
	switch o.Phase {
	case PhasePending:
		d.begin()
	case PhaseFulfilled:
		d.succeed()
		d.Metrics = o.Value
		d.LastUpdated = &now
	case PhaseRejected:
		d.fail(o.Err)
	}
}

// UpdateMetrics частично обновляет метрики без запроса
type UpdateMetrics struct {
	Patch domain.MetricsPatch
}

func (UpdateMetrics) Type() string { return "dashboard/updateMetrics" }

func (a UpdateMetrics) apply(s *State, _ time.Time) {
	m := &s.Dashboard.Metrics
	if a.Patch.Customers != nil {
		m.Customers = *a.Patch.Customers
	}
	if a.Patch.Orders != nil {
		m.Orders = *a.Patch.Orders
	}
	if a.Patch.Revenue != nil {
		m.Revenue = *a.Patch.Revenue
	}
	if a.Patch.Growth != nil {
		m.Growth = *a.Patch.Growth
	}
}

// SetDashboardLoading устанавливает флаг загрузки дашборда
type SetDashboardLoading struct {
	Loading bool
}

func (SetDashboardLoading) Type() string { return "dashboard/setLoading" }

func (a SetDashboardLoading) apply(s *State, _ time.Time) {
	s.Dashboard.IsLoading = a.Loading
}

// ClearDashboardError сбрасывает ошибку дашборда
type ClearDashboardError struct{}

func (ClearDashboardError) Type() string { return "dashboard/clearError" }

func (ClearDashboardError) apply(s *State, _ time.Time) {
	s.Dashboard.Error = ""
}
