package mockapi

import (
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/avc/analytics-dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

// roundCents округляет денежное значение до центов
func roundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// roundTenth округляет процент до десятых
func roundTenth(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

// Dashboard генерирует данные дашборда
type Dashboard struct {
	mu   sync.Mutex
	rnd  *rand.Rand
	data domain.DashboardData
}

type productSeed struct {
	id, name                 string
	quantityBase, quantitySp int
	revenueBase, revenueSp   float64
}

var productSeeds = []productSeed{
	{"1", "ASUS Rolex-high Wrist", 60, 50, 2500, 1000},
	{"2", "Marco Lightweight Shirt", 25, 30, 2200, 800},
	{"3", "Half Sleeve Shirt", 50, 40, 1800, 600},
	{"4", "Lightweight Jacket", 150, 100, 1200, 500},
	{"5", "Marco Shoes", 50, 40, 1500, 600},
}

// NewDashboard создает генератор и формирует начальный снимок
func NewDashboard(rnd *rand.Rand) *Dashboard {
	d := &Dashboard{rnd: rnd}
	d.data = d.generate()
	return d
}

func (d *Dashboard) generate() domain.DashboardData {
	r := d.rnd

	data := domain.DashboardData{
		Metrics: domain.Metrics{
			Customers: float64(r.IntN(1000) + 3500),
			Orders:    float64(r.IntN(500) + 1000),
			Revenue:   float64(r.IntN(200) + 600),
			Growth:    roundTenth(r.Float64()*40 + 10),
		},
	}

	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	for i, month := range months {
		projected := float64(400 + 50*i)
		data.ChartData = append(data.ChartData, domain.ChartPoint{
			Period:    month,
			Projected: projected,
			Actual:    float64(r.IntN(100)) + projected - 50,
		})
	}

	for _, p := range productSeeds {
		data.TopProducts = append(data.TopProducts, domain.Product{
			ID:       p.id,
			Name:     p.name,
			Quantity: r.IntN(p.quantitySp) + p.quantityBase,
			Revenue:  roundCents(r.Float64()*p.revenueSp + p.revenueBase),
			Price:    roundCents(r.Float64()*100 + 50),
		})
	}

	data.RevenueByLocation = []domain.LocationRevenue{
		{Location: "New York", Percentage: float64(r.IntN(10) + 35)},
		{Location: "San Francisco", Percentage: float64(r.IntN(10) + 25)},
		{Location: "Sydney", Percentage: float64(r.IntN(8) + 18)},
		{Location: "Singapore", Percentage: float64(r.IntN(6) + 8)},
	}

	return data
}

// Overview возвращает текущий снимок дашборда
func (d *Dashboard) Overview() domain.DashboardData {
	d.mu.Lock()
	defer d.mu.Unlock()

	data := d.data
	data.ChartData = slices.Clone(d.data.ChartData)
	data.TopProducts = slices.Clone(d.data.TopProducts)
	data.RevenueByLocation = slices.Clone(d.data.RevenueByLocation)
	return data
}

// Metrics возвращает текущие метрики
func (d *Dashboard) Metrics() domain.Metrics {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.data.Metrics
}

// Refresh увеличивает метрики и заново выбирает рост
func (d *Dashboard) Refresh() domain.Metrics {
	d.mu.Lock()
	defer d.mu.Unlock()

	m := &d.data.Metrics
	m.Customers += float64(d.rnd.IntN(10))
	m.Orders += float64(d.rnd.IntN(5))
	m.Revenue = roundCents(m.Revenue + d.rnd.Float64()*20)
	m.Growth = roundTenth(d.rnd.Float64()*40 + 10)
	return *m
}
