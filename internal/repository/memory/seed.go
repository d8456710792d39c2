package memory

import (
	"time"

	"github.com/avc/analytics-dashboard/internal/domain"
)

const day = 24 * time.Hour

type orderSeed struct {
	id, customer, location, member string
	status                         domain.OrderStatus
	date                           string
	amount                         float64
	age                            time.Duration
}

var orderSeeds = []orderSeed{
	{"ORD001", "David Craig", "Landing Page", "Machine Line Oakland", domain.OrderStatusCompleted, "Just now", 1250.0, 0},
	{"ORD002", "Andi Morrisom", "CRM Admin pages", "Larry San Francisco", domain.OrderStatusPending, "4 minutes ago", 890.5, 4 * time.Minute},
	{"ORD003", "Dave Gavin", "Client Project", "Boggart Avenue Grads", domain.OrderStatusCompleted, "1 hour ago", 2100.75, time.Hour},
	{"ORD004", "Georgina Night", "Admin Dashboard", "Restaurant Baton Rouge", domain.OrderStatusPending, "Yesterday", 675.25, day},
	{"ORD005", "Andi Lane", "App Landing Page", "Next Lane Growths", domain.OrderStatusCompleted, "Feb 2, 2023", 1450.0, -1},
	{"ORD006", "Sarah Johnson", "E-commerce Store", "Tech Solutions Inc", domain.OrderStatusCompleted, "2 hours ago", 3200.50, 2 * time.Hour},
	{"ORD007", "Michael Chen", "Mobile App", "Digital Innovations", domain.OrderStatusPending, "3 hours ago", 1850.75, 3 * time.Hour},
	{"ORD008", "Emily Rodriguez", "Web Portal", "Cloud Systems", domain.OrderStatusCompleted, "5 hours ago", 2750.25, 5 * time.Hour},
	{"ORD009", "James Wilson", "API Integration", "Data Flow Corp", domain.OrderStatusCancelled, "Yesterday", 1200.00, day},
	{"ORD010", "Lisa Thompson", "Dashboard", "Analytics Pro", domain.OrderStatusCompleted, "Yesterday", 2100.00, day},
	{"ORD011", "Robert Brown", "Payment Gateway", "FinTech Solutions", domain.OrderStatusPending, "2 days ago", 4500.00, 2 * day},
	{"ORD012", "Maria Garcia", "User Management", "Security First", domain.OrderStatusCompleted, "2 days ago", 1650.50, 2 * day},
	{"ORD013", "John Smith", "Inventory System", "Retail Tech", domain.OrderStatusPending, "3 days ago", 3200.75, 3 * day},
	{"ORD014", "Anna Davis", "Reporting Module", "Business Intelligence", domain.OrderStatusCompleted, "3 days ago", 2800.25, 3 * day},
	{"ORD015", "Chris Lee", "Notification Center", "Communication Hub", domain.OrderStatusCompleted, "4 days ago", 1950.00, 4 * day},
	{"ORD016", "Jennifer White", "Search Engine", "Search Solutions", domain.OrderStatusPending, "4 days ago", 2400.50, 4 * day},
	{"ORD017", "David Miller", "Content Management", "Content Pro", domain.OrderStatusCompleted, "5 days ago", 3100.75, 5 * day},
	{"ORD018", "Rachel Green", "Analytics Dashboard", "Data Insights", domain.OrderStatusCompleted, "5 days ago", 2750.00, 5 * day},
	{"ORD019", "Mark Taylor", "Authentication System", "Secure Access", domain.OrderStatusCancelled, "6 days ago", 1800.25, 6 * day},
	{"ORD020", "Susan Anderson", "File Storage", "Cloud Storage Co", domain.OrderStatusCompleted, "6 days ago", 2200.50, 6 * day},
	{"ORD021", "Kevin Martinez", "Email Service", "Communication Pro", domain.OrderStatusPending, "1 week ago", 1650.75, 7 * day},
	{"ORD022", "Amanda Clark", "Database Management", "Data Systems", domain.OrderStatusCompleted, "1 week ago", 4200.00, 7 * day},
	{"ORD023", "Brian Hall", "API Gateway", "Integration Solutions", domain.OrderStatusCompleted, "1 week ago", 3500.25, 7 * day},
	{"ORD024", "Nicole Young", "Testing Framework", "Quality Assurance", domain.OrderStatusPending, "1 week ago", 2100.50, 7 * day},
	{"ORD025", "Daniel King", "Monitoring System", "Performance Monitor", domain.OrderStatusCompleted, "2 weeks ago", 2800.75, 14 * day},
}

// SeedOrders возвращает начальный набор заказов относительно now
func SeedOrders(now time.Time) []domain.Order {
	orders := make([]domain.Order, 0, len(orderSeeds))
	for _, s := range orderSeeds {
		createdAt := now.Add(-s.age)
		if s.age < 0 {
			// Абсолютная дата
			createdAt = time.Date(2023, time.February, 2, 12, 0, 0, 0, time.UTC)
		}
		orders = append(orders, domain.Order{
			ID:        s.id,
			Customer:  s.customer,
			Location:  s.location,
			Member:    s.member,
			Status:    s.status,
			Date:      s.date,
			Amount:    s.amount,
			CreatedAt: createdAt,
		})
	}
	return orders
}

// SeedNotifications возвращает начальный набор уведомлений
func SeedNotifications(now time.Time) []domain.Notification {
	return []domain.Notification{
		{ID: "1", Type: domain.NotificationTypeBug, Message: "You have a bug that needs attention", Time: "9:00 AM", CreatedAt: now, UpdatedAt: now},
		{ID: "2", Type: domain.NotificationTypeUser, Message: "New user registered", Time: "8:45 AM", CreatedAt: now, UpdatedAt: now},
		{ID: "3", Type: domain.NotificationTypeBug, Message: "You have a bug that needs fixing", Time: "8:30 AM", CreatedAt: now, UpdatedAt: now},
		{ID: "4", Type: domain.NotificationTypeSubscription, Message: "Andi Lane subscribed to you", Time: "8:15 AM", IsRead: true, CreatedAt: now, UpdatedAt: now},
		{ID: "5", Type: domain.NotificationTypeData, Message: "Released a new version", Time: "8:00 AM", IsRead: true, CreatedAt: now, UpdatedAt: now},
	}
}
