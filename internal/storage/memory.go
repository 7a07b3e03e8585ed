package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/slooze/foodorder/internal/models"
)

// MemoryStorage is a mutex-guarded map-backed Storage used in tests and local
// runs without a database.
type MemoryStorage struct {
	mu          sync.Mutex
	users       map[int]*models.User
	countries   map[int]*models.Country
	restaurants map[int]*models.Restaurant
	menuItems   map[int]*models.MenuItem
	orders      map[int]*models.Order
	nextID      map[string]int
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:       make(map[int]*models.User),
		countries:   make(map[int]*models.Country),
		restaurants: make(map[int]*models.Restaurant),
		menuItems:   make(map[int]*models.MenuItem),
		orders:      make(map[int]*models.Order),
		nextID:      make(map[string]int),
	}
}

func (s *MemoryStorage) nextIDFor(entity string) int {
	s.nextID[entity]++
	return s.nextID[entity]
}

func (s *MemoryStorage) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == 0 {
		user.ID = s.nextIDFor("user")
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *MemoryStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStorage) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *MemoryStorage) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *MemoryStorage) UpdateUserPassword(ctx context.Context, userID int, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	user.Password = passwordHash
	return nil
}

func (s *MemoryStorage) CreateCountry(ctx context.Context, country *models.Country) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if country.ID == 0 {
		country.ID = s.nextIDFor("country")
	}
	copied := *country
	s.countries[country.ID] = &copied
	return nil
}

func (s *MemoryStorage) GetCountry(ctx context.Context, id int) (*models.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	country, ok := s.countries[id]
	if !ok {
		return nil, ErrCountryNotFound
	}
	copied := *country
	return &copied, nil
}

func (s *MemoryStorage) CreateRestaurant(ctx context.Context, restaurant *models.Restaurant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if restaurant.ID == 0 {
		restaurant.ID = s.nextIDFor("restaurant")
	}
	copied := *restaurant
	s.restaurants[restaurant.ID] = &copied
	return nil
}

func (s *MemoryStorage) GetRestaurant(ctx context.Context, id int) (*models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	restaurant, ok := s.restaurants[id]
	if !ok {
		return nil, ErrRestaurantNotFound
	}
	copied := *restaurant
	return &copied, nil
}

func (s *MemoryStorage) ListActiveRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	restaurants := make([]models.Restaurant, 0)
	for _, r := range s.restaurants {
		if r.IsActive {
			restaurants = append(restaurants, *r)
		}
	}
	sort.Slice(restaurants, func(i, j int) bool { return restaurants[i].ID < restaurants[j].ID })
	return restaurants, nil
}

func (s *MemoryStorage) ListActiveRestaurantsByCountry(ctx context.Context, countryID int) ([]models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	restaurants := make([]models.Restaurant, 0)
	for _, r := range s.restaurants {
		if r.IsActive && r.CountryID == countryID {
			restaurants = append(restaurants, *r)
		}
	}
	sort.Slice(restaurants, func(i, j int) bool { return restaurants[i].ID < restaurants[j].ID })
	return restaurants, nil
}

func (s *MemoryStorage) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == 0 {
		item.ID = s.nextIDFor("menu_item")
	}
	copied := *item
	s.menuItems[item.ID] = &copied
	return nil
}

func (s *MemoryStorage) GetMenuItem(ctx context.Context, id int) (*models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.menuItems[id]
	if !ok {
		return nil, ErrMenuItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (s *MemoryStorage) UpdateMenuItem(ctx context.Context, item *models.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.menuItems[item.ID]; !ok {
		return ErrMenuItemNotFound
	}
	copied := *item
	s.menuItems[item.ID] = &copied
	return nil
}

func (s *MemoryStorage) ListAvailableMenuItems(ctx context.Context, restaurantID int) ([]models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.MenuItem, 0)
	for _, item := range s.menuItems {
		if item.RestaurantID == restaurantID && item.IsAvailable {
			items = append(items, *item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *MemoryStorage) CreateOrder(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.ID == 0 {
		order.ID = s.nextIDFor("order")
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	for i := range order.Items {
		order.Items[i].ID = s.nextIDFor("order_item")
		order.Items[i].OrderID = order.ID
	}
	copied := *order
	copied.Items = append([]models.OrderItem(nil), order.Items...)
	s.orders[order.ID] = &copied
	return nil
}

func (s *MemoryStorage) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	copied := *order
	copied.Items = append([]models.OrderItem(nil), order.Items...)
	return &copied, nil
}

func (s *MemoryStorage) ListOrdersByUser(ctx context.Context, userID int) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]models.Order, 0)
	for _, order := range s.orders {
		if order.UserID == userID {
			copied := *order
			copied.Items = append([]models.OrderItem(nil), order.Items...)
			orders = append(orders, copied)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (s *MemoryStorage) TransitionOrderStatus(ctx context.Context, orderID int, from, to models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}
	if order.Status != from {
		return ErrOrderStatusConflict
	}
	order.Status = to
	order.UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStorage) UpdateOrderPaymentMethod(ctx context.Context, orderID int, paymentMethod string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}
	order.PaymentMethod = paymentMethod
	order.UpdatedAt = time.Now()
	return nil
}
