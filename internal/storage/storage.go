package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/slooze/foodorder/internal/config"
	"github.com/slooze/foodorder/internal/models"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrCountryNotFound     = errors.New("country not found")
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderStatusConflict = errors.New("order status conflict")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

// Storage is the repository surface for all entities. Implementations hold no
// business logic; tenant and role checks live in the services.
type Storage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserPassword(ctx context.Context, userID int, passwordHash string) error

	CreateCountry(ctx context.Context, country *models.Country) error
	GetCountry(ctx context.Context, id int) (*models.Country, error)

	CreateRestaurant(ctx context.Context, restaurant *models.Restaurant) error
	GetRestaurant(ctx context.Context, id int) (*models.Restaurant, error)
	ListActiveRestaurants(ctx context.Context) ([]models.Restaurant, error)
	ListActiveRestaurantsByCountry(ctx context.Context, countryID int) ([]models.Restaurant, error)

	CreateMenuItem(ctx context.Context, item *models.MenuItem) error
	GetMenuItem(ctx context.Context, id int) (*models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *models.MenuItem) error
	ListAvailableMenuItems(ctx context.Context, restaurantID int) ([]models.MenuItem, error)

	// CreateOrder persists the order and its items atomically: either all of
	// them become durable or none do.
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrder(ctx context.Context, id int) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID int) ([]models.Order, error)
	// TransitionOrderStatus is a compare-and-set on the order status. It
	// returns ErrOrderStatusConflict when the current status is not `from`,
	// which serializes concurrent transitions on the same order.
	TransitionOrderStatus(ctx context.Context, orderID int, from, to models.OrderStatus) error
	UpdateOrderPaymentMethod(ctx context.Context, orderID int, paymentMethod string) error
}

func BuildDSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)
}
