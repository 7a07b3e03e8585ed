package storage

import (
	"context"
	"errors"

	"github.com/slooze/foodorder/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type PostgresStorage struct {
	db *gorm.DB
}

func NewPostgresStorage(dsn string) (*PostgresStorage, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Country{},
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return nil, err
	}

	return &PostgresStorage{db: db}, nil
}

func (s *PostgresStorage) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *PostgresStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *PostgresStorage) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *PostgresStorage) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *PostgresStorage) UpdateUserPassword(ctx context.Context, userID int, passwordHash string) error {
	return s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("password", passwordHash).Error
}

func (s *PostgresStorage) CreateCountry(ctx context.Context, country *models.Country) error {
	return s.db.WithContext(ctx).Create(country).Error
}

func (s *PostgresStorage) GetCountry(ctx context.Context, id int) (*models.Country, error) {
	var country models.Country
	if err := s.db.WithContext(ctx).First(&country, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCountryNotFound
		}
		return nil, err
	}
	return &country, nil
}

func (s *PostgresStorage) CreateRestaurant(ctx context.Context, restaurant *models.Restaurant) error {
	return s.db.WithContext(ctx).Create(restaurant).Error
}

func (s *PostgresStorage) GetRestaurant(ctx context.Context, id int) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

func (s *PostgresStorage) ListActiveRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *PostgresStorage) ListActiveRestaurantsByCountry(ctx context.Context, countryID int) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.WithContext(ctx).Where("country_id = ? AND is_active = ?", countryID, true).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *PostgresStorage) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *PostgresStorage) GetMenuItem(ctx context.Context, id int) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (s *PostgresStorage) UpdateMenuItem(ctx context.Context, item *models.MenuItem) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *PostgresStorage) ListAvailableMenuItems(ctx context.Context, restaurantID int) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.WithContext(ctx).Where("restaurant_id = ? AND is_available = ?", restaurantID, true).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *PostgresStorage) CreateOrder(ctx context.Context, order *models.Order) error {
	// gorm creates the associated items inside the same transaction, so the
	// order and its lines land together or not at all.
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (s *PostgresStorage) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *PostgresStorage) ListOrdersByUser(ctx context.Context, userID int) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).Preload("Items").Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *PostgresStorage) TransitionOrderStatus(ctx context.Context, orderID int, from, to models.OrderStatus) error {
	res := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", orderID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrOrderNotFound
		}
		return ErrOrderStatusConflict
	}
	return nil
}

func (s *PostgresStorage) UpdateOrderPaymentMethod(ctx context.Context, orderID int, paymentMethod string) error {
	res := s.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", orderID).Update("payment_method", paymentMethod)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
