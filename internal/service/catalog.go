package service

import (
	"context"
	"errors"

	"github.com/slooze/foodorder/internal/apperr"
	"github.com/slooze/foodorder/internal/authz"
	"github.com/slooze/foodorder/internal/models"
	"github.com/slooze/foodorder/internal/storage"
)

// CatalogService serves the restaurant and menu-item read/write paths. All
// reads and writes are country-scoped for non-ADMIN actors.
type CatalogService struct {
	storage storage.Storage
}

func NewCatalogService(storage storage.Storage) *CatalogService {
	return &CatalogService{
		storage: storage,
	}
}

// ListRestaurants returns active restaurants: all of them for ADMIN, the
// actor's country only for everyone else.
func (s *CatalogService) ListRestaurants(ctx context.Context, actor authz.Context) ([]models.RestaurantDTO, error) {
	var restaurants []models.Restaurant
	var err error

	if actor.IsAdmin() {
		restaurants, err = s.storage.ListActiveRestaurants(ctx)
	} else {
		if actor.CountryID == nil {
			return nil, apperr.New(apperr.KindInvalidState, "Country not assigned to user")
		}
		restaurants, err = s.storage.ListActiveRestaurantsByCountry(ctx, *actor.CountryID)
	}
	if err != nil {
		return nil, err
	}

	dtos := make([]models.RestaurantDTO, 0, len(restaurants))
	for i := range restaurants {
		dto, err := s.restaurantDTO(ctx, &restaurants[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *dto)
	}
	return dtos, nil
}

func (s *CatalogService) GetRestaurant(ctx context.Context, actor authz.Context, id int) (*models.RestaurantDTO, error) {
	restaurant, err := s.storage.GetRestaurant(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrRestaurantNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Restaurant not found")
		}
		return nil, err
	}

	if !authz.IsSameTenant(actor.Role, actor.CountryID, restaurant.CountryID) {
		return nil, apperr.New(apperr.KindAccessDenied, "Access denied: Restaurant not in your country")
	}

	return s.restaurantDTO(ctx, restaurant)
}

// CreateRestaurant registers a new restaurant. The ADMIN-only gate sits at
// the route boundary. New restaurants are always active.
func (s *CatalogService) CreateRestaurant(ctx context.Context, req models.CreateRestaurantRequest) (*models.RestaurantDTO, error) {
	country, err := s.storage.GetCountry(ctx, req.CountryID)
	if err != nil {
		if errors.Is(err, storage.ErrCountryNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Country not found")
		}
		return nil, err
	}

	restaurant := &models.Restaurant{
		Name:        req.Name,
		Cuisine:     req.Cuisine,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		ImageURL:    req.ImageURL,
		CountryID:   country.ID,
		IsActive:    true,
	}

	if err := s.storage.CreateRestaurant(ctx, restaurant); err != nil {
		return nil, err
	}

	return s.restaurantDTO(ctx, restaurant)
}

// ListMenuItems returns the available items of a restaurant the actor may see.
func (s *CatalogService) ListMenuItems(ctx context.Context, actor authz.Context, restaurantID int) ([]models.MenuItemDTO, error) {
	restaurant, err := s.storage.GetRestaurant(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, storage.ErrRestaurantNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Restaurant not found")
		}
		return nil, err
	}

	if !authz.IsSameTenant(actor.Role, actor.CountryID, restaurant.CountryID) {
		return nil, apperr.New(apperr.KindAccessDenied, "Access denied: Restaurant not in your country")
	}

	items, err := s.storage.ListAvailableMenuItems(ctx, restaurant.ID)
	if err != nil {
		return nil, err
	}

	dtos := make([]models.MenuItemDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, menuItemDTO(&items[i], restaurant))
	}
	return dtos, nil
}

// CreateMenuItem adds an item to a restaurant in the actor's country. New
// items are always created available, whatever the draft says.
func (s *CatalogService) CreateMenuItem(ctx context.Context, actor authz.Context, restaurantID int, req models.CreateMenuItemRequest) (*models.MenuItemDTO, error) {
	if !authz.CanManageCatalog(actor.Role) {
		return nil, apperr.New(apperr.KindAccessDenied, "Access denied")
	}

	restaurant, err := s.storage.GetRestaurant(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, storage.ErrRestaurantNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Restaurant not found")
		}
		return nil, err
	}

	if !authz.IsSameTenant(actor.Role, actor.CountryID, restaurant.CountryID) {
		return nil, apperr.New(apperr.KindAccessDenied, "Access denied: Restaurant not in your country")
	}

	item := &models.MenuItem{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		RestaurantID: restaurant.ID,
		IsAvailable:  true,
		ImageURL:     req.ImageURL,
	}

	if err := s.storage.CreateMenuItem(ctx, item); err != nil {
		return nil, err
	}

	dto := menuItemDTO(item, restaurant)
	return &dto, nil
}

func (s *CatalogService) restaurantDTO(ctx context.Context, restaurant *models.Restaurant) (*models.RestaurantDTO, error) {
	country, err := s.storage.GetCountry(ctx, restaurant.CountryID)
	if err != nil {
		return nil, err
	}
	return &models.RestaurantDTO{
		ID:          restaurant.ID,
		Name:        restaurant.Name,
		Cuisine:     restaurant.Cuisine,
		Address:     restaurant.Address,
		PhoneNumber: restaurant.PhoneNumber,
		ImageURL:    restaurant.ImageURL,
		CountryID:   country.ID,
		CountryName: country.Name,
		IsActive:    restaurant.IsActive,
	}, nil
}

func menuItemDTO(item *models.MenuItem, restaurant *models.Restaurant) models.MenuItemDTO {
	return models.MenuItemDTO{
		ID:             item.ID,
		Name:           item.Name,
		Description:    item.Description,
		Price:          item.Price,
		Category:       item.Category,
		RestaurantID:   restaurant.ID,
		RestaurantName: restaurant.Name,
		IsAvailable:    item.IsAvailable,
		ImageURL:       item.ImageURL,
	}
}
