package service

import (
	"context"
	"errors"

	"github.com/slooze/foodorder/internal/apperr"
	"github.com/slooze/foodorder/internal/authz"
	"github.com/slooze/foodorder/internal/models"
	"github.com/slooze/foodorder/internal/storage"
)

// OrderService owns the order lifecycle: creation with snapshot pricing,
// country-scoped listing, cancellation and payment-method updates.
type OrderService struct {
	storage storage.Storage
}

func NewOrderService(storage storage.Storage) *OrderService {
	return &OrderService{
		storage: storage,
	}
}

// Create validates the request against the actor's role and country, snapshots
// menu prices into the order lines and persists the order atomically.
func (s *OrderService) Create(ctx context.Context, actor authz.Context, req models.CreateOrderRequest) (*models.OrderDTO, error) {
	if len(req.Items) == 0 {
		return nil, apperr.New(apperr.KindInvalidRequest, "Order must contain at least one item")
	}

	user, err := s.storage.GetUserByUsername(ctx, actor.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "User not found")
		}
		return nil, err
	}

	restaurant, err := s.storage.GetRestaurant(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, storage.ErrRestaurantNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Restaurant not found")
		}
		return nil, err
	}

	if !authz.CanCreateOrder(actor.Role) {
		return nil, apperr.New(apperr.KindAccessDenied, "Access denied: Only ADMIN or MANAGER can create orders")
	}
	if !authz.IsSameTenant(actor.Role, actor.CountryID, restaurant.CountryID) {
		return nil, apperr.New(apperr.KindAccessDenied, "Access denied: Cannot order from restaurants in other countries")
	}

	order := &models.Order{
		UserID:        user.ID,
		RestaurantID:  restaurant.ID,
		Status:        models.OrderStatusPending,
		PaymentMethod: req.PaymentMethod,
	}

	total := 0.0
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, apperr.New(apperr.KindInvalidRequest, "Quantity must be greater than zero")
		}

		menuItem, err := s.storage.GetMenuItem(ctx, line.MenuItemID)
		if err != nil {
			if errors.Is(err, storage.ErrMenuItemNotFound) {
				return nil, apperr.New(apperr.KindNotFound, "Menu item not found")
			}
			return nil, err
		}

		if menuItem.RestaurantID != restaurant.ID {
			return nil, apperr.New(apperr.KindInvalidRequest, "Menu item does not belong to the selected restaurant")
		}
		if !menuItem.IsAvailable {
			return nil, apperr.New(apperr.KindInvalidRequest, "Menu item is not available")
		}

		order.Items = append(order.Items, models.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   line.Quantity,
			Price:      menuItem.Price,
		})
		total += menuItem.Price * float64(line.Quantity)
	}
	order.TotalAmount = total

	if err := s.storage.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	return s.toDTO(ctx, order, user, restaurant)
}

// ListMine returns the actor's own orders. Non-ADMIN listings are filtered to
// the actor's country; orders outside it are dropped silently, not rejected,
// since they already belong to the same user.
func (s *OrderService) ListMine(ctx context.Context, actor authz.Context) ([]models.OrderDTO, error) {
	user, err := s.storage.GetUserByUsername(ctx, actor.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "User not found")
		}
		return nil, err
	}

	orders, err := s.storage.ListOrdersByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	dtos := make([]models.OrderDTO, 0, len(orders))
	for i := range orders {
		restaurant, err := s.storage.GetRestaurant(ctx, orders[i].RestaurantID)
		if err != nil {
			return nil, err
		}

		if !actor.IsAdmin() && !authz.IsSameTenant(actor.Role, actor.CountryID, restaurant.CountryID) {
			continue
		}

		dto, err := s.toDTO(ctx, &orders[i], user, restaurant)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *dto)
	}
	return dtos, nil
}

// Cancel transitions a PENDING order to CANCELLED. CANCELLED is terminal: the
// storage compare-and-set guarantees only one of two racing cancels wins.
func (s *OrderService) Cancel(ctx context.Context, actor authz.Context, orderID int) (*models.OrderDTO, error) {
	if !authz.CanCancelOrder(actor.Role) {
		return nil, apperr.New(apperr.KindAccessDenied, "Access denied: Only ADMIN or MANAGER can cancel orders")
	}

	order, err := s.storage.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Order not found")
		}
		return nil, err
	}

	owner, err := s.orderOwner(ctx, order)
	if err != nil {
		return nil, err
	}

	restaurant, err := s.storage.GetRestaurant(ctx, order.RestaurantID)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() {
		if owner.Username != actor.Username {
			return nil, apperr.New(apperr.KindAccessDenied, "Access denied: Not your order")
		}
		if !authz.IsSameTenant(actor.Role, actor.CountryID, restaurant.CountryID) {
			return nil, apperr.New(apperr.KindAccessDenied, "Access denied: Order not in your country")
		}
	}

	if order.Status != models.OrderStatusPending {
		return nil, apperr.Errorf(apperr.KindInvalidState, "Cannot cancel order with status: %s", order.Status)
	}

	err = s.storage.TransitionOrderStatus(ctx, order.ID, models.OrderStatusPending, models.OrderStatusCancelled)
	if err != nil {
		if errors.Is(err, storage.ErrOrderStatusConflict) {
			// Lost the race: re-read for the terminal status.
			current, rerr := s.storage.GetOrder(ctx, order.ID)
			if rerr != nil {
				return nil, rerr
			}
			return nil, apperr.Errorf(apperr.KindInvalidState, "Cannot cancel order with status: %s", current.Status)
		}
		return nil, err
	}

	updated, err := s.storage.GetOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return s.toDTO(ctx, updated, owner, restaurant)
}

// UpdatePaymentMethod overwrites the order's payment method. Role enforcement
// (ADMIN only) happens at the route boundary; there is no tenant check because
// ADMIN is global.
func (s *OrderService) UpdatePaymentMethod(ctx context.Context, orderID int, paymentMethod string) (*models.OrderDTO, error) {
	order, err := s.storage.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Order not found")
		}
		return nil, err
	}

	if err := s.storage.UpdateOrderPaymentMethod(ctx, order.ID, paymentMethod); err != nil {
		return nil, err
	}

	updated, err := s.storage.GetOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	owner, err := s.orderOwner(ctx, updated)
	if err != nil {
		return nil, err
	}
	restaurant, err := s.storage.GetRestaurant(ctx, updated.RestaurantID)
	if err != nil {
		return nil, err
	}
	return s.toDTO(ctx, updated, owner, restaurant)
}

func (s *OrderService) orderOwner(ctx context.Context, order *models.Order) (*models.User, error) {
	owner, err := s.storage.GetUserByID(ctx, order.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "User not found")
		}
		return nil, err
	}
	return owner, nil
}

func (s *OrderService) toDTO(ctx context.Context, order *models.Order, user *models.User, restaurant *models.Restaurant) (*models.OrderDTO, error) {
	dto := &models.OrderDTO{
		ID:             order.ID,
		UserID:         user.ID,
		Username:       user.Username,
		RestaurantID:   restaurant.ID,
		RestaurantName: restaurant.Name,
		TotalAmount:    order.TotalAmount,
		Status:         order.Status,
		PaymentMethod:  order.PaymentMethod,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
		OrderItems:     make([]models.OrderItemDTO, 0, len(order.Items)),
	}

	for _, item := range order.Items {
		name := ""
		if menuItem, err := s.storage.GetMenuItem(ctx, item.MenuItemID); err == nil {
			name = menuItem.Name
		}
		dto.OrderItems = append(dto.OrderItems, models.OrderItemDTO{
			ID:           item.ID,
			MenuItemID:   item.MenuItemID,
			MenuItemName: name,
			Quantity:     item.Quantity,
			Price:        item.Price,
		})
	}

	return dto, nil
}
