package service

import (
	"context"
	"testing"

	"github.com/slooze/foodorder/internal/apperr"
	"github.com/slooze/foodorder/internal/authz"
	"github.com/slooze/foodorder/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListRestaurants(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewCatalogService(f.store)

	// An inactive restaurant never shows up, for anyone.
	require.NoError(t, f.store.CreateRestaurant(ctx, &models.Restaurant{
		Name: "Closed Down", CountryID: 2, IsActive: false,
	}))

	t.Run("member_sees_own_country_only", func(t *testing.T) {
		restaurants, err := svc.ListRestaurants(ctx, f.member2)
		require.NoError(t, err)
		require.Len(t, restaurants, 1)
		assert.Equal(t, "Burger Barn", restaurants[0].Name)
		assert.Equal(t, 2, restaurants[0].CountryID)
		assert.Equal(t, "America", restaurants[0].CountryName)
	})

	t.Run("admin_sees_all_active", func(t *testing.T) {
		restaurants, err := svc.ListRestaurants(ctx, f.admin)
		require.NoError(t, err)
		assert.Len(t, restaurants, 2)
	})

	t.Run("no_country_assigned", func(t *testing.T) {
		orphan := authz.Context{Username: "orphan", Role: models.RoleMember}
		_, err := svc.ListRestaurants(ctx, orphan)
		require.Error(t, err)
		assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
		assert.EqualError(t, err, "Country not assigned to user")
	})
}

func TestCatalogService_GetRestaurant(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewCatalogService(f.store)

	t.Run("same_country", func(t *testing.T) {
		dto, err := svc.GetRestaurant(ctx, f.manager1, f.restaurant1.ID)
		require.NoError(t, err)
		assert.Equal(t, "Spice Route", dto.Name)
	})

	t.Run("cross_country_denied", func(t *testing.T) {
		_, err := svc.GetRestaurant(ctx, f.manager1, f.restaurant2.ID)
		require.Error(t, err)
		assert.Equal(t, apperr.KindAccessDenied, apperr.KindOf(err))
	})

	t.Run("admin_reads_anywhere", func(t *testing.T) {
		dto, err := svc.GetRestaurant(ctx, f.admin, f.restaurant2.ID)
		require.NoError(t, err)
		assert.Equal(t, "Burger Barn", dto.Name)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := svc.GetRestaurant(ctx, f.admin, 999)
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestCatalogService_CreateRestaurant(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewCatalogService(f.store)

	t.Run("created_active_with_resolved_country", func(t *testing.T) {
		dto, err := svc.CreateRestaurant(ctx, models.CreateRestaurantRequest{
			Name:      "Noodle House",
			Cuisine:   "Chinese",
			CountryID: 1,
		})
		require.NoError(t, err)
		assert.True(t, dto.IsActive)
		assert.Equal(t, "India", dto.CountryName)
	})

	t.Run("unknown_country", func(t *testing.T) {
		_, err := svc.CreateRestaurant(ctx, models.CreateRestaurantRequest{
			Name:      "Nowhere",
			CountryID: 42,
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		assert.EqualError(t, err, "Country not found")
	})
}

func TestCatalogService_ListMenuItems(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewCatalogService(f.store)

	t.Run("available_only_same_country", func(t *testing.T) {
		items, err := svc.ListMenuItems(ctx, f.manager1, f.restaurant1.ID)
		require.NoError(t, err)
		require.Len(t, items, 2)
		for _, item := range items {
			assert.True(t, item.IsAvailable)
			assert.Equal(t, "Spice Route", item.RestaurantName)
		}
	})

	t.Run("cross_country_denied", func(t *testing.T) {
		_, err := svc.ListMenuItems(ctx, f.member2, f.restaurant1.ID)
		require.Error(t, err)
		assert.Equal(t, apperr.KindAccessDenied, apperr.KindOf(err))
		assert.EqualError(t, err, "Access denied: Restaurant not in your country")
	})

	t.Run("unknown_restaurant", func(t *testing.T) {
		_, err := svc.ListMenuItems(ctx, f.admin, 999)
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestCatalogService_CreateMenuItem(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewCatalogService(f.store)

	t.Run("member_creates_in_own_country_always_available", func(t *testing.T) {
		dto, err := svc.CreateMenuItem(ctx, f.member2, f.restaurant2.ID, models.CreateMenuItemRequest{
			Name:     "Milkshake",
			Price:    3.5,
			Category: "BEVERAGE",
		})
		require.NoError(t, err)
		assert.True(t, dto.IsAvailable)
		assert.Equal(t, f.restaurant2.ID, dto.RestaurantID)

		items, err := svc.ListMenuItems(ctx, f.member2, f.restaurant2.ID)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("cross_country_denied", func(t *testing.T) {
		_, err := svc.CreateMenuItem(ctx, f.member2, f.restaurant1.ID, models.CreateMenuItemRequest{
			Name:  "Smuggled Dish",
			Price: 1,
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindAccessDenied, apperr.KindOf(err))
	})
}

// Scenario: admin provisions a new country chain, then a member of that
// country works with it end to end.
func TestCatalogService_NewCountryChain(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewCatalogService(f.store)

	require.NoError(t, f.store.CreateCountry(ctx, &models.Country{Name: "Japan"}))
	three := 3
	member3 := authz.Context{Username: "member3", Role: models.RoleMember, CountryID: &three}

	restaurant, err := svc.CreateRestaurant(ctx, models.CreateRestaurantRequest{
		Name:      "Ramen Stop",
		CountryID: 3,
	})
	require.NoError(t, err)

	items, err := svc.ListMenuItems(ctx, member3, restaurant.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = svc.CreateMenuItem(ctx, member3, restaurant.ID, models.CreateMenuItemRequest{
		Name:  "Tonkotsu",
		Price: 12,
	})
	require.NoError(t, err)

	items, err = svc.ListMenuItems(ctx, member3, restaurant.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Tonkotsu", items[0].Name)
	assert.True(t, items[0].IsAvailable)
}
