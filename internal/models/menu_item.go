package models

type MenuItem struct {
	ID           int     `json:"id" gorm:"primaryKey"`
	Name         string  `json:"name" gorm:"not null"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" gorm:"not null"`
	Category     string  `json:"category"` // APPETIZER, MAIN_COURSE, DESSERT, BEVERAGE
	RestaurantID int     `json:"restaurantId" gorm:"not null;index"`
	IsAvailable  bool    `json:"isAvailable"`
	ImageURL     string  `json:"imageUrl"`
}

type MenuItemDTO struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	Price          float64 `json:"price"`
	Category       string  `json:"category,omitempty"`
	RestaurantID   int     `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName"`
	IsAvailable    bool    `json:"isAvailable"`
	ImageURL       string  `json:"imageUrl,omitempty"`
}

type CreateMenuItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"min=0"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
}
