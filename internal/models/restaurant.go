package models

type Restaurant struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Cuisine     string `json:"cuisine"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	ImageURL    string `json:"imageUrl"`
	CountryID   int    `json:"countryId" gorm:"not null;index"`
	IsActive    bool   `json:"isActive"`
}

type RestaurantDTO struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Cuisine     string `json:"cuisine"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	ImageURL    string `json:"imageUrl,omitempty"`
	CountryID   int    `json:"countryId"`
	CountryName string `json:"countryName"`
	IsActive    bool   `json:"isActive"`
}

type CreateRestaurantRequest struct {
	Name        string `json:"name" validate:"required"`
	Cuisine     string `json:"cuisine"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	ImageURL    string `json:"imageUrl"`
	CountryID   int    `json:"countryId" validate:"required,min=1"`
}
