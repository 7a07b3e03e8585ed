package models

// Country is the tenant boundary: every restaurant, menu item and order
// belongs to exactly one country through the restaurant chain.
type Country struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null;uniqueIndex"`
}
