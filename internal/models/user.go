package models

// User is a registered user profile
type User struct {
	ID        int    `json:"id" gorm:"primaryKey"`
	FirstName string `json:"first_name" gorm:"column:first_name"`
	LastName  string `json:"last_name" gorm:"column:last_name"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Picture   string `json:"picture"`
}

// TableName table name override
func (User) TableName() string {
	return "users"
}
