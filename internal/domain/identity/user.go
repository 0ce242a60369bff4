package identity

import "time"

// Roles a user account can carry
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is a registered account. The schema is migrated for completeness;
// there is no authentication surface, so no repository reads it yet.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"type:varchar(254);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:text;not null"`
	Name         string `gorm:"type:varchar(200);not null"`
	Role         string `gorm:"type:varchar(20);not null;default:customer"`
	CreatedAt    time.Time
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}
