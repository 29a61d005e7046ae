package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleAdmin is the role value stored on administrator records.
const RoleAdmin = "Admin"

// User is a storefront customer. Its public fields are the ones embedded
// into session tokens.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Password  string             `bson:"password,omitempty" json:"-"` // bcrypt hash, never serialized
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Admin is a dashboard account. Only records with Role == RoleAdmin pass the admin gate.
type Admin struct {
	User `bson:",inline"`
	Role string `bson:"role" json:"role"`
}

// IsAdmin reports whether the record carries the administrator role.
func (a *Admin) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}
