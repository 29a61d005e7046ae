package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StoreSettingName identifies the singleton store settings document.
const StoreSettingName = "storeSetting"

// Keys under Setting.Values written by the credential commands.
const (
	SettingStripeKey         = "stripe_key"
	SettingStripeSecret      = "stripe_secret"
	SettingStripeStatus      = "stripe_status"
	SettingGoogleID          = "google_id"
	SettingGoogleSecret      = "google_secret"
	SettingGoogleLoginStatus = "google_login_status"
)

// Setting is a named settings document. The store keeps other keys under
// "setting" besides the provider credentials, so Values stays open.
type Setting struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Name      string                 `bson:"name" json:"name"`
	Values    map[string]interface{} `bson:"setting" json:"setting"`
	CreatedAt time.Time              `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time              `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// GetString returns the string value stored under key, or "".
func (s *Setting) GetString(key string) string {
	if s == nil {
		return ""
	}
	v, _ := s.Values[key].(string)
	return v
}

// GetBool returns the boolean value stored under key, or false.
func (s *Setting) GetBool(key string) bool {
	if s == nil {
		return false
	}
	v, _ := s.Values[key].(bool)
	return v
}
