package models

import "time"

// Role values stored on a profile document.
const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
)

// Location is a plain lat/lng pair.
type Location struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Profile is the account record for both customers and providers.
// Provider-only fields stay empty on customer profiles.
type Profile struct {
	ID           string  `bson:"id" json:"id"`
	Name         string  `bson:"name" json:"name"`
	Email        string  `bson:"email" json:"email"`
	Phone        string  `bson:"phone,omitempty" json:"phone,omitempty"`
	Address      string  `bson:"address,omitempty" json:"address,omitempty"`
	Role         string  `bson:"role" json:"role"` // "customer" or "provider"
	Password     string  `bson:"-" json:"password,omitempty"`
	PasswordHash string  `bson:"passwordHash" json:"-"`
	TokenHash    string  `bson:"tokenHash,omitempty" json:"-"`
	Bio          string  `bson:"bio,omitempty" json:"bio,omitempty"`
	Availability string  `bson:"availability,omitempty" json:"availability,omitempty"`
	Rating       float64 `bson:"rating,omitempty" json:"rating,omitempty"`

	// Provider service profile.
	SkillTags       []string  `bson:"skillTags,omitempty" json:"skill_tags,omitempty"`
	HourlyRate      float64   `bson:"hourlyRate,omitempty" json:"hourly_rate,omitempty"`
	Location        *Location `bson:"location,omitempty" json:"location,omitempty"`
	ServiceRadiusKm float64   `bson:"serviceRadiusKm,omitempty" json:"service_radius_km,omitempty"`
	Reliability     float64   `bson:"reliability,omitempty" json:"reliability,omitempty"`
	Available       bool      `bson:"available" json:"available"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// ProfileUpdateRequest carries the optional fields of a partial profile update.
type ProfileUpdateRequest struct {
	Name         *string   `json:"name,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	Availability *string   `json:"availability,omitempty"`
	HourlyRate   *float64  `json:"hourly_rate,omitempty"`
	SkillTags    []string  `json:"skill_tags,omitempty"`
	Location     *Location `json:"location,omitempty"`
}
