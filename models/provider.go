package models

import (
	"time"
)

// Experience tiers a sitter can declare on their profile.
const (
	TierBeginner     = "beginner"
	TierIntermediate = "intermediate"
	TierExperienced  = "experienced"
)

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// NewGeoPoint builds a GeoJSON point from a latitude/longitude pair.
func NewGeoPoint(lat, lng float64) *GeoPoint {
	return &GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Longitude returns the point's longitude.
func (g *GeoPoint) Longitude() float64 {
	return g.Coordinates[0]
}

// Latitude returns the point's latitude.
func (g *GeoPoint) Latitude() float64 {
	return g.Coordinates[1]
}

// Valid reports whether the point carries a usable coordinate pair.
func (g *GeoPoint) Valid() bool {
	if g == nil || len(g.Coordinates) != 2 {
		return false
	}
	lng, lat := g.Coordinates[0], g.Coordinates[1]
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

type Profile struct {
	SitterName   string    `bson:"sitterName" json:"sitterName,omitempty"`
	Email        string    `bson:"email" json:"email,omitempty"`
	PhoneNumber  string    `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Bio          string    `bson:"bio" json:"bio,omitempty"`
	ProfileImage string    `bson:"profileImage" json:"profileImage,omitempty"`
	Address      string    `bson:"address" json:"address,omitempty"`
	Rating       float64   `bson:"rating" json:"rating,omitempty"` // 0..5, 0 when unrated
	LocationGeo  *GeoPoint `bson:"locationGeo,omitempty" json:"locationGeo,omitempty"`
}

type Review struct {
	Rating  float64 `bson:"rating" json:"rating"`   // Expected value between 1 and 5.
	Comment string  `bson:"comment" json:"comment"` // Customer's feedback.
}

// Provider is a babysitter profile as stored in MongoDB. The matching and
// eligibility engines treat it as a read-only snapshot per call.
type Provider struct {
	ID                string             `bson:"id" json:"id,omitempty"`
	Profile           Profile            `bson:"profile" json:"profile"`
	ExperienceTier    string             `bson:"experienceTier" json:"experienceTier,omitempty"`
	HourlyRate        float64            `bson:"hourlyRate" json:"hourlyRate,omitempty"`
	Availability      WeeklyAvailability `bson:"availability" json:"availability,omitempty"`
	Reviews           []Review           `bson:"reviews,omitempty" json:"reviews,omitempty"`
	CompletedBookings int                `bson:"completedBookings" json:"completedBookings,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// HasLocation reports whether the provider carries usable coordinates.
func (p *Provider) HasLocation() bool {
	return p.Profile.LocationGeo.Valid()
}
