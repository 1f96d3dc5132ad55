package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleClient  Role = "client"
	RoleTrainer Role = "trainer"
	RoleAdmin   Role = "admin"
)

// ValidRole reports whether r is one of the known roles. Role checks should go
// through this or the Is* helpers so a new role can't slip through unhandled.
func ValidRole(r Role) bool {
	switch r {
	case RoleClient, RoleTrainer, RoleAdmin:
		return true
	}
	return false
}

// PhysicalStats holds the optional body metrics a user can record on their profile.
type PhysicalStats struct {
	Age         int     `bson:"age,omitempty" json:"age,omitempty"`
	HeightCm    float64 `bson:"heightCm,omitempty" json:"heightCm,omitempty"`
	WeightKg    float64 `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	FitnessGoal string  `bson:"fitnessGoal,omitempty" json:"fitnessGoal,omitempty"`
}

// SocialLinks holds a trainer's public social media handles.
type SocialLinks struct {
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	YouTube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	Website   string `bson:"website,omitempty" json:"website,omitempty"`
}

// TrainerInfo is the trainer-specific sub-record. Only present on users with
// RoleTrainer; clients carry a nil pointer.
type TrainerInfo struct {
	ExperienceYears int         `bson:"experienceYears" json:"experienceYears"`
	HourlyRate      float64     `bson:"hourlyRate,omitempty" json:"hourlyRate,omitempty"`
	Location        string      `bson:"location,omitempty" json:"location,omitempty"`
	Availability    string      `bson:"availability,omitempty" json:"availability,omitempty"`
	Specializations []string    `bson:"specializations,omitempty" json:"specializations,omitempty"`
	Certifications  []string    `bson:"certifications,omitempty" json:"certifications,omitempty"`
	SocialLinks     SocialLinks `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`
}

// User represents a registered user (client, trainer, or admin).
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Role         Role               `bson:"role" json:"role"`

	Bio            string        `bson:"bio,omitempty" json:"bio,omitempty"`
	Phone          string        `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfilePicture string        `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	Stats          PhysicalStats `bson:"stats,omitempty" json:"stats,omitempty"`

	// ShowContactInfo controls whether email/phone/social links appear in the
	// public trainer directory projection.
	ShowContactInfo bool         `bson:"showContactInfo" json:"showContactInfo"`
	TrainerInfo     *TrainerInfo `bson:"trainerInfo,omitempty" json:"trainerInfo,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) IsTrainer() bool {
	return u.Role == RoleTrainer
}

func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
