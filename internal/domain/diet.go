package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealType classifies a diet entry.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// ValidMealType reports whether m is one of the known meal types.
func ValidMealType(m MealType) bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// DietEntry is one logged meal.
type DietEntry struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID      primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Date         time.Time          `bson:"date" json:"date"`
	MealType     MealType           `bson:"mealType" json:"mealType"`
	Description  string             `bson:"description" json:"description"`
	Calories     int                `bson:"calories,omitempty" json:"calories,omitempty"`
	ProteinGrams float64            `bson:"proteinGrams,omitempty" json:"proteinGrams,omitempty"`
	CarbsGrams   float64            `bson:"carbsGrams,omitempty" json:"carbsGrams,omitempty"`
	FatGrams     float64            `bson:"fatGrams,omitempty" json:"fatGrams,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
