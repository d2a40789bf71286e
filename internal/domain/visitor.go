package domain

import (
	"time"

	"github.com/google/uuid"
)

func NewVisitor(firstName, lastName, email, phone, address, city, country string, interests []string) Visitor {
	if interests == nil {
		interests = []string{}
	}
	return Visitor{
		ID:               uuid.New(),
		FirstName:        firstName,
		LastName:         lastName,
		Email:            email,
		Phone:            phone,
		Address:          address,
		City:             city,
		Country:          country,
		Interests:        interests,
		RegistrationDate: time.Now(),
	}
}

func NewAttraction(name, description, category, openingHours, imageURL string) Attraction {
	return Attraction{
		ID:           uuid.New(),
		Name:         name,
		Description:  description,
		Category:     category,
		OpeningHours: openingHours,
		ImageURL:     imageURL,
		IsActive:     true,
	}
}
