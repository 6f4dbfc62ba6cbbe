package models

import "time"

// Vehicle is a user's car.
type Vehicle struct {
	ID           string    `bson:"id" json:"id"`
	Make         string    `bson:"make" json:"make"`
	Model        string    `bson:"model" json:"model"`
	Year         int       `bson:"year" json:"year"`
	Mileage      int       `bson:"mileage" json:"mileage"`
	LicensePlate string    `bson:"licensePlate" json:"licensePlate"`
	OwnerID      string    `bson:"ownerId" json:"ownerId"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// Description renders the display string used on appointments and invoices.
func (v Vehicle) Description() string {
	model := v.Model
	if model == "" {
		model = "Unknown Vehicle"
	}
	mk := v.Make
	if mk == "" {
		mk = "Unknown Make"
	}
	plate := v.LicensePlate
	if plate == "" {
		plate = "Unknown License Plate"
	}
	return model + " " + mk + " " + plate
}
