// Package domain holds DTOs and ports for the shared entry pool
package domain

import "wattpool/internal/core/entry"

type (
	// Entry is a published location
	Entry = entry.Entry

	// Sanitized is the public projection of Entry
	Sanitized = entry.Sanitized

	// Appliance is one appliance instance
	Appliance = entry.Appliance
)

// ApplianceInput is one appliance in an upload
type ApplianceInput struct {
	Type     string       `json:"appliance_type" validate:"required,max=64" example:"Heater"`
	Hours    entry.Number `json:"daily_hours" validate:"gte=0,lte=24" example:"3.5"`
	Quantity entry.Number `json:"quantity" validate:"gte=1,lte=1000" example:"1"`
}

// Input is the upload and update body
type Input struct {
	Address    string           `json:"address" validate:"required,min=1,max=200" example:"12 Grove Lane"`
	Region     string           `json:"region" validate:"required,min=1,max=16" example:"US"`
	Appliances []ApplianceInput `json:"appliances" validate:"max=64,dive"`
}

// Keys are returned to the owner after an upload
// PrivateID must be kept to update or delete the entry later
type Keys struct {
	PublicID  string `json:"public_id" example:"6f1c0a55-0d7e-4f0c-9d7d-8b5b1d1fd4a2"`
	PrivateID string `json:"private_id" example:"0b3e7f1e-92c4-4a8d-a1a4-0c8d8c3f5a77"`
}
