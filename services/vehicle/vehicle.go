package vehicle

import (
	"fmt"
	"time"

	vehicleRepo "fixv/database/repository/vehicle"
	"fixv/models"

	"github.com/google/uuid"
)

// VehicleService manages a user's garage. Every operation is scoped to the
// owner: a vehicle is only visible to and editable by the user it belongs to.
type VehicleService interface {
	AddVehicle(ownerID string, req VehicleRequest) (*models.Vehicle, error)
	GetVehicle(ownerID, vehicleID string) (*models.Vehicle, error)
	ListVehicles(ownerID string) ([]models.Vehicle, error)
	UpdateVehicle(ownerID, vehicleID string, req VehicleRequest) (*models.Vehicle, error)
	DeleteVehicle(ownerID, vehicleID string) error
}

// VehicleRequest is the create/update input.
type VehicleRequest struct {
	Make         string `json:"make" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Year         int    `json:"year"`
	Mileage      int    `json:"mileage"`
	LicensePlate string `json:"licensePlate"`
}

// NotOwnerError signals that the vehicle exists but belongs to someone else.
type NotOwnerError struct {
	VehicleID string
}

func (e NotOwnerError) Error() string {
	return "vehicle " + e.VehicleID + " does not belong to this user"
}

// VehicleNotFoundError signals that no vehicle matches the given id.
type VehicleNotFoundError struct {
	VehicleID string
}

func (e VehicleNotFoundError) Error() string {
	return "vehicle " + e.VehicleID + " not found"
}

// DefaultVehicleService is the production implementation.
type DefaultVehicleService struct {
	Repo vehicleRepo.VehicleRepository
}

func (s *DefaultVehicleService) AddVehicle(ownerID string, req VehicleRequest) (*models.Vehicle, error) {
	now := time.Now()
	v := &models.Vehicle{
		ID:           uuid.New().String(),
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Mileage:      req.Mileage,
		LicensePlate: req.LicensePlate,
		OwnerID:      ownerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(v); err != nil {
		return nil, fmt.Errorf("failed to add vehicle: %w", err)
	}
	return v, nil
}

func (s *DefaultVehicleService) GetVehicle(ownerID, vehicleID string) (*models.Vehicle, error) {
	return s.ownedVehicle(ownerID, vehicleID)
}

func (s *DefaultVehicleService) ListVehicles(ownerID string) ([]models.Vehicle, error) {
	vehicles, err := s.Repo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *DefaultVehicleService) UpdateVehicle(ownerID, vehicleID string, req VehicleRequest) (*models.Vehicle, error) {
	v, err := s.ownedVehicle(ownerID, vehicleID)
	if err != nil {
		return nil, err
	}

	v.Make = req.Make
	v.Model = req.Model
	v.Year = req.Year
	v.Mileage = req.Mileage
	v.LicensePlate = req.LicensePlate
	v.UpdatedAt = time.Now()

	if err := s.Repo.Update(v); err != nil {
		return nil, fmt.Errorf("failed to update vehicle %s: %w", vehicleID, err)
	}
	return v, nil
}

func (s *DefaultVehicleService) DeleteVehicle(ownerID, vehicleID string) error {
	if _, err := s.ownedVehicle(ownerID, vehicleID); err != nil {
		return err
	}
	if err := s.Repo.Delete(vehicleID); err != nil {
		return fmt.Errorf("failed to delete vehicle %s: %w", vehicleID, err)
	}
	return nil
}

func (s *DefaultVehicleService) ownedVehicle(ownerID, vehicleID string) (*models.Vehicle, error) {
	v, err := s.Repo.GetByID(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vehicle %s: %w", vehicleID, err)
	}
	if v == nil {
		return nil, VehicleNotFoundError{VehicleID: vehicleID}
	}
	if v.OwnerID != ownerID {
		return nil, NotOwnerError{VehicleID: vehicleID}
	}
	return v, nil
}
