package handlers

import (
	"errors"
	"net/http"

	"fixv/middleware"
	"fixv/services/vehicle"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func vehicleError(c *gin.Context, logger *zap.Logger, action string, err error) {
	var notFound vehicle.VehicleNotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}
	var notOwner vehicle.NotOwnerError
	if errors.As(err, &notOwner) {
		c.JSON(http.StatusForbidden, gin.H{"error": notOwner.Error()})
		return
	}
	logger.Error("Vehicle operation failed", zap.String("action", action), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
}

// AddVehicleHandler adds a vehicle to the caller's garage.
func AddVehicleHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := middleware.AuthedUserID(c)

	var req vehicle.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	v, err := VehicleSvc.AddVehicle(userID, req)
	if err != nil {
		vehicleError(c, logger, "add vehicle", err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// ListVehiclesHandler lists the caller's vehicles.
func ListVehiclesHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := middleware.AuthedUserID(c)

	vehicles, err := VehicleSvc.ListVehicles(userID)
	if err != nil {
		vehicleError(c, logger, "list vehicles", err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// GetVehicleHandler returns one of the caller's vehicles.
func GetVehicleHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := middleware.AuthedUserID(c)

	v, err := VehicleSvc.GetVehicle(userID, c.Param("id"))
	if err != nil {
		vehicleError(c, logger, "fetch vehicle", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// UpdateVehicleHandler updates one of the caller's vehicles.
func UpdateVehicleHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := middleware.AuthedUserID(c)

	var req vehicle.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	v, err := VehicleSvc.UpdateVehicle(userID, c.Param("id"), req)
	if err != nil {
		vehicleError(c, logger, "update vehicle", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DeleteVehicleHandler removes one of the caller's vehicles.
func DeleteVehicleHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := middleware.AuthedUserID(c)

	if err := VehicleSvc.DeleteVehicle(userID, c.Param("id")); err != nil {
		vehicleError(c, logger, "delete vehicle", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}
