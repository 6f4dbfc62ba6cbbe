package handlers

import (
	"errors"
	"net/http"

	"fixv/services/shop"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListShopsHandler lists every mechanic shop.
func ListShopsHandler(c *gin.Context) {
	logger := getLogger(c)

	shops, err := ShopSvc.ListShops()
	if err != nil {
		logger.Error("Failed to list shops", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list shops"})
		return
	}
	c.JSON(http.StatusOK, shops)
}

// GetShopHandler returns one shop with its services resolved.
func GetShopHandler(c *gin.Context) {
	logger := getLogger(c)

	details, err := ShopSvc.GetShopDetails(c.Param("id"))
	if err != nil {
		var notFound shop.ShopNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
			return
		}
		logger.Error("Failed to fetch shop", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shop"})
		return
	}
	c.JSON(http.StatusOK, details)
}

// GetShopCatalogueHandler returns a shop's price list.
func GetShopCatalogueHandler(c *gin.Context) {
	logger := getLogger(c)

	catalogue, err := ShopSvc.GetCatalogue(c.Param("id"))
	if err != nil {
		var notFound shop.ShopNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
			return
		}
		logger.Error("Failed to fetch catalogue", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch catalogue"})
		return
	}
	c.JSON(http.StatusOK, catalogue)
}

// ListServicesHandler lists every repair offering.
func ListServicesHandler(c *gin.Context) {
	logger := getLogger(c)

	services, err := ShopSvc.ListServices()
	if err != nil {
		logger.Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list services"})
		return
	}
	c.JSON(http.StatusOK, services)
}
