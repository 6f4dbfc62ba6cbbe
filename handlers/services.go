package handlers

import (
	"fixv/services/booking"
	"fixv/services/shop"
	"fixv/services/user"
	"fixv/services/vehicle"
)

// Service instances the handlers delegate to. main wires these after the
// database and caches are up.
var (
	UserSvc    user.UserService
	VehicleSvc vehicle.VehicleService
	ShopSvc    shop.ShopService
	BookingSvc booking.BookingService
)
