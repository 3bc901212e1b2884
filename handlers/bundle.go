package handlers

import (
	userSvcPkg "furytails/services/user"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserSvc userSvcPkg.UserService

	Booking   *BookingHandler
	Sales     *SalesHandler
	Feeding   *FeedingHandler
	User      *UserHandler
	Dashboard *DashboardHandler
	Dialog    *DialogHandler
	Storage   *StorageHandler
}
