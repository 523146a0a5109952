package components

import (
	"court-booking/internal/handler"
	"court-booking/internal/handler/api"
	"court-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Availability *api.AvailabilityHandler
	Cart         *api.CartHandler
	Checkout     *api.CheckoutHandler
	Booking      *api.BookingHandler
	Admin        *api.AdminHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Availability: p.Availability,
		Cart:         p.Cart,
		Checkout:     p.Checkout,
		Booking:      p.Booking,
		Admin:        p.Admin,
	}
}
