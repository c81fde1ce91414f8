package components

import (
	"sales-invoicing/internal/handler"
	"sales-invoicing/internal/handler/api"
	"sales-invoicing/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewInvoiceHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
