package components

import (
	"bayashop-backoffice/internal/handler"
	"bayashop-backoffice/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPromoHandler,
	),
	fx.Invoke(handler.NewRouter),
)
