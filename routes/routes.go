package routes

import (
	"errors"

	"rentloop-server/relay"
	"rentloop-server/services"
	"rentloop-server/storage"
	"rentloop-server/utils"

	"github.com/kataras/iris/v12"
)

// Shared singletons for the whole API surface.
var (
	market       = services.NewMarketplace()
	chatRegistry = relay.NewRegistry()
	chatRelay    = relay.NewRelay(storage.MessageStore{}, chatRegistry)
)

// respondServiceError maps a service error kind onto an HTTP response.
func respondServiceError(err error, ctx iris.Context) {
	var svcErr *services.Error
	if !errors.As(err, &svcErr) {
		utils.CreateInternalServerError(ctx)
		return
	}

	switch svcErr.Kind {
	case services.KindNotFound:
		utils.CreateError(iris.StatusNotFound, "Not Found", svcErr.Message, ctx)
	case services.KindForbidden:
		utils.CreateError(iris.StatusForbidden, "Forbidden", svcErr.Message, ctx)
	case services.KindConflict:
		utils.CreateError(iris.StatusConflict, "Conflict", svcErr.Message, ctx)
	case services.KindUnauthenticated:
		utils.CreateError(iris.StatusUnauthorized, "Unauthorized", svcErr.Message, ctx)
	case services.KindValidation:
		utils.CreateError(iris.StatusBadRequest, "Validation Error", svcErr.Message, ctx)
	case services.KindInvalidOperation:
		utils.CreateError(iris.StatusBadRequest, "Invalid Operation", svcErr.Message, ctx)
	case services.KindInvalidTransition:
		utils.CreateError(iris.StatusBadRequest, "Invalid Transition", svcErr.Message, ctx)
	default:
		utils.CreateInternalServerError(ctx)
	}
}
