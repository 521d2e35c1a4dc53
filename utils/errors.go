package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func CreateError(statusCode int, title string, detail string, ctx iris.Context) {
	ctx.StopWithJSON(statusCode, iris.Map{"error": title, "message": detail})
}

func CreateNotFound(ctx iris.Context) {
	CreateError(iris.StatusNotFound, "Not Found", "Resource not found.", ctx)
}

func CreateForbidden(ctx iris.Context) {
	CreateError(iris.StatusForbidden, "Forbidden", "You are not allowed to perform this action.", ctx)
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(iris.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred.", ctx)
}

func CreateEmailAlreadyRegistered(ctx iris.Context) {
	CreateError(iris.StatusConflict, "Conflict", "Email already registered.", ctx)
}

func CreateUsernameAlreadyTaken(ctx iris.Context) {
	CreateError(iris.StatusConflict, "Conflict", "Username already taken.", ctx)
}

// HandleValidationErrors responds with per-field details when the body failed
// struct validation, or a generic bad-request otherwise.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]iris.Map, 0, len(errs))
		for _, fieldErr := range errs {
			fields = append(fields, iris.Map{
				"field": fieldErr.Field(),
				"tag":   fieldErr.Tag(),
				"value": fieldErr.Param(),
			})
		}
		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{
			"error":   "Validation Error",
			"message": "One or more fields are invalid.",
			"fields":  fields,
		})
		return
	}
	CreateError(iris.StatusBadRequest, "Invalid Request", err.Error(), ctx)
}
