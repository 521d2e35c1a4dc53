package routes

import (
	"rentloop-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// GetMessages returns the full conversation between the caller and the other
// user, oldest first. It doubles as the catch-up path after a missed
// real-time delivery.
func GetMessages(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	otherUserID, err := ctx.Params().GetUint("otherUserID")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid user ID", ctx)
		return
	}

	messages, histErr := chatRelay.History(claims.ID, otherUserID)
	if histErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(messages)
}

// MarkMessageRead flags a message as read; only the receiver's flag changes.
func MarkMessageRead(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid message ID", ctx)
		return
	}

	if err := chatRelay.MarkRead(id, claims.ID); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"message": "Message marked as read"})
}
