package routes

import (
	"rentloop-server/services"
	"rentloop-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func CreateReview(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreateReviewInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	review, err := market.CreateReview(claims.ID, services.CreateReviewInput{
		ItemID:  input.ItemID,
		Rating:  input.Rating,
		Comment: input.Comment,
	})
	if err != nil {
		respondServiceError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(review)
}

// GetItemReviews is public.
func GetItemReviews(ctx iris.Context) {
	itemID, err := ctx.Params().GetUint("itemID")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid item ID", ctx)
		return
	}

	reviews, svcErr := market.ListReviews(itemID)
	if svcErr != nil {
		respondServiceError(svcErr, ctx)
		return
	}

	ctx.JSON(reviews)
}

type CreateReviewInput struct {
	ItemID  uint   `json:"item_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}
