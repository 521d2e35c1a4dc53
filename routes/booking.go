package routes

import (
	"rentloop-server/services"
	"rentloop-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func CreateBooking(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreateBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	booking, err := market.Bookings.Create(services.CreateBookingInput{
		ItemID:      input.ItemID,
		RenterID:    claims.ID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		TotalAmount: input.TotalAmount,
		Message:     input.Message,
	})
	if err != nil {
		respondServiceError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(booking)
}

// GetBookings returns bookings where the caller is the renter or owns the
// booked item.
func GetBookings(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	bookings, err := market.ListBookingsFor(claims.ID)
	if err != nil {
		respondServiceError(err, ctx)
		return
	}

	ctx.JSON(bookings)
}

// UpdateBooking applies a status transition on behalf of the caller.
func UpdateBooking(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid booking ID", ctx)
		return
	}

	var input UpdateBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	booking, svcErr := market.Bookings.Transition(id, claims.ID, input.Status)
	if svcErr != nil {
		respondServiceError(svcErr, ctx)
		return
	}

	ctx.JSON(booking)
}

type CreateBookingInput struct {
	ItemID      uint    `json:"item_id" validate:"required"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	TotalAmount float64 `json:"total_amount" validate:"required,gt=0"`
	Message     string  `json:"message" validate:"max=2000"`
}

type UpdateBookingInput struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected active completed cancelled"`
}
