package routes

import (
	"encoding/json"

	"rentloop-server/models"
	"rentloop-server/services"
	"rentloop-server/storage"
	"rentloop-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"golang.org/x/exp/slices"
	"gorm.io/datatypes"
)

func CreateItem(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreateItemInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !slices.Contains(models.ItemCategories, input.Category) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Unknown category: "+input.Category, ctx)
		return
	}

	item, buildErr := newItemFromInput(claims.ID, input)
	if buildErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if err := storage.DB.Create(&item).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(item)
}

// newItemFromInput builds the row for a new listing. New items start
// available; the column default covers the DB but not the struct we return.
func newItemFromInput(ownerID uint, input CreateItemInput) (models.Item, error) {
	dates, err := json.Marshal(input.AvailableDates)
	if err != nil {
		return models.Item{}, err
	}

	available := true
	return models.Item{
		OwnerID:        ownerID,
		Title:          input.Title,
		Description:    input.Description,
		Category:       input.Category,
		PricePerDay:    input.PricePerDay,
		Lat:            input.Lat,
		Lon:            input.Lon,
		Address:        input.Address,
		City:           input.City,
		Country:        input.Country,
		PostalCode:     input.PostalCode,
		AvailableDates: datatypes.JSON(dates),
		IsAvailable:    &available,
	}, nil
}

// GetItems is the public listing. lat, lon and max_distance must all be
// present for the radius filter to apply.
func GetItems(ctx iris.Context) {
	query := services.ItemQuery{
		Category: ctx.URLParam("category"),
		Limit:    ctx.URLParamIntDefault("limit", 20),
		Skip:     ctx.URLParamIntDefault("skip", 0),
	}

	if query.Category != "" && !slices.Contains(models.ItemCategories, query.Category) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Unknown category: "+query.Category, ctx)
		return
	}

	if ctx.URLParamExists("lat") && ctx.URLParamExists("lon") && ctx.URLParamExists("max_distance") {
		lat, latErr := ctx.URLParamFloat64("lat")
		lon, lonErr := ctx.URLParamFloat64("lon")
		maxDistance, distErr := ctx.URLParamFloat64("max_distance")
		if latErr != nil || lonErr != nil || distErr != nil {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", "lat, lon and max_distance must be numbers", ctx)
			return
		}
		query.Center = &services.Point{Lon: lon, Lat: lat}
		query.MaxDistanceKm = &maxDistance
	}

	items, err := market.SearchItems(query)
	if err != nil {
		respondServiceError(err, ctx)
		return
	}

	utils.JSONPage(ctx, items, query.Limit, query.Skip, len(items))
}

// GetMyItems lists everything the authenticated user has listed, including
// unavailable items.
func GetMyItems(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var items []models.Item
	if err := storage.DB.Where("owner_id = ?", claims.ID).Order("created_at DESC").Find(&items).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(items)
}

func GetItem(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid item ID", ctx)
		return
	}

	item, storeErr := storage.GetItem(id)
	if storeErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if item == nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Item not found", ctx)
		return
	}

	ctx.JSON(item)
}

func UpdateItem(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid item ID", ctx)
		return
	}

	var input UpdateItemInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Category != nil {
		if !slices.Contains(models.ItemCategories, *input.Category) {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", "Unknown category: "+*input.Category, ctx)
			return
		}
		updates["category"] = *input.Category
	}
	if input.PricePerDay != nil {
		if *input.PricePerDay <= 0 {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", "price_per_day must be positive", ctx)
			return
		}
		updates["price_per_day"] = *input.PricePerDay
	}
	if input.Lat != nil {
		updates["lat"] = *input.Lat
	}
	if input.Lon != nil {
		updates["lon"] = *input.Lon
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.City != nil {
		updates["city"] = *input.City
	}
	if input.Country != nil {
		updates["country"] = *input.Country
	}
	if input.IsAvailable != nil {
		updates["is_available"] = *input.IsAvailable
	}
	if input.AvailableDates != nil {
		dates, marshalErr := json.Marshal(input.AvailableDates)
		if marshalErr != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		updates["available_dates"] = datatypes.JSON(dates)
	}

	item, svcErr := market.UpdateItem(id, claims.ID, updates)
	if svcErr != nil {
		respondServiceError(svcErr, ctx)
		return
	}

	ctx.JSON(item)
}

func DeleteItem(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid item ID", ctx)
		return
	}

	if err := market.DeleteItem(id, claims.ID); err != nil {
		respondServiceError(err, ctx)
		return
	}

	ctx.JSON(iris.Map{"message": "Item deleted successfully"})
}

type CreateItemInput struct {
	Title          string   `json:"title" validate:"required,min=1,max=200"`
	Description    string   `json:"description" validate:"required,min=1,max=2000"`
	Category       string   `json:"category" validate:"required"`
	PricePerDay    float64  `json:"price_per_day" validate:"required,gt=0"`
	Lat            *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon            *float64 `json:"lon" validate:"required,min=-180,max=180"`
	Address        string   `json:"address" validate:"max=256"`
	City           string   `json:"city" validate:"max=128"`
	Country        string   `json:"country" validate:"max=128"`
	PostalCode     string   `json:"postal_code" validate:"max=32"`
	AvailableDates []string `json:"available_dates" validate:"dive,datetime=2006-01-02"`
}

type UpdateItemInput struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	Category       *string  `json:"category"`
	PricePerDay    *float64 `json:"price_per_day"`
	Lat            *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lon            *float64 `json:"lon" validate:"omitempty,min=-180,max=180"`
	Address        *string  `json:"address"`
	City           *string  `json:"city"`
	Country        *string  `json:"country"`
	IsAvailable    *bool    `json:"is_available"`
	AvailableDates []string `json:"available_dates" validate:"omitempty,dive,datetime=2006-01-02"`
}
