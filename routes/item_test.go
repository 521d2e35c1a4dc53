package routes

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func validCreateItemInput() CreateItemInput {
	lat, lon := 37.7749, -122.4194
	return CreateItemInput{
		Title:       "Cordless Drill",
		Description: "18V drill with two batteries",
		Category:    "tools",
		PricePerDay: 12.5,
		Lat:         &lat,
		Lon:         &lon,
	}
}

func TestCreateItemInputRequiresCoordinates(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.Struct(validCreateItemInput()))

	missingLat := validCreateItemInput()
	missingLat.Lat = nil
	require.Error(t, v.Struct(missingLat))

	missingLon := validCreateItemInput()
	missingLon.Lon = nil
	require.Error(t, v.Struct(missingLon))
}

func TestCreateItemInputCoordinateBounds(t *testing.T) {
	v := validator.New()

	badLat := validCreateItemInput()
	lat := 91.0
	badLat.Lat = &lat
	require.Error(t, v.Struct(badLat))

	badLon := validCreateItemInput()
	lon := -180.5
	badLon.Lon = &lon
	require.Error(t, v.Struct(badLon))

	// Zero is a valid coordinate, not a missing one.
	zero := validCreateItemInput()
	z := 0.0
	zero.Lat = &z
	zero.Lon = &z
	require.NoError(t, v.Struct(zero))
}

func TestNewItemFromInputDefaults(t *testing.T) {
	item, err := newItemFromInput(7, validCreateItemInput())
	require.NoError(t, err)

	require.Equal(t, uint(7), item.OwnerID)
	require.True(t, item.HasCoordinates())
	require.NotNil(t, item.IsAvailable)
	require.True(t, *item.IsAvailable)
}
