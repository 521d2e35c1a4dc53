package routes

import (
	"strings"

	"rentloop-server/models"
	"rentloop-server/storage"
	"rentloop-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"golang.org/x/crypto/bcrypt"
)

func Register(ctx iris.Context) {
	var userInput RegisterUserInput
	err := ctx.ReadJSON(&userInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var existing models.User
	emailTaken, emailErr := getAndHandleUserExists(&existing, userInput.Email)
	if emailErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if emailTaken {
		utils.CreateEmailAlreadyRegistered(ctx)
		return
	}

	usernameTaken, usernameErr := getAndHandleUsernameExists(&existing, userInput.Username)
	if usernameErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if usernameTaken {
		utils.CreateUsernameAlreadyTaken(ctx)
		return
	}

	hashedPassword, hashErr := hashAndSaltPassword(userInput.Password)
	if hashErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	newUser := models.User{
		Username: userInput.Username,
		Email:    strings.ToLower(userInput.Email),
		FullName: userInput.FullName,
		Password: hashedPassword,
		Phone:    userInput.Phone,
		Bio:      userInput.Bio,
		Lat:      userInput.Lat,
		Lon:      userInput.Lon,
		Address:  userInput.Address,
		City:     userInput.City,
		Country:  userInput.Country,
	}

	if err := storage.DB.Create(&newUser).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	returnUser(newUser, ctx)
}

func Login(ctx iris.Context) {
	var userInput LoginUserInput
	err := ctx.ReadJSON(&userInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var existingUser models.User
	errorMsg := "Invalid email or password."
	userExists, userExistsErr := getAndHandleUserExists(&existingUser, userInput.Email)
	if userExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if !userExists {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	passwordErr := bcrypt.CompareHashAndPassword([]byte(existingUser.Password), []byte(userInput.Password))
	if passwordErr != nil {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	returnUser(existingUser, ctx)
}

// CurrentUser returns the authenticated user's record.
func CurrentUser(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	user, err := storage.GetUser(claims.ID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if user == nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(user)
}

// UpdateProfile applies only the fields present in the request body.
func UpdateProfile(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input UpdateProfileInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	updates := map[string]interface{}{}
	if input.FullName != nil {
		updates["full_name"] = *input.FullName
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.ProfileImage != nil {
		updates["profile_image"] = *input.ProfileImage
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

	if len(updates) > 0 {
		if err := storage.DB.Model(&models.User{}).Where("id = ?", claims.ID).Updates(updates).Error; err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
	}

	user, err := storage.GetUser(claims.ID)
	if err != nil || user == nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(user)
}

func getAndHandleUserExists(user *models.User, email string) (exists bool, err error) {
	userExistsQuery := storage.DB.Where("email = ?", strings.ToLower(email)).Limit(1).Find(user)

	if userExistsQuery.Error != nil {
		return false, userExistsQuery.Error
	}

	return userExistsQuery.RowsAffected > 0, nil
}

func getAndHandleUsernameExists(user *models.User, username string) (exists bool, err error) {
	userExistsQuery := storage.DB.Where("username = ?", username).Limit(1).Find(user)

	if userExistsQuery.Error != nil {
		return false, userExistsQuery.Error
	}

	return userExistsQuery.RowsAffected > 0, nil
}

func hashAndSaltPassword(password string) (hashedPassword string, err error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

func returnUser(user models.User, ctx iris.Context) {
	tokenPair, tokenErr := utils.CreateTokenPair(user.ID)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"access_token":  string(tokenPair.AccessToken),
		"refresh_token": string(tokenPair.RefreshToken),
		"token_type":    "bearer",
		"user":          user,
	})
}

type RegisterUserInput struct {
	Username string   `json:"username" validate:"required,min=3,max=50"`
	Email    string   `json:"email" validate:"required,max=256,email"`
	FullName string   `json:"full_name" validate:"required,max=100"`
	Password string   `json:"password" validate:"required,min=6,max=256"`
	Phone    string   `json:"phone" validate:"max=32"`
	Bio      string   `json:"bio" validate:"max=2000"`
	Lat      *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lon      *float64 `json:"lon" validate:"omitempty,min=-180,max=180"`
	Address  string   `json:"address" validate:"max=256"`
	City     string   `json:"city" validate:"max=128"`
	Country  string   `json:"country" validate:"max=128"`
}

type LoginUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileInput struct {
	FullName     *string  `json:"full_name"`
	Phone        *string  `json:"phone"`
	Bio          *string  `json:"bio"`
	ProfileImage *string  `json:"profile_image"`
	Lat          *float64 `json:"lat"`
	Lon          *float64 `json:"lon"`
	Address      *string  `json:"address"`
	City         *string  `json:"city"`
	Country      *string  `json:"country"`
}
