package main

import (
	"fmt"
	"log"
	"os"

	"rentloop-server/routes"
	"rentloop-server/storage"
	"rentloop-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	// Only load .env in development
	if os.Getenv("RENTLOOP_ENV") != "production" {
		godotenv.Load()
	}

	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	// JWT verifiers
	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	auth := app.Party("/api/auth")
	{
		auth.Post("/register", routes.Register)
		auth.Post("/login", routes.Login)
		auth.Get("/me", accessTokenVerifierMiddleware, routes.CurrentUser)
		auth.Put("/profile", accessTokenVerifierMiddleware, routes.UpdateProfile)
	}

	items := app.Party("/api/items")
	{
		items.Post("/", accessTokenVerifierMiddleware, routes.CreateItem)
		items.Get("/", routes.GetItems)
		items.Get("/my", accessTokenVerifierMiddleware, routes.GetMyItems)
		items.Get("/{id:uint}", routes.GetItem)
		items.Put("/{id:uint}", accessTokenVerifierMiddleware, routes.UpdateItem)
		items.Delete("/{id:uint}", accessTokenVerifierMiddleware, routes.DeleteItem)
	}

	bookings := app.Party("/api/bookings")
	{
		bookings.Post("/", accessTokenVerifierMiddleware, routes.CreateBooking)
		bookings.Get("/", accessTokenVerifierMiddleware, routes.GetBookings)
		bookings.Put("/{id:uint}", accessTokenVerifierMiddleware, routes.UpdateBooking)
	}

	reviews := app.Party("/api/reviews")
	{
		reviews.Post("/", accessTokenVerifierMiddleware, routes.CreateReview)
		reviews.Get("/{itemID:uint}", routes.GetItemReviews)
	}

	messages := app.Party("/api/messages")
	{
		messages.Get("/{otherUserID:uint}", accessTokenVerifierMiddleware, routes.GetMessages)
		messages.Put("/{id:uint}/read", accessTokenVerifierMiddleware, routes.MarkMessageRead)
	}

	app.Get("/ws/{id:uint}", routes.ChatWebSocket)

	app.Post("/api/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8001"
	}
	addr := "0.0.0.0:" + port

	fmt.Printf("Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
