package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"zenchair/internal/config"
	"zenchair/internal/database"
	"zenchair/internal/domain"
	"zenchair/internal/middleware"
	"zenchair/internal/modules/auth"
	"zenchair/internal/modules/booking"
	"zenchair/internal/modules/catalog"
	"zenchair/internal/modules/favorite"
	"zenchair/internal/modules/review"
	"zenchair/internal/modules/shop"
	"zenchair/internal/modules/subscription"
	"zenchair/internal/notification"
	jwtsvc "zenchair/internal/pkg/jwt"
	"zenchair/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	models := []interface{}{repository.UserModel(), repository.BookingModel(),
		repository.ReviewModel(), repository.FavoriteModel(), repository.SubscriptionModel()}
	models = append(models, repository.ShopModels()...)
	models = append(models, repository.CatalogModels()...)
	if err := database.Migrate(db, models...); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	shopRepo := repository.NewShopRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	productRepo := repository.NewProductRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	jwt := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)
	hub := notification.NewHub()

	authService := auth.NewService(userRepo, jwt)
	shopService := shop.NewService(shopRepo, serviceRepo, productRepo, reviewRepo)
	catalogService := catalog.NewService(shopRepo, serviceRepo, productRepo)
	bookingService := booking.NewService(shopRepo, serviceRepo, productRepo, bookingRepo, hub)
	reviewService := review.NewService(reviewRepo, shopRepo, userRepo)
	favoriteService := favorite.NewService(favoriteRepo, shopRepo, bookingRepo)
	subscriptionService := subscription.NewService(subscriptionRepo, subscription.NewTranzilaMock())

	authHandler := auth.NewHandler(authService)
	shopHandler := shop.NewHandler(shopService)
	catalogHandler := catalog.NewHandler(catalogService)
	bookingHandler := booking.NewHandler(bookingService)
	reviewHandler := review.NewHandler(reviewService)
	favoriteHandler := favorite.NewHandler(favoriteService)
	subscriptionHandler := subscription.NewHandler(subscriptionService)
	wsHandler := notification.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())

	api := r.Group("/api")

	public := api.Group("")
	authHandler.RegisterRoutes(public)
	shopHandler.RegisterPublicRoutes(public)
	catalogHandler.RegisterPublicRoutes(public)
	reviewHandler.RegisterPublicRoutes(public)
	wsHandler.RegisterRoutes(public)

	// Booking creation accepts guests, so it only peeks at the token.
	optional := api.Group("")
	optional.Use(middleware.OptionalAuth(jwt))
	bookingHandler.RegisterPublicRoutes(optional)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(jwt))
	authHandler.RegisterProtectedRoutes(protected)
	bookingHandler.RegisterProtectedRoutes(protected)
	reviewHandler.RegisterProtectedRoutes(protected)
	favoriteHandler.RegisterProtectedRoutes(protected)

	barber := api.Group("")
	barber.Use(middleware.RequireAuth(jwt), middleware.RequireRole(string(domain.RoleBarber)))
	shopHandler.RegisterBarberRoutes(barber)
	catalogHandler.RegisterBarberRoutes(barber)
	subscriptionHandler.RegisterBarberRoutes(barber)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
