package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"zenchair/internal/config"
	"zenchair/internal/database"
	"zenchair/internal/domain"
	"zenchair/internal/repository"
)

// Seeds a demo barber with a shop and a few services so the API is
// browsable right after a fresh migration.
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

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	shops := repository.NewShopRepository(db)
	services := repository.NewServiceRepository(db)

	const email = "demo@zenchair.app"
	if exists, err := users.ExistsByEmail(ctx, email); err != nil {
		log.Fatalf("seed: %v", err)
	} else if exists {
		log.Println("seed: demo data already present")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	now := time.Now().UTC()
	barber := &domain.User{
		ID:           fmt.Sprintf("user_%s", uuid.NewString()),
		Email:        email,
		Name:         "Demo Barber",
		Phone:        "+972500000000",
		Role:         domain.RoleBarber,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(ctx, barber); err != nil {
		log.Fatalf("seed: %v", err)
	}

	hours := make([]domain.WorkingHour, 0, 7)
	for day := 0; day < 7; day++ {
		h := domain.WorkingHour{Day: day, OpenTime: "09:00", CloseTime: "18:00"}
		if day == 5 || day == 6 {
			h.IsClosed = true
		}
		hours = append(hours, h)
	}

	sh := &domain.Shop{
		ID:            fmt.Sprintf("shop_%s", uuid.NewString()),
		BarberID:      barber.ID,
		Name:          "ZenChair Demo Studio",
		Description:   "Classic cuts and hot towel shaves.",
		Address:       "12 Allenby St",
		City:          "Tel Aviv",
		Phone:         "+972500000001",
		Email:         email,
		GalleryImages: []string{},
		WorkingHours:  hours,
		IsOpen:        true,
		VacationDates: []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := shops.Create(ctx, sh); err != nil {
		log.Fatalf("seed: %v", err)
	}

	demoServices := []struct {
		name     string
		price    float64
		duration int
	}{
		{"Men's Haircut", 80, 30},
		{"Beard Trim", 40, 30},
		{"Hot Towel Shave", 60, 30},
	}
	for _, d := range demoServices {
		svc := &domain.Service{
			ID:        fmt.Sprintf("service_%s", uuid.NewString()),
			ShopID:    sh.ID,
			Name:      d.name,
			Price:     d.price,
			Duration:  d.duration,
			CreatedAt: now,
		}
		if err := services.Create(ctx, svc); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	log.Printf("seed: created %s (%s) with %d services", sh.Name, sh.ID, len(demoServices))
}
