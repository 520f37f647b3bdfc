package main

import (
	"context"
	"log"
	"os"
	"time"

	"vacation-front/internal/api"
	"vacation-front/internal/config"
	"vacation-front/internal/domain"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Catálogo inicial de demostración, con monedas mezcladas a propósito.
var seedVacations = []api.VacationForm{
	{CountryName: "Greece", Description: "Island hopping across the Cyclades with a night in Santorini.", Price: 4200, Currency: "ILS"},
	{CountryName: "Italy", Description: "A week of food and art between Rome and Florence.", Price: 1350, Currency: "EUR"},
	{CountryName: "Thailand", Description: "Beaches of Krabi and the markets of Bangkok.", Price: 1800, Currency: "USD"},
	{CountryName: "Japan", Description: "Tokyo neon and Kyoto temples in cherry blossom season.", Price: 2600, Currency: "USD"},
	{CountryName: "Spain", Description: "Barcelona architecture and the Costa Brava coastline.", Price: 980, Currency: "EUR"},
	{CountryName: "Israel", Description: "Dead Sea spa weekend with a desert jeep tour.", Price: 1500, Currency: "ILS"},
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	email := envOr("SEED_ADMIN_EMAIL", "admin@vacations.test")
	password := envOr("SEED_ADMIN_PASSWORD", "admin1234")

	client := api.New(cfg.BackendURL, nil, logger)
	admin, err := client.Login(ctx, email, password)
	if err != nil {
		logger.Warn("admin login failed, trying to register", zap.Error(err))
		if _, err := client.Register(ctx, domain.Registration{
			FirstName: "Site",
			LastName:  "Admin",
			Email:     email,
			Password:  password,
		}); err != nil {
			logger.Fatal("register admin", zap.Error(err))
		}
		admin, err = client.Login(ctx, email, password)
		if err != nil {
			logger.Fatal("login after register", zap.Error(err))
		}
	}
	if !admin.IsAdmin() {
		logger.Warn("seed user has no admin role, vacation creation may be rejected",
			zap.String("email", admin.Email))
	}
	authed := client.WithToken(admin.Token)

	existing, err := authed.ListVacations(ctx)
	if err != nil {
		logger.Fatal("list vacations", zap.Error(err))
	}
	if len(existing) > 0 {
		logger.Info("catalog already seeded", zap.Int("vacations", len(existing)))
		return
	}

	start := time.Now().AddDate(0, 1, 0)
	for i, form := range seedVacations {
		form.AdminUserID = admin.ID
		form.StartDate = start.AddDate(0, 0, i*14).Format(domain.DateLayout)
		form.EndDate = start.AddDate(0, 0, i*14+7).Format(domain.DateLayout)
		created, err := authed.CreateVacation(ctx, form)
		if err != nil {
			logger.Error("create vacation", zap.String("country", form.CountryName), zap.Error(err))
			continue
		}
		logger.Info("vacation created",
			zap.Int("vacation_id", created.ID),
			zap.String("country", form.CountryName))
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
