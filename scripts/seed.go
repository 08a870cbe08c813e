package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/WambuiJane/visit-stamp-rewards/internal/adapters/database"
	"github.com/WambuiJane/visit-stamp-rewards/internal/application/services"
	"github.com/WambuiJane/visit-stamp-rewards/internal/infrastructure/clients/postgres"
	"github.com/WambuiJane/visit-stamp-rewards/pkg/config"
)

type seedBusiness struct {
	email    string
	password string
	input    services.BusinessInput
}

type seedCustomer struct {
	phone string
	name  string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	accountRepo := database.NewAccountAdapter(pgClient)
	customerRepo := database.NewCustomerAdapter(pgClient)
	businessRepo := database.NewBusinessAdapter(pgClient)
	reviewRepo := database.NewReviewAdapter(pgClient)

	authService := services.NewAuthService(accountRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	customerService := services.NewCustomerService(customerRepo)
	businessService := services.NewBusinessService(businessRepo, database.NewVisitAdapter(pgClient), database.NewRewardAdapter(pgClient), reviewRepo)
	reviewService := services.NewReviewService(reviewRepo, customerRepo)

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				reviews,
				rewards,
				visits,
				customers,
				businesses,
				accounts
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to truncate tables: %v", err)
		}
	}

	businesses := []seedBusiness{
		{
			email:    "mama.njeri@example.com",
			password: "password123",
			input: services.BusinessInput{
				BusinessName:            "Mama Njeri's Cafe",
				BusinessType:            "cafe",
				Phone:                   "+254700111222",
				Address:                 "Kimathi Street, Nairobi",
				RewardDescription:       "Free coffee after 10 visits",
				VisitsRequiredForReward: 10,
			},
		},
		{
			email:    "clippers@example.com",
			password: "password123",
			input: services.BusinessInput{
				BusinessName:            "Clippers Barbershop",
				BusinessType:            "barbershop",
				Phone:                   "+254700333444",
				Address:                 "Moi Avenue, Nairobi",
				RewardDescription:       "Free haircut after 5 visits",
				VisitsRequiredForReward: 5,
			},
		},
	}

	customers := []seedCustomer{
		{phone: "+254711000001", name: "Wanjiku"},
		{phone: "+254711000002", name: "Otieno"},
		{phone: "+254711000003", name: ""},
	}

	businessIDs := make([]string, 0, len(businesses))
	for _, b := range businesses {
		account, _, err := authService.SignUp(ctx, b.email, b.password)
		if err != nil {
			log.Fatalf("Failed to create account %s: %v", b.email, err)
		}
		business, err := businessService.Register(ctx, account.ID, b.input)
		if err != nil {
			log.Fatalf("Failed to register business %s: %v", b.input.BusinessName, err)
		}
		businessIDs = append(businessIDs, business.ID)
		log.Printf("Seeded business %s (%s)", business.BusinessName, business.ID)
	}

	customerIDs := make([]string, 0, len(customers))
	for _, c := range customers {
		customer, err := customerService.FindOrCreate(ctx, c.phone, c.name)
		if err != nil {
			log.Fatalf("Failed to create customer %s: %v", c.phone, err)
		}
		customerIDs = append(customerIDs, customer.ID)
	}

	// Visit and reward rows normally come from the stamping flow; seed
	// them directly so the dashboard has something to aggregate.
	now := time.Now().UTC()
	for i, customerID := range customerIDs {
		for day := 0; day < 3; day++ {
			_, err := pgClient.DB().ExecContext(ctx, `
				INSERT INTO visits (id, business_id, customer_id, visit_date)
				VALUES ($1, $2, $3, $4)
			`, uuid.New().String(), businessIDs[i%len(businessIDs)], customerID, now.AddDate(0, 0, -day))
			if err != nil {
				log.Fatalf("Failed to seed visit: %v", err)
			}
		}
	}

	_, err = pgClient.DB().ExecContext(ctx, `
		INSERT INTO rewards (id, business_id, customer_id, earned_date, is_redeemed)
		VALUES ($1, $2, $3, $4, false)
	`, uuid.New().String(), businessIDs[0], customerIDs[0], now)
	if err != nil {
		log.Fatalf("Failed to seed reward: %v", err)
	}

	reviews := []struct {
		business int
		phone    string
		rating   int
		comment  string
	}{
		{0, "+254711000001", 5, "Best coffee in town"},
		{0, "+254711000002", 4, "Friendly staff"},
		{1, "+254711000003", 3, ""},
	}
	for _, r := range reviews {
		if _, err := reviewService.Submit(ctx, businessIDs[r.business], r.phone, r.rating, r.comment); err != nil {
			log.Fatalf("Failed to seed review: %v", err)
		}
	}

	log.Println("Seeding completed successfully")
}
