package main

import (
	"fmt"
	"time"

	bookingRepoPkg "servana/database/repository/booking"
	profileRepoPkg "servana/database/repository/profile"
	taskRepoPkg "servana/database/repository/task"
	"servana/models"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample customers, providers, tasks and bookings",
	RunE:  runSeed,
}

const seedPassword = "servana123"

type seedProvider struct {
	name      string
	email     string
	phone     string
	skillTags []string
	rate      float64
	rating    float64
}

var seedProviders = []seedProvider{
	{"Grace Wanjiru", "grace@servana.dev", "0700000001", []string{"home_cleaning"}, 18, 4.8},
	{"Peter Otieno", "peter@servana.dev", "0700000002", []string{"plumbing", "handyman"}, 25, 4.6},
	{"Mary Akinyi", "mary@servana.dev", "0700000003", []string{"electrical"}, 30, 4.9},
	{"James Mwangi", "james@servana.dev", "0700000004", []string{"gardening", "car_wash"}, 15, 4.2},
	{"Lucy Njeri", "lucy@servana.dev", "0700000005", []string{"massage", "facial"}, 40, 4.7},
}

func runSeed(cmd *cobra.Command, args []string) error {
	profiles := profileRepoPkg.NewMongoProfileRepo()
	tasks := taskRepoPkg.NewMongoTaskRepo()
	bookings := bookingRepoPkg.NewMongoBookingRepo()

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()

	customer := &models.Profile{
		ID:           uuid.New().String(),
		Name:         "Sample Customer",
		Email:        "customer@servana.dev",
		Phone:        "0700000100",
		Address:      "14 Riverside Drive",
		Role:         models.RoleCustomer,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if existing, _ := profiles.GetByEmail(customer.Email); existing != nil {
		return fmt.Errorf("sample data already present (found %s); aborting", customer.Email)
	}
	if err := profiles.Create(customer); err != nil {
		return err
	}

	var providerIDs []string
	for _, p := range seedProviders {
		provider := &models.Profile{
			ID:           uuid.New().String(),
			Name:         p.name,
			Email:        p.email,
			Phone:        p.phone,
			Role:         models.RoleProvider,
			PasswordHash: string(hash),
			SkillTags:    p.skillTags,
			HourlyRate:   p.rate,
			Rating:       p.rating,
			Available:    true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := profiles.Create(provider); err != nil {
			return err
		}
		providerIDs = append(providerIDs, provider.ID)
	}

	task := &models.Task{
		ID:          uuid.New().String(),
		Title:       "Deep clean two-bedroom apartment",
		Description: "Kitchen, bathrooms and windows included",
		CustomerID:  customer.ID,
		Status:      models.TaskOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := tasks.Create(task); err != nil {
		return err
	}

	if err := bookings.Create(&models.Booking{
		ID:         uuid.New().String(),
		TaskID:     task.ID,
		CustomerID: customer.ID,
		ProviderID: providerIDs[0],
		Status:     models.BookingPending,
	}); err != nil {
		return err
	}

	fmt.Printf("Seeded 1 customer, %d providers, 1 task and 1 booking.\n", len(seedProviders))
	fmt.Printf("All sample accounts use the password %q.\n", seedPassword)
	return nil
}
