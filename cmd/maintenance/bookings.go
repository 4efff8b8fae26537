package main

import (
	"fmt"
	"strings"

	bookingRepoPkg "servana/database/repository/booking"
	profileRepoPkg "servana/database/repository/profile"
	"servana/models"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"
)

func init() {
	rootCmd.AddCommand(backfillTimestampsCmd)
	rootCmd.AddCommand(repairCustomersCmd)
	rootCmd.AddCommand(normalizeStatusCmd)
}

var backfillTimestampsCmd = &cobra.Command{
	Use:   "backfill-timestamps",
	Short: "Stamp missing per-status timestamps on legacy bookings",
	Long: `Bookings created before per-status timestamps existed have a status
but no acceptedAt/startedAt/completedAt/cancelledAt. This fills the
timestamps implied by the current status with the booking's creation time.`,
	RunE: runBackfillTimestamps,
}

func runBackfillTimestamps(cmd *cobra.Command, args []string) error {
	repo := bookingRepoPkg.NewMongoBookingRepo()

	bookings, err := repo.List(bson.M{})
	if err != nil {
		return err
	}

	updated := 0
	for _, b := range bookings {
		fields := bson.M{}
		switch b.Status {
		case models.BookingAccepted:
			if b.AcceptedAt == nil {
				fields["acceptedAt"] = b.CreatedAt
			}
		case models.BookingInProgress:
			if b.AcceptedAt == nil {
				fields["acceptedAt"] = b.CreatedAt
			}
			if b.StartedAt == nil {
				fields["startedAt"] = b.CreatedAt
			}
		case models.BookingCompleted:
			if b.AcceptedAt == nil {
				fields["acceptedAt"] = b.CreatedAt
			}
			if b.StartedAt == nil {
				fields["startedAt"] = b.CreatedAt
			}
			if b.CompletedAt == nil {
				fields["completedAt"] = b.CreatedAt
			}
		case models.BookingCancelled:
			if b.CancelledAt == nil {
				fields["cancelledAt"] = b.CreatedAt
			}
		}
		if len(fields) == 0 {
			continue
		}
		if _, err := repo.UpdateFields(b.ID, fields); err != nil {
			return fmt.Errorf("booking %s: %w", b.ID, err)
		}
		updated++
	}

	fmt.Printf("Backfilled timestamps on %d of %d bookings.\n", updated, len(bookings))
	return nil
}

var repairCustomersCmd = &cobra.Command{
	Use:   "repair-customers",
	Short: "Round-robin assign customers to bookings missing a customer reference",
	RunE:  runRepairCustomers,
}

func runRepairCustomers(cmd *cobra.Command, args []string) error {
	bookings := bookingRepoPkg.NewMongoBookingRepo()
	profiles := profileRepoPkg.NewMongoProfileRepo()

	orphaned, err := bookings.List(bson.M{"$or": []bson.M{
		{"customerId": ""},
		{"customerId": bson.M{"$exists": false}},
	}})
	if err != nil {
		return err
	}
	if len(orphaned) == 0 {
		fmt.Println("No bookings with a missing customer reference.")
		return nil
	}

	customers, err := profiles.ListByRole(models.RoleCustomer)
	if err != nil {
		return err
	}
	if len(customers) == 0 {
		return fmt.Errorf("no customer profiles to assign")
	}

	for i, b := range orphaned {
		customer := customers[i%len(customers)]
		if _, err := bookings.UpdateFields(b.ID, bson.M{"customerId": customer.ID}); err != nil {
			return fmt.Errorf("booking %s: %w", b.ID, err)
		}
		fmt.Printf("Booking %s assigned to customer %s.\n", b.ID, customer.ID)
	}

	fmt.Printf("Repaired %d bookings across %d customers.\n", len(orphaned), len(customers))
	return nil
}

var normalizeStatusCmd = &cobra.Command{
	Use:   "normalize-status",
	Short: "Rewrite legacy or unknown booking statuses to a legal value",
	Long: `Earlier deployments stored cancelled bookings as "completed" with a
cancellation timestamp, and some rows carry misspelled or unknown status
strings. This rewrites every booking to one of the six legal statuses.`,
	RunE: runNormalizeStatus,
}

// legacyStatuses maps spellings found in old data to their canonical value.
var legacyStatuses = map[string]models.BookingStatus{
	"canceled":    models.BookingCancelled,
	"cancelled":   models.BookingCancelled,
	"in_progress": models.BookingInProgress,
	"inprogress":  models.BookingInProgress,
	"done":        models.BookingCompleted,
	"rejected":    models.BookingDeclined,
}

func runNormalizeStatus(cmd *cobra.Command, args []string) error {
	repo := bookingRepoPkg.NewMongoBookingRepo()

	bookings, err := repo.List(bson.M{})
	if err != nil {
		return err
	}

	updated := 0
	for _, b := range bookings {
		target := b.Status

		if !target.IsValid() {
			if mapped, ok := legacyStatuses[strings.ToLower(strings.TrimSpace(string(target)))]; ok {
				target = mapped
			} else {
				fmt.Printf("Booking %s has unknown status %q, resetting to pending.\n", b.ID, b.Status)
				target = models.BookingPending
			}
		}

		// Old rows stored cancellations as completed to satisfy a status
		// constraint that no longer exists.
		if target == models.BookingCompleted && b.CancelledAt != nil {
			target = models.BookingCancelled
		}

		if target == b.Status {
			continue
		}
		fields := bson.M{"status": target}
		if target == models.BookingCancelled && b.CancelledAt == nil {
			fields["cancelledAt"] = b.CreatedAt
		}
		if _, err := repo.UpdateFields(b.ID, fields); err != nil {
			return fmt.Errorf("booking %s: %w", b.ID, err)
		}
		updated++
	}

	fmt.Printf("Normalized %d of %d bookings.\n", updated, len(bookings))
	return nil
}
