package main

import (
	"fmt"

	bookingRepoPkg "servana/database/repository/booking"
	profileRepoPkg "servana/database/repository/profile"
	reviewRepoPkg "servana/database/repository/review"
	taskRepoPkg "servana/database/repository/task"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(ensureIndexesCmd)
}

var ensureIndexesCmd = &cobra.Command{
	Use:   "ensure-indexes",
	Short: "Create the collection indexes used by the API server",
	RunE:  runEnsureIndexes,
}

// Index creation runs inside each repository constructor, so instantiating
// them is the whole job.
func runEnsureIndexes(cmd *cobra.Command, args []string) error {
	profileRepoPkg.NewMongoProfileRepo()
	taskRepoPkg.NewMongoTaskRepo()
	bookingRepoPkg.NewMongoBookingRepo()
	reviewRepoPkg.NewMongoReviewRepo()

	fmt.Println("Indexes ensured for profiles, tasks, bookings and reviews.")
	return nil
}
