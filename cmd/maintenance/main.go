// Command maintenance bundles the one-off data repair and setup scripts that
// operate directly on the database, outside the API server.
package main

import (
	"fmt"
	"os"

	"servana/config"
	"servana/database"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "maintenance",
	Short: "Servana data maintenance and repair commands",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadConfig()
		database.InitDB()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
