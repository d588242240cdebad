// Command bakehouse manages the Pam Lee's Kitchen storefront: it runs
// the server, migrations, seeders, queue workers, and the scheduler.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Imported so their init() funcs register migrations and seeders.
	_ "github.com/pamleeskitchen/bakehouse/database/migrations"
	_ "github.com/pamleeskitchen/bakehouse/database/seeders"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bakehouse",
	Short: "Pam Lee's Kitchen storefront",
	Long:  "Bakehouse runs the Pam Lee's Kitchen online storefront: catalog, cart, checkout, and the admin panel.",
}

func init() {
	// Server
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Database
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)

	// Workers
	rootCmd.AddCommand(queueWorkCmd)
	rootCmd.AddCommand(scheduleRunCmd)
}
