// cmd/createbharat/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/auth"
	"github.com/ajaypanchal761/createbharat-sub000/internal/config"
	"github.com/ajaypanchal761/createbharat-sub000/internal/repository"
	"github.com/ajaypanchal761/createbharat-sub000/internal/service"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "createbharat",
	Short: "CreateBharat platform API server",
	Long:  `CreateBharat serves the internship, mentorship, legal, loan and training platform API.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var (
	seedEmail    string
	seedPassword string
	seedName     string
)

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the bootstrap super admin account",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		db, err := setupDatabase(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		adminService := service.NewAdminService(
			repository.NewAdminRepository(db),
			auth.NewPasswordHasher(),
			auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		admin, err := adminService.Seed(ctx, seedEmail, seedPassword, seedName)
		if err != nil {
			log.Fatalf("Failed to seed admin: %v", err)
		}

		fmt.Printf("Created super admin %s (%s)\n", admin.Email, admin.ID)
	},
}

func init() {
	seedAdminCmd.Flags().StringVar(&seedEmail, "email", "", "Admin email address")
	seedAdminCmd.Flags().StringVar(&seedPassword, "password", "", "Admin password")
	seedAdminCmd.Flags().StringVar(&seedName, "name", "Administrator", "Admin display name")
	seedAdminCmd.MarkFlagRequired("email")
	seedAdminCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedAdminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}
