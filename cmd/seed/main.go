package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm/clause"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/catalog"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/services"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/utils"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

var (
	skipServices bool
	withAdmin    bool
	skipPrompt   bool
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Prepare the Fixora database",
	Long:  `Creates the schema, inserts the demo catalog and optionally an admin account.`,
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	rootCmd.Flags().BoolVar(&skipServices, "skip-services", false, "Do not insert the demo services")
	rootCmd.Flags().BoolVar(&withAdmin, "admin", false, "Create an admin account without asking first")
	rootCmd.Flags().BoolVarP(&skipPrompt, "yes", "y", false, "Never prompt; skips the admin step unless --admin is set")
}

// main runs the seeder.
// Usage: go run ./cmd/seed [--skip-services] [--admin]
// This is a standalone CLI tool, not part of the main application
func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("FIXORA - Database Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.App = config.Load()
	if err := config.InitLogger(config.App.Env); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	// no deadline: the admin prompt below waits on stdin
	ctx := cmd.Context()

	if err := config.Gorm.AutoMigrate(&models.Service{}, &models.User{}, &models.ActivityLog{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if _, err := config.DB.Exec(ctx, utils.LoginEventsDDL); err != nil {
		return fmt.Errorf("create login_events: %w", err)
	}
	log.Println("✓ Schema up to date")

	if !skipServices {
		demo := catalog.DemoServices()
		result := config.Gorm.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&demo)
		if result.Error != nil {
			return fmt.Errorf("seed services: %w", result.Error)
		}
		log.Printf("✓ Demo services inserted: %d (of %d)", result.RowsAffected, len(demo))
	}

	total, err := catalog.NewGormStore(config.Gorm).Count(ctx)
	if err != nil {
		return fmt.Errorf("count services: %w", err)
	}
	log.Printf("✓ Catalog holds %d services", total)

	if !withAdmin && (skipPrompt || !confirm("Create an admin account? [y/N]: ")) {
		fmt.Println("Done.")
		return nil
	}

	auth := services.NewAuthService(services.NewGormUserStore(config.Gorm))
	req := getAdminCredentials(auth)
	user, err := auth.Register(ctx, req)
	if errors.Is(err, services.ErrUserExists) {
		fmt.Printf("❌ Account with email '%s' already exists\n", req.Email)
		return nil
	}
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Admin Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", user.ID)
	fmt.Printf("Email: %s\n", user.Email)
	fmt.Printf("Name:  %s\n", user.Name)
	fmt.Printf("Role:  %s\n", user.Role)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run .")
	fmt.Println("2. Login at POST /api/v1/auth/login with email and password")
	fmt.Println("3. Use the returned token (or the session cookie) for authenticated requests")
	fmt.Println()
	return nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	var answer string
	fmt.Scanln(&answer)
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

// getAdminCredentials prompts user for admin details
func getAdminCredentials(auth *services.AuthService) models.RegisterRequest {
	req := models.RegisterRequest{Role: models.RoleAdmin}
	fmt.Println("Enter Admin Details:")
	fmt.Println()

	for {
		fmt.Print("Email: ")
		fmt.Scanln(&req.Email)
		if req.Email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	for {
		fmt.Print("Name: ")
		fmt.Scanln(&req.Name)
		if req.Name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&req.Password)
		if !auth.ValidatePassword(req.Password) {
			fmt.Println("❌ Password must be at least 8 characters")
			continue
		}
		break
	}

	for {
		fmt.Print("Confirm Password: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm == req.Password {
			break
		}
		fmt.Println("❌ Passwords do not match")
	}

	fmt.Println()
	return req
}
