package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"macrofit/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numUsers := seedCmd.Int("users", utils.DefaultNumUsers, "Number of dummy users to create")
	skipCatalog := seedCmd.Bool("skip-catalog", false, "Skip seeding the food catalog")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])

		if !*skipCatalog {
			log.Println("Seeding food catalog...")
			if err := utils.SeedFoodCatalog(); err != nil {
				log.Fatalf("Error seeding food catalog: %v", err)
			}
		}

		if *numUsers > 0 {
			log.Printf("Starting user seeder with %d users", *numUsers)
			if err := utils.SeedUsers(*numUsers); err != nil {
				log.Fatalf("Error seeding users: %v", err)
			}
		}

	case "catalog":
		log.Println("Seeding food catalog...")
		if err := utils.SeedFoodCatalog(); err != nil {
			log.Fatalf("Error seeding food catalog: %v", err)
		}

	case "delete":
		log.Println("Deleting test users...")
		if err := utils.CleanupTestUsers(); err != nil {
			log.Fatalf("Error deleting test users: %v", err)
		}

	case "stats":
		userCount, err := utils.GetUserCount()
		if err != nil {
			log.Fatalf("Error getting stats: %v", err)
		}
		foodCount, err := utils.GetFoodCount()
		if err != nil {
			log.Fatalf("Error getting stats: %v", err)
		}
		log.Println("📊 Database Statistics:")
		log.Printf("   users: %d", userCount)
		log.Printf("   foods: %d", foodCount)

	case "help":
		printHelp()

	default:
		fmt.Printf("Unknown subcommand: %s\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Database utility tool for MacroFit")
	fmt.Println("\nUsage:")
	fmt.Println("  db-tool COMMAND [OPTIONS]")
	fmt.Println("\nCommands:")
	fmt.Println("  seed         Seed the food catalog and create dummy users")
	fmt.Println("               Options:")
	fmt.Println("                 --users=N          Number of dummy users to create (default: 1000)")
	fmt.Println("                 --skip-catalog     Skip seeding the food catalog")
	fmt.Println("")
	fmt.Println("  catalog      Seed only the food catalog")
	fmt.Println("")
	fmt.Println("  delete       Delete test users from the database")
	fmt.Println("")
	fmt.Println("  stats        Show user and food counts")
	fmt.Println("")
	fmt.Println("  help         Show this help message")
	fmt.Println("")
	fmt.Println("Examples:")
	fmt.Println("  db-tool seed --users=100       # Seed catalog plus 100 users")
	fmt.Println("  db-tool catalog                # Seed catalog only")
	fmt.Println("  db-tool stats                  # Show counts")
	fmt.Println("")
	fmt.Println("Environment variables:")
	fmt.Println("  DB_HOST      Database host (default: macrofit-db)")
	fmt.Println("  DB_PORT      Database port (default: 5432)")
	fmt.Println("  DB_USER      Database user (default: postgres)")
	fmt.Println("  DB_PASSWORD  Database password (default: postgres)")
	fmt.Println("  DB_NAME      Database name (default: macrofit)")
	fmt.Println("  DB_SSLMODE   Database SSL mode (default: disable)")
	fmt.Println("  DB_TIMEZONE  Database timezone (default: UTC)")
}
