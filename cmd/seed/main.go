package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/ikkim/creme-backend/config"
	"github.com/ikkim/creme-backend/internal/db"
)

func main() {
	assumeYes := flag.Bool("y", false, "skip the confirmation prompt")
	flag.Usage = func() {
		fmt.Println("Usage: go run ./cmd/seed [-y] [menu.xlsx]")
		fmt.Println("Without a file the fallback menu is copied into empty tables.")
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if !cfg.Database.Configured() {
		log.Fatal("No menu store configured: set DATABASE_URL or DB_HOST")
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if flag.NArg() == 0 {
		if err := db.Seed(); err != nil {
			log.Fatal("Failed to seed fallback menu:", err)
		}
		fmt.Println("Fallback menu seeded.")
		return
	}

	filePath := flag.Arg(0)
	fmt.Printf("Reading XLSX file: %s\n", filePath)
	sheet, err := readMenuFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Categories to import: %d\n", len(sheet.Categories))
	fmt.Printf("Products to import: %d (skipped %d invalid rows)\n", len(sheet.Products), sheet.Skipped)

	if !*assumeYes {
		fmt.Print("Do you want to proceed with the import? (yes/no): ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "yes" && confirm != "y" {
			fmt.Println("Import cancelled.")
			return
		}
	}

	if err := importMenu(context.Background(), db.GetDB(), sheet); err != nil {
		log.Fatal("Failed to import menu:", err)
	}

	fmt.Println("Import completed successfully!")
}
