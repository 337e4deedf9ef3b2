package main

import (
	"fmt"
	"log"
	"os"

	"github.com/NyaySahayak/nyaysahayak_backend/internal/config"
	"github.com/NyaySahayak/nyaysahayak_backend/internal/models"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: migrate [up|down]")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	switch os.Args[1] {
	case "up":
		err = db.AutoMigrate(
			&models.Act{},
			&models.SavedAct{},
			&models.Lawyer{},
			&models.User{},
		)
		if err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		fmt.Println("migration complete")

	case "down":
		err = db.Migrator().DropTable(
			&models.SavedAct{},
			&models.Act{},
			&models.Lawyer{},
			&models.User{},
		)
		if err != nil {
			log.Fatalf("drop failed: %v", err)
		}
		fmt.Println("tables dropped")

	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}
