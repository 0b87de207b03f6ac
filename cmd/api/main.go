package main

import (
	"log"

	"creatortrust/internal/app"
	"creatortrust/internal/config"
	"creatortrust/internal/database"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	r := app.BuildRouter(db, cfg)

	log.Printf("API listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
