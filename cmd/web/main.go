package main

import (
	"log"

	"creatortrust/internal/config"
	"creatortrust/internal/webapp"
)

func main() {
	cfg := config.Load()

	srv := webapp.NewServer(cfg.APIBaseURL, cfg.JWTAccessTTL)

	log.Printf("Web frontend listening on %s (API at %s)", cfg.WebAddr, cfg.APIBaseURL)
	if err := srv.Run(cfg.WebAddr); err != nil {
		log.Fatal(err)
	}
}
