package main

import (
	"log"
	"time"

	"creatortrust/internal/config"
	"creatortrust/internal/database"
	"creatortrust/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a demo marketplace: two creators, one brand, campaigns across the
// lifecycle and a funded payment. Safe to run once against an empty DB.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	var count int64
	db.Model(&domain.User{}).Count(&count)
	if count > 0 {
		log.Println("Database already has users, nothing to seed")
		return
	}

	if err := seed(db); err != nil {
		log.Fatal(err)
	}
	log.Println("Seed complete")
}

func seed(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	creator1 := domain.User{Email: "dana@creators.io", PasswordHash: string(hash), UserType: domain.RoleCreator}
	creator2 := domain.User{Email: "liam@creators.io", PasswordHash: string(hash), UserType: domain.RoleCreator}
	brand := domain.User{Email: "marketing@acme.io", PasswordHash: string(hash), UserType: domain.RoleBrand}
	for _, u := range []*domain.User{&creator1, &creator2, &brand} {
		if err := db.Create(u).Error; err != nil {
			return err
		}
	}

	danaProfile := domain.CreatorProfile{
		UserID: creator1.ID, Name: "Dana Park", Bio: "Tech reviews and tutorials",
		Niche: "Tech", Location: "Berlin",
		InstagramHandle: "dana.tech", FollowersInstagram: 48000,
		TiktokHandle: "danatech", FollowersTiktok: 120000,
		EngagementRate: 7.2, SubscriptionTier: domain.TierPro,
		Rating: 4.6, TotalCampaigns: 9,
	}
	liamProfile := domain.CreatorProfile{
		UserID: creator2.ID, Name: "Liam Ortega", Bio: "Fitness and lifestyle",
		Niche: "Fitness", Location: "Austin",
		InstagramHandle: "liamfit", FollowersInstagram: 95000,
		YoutubeHandle: "LiamOrtegaFit", FollowersYoutube: 60000,
		EngagementRate: 5.1, SubscriptionTier: domain.TierFree,
		Rating: 4.1, TotalCampaigns: 4,
	}
	acmeProfile := domain.BrandProfile{
		UserID: brand.ID, CompanyName: "Acme Gear", Industry: "Consumer electronics",
		Website: "https://acme.example", Description: "Gadgets for everyone",
	}
	if err := db.Create(&danaProfile).Error; err != nil {
		return err
	}
	if err := db.Create(&liamProfile).Error; err != nil {
		return err
	}
	if err := db.Create(&acmeProfile).Error; err != nil {
		return err
	}

	open := domain.Campaign{
		BrandID: acmeProfile.ID, Title: "Earbuds launch", Description: "Unbox and review our new earbuds",
		Budget: 800, Platforms: []string{"instagram", "tiktok"}, DurationDays: 21,
		Status: domain.CampaignOpen, Niche: "Tech", MinFollowers: 20000,
		ContentRequirements: "1 reel + 1 story", Deadline: time.Now().AddDate(0, 0, 21),
	}
	assigned := domain.Campaign{
		BrandID: acmeProfile.ID, CreatorID: &danaProfile.ID,
		Title: "Smartwatch teaser", Description: "Teaser content for the new watch",
		Budget: 1200, Platforms: []string{"tiktok"}, DurationDays: 14,
		Status: domain.CampaignAssigned, Niche: "Tech", MinFollowers: 50000,
		ContentRequirements: "2 short videos", Deadline: time.Now().AddDate(0, 0, 14),
	}
	if err := db.Create(&open).Error; err != nil {
		return err
	}
	if err := db.Create(&assigned).Error; err != nil {
		return err
	}

	escrow := domain.Payment{
		CampaignID: assigned.ID, Amount: 1200,
		Status: domain.PaymentEscrowed, PaymentReference: "escrow-seed-0001",
	}
	if err := db.Create(&escrow).Error; err != nil {
		return err
	}

	review := domain.Review{
		CampaignID: assigned.ID, CreatorID: danaProfile.ID, BrandID: acmeProfile.ID,
		Rating: 5, Comment: "Great turnaround and quality",
	}
	return db.Create(&review).Error
}
