package main

import (
	"log"
	"os"

	"kabstudio/internal/database"
	"kabstudio/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "kabstudio.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Portfolio{},
		&domain.Project{},
		&domain.Founder{},
		&domain.About{},
		&domain.Contact{},
		&domain.FAQ{},
		&domain.Service{},
		&domain.Asset{},
		&domain.OTP{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// ================== ADMIN ==================
	log.Println("Creating admin...")
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}
	adminHash, _ := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	admin := domain.User{
		Name:         "Admin",
		Email:        "admin@kabstudio.kz",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "password_hash", "role"}),
	}).Create(&admin)
	log.Println("Admin: admin@kabstudio.kz /", adminPassword)

	// ================== PORTFOLIO ==================
	var portfolioCount int64
	db.Model(&domain.Portfolio{}).Count(&portfolioCount)
	if portfolioCount == 0 {
		log.Println("Creating portfolio...")
		db.Create(&domain.Portfolio{
			HeroImages:      []string{},
			AboutText:       "Videographer and visual storyteller based in Almaty.",
			ExperienceYears: "7",
			Skills:          []string{"Videography", "Color grading", "Motion design"},
			Experiences: []domain.Experience{
				{Title: "Lead Videographer", Company: "KAB Studio", Period: "2019 - present", Description: "Commercial and documentary production."},
			},
			SampleWorks: []domain.SampleWork{
				{Title: "Brand film", Description: "Launch film for a local brand", Type: domain.MediaYoutube, MediaUrls: []string{}, YoutubeUrl: "https://youtube.com/watch?v=dQw4w9WgXcQ"},
			},
		})
	}

	// ================== FOUNDER / ABOUT ==================
	var founderCount int64
	db.Model(&domain.Founder{}).Count(&founderCount)
	if founderCount == 0 {
		log.Println("Creating founder...")
		db.Create(&domain.Founder{
			Name:    "Kuanysh",
			Message: "Every frame should tell a story.",
			Images:  []string{},
		})
	}

	var aboutCount int64
	db.Model(&domain.About{}).Count(&aboutCount)
	if aboutCount == 0 {
		log.Println("Creating about page...")
		db.Create(&domain.About{
			Title:   "About KAB Studio",
			Content: "A small production studio focused on video and photography.",
			Mission: "Make professional visuals accessible.",
			Vision:  "Be the go-to studio for ambitious local brands.",
		})
	}

	// ================== PROJECTS ==================
	var projectCount int64
	db.Model(&domain.Project{}).Count(&projectCount)
	if projectCount == 0 {
		log.Println("Creating projects...")
		db.Create(&domain.Project{
			Title:       "City lights",
			Description: "Night-time promo shot across Almaty",
			Category:    domain.CategoryVideo,
			Type:        domain.MediaYoutube,
			MediaFiles:  []string{},
			YoutubeUrl:  "https://youtube.com/watch?v=dQw4w9WgXcQ",
			IsActive:    true,
			Order:       1,
		})
		db.Create(&domain.Project{
			Title:       "Product lookbook",
			Description: "Studio photography for an online store",
			Category:    domain.CategoryPhotograph,
			Type:        domain.MediaImage,
			MediaFiles:  []string{},
			IsActive:    true,
			Order:       2,
		})
	}

	// ================== FAQS / SERVICES ==================
	var faqCount int64
	db.Model(&domain.FAQ{}).Count(&faqCount)
	if faqCount == 0 {
		log.Println("Creating FAQs...")
		db.Create(&domain.FAQ{Question: "How long does a typical project take?", Answer: "Most projects are delivered within two weeks.", Order: 1, IsActive: true})
		db.Create(&domain.FAQ{Question: "Do you travel for shoots?", Answer: "Yes, travel within Kazakhstan is included on request.", Order: 2, IsActive: true})
	}

	var serviceCount int64
	db.Model(&domain.Service{}).Count(&serviceCount)
	if serviceCount == 0 {
		log.Println("Creating services...")
		db.Create(&domain.Service{Title: "Commercial video", Description: "Concept to final cut for product and brand films.", Icon: "video", Order: 1, IsActive: true})
		db.Create(&domain.Service{Title: "Photography", Description: "Studio and on-location photo shoots.", Icon: "camera", Order: 2, IsActive: true})
		db.Create(&domain.Service{Title: "Branding", Description: "Visual identity packages for new businesses.", Icon: "palette", Order: 3, IsActive: true})
	}

	log.Println("Seed completed")
}
