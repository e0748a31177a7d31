package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"kabstudio/internal/database"
	"kabstudio/internal/domain"
	"kabstudio/internal/mailer"
	"kabstudio/internal/media"
	"kabstudio/internal/middleware"
	"kabstudio/internal/modules/about"
	"kabstudio/internal/modules/asset"
	"kabstudio/internal/modules/auth"
	"kabstudio/internal/modules/contact"
	"kabstudio/internal/modules/faq"
	"kabstudio/internal/modules/founder"
	"kabstudio/internal/modules/portfolio"
	"kabstudio/internal/modules/project"
	"kabstudio/internal/modules/services"
	"kabstudio/internal/modules/user"
	jwtsvc "kabstudio/internal/pkg/jwt"
	"kabstudio/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

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
		log.Fatal(err)
	}

	store := buildMediaStore()
	mail := buildMailer()

	userRepo := repository.NewUserRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	founderRepo := repository.NewFounderRepository(db)
	aboutRepo := repository.NewAboutRepository(db)
	contactRepo := repository.NewContactRepository(db)
	faqRepo := repository.NewFAQRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	otpRepo := repository.NewOTPRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	hub := contact.NewHub()
	defer hub.Close()

	authHandler := auth.NewHandler(auth.NewService(userRepo, otpRepo, j, mail))
	userHandler := user.NewHandler(user.NewService(userRepo, store))
	portfolioHandler := portfolio.NewHandler(portfolio.NewService(portfolioRepo, store))
	projectHandler := project.NewHandler(project.NewService(projectRepo, store))
	founderHandler := founder.NewHandler(founder.NewService(founderRepo, store))
	aboutHandler := about.NewHandler(aboutRepo)
	contactHandler := contact.NewHandler(contact.NewService(contactRepo, mail, hub), hub)
	faqHandler := faq.NewHandler(faqRepo)
	servicesHandler := services.NewHandler(serviceRepo)
	assetHandler := asset.NewHandler(assetRepo, userRepo)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	if disk, ok := store.(*media.DiskStore); ok {
		r.Static(disk.StaticBase(), disk.BaseDir())
	}

	api := r.Group("/api")

	authed := api.Group("/")
	authed.Use(middleware.Auth(j))

	admin := authed.Group("/")
	admin.Use(middleware.AdminOnly())

	auth.RegisterRoutes(api, authed, authHandler)
	user.RegisterRoutes(authed, admin, userHandler)
	portfolio.RegisterRoutes(api, admin, portfolioHandler)
	project.RegisterRoutes(api, admin, projectHandler)
	founder.RegisterRoutes(api, admin, founderHandler)
	about.RegisterRoutes(api, admin, aboutHandler)
	contact.RegisterRoutes(api, admin, contactHandler)
	faq.RegisterRoutes(api, admin, faqHandler)
	services.RegisterRoutes(api, admin, servicesHandler)
	asset.RegisterRoutes(authed, admin, assetHandler)

	log.Println("Listening on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func buildMediaStore() media.Store {
	dir := os.Getenv("MEDIA_DIR")
	if dir == "" {
		dir = "./uploads"
	}
	base := os.Getenv("MEDIA_BASE_URL")
	if base == "" {
		base = "/static"
	}
	return media.NewDiskStore(dir, base)
}

func buildMailer() mailer.Mailer {
	endpoint := os.Getenv("MAIL_API_ENDPOINT")
	apiKey := os.Getenv("MAIL_API_KEY")
	from := os.Getenv("MAIL_FROM")
	if endpoint == "" || apiKey == "" || from == "" {
		log.Println("Mail API not configured, using console mailer")
		return mailer.NewConsoleMailer()
	}
	return mailer.NewAPIMailer(endpoint, apiKey, from)
}
