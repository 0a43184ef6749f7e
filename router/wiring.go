package router

import (
	"database/sql"

	"ahudio-admin-server/internal/config"
	"ahudio-admin-server/internal/db"
	"ahudio-admin-server/internal/handlers"
	"ahudio-admin-server/internal/services"
	"ahudio-admin-server/internal/vapi"
	"ahudio-admin-server/pkg/middleware"
)

// BuildHandlers wires repositories, services and handlers over one database and one remote client
func BuildHandlers(sqlDB *sql.DB, client *vapi.Client, issuer *middleware.TokenIssuer, cfg *config.Config) Handlers {
	// Repositories
	adminRepo := db.NewAdminRepository(sqlDB)
	messageRepo := db.NewMessageRepository(sqlDB)
	emailRepo := db.NewEmailRepository(sqlDB)
	contactRepo := db.NewPhoneContactRepository(sqlDB)
	aboutRepo := db.NewAboutRepository(sqlDB)
	propertyRepo := db.NewPropertyRepository(sqlDB)
	assistantRepo := db.NewAssistantRepository(sqlDB)
	phoneRepo := db.NewPhoneNumberRepository(sqlDB)

	// Services
	syncService := services.NewSyncService(assistantRepo, phoneRepo, client, client)
	authService := services.NewAuthService(adminRepo, issuer, cfg.Auth.BootstrapUsername)
	propertyService := services.NewPropertyService(propertyRepo)

	return Handlers{
		Auth:          handlers.NewAuthHandler(authService),
		Messages:      handlers.NewMessageHandler(services.NewMessageService(messageRepo)),
		Emails:        handlers.NewEmailHandler(services.NewEmailService(emailRepo)),
		PhoneContacts: handlers.NewPhoneContactHandler(services.NewPhoneContactService(contactRepo)),
		About: handlers.NewAboutHandler(
			services.NewAboutService(aboutRepo, cfg.Upload.MaxBytes),
			services.NewPublicService(aboutRepo, emailRepo, contactRepo, phoneRepo),
			propertyService,
		),
		Assistants: handlers.NewAssistantHandler(
			services.NewAssistantService(assistantRepo, client, syncService),
			services.NewCatalogService(client),
		),
		Phones: handlers.NewPhoneHandler(services.NewPhoneService(phoneRepo, client, syncService)),
		Dashboard: handlers.NewDashboardHandler(
			services.NewDashboardService(client),
			services.NewSettingsService(assistantRepo, propertyRepo, client, syncService),
		),
	}
}
