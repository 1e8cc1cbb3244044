package routes

import (
	"github.com/gofiber/fiber/v2"

	"mddrc-backend/internal/controllers"
	"mddrc-backend/internal/middleware"
	"mddrc-backend/internal/services"
	"mddrc-backend/internal/validation"
)

// Setup mounts every resource under /api. Login, password reset and
// reading settings are public; everything else needs a bearer token of an
// active user.
func Setup(app *fiber.App, svc *services.Services, secret string) {
	v := validation.New()
	api := app.Group("/api")
	secured := []fiber.Handler{middleware.JWTAuth(secret), middleware.LoadUser(svc.Auth)}
	group := func(prefix string) fiber.Router {
		return api.Group(prefix, secured...)
	}

	SetupRoutesAuth(api, controllers.NewAuthHandler(svc.Auth, v), secured)
	SetupRoutesSettings(api, controllers.NewSettingsHandler(svc.Settings, v), secured)

	SetupRoutesUser(group("/users"), controllers.NewUserHandler(svc.Users, v))
	SetupRoutesCatalog(group("/companies"), group("/programs"), controllers.NewCatalogHandler(svc.Catalog, v))
	SetupRoutesSession(group("/sessions"), controllers.NewSessionHandler(svc.Sessions, v))
	SetupRoutesAccess(group("/participant-access"), controllers.NewAccessHandler(svc.Access, v))
	SetupRoutesTest(group("/tests"), controllers.NewTestHandler(svc.Tests, v))
	SetupRoutesAttendance(group("/attendance"), controllers.NewAttendanceHandler(svc.Attendance, v))
	SetupRoutesCertificate(group("/certificates"), controllers.NewCertificateHandler(svc.Certificates))
	SetupRoutesFeedback(group("/feedback"), controllers.NewFeedbackHandler(svc.Feedback, v))
	SetupRoutesChecklist(group, controllers.NewChecklistHandler(svc.Checklists, v))
	SetupRoutesReport(group("/training-reports"), controllers.NewReportHandler(svc.Reports, v))
	SetupRoutesData(group("/admin/data-management"), controllers.NewDataHandler(svc.Data, svc.Audit, v))
}

func SetupRoutesAuth(api fiber.Router, h *controllers.AuthHandler, secured []fiber.Handler) {
	auth := api.Group("/auth")
	auth.Post("/login", h.Login)
	auth.Post("/forgot-password", h.ForgotPassword)
	auth.Post("/reset-password", h.ResetPassword)

	auth.Post("/register", append(secured, h.Register)...)
	auth.Get("/me", append(secured, h.Me)...)
	auth.Post("/change-password", append(secured, h.ChangePassword)...)
}

func SetupRoutesSettings(api fiber.Router, h *controllers.SettingsHandler, secured []fiber.Handler) {
	api.Get("/settings", h.GetSettings)
	api.Put("/settings", append(secured, h.UpdateSettings)...)
}

func SetupRoutesUser(r fiber.Router, h *controllers.UserHandler) {
	r.Get("/", h.ListUsers)
	r.Get("/:id", h.GetUser)
	r.Put("/:id", h.UpdateUser)
	r.Delete("/:id", h.DeleteUser)
}

func SetupRoutesCatalog(companies, programs fiber.Router, h *controllers.CatalogHandler) {
	companies.Get("/", h.ListCompanies)
	companies.Post("/", h.CreateCompany)
	companies.Get("/:id", h.GetCompany)
	companies.Put("/:id", h.UpdateCompany)
	companies.Delete("/:id", h.DeleteCompany)

	programs.Get("/", h.ListPrograms)
	programs.Post("/", h.CreateProgram)
	programs.Get("/:id", h.GetProgram)
	programs.Put("/:id", h.UpdateProgram)
	programs.Delete("/:id", h.DeleteProgram)
}

func SetupRoutesAccess(r fiber.Router, h *controllers.AccessHandler) {
	r.Post("/update", h.UpdateAccess)
	r.Get("/session/:session_id", h.SessionAccess)
	r.Post("/session/:session_id/toggle", h.ToggleAccess)
	r.Get("/:session_id", h.MyAccess)
}
