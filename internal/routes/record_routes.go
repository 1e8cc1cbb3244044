package routes

import (
	"github.com/gofiber/fiber/v2"

	"mddrc-backend/internal/controllers"
)

func SetupRoutesCertificate(r fiber.Router, h *controllers.CertificateHandler) {
	r.Get("/my-certificates", h.MyCertificates)
	r.Get("/repository", h.Repository)
	r.Get("/participant/:pid", h.ParticipantCertificates)
	r.Get("/session/:sid", h.SessionCertificates)
	r.Post("/generate/:sid/:pid", h.Generate)
	r.Post("/upload/:sid/:pid", h.Upload)
	r.Get("/download/:cid", h.Download)
	r.Get("/download/:sid/:pid", h.DownloadFor)
	r.Get("/eligibility/:sid/:pid", h.Eligibility)
}

func SetupRoutesFeedback(r fiber.Router, h *controllers.FeedbackHandler) {
	r.Get("/templates/:pid", h.Templates)
	r.Post("/templates", h.SaveTemplate)
	r.Delete("/templates/:id", h.DeleteTemplate)
	r.Post("/submit", h.Submit)
	r.Get("/session/:sid", h.SessionFeedback)
	r.Get("/company/:cid", h.CompanyFeedback)
}

// SetupRoutesChecklist spans several top-level prefixes, so it takes the
// secured group constructor instead of a single router.
func SetupRoutesChecklist(group func(prefix string) fiber.Router, h *controllers.ChecklistHandler) {
	templates := group("/checklist-templates")
	templates.Get("/", h.Templates)
	templates.Get("/program/:pid", h.ProgramTemplates)
	templates.Post("/", h.SaveTemplate)
	templates.Put("/:id", h.UpdateTemplate)
	templates.Delete("/:id", h.DeleteTemplate)
	templates.Delete("/:id/items/:index", h.DeleteItem)

	checklists := group("/checklists")
	checklists.Post("/submit", h.Submit)
	checklists.Get("/session/:sid", h.SessionChecklists)
	checklists.Get("/participant/:pid", h.ParticipantChecklists)

	group("/vehicle-checklists").Get("/:sid/:pid", h.Latest)
	group("/checklist-photos").Post("/upload", h.UploadPhoto)

	vehicles := group("/vehicle-details")
	vehicles.Post("/submit", h.SubmitVehicle)
	vehicles.Get("/:sid/:pid", h.Vehicle)
}

func SetupRoutesReport(r fiber.Router, h *controllers.ReportHandler) {
	r.Get("/coordinator", h.CoordinatorReports)
	r.Get("/admin/all", h.AllReports)
	r.Post("/generate", h.Generate)
	r.Get("/session/:sid", h.SessionReport)
	r.Post("/:sid/upload-edited-docx", h.UploadDocx)
	r.Post("/:sid/upload-final-pdf", h.UploadPDF)
	r.Get("/:sid/download-docx", h.DownloadDocx)
	r.Get("/:sid/download-pdf", h.DownloadPDF)
	r.Post("/:sid/submit-final", h.SubmitFinal)
}

func SetupRoutesData(r fiber.Router, h *controllers.DataHandler) {
	r.Get("/test-results", h.TestResults)
	r.Put("/test-results/:id", h.UpdateTestResult)
	r.Delete("/test-results/:id", h.DeleteTestResult)

	r.Get("/feedback", h.Feedback)
	r.Put("/feedback/:id", h.UpdateFeedback)
	r.Delete("/feedback/:id", h.DeleteFeedback)

	r.Get("/attendance", h.Attendance)
	r.Put("/attendance/:id", h.UpdateAttendance)
	r.Delete("/attendance/:id", h.DeleteAttendance)

	r.Get("/checklists", h.Checklists)
	r.Put("/checklists/:id", h.UpdateChecklist)
	r.Delete("/checklists/:id", h.DeleteChecklist)

	r.Get("/audit-logs/:type/:id", h.AuditLogs)
}
