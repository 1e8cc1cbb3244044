package routes

import (
	"github.com/gofiber/fiber/v2"

	"mddrc-backend/internal/controllers"
)

func SetupRoutesSession(r fiber.Router, h *controllers.SessionHandler) {
	r.Get("/", h.ListSessions)
	r.Post("/", h.CreateSession)
	// fixed paths before /:id
	r.Get("/calendar", h.Calendar)
	r.Get("/past-training", h.PastTraining)

	r.Get("/:id", h.GetSession)
	r.Put("/:id", h.UpdateSession)
	r.Delete("/:id", h.DeleteSession)
	r.Post("/:id/mark-completed", h.MarkCompleted)
	r.Put("/:id/toggle-status", h.ToggleStatus)
	r.Post("/:id/archive", h.Archive)
	r.Post("/:id/release/:gate", h.Release)

	r.Get("/:id/participants", h.Participants)
	r.Post("/:id/participants", h.AddParticipants)
	r.Get("/:id/participants/attendance", h.AttendanceStatus)
	r.Post("/:id/participants/:pid/attendance", h.MarkAttendance)
	r.Get("/:id/assigned-participants", h.AssignedParticipants)
	r.Get("/:id/distribution", h.Distribution)

	r.Get("/:id/results-summary", h.ResultsSummary)
	r.Get("/:id/status", h.Status)
	r.Get("/:id/completion-checklist", h.CompletionChecklist)
	r.Get("/:id/tests/available", h.AvailableTests)
}

func SetupRoutesTest(r fiber.Router, h *controllers.TestHandler) {
	r.Post("/", h.CreateTest)
	r.Post("/submit", h.SubmitTest)
	r.Get("/program/:pid", h.ProgramTests)
	r.Get("/session/:sid/results", h.SessionResults)
	r.Get("/results/session/:sid", h.SessionResults)
	r.Get("/results/participant/:pid", h.ParticipantResults)
	r.Get("/results/:rid", h.Result)
	r.Get("/:id", h.GetTest)
	r.Delete("/:id", h.DeleteTest)
}

func SetupRoutesAttendance(r fiber.Router, h *controllers.AttendanceHandler) {
	r.Post("/clock-in", h.ClockIn)
	r.Post("/clock-out", h.ClockOut)
	r.Get("/session/:sid", h.SessionAttendance)
	r.Get("/:sid/:pid", h.ParticipantAttendance)
}
