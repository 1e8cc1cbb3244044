package services

import (
	"context"

	"mddrc-backend/dto"
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

// ReportService tracks a coordinator's training report from draft to the
// submitted final PDF. The documents themselves are prepared offline and
// uploaded.
type ReportService struct {
	st    *store.Stores
	names *names
	files Files
	clock utils.Clock
}

func NewReportService(st *store.Stores, n *names, files Files, clock utils.Clock) *ReportService {
	return &ReportService{st: st, names: n, files: files, clock: clock}
}

func canReport(actor models.User) error {
	return requireRole(actor, "Unauthorized", models.RoleCoordinator, models.RoleAdmin)
}

func (s *ReportService) views(ctx context.Context, reports []models.TrainingReport) []dto.ReportView {
	out := make([]dto.ReportView, 0, len(reports))
	for _, r := range reports {
		v := dto.ReportView{
			TrainingReport:  r,
			SessionName:     unknown,
			CompanyName:     unknown,
			ProgramName:     unknown,
			CoordinatorName: s.names.userName(ctx, r.CoordinatorID),
		}
		if sess, ok := s.names.session(ctx, r.SessionID); ok {
			v.SessionName = sess.Name
			v.CompanyName = s.names.company(ctx, sess.CompanyID)
			v.ProgramName = s.names.program(ctx, sess.ProgramID)
		}
		out = append(out, v)
	}
	return out
}

// Coordinator lists the caller's reports; admins see every report.
func (s *ReportService) Coordinator(ctx context.Context, actor models.User) ([]dto.ReportView, error) {
	if err := canReport(actor); err != nil {
		return nil, err
	}
	q := store.Q().SortBy("created_at", true)
	if actor.Role == models.RoleCoordinator {
		q = q.Eq("coordinator_id", actor.ID)
	}
	reports, err := s.st.Reports.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, reports), nil
}

func (s *ReportService) All(ctx context.Context, actor models.User) ([]dto.ReportView, error) {
	if err := requireRole(actor, "Only admins can access all reports", models.RoleAdmin); err != nil {
		return nil, err
	}
	reports, err := s.st.Reports.Find(ctx, store.Q().SortBy("created_at", true))
	if err != nil {
		return nil, err
	}
	return s.views(ctx, reports), nil
}

// Generate opens a draft for the session and caller. An existing draft is
// returned with created false.
func (s *ReportService) Generate(ctx context.Context, actor models.User, sessionID string) (string, bool, error) {
	if err := canReport(actor); err != nil {
		return "", false, err
	}
	if _, err := s.st.Sessions.Get(ctx, sessionID); err != nil {
		return "", false, lookup(err, "Session")
	}
	q := store.Q().Eq("session_id", sessionID).Eq("coordinator_id", actor.ID)
	existing, err := s.st.Reports.FindOne(ctx, q)
	if err == nil {
		return existing.ID, false, nil
	}
	if !isNotFound(err) {
		return "", false, err
	}

	r := models.TrainingReport{
		ID:            models.NewID(),
		SessionID:     sessionID,
		CoordinatorID: actor.ID,
		Status:        models.ReportDraft,
		CreatedAt:     s.clock.Now(),
	}
	if err := s.st.Reports.Insert(ctx, r); err != nil {
		if isDuplicate(err) {
			existing, err = s.st.Reports.FindOne(ctx, q)
			return existing.ID, false, err
		}
		return "", false, err
	}
	return r.ID, true, nil
}

// ForSession is the newest report of a session.
func (s *ReportService) ForSession(ctx context.Context, sessionID string) (models.TrainingReport, error) {
	r, err := s.st.Reports.FindOne(ctx, store.Q().Eq("session_id", sessionID).SortBy("created_at", true))
	return r, lookup(err, "Report")
}

func (s *ReportService) UploadDocx(ctx context.Context, actor models.User, sessionID string, up Upload) (models.TrainingReport, error) {
	if err := canReport(actor); err != nil {
		return models.TrainingReport{}, err
	}
	if !HasExt(up.Filename, ".docx") {
		return models.TrainingReport{}, badRequest("Only DOCX files are allowed")
	}
	r, err := s.ForSession(ctx, sessionID)
	if err != nil {
		return r, err
	}
	path, _, err := s.files.store(up, ReportsDir, "edited_"+sessionID+".docx")
	if err != nil {
		return r, err
	}
	r.DocxPath = path
	return r, s.st.Reports.Save(ctx, r)
}

// UploadPDF stores the final PDF and marks the report submitted.
func (s *ReportService) UploadPDF(ctx context.Context, actor models.User, sessionID string, up Upload) (models.TrainingReport, error) {
	if err := canReport(actor); err != nil {
		return models.TrainingReport{}, err
	}
	if !HasExt(up.Filename, ".pdf") {
		return models.TrainingReport{}, badRequest("Only PDF files are allowed")
	}
	r, err := s.ForSession(ctx, sessionID)
	if err != nil {
		return r, err
	}
	path, _, err := s.files.store(up, ReportsDir, "final_"+sessionID+".pdf")
	if err != nil {
		return r, err
	}
	now := s.clock.Now()
	r.PDFPath = path
	r.Status = models.ReportSubmitted
	r.SubmittedAt = &now
	return r, s.st.Reports.Save(ctx, r)
}

func (s *ReportService) SubmitFinal(ctx context.Context, actor models.User, sessionID string) (models.TrainingReport, error) {
	if err := canReport(actor); err != nil {
		return models.TrainingReport{}, err
	}
	r, err := s.ForSession(ctx, sessionID)
	if err != nil {
		return r, err
	}
	now := s.clock.Now()
	r.Status = models.ReportSubmitted
	r.SubmittedAt = &now
	return r, s.st.Reports.Save(ctx, r)
}

// DocxFile and PDFFile return a report document's disk path, 404 when the
// report or the file is missing.
func (s *ReportService) DocxFile(ctx context.Context, sessionID string) (string, error) {
	r, err := s.ForSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if !s.files.Exists(r.DocxPath) {
		return "", notFound("DOCX file")
	}
	return r.DocxPath, nil
}

func (s *ReportService) PDFFile(ctx context.Context, sessionID string) (string, error) {
	r, err := s.ForSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if !s.files.Exists(r.PDFPath) {
		return "", notFound("PDF file")
	}
	return r.PDFPath, nil
}
