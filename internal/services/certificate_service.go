package services

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	"mddrc-backend/dto"
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

type CertificateService struct {
	st     *store.Stores
	access *AccessService
	names  *names
	files  Files
	clock  utils.Clock
}

func NewCertificateService(st *store.Stores, access *AccessService, n *names, files Files, clock utils.Clock) *CertificateService {
	return &CertificateService{st: st, access: access, names: n, files: files, clock: clock}
}

// UploadResult is returned after a certificate PDF is stored.
type UploadResult struct {
	CertificateID  string  `json:"certificate_id"`
	CertificateURL string  `json:"certificate_url"`
	FileSizeMB     float64 `json:"file_size_mb"`
}

func certificateNumber() string {
	return "CERT-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func pairQuery(sessionID, participantID string) store.Query {
	return store.Q().Eq("session_id", sessionID).Eq("participant_id", participantID)
}

func (s *CertificateService) list(ctx context.Context, q store.Query) ([]models.Certificate, error) {
	return s.st.Certificates.Find(ctx, q.SortBy("issue_date", true))
}

func (s *CertificateService) Mine(ctx context.Context, actor models.User) ([]models.Certificate, error) {
	if err := requireRole(actor, "Only participants can access this endpoint", models.RoleParticipant); err != nil {
		return nil, err
	}
	return s.list(ctx, store.Q().Eq("participant_id", actor.ID))
}

func (s *CertificateService) ForParticipant(ctx context.Context, actor models.User, participantID string) ([]models.Certificate, error) {
	if actor.Role == models.RoleParticipant && actor.ID != participantID {
		return nil, forbidden("Access denied")
	}
	return s.list(ctx, store.Q().Eq("participant_id", participantID))
}

func (s *CertificateService) ForSession(ctx context.Context, sessionID string) ([]models.Certificate, error) {
	return s.list(ctx, store.Q().Eq("session_id", sessionID))
}

func (s *CertificateService) Repository(ctx context.Context, actor models.User) ([]models.Certificate, error) {
	if err := requireRole(actor, "Unauthorized", models.RoleAdmin); err != nil {
		return nil, err
	}
	return s.list(ctx, store.Q())
}

func (s *CertificateService) newCertificate(ctx context.Context, sessionID, participantID string) models.Certificate {
	now := s.clock.Now()
	c := models.Certificate{
		ID:                models.NewID(),
		CertificateNumber: certificateNumber(),
		ParticipantID:     participantID,
		SessionID:         sessionID,
		ParticipantName:   s.names.userName(ctx, participantID),
		IssueDate:         now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if sess, ok := s.names.session(ctx, sessionID); ok {
		c.ProgramName = s.names.program(ctx, sess.ProgramID)
		c.CompanyName = s.names.company(ctx, sess.CompanyID)
	}
	return c
}

// Generate issues the pair's certificate and releases it to the participant.
// An existing certificate is returned with created false.
func (s *CertificateService) Generate(ctx context.Context, actor models.User, sessionID, participantID string) (string, bool, error) {
	if err := requireRole(actor, "Unauthorized", models.RoleCoordinator, models.RoleAdmin); err != nil {
		return "", false, err
	}
	existing, err := s.st.Certificates.FindOne(ctx, pairQuery(sessionID, participantID))
	if err == nil {
		return existing.ID, false, nil
	}
	if !isNotFound(err) {
		return "", false, err
	}

	c := s.newCertificate(ctx, sessionID, participantID)
	name := "cert_" + sessionID + "_" + participantID + ".pdf"
	c.FilePath, _ = s.files.Path(CertificatesDir, name)
	c.CertificateURL = s.files.URL(CertificatesDir, name)
	if err := s.st.Certificates.Insert(ctx, c); err != nil {
		if isDuplicate(err) {
			existing, err = s.st.Certificates.FindOne(ctx, pairQuery(sessionID, participantID))
			return existing.ID, false, err
		}
		return "", false, err
	}
	if err := s.release(ctx, participantID, sessionID); err != nil {
		return "", false, err
	}
	return c.ID, true, nil
}

func (s *CertificateService) release(ctx context.Context, participantID, sessionID string) error {
	_, err := s.access.Mutate(ctx, participantID, sessionID, func(a *models.ParticipantAccess) {
		a.CertificateReleased = true
	})
	return err
}

// Upload stores a certificate PDF and attaches it to the pair's
// certificate, creating the certificate when needed.
func (s *CertificateService) Upload(ctx context.Context, actor models.User, sessionID, participantID string, up Upload) (UploadResult, error) {
	if err := requireRole(actor, "Unauthorized", models.RoleCoordinator, models.RoleAdmin); err != nil {
		return UploadResult{}, err
	}
	if !HasExt(up.Filename, ".pdf") {
		return UploadResult{}, badRequest("Only PDF files are allowed")
	}

	name := UniqueName("cert_"+sessionID+"_"+participantID, up.Filename)
	path, url, err := s.files.store(up, CertificatesDir, name)
	if err != nil {
		return UploadResult{}, err
	}

	c, err := s.st.Certificates.FindOne(ctx, pairQuery(sessionID, participantID))
	switch {
	case err == nil:
		c.UpdatedAt = s.clock.Now()
	case isNotFound(err):
		c = s.newCertificate(ctx, sessionID, participantID)
	default:
		return UploadResult{}, err
	}
	c.FilePath = path
	c.CertificateURL = url
	c.UploadedBy = actor.ID
	if err := s.st.Certificates.Save(ctx, c); err != nil {
		return UploadResult{}, err
	}
	if err := s.release(ctx, participantID, sessionID); err != nil {
		return UploadResult{}, err
	}
	return UploadResult{
		CertificateID:  c.ID,
		CertificateURL: url,
		FileSizeMB:     math.Round(float64(up.Size)/(1024*1024)*100) / 100,
	}, nil
}

func (s *CertificateService) file(c models.Certificate, err error) (string, error) {
	if err != nil {
		return "", lookup(err, "Certificate")
	}
	if !s.files.Exists(c.FilePath) {
		return "", notFound("Certificate file")
	}
	return c.FilePath, nil
}

// File returns the disk path of a certificate's PDF.
func (s *CertificateService) File(ctx context.Context, id string) (string, error) {
	return s.file(s.st.Certificates.Get(ctx, id))
}

func (s *CertificateService) FileFor(ctx context.Context, sessionID, participantID string) (string, error) {
	return s.file(s.st.Certificates.FindOne(ctx, pairQuery(sessionID, participantID)))
}

// Eligibility requires all three steps done and at least one passed test.
func (s *CertificateService) Eligibility(ctx context.Context, sessionID, participantID string) (dto.EligibilityResponse, error) {
	a, err := s.st.Access.FindOne(ctx, accessQuery(participantID, sessionID))
	if err != nil {
		if isNotFound(err) {
			return dto.EligibilityResponse{Reason: "Not enrolled in session"}, nil
		}
		return dto.EligibilityResponse{}, err
	}
	passed, err := s.st.TestResults.Count(ctx, pairQuery(sessionID, participantID).Eq("passed", true))
	if err != nil {
		return dto.EligibilityResponse{}, err
	}
	out := dto.EligibilityResponse{
		PreTestCompleted:    a.PreTestCompleted,
		PostTestCompleted:   a.PostTestCompleted,
		FeedbackCompleted:   a.FeedbackCompleted,
		Passed:              passed > 0,
		CertificateReleased: a.CertificateReleased,
	}
	out.Eligible = out.PreTestCompleted && out.PostTestCompleted && out.FeedbackCompleted && out.Passed
	return out, nil
}
