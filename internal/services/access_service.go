package services

import (
	"context"

	"github.com/pkg/errors"

	"mddrc-backend/dto"
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

// Gate names accepted by Toggle and Release.
const (
	GatePreTest     = "pre_test"
	GatePostTest    = "post_test"
	GateFeedback    = "feedback"
	GateChecklist   = "checklist"
	GateCertificate = "certificate"
)

// AccessService is the only code path that creates participant access
// records.
type AccessService struct {
	st    *store.Stores
	clock utils.Clock
}

func NewAccessService(st *store.Stores, clock utils.Clock) *AccessService {
	return &AccessService{st: st, clock: clock}
}

func accessQuery(participantID, sessionID string) store.Query {
	return store.Q().Eq("participant_id", participantID).Eq("session_id", sessionID)
}

// GetOrCreate returns the record for the pair, inserting a closed one on
// first use. A lost insert race re-reads the winner.
func (s *AccessService) GetOrCreate(ctx context.Context, participantID, sessionID string) (models.ParticipantAccess, error) {
	a, err := s.st.Access.FindOne(ctx, accessQuery(participantID, sessionID))
	if err == nil || !isNotFound(err) {
		return a, err
	}

	a = models.ParticipantAccess{
		ID:            models.NewID(),
		ParticipantID: participantID,
		SessionID:     sessionID,
		CreatedAt:     s.clock.Now(),
	}
	err = s.st.Access.Insert(ctx, a)
	if errors.Is(err, store.ErrDuplicate) {
		return s.st.Access.FindOne(ctx, accessQuery(participantID, sessionID))
	}
	return a, err
}

// Mutate applies fn to the pair's record and saves it.
func (s *AccessService) Mutate(ctx context.Context, participantID, sessionID string, fn func(*models.ParticipantAccess)) (models.ParticipantAccess, error) {
	a, err := s.GetOrCreate(ctx, participantID, sessionID)
	if err != nil {
		return a, err
	}
	fn(&a)
	return a, s.st.Access.Save(ctx, a)
}

// Update lets an admin, or the session's own coordinator, change gates.
func (s *AccessService) Update(ctx context.Context, actor models.User, participantID, sessionID string, req dto.AccessUpdate) (models.ParticipantAccess, error) {
	switch actor.Role {
	case models.RoleAdmin:
	case models.RoleCoordinator:
		sess, err := s.st.Sessions.Get(ctx, sessionID)
		if err != nil {
			return models.ParticipantAccess{}, lookup(err, "Session")
		}
		if sess.CoordinatorID != actor.ID {
			return models.ParticipantAccess{}, forbidden("You can only manage access for sessions assigned to you")
		}
	default:
		return models.ParticipantAccess{}, forbidden("Only admins and coordinators can update access")
	}

	return s.Mutate(ctx, participantID, sessionID, func(a *models.ParticipantAccess) {
		setIf(&a.CanAccessPreTest, req.CanAccessPreTest)
		setIf(&a.CanAccessPostTest, req.CanAccessPostTest)
		setIf(&a.CanAccessFeedback, req.CanAccessFeedback)
		setIf(&a.CanAccessChecklist, req.CanAccessChecklist)
		setIf(&a.CertificateReleased, req.CertificateReleased)
	})
}

// Mine is a participant's own record for a session.
func (s *AccessService) Mine(ctx context.Context, actor models.User, sessionID string) (models.ParticipantAccess, error) {
	if actor.Role != models.RoleParticipant {
		return models.ParticipantAccess{}, forbidden("Only participants can check access")
	}
	return s.GetOrCreate(ctx, actor.ID, sessionID)
}

func (s *AccessService) ForSession(ctx context.Context, actor models.User, sessionID string) ([]models.ParticipantAccess, error) {
	if err := requireRole(actor, "Access denied", models.RoleAdmin, models.RoleCoordinator); err != nil {
		return nil, err
	}
	return s.st.Access.Find(ctx, store.Q().Eq("session_id", sessionID))
}

// Toggle flips one gate for every participant of a session.
func (s *AccessService) Toggle(ctx context.Context, actor models.User, sessionID string, req dto.ToggleAccessRequest) (int, error) {
	if err := requireRole(actor, "Only coordinators and admins can control access", models.RoleAdmin, models.RoleCoordinator); err != nil {
		return 0, err
	}
	set, ok := gateSetter(req.AccessType)
	if !ok || req.AccessType == GateCertificate {
		return 0, badRequest("Invalid access type")
	}
	sess, err := s.st.Sessions.Get(ctx, sessionID)
	if err != nil {
		return 0, lookup(err, "Session")
	}
	return s.applyAll(ctx, sess, func(a *models.ParticipantAccess) { set(a, req.Enabled) })
}

// Release opens a gate for every participant of a session.
func (s *AccessService) Release(ctx context.Context, actor models.User, sessionID, gate string) (int, error) {
	if err := requireRole(actor, "Unauthorized", models.RoleAdmin, models.RoleCoordinator); err != nil {
		return 0, err
	}
	set, ok := gateSetter(gate)
	if !ok || gate == GateChecklist {
		return 0, badRequest("Invalid release type")
	}
	sess, err := s.st.Sessions.Get(ctx, sessionID)
	if err != nil {
		return 0, lookup(err, "Session")
	}
	return s.applyAll(ctx, sess, func(a *models.ParticipantAccess) { set(a, true) })
}

func (s *AccessService) applyAll(ctx context.Context, sess models.Session, fn func(*models.ParticipantAccess)) (int, error) {
	n := 0
	for _, pid := range sess.ParticipantIDs {
		if _, err := s.Mutate(ctx, pid, sess.ID, fn); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (s *AccessService) DeleteForSession(ctx context.Context, sessionID string) error {
	_, err := s.st.Access.DeleteMany(ctx, store.Q().Eq("session_id", sessionID))
	return err
}

func gateSetter(gate string) (func(*models.ParticipantAccess, bool), bool) {
	switch gate {
	case GatePreTest:
		return func(a *models.ParticipantAccess, v bool) { a.CanAccessPreTest = v }, true
	case GatePostTest:
		return func(a *models.ParticipantAccess, v bool) { a.CanAccessPostTest = v }, true
	case GateFeedback:
		return func(a *models.ParticipantAccess, v bool) { a.CanAccessFeedback = v }, true
	case GateChecklist:
		return func(a *models.ParticipantAccess, v bool) { a.CanAccessChecklist = v }, true
	case GateCertificate:
		return func(a *models.ParticipantAccess, v bool) { a.CertificateReleased = v }, true
	}
	return nil, false
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
