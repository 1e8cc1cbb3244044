package services

import (
	"context"

	"mddrc-backend/dto"
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

// AttendanceService keeps one clock record per participant, session and
// local calendar day.
type AttendanceService struct {
	st    *store.Stores
	names *names
	clock utils.Clock
}

func NewAttendanceService(st *store.Stores, n *names, clock utils.Clock) *AttendanceService {
	return &AttendanceService{st: st, names: n, clock: clock}
}

func (s *AttendanceService) today(ctx context.Context, participantID, sessionID string) (models.Attendance, error) {
	return s.st.Attendance.FindOne(ctx, store.Q().
		Eq("session_id", sessionID).
		Eq("participant_id", participantID).
		Eq("date", s.clock.Today()))
}

func (s *AttendanceService) ClockIn(ctx context.Context, actor models.User, sessionID string) (dto.ClockResponse, error) {
	if err := requireRole(actor, "Only participants can clock in", models.RoleParticipant); err != nil {
		return dto.ClockResponse{}, err
	}
	existing, err := s.today(ctx, actor.ID, sessionID)
	if err == nil {
		return dto.ClockResponse{Message: "Already clocked in today", AttendanceID: existing.ID}, nil
	}
	if !isNotFound(err) {
		return dto.ClockResponse{}, err
	}

	now := s.clock.Now()
	a := models.Attendance{
		ID:            models.NewID(),
		SessionID:     sessionID,
		ParticipantID: actor.ID,
		Date:          now.Format(utils.DateLayout),
		ClockInTime:   &now,
		CreatedAt:     now,
	}
	if err := s.st.Attendance.Insert(ctx, a); err != nil {
		if isDuplicate(err) {
			existing, err = s.today(ctx, actor.ID, sessionID)
			if err != nil {
				return dto.ClockResponse{}, err
			}
			return dto.ClockResponse{Message: "Already clocked in today", AttendanceID: existing.ID}, nil
		}
		return dto.ClockResponse{}, err
	}
	return dto.ClockResponse{Message: "Clocked in successfully", AttendanceID: a.ID}, nil
}

func (s *AttendanceService) ClockOut(ctx context.Context, actor models.User, sessionID string) (dto.ClockResponse, error) {
	if err := requireRole(actor, "Only participants can clock out", models.RoleParticipant); err != nil {
		return dto.ClockResponse{}, err
	}
	a, err := s.today(ctx, actor.ID, sessionID)
	if err != nil {
		if isNotFound(err) {
			return dto.ClockResponse{}, notFoundMsg("No clock-in record found for today")
		}
		return dto.ClockResponse{}, err
	}
	if a.ClockOutTime != nil {
		return dto.ClockResponse{Message: "Already clocked out today", AttendanceID: a.ID}, nil
	}
	now := s.clock.Now()
	a.ClockOutTime = &now
	if err := s.st.Attendance.Save(ctx, a); err != nil {
		return dto.ClockResponse{}, err
	}
	return dto.ClockResponse{Message: "Clocked out successfully", AttendanceID: a.ID}, nil
}

func (s *AttendanceService) ForSession(ctx context.Context, sessionID string) ([]dto.AttendanceView, error) {
	recs, err := s.st.Attendance.Find(ctx, store.Q().Eq("session_id", sessionID).SortBy("date", false))
	if err != nil {
		return nil, err
	}
	out := make([]dto.AttendanceView, 0, len(recs))
	for _, r := range recs {
		name := "Unknown Participant"
		if u, ok := s.names.user(ctx, r.ParticipantID); ok {
			name = u.FullName
		}
		out = append(out, dto.AttendanceView{Attendance: r, ParticipantName: name})
	}
	return out, nil
}

func (s *AttendanceService) ForParticipant(ctx context.Context, actor models.User, sessionID, participantID string) ([]models.Attendance, error) {
	if actor.Role == models.RoleParticipant && actor.ID != participantID {
		return nil, forbidden("Access denied")
	}
	return s.st.Attendance.Find(ctx, store.Q().
		Eq("session_id", sessionID).
		Eq("participant_id", participantID).
		SortBy("date", false))
}
