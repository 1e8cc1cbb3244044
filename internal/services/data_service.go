package services

import (
	"context"
	"time"

	"mddrc-backend/dto"
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
)

// Resource types written to the audit log.
const (
	ResourceTestResult = "test_result"
	ResourceFeedback   = "feedback"
	ResourceAttendance = "attendance"
	ResourceChecklist  = "checklist"
)

// DataService is the admin's direct editor for participant records. Every
// change is audited.
type DataService struct {
	st    *store.Stores
	names *names
	audit *AuditService
}

func NewDataService(st *store.Stores, n *names, audit *AuditService) *DataService {
	return &DataService{st: st, names: n, audit: audit}
}

func adminOnly(actor models.User, msg string) error {
	return requireRole(actor, msg, models.RoleAdmin)
}

// filter builds the record query. Company, program and date filters pick
// matching sessions first.
func (s *DataService) filter(ctx context.Context, f dto.DataFilter) (store.Query, error) {
	q := store.Q()
	if f.SessionID != "" {
		q = q.Eq("session_id", f.SessionID)
	}
	if f.CompanyID == "" && f.ProgramID == "" && f.StartDate == "" && f.EndDate == "" {
		return q, nil
	}

	sq := store.Q()
	if f.CompanyID != "" {
		sq = sq.Eq("company_id", f.CompanyID)
	}
	if f.ProgramID != "" {
		sq = sq.Eq("program_id", f.ProgramID)
	}
	if f.StartDate != "" {
		sq = sq.Gte("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		sq = sq.Lte("end_date", f.EndDate)
	}
	sessions, err := s.st.Sessions.Find(ctx, sq)
	if err != nil {
		return q, err
	}
	ids := make([]string, 0, len(sessions))
	for _, sess := range sessions {
		ids = append(ids, sess.ID)
	}
	return q.In("session_id", ids), nil
}

// row flattens a record and adds participant, session, company and
// program names.
func (s *DataService) row(ctx context.Context, rec any, participantID, sessionID string) (dto.DataRow, error) {
	m, err := snapshot(rec)
	if err != nil {
		return nil, err
	}
	row := dto.DataRow(m)
	if u, ok := s.names.user(ctx, participantID); ok {
		row["participant_name"] = u.FullName
		row["participant_ic"] = u.IDNumber
	}
	if sess, ok := s.names.session(ctx, sessionID); ok {
		row["session_name"] = sess.Name
		row["company_name"] = s.names.company(ctx, sess.CompanyID)
		row["program_name"] = s.names.program(ctx, sess.ProgramID)
	}
	return row, nil
}

func (s *DataService) TestResults(ctx context.Context, actor models.User, f dto.DataFilter) ([]dto.DataRow, error) {
	if err := adminOnly(actor, "Only admins can access this"); err != nil {
		return nil, err
	}
	q, err := s.filter(ctx, f)
	if err != nil {
		return nil, err
	}
	list, err := s.st.TestResults.Find(ctx, q.SortBy("submitted_at", true))
	if err != nil {
		return nil, err
	}
	out := make([]dto.DataRow, 0, len(list))
	for _, r := range list {
		row, err := s.row(ctx, r, r.ParticipantID, r.SessionID)
		if err != nil {
			return nil, err
		}
		if t, err := s.st.Tests.Get(ctx, r.TestID); err == nil {
			row["test_title"] = t.Title
			row["test_type"] = t.TestType
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *DataService) UpdateTestResult(ctx context.Context, actor models.User, id string, req dto.TestResultPatch, ip string) (models.TestResult, error) {
	if err := adminOnly(actor, "Only admins can edit test results"); err != nil {
		return models.TestResult{}, err
	}
	if req.Score == nil && req.Passed == nil && req.Answers == nil {
		return models.TestResult{}, badRequest("No updates provided")
	}
	before, err := s.st.TestResults.Get(ctx, id)
	if err != nil {
		return before, lookup(err, "Test result")
	}
	after := before
	setIf(&after.Score, req.Score)
	setIf(&after.Passed, req.Passed)
	setIf(&after.Answers, req.Answers)
	if err := s.st.TestResults.Save(ctx, after); err != nil {
		return after, err
	}
	return after, s.audit.Record(ctx, actor, models.ActionUpdate, ResourceTestResult, id, before, after, ip)
}

func (s *DataService) DeleteTestResult(ctx context.Context, actor models.User, id, ip string) error {
	if err := adminOnly(actor, "Only admins can delete test results"); err != nil {
		return err
	}
	before, err := s.st.TestResults.Get(ctx, id)
	if err != nil {
		return lookup(err, "Test result")
	}
	if err := s.st.TestResults.Delete(ctx, id); err != nil {
		return lookup(err, "Test result")
	}
	return s.audit.Record(ctx, actor, models.ActionDelete, ResourceTestResult, id, before, nil, ip)
}

func (s *DataService) Feedback(ctx context.Context, actor models.User, f dto.DataFilter) ([]dto.DataRow, error) {
	if err := adminOnly(actor, "Only admins can access this"); err != nil {
		return nil, err
	}
	q, err := s.filter(ctx, f)
	if err != nil {
		return nil, err
	}
	list, err := s.st.Feedback.Find(ctx, q.SortBy("submitted_at", true))
	if err != nil {
		return nil, err
	}
	out := make([]dto.DataRow, 0, len(list))
	for _, r := range list {
		row, err := s.row(ctx, r, r.ParticipantID, r.SessionID)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *DataService) UpdateFeedback(ctx context.Context, actor models.User, id string, req dto.FeedbackPatch, ip string) (models.CourseFeedback, error) {
	if err := adminOnly(actor, "Only admins can edit feedback"); err != nil {
		return models.CourseFeedback{}, err
	}
	before, err := s.st.Feedback.Get(ctx, id)
	if err != nil {
		return before, lookup(err, "Feedback")
	}
	after := before
	after.Responses = req.Responses
	if err := s.st.Feedback.Save(ctx, after); err != nil {
		return after, err
	}
	return after, s.audit.Record(ctx, actor, models.ActionUpdate, ResourceFeedback, id, before, after, ip)
}

func (s *DataService) DeleteFeedback(ctx context.Context, actor models.User, id, ip string) error {
	if err := adminOnly(actor, "Only admins can delete feedback"); err != nil {
		return err
	}
	before, err := s.st.Feedback.Get(ctx, id)
	if err != nil {
		return lookup(err, "Feedback")
	}
	if err := s.st.Feedback.Delete(ctx, id); err != nil {
		return lookup(err, "Feedback")
	}
	return s.audit.Record(ctx, actor, models.ActionDelete, ResourceFeedback, id, before, nil, ip)
}

func (s *DataService) Attendance(ctx context.Context, actor models.User, f dto.DataFilter) ([]dto.DataRow, error) {
	if err := adminOnly(actor, "Only admins can access this"); err != nil {
		return nil, err
	}
	q, err := s.filter(ctx, f)
	if err != nil {
		return nil, err
	}
	list, err := s.st.Attendance.Find(ctx, q.SortBy("date", true))
	if err != nil {
		return nil, err
	}
	out := make([]dto.DataRow, 0, len(list))
	for _, r := range list {
		row, err := s.row(ctx, r, r.ParticipantID, r.SessionID)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

func parseStamp(v, field string) (*time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, badRequest(field + " must be an RFC 3339 timestamp")
	}
	return &t, nil
}

func (s *DataService) UpdateAttendance(ctx context.Context, actor models.User, id string, req dto.AttendancePatch, ip string) (models.Attendance, error) {
	if err := adminOnly(actor, "Only admins can edit attendance"); err != nil {
		return models.Attendance{}, err
	}
	if req.ClockIn == "" && req.ClockOut == "" {
		return models.Attendance{}, badRequest("No updates provided")
	}
	before, err := s.st.Attendance.Get(ctx, id)
	if err != nil {
		return before, lookup(err, "Attendance record")
	}
	after := before
	if req.ClockIn != "" {
		if after.ClockInTime, err = parseStamp(req.ClockIn, "clock_in"); err != nil {
			return before, err
		}
	}
	if req.ClockOut != "" {
		if after.ClockOutTime, err = parseStamp(req.ClockOut, "clock_out"); err != nil {
			return before, err
		}
	}
	if err := s.st.Attendance.Save(ctx, after); err != nil {
		return after, err
	}
	return after, s.audit.Record(ctx, actor, models.ActionUpdate, ResourceAttendance, id, before, after, ip)
}

func (s *DataService) DeleteAttendance(ctx context.Context, actor models.User, id, ip string) error {
	if err := adminOnly(actor, "Only admins can delete attendance"); err != nil {
		return err
	}
	before, err := s.st.Attendance.Get(ctx, id)
	if err != nil {
		return lookup(err, "Attendance record")
	}
	if err := s.st.Attendance.Delete(ctx, id); err != nil {
		return lookup(err, "Attendance record")
	}
	return s.audit.Record(ctx, actor, models.ActionDelete, ResourceAttendance, id, before, nil, ip)
}

func (s *DataService) Checklists(ctx context.Context, actor models.User, f dto.DataFilter) ([]dto.DataRow, error) {
	if err := adminOnly(actor, "Only admins can access this"); err != nil {
		return nil, err
	}
	q, err := s.filter(ctx, f)
	if err != nil {
		return nil, err
	}
	list, err := s.st.Checklists.Find(ctx, q.SortBy("created_at", true))
	if err != nil {
		return nil, err
	}
	out := make([]dto.DataRow, 0, len(list))
	for _, r := range list {
		row, err := s.row(ctx, r, r.ParticipantID, r.SessionID)
		if err != nil {
			return nil, err
		}
		if r.TrainerID != "" {
			row["trainer_name"] = s.names.userName(ctx, r.TrainerID)
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *DataService) UpdateChecklist(ctx context.Context, actor models.User, id string, req dto.ChecklistPatch, ip string) (models.VehicleChecklist, error) {
	if err := adminOnly(actor, "Only admins can edit checklists"); err != nil {
		return models.VehicleChecklist{}, err
	}
	before, err := s.st.Checklists.Get(ctx, id)
	if err != nil {
		return before, lookup(err, "Checklist")
	}
	after := before
	after.Items = req.Items
	if err := s.st.Checklists.Save(ctx, after); err != nil {
		return after, err
	}
	return after, s.audit.Record(ctx, actor, models.ActionUpdate, ResourceChecklist, id, before, after, ip)
}

func (s *DataService) DeleteChecklist(ctx context.Context, actor models.User, id, ip string) error {
	if err := adminOnly(actor, "Only admins can delete checklists"); err != nil {
		return err
	}
	before, err := s.st.Checklists.Get(ctx, id)
	if err != nil {
		return lookup(err, "Checklist")
	}
	if err := s.st.Checklists.Delete(ctx, id); err != nil {
		return lookup(err, "Checklist")
	}
	return s.audit.Record(ctx, actor, models.ActionDelete, ResourceChecklist, id, before, nil, ip)
}
