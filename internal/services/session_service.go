package services

import (
	"context"
	"fmt"
	"time"

	"mddrc-backend/dto"
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/quiz"
	"mddrc-backend/internal/roster"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

type SessionService struct {
	st     *store.Stores
	people *PeopleService
	access *AccessService
	names  *names
	clock  utils.Clock
}

func NewSessionService(st *store.Stores, people *PeopleService, access *AccessService, n *names, clock utils.Clock) *SessionService {
	return &SessionService{st: st, people: people, access: access, names: n, clock: clock}
}

func (s *SessionService) get(ctx context.Context, id string) (models.Session, error) {
	sess, err := s.st.Sessions.Get(ctx, id)
	return sess, lookup(err, "Session")
}

func (s *SessionService) view(ctx context.Context, sess models.Session) dto.SessionView {
	return dto.SessionView{
		Session:     sess,
		CompanyName: s.names.company(ctx, sess.CompanyID),
		ProgramName: s.names.program(ctx, sess.ProgramID),
	}
}

func (s *SessionService) views(ctx context.Context, sessions []models.Session) []dto.SessionView {
	out := make([]dto.SessionView, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, s.view(ctx, sess))
	}
	return out
}

// List returns the sessions visible to actor. Trainers and assistant admins
// see running sessions that have not ended; everyone else sees sessions not
// yet completed, and participants, supervisors and coordinators only those
// they belong to.
func (s *SessionService) List(ctx context.Context, actor models.User, f dto.SessionFilter) ([]dto.SessionView, error) {
	q := store.Q().Ne("is_archived", true).Limit(1000)
	if actor.HasRole(models.RoleTrainer, models.RoleAssistantAdmin) {
		q = q.Gte("end_date", s.clock.Today()).Eq("status", models.SessionActive)
	} else {
		q = q.Nin("completion_status", []string{models.CompletionCompleted, models.CompletionArchived})
	}

	if f.CompanyID != "" {
		q = q.Eq("company_id", f.CompanyID)
	}
	if f.ProgramID != "" {
		q = q.Eq("program_id", f.ProgramID)
	}
	if f.StartDate != "" {
		q = q.Gte("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		q = q.Lte("end_date", f.EndDate)
	}
	if !actor.HasRole(models.RoleAdmin, models.RoleTrainer) {
		q = q.Eq("status", models.SessionActive)
	}

	switch actor.Role {
	case models.RoleParticipant:
		q = q.Eq("participant_ids", actor.ID)
	case models.RoleSupervisor:
		q = q.Eq("supervisor_ids", actor.ID)
	case models.RoleCoordinator:
		q = q.Eq("coordinator_id", actor.ID)
	}

	sessions, err := s.st.Sessions.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	views := s.views(ctx, sessions)
	if f.Search == "" {
		return views, nil
	}

	out := make([]dto.SessionView, 0, len(views))
	for _, v := range views {
		if utils.Contains(v.Name, f.Search) || utils.Contains(v.CompanyName, f.Search) ||
			utils.Contains(v.ProgramName, f.Search) || utils.Contains(v.Location, f.Search) {
			out = append(out, v)
		}
	}
	return out, nil
}

// Create stores a session, creating or refreshing inline participants and
// supervisors, and opens an access record for every participant.
func (s *SessionService) Create(ctx context.Context, actor models.User, req dto.SessionCreate) (string, error) {
	if err := requireRole(actor, "Only admins and assistant admins can create sessions",
		models.RoleAdmin, models.RoleAssistantAdmin); err != nil {
		return "", err
	}
	if req.EndDate < req.StartDate {
		return "", badRequest("end_date must not be before start_date")
	}

	participantIDs := make([]string, 0, len(req.Participants)+len(req.ParticipantIDs))
	for _, p := range req.Participants {
		id, _, err := s.people.FindOrCreate(ctx, p, models.RoleParticipant, req.CompanyID)
		if err != nil {
			return "", err
		}
		participantIDs, _ = utils.AppendUnique(participantIDs, id)
	}
	participantIDs, _ = utils.AppendUnique(participantIDs, req.ParticipantIDs...)

	supervisorIDs := make([]string, 0, len(req.Supervisors)+len(req.SupervisorIDs))
	for _, p := range req.Supervisors {
		id, _, err := s.people.FindOrCreate(ctx, p, models.RoleSupervisor, req.CompanyID)
		if err != nil {
			return "", err
		}
		supervisorIDs, _ = utils.AppendUnique(supervisorIDs, id)
	}
	supervisorIDs, _ = utils.AppendUnique(supervisorIDs, req.SupervisorIDs...)

	assignments := req.TrainerAssignments
	if assignments == nil {
		assignments = []models.TrainerAssignment{}
	}
	for i := range assignments {
		if assignments[i].Role == "" {
			assignments[i].Role = models.TrainerRegular
		}
	}

	sess := models.Session{
		ID:                 models.NewID(),
		Name:               req.Name,
		ProgramID:          req.ProgramID,
		CompanyID:          req.CompanyID,
		Location:           req.Location,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		SupervisorIDs:      supervisorIDs,
		ParticipantIDs:     participantIDs,
		TrainerAssignments: assignments,
		CoordinatorID:      req.CoordinatorID,
		Status:             models.SessionActive,
		CompletionStatus:   models.CompletionOngoing,
		CreatedAt:          s.clock.Now(),
	}
	if err := s.st.Sessions.Insert(ctx, sess); err != nil {
		return "", err
	}
	for _, pid := range participantIDs {
		if _, err := s.access.GetOrCreate(ctx, pid, sess.ID); err != nil {
			return "", err
		}
	}
	return sess.ID, nil
}

// Calendar lists sessions starting within a year either side of today.
func (s *SessionService) Calendar(ctx context.Context, actor models.User) ([]dto.SessionView, error) {
	if err := requireRole(actor, "Unauthorized",
		models.RoleAdmin, models.RoleCoordinator, models.RoleAssistantAdmin, models.RoleTrainer); err != nil {
		return nil, err
	}
	now := s.clock.Now()
	q := store.Q().
		Gte("start_date", now.AddDate(-1, 0, 0).Format(utils.DateLayout)).
		Lte("start_date", now.AddDate(1, 0, 0).Format(utils.DateLayout)).
		SortBy("start_date", false)
	sessions, err := s.st.Sessions.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	views := s.views(ctx, sessions)
	for i := range views {
		n := len(views[i].ParticipantIDs)
		views[i].ParticipantCount = &n
	}
	return views, nil
}

// PastTraining lists completed sessions, optionally those starting in one month.
func (s *SessionService) PastTraining(ctx context.Context, month, year int) ([]dto.SessionView, error) {
	q := store.Q().Eq("completion_status", models.CompletionCompleted).SortBy("start_date", true)
	if month >= 1 && month <= 12 && year > 0 {
		from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		q = q.Gte("start_date", from.Format(utils.DateLayout)).
			Lt("start_date", from.AddDate(0, 1, 0).Format(utils.DateLayout))
	}
	sessions, err := s.st.Sessions.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, sessions), nil
}

func (s *SessionService) Get(ctx context.Context, id string) (dto.SessionView, error) {
	sess, err := s.get(ctx, id)
	if err != nil {
		return dto.SessionView{}, err
	}
	return s.view(ctx, sess), nil
}

func (s *SessionService) Update(ctx context.Context, actor models.User, id string, req dto.SessionUpdate) (dto.SessionView, error) {
	if err := requireRole(actor, "Only admins, assistant admins, and coordinators can update sessions",
		models.RoleAdmin, models.RoleAssistantAdmin, models.RoleCoordinator); err != nil {
		return dto.SessionView{}, err
	}
	sess, err := s.get(ctx, id)
	if err != nil {
		return dto.SessionView{}, err
	}

	setIf(&sess.Name, req.Name)
	setIf(&sess.ProgramID, req.ProgramID)
	setIf(&sess.CompanyID, req.CompanyID)
	setIf(&sess.Location, req.Location)
	setIf(&sess.StartDate, req.StartDate)
	setIf(&sess.EndDate, req.EndDate)
	setIf(&sess.SupervisorIDs, req.SupervisorIDs)
	setIf(&sess.ParticipantIDs, req.ParticipantIDs)
	setIf(&sess.TrainerAssignments, req.TrainerAssignments)
	setIf(&sess.CoordinatorID, req.CoordinatorID)
	setIf(&sess.Status, req.Status)
	if sess.EndDate < sess.StartDate {
		return dto.SessionView{}, badRequest("end_date must not be before start_date")
	}
	for _, a := range sess.TrainerAssignments {
		if a.TrainerID == "" {
			return dto.SessionView{}, badRequest("trainer_id is required")
		}
	}

	if err := s.st.Sessions.Save(ctx, sess); err != nil {
		return dto.SessionView{}, err
	}
	for _, pid := range sess.ParticipantIDs {
		if _, err := s.access.GetOrCreate(ctx, pid, sess.ID); err != nil {
			return dto.SessionView{}, err
		}
	}
	return s.view(ctx, sess), nil
}

// Delete removes the session together with its access records.
func (s *SessionService) Delete(ctx context.Context, actor models.User, id string) error {
	if err := requireRole(actor, "Only admins and assistant admins can delete sessions",
		models.RoleAdmin, models.RoleAssistantAdmin); err != nil {
		return err
	}
	if err := s.st.Sessions.Delete(ctx, id); err != nil {
		return lookup(err, "Session")
	}
	return s.access.DeleteForSession(ctx, id)
}

func (s *SessionService) MarkCompleted(ctx context.Context, actor models.User, id string) error {
	if err := requireRole(actor, "Only coordinators or admins can mark sessions as completed",
		models.RoleCoordinator, models.RoleAdmin); err != nil {
		return err
	}
	sess, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	now := s.clock.Now()
	sess.CompletionStatus = models.CompletionCompleted
	sess.CompletedByCoordinator = true
	sess.CompletedDate = &now
	return s.st.Sessions.Save(ctx, sess)
}

func (s *SessionService) ToggleStatus(ctx context.Context, actor models.User, id string) (string, error) {
	if err := requireRole(actor, "Only admins can toggle session status", models.RoleAdmin); err != nil {
		return "", err
	}
	sess, err := s.get(ctx, id)
	if err != nil {
		return "", err
	}
	if sess.Status == models.SessionActive {
		sess.Status = models.SessionInactive
	} else {
		sess.Status = models.SessionActive
	}
	return sess.Status, s.st.Sessions.Save(ctx, sess)
}

func (s *SessionService) Archive(ctx context.Context, actor models.User, id string) error {
	if err := requireRole(actor, "Only admins can archive sessions", models.RoleAdmin); err != nil {
		return err
	}
	sess, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	now := s.clock.Now()
	sess.IsArchived = true
	sess.ArchivedDate = &now
	sess.CompletionStatus = models.CompletionArchived
	return s.st.Sessions.Save(ctx, sess)
}

// AddParticipants enrolls users given by IC number or id.
func (s *SessionService) AddParticipants(ctx context.Context, actor models.User, id string, identifiers []string) (int, error) {
	if err := requireRole(actor, "Only admins, assistant admins, and coordinators can add participants",
		models.RoleAdmin, models.RoleAssistantAdmin, models.RoleCoordinator); err != nil {
		return 0, err
	}
	sess, err := s.get(ctx, id)
	if err != nil {
		return 0, err
	}
	if len(identifiers) == 0 {
		return 0, badRequest("No participant IDs provided")
	}

	userIDs := make([]string, 0, len(identifiers))
	for _, ident := range identifiers {
		u, err := s.st.Users.FindOne(ctx, store.Q().Or(store.EqCond("id_number", ident), store.EqCond("_id", ident)))
		if err != nil {
			if isNotFound(err) {
				return 0, notFound("User " + ident)
			}
			return 0, err
		}
		userIDs = append(userIDs, u.ID)
	}

	var added []string
	sess.ParticipantIDs, added = utils.AppendUnique(sess.ParticipantIDs, userIDs...)
	if err := s.st.Sessions.Save(ctx, sess); err != nil {
		return 0, err
	}
	for _, pid := range added {
		if _, err := s.access.GetOrCreate(ctx, pid, sess.ID); err != nil {
			return 0, err
		}
	}
	return len(added), nil
}

// Participants lists enrolled users with their access record and latest score.
func (s *SessionService) Participants(ctx context.Context, id string) ([]dto.ParticipantView, error) {
	sess, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ParticipantView, 0, len(sess.ParticipantIDs))
	for _, pid := range sess.ParticipantIDs {
		u, ok := s.names.user(ctx, pid)
		if !ok {
			continue
		}
		v := dto.ParticipantView{User: u}
		if a, err := s.st.Access.FindOne(ctx, accessQuery(pid, id)); err == nil {
			v.AccessInfo = &a
		}
		r, err := s.st.TestResults.FindOne(ctx,
			store.Q().Eq("participant_id", pid).Eq("session_id", id).Eq("test_type", models.TestPre).SortBy("submitted_at", true))
		if err == nil {
			score := r.Score
			v.PreTestScore = &score
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *SessionService) ResultsSummary(ctx context.Context, id string) (dto.ResultsSummary, error) {
	sess, err := s.get(ctx, id)
	if err != nil {
		return dto.ResultsSummary{}, err
	}
	bySession := store.Q().Eq("session_id", id)

	results, err := s.st.TestResults.Find(ctx, bySession)
	if err != nil {
		return dto.ResultsSummary{}, err
	}
	feedback, err := s.st.Feedback.Find(ctx, bySession)
	if err != nil {
		return dto.ResultsSummary{}, err
	}
	checklists, err := s.st.Checklists.Find(ctx, bySession)
	if err != nil {
		return dto.ResultsSummary{}, err
	}
	attendance, err := s.st.Attendance.Find(ctx, bySession)
	if err != nil {
		return dto.ResultsSummary{}, err
	}

	sum := dto.ResultsSummary{
		Session:      sess,
		Participants: make([]dto.ParticipantSummary, 0, len(sess.ParticipantIDs)),
		TestResults:  results,
		Feedback:     feedback,
		Checklists:   checklists,
		Attendance:   attendance,
	}
	for _, pid := range sess.ParticipantIDs {
		u, ok := s.names.user(ctx, pid)
		if !ok {
			continue
		}
		p := dto.ParticipantSummary{User: u, TestResults: []models.TestResult{}}
		if a, err := s.st.Access.FindOne(ctx, accessQuery(pid, id)); err == nil {
			p.Access = &a
		}
		for _, r := range results {
			if r.ParticipantID == pid {
				p.TestResults = append(p.TestResults, r)
			}
		}
		for _, a := range attendance {
			if a.ParticipantID == pid {
				p.AttendanceCount++
			}
		}
		for _, c := range checklists {
			if c.ParticipantID == pid {
				p.ChecklistCompleted = true
			}
		}
		for _, f := range feedback {
			if f.ParticipantID == pid {
				p.FeedbackSubmitted = true
			}
		}
		sum.Participants = append(sum.Participants, p)
	}
	return sum, nil
}

type sessionCounts struct {
	tests, feedback, checklists int64
}

func (s *SessionService) counts(ctx context.Context, id string) (sessionCounts, error) {
	var c sessionCounts
	var err error
	bySession := store.Q().Eq("session_id", id)
	if c.tests, err = s.st.TestResults.Count(ctx, bySession); err != nil {
		return c, err
	}
	if c.feedback, err = s.st.Feedback.Count(ctx, bySession); err != nil {
		return c, err
	}
	c.checklists, err = s.st.Checklists.Count(ctx, bySession)
	return c, err
}

func (s *SessionService) Status(ctx context.Context, id string) (dto.SessionStatus, error) {
	sess, err := s.get(ctx, id)
	if err != nil {
		return dto.SessionStatus{}, err
	}
	c, err := s.counts(ctx, id)
	if err != nil {
		return dto.SessionStatus{}, err
	}
	status := sess.CompletionStatus
	if status == "" {
		status = models.CompletionOngoing
	}
	return dto.SessionStatus{
		SessionID:        id,
		ParticipantCount: len(sess.ParticipantIDs),
		PreTestCount:     c.tests,
		FeedbackCount:    c.feedback,
		ChecklistCount:   c.checklists,
		CompletionStatus: status,
	}, nil
}

// CompletionChecklist tells a coordinator whether the session can be closed:
// every participant has a test and feedback on record and the report is submitted.
func (s *SessionService) CompletionChecklist(ctx context.Context, actor models.User, id string) (dto.CompletionChecklist, error) {
	if err := requireRole(actor, "Unauthorized", models.RoleCoordinator, models.RoleAdmin); err != nil {
		return dto.CompletionChecklist{}, err
	}
	sess, err := s.get(ctx, id)
	if err != nil {
		return dto.CompletionChecklist{}, err
	}
	c, err := s.counts(ctx, id)
	if err != nil {
		return dto.CompletionChecklist{}, err
	}

	out := dto.CompletionChecklist{
		ParticipantCount:     len(sess.ParticipantIDs),
		PreTestSubmissions:   c.tests,
		FeedbackSubmissions:  c.feedback,
		ChecklistSubmissions: c.checklists,
	}
	report, err := s.st.Reports.FindOne(ctx, store.Q().Eq("session_id", id).SortBy("created_at", true))
	switch {
	case err == nil:
		out.TrainingReportGenerated = true
		out.TrainingReportStatus = &report.Status
	case !isNotFound(err):
		return out, err
	}
	n := int64(out.ParticipantCount)
	out.AllRequirementsMet = c.tests >= n && c.feedback >= n &&
		out.TrainingReportGenerated && report.Status == models.ReportSubmitted
	return out, nil
}

// AssignedParticipants is the calling trainer's share of the session.
func (s *SessionService) AssignedParticipants(ctx context.Context, actor models.User, id string) ([]models.User, error) {
	if err := requireRole(actor, "Only trainers can access this", models.RoleTrainer); err != nil {
		return nil, err
	}
	sess, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(sess.TrainerAssignments) == 0 || len(sess.ParticipantIDs) == 0 {
		return []models.User{}, nil
	}
	ids, ok := roster.AssignedTo(sess.ParticipantIDs, sess.TrainerAssignments, actor.ID)
	if !ok {
		return nil, forbidden("You are not assigned to this session")
	}
	return s.usersInOrder(ctx, ids)
}

// Distribution is the whole roster split, for chief trainers and coordinators.
func (s *SessionService) Distribution(ctx context.Context, actor models.User, id string) (dto.Distribution, error) {
	if err := requireRole(actor, "Unauthorized",
		models.RoleAdmin, models.RoleCoordinator, models.RoleTrainer); err != nil {
		return dto.Distribution{}, err
	}
	sess, err := s.get(ctx, id)
	if err != nil {
		return dto.Distribution{}, err
	}
	if actor.Role == models.RoleTrainer && !sess.HasTrainer(actor.ID) {
		return dto.Distribution{}, forbidden("You are not assigned to this session")
	}
	return dto.Distribution{
		SessionID: id,
		Shares:    roster.Distribute(sess.ParticipantIDs, sess.TrainerAssignments),
	}, nil
}

func (s *SessionService) usersInOrder(ctx context.Context, ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	users, err := s.st.Users.Find(ctx, store.Q().In("_id", ids))
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	out := make([]models.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

// AvailableTests lists the tests a participant may take now. Answers are
// never included; post-test questions come in a fresh order each call.
func (s *SessionService) AvailableTests(ctx context.Context, actor models.User, id string) ([]dto.AvailableTest, error) {
	if err := requireRole(actor, "Only participants can access this", models.RoleParticipant); err != nil {
		return nil, err
	}
	sess, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !sess.HasParticipant(actor.ID) {
		return nil, forbidden("You are not enrolled in this session")
	}
	access, err := s.access.GetOrCreate(ctx, actor.ID, id)
	if err != nil {
		return nil, err
	}
	tests, err := s.st.Tests.Find(ctx, store.Q().Eq("program_id", sess.ProgramID))
	if err != nil {
		return nil, err
	}

	out := make([]dto.AvailableTest, 0, len(tests))
	for _, t := range tests {
		var open, done bool
		switch t.TestType {
		case models.TestPre:
			open, done = access.CanAccessPreTest, access.PreTestCompleted
		case models.TestPost:
			open, done = access.CanAccessPostTest, access.PostTestCompleted
		}
		if !open || done {
			continue
		}

		at := dto.AvailableTest{
			ID:        t.ID,
			ProgramID: t.ProgramID,
			TestType:  t.TestType,
			Title:     t.Title,
			CreatedAt: t.CreatedAt,
		}
		questions := t.Questions
		if t.TestType == models.TestPost {
			questions, at.QuestionIndices = quiz.Shuffle(questions, quiz.Seed(actor.ID, s.clock.Now()))
		}
		at.Questions = quiz.Redact(questions)
		out = append(out, at)
	}
	return out, nil
}

// MarkAttendance records a coordinator's present/absent mark.
func (s *SessionService) MarkAttendance(ctx context.Context, actor models.User, sessionID, participantID, status string) error {
	if err := requireRole(actor, "Only coordinators and admins can mark attendance",
		models.RoleCoordinator, models.RoleAdmin); err != nil {
		return err
	}
	if status != models.AttendancePresent && status != models.AttendanceAbsent {
		return badRequest("Status must be 'present' or 'absent'")
	}
	sess, err := s.get(ctx, sessionID)
	if err != nil {
		return err
	}
	if !sess.HasParticipant(participantID) {
		return badRequest("Participant not enrolled in this session")
	}

	q := store.Q().Eq("session_id", sessionID).Eq("participant_id", participantID)
	rec, err := s.st.ParticipantAttendance.FindOne(ctx, q)
	if err != nil {
		if !isNotFound(err) {
			return err
		}
		rec = models.ParticipantAttendance{ID: models.NewID(), SessionID: sessionID, ParticipantID: participantID}
	}
	rec.Status = status
	rec.MarkedBy = actor.ID
	rec.MarkedAt = s.clock.Now()
	return s.st.ParticipantAttendance.Save(ctx, rec)
}

// AttendanceStatus maps participant id to its present/absent mark.
func (s *SessionService) AttendanceStatus(ctx context.Context, actor models.User, sessionID string) (map[string]string, error) {
	if err := requireRole(actor, "Unauthorized",
		models.RoleCoordinator, models.RoleAdmin, models.RoleTrainer); err != nil {
		return nil, err
	}
	recs, err := s.st.ParticipantAttendance.Find(ctx, store.Q().Eq("session_id", sessionID))
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(recs))
	for _, r := range recs {
		out[r.ParticipantID] = r.Status
	}
	return out, nil
}

func releaseMessage(gate string, n int) string {
	switch gate {
	case GatePreTest:
		return fmt.Sprintf("Pre-test released for %d participants", n)
	case GatePostTest:
		return fmt.Sprintf("Post-test released for %d participants", n)
	case GateFeedback:
		return fmt.Sprintf("Feedback released for %d participants", n)
	}
	return fmt.Sprintf("Certificates released for %d participants", n)
}

// Release opens a gate for the whole session.
func (s *SessionService) Release(ctx context.Context, actor models.User, id, gate string) (string, error) {
	n, err := s.access.Release(ctx, actor, id, gate)
	if err != nil {
		return "", err
	}
	return releaseMessage(gate, n), nil
}
