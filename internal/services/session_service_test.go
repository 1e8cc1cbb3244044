package services

import (
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mddrc-backend/dto"
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/quiz"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

func TestCreateSessionFindsOrCreatesPeople(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, models.RoleAdmin, "Admin", "A1")
	existing := f.user(t, models.RoleParticipant, "Old Name", "P1")
	prog := f.program(t, 70)
	comp := f.company(t, "Petronas")

	id, err := f.svc.Sessions.Create(f.ctx, admin, dto.SessionCreate{
		Name:      "Batch A",
		ProgramID: prog.ID,
		CompanyID: comp.ID,
		StartDate: "2026-01-10",
		EndDate:   "2026-01-12",
		Participants: []dto.PersonData{
			{FullName: "New Name", IDNumber: "P1"},
			{FullName: "Fresh", IDNumber: "P2"},
		},
		ParticipantIDs: []string{existing.ID},
		TrainerAssignments: []models.TrainerAssignment{
			{TrainerID: "t1", Role: models.TrainerChief},
			{TrainerID: "t2"},
		},
	})
	require.NoError(t, err)

	sess, err := f.st.Sessions.Get(f.ctx, id)
	require.NoError(t, err)
	require.Len(t, sess.ParticipantIDs, 2)
	assert.Equal(t, existing.ID, sess.ParticipantIDs[0])
	assert.Equal(t, models.TrainerRegular, sess.TrainerAssignments[1].Role)
	assert.Equal(t, models.SessionActive, sess.Status)
	assert.Equal(t, models.CompletionOngoing, sess.CompletionStatus)

	refreshed, err := f.st.Users.Get(f.ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", refreshed.FullName)
	assert.Equal(t, comp.ID, refreshed.CompanyID)

	fresh, err := f.st.Users.FindOne(f.ctx, store.Q().Eq("id_number", "P2"))
	require.NoError(t, err)
	assert.Equal(t, "p2@temp.mddrc.local", fresh.Email)

	n, err := f.st.Access.Count(f.ctx, store.Q().Eq("session_id", id))
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestCreateSessionRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	coord := f.user(t, models.RoleCoordinator, "Coord", "C1")
	_, err := f.svc.Sessions.Create(f.ctx, coord, dto.SessionCreate{Name: "x", StartDate: "2026-01-01", EndDate: "2026-01-01"})
	requireStatus(t, err, fiber.StatusForbidden)

	admin := f.user(t, models.RoleAdmin, "Admin", "A1")
	_, err = f.svc.Sessions.Create(f.ctx, admin, dto.SessionCreate{Name: "x", StartDate: "2026-01-05", EndDate: "2026-01-01"})
	requireStatus(t, err, fiber.StatusBadRequest)
}

func TestListSessionsScopesByRole(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, models.RoleAdmin, "Admin", "A1")
	p := f.user(t, models.RoleParticipant, "Part", "P1")
	coord := f.user(t, models.RoleCoordinator, "Coord", "C1")
	trainer := f.user(t, models.RoleTrainer, "Trainer", "T1")
	prog := f.program(t, 70)
	comp := f.company(t, "Shell")

	mine := f.session(t, prog.ID, comp.ID, p.ID)
	mine.CoordinatorID = coord.ID
	mine.Location = "Shah Alam"
	require.NoError(t, f.st.Sessions.Save(f.ctx, mine))

	other := f.session(t, prog.ID, comp.ID)
	other.Status = models.SessionInactive
	require.NoError(t, f.st.Sessions.Save(f.ctx, other))

	done := f.session(t, prog.ID, comp.ID, p.ID)
	done.CompletionStatus = models.CompletionCompleted
	require.NoError(t, f.st.Sessions.Save(f.ctx, done))

	ended := f.session(t, prog.ID, comp.ID)
	ended.EndDate = f.now.AddDate(0, 0, -1).Format(utils.DateLayout)
	require.NoError(t, f.st.Sessions.Save(f.ctx, ended))

	ids := func(views []dto.SessionView) []string {
		out := make([]string, 0, len(views))
		for _, v := range views {
			out = append(out, v.ID)
		}
		sort.Strings(out)
		return out
	}
	sorted := func(v ...string) []string { sort.Strings(v); return v }

	all, err := f.svc.Sessions.List(f.ctx, admin, dto.SessionFilter{})
	require.NoError(t, err)
	assert.Equal(t, sorted(mine.ID, other.ID, ended.ID), ids(all))
	assert.Equal(t, "Shell", all[0].CompanyName)
	assert.Equal(t, "Defensive Driving", all[0].ProgramName)

	got, err := f.svc.Sessions.List(f.ctx, p, dto.SessionFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{mine.ID}, ids(got))

	got, err = f.svc.Sessions.List(f.ctx, coord, dto.SessionFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{mine.ID}, ids(got))

	got, err = f.svc.Sessions.List(f.ctx, trainer, dto.SessionFilter{})
	require.NoError(t, err)
	assert.Equal(t, sorted(mine.ID, done.ID), ids(got))

	got, err = f.svc.Sessions.List(f.ctx, admin, dto.SessionFilter{Search: "shah"})
	require.NoError(t, err)
	assert.Equal(t, []string{mine.ID}, ids(got))
}

func TestPastTrainingMonthWindow(t *testing.T) {
	f := newFixture(t)
	prog := f.program(t, 70)

	jan := f.session(t, prog.ID, "")
	jan.StartDate, jan.CompletionStatus = "2026-01-31", models.CompletionCompleted
	require.NoError(t, f.st.Sessions.Save(f.ctx, jan))
	feb := f.session(t, prog.ID, "")
	feb.StartDate, feb.CompletionStatus = "2026-02-01", models.CompletionCompleted
	require.NoError(t, f.st.Sessions.Save(f.ctx, feb))

	got, err := f.svc.Sessions.PastTraining(f.ctx, 1, 2026)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, jan.ID, got[0].ID)
	assert.Equal(t, "Unknown", got[0].CompanyName)

	got, err = f.svc.Sessions.PastTraining(f.ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUpdateAndLifecycle(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, models.RoleAdmin, "Admin", "A1")
	p := f.user(t, models.RoleParticipant, "Part", "P1")
	sess := f.session(t, "", "")

	name := "Renamed"
	ids := []string{p.ID}
	view, err := f.svc.Sessions.Update(f.ctx, admin, sess.ID, dto.SessionUpdate{Name: &name, ParticipantIDs: &ids})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", view.Name)
	_, err = f.st.Access.FindOne(f.ctx, accessQuery(p.ID, sess.ID))
	require.NoError(t, err)

	_, err = f.svc.Sessions.Update(f.ctx, p, sess.ID, dto.SessionUpdate{Name: &name})
	requireStatus(t, err, fiber.StatusForbidden)
	_, err = f.svc.Sessions.Update(f.ctx, admin, "nope", dto.SessionUpdate{})
	requireStatus(t, err, fiber.StatusNotFound)

	status, err := f.svc.Sessions.ToggleStatus(f.ctx, admin, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionInactive, status)

	require.NoError(t, f.svc.Sessions.MarkCompleted(f.ctx, admin, sess.ID))
	got, err := f.st.Sessions.Get(f.ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, got.CompletedByCoordinator)
	require.NotNil(t, got.CompletedDate)

	require.NoError(t, f.svc.Sessions.Archive(f.ctx, admin, sess.ID))
	got, err = f.st.Sessions.Get(f.ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, got.IsArchived)
	assert.Equal(t, models.CompletionArchived, got.CompletionStatus)

	require.NoError(t, f.svc.Sessions.Delete(f.ctx, admin, sess.ID))
	n, err := f.st.Access.Count(f.ctx, store.Q().Eq("session_id", sess.ID))
	require.NoError(t, err)
	assert.Zero(t, n)
	requireStatus(t, f.svc.Sessions.Delete(f.ctx, admin, sess.ID), fiber.StatusNotFound)
}

func TestAddParticipants(t *testing.T) {
	f := newFixture(t)
	coord := f.user(t, models.RoleCoordinator, "Coord", "C1")
	a := f.user(t, models.RoleParticipant, "A", "IC-A")
	b := f.user(t, models.RoleParticipant, "B", "IC-B")
	sess := f.session(t, "", "", a.ID)

	n, err := f.svc.Sessions.AddParticipants(f.ctx, coord, sess.ID, []string{"IC-A", b.ID, "IC-B"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := f.st.Sessions.Get(f.ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID, b.ID}, got.ParticipantIDs)

	_, err = f.svc.Sessions.AddParticipants(f.ctx, coord, sess.ID, nil)
	requireStatus(t, err, fiber.StatusBadRequest)
	_, err = f.svc.Sessions.AddParticipants(f.ctx, coord, sess.ID, []string{"ghost"})
	requireStatus(t, err, fiber.StatusNotFound)
}

func TestAssignedParticipantsAndDistribution(t *testing.T) {
	f := newFixture(t)
	chief := f.user(t, models.RoleTrainer, "Chief", "T1")
	reg := f.user(t, models.RoleTrainer, "Reg", "T2")
	outsider := f.user(t, models.RoleTrainer, "Out", "T3")

	var pids []string
	for _, ic := range []string{"P1", "P2", "P3", "P4", "P5"} {
		pids = append(pids, f.user(t, models.RoleParticipant, ic, ic).ID)
	}
	sess := f.session(t, "", "", pids...)
	sess.TrainerAssignments = []models.TrainerAssignment{
		{TrainerID: chief.ID, Role: models.TrainerChief},
		{TrainerID: reg.ID, Role: models.TrainerRegular},
	}
	require.NoError(t, f.st.Sessions.Save(f.ctx, sess))

	mine, err := f.svc.Sessions.AssignedParticipants(f.ctx, chief, sess.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, pids[0], mine[0].ID)

	mine, err = f.svc.Sessions.AssignedParticipants(f.ctx, reg, sess.ID)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, pids[2], mine[0].ID)

	_, err = f.svc.Sessions.AssignedParticipants(f.ctx, outsider, sess.ID)
	requireStatus(t, err, fiber.StatusForbidden)

	dist, err := f.svc.Sessions.Distribution(f.ctx, chief, sess.ID)
	require.NoError(t, err)
	require.Len(t, dist.Shares, 2)
	assert.Equal(t, 2, dist.Shares[0].Count)
	assert.Equal(t, 3, dist.Shares[1].Count)

	_, err = f.svc.Sessions.Distribution(f.ctx, outsider, sess.ID)
	requireStatus(t, err, fiber.StatusForbidden)

	empty := f.session(t, "", "")
	none, err := f.svc.Sessions.AssignedParticipants(f.ctx, chief, empty.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAssignedParticipantsChiefWithZeroShare(t *testing.T) {
	f := newFixture(t)
	chief := f.user(t, models.RoleTrainer, "Chief", "T1")
	reg := f.user(t, models.RoleTrainer, "Reg", "T2")
	p := f.user(t, models.RoleParticipant, "Part", "P1")

	sess := f.session(t, "", "", p.ID)
	sess.TrainerAssignments = []models.TrainerAssignment{
		{TrainerID: chief.ID, Role: models.TrainerChief},
		{TrainerID: reg.ID, Role: models.TrainerRegular},
	}
	require.NoError(t, f.st.Sessions.Save(f.ctx, sess))

	mine, err := f.svc.Sessions.AssignedParticipants(f.ctx, chief, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, mine)
	assert.Empty(t, mine)

	mine, err = f.svc.Sessions.AssignedParticipants(f.ctx, reg, sess.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, p.ID, mine[0].ID)
}

func TestAvailableTestsFollowGates(t *testing.T) {
	f := newFixture(t)
	coord := f.user(t, models.RoleCoordinator, "Coord", "C1")
	p := f.user(t, models.RoleParticipant, "Part", "P1")
	prog := f.program(t, 70)
	sess := f.session(t, prog.ID, "", p.ID)

	for _, typ := range []string{models.TestPre, models.TestPost} {
		_, err := f.svc.Tests.Create(f.ctx, f.user(t, models.RoleAdmin, "Admin "+typ, "A-"+typ), dto.TestCreate{
			ProgramID: prog.ID, TestType: typ, Title: typ, Questions: threeQuestions(),
		})
		require.NoError(t, err)
	}

	got, err := f.svc.Sessions.AvailableTests(f.ctx, p, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, got)

	msg, err := f.svc.Sessions.Release(f.ctx, coord, sess.ID, GatePostTest)
	require.NoError(t, err)
	assert.Equal(t, "Post-test released for 1 participants", msg)

	got, err = f.svc.Sessions.AvailableTests(f.ctx, p, sess.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	post := got[0]
	assert.Equal(t, models.TestPost, post.TestType)
	require.Len(t, post.QuestionIndices, 3)
	assert.True(t, quiz.IsPermutation(post.QuestionIndices, 3))

	canonical := threeQuestions()
	for i, q := range post.Questions {
		assert.Equal(t, canonical[post.QuestionIndices[i]].Question, q.Question)
	}

	_, err = f.svc.Access.Mutate(f.ctx, p.ID, sess.ID, func(a *models.ParticipantAccess) { a.PostTestCompleted = true })
	require.NoError(t, err)
	got, err = f.svc.Sessions.AvailableTests(f.ctx, p, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = f.svc.Sessions.AvailableTests(f.ctx, coord, sess.ID)
	requireStatus(t, err, fiber.StatusForbidden)
}

func TestMarkAttendance(t *testing.T) {
	f := newFixture(t)
	coord := f.user(t, models.RoleCoordinator, "Coord", "C1")
	trainer := f.user(t, models.RoleTrainer, "Trainer", "T1")
	p := f.user(t, models.RoleParticipant, "Part", "P1")
	sess := f.session(t, "", "", p.ID)

	requireStatus(t, f.svc.Sessions.MarkAttendance(f.ctx, coord, sess.ID, p.ID, "late"), fiber.StatusBadRequest)
	requireStatus(t, f.svc.Sessions.MarkAttendance(f.ctx, coord, sess.ID, "stranger", models.AttendancePresent), fiber.StatusBadRequest)
	requireStatus(t, f.svc.Sessions.MarkAttendance(f.ctx, trainer, sess.ID, p.ID, models.AttendancePresent), fiber.StatusForbidden)

	require.NoError(t, f.svc.Sessions.MarkAttendance(f.ctx, coord, sess.ID, p.ID, models.AttendancePresent))
	require.NoError(t, f.svc.Sessions.MarkAttendance(f.ctx, coord, sess.ID, p.ID, models.AttendanceAbsent))

	marks, err := f.svc.Sessions.AttendanceStatus(f.ctx, trainer, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{p.ID: models.AttendanceAbsent}, marks)
}

func TestCompletionChecklist(t *testing.T) {
	f := newFixture(t)
	coord := f.user(t, models.RoleCoordinator, "Coord", "C1")
	p := f.user(t, models.RoleParticipant, "Part", "P1")
	sess := f.session(t, "", "", p.ID)

	out, err := f.svc.Sessions.CompletionChecklist(f.ctx, coord, sess.ID)
	require.NoError(t, err)
	assert.False(t, out.AllRequirementsMet)
	assert.Nil(t, out.TrainingReportStatus)

	require.NoError(t, f.st.TestResults.Insert(f.ctx, models.TestResult{ID: models.NewID(), SessionID: sess.ID, ParticipantID: p.ID}))
	require.NoError(t, f.st.Feedback.Insert(f.ctx, models.CourseFeedback{ID: models.NewID(), SessionID: sess.ID, ParticipantID: p.ID}))
	_, _, err = f.svc.Reports.Generate(f.ctx, coord, sess.ID)
	require.NoError(t, err)

	out, err = f.svc.Sessions.CompletionChecklist(f.ctx, coord, sess.ID)
	require.NoError(t, err)
	assert.True(t, out.TrainingReportGenerated)
	assert.False(t, out.AllRequirementsMet)

	_, err = f.svc.Reports.SubmitFinal(f.ctx, coord, sess.ID)
	require.NoError(t, err)
	out, err = f.svc.Sessions.CompletionChecklist(f.ctx, coord, sess.ID)
	require.NoError(t, err)
	assert.True(t, out.AllRequirementsMet)

	status, err := f.svc.Sessions.Status(f.ctx, sess.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, status.PreTestCount)
	assert.EqualValues(t, 1, status.FeedbackCount)
	assert.Equal(t, models.CompletionOngoing, status.CompletionStatus)
}
