package services

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mddrc-backend/internal/mailsvc"
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/repository/inmem"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

const testSecret = "test-secret"

type fixture struct {
	ctx  context.Context
	st   *store.Stores
	svc  *Services
	mail *mailsvc.Console
	now  time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Millisecond)
	st := inmem.NewStores()
	console := mailsvc.NewConsole("noreply@mddrc.test", "MDDRC", nil)
	svc := New(st, Options{
		Clock:        utils.Fixed(now),
		JWTSecret:    testSecret,
		PasswordCost: bcrypt.MinCost,
		FrontendURL:  "http://frontend.test",
		StaticDir:    t.TempDir(),
		Mailer:       console,
	})
	return &fixture{ctx: context.Background(), st: st, svc: svc, mail: console, now: now}
}

func (f *fixture) user(t *testing.T, role, name, ic string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	u := models.User{
		ID:           models.NewID(),
		Email:        ic + "@mddrc.test",
		FullName:     name,
		IDNumber:     ic,
		Role:         role,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    f.now,
	}
	require.NoError(t, f.st.Users.Insert(f.ctx, u))
	return u
}

func (f *fixture) program(t *testing.T, pass float64) models.Program {
	t.Helper()
	p := models.Program{ID: models.NewID(), Name: "Defensive Driving", PassPercentage: pass, CreatedAt: f.now}
	require.NoError(t, f.st.Programs.Insert(f.ctx, p))
	return p
}

func (f *fixture) company(t *testing.T, name string) models.Company {
	t.Helper()
	c := models.Company{ID: models.NewID(), Name: name, CreatedAt: f.now}
	require.NoError(t, f.st.Companies.Insert(f.ctx, c))
	return c
}

func (f *fixture) session(t *testing.T, programID, companyID string, participants ...string) models.Session {
	t.Helper()
	if participants == nil {
		participants = []string{}
	}
	s := models.Session{
		ID:                 models.NewID(),
		Name:               "Batch 1",
		ProgramID:          programID,
		CompanyID:          companyID,
		StartDate:          f.now.Format(utils.DateLayout),
		EndDate:            f.now.AddDate(0, 0, 2).Format(utils.DateLayout),
		ParticipantIDs:     participants,
		SupervisorIDs:      []string{},
		TrainerAssignments: []models.TrainerAssignment{},
		Status:             models.SessionActive,
		CompletionStatus:   models.CompletionOngoing,
		CreatedAt:          f.now,
	}
	require.NoError(t, f.st.Sessions.Insert(f.ctx, s))
	return s
}

func requireStatus(t *testing.T, err error, code int) {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, code, fe.Code, fe.Message)
}

func threeQuestions() []models.Question {
	return []models.Question{
		{Question: "Safe following distance?", Options: []string{"1s", "3s", "5s"}, CorrectAnswer: 1},
		{Question: "Wet road speed?", Options: []string{"Slower", "Faster"}, CorrectAnswer: 0},
		{Question: "Blind spot check?", Options: []string{"Never", "Mirror only", "Shoulder"}, CorrectAnswer: 2},
	}
}
