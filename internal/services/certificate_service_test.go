package services

import (
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mddrc-backend/internal/models"
)

func writeUpload(name, contentType string, body []byte) Upload {
	return Upload{
		Filename:    name,
		ContentType: contentType,
		Size:        int64(len(body)),
		Save:        func(path string) error { return os.WriteFile(path, body, 0o644) },
	}
}

func TestGenerateCertificate(t *testing.T) {
	f := newFixture(t)
	coord := f.user(t, models.RoleCoordinator, "Coord", "C1")
	p := f.user(t, models.RoleParticipant, "Hafiz", "P1")
	prog := f.program(t, 70)
	comp := f.company(t, "Tenaga")
	sess := f.session(t, prog.ID, comp.ID, p.ID)

	id, created, err := f.svc.Certificates.Generate(f.ctx, coord, sess.ID, p.ID)
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := f.svc.Certificates.Generate(f.ctx, coord, sess.ID, p.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, id, again)

	c, err := f.st.Certificates.Get(f.ctx, id)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(c.CertificateNumber, "CERT-"))
	assert.Len(t, c.CertificateNumber, len("CERT-")+8)
	assert.Equal(t, strings.ToUpper(c.CertificateNumber), c.CertificateNumber)
	assert.Equal(t, "Hafiz", c.ParticipantName)
	assert.Equal(t, "Tenaga", c.CompanyName)

	a, err := f.st.Access.FindOne(f.ctx, accessQuery(p.ID, sess.ID))
	require.NoError(t, err)
	assert.True(t, a.CertificateReleased)

	_, err = f.svc.Certificates.File(f.ctx, id)
	requireStatus(t, err, fiber.StatusNotFound)

	_, _, err = f.svc.Certificates.Generate(f.ctx, p, sess.ID, p.ID)
	requireStatus(t, err, fiber.StatusForbidden)

	mine, err := f.svc.Certificates.Mine(f.ctx, p)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestUploadCertificate(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, models.RoleAdmin, "Admin", "A1")
	p := f.user(t, models.RoleParticipant, "P", "P1")
	sess := f.session(t, "", "", p.ID)

	_, err := f.svc.Certificates.Upload(f.ctx, admin, sess.ID, p.ID, writeUpload("cert.png", "image/png", []byte("x")))
	requireStatus(t, err, fiber.StatusBadRequest)

	res, err := f.svc.Certificates.Upload(f.ctx, admin, sess.ID, p.ID, writeUpload("cert.PDF", "application/pdf", make([]byte, 512*1024)))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res.FileSizeMB, 0.001)
	assert.True(t, strings.HasPrefix(res.CertificateURL, StaticURLPrefix+"/"+CertificatesDir+"/"))

	path, err := f.svc.Certificates.FileFor(f.ctx, sess.ID, p.ID)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)

	again, err := f.svc.Certificates.Upload(f.ctx, admin, sess.ID, p.ID, writeUpload("v2.pdf", "application/pdf", []byte("%PDF")))
	require.NoError(t, err)
	assert.Equal(t, res.CertificateID, again.CertificateID)

	repo, err := f.svc.Certificates.Repository(f.ctx, admin)
	require.NoError(t, err)
	assert.Len(t, repo, 1)
	_, err = f.svc.Certificates.Repository(f.ctx, p)
	requireStatus(t, err, fiber.StatusForbidden)
}

func TestEligibility(t *testing.T) {
	f := newFixture(t)
	p := f.user(t, models.RoleParticipant, "P", "P1")
	sess := f.session(t, "", "", p.ID)

	res, err := f.svc.Certificates.Eligibility(f.ctx, sess.ID, p.ID)
	require.NoError(t, err)
	assert.False(t, res.Eligible)
	assert.Equal(t, "Not enrolled in session", res.Reason)

	_, err = f.svc.Access.Mutate(f.ctx, p.ID, sess.ID, func(a *models.ParticipantAccess) {
		a.PreTestCompleted, a.PostTestCompleted, a.FeedbackCompleted = true, true, true
	})
	require.NoError(t, err)
	res, err = f.svc.Certificates.Eligibility(f.ctx, sess.ID, p.ID)
	require.NoError(t, err)
	assert.False(t, res.Eligible)
	assert.False(t, res.Passed)

	require.NoError(t, f.st.TestResults.Insert(f.ctx, models.TestResult{
		ID: models.NewID(), SessionID: sess.ID, ParticipantID: p.ID, Passed: true,
	}))
	res, err = f.svc.Certificates.Eligibility(f.ctx, sess.ID, p.ID)
	require.NoError(t, err)
	assert.True(t, res.Eligible)
}
