package services

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mddrc-backend/internal/models"
)

func TestReportLifecycle(t *testing.T) {
	f := newFixture(t)
	coord := f.user(t, models.RoleCoordinator, "Aminah", "C1")
	other := f.user(t, models.RoleCoordinator, "Other", "C2")
	admin := f.user(t, models.RoleAdmin, "Admin", "A1")
	prog := f.program(t, 70)
	comp := f.company(t, "Petronas")
	sess := f.session(t, prog.ID, comp.ID)

	_, _, err := f.svc.Reports.Generate(f.ctx, coord, "missing")
	requireStatus(t, err, fiber.StatusNotFound)

	id, created, err := f.svc.Reports.Generate(f.ctx, coord, sess.ID)
	require.NoError(t, err)
	assert.True(t, created)
	again, created, err := f.svc.Reports.Generate(f.ctx, coord, sess.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, id, again)

	mine, err := f.svc.Reports.Coordinator(f.ctx, coord)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Aminah", mine[0].CoordinatorName)
	assert.Equal(t, "Petronas", mine[0].CompanyName)
	assert.Equal(t, "Defensive Driving", mine[0].ProgramName)
	assert.Equal(t, models.ReportDraft, mine[0].Status)

	theirs, err := f.svc.Reports.Coordinator(f.ctx, other)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	_, err = f.svc.Reports.DocxFile(f.ctx, sess.ID)
	requireStatus(t, err, fiber.StatusNotFound)

	_, err = f.svc.Reports.UploadDocx(f.ctx, coord, sess.ID, writeUpload("report.pdf", "", []byte("x")))
	requireStatus(t, err, fiber.StatusBadRequest)
	r, err := f.svc.Reports.UploadDocx(f.ctx, coord, sess.ID, writeUpload("report.docx", "", []byte("PK")))
	require.NoError(t, err)
	assert.Equal(t, models.ReportDraft, r.Status)
	path, err := f.svc.Reports.DocxFile(f.ctx, sess.ID)
	require.NoError(t, err)
	assert.Contains(t, path, "edited_"+sess.ID+".docx")

	r, err = f.svc.Reports.UploadPDF(f.ctx, coord, sess.ID, writeUpload("final.pdf", "", []byte("%PDF")))
	require.NoError(t, err)
	assert.Equal(t, models.ReportSubmitted, r.Status)
	require.NotNil(t, r.SubmittedAt)
	path, err = f.svc.Reports.PDFFile(f.ctx, sess.ID)
	require.NoError(t, err)
	assert.Contains(t, path, "final_"+sess.ID+".pdf")

	all, err := f.svc.Reports.All(f.ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	_, err = f.svc.Reports.All(f.ctx, coord)
	requireStatus(t, err, fiber.StatusForbidden)
}

func TestReportUploadWithoutDraft(t *testing.T) {
	f := newFixture(t)
	coord := f.user(t, models.RoleCoordinator, "C", "C1")
	sess := f.session(t, "", "")

	_, err := f.svc.Reports.UploadPDF(f.ctx, coord, sess.ID, writeUpload("final.pdf", "", []byte("%PDF")))
	requireStatus(t, err, fiber.StatusNotFound)
	_, err = f.svc.Reports.SubmitFinal(f.ctx, coord, sess.ID)
	requireStatus(t, err, fiber.StatusNotFound)
}
