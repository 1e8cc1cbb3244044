package services

import (
	"context"
	"strings"

	"mddrc-backend/dto"
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

const VerificationCompleted = "completed"

// ChecklistService owns checklist templates, trainer-submitted vehicle
// checklists and participants' vehicle details.
type ChecklistService struct {
	st    *store.Stores
	files Files
	clock utils.Clock
}

func NewChecklistService(st *store.Stores, files Files, clock utils.Clock) *ChecklistService {
	return &ChecklistService{st: st, files: files, clock: clock}
}

func (s *ChecklistService) Templates(ctx context.Context) ([]models.ChecklistTemplate, error) {
	return s.st.ChecklistTemplates.Find(ctx, store.Q().SortBy("created_at", false))
}

func (s *ChecklistService) ProgramTemplates(ctx context.Context, programID string) ([]models.ChecklistTemplate, error) {
	return s.st.ChecklistTemplates.Find(ctx, store.Q().Eq("program_id", programID))
}

// SaveTemplate creates the program's template or merges new items into it.
func (s *ChecklistService) SaveTemplate(ctx context.Context, actor models.User, req dto.ChecklistTemplateRequest) (models.ChecklistTemplate, error) {
	if err := requireRole(actor, "Unauthorized", models.RoleAdmin, models.RoleAssistantAdmin); err != nil {
		return models.ChecklistTemplate{}, err
	}
	t, err := s.st.ChecklistTemplates.FindOne(ctx, store.Q().Eq("program_id", req.ProgramID))
	switch {
	case err == nil:
		t.Items, _ = utils.AppendUnique(t.Items, req.Items...)
		return t, s.st.ChecklistTemplates.Save(ctx, t)
	case !isNotFound(err):
		return t, err
	}

	title := req.Title
	if title == "" {
		title = models.DefaultChecklistTitle
	}
	items, _ := utils.AppendUnique(make([]string, 0, len(req.Items)), req.Items...)
	t = models.ChecklistTemplate{
		ID:        models.NewID(),
		ProgramID: req.ProgramID,
		Title:     title,
		Items:     items,
		CreatedAt: s.clock.Now(),
	}
	return t, s.st.ChecklistTemplates.Insert(ctx, t)
}

func (s *ChecklistService) UpdateTemplate(ctx context.Context, actor models.User, id string, req dto.ChecklistTemplateUpdate) (models.ChecklistTemplate, error) {
	if err := requireRole(actor, "Unauthorized", models.RoleAdmin, models.RoleAssistantAdmin); err != nil {
		return models.ChecklistTemplate{}, err
	}
	t, err := s.st.ChecklistTemplates.Get(ctx, id)
	if err != nil {
		return t, lookup(err, "Template")
	}
	setIf(&t.Title, req.Title)
	setIf(&t.Items, req.Items)
	return t, s.st.ChecklistTemplates.Save(ctx, t)
}

func (s *ChecklistService) DeleteTemplate(ctx context.Context, actor models.User, id string) error {
	if err := requireRole(actor, "Only admins can delete templates", models.RoleAdmin); err != nil {
		return err
	}
	return lookup(s.st.ChecklistTemplates.Delete(ctx, id), "Template")
}

func (s *ChecklistService) DeleteItem(ctx context.Context, actor models.User, id string, index int) error {
	if err := requireRole(actor, "Unauthorized", models.RoleAdmin, models.RoleAssistantAdmin); err != nil {
		return err
	}
	t, err := s.st.ChecklistTemplates.Get(ctx, id)
	if err != nil {
		return lookup(err, "Template")
	}
	if index < 0 || index >= len(t.Items) {
		return badRequest("Invalid item index")
	}
	t.Items = append(t.Items[:index], t.Items[index+1:]...)
	return s.st.ChecklistTemplates.Save(ctx, t)
}

// Submit records a trainer's inspection; the submitter is also the verifier.
func (s *ChecklistService) Submit(ctx context.Context, actor models.User, req dto.ChecklistSubmit) (string, error) {
	if err := requireRole(actor, "Unauthorized", models.RoleTrainer, models.RoleAdmin); err != nil {
		return "", err
	}
	now := s.clock.Now()
	photos := req.Photos
	if photos == nil {
		photos = []string{}
	}
	c := models.VehicleChecklist{
		ID:                 models.NewID(),
		SessionID:          req.SessionID,
		ParticipantID:      req.ParticipantID,
		TrainerID:          actor.ID,
		Items:              req.Items,
		Photos:             photos,
		VerificationStatus: VerificationCompleted,
		VerifiedBy:         actor.ID,
		VerifiedAt:         &now,
		CreatedAt:          now,
	}
	return c.ID, s.st.Checklists.Insert(ctx, c)
}

func (s *ChecklistService) ForSession(ctx context.Context, sessionID string) ([]models.VehicleChecklist, error) {
	return s.st.Checklists.Find(ctx, store.Q().Eq("session_id", sessionID).SortBy("created_at", true))
}

func (s *ChecklistService) ForParticipant(ctx context.Context, actor models.User, participantID string) ([]models.VehicleChecklist, error) {
	if actor.Role == models.RoleParticipant {
		if actor.ID != participantID {
			return nil, forbidden("Access denied")
		}
	} else if err := requireRole(actor, "Access denied",
		models.RoleAdmin, models.RoleCoordinator, models.RoleTrainer); err != nil {
		return nil, err
	}
	return s.st.Checklists.Find(ctx, store.Q().Eq("participant_id", participantID).SortBy("created_at", true))
}

// Latest is the most recent checklist for one participant in a session.
func (s *ChecklistService) Latest(ctx context.Context, actor models.User, sessionID, participantID string) (models.VehicleChecklist, error) {
	if err := requireRole(actor, "Access denied",
		models.RoleTrainer, models.RoleAdmin, models.RoleCoordinator); err != nil {
		return models.VehicleChecklist{}, err
	}
	c, err := s.st.Checklists.FindOne(ctx, pairQuery(sessionID, participantID).SortBy("created_at", true))
	return c, lookup(err, "Checklist")
}

func (s *ChecklistService) UploadPhoto(actor models.User, up Upload) (string, error) {
	if err := requireRole(actor, "Only trainers can upload checklist photos",
		models.RoleTrainer, models.RoleAdmin); err != nil {
		return "", err
	}
	if !strings.HasPrefix(up.ContentType, "image/") {
		return "", badRequest("Only image files are allowed")
	}
	name := up.Filename
	if !strings.Contains(name, ".") {
		name += ".jpg"
	}
	_, url, err := s.files.store(up, ChecklistPhotosDir, UniqueName("photo", name))
	return url, err
}

// SubmitVehicle upserts a participant's own vehicle details for a session.
func (s *ChecklistService) SubmitVehicle(ctx context.Context, actor models.User, req dto.VehicleDetailsSubmit) (models.VehicleDetails, error) {
	if err := requireRole(actor, "Only participants can submit vehicle details", models.RoleParticipant); err != nil {
		return models.VehicleDetails{}, err
	}
	v, err := s.st.VehicleDetails.FindOne(ctx, pairQuery(req.SessionID, actor.ID))
	switch {
	case isNotFound(err):
		v = models.VehicleDetails{
			ID:            models.NewID(),
			ParticipantID: actor.ID,
			SessionID:     req.SessionID,
			CreatedAt:     s.clock.Now(),
		}
	case err != nil:
		return v, err
	}
	v.VehicleModel = req.VehicleModel
	v.RegistrationNumber = req.RegistrationNumber
	v.RoadtaxExpiry = req.RoadtaxExpiry
	return v, s.st.VehicleDetails.Save(ctx, v)
}

// Vehicle returns nil when the participant has not submitted details.
func (s *ChecklistService) Vehicle(ctx context.Context, sessionID, participantID string) (*models.VehicleDetails, error) {
	v, err := s.st.VehicleDetails.FindOne(ctx, pairQuery(sessionID, participantID))
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}
