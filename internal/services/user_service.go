package services

import (
	"context"
	"strings"

	"mddrc-backend/dto"
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

type UserService struct {
	st *store.Stores
}

func NewUserService(st *store.Stores) *UserService {
	return &UserService{st: st}
}

func (s *UserService) List(ctx context.Context, actor models.User, f dto.UserFilter) ([]models.User, error) {
	if err := requireRole(actor, "Unauthorized",
		models.RoleAdmin, models.RoleSupervisor, models.RoleCoordinator, models.RoleTrainer); err != nil {
		return nil, err
	}
	q := store.Q().Limit(1000)
	if f.Role != "" {
		q = q.Eq("role", f.Role)
	}
	if f.CompanyID != "" {
		q = q.Eq("company_id", f.CompanyID)
	}
	users, err := s.st.Users.Find(ctx, q)
	if err != nil || f.Search == "" {
		return users, err
	}

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if utils.Contains(u.FullName, f.Search) || utils.Contains(u.Email, f.Search) || utils.Contains(u.IDNumber, f.Search) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	u, err := s.st.Users.Get(ctx, id)
	return u, lookup(err, "User")
}

// Update changes profile fields. Password and id are never touched here.
func (s *UserService) Update(ctx context.Context, actor models.User, id string, req dto.UserUpdate) (models.User, error) {
	if err := requireRole(actor, "Only admins can update users", models.RoleAdmin); err != nil {
		return models.User{}, err
	}
	u, err := s.st.Users.Get(ctx, id)
	if err != nil {
		return u, lookup(err, "User")
	}
	if req.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*req.Email))
		req.Email = &e
	}
	setIf(&u.Email, req.Email)
	setIf(&u.FullName, req.FullName)
	setIf(&u.IDNumber, req.IDNumber)
	setIf(&u.Role, req.Role)
	setIf(&u.CompanyID, req.CompanyID)
	setIf(&u.Location, req.Location)
	setIf(&u.PhoneNumber, req.PhoneNumber)
	setIf(&u.IsActive, req.IsActive)

	if err := s.st.Users.Save(ctx, u); err != nil {
		if isDuplicate(err) {
			return u, badRequest("User already exists with this IC number")
		}
		return u, err
	}
	return u, nil
}

// Delete removes the user and their access records.
func (s *UserService) Delete(ctx context.Context, actor models.User, id string) error {
	if err := requireRole(actor, "Only admins can delete users", models.RoleAdmin); err != nil {
		return err
	}
	if err := s.st.Users.Delete(ctx, id); err != nil {
		return lookup(err, "User")
	}
	_, err := s.st.Access.DeleteMany(ctx, store.Q().Eq("participant_id", id))
	return err
}
