package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"mddrc-backend/dto"
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

// PeopleService creates users on behalf of other flows (session setup,
// registration) and owns password hashing.
type PeopleService struct {
	st   *store.Stores
	opts Options
}

func NewPeopleService(st *store.Stores, opts Options) *PeopleService {
	return &PeopleService{st: st, opts: opts.withDefaults()}
}

func (s *PeopleService) HashPassword(pwd string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), s.opts.PasswordCost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(hash), nil
}

func CheckPassword(hash, pwd string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pwd)) == nil
}

// TempEmail is the placeholder address given to participants registered
// without one.
func (s *PeopleService) TempEmail(idNumber string) string {
	if ic := utils.NormalizeIC(idNumber); ic != "" {
		return strings.ToLower(ic) + "@" + s.opts.TempEmailDomain
	}
	return "user_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8] + "@" + s.opts.TempEmailDomain
}

// FindOrCreate matches an existing user by full name, email or IC number.
// A match is refreshed with the supplied data; otherwise a new user is
// created with the default password when none is given.
func (s *PeopleService) FindOrCreate(ctx context.Context, p dto.PersonData, role, companyID string) (string, bool, error) {
	var ors []store.Cond
	if p.FullName != "" {
		ors = append(ors, store.EqCond("full_name", p.FullName))
	}
	if p.Email != "" {
		ors = append(ors, store.EqCond("email", strings.ToLower(p.Email)))
	}
	if p.IDNumber != "" {
		ors = append(ors, store.EqCond("id_number", p.IDNumber))
	}

	if len(ors) > 0 {
		existing, err := s.st.Users.FindOne(ctx, store.Q().Or(ors...))
		if err == nil {
			if p.FullName != "" {
				existing.FullName = p.FullName
			}
			if p.Email != "" {
				existing.Email = strings.ToLower(p.Email)
			}
			if p.IDNumber != "" {
				existing.IDNumber = p.IDNumber
			}
			if p.PhoneNumber != "" {
				existing.PhoneNumber = p.PhoneNumber
			}
			if companyID != "" {
				existing.CompanyID = companyID
			}
			if err := s.st.Users.Save(ctx, existing); err != nil {
				return "", false, err
			}
			return existing.ID, false, nil
		}
		if !isNotFound(err) {
			return "", false, err
		}
	}

	pwd := p.Password
	if pwd == "" {
		pwd = s.opts.DefaultParticipantPassword
	}
	email := strings.ToLower(strings.TrimSpace(p.Email))
	if email == "" && role == models.RoleParticipant {
		email = s.TempEmail(p.IDNumber)
	}
	hash, err := s.HashPassword(pwd)
	if err != nil {
		return "", false, err
	}
	u := models.User{
		ID:           models.NewID(),
		Email:        email,
		FullName:     p.FullName,
		IDNumber:     p.IDNumber,
		Role:         role,
		CompanyID:    companyID,
		PhoneNumber:  p.PhoneNumber,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    s.opts.Clock.Now(),
	}
	if err := s.st.Users.Insert(ctx, u); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return "", false, badRequest("User already exists with this IC number")
		}
		return "", false, err
	}
	return u.ID, true, nil
}
