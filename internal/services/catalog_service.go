package services

import (
	"context"
	"strings"

	"mddrc-backend/dto"
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

// CatalogService manages client companies and training programs.
type CatalogService struct {
	st    *store.Stores
	clock utils.Clock
}

func NewCatalogService(st *store.Stores, clock utils.Clock) *CatalogService {
	return &CatalogService{st: st, clock: clock}
}

func (s *CatalogService) Companies(ctx context.Context, search string) ([]models.Company, error) {
	all, err := s.st.Companies.Find(ctx, store.Q().SortBy("name", false))
	if err != nil || search == "" {
		return all, err
	}
	out := make([]models.Company, 0, len(all))
	for _, c := range all {
		if utils.Contains(c.Name, search) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *CatalogService) CreateCompany(ctx context.Context, actor models.User, req dto.CompanyRequest) (models.Company, error) {
	if err := requireRole(actor, "Only admins can create companies", models.RoleAdmin); err != nil {
		return models.Company{}, err
	}
	c := models.Company{ID: models.NewID(), Name: strings.TrimSpace(req.Name), CreatedAt: s.clock.Now()}
	if _, err := s.st.Companies.FindOne(ctx, store.Q().Eq("name", c.Name)); err == nil {
		return models.Company{}, badRequest("Company already exists")
	}
	if err := s.st.Companies.Insert(ctx, c); err != nil {
		if isDuplicate(err) {
			return models.Company{}, badRequest("Company already exists")
		}
		return models.Company{}, err
	}
	return c, nil
}

func (s *CatalogService) Company(ctx context.Context, id string) (models.Company, error) {
	c, err := s.st.Companies.Get(ctx, id)
	return c, lookup(err, "Company")
}

func (s *CatalogService) UpdateCompany(ctx context.Context, actor models.User, id string, req dto.CompanyRequest) (models.Company, error) {
	if err := requireRole(actor, "Only admins can update companies", models.RoleAdmin); err != nil {
		return models.Company{}, err
	}
	c, err := s.st.Companies.Get(ctx, id)
	if err != nil {
		return c, lookup(err, "Company")
	}
	c.Name = strings.TrimSpace(req.Name)
	if err := s.st.Companies.Save(ctx, c); err != nil {
		if isDuplicate(err) {
			return c, badRequest("Company already exists")
		}
		return c, err
	}
	return c, nil
}

func (s *CatalogService) DeleteCompany(ctx context.Context, actor models.User, id string) error {
	if err := requireRole(actor, "Only admins can delete companies", models.RoleAdmin); err != nil {
		return err
	}
	return lookup(s.st.Companies.Delete(ctx, id), "Company")
}

func (s *CatalogService) Programs(ctx context.Context, search string) ([]models.Program, error) {
	all, err := s.st.Programs.Find(ctx, store.Q().SortBy("name", false))
	if err != nil || search == "" {
		return all, err
	}
	out := make([]models.Program, 0, len(all))
	for _, p := range all {
		if utils.Contains(p.Name, search) || utils.Contains(p.Description, search) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *CatalogService) CreateProgram(ctx context.Context, actor models.User, req dto.ProgramRequest) (models.Program, error) {
	if err := requireRole(actor, "Only admins can create programs", models.RoleAdmin); err != nil {
		return models.Program{}, err
	}
	p := models.Program{
		ID:             models.NewID(),
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		PassPercentage: models.DefaultPassPercentage,
		CreatedAt:      s.clock.Now(),
	}
	setIf(&p.PassPercentage, req.PassPercentage)
	return p, s.st.Programs.Insert(ctx, p)
}

func (s *CatalogService) Program(ctx context.Context, id string) (models.Program, error) {
	p, err := s.st.Programs.Get(ctx, id)
	return p, lookup(err, "Program")
}

func (s *CatalogService) UpdateProgram(ctx context.Context, actor models.User, id string, req dto.ProgramUpdate) (models.Program, error) {
	if err := requireRole(actor, "Only admins can update programs", models.RoleAdmin); err != nil {
		return models.Program{}, err
	}
	p, err := s.st.Programs.Get(ctx, id)
	if err != nil {
		return p, lookup(err, "Program")
	}
	setIf(&p.Name, req.Name)
	setIf(&p.Description, req.Description)
	setIf(&p.PassPercentage, req.PassPercentage)
	return p, s.st.Programs.Save(ctx, p)
}

func (s *CatalogService) DeleteProgram(ctx context.Context, actor models.User, id string) error {
	if err := requireRole(actor, "Only admins can delete programs", models.RoleAdmin); err != nil {
		return err
	}
	return lookup(s.st.Programs.Delete(ctx, id), "Program")
}
