package services

import (
	"github.com/botadmin/database"
	"github.com/botadmin/dto"
	"github.com/botadmin/models"
	"github.com/botadmin/repositories"
	"github.com/botadmin/utils"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NicheService handles business logic for the industry-scoped niche
// catalog
type NicheService struct {
	nicheRepo    *repositories.NicheRepository
	industryRepo *repositories.IndustryRepository
}

// NewNicheService creates a new niche service instance
func NewNicheService(db *database.Database) *NicheService {
	return &NicheService{
		nicheRepo:    repositories.NewNicheRepository(db.DB),
		industryRepo: repositories.NewIndustryRepository(db.DB),
	}
}

// Create validates and inserts a new niche. The parent industry must
// be live at creation time.
func (s *NicheService) Create(req dto.CreateNicheRequest) (*dto.NicheResponse, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.IndustryID, validation.Required),
		validation.Field(&req.Name, validation.Required),
	)
	if err != nil {
		return nil, err
	}

	industry, err := s.industryRepo.FindByID(req.IndustryID)
	if err != nil {
		return nil, err
	}
	if industry == nil {
		return nil, validation.Errors{
			"industryId": validation.NewError("industry_not_found", "industry does not exist"),
		}
	}

	niche := models.Niche{
		ID:          utils.GenerateID(utils.EntityNiche),
		IndustryID:  req.IndustryID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.nicheRepo.Create(&niche); err != nil {
		return nil, translateWriteError("niche", req.Name, err)
	}

	resp := nicheResponse(niche)
	resp.IndustryName = industry.Name
	return &resp, nil
}

// List retrieves live niches with their parent industry names
func (s *NicheService) List(filter dto.NicheFilter) ([]dto.NicheResponse, error) {
	niches, err := s.nicheRepo.FindAll(filter.IndustryID, filter.Search)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.NicheResponse, 0, len(niches))
	for _, n := range niches {
		responses = append(responses, nicheResponse(n))
	}
	return responses, nil
}

// Get resolves a niche by id or exact name. Returns nil when nothing
// matches.
func (s *NicheService) Get(ref string) (*dto.NicheResponse, error) {
	niche, err := s.nicheRepo.FindByIDOrName(ref)
	if err != nil || niche == nil {
		return nil, err
	}
	resp := nicheResponse(*niche)
	return &resp, nil
}

// Delete soft-deletes a niche
func (s *NicheService) Delete(id string) error {
	return s.nicheRepo.Delete(id)
}

func nicheResponse(n models.Niche) dto.NicheResponse {
	return dto.NicheResponse{
		ID:           n.ID,
		IndustryID:   n.IndustryID,
		IndustryName: n.Industry.Name,
		Name:         n.Name,
		Description:  n.Description,
		CreatedAt:    n.CreatedAt,
	}
}
