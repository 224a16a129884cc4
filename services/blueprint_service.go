package services

import (
	"fmt"

	"github.com/botadmin/database"
	"github.com/botadmin/dto"
	"github.com/botadmin/models"
	"github.com/botadmin/repositories"
	"github.com/botadmin/utils"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/gorm"
)

// BlueprintService handles reusable project templates and the apply
// operation that instantiates them
type BlueprintService struct {
	db            *database.Database
	blueprintRepo *repositories.BlueprintRepository
	toolRepo      *repositories.ToolRepository
	industryRepo  *repositories.IndustryRepository
	nicheRepo     *repositories.NicheRepository
}

// NewBlueprintService creates a new blueprint service instance
func NewBlueprintService(db *database.Database) *BlueprintService {
	return &BlueprintService{
		db:            db,
		blueprintRepo: repositories.NewBlueprintRepository(db.DB),
		toolRepo:      repositories.NewToolRepository(db.DB),
		industryRepo:  repositories.NewIndustryRepository(db.DB),
		nicheRepo:     repositories.NewNicheRepository(db.DB),
	}
}

// Create validates and inserts a new blueprint
func (s *BlueprintService) Create(req dto.CreateBlueprintRequest) (*models.Blueprint, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required),
	)
	if err != nil {
		return nil, err
	}

	blueprint := models.Blueprint{
		ID:          utils.GenerateID(utils.EntityBlueprint),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.blueprintRepo.Create(&blueprint); err != nil {
		return nil, translateWriteError("blueprint", req.Name, err)
	}
	return &blueprint, nil
}

// List retrieves live blueprints matching the filter
func (s *BlueprintService) List(filter dto.BlueprintFilter) ([]models.Blueprint, error) {
	return s.blueprintRepo.FindAll(filter.Search)
}

// Get resolves a blueprint by id or exact name and loads its ordered
// steps, tools and catalog tags. Returns nil when nothing matches.
func (s *BlueprintService) Get(ref string) (*dto.BlueprintDetail, error) {
	blueprint, err := s.blueprintRepo.FindByIDOrName(ref)
	if err != nil || blueprint == nil {
		return nil, err
	}

	detail := dto.BlueprintDetail{Blueprint: *blueprint}
	if detail.Steps, err = s.blueprintRepo.Steps(blueprint.ID); err != nil {
		return nil, err
	}
	if detail.Tools, err = s.blueprintRepo.Tools(blueprint.ID); err != nil {
		return nil, err
	}
	if detail.Industries, err = s.blueprintRepo.Industries(blueprint.ID); err != nil {
		return nil, err
	}
	if detail.Niches, err = s.blueprintRepo.Niches(blueprint.ID); err != nil {
		return nil, err
	}
	return &detail, nil
}

// AddStep appends one step to the blueprint. Step order must be at
// least 1; uniqueness and contiguity are not enforced.
func (s *BlueprintService) AddStep(blueprintID string, req dto.AddStepRequest) (*models.BlueprintStep, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.StepOrder, validation.Min(1)),
		validation.Field(&req.Title, validation.Required),
	)
	if err != nil {
		return nil, err
	}

	step := models.BlueprintStep{
		ID:          utils.GenerateID(utils.EntityBlueprintStep),
		BlueprintID: blueprintID,
		StepOrder:   req.StepOrder,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.blueprintRepo.AddStep(&step); err != nil {
		return nil, translateWriteError("blueprint step", req.Title, err)
	}
	return &step, nil
}

// AddTool links a tool to the blueprint, resolving the tool by id or
// name. Duplicate links create duplicate rows.
func (s *BlueprintService) AddTool(blueprintID string, req dto.AddBlueprintToolRequest) (*models.BlueprintTool, error) {
	tool, err := s.toolRepo.FindByIDOrName(req.ToolRef)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, ErrNotFound
	}

	link := models.BlueprintTool{
		ID:              utils.GenerateID(utils.EntityBlueprintTool),
		BlueprintID:     blueprintID,
		ToolID:          tool.ID,
		RoleInBlueprint: req.RoleInBlueprint,
		Notes:           req.Notes,
	}
	if err := s.blueprintRepo.AddTool(&link); err != nil {
		return nil, translateWriteError("blueprint tool", tool.Name, err)
	}
	return &link, nil
}

// AssignIndustry tags the blueprint with an industry
func (s *BlueprintService) AssignIndustry(blueprintID, industryRef string) (*models.BlueprintIndustry, error) {
	industry, err := s.industryRepo.FindByIDOrName(industryRef)
	if err != nil {
		return nil, err
	}
	if industry == nil {
		return nil, ErrNotFound
	}

	tag := models.BlueprintIndustry{
		ID:          utils.GenerateID(utils.EntityBlueprintIndustry),
		BlueprintID: blueprintID,
		IndustryID:  industry.ID,
	}
	if err := s.blueprintRepo.AssignIndustry(&tag); err != nil {
		return nil, translateWriteError("blueprint industry", industry.Name, err)
	}
	return &tag, nil
}

// RemoveIndustry drops the industry tag from the blueprint
func (s *BlueprintService) RemoveIndustry(blueprintID, industryRef string) error {
	industry, err := s.industryRepo.FindByIDOrName(industryRef)
	if err != nil {
		return err
	}
	if industry == nil {
		return ErrNotFound
	}
	return s.blueprintRepo.RemoveIndustry(blueprintID, industry.ID)
}

// AssignNiche tags the blueprint with a niche
func (s *BlueprintService) AssignNiche(blueprintID, nicheRef string) (*models.BlueprintNiche, error) {
	niche, err := s.nicheRepo.FindByIDOrName(nicheRef)
	if err != nil {
		return nil, err
	}
	if niche == nil {
		return nil, ErrNotFound
	}

	tag := models.BlueprintNiche{
		ID:          utils.GenerateID(utils.EntityBlueprintNiche),
		BlueprintID: blueprintID,
		NicheID:     niche.ID,
	}
	if err := s.blueprintRepo.AssignNiche(&tag); err != nil {
		return nil, translateWriteError("blueprint niche", niche.Name, err)
	}
	return &tag, nil
}

// RemoveNiche drops the niche tag from the blueprint
func (s *BlueprintService) RemoveNiche(blueprintID, nicheRef string) error {
	niche, err := s.nicheRepo.FindByIDOrName(nicheRef)
	if err != nil {
		return err
	}
	if niche == nil {
		return ErrNotFound
	}
	return s.blueprintRepo.RemoveNiche(blueprintID, niche.ID)
}

// Apply instantiates the blueprint as a new project for the company,
// copying every blueprint tool onto the project. The project insert
// and the tool copies run in one transaction so a failure cannot
// leave a half-applied blueprint behind.
func (s *BlueprintService) Apply(blueprintRef string, req dto.ApplyBlueprintRequest) (*dto.ApplyBlueprintResult, error) {
	if err := validation.Validate(req.CompanyRef, validation.Required); err != nil {
		return nil, validation.Errors{"companyRef": validation.NewError("required", "cannot be blank")}
	}

	detail, err := s.Get(blueprintRef)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrNotFound
	}

	companyRepo := repositories.NewCompanyRepository(s.db.DB)
	company, err := companyRepo.FindByIDOrName(req.CompanyRef)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrNotFound
	}

	projectName := req.ProjectName
	if projectName == "" {
		projectName = fmt.Sprintf("%s (from blueprint)", detail.Name)
	}

	project := models.Project{
		ID:          utils.GenerateID(utils.EntityProject),
		CompanyID:   company.ID,
		Name:        projectName,
		Description: detail.Description,
		Status:      models.ProjectStatusPlanning,
	}
	err = s.db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		for _, bt := range detail.Tools {
			link := models.ProjectTool{
				ID:        utils.GenerateID(utils.EntityProjectTool),
				ProjectID: project.ID,
				ToolID:    bt.ToolID,
				Notes:     bt.Notes,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, translateWriteError("project", projectName, err)
	}

	return &dto.ApplyBlueprintResult{Project: project, Blueprint: *detail}, nil
}

// Delete soft-deletes a blueprint
func (s *BlueprintService) Delete(id string) error {
	return s.blueprintRepo.Delete(id)
}
