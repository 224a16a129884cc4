package repositories

import (
	"github.com/botadmin/dto"
	"github.com/botadmin/models"
	"gorm.io/gorm"
)

// BlueprintRepository handles database operations for blueprints,
// their steps, tools and catalog tags
type BlueprintRepository struct {
	db *gorm.DB
}

// NewBlueprintRepository creates a new blueprint repository instance
func NewBlueprintRepository(db *gorm.DB) *BlueprintRepository {
	return &BlueprintRepository{db: db}
}

// FindAll retrieves live blueprints matching an optional search term,
// ordered by name
func (r *BlueprintRepository) FindAll(search string) ([]models.Blueprint, error) {
	q := r.db.Model(&models.Blueprint{})
	if search != "" {
		pat := searchPattern(search)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pat, pat)
	}

	var blueprints []models.Blueprint
	result := q.Order("name").Find(&blueprints)
	return blueprints, result.Error
}

// FindByIDOrName resolves a blueprint by id, falling back to exact name
func (r *BlueprintRepository) FindByIDOrName(ref string) (*models.Blueprint, error) {
	return findByIDOrName[models.Blueprint](r.db, ref)
}

// Create inserts a new blueprint
func (r *BlueprintRepository) Create(blueprint *models.Blueprint) error {
	return r.db.Create(blueprint).Error
}

// Delete soft-deletes a blueprint. Idempotent.
func (r *BlueprintRepository) Delete(id string) error {
	return r.db.Delete(&models.Blueprint{}, "id = ?", id).Error
}

// Steps retrieves a blueprint's steps ordered by step order
func (r *BlueprintRepository) Steps(blueprintID string) ([]models.BlueprintStep, error) {
	var steps []models.BlueprintStep
	result := r.db.Where("blueprint_id = ?", blueprintID).Order("step_order").Find(&steps)
	return steps, result.Error
}

// Tools retrieves a blueprint's tool links joined with the tool
// registry
func (r *BlueprintRepository) Tools(blueprintID string) ([]dto.BlueprintToolRow, error) {
	var rows []dto.BlueprintToolRow
	err := r.db.Model(&models.BlueprintTool{}).
		Select("blueprint_tools.id AS id, tools.id AS tool_id, tools.name AS tool_name, "+
			"blueprint_tools.role_in_blueprint AS role_in_blueprint, blueprint_tools.notes AS notes").
		Joins("JOIN tools ON tools.id = blueprint_tools.tool_id").
		Where("blueprint_tools.blueprint_id = ?", blueprintID).
		Scan(&rows).Error
	return rows, err
}

// Industries retrieves a blueprint's industry tags joined with the
// industry names
func (r *BlueprintRepository) Industries(blueprintID string) ([]dto.BlueprintIndustryTag, error) {
	var rows []dto.BlueprintIndustryTag
	err := r.db.Model(&models.BlueprintIndustry{}).
		Select("blueprint_industries.id AS id, industries.id AS industry_id, industries.name AS industry_name").
		Joins("JOIN industries ON industries.id = blueprint_industries.industry_id").
		Where("blueprint_industries.blueprint_id = ?", blueprintID).
		Scan(&rows).Error
	return rows, err
}

// Niches retrieves a blueprint's niche tags joined with the niche and
// parent industry names
func (r *BlueprintRepository) Niches(blueprintID string) ([]dto.BlueprintNicheTag, error) {
	var rows []dto.BlueprintNicheTag
	err := r.db.Model(&models.BlueprintNiche{}).
		Select("blueprint_niches.id AS id, niches.id AS niche_id, niches.name AS niche_name, industries.name AS industry_name").
		Joins("JOIN niches ON niches.id = blueprint_niches.niche_id").
		Joins("JOIN industries ON industries.id = niches.industry_id").
		Where("blueprint_niches.blueprint_id = ?", blueprintID).
		Scan(&rows).Error
	return rows, err
}

// AddStep inserts one step row. Step order gaps and duplicates are
// permitted.
func (r *BlueprintRepository) AddStep(step *models.BlueprintStep) error {
	return r.db.Create(step).Error
}

// AddTool inserts one tool link row, duplicate-tolerant
func (r *BlueprintRepository) AddTool(link *models.BlueprintTool) error {
	return r.db.Create(link).Error
}

// AssignIndustry inserts one industry tag row
func (r *BlueprintRepository) AssignIndustry(tag *models.BlueprintIndustry) error {
	return r.db.Create(tag).Error
}

// RemoveIndustry deletes the industry tag rows for the pair
func (r *BlueprintRepository) RemoveIndustry(blueprintID, industryID string) error {
	return r.db.Where("blueprint_id = ? AND industry_id = ?", blueprintID, industryID).
		Delete(&models.BlueprintIndustry{}).Error
}

// AssignNiche inserts one niche tag row
func (r *BlueprintRepository) AssignNiche(tag *models.BlueprintNiche) error {
	return r.db.Create(tag).Error
}

// RemoveNiche deletes the niche tag rows for the pair
func (r *BlueprintRepository) RemoveNiche(blueprintID, nicheID string) error {
	return r.db.Where("blueprint_id = ? AND niche_id = ?", blueprintID, nicheID).
		Delete(&models.BlueprintNiche{}).Error
}
