package gorm

import (
	"gorm.io/gorm"

	"github.com/k3horizon/horizon-api/pkg/model"
	"github.com/k3horizon/horizon-api/pkg/server/store"
)

// Ensure ProposalCategoriesStore implements store.ProposalCategoriesStore
var _ store.ProposalCategoriesStore = (*ProposalCategoriesStore)(nil)

const proposalCategoryColumns = "name, created_at, updated_at"

// ProposalCategoriesStore implements store.ProposalCategoriesStore using GORM
type ProposalCategoriesStore struct {
	db *gorm.DB
}

// NewProposalCategoriesStore creates a new ProposalCategoriesStore
func NewProposalCategoriesStore(db *gorm.DB) *ProposalCategoriesStore {
	return &ProposalCategoriesStore{db: db}
}

func (s *ProposalCategoriesStore) ListProposalCategories() ([]model.ProposalCategory, error) {
	var categories []model.ProposalCategory
	result := s.db.Raw(`
		SELECT ` + proposalCategoryColumns + `
		FROM proposal_categories
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`).Scan(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

func (s *ProposalCategoriesStore) FetchProposalCategory(name string) (*model.ProposalCategory, error) {
	var category model.ProposalCategory
	result := s.db.Raw(`
		SELECT `+proposalCategoryColumns+`
		FROM proposal_categories
		WHERE name = ? AND deleted_at IS NULL
	`, name).Scan(&category)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &category, nil
}

func (s *ProposalCategoriesStore) CreateProposalCategory(name string) (*model.ProposalCategory, error) {
	// Only live rows collide; a soft-deleted name may be recreated.
	var count int
	result := s.db.Raw(`
		SELECT COUNT(*)
		FROM proposal_categories
		WHERE name = ? AND deleted_at IS NULL
	`, name).Scan(&count)
	if result.Error != nil {
		return nil, result.Error
	}
	if count > 0 {
		return nil, store.ErrDuplicate
	}

	exec := s.db.Exec(`
		INSERT INTO proposal_categories (name, created_at, updated_at)
		VALUES (?, NOW(), NOW())
	`, name)
	if exec.Error != nil {
		return nil, exec.Error
	}

	return s.FetchProposalCategory(name)
}

func (s *ProposalCategoriesStore) UpdateProposalCategory(name, newName string) (*model.ProposalCategory, error) {
	if newName != name {
		var count int
		result := s.db.Raw(`
			SELECT COUNT(*)
			FROM proposal_categories
			WHERE name = ? AND deleted_at IS NULL
		`, newName).Scan(&count)
		if result.Error != nil {
			return nil, result.Error
		}
		if count > 0 {
			return nil, store.ErrDuplicate
		}
	}

	exec := s.db.Exec(`
		UPDATE proposal_categories
		SET name = ?, updated_at = NOW()
		WHERE name = ? AND deleted_at IS NULL
	`, newName, name)
	if exec.Error != nil {
		return nil, exec.Error
	}
	if exec.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}

	return s.FetchProposalCategory(newName)
}

func (s *ProposalCategoriesStore) DeleteProposalCategory(name string) error {
	result := s.db.Exec(`
		UPDATE proposal_categories
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE name = ? AND deleted_at IS NULL
	`, name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

const proposalColumns = "id, title, image_title, proposal_category, training_description, legal_basis, " +
	"condition, facility, unit_code, unit_title, timetable_1, timetable_2, location_1, location_2, " +
	"image_online, image_offline, created_at, updated_at"

// Ensure BnspProposalsStore implements store.BnspProposalsStore
var _ store.BnspProposalsStore = (*BnspProposalsStore)(nil)

// BnspProposalsStore implements store.BnspProposalsStore using GORM
type BnspProposalsStore struct {
	db *gorm.DB
}

// NewBnspProposalsStore creates a new BnspProposalsStore
func NewBnspProposalsStore(db *gorm.DB) *BnspProposalsStore {
	return &BnspProposalsStore{db: db}
}

func (s *BnspProposalsStore) ListBnspProposals() ([]model.BnspProposal, error) {
	var proposals []model.BnspProposal
	result := s.db.Raw(`
		SELECT ` + proposalColumns + `
		FROM bnsp_proposals
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`).Scan(&proposals)
	if result.Error != nil {
		return nil, result.Error
	}
	return proposals, nil
}

func (s *BnspProposalsStore) FetchBnspProposal(id int64) (*model.BnspProposal, error) {
	var proposal model.BnspProposal
	result := s.db.Raw(`
		SELECT `+proposalColumns+`
		FROM bnsp_proposals
		WHERE id = ? AND deleted_at IS NULL
	`, id).Scan(&proposal)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &proposal, nil
}

func (s *BnspProposalsStore) CreateBnspProposal(changes []store.Change) (*model.BnspProposal, error) {
	id, err := insertReturningID(s.db, "bnsp_proposals", changes)
	if err != nil {
		return nil, err
	}
	return s.FetchBnspProposal(id)
}

func (s *BnspProposalsStore) UpdateBnspProposal(id int64, changes []store.Change) (*model.BnspProposal, error) {
	if err := updateByID(s.db, "bnsp_proposals", id, changes); err != nil {
		return nil, err
	}
	return s.FetchBnspProposal(id)
}

func (s *BnspProposalsStore) DeleteBnspProposal(id int64) error {
	return softDeleteByID(s.db, "bnsp_proposals", id)
}

// Ensure KemnakerProposalsStore implements store.KemnakerProposalsStore
var _ store.KemnakerProposalsStore = (*KemnakerProposalsStore)(nil)

// KemnakerProposalsStore implements store.KemnakerProposalsStore using GORM
type KemnakerProposalsStore struct {
	db *gorm.DB
}

// NewKemnakerProposalsStore creates a new KemnakerProposalsStore
func NewKemnakerProposalsStore(db *gorm.DB) *KemnakerProposalsStore {
	return &KemnakerProposalsStore{db: db}
}

func (s *KemnakerProposalsStore) ListKemnakerProposals() ([]model.KemnakerProposal, error) {
	var proposals []model.KemnakerProposal
	result := s.db.Raw(`
		SELECT ` + proposalColumns + `
		FROM kemnaker_proposals
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`).Scan(&proposals)
	if result.Error != nil {
		return nil, result.Error
	}
	return proposals, nil
}

func (s *KemnakerProposalsStore) FetchKemnakerProposal(id int64) (*model.KemnakerProposal, error) {
	var proposal model.KemnakerProposal
	result := s.db.Raw(`
		SELECT `+proposalColumns+`
		FROM kemnaker_proposals
		WHERE id = ? AND deleted_at IS NULL
	`, id).Scan(&proposal)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &proposal, nil
}

func (s *KemnakerProposalsStore) CreateKemnakerProposal(changes []store.Change) (*model.KemnakerProposal, error) {
	id, err := insertReturningID(s.db, "kemnaker_proposals", changes)
	if err != nil {
		return nil, err
	}
	return s.FetchKemnakerProposal(id)
}

func (s *KemnakerProposalsStore) UpdateKemnakerProposal(id int64, changes []store.Change) (*model.KemnakerProposal, error) {
	if err := updateByID(s.db, "kemnaker_proposals", id, changes); err != nil {
		return nil, err
	}
	return s.FetchKemnakerProposal(id)
}

func (s *KemnakerProposalsStore) DeleteKemnakerProposal(id int64) error {
	return softDeleteByID(s.db, "kemnaker_proposals", id)
}
