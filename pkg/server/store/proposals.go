package store

import "github.com/k3horizon/horizon-api/pkg/model"

// ProposalCategoriesStore abstracts proposal category storage. The
// resource is addressed by its name, not a surrogate id.
type ProposalCategoriesStore interface {
	ListProposalCategories() ([]model.ProposalCategory, error)

	FetchProposalCategory(name string) (*model.ProposalCategory, error)

	// CreateProposalCategory inserts a new category. Returns
	// ErrDuplicate when a live category with the same name exists;
	// recreating a soft-deleted name is allowed.
	CreateProposalCategory(name string) (*model.ProposalCategory, error)

	// UpdateProposalCategory renames a live category. Returns
	// ErrDuplicate when the new name collides with another live row.
	UpdateProposalCategory(name, newName string) (*model.ProposalCategory, error)

	DeleteProposalCategory(name string) error
}

// BnspProposalsStore abstracts BNSP proposal storage operations.
type BnspProposalsStore interface {
	ListBnspProposals() ([]model.BnspProposal, error)
	FetchBnspProposal(id int64) (*model.BnspProposal, error)
	CreateBnspProposal(changes []Change) (*model.BnspProposal, error)
	UpdateBnspProposal(id int64, changes []Change) (*model.BnspProposal, error)
	DeleteBnspProposal(id int64) error
}

// KemnakerProposalsStore abstracts Kemnaker proposal storage operations.
type KemnakerProposalsStore interface {
	ListKemnakerProposals() ([]model.KemnakerProposal, error)
	FetchKemnakerProposal(id int64) (*model.KemnakerProposal, error)
	CreateKemnakerProposal(changes []Change) (*model.KemnakerProposal, error)
	UpdateKemnakerProposal(id int64, changes []Change) (*model.KemnakerProposal, error)
	DeleteKemnakerProposal(id int64) error
}
