package model

import "time"

// ProposalCategory is keyed by its name rather than a surrogate id.
type ProposalCategory struct {
	Name      string     `gorm:"column:name;primaryKey" json:"name"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"-"`
}

func (ProposalCategory) TableName() string {
	return "proposal_categories"
}
