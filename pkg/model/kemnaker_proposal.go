package model

import "time"

// KemnakerProposal is a Kemnaker certification training proposal. Same
// shape as BnspProposal but stored in its own table.
type KemnakerProposal struct {
	ID                  int64      `gorm:"column:id;primaryKey" json:"id"`
	Title               string     `gorm:"column:title" json:"title"`
	ImageTitle          *string    `gorm:"column:image_title" json:"image_title"`
	ProposalCategory    *string    `gorm:"column:proposal_category" json:"proposal_category"`
	TrainingDescription *string    `gorm:"column:training_description" json:"training_description"`
	LegalBasis          *string    `gorm:"column:legal_basis" json:"legal_basis"`
	Condition           *string    `gorm:"column:condition" json:"condition"`
	Facility            *string    `gorm:"column:facility" json:"facility"`
	UnitCode            *string    `gorm:"column:unit_code" json:"unit_code"`
	UnitTitle           *string    `gorm:"column:unit_title" json:"unit_title"`
	Timetable1          *string    `gorm:"column:timetable_1" json:"timetable_1"`
	Timetable2          *string    `gorm:"column:timetable_2" json:"timetable_2"`
	Location1           *string    `gorm:"column:location_1" json:"location_1"`
	Location2           *string    `gorm:"column:location_2" json:"location_2"`
	ImageOnline         *string    `gorm:"column:image_online" json:"image_online"`
	ImageOffline        *string    `gorm:"column:image_offline" json:"image_offline"`
	CreatedAt           time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt           *time.Time `gorm:"column:deleted_at" json:"-"`
}

func (KemnakerProposal) TableName() string {
	return "kemnaker_proposals"
}
