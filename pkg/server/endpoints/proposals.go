package endpoints

import (
	"github.com/k3horizon/horizon-api/pkg/server"
	"github.com/k3horizon/horizon-api/pkg/server/store"
	storegorm "github.com/k3horizon/horizon-api/pkg/server/store/gorm"
)

// proposalFields is shared by the BNSP and Kemnaker proposal resources,
// which carry an identical field set. The long descriptive fields hold
// rich HTML and are stored verbatim.
var proposalFields = []fieldSpec{
	{jsonKey: "title", column: "title", required: true, sanitized: true},
	{jsonKey: "image_title", column: "image_title", sanitized: true},
	{jsonKey: "proposal_category", column: "proposal_category", sanitized: true},
	{jsonKey: "training_description", column: "training_description"},
	{jsonKey: "legal_basis", column: "legal_basis"},
	{jsonKey: "condition", column: "condition"},
	{jsonKey: "facility", column: "facility"},
	{jsonKey: "unit_code", column: "unit_code"},
	{jsonKey: "unit_title", column: "unit_title"},
	{jsonKey: "timetable_1", column: "timetable_1", sanitized: true},
	{jsonKey: "timetable_2", column: "timetable_2", sanitized: true},
	{jsonKey: "location_1", column: "location_1"},
	{jsonKey: "location_2", column: "location_2"},
	{jsonKey: "image_online", column: "image_online", sanitized: true},
	{jsonKey: "image_offline", column: "image_offline", sanitized: true},
}

// RegisterBnspProposalEndpoints registers the /bnspProposals CRUD
// endpoints.
func RegisterBnspProposalEndpoints(srv *server.Server) {
	proposals := storegorm.NewBnspProposalsStore(srv.DB)

	registerResource(srv, resource{
		name:   "bnspProposals",
		fields: proposalFields,
		store: resourceStore{
			list: func() (interface{}, error) { return proposals.ListBnspProposals() },
			fetch: func(id int64) (interface{}, error) {
				return proposals.FetchBnspProposal(id)
			},
			create: func(changes []store.Change) (interface{}, error) {
				return proposals.CreateBnspProposal(changes)
			},
			update: func(id int64, changes []store.Change) (interface{}, error) {
				return proposals.UpdateBnspProposal(id, changes)
			},
			remove: proposals.DeleteBnspProposal,
		},
	})
}

// RegisterKemnakerProposalEndpoints registers the /kemnakerProposals
// CRUD endpoints.
func RegisterKemnakerProposalEndpoints(srv *server.Server) {
	proposals := storegorm.NewKemnakerProposalsStore(srv.DB)

	registerResource(srv, resource{
		name:   "kemnakerProposals",
		fields: proposalFields,
		store: resourceStore{
			list: func() (interface{}, error) { return proposals.ListKemnakerProposals() },
			fetch: func(id int64) (interface{}, error) {
				return proposals.FetchKemnakerProposal(id)
			},
			create: func(changes []store.Change) (interface{}, error) {
				return proposals.CreateKemnakerProposal(changes)
			},
			update: func(id int64, changes []store.Change) (interface{}, error) {
				return proposals.UpdateKemnakerProposal(id, changes)
			},
			remove: proposals.DeleteKemnakerProposal,
		},
	})
}
