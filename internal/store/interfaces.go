package store

import (
	"context"

	"github.com/MKhiriev/go-group-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/group_store_mock.go -package=mock

// GroupGateway is the local store of group summaries and group memberships.
type GroupGateway interface {
	// GetGroupIDsByMembership returns the ids of every group whose local
	// membership is one of memberships, ordered by id.
	GetGroupIDsByMembership(ctx context.Context, memberships []models.Membership) ([]string, error)

	// InTransaction runs fn inside one database transaction. The transaction
	// commits only when fn returns nil and is rolled back on any error or panic.
	InTransaction(ctx context.Context, fn func(ctx context.Context, tx GroupSummaryTx) error) error

	// GetGroupSummary returns the stored summary of groupID or
	// ErrGroupSummaryNotFound.
	GetGroupSummary(ctx context.Context, groupID string) (models.GroupSummary, error)

	// SaveGroupMembership creates or updates the local membership of groupID.
	SaveGroupMembership(ctx context.Context, groupID string, membership models.Membership) error
}

// GroupSummaryTx is the view of the store available inside
// [GroupGateway.InTransaction].
type GroupSummaryTx interface {
	// GetOrCreateGroupSummary returns the record of groupID, inserting an
	// empty one first if none exists.
	GetOrCreateGroupSummary(ctx context.Context, groupID string) (*models.GroupSummary, error)

	// SaveGroupSummary writes the scalar fields of summary and replaces its
	// room and user id sets.
	SaveGroupSummary(ctx context.Context, summary *models.GroupSummary) error
}

// ErrorClassificator decides whether a failed database operation may succeed
// when attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
