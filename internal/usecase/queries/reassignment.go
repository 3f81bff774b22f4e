package queries

import (
	"context"

	"campus-reassign/internal/infra"
	"campus-reassign/internal/pkg/errs"

	"github.com/google/uuid"
)

type reassignmentQueriesImpl struct {
	store ReassignmentReadStore
}

func NewReassignmentQueries(store ReassignmentReadStore) ReassignmentQueries {
	return &reassignmentQueriesImpl{store: store}
}

func (q *reassignmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReassignmentView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRequestNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *reassignmentQueriesImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID, limit int32) ([]*ReassignmentListItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	items, err := q.store.FindByRequester(ctx, requesterID, limit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

type policyQueriesImpl struct {
	store PolicyReadStore
}

func NewPolicyQueries(store PolicyReadStore) PolicyQueries {
	return &policyQueriesImpl{store: store}
}

func (q *policyQueriesImpl) GetActiveByProgram(ctx context.Context, programID uuid.UUID) (*PolicyView, error) {
	view, err := q.store.FindActiveByProgram(ctx, programID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPolicyNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
