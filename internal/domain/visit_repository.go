package domain

import (
	"context"
)

//go:generate mockgen -source=visit_repository.go -destination=visit_repository_mock.go -package=domain

// VisitRepository lists entries newest date first.
type VisitRepository interface {
	Save(ctx context.Context, visit *Visit) error
	FindByID(ctx context.Context, id VisitID) (*Visit, error)
	FindByOwnerID(ctx context.Context, ownerID UserID) ([]*Visit, error)
	Update(ctx context.Context, visit *Visit) error
	Delete(ctx context.Context, id VisitID) error
}
