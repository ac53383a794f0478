package app

import "context"

type VisitUseCase interface {
	CreateVisit(ctx context.Context, input CreateVisitInput) (VisitOutput, error)
	GetVisit(ctx context.Context, input GetVisitInput) (VisitOutput, error)
	ListVisits(ctx context.Context, input ListVisitsInput) (VisitsOutput, error)
	UpdateVisit(ctx context.Context, input UpdateVisitInput) (VisitOutput, error)
	DeleteVisit(ctx context.Context, input DeleteVisitInput) error
}
