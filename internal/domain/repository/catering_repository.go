package repository

import (
	"context"

	"bistro/internal/domain/entity"
)

// CateringRepository persists catering-channel requests.
type CateringRepository interface {
	// Create inserts a new catering request referencing its customer's
	// internal id and backfills generated identifiers onto the entity.
	Create(ctx context.Context, request *entity.CateringRequest) error

	// List returns all catering requests, newest first.
	List(ctx context.Context) ([]*entity.CateringRequest, error)
}
