package service

import (
	"context"

	"marketplace/internal/domain/entity"
)

// PublicationCache keeps hot publication reads out of the database.
// A miss returns (nil, nil).
type PublicationCache interface {
	Get(ctx context.Context, id uint) (*entity.Publication, error)
	Set(ctx context.Context, publication *entity.Publication) error
	Delete(ctx context.Context, id uint) error
}
