package noteservice

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/notura/notura/internal/models"
)

// CreateCollection persists a new collection. Its sort order is assigned by
// the datastore as the next position among siblings of the same parent.
func (s *Service) CreateCollection(_ context.Context, name string, description, parentID, color, icon *string) (*models.Collection, error) {
	now := time.Now().UTC()
	c := &models.Collection{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		ParentID:    parentID,
		Color:       color,
		Icon:        icon,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := s.store.CreateCollection(c)
	if err != nil {
		return nil, err
	}
	s.notify("collection.created", created.ID)
	return created, nil
}

// UpdateCollection renames a collection and replaces its description.
func (s *Service) UpdateCollection(_ context.Context, id, name string, description *string) (*models.Collection, error) {
	c, err := s.store.UpdateCollection(id, name, description)
	if err != nil {
		return nil, err
	}
	s.notify("collection.updated", id)
	return c, nil
}

// DeleteCollection removes an empty collection. Collections with child
// collections are refused; notes inside it are detached, not deleted.
func (s *Service) DeleteCollection(_ context.Context, id string) error {
	if err := s.store.DeleteCollection(id); err != nil {
		return err
	}
	s.notify("collection.deleted", id)
	return nil
}

// GetCollection returns a single collection by id.
func (s *Service) GetCollection(_ context.Context, id string) (*models.Collection, error) {
	return s.store.GetCollection(id)
}

// ListCollections returns all collections grouped by parent and ordered by
// sibling position.
func (s *Service) ListCollections(_ context.Context) ([]models.Collection, error) {
	return s.store.ListCollections()
}
