package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewledger/internal/adapters/persistence/models"
	"crewledger/internal/core/domain"
)

func TestProjectStatusLifecycle(t *testing.T) {
	svc := NewProjectService(newMockProjectRepo())
	ctx := context.Background()

	t.Run("defaults to active", func(t *testing.T) {
		p, err := svc.Create(ctx, 1, &ProjectInput{Name: "Warehouse refit"})
		require.NoError(t, err)
		assert.Equal(t, models.ProjectStatusActive, p.Status)
	})

	t.Run("archive on update", func(t *testing.T) {
		p, err := svc.Create(ctx, 1, &ProjectInput{
			Name:   "Office move",
			Status: models.ProjectStatusCompleted,
		})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, 1, p.ID, &ProjectInput{
			Name:   p.Name,
			Status: models.ProjectStatusArchived,
		})
		require.NoError(t, err)
		assert.Equal(t, models.ProjectStatusArchived, updated.Status)

		got, err := svc.Get(ctx, 1, p.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ProjectStatusArchived, got.Status)
	})

	t.Run("status normalized to upper case", func(t *testing.T) {
		p, err := svc.Create(ctx, 1, &ProjectInput{Name: "Audit", Status: "archived"})
		require.NoError(t, err)
		assert.Equal(t, models.ProjectStatusArchived, p.Status)
	})

	t.Run("invalid budget rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, 1, &ProjectInput{Name: "Bad", Budget: "1e-3"})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}
