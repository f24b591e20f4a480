package projects

import (
	"context"
	"testing"

	"brickvale-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Project{}, &models.Unit{}))
	return db
}

func TestCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{DB: db}
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		Name:     "Cedar Heights",
		Address:  "12 Cedar Road",
		NumUnits: 24,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cedar Heights", got.Name)
	assert.Equal(t, 24, got.NumUnits)

	_, err = svc.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_PartialPatch(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{DB: db}
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		Name:     "Willow Park",
		Address:  "3 Willow Lane",
		NumUnits: 10,
	})
	require.NoError(t, err)

	newCount := 12
	updated, err := svc.Update(ctx, created.ID, UpdateInput{NumUnits: &newCount})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.NumUnits)
	// untouched fields stay put
	assert.Equal(t, "Willow Park", updated.Name)
}

func TestSoftDelete_HidesFromList(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{DB: db}
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		Name:     "Old Stock",
		Address:  "1 Gone Street",
		NumUnits: 2,
	})
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(ctx, created.ID, "development cancelled"))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	var row models.Project
	require.NoError(t, db.First(&row, "id = ?", created.ID).Error)
	require.NotNil(t, row.ReasonForDelete)
	assert.Equal(t, "development cancelled", *row.ReasonForDelete)
}
