package documents

import (
	"context"
	"testing"

	"brickvale-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Unit{}, &models.Document{},
	))
	return db
}

func seedUnit(t *testing.T, db *gorm.DB) *models.Unit {
	t.Helper()
	unit := &models.Unit{
		Name:            "Docs House",
		Amount:          decimal.NewFromInt(5000000),
		Installment:     1,
		PaymentDuration: models.DurationMonthly,
		WarrantyPeriod:  12,
	}
	require.NoError(t, db.Create(unit).Error)
	return unit
}

func TestCreateTemplate(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{DB: db}
	ctx := context.Background()
	unit := seedUnit(t, db)

	doc, err := svc.CreateTemplate(ctx, TemplateInput{
		Name:   "Sale agreement",
		Link:   "https://files.example/templates/sale.pdf",
		UnitID: unit.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.DocumentTemplate, doc.Kind)

	_, err = svc.CreateTemplate(ctx, TemplateInput{
		Name:   "Orphan",
		Link:   "https://files.example/x.pdf",
		UnitID: uuid.New(),
	})
	assert.ErrorIs(t, err, ErrUnitNotFound)
}

func TestSignedDocuments_ListByParty(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{DB: db}
	ctx := context.Background()
	unit := seedUnit(t, db)
	clientID := uuid.New()
	agentID := uuid.New()

	_, err := svc.CreateSigned(ctx, SignedInput{
		Name:     "Signed sale agreement",
		Link:     "https://files.example/signed/sale-1.pdf",
		UnitID:   unit.ID,
		ClientID: &clientID,
		AgentID:  &agentID,
	})
	require.NoError(t, err)
	_, err = svc.CreateSigned(ctx, SignedInput{
		Name:   "Handover form",
		Link:   "https://files.example/signed/handover.pdf",
		UnitID: unit.ID,
	})
	require.NoError(t, err)

	byUnit, err := svc.SignedByUnit(ctx, unit.ID)
	require.NoError(t, err)
	assert.Len(t, byUnit, 2)

	byClient, err := svc.SignedByClient(ctx, clientID)
	require.NoError(t, err)
	require.Len(t, byClient, 1)
	assert.Equal(t, "Signed sale agreement", byClient[0].Name)

	byAgent, err := svc.SignedByAgent(ctx, agentID)
	require.NoError(t, err)
	assert.Len(t, byAgent, 1)

	// templates never leak into the signed listings
	_, err = svc.CreateTemplate(ctx, TemplateInput{
		Name:   "Blank agreement",
		Link:   "https://files.example/templates/blank.pdf",
		UnitID: unit.ID,
	})
	require.NoError(t, err)
	byUnit, err = svc.SignedByUnit(ctx, unit.ID)
	require.NoError(t, err)
	assert.Len(t, byUnit, 2)

	templates, err := svc.TemplatesByUnit(ctx, unit.ID)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "Blank agreement", templates[0].Name)
}

func TestSoftDelete_HidesDocument(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{DB: db}
	ctx := context.Background()
	unit := seedUnit(t, db)

	doc, err := svc.CreateTemplate(ctx, TemplateInput{
		Name:   "Obsolete template",
		Link:   "https://files.example/templates/old.pdf",
		UnitID: unit.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(ctx, doc.ID, "superseded"))
	assert.ErrorIs(t, svc.SoftDelete(ctx, doc.ID, "again"), ErrNotFound)

	templates, err := svc.TemplatesByUnit(ctx, unit.ID)
	require.NoError(t, err)
	assert.Empty(t, templates)
}
