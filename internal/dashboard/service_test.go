package dashboard

import (
	"context"
	"testing"
	"time"

	"brickvale-backend/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Project{}, &models.Unit{},
		&models.Payment{}, &models.MediaFile{},
	))
	return db
}

func seedUnit(t *testing.T, db *gorm.DB, name string, amount string, clientID *uuid.UUID) *models.Unit {
	t.Helper()
	unit := &models.Unit{
		Name:            name,
		Amount:          dec(amount),
		Installment:     1,
		PaymentDuration: models.DurationMonthly,
		WarrantyPeriod:  12,
		ClientID:        clientID,
	}
	require.NoError(t, db.Create(unit).Error)
	return unit
}

func seedPayment(t *testing.T, db *gorm.DB, unitID uuid.UUID, amount, status string, paidAt *time.Time) *models.Payment {
	t.Helper()
	payment := &models.Payment{
		UnitID:      unitID,
		Amount:      dec(amount),
		Status:      status,
		PaymentDate: paidAt,
	}
	require.NoError(t, db.Create(payment).Error)
	return payment
}

func TestAggregate_CountsAndSums(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{DB: db}
	asOf := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	client := models.User{Fullname: "Client One", Email: "c1@example.com", Role: models.RoleClient}
	require.NoError(t, db.Create(&client).Error)
	admin := models.User{Fullname: "Admin", Email: "a@example.com", Phone: "+15550001", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)

	project := models.Project{Name: "Cedar Heights"}
	require.NoError(t, db.Create(&project).Error)

	unit := seedUnit(t, db, "Cedar 1A", "150000", &client.ID)
	paidAt := asOf.AddDate(0, 0, -3)
	seedPayment(t, db, unit.ID, "60000", models.PaymentPaid, &paidAt)
	seedPayment(t, db, unit.ID, "40000", models.PaymentPaid, &paidAt)
	seedPayment(t, db, unit.ID, "50000", models.PaymentNotPaid, nil)

	// deleted rows are invisible everywhere
	ghost := seedPayment(t, db, unit.ID, "99999", models.PaymentPaid, &paidAt)
	require.NoError(t, db.Model(ghost).Update("deleted", true).Error)

	summary, err := svc.Aggregate(context.Background(), asOf)
	require.NoError(t, err)

	assert.EqualValues(t, 1, summary.TotalUnits)
	assert.EqualValues(t, 3, summary.TotalPayments)
	assert.EqualValues(t, 1, summary.TotalUsers) // clients only
	assert.EqualValues(t, 1, summary.TotalProjects)
	assert.Equal(t, "100000", summary.TotalRevenue.String())
	assert.Equal(t, "50000", summary.TotalOutstanding.String())

	// the bucket holding the payment month carries the full paid sum
	require.Len(t, summary.MonthlyRevenue, 12)
	assert.Equal(t, "Jun", summary.MonthlyRevenue[11].Month)
	assert.Equal(t, "100000", summary.MonthlyRevenue[11].Amount.String())
}

func TestAggregate_MonthlyRollup(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{DB: db}
	asOf := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	unit := seedUnit(t, db, "Rollup Row", "1000000", nil)
	june := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	april := time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)
	lastJuly := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	tooOld := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	seedPayment(t, db, unit.ID, "10000", models.PaymentPaid, &june)
	seedPayment(t, db, unit.ID, "5000", models.PaymentPaid, &june)
	seedPayment(t, db, unit.ID, "2500", models.PaymentPaid, &april)
	seedPayment(t, db, unit.ID, "700", models.PaymentPaid, &lastJuly)
	seedPayment(t, db, unit.ID, "123456", models.PaymentPaid, &tooOld)

	summary, err := svc.Aggregate(context.Background(), asOf)
	require.NoError(t, err)
	rollup := summary.MonthlyRevenue
	require.Len(t, rollup, 12)

	// oldest month first: Jul 2024 .. Jun 2025
	assert.Equal(t, "Jul", rollup[0].Month)
	assert.Equal(t, "700", rollup[0].Amount.String())
	assert.Equal(t, "Apr", rollup[9].Month)
	assert.Equal(t, "2500", rollup[9].Amount.String())
	assert.Equal(t, "Jun", rollup[11].Month)
	assert.Equal(t, "15000", rollup[11].Amount.String())
	// months without activity report zero
	assert.Equal(t, "Aug", rollup[1].Month)
	assert.True(t, rollup[1].Amount.IsZero())
}

func TestAggregate_PreviewsAndRecentPayments(t *testing.T) {
	db := newTestDB(t)
	svc := &Service{DB: db}
	asOf := time.Now()

	client := models.User{Fullname: "Owner", Email: "o@example.com", Role: models.RoleClient}
	require.NoError(t, db.Create(&client).Error)
	project := models.Project{Name: "Willow Park"}
	require.NoError(t, db.Create(&project).Error)

	sold := seedUnit(t, db, "Willow 2", "250000", &client.ID)
	require.NoError(t, db.Model(sold).Update("project_id", project.ID).Error)
	require.NoError(t, db.Create(&models.MediaFile{
		UnitID: &sold.ID, FilePath: "/img/willow2.jpg", FileType: "image/jpeg",
	}).Error)
	seedUnit(t, db, "Willow 3", "250000", nil)

	recent := asOf.AddDate(0, 0, -2)
	stale := asOf.AddDate(0, 0, -45)
	seedPayment(t, db, sold.ID, "25000", models.PaymentPaid, &recent)
	seedPayment(t, db, sold.ID, "10000", models.PaymentPaid, &stale)

	summary, err := svc.Aggregate(context.Background(), asOf)
	require.NoError(t, err)

	require.Len(t, summary.Units, 2)
	byName := map[string]UnitPreview{}
	for _, p := range summary.Units {
		byName[p.Name] = p
	}
	assert.Equal(t, models.UnitStatusSold, byName["Willow 2"].Status)
	assert.Equal(t, "Willow Park", byName["Willow 2"].ProjectName)
	require.NotNil(t, byName["Willow 2"].Image)
	assert.Equal(t, "/img/willow2.jpg", *byName["Willow 2"].Image)
	assert.Equal(t, models.UnitStatusAvailable, byName["Willow 3"].Status)
	assert.Nil(t, byName["Willow 3"].Image)

	// only the last 30 days make the recent list
	require.Len(t, summary.RecentPayments, 1)
	assert.Equal(t, "25000", summary.RecentPayments[0].Amount.String())
	require.NotNil(t, summary.RecentPayments[0].Title)
	assert.Equal(t, "Willow 2", *summary.RecentPayments[0].Title)
}

func TestCache_RoundTripAndInvalidate(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := &Cache{Rdb: rdb, TTL: time.Minute}
	ctx := context.Background()

	_, ok := cache.Get(ctx)
	assert.False(t, ok)

	summary := &Summary{TotalUnits: 7, TotalRevenue: dec("123.45"), TotalOutstanding: decimal.Zero}
	cache.Set(ctx, summary)

	got, ok := cache.Get(ctx)
	require.True(t, ok)
	assert.EqualValues(t, 7, got.TotalUnits)
	assert.True(t, got.TotalRevenue.Equal(dec("123.45")))

	cache.Invalidate(ctx)
	_, ok = cache.Get(ctx)
	assert.False(t, ok)
}

func TestCache_NilIsNoOp(t *testing.T) {
	var cache *Cache
	ctx := context.Background()

	_, ok := cache.Get(ctx)
	assert.False(t, ok)
	cache.Set(ctx, &Summary{})
	cache.Invalidate(ctx)
}

func TestCache_ExpiresWithTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := &Cache{Rdb: rdb, TTL: time.Minute}
	ctx := context.Background()

	cache.Set(ctx, &Summary{TotalUnits: 1})
	mr.FastForward(2 * time.Minute)

	_, ok := cache.Get(ctx)
	assert.False(t, ok)
}
