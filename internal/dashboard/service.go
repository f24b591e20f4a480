package dashboard

import (
	"context"
	"time"

	"brickvale-backend/internal/models"
	"brickvale-backend/internal/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	unitPreviewLimit   = 20
	recentPaymentLimit = 5
	recentPaymentDays  = 30
	rollupMonths       = 12
)

type Service struct {
	DB *gorm.DB
}

// MonthlyRevenue is one bucket of the trailing-12-months rollup.
type MonthlyRevenue struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// UnitPreview is the dashboard card for a unit.
type UnitPreview struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	ProjectName string          `json:"projectName"`
	Status      string          `json:"status"`
	Price       decimal.Decimal `json:"price"`
	Image       *string         `json:"image"`
}

// RecentPayment is a recently settled payment annotated with its unit name.
type RecentPayment struct {
	ID               uuid.UUID       `json:"id"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentDate      time.Time       `json:"payment_date"`
	Status           string          `json:"status"`
	ReasonForPayment *string         `json:"reason_for_payment"`
	Title            *string         `json:"title"`
}

// Summary is the admin dashboard aggregate.
type Summary struct {
	TotalUnits       int64            `json:"total_units"`
	TotalPayments    int64            `json:"total_payments"`
	TotalUsers       int64            `json:"total_users"`
	TotalProjects    int64            `json:"total_projects"`
	TotalRevenue     decimal.Decimal  `json:"total_revenue"`
	TotalOutstanding decimal.Decimal  `json:"total_outstanding"`
	MonthlyRevenue   []MonthlyRevenue `json:"monthly_revenue"`
	Units            []UnitPreview    `json:"units"`
	RecentPayments   []RecentPayment  `json:"recent_payments"`
}

var monthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Aggregate scans non-deleted records and builds the dashboard summary as
// of the given time.
func (s *Service) Aggregate(ctx context.Context, asOf time.Time) (*Summary, error) {
	db := s.DB.WithContext(ctx)
	out := &Summary{
		TotalRevenue:     decimal.Zero,
		TotalOutstanding: decimal.Zero,
	}

	if err := db.Model(&models.Unit{}).Where("deleted = ?", false).Count(&out.TotalUnits).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Payment{}).Where("deleted = ?", false).Count(&out.TotalPayments).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.User{}).
		Where("deleted = ? AND role = ?", false, models.RoleClient).
		Count(&out.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Project{}).Where("deleted = ?", false).Count(&out.TotalProjects).Error; err != nil {
		return nil, err
	}

	revenue, err := s.sumByStatus(ctx, models.PaymentPaid)
	if err != nil {
		return nil, err
	}
	out.TotalRevenue = revenue
	outstanding, err := s.sumByStatus(ctx, models.PaymentNotPaid)
	if err != nil {
		return nil, err
	}
	out.TotalOutstanding = outstanding

	out.MonthlyRevenue, err = s.monthlyRollup(ctx, asOf)
	if err != nil {
		return nil, err
	}
	out.Units, err = s.unitPreviews(ctx)
	if err != nil {
		return nil, err
	}
	out.RecentPayments, err = s.recentPayments(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) sumByStatus(ctx context.Context, status string) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	err := s.DB.WithContext(ctx).Model(&models.Payment{}).
		Where("deleted = ? AND status = ?", false, status).
		Pluck("amount", &amounts).Error
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return money.RoundCents(total), nil
}

// monthlyRollup buckets paid amounts by the calendar month of payment_date
// for the trailing 12 months, oldest first. Months without paid activity
// report zero. Rows without a payment_date never appear here: only paid
// rows carry one.
func (s *Service) monthlyRollup(ctx context.Context, asOf time.Time) ([]MonthlyRevenue, error) {
	firstMonth := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(rollupMonths - 1), 0)

	var rows []models.Payment
	err := s.DB.WithContext(ctx).
		Select("amount", "payment_date").
		Where("deleted = ? AND status = ? AND payment_date IS NOT NULL AND payment_date >= ?",
			false, models.PaymentPaid, firstMonth).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	buckets := map[string]decimal.Decimal{}
	for _, p := range rows {
		key := p.PaymentDate.UTC().Format("2006-01")
		buckets[key] = buckets[key].Add(p.Amount)
	}

	out := make([]MonthlyRevenue, 0, rollupMonths)
	for i := 0; i < rollupMonths; i++ {
		month := firstMonth.AddDate(0, i, 0)
		amount, ok := buckets[month.Format("2006-01")]
		if !ok {
			amount = decimal.Zero
		}
		out = append(out, MonthlyRevenue{
			Month:  monthLabels[month.Month()-1],
			Amount: money.RoundCents(amount),
		})
	}
	return out, nil
}

func (s *Service) unitPreviews(ctx context.Context) ([]UnitPreview, error) {
	var units []models.Unit
	err := s.DB.WithContext(ctx).
		Preload("Project").
		Preload("MediaFiles", "deleted = ?", false).
		Where("deleted = ?", false).
		Limit(unitPreviewLimit).
		Find(&units).Error
	if err != nil {
		return nil, err
	}

	out := make([]UnitPreview, 0, len(units))
	for i := range units {
		u := &units[i]
		preview := UnitPreview{
			ID:     u.ID,
			Name:   u.Name,
			Status: u.Status(),
			Price:  u.Amount,
		}
		if u.Project != nil {
			preview.ProjectName = u.Project.Name
		}
		if images := u.Images(); len(images) > 0 {
			preview.Image = &images[0]
		}
		out = append(out, preview)
	}
	return out, nil
}

func (s *Service) recentPayments(ctx context.Context, asOf time.Time) ([]RecentPayment, error) {
	cutoff := asOf.AddDate(0, 0, -recentPaymentDays)

	var rows []models.Payment
	err := s.DB.WithContext(ctx).
		Preload("Unit").
		Where("deleted = ? AND status = ? AND payment_date IS NOT NULL AND payment_date >= ?",
			false, models.PaymentPaid, cutoff).
		Order("payment_date DESC").
		Limit(recentPaymentLimit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]RecentPayment, 0, len(rows))
	for i := range rows {
		p := &rows[i]
		recent := RecentPayment{
			ID:               p.ID,
			Amount:           p.Amount,
			PaymentDate:      *p.PaymentDate,
			Status:           p.Status,
			ReasonForPayment: p.ReasonForPayment,
		}
		if p.Unit != nil {
			recent.Title = &p.Unit.Name
		}
		out = append(out, recent)
	}
	return out, nil
}
