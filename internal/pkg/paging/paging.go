// Package paging implements offset pagination over GORM queries.
package paging

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const defaultLimit = 20
const maxLimit = 100

// Params is a 1-based page plus page size.
type Params struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// FromQuery reads page/limit query params, clamping to sane bounds.
func FromQuery(c *fiber.Ctx) Params {
	p := Params{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", defaultLimit),
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Find runs the query with limit/offset applied and returns the total row
// count before paging. dest must be a pointer to a slice.
func Find(query *gorm.DB, p Params, dest interface{}) (int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, err
	}
	if err := query.Limit(p.Limit).Offset(p.Offset()).Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Metadata is the envelope metadata block for a paginated response.
func (p Params) Metadata(total int64) fiber.Map {
	return fiber.Map{"page": p.Page, "limit": p.Limit, "total": total}
}
