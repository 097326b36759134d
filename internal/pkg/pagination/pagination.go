package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Params represents pagination parameters. Page is 1-based.
type Params struct {
	Page   int `json:"pagina"`
	Limit  int `json:"limite"`
	Offset int `json:"-"`
}

// DefaultLimit is the default number of items per page
const DefaultLimit = 12

// MaxLimit is the maximum number of items per page
const MaxLimit = 100

// GetParams extracts pagination parameters from the request query.
// Out-of-range values are clamped; out-of-range pages are not — a page past
// the end simply yields an empty result with correct totals.
func GetParams(c *fiber.Ctx) *Params {
	page, _ := strconv.Atoi(c.Query("pagina", "1"))
	limit, _ := strconv.Atoi(c.Query("limite", strconv.Itoa(DefaultLimit)))
	return New(page, limit)
}

// New builds validated pagination parameters
func New(page, limit int) *Params {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return &Params{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// TotalPages computes ceil(total / limit)
func TotalPages(total int64, limit int) int {
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}
	return pages
}
