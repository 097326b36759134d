package domain

// Role represents user role in the system
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

// ParseRole validates a raw role string coming from a request
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin, RoleEditor:
		return Role(raw), nil
	}
	return "", ErrInvalidRole
}

// Category represents a document category. Values keep the site's
// published contract, so they stay in Portuguese.
type Category string

const (
	CategoryReport     Category = "Relatorios"
	CategoryStatements Category = "Prestacao de contas"
	CategoryGeneric    Category = "Documentos"
)

// ParseCategory validates a raw category string coming from a request
func ParseCategory(raw string) (Category, error) {
	switch Category(raw) {
	case CategoryReport, CategoryStatements, CategoryGeneric:
		return Category(raw), nil
	}
	return "", ErrInvalidCategory
}

// Status represents document visibility status
type Status string

const (
	StatusActive   Status = "ativo"
	StatusInactive Status = "inativo"
	StatusArchived Status = "arquivado"
)

// ParseStatus validates a raw status string coming from a request
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusActive, StatusInactive, StatusArchived:
		return Status(raw), nil
	}
	return "", ErrInvalidStatus
}

// DocumentFilter holds the conjunctive filters accepted by the document
// listing operations. Empty fields are ignored.
type DocumentFilter struct {
	Category Category
	Status   Status
	Period   string // YYYY-MM
}

// CategoryCount is one row of the per-category statistics
type CategoryCount struct {
	Category Category `json:"categoria"`
	Total    int64    `json:"total"`
}
