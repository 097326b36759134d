package models

import (
	"time"

	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents usuarios table
type User struct {
	ID        string      `gorm:"primaryKey;size:36" json:"id"`
	Email     string      `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string      `gorm:"column:senha;size:255;not null" json:"-"`
	Name      string      `gorm:"column:nome;size:100;not null" json:"nome"`
	Role      domain.Role `gorm:"column:tipo;size:20;default:'editor'" json:"tipo"`
	IsActive  bool        `gorm:"column:ativo;default:true" json:"ativo"`
	CreatedAt time.Time   `gorm:"column:criado_em;autoCreateTime" json:"criadoEm"`
	UpdatedAt time.Time   `gorm:"column:atualizado_em;autoUpdateTime" json:"atualizadoEm"`
}

func (User) TableName() string {
	return "usuarios"
}

// BeforeCreate assigns a uuid primary key
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserResponse DTO — the only user representation that leaves the API
type UserResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"nome"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"tipo"`
	IsActive  bool        `json:"ativo"`
	CreatedAt time.Time   `json:"criadoEm"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// Document represents documentos table
type Document struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	Title       string          `gorm:"column:titulo;size:200;not null" json:"titulo"`
	Category    domain.Category `gorm:"column:categoria;size:50;not null;index" json:"categoria"`
	Note        string          `gorm:"column:nota;type:text" json:"nota"`
	Period      string          `gorm:"column:data;size:20;not null;index" json:"data"`
	FileName    string          `gorm:"column:nome_arquivo;size:255;not null" json:"nomeArquivo"`
	FilePath    string          `gorm:"column:caminho_arquivo;size:500;not null" json:"caminhoArquivo"`
	FileType    string          `gorm:"column:tipo_arquivo;size:50;not null" json:"tipoArquivo"`
	FileSize    int64           `gorm:"column:tamanho_arquivo;not null" json:"tamanhoArquivo"`
	Status      domain.Status   `gorm:"column:status;size:20;default:'ativo';index" json:"status"`
	PublicURL   string          `gorm:"column:url_publica;size:500" json:"urlPublica"`
	CreatedByID string          `gorm:"column:criado_por_id;size:36;not null;index" json:"criadoPorId"`
	CreatedAt   time.Time       `gorm:"column:criado_em;autoCreateTime" json:"criadoEm"`
	UpdatedAt   time.Time       `gorm:"column:atualizado_em;autoUpdateTime" json:"atualizadoEm"`

	// Relations
	CreatedBy *User `gorm:"foreignKey:CreatedByID" json:"criadoPor,omitempty"`
}

func (Document) TableName() string {
	return "documentos"
}

// BeforeCreate assigns a uuid primary key
func (d *Document) BeforeCreate(_ *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// AutoMigrate runs auto migration for application tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Document{},
	)
}
