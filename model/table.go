package model

const (
	SectionMain    = "main"
	SectionPatio   = "patio"
	SectionBar     = "bar"
	SectionPrivate = "private"
)

type Table struct {
	DTO
	Number          int     `gorm:"uniqueIndex;not null" json:"number"`
	Name            *string `json:"name,omitempty"`
	MinCapacity     int     `gorm:"not null" json:"minCapacity"`
	OptimalCapacity int     `gorm:"not null" json:"optimalCapacity"`
	MaxCapacity     int     `gorm:"not null" json:"maxCapacity"`
	Section         *string `json:"section,omitempty"`
	Active          bool    `gorm:"not null;default:true" json:"active"`
	Notes           *string `json:"notes,omitempty"`
}

// CapacityOrderingValid reports whether min <= optimal <= max holds.
// Checked again after partial-update merges, where cross-field tags
// cannot see the absent half of a pair.
func (t *Table) CapacityOrderingValid() bool {
	return t.MinCapacity <= t.OptimalCapacity && t.OptimalCapacity <= t.MaxCapacity
}

type CreateTableInput struct {
	Number          int     `json:"number" validate:"required,gt=0"`
	Name            *string `json:"name"`
	MinCapacity     int     `json:"minCapacity" validate:"required,gt=0"`
	OptimalCapacity int     `json:"optimalCapacity" validate:"required,gt=0,gtefield=MinCapacity,ltefield=MaxCapacity"`
	MaxCapacity     int     `json:"maxCapacity" validate:"required,gt=0"`
	Section         *string `json:"section" validate:"omitempty,oneof=main patio bar private"`
	Active          *bool   `json:"active"`
	Notes           *string `json:"notes"`
}

type UpdateTableInput struct {
	Number          *int    `json:"number" validate:"omitempty,gt=0"`
	Name            *string `json:"name"`
	MinCapacity     *int    `json:"minCapacity" validate:"omitempty,gt=0"`
	OptimalCapacity *int    `json:"optimalCapacity" validate:"omitempty,gt=0"`
	MaxCapacity     *int    `json:"maxCapacity" validate:"omitempty,gt=0"`
	Section         *string `json:"section" validate:"omitempty,oneof=main patio bar private"`
	Active          *bool   `json:"active"`
	Notes           *string `json:"notes"`
}
