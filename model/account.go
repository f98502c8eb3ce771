package model

const (
	RoleAdmin  = "admin"
	RoleHost   = "host"
	RoleServer = "server"
)

type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:'host'" json:"role"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=50"`
}

type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}
