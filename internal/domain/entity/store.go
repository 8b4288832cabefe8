package entity

import "time"

// Store representa una tienda (tenant). Es dueña de sus productos y es la
// identidad que viaja en el token JWT.
type Store struct {
	ID           int64
	Name         string // único
	Email        string // único, normalizado en minúsculas
	PasswordHash string // bcrypt
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
