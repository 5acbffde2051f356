package repository

import "mjtoys/models"

// UserRepository is the pluggable credential store behind signup/login. A
// real identity provider can replace it without touching the render core.
type UserRepository interface {
	CreateUser(user *models.AppUser) error
	GetUserByEmail(email string) (*models.AppUser, error)
}
