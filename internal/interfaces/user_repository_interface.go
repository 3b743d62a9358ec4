package interfaces

import (
	"time"

	"pairchat/internal/models"
)

type UserRepository interface {
	CreateUser(user *models.User) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetAllUsersWithPagination(page, size int) (*models.GetUsersResponse, error)
	SetOnlineStatus(userID uint, online bool) (*time.Time, error)
}
