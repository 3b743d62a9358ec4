package repositories

import (
	"errors"
	"time"

	"pairchat/internal/errs"
	"pairchat/internal/models"
	"pairchat/internal/utils"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (ur *UserRepository) CreateUser(user *models.User) (*models.User, error) {
	if err := ur.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (ur *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := ur.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (ur *UserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := ur.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (ur *UserRepository) GetAllUsersWithPagination(page, size int) (*models.GetUsersResponse, error) {
	var users []models.User
	var total int64

	transactionErr := ur.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Scopes(utils.Paginate(page, size)).
			Order("created_at ASC").
			Find(&users).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Count(&total).Error
	})
	if transactionErr != nil {
		return nil, transactionErr
	}

	userResponses := make([]*models.UserResponse, 0, len(users))
	for _, user := range users {
		userResponses = append(userResponses, user.ToUserResponse())
	}

	return &models.GetUsersResponse{
		Users: userResponses,
		Page:  page,
		Size:  size,
		Total: total,
	}, nil
}

// SetOnlineStatus persists the durable mirror of the presence registry and
// stamps last_seen on every transition. Returns the new last seen time.
func (ur *UserRepository) SetOnlineStatus(userID uint, online bool) (*time.Time, error) {
	now := time.Now()
	result := ur.db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"is_online": online,
			"last_seen": now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrUserNotFound
	}
	return &now, nil
}
