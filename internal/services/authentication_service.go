package services

import (
	"time"

	"pairchat/configs"
	"pairchat/internal/errs"
	"pairchat/internal/interfaces"
	"pairchat/internal/models"
	"pairchat/internal/utils"
	"pairchat/internal/validators"
)

type AuthenticationService struct {
	userRepo interfaces.UserRepository
	config   *configs.Config
}

func NewAuthenticationService(
	userRepo interfaces.UserRepository,
	config *configs.Config,
) *AuthenticationService {
	return &AuthenticationService{
		userRepo: userRepo,
		config:   config,
	}
}

func (as *AuthenticationService) Register(user *models.User) (*models.User, []error) {
	var errors []error
	if validationErrs := validators.ValidateUser(user); len(validationErrs) > 0 {
		errors = append(errors, validationErrs...)
		return nil, errors
	}
	if existing, _ := as.userRepo.GetUserByEmail(user.Email); existing != nil {
		errors = append(errors, errs.ErrUserAlreadyExists)
		return nil, errors
	}
	password, err := utils.HashPassword(user.Password)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	user.PasswordHash = password
	user.Password = ""

	created, err := as.userRepo.CreateUser(user)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return created, nil
}

func (as *AuthenticationService) Login(loginData *models.LoginRequestBody) (*models.LoginResponse, []error) {
	var errors []error

	user, err := as.userRepo.GetUserByEmail(loginData.Email)
	if err != nil {
		errors = append(errors, errs.ErrUserNotFound)
		return nil, errors
	}
	if err := utils.CompareHashAndPassword(user.PasswordHash, loginData.Password); err != nil {
		errors = append(errors, errs.ErrWrongPassword)
		return nil, errors
	}

	expiration := time.Now().
		Add(time.Duration(as.config.Viper.GetInt("jwt.expiration_time")) * time.Second)
	token, jwtErr := utils.CreateJwtToken(
		user.ID,
		user.Email,
		user.Name,
		utils.GetJwtKey(),
		expiration,
	)
	if jwtErr != nil {
		errors = append(errors, jwtErr)
		return nil, errors
	}

	return &models.LoginResponse{
		User:  *user,
		Token: token,
	}, nil
}

func (as *AuthenticationService) GetSingleUser(id uint) (*models.UserResponse, []error) {
	user, err := as.userRepo.GetUserByID(id)
	if err != nil {
		return nil, []error{err}
	}
	return user.ToUserResponse(), nil
}

func (as *AuthenticationService) GetAllUsersWithPagination(page, size int) (*models.GetUsersResponse, []error) {
	if page < 1 || size < 1 {
		return nil, []error{errs.ErrInvalidPageOrSize}
	}
	response, err := as.userRepo.GetAllUsersWithPagination(page, size)
	if err != nil {
		return nil, []error{err}
	}
	return response, nil
}
