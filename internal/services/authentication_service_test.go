package services

import (
	"testing"

	"pairchat/configs"
	"pairchat/internal/errs"
	"pairchat/internal/models"
	"pairchat/internal/utils"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func testConfig() *configs.Config {
	v := viper.New()
	v.Set("jwt.expiration_time", 3600)
	return &configs.Config{Viper: v}
}

func TestAuthenticationService_Register(t *testing.T) {
	t.Run("should hash the password and create the user", func(t *testing.T) {
		req := require.New(t)
		userRepo := newFakeUserRepo()
		svc := NewAuthenticationService(userRepo, testConfig())

		created, registerErrs := svc.Register(&models.User{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "s3cret-pass",
		})

		req.Empty(registerErrs)
		req.NotZero(created.ID)
		req.Empty(created.Password)
		req.NoError(utils.CompareHashAndPassword(created.PasswordHash, "s3cret-pass"))
	})

	t.Run("should reject invalid input", func(t *testing.T) {
		req := require.New(t)
		svc := NewAuthenticationService(newFakeUserRepo(), testConfig())

		_, registerErrs := svc.Register(&models.User{
			Name:     "A",
			Email:    "not-an-email",
			Password: "short",
		})

		req.Len(registerErrs, 3)
	})

	t.Run("should reject a duplicate email", func(t *testing.T) {
		req := require.New(t)
		userRepo := newFakeUserRepo()
		svc := NewAuthenticationService(userRepo, testConfig())

		_, registerErrs := svc.Register(&models.User{
			Name: "Alice", Email: "alice@example.com", Password: "s3cret-pass",
		})
		req.Empty(registerErrs)

		_, registerErrs = svc.Register(&models.User{
			Name: "Imposter", Email: "alice@example.com", Password: "another-pass",
		})
		req.Contains(registerErrs, error(errs.ErrUserAlreadyExists))
	})
}

func TestAuthenticationService_Login(t *testing.T) {
	req := require.New(t)
	userRepo := newFakeUserRepo()
	svc := NewAuthenticationService(userRepo, testConfig())

	_, registerErrs := svc.Register(&models.User{
		Name: "Alice", Email: "alice@example.com", Password: "s3cret-pass",
	})
	req.Empty(registerErrs)

	t.Run("should issue a verifiable token", func(t *testing.T) {
		req := require.New(t)
		response, loginErrs := svc.Login(&models.LoginRequestBody{
			Email:    "alice@example.com",
			Password: "s3cret-pass",
		})

		req.Empty(loginErrs)
		claims, err := utils.VerifyToken(response.Token, utils.GetJwtKey())
		req.NoError(err)
		req.Equal(response.User.ID, claims.ID)
		req.Equal("alice@example.com", claims.Email)
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		req := require.New(t)
		_, loginErrs := svc.Login(&models.LoginRequestBody{
			Email:    "alice@example.com",
			Password: "wrong",
		})
		req.Contains(loginErrs, error(errs.ErrWrongPassword))
	})

	t.Run("should reject an unknown user", func(t *testing.T) {
		req := require.New(t)
		_, loginErrs := svc.Login(&models.LoginRequestBody{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		req.Contains(loginErrs, error(errs.ErrUserNotFound))
	})
}
