package service_test

import (
	"testing"
	"time"

	"identity-service-backend/internal/auth"
	"identity-service-backend/internal/database/models"
	apperrors "identity-service-backend/internal/errors"
	"identity-service-backend/internal/mocks"
	"identity-service-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newUserService(t *testing.T, repo *mocks.MockUserRepositoryInterface) *service.UserService {
	t.Helper()

	tokens, err := auth.NewAuthService("test-secret", time.Hour)
	require.NoError(t, err)

	// Minimum bcrypt cost keeps the tests fast
	hasher := auth.NewPasswordHasher(4)

	return service.NewUserService(repo, tokens, hasher, service.NewValidator())
}

func validRegisterRequest() *service.RegisterRequest {
	return &service.RegisterRequest{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Password:  "s3cret-pass",
		Phone:     "+1-555-0100",
	}
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepositoryInterface(ctrl)
	svc := newUserService(t, repo)

	repo.EXPECT().GetByEmail("alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	repo.EXPECT().
		CreateWithDefaultOrg(gomock.Any(), gomock.Any()).
		DoAndReturn(func(user *models.User, org *models.Organisation) error {
			assert.Equal(t, "Alice", user.FirstName)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
			assert.Equal(t, "Alice's Organisation", org.Name)
			user.ID = uuid.New()
			return nil
		})

	resp, err := svc.Register(validRegisterRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Alice", resp.User.FirstName)
	assert.Equal(t, "alice@example.com", resp.User.Email)
}

func TestRegister_MissingFieldsCollected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepositoryInterface(ctrl)
	svc := newUserService(t, repo)

	resp, err := svc.Register(&service.RegisterRequest{})

	require.Error(t, err)
	assert.Nil(t, resp)

	var verrs apperrors.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	fields := make(map[string]string)
	for _, ve := range verrs {
		fields[ve.Field] = ve.Message
	}
	assert.Equal(t, "firstName is required", fields["firstName"])
	assert.Equal(t, "lastName is required", fields["lastName"])
	assert.Equal(t, "email is required", fields["email"])
	assert.Equal(t, "password is required", fields["password"])
}

func TestRegister_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepositoryInterface(ctrl)
	svc := newUserService(t, repo)

	req := validRegisterRequest()
	req.Email = "not-an-email"

	_, err := svc.Register(req)

	var verrs apperrors.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "email", verrs[0].Field)
	assert.Equal(t, "email is invalid", verrs[0].Message)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepositoryInterface(ctrl)
	svc := newUserService(t, repo)

	existing := &models.User{Email: "alice@example.com"}
	repo.EXPECT().GetByEmail("alice@example.com").Return(existing, nil)

	_, err := svc.Register(validRegisterRequest())

	var verrs apperrors.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "email", verrs[0].Field)
	assert.Equal(t, "Email is already registered", verrs[0].Message)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepositoryInterface(ctrl)
	svc := newUserService(t, repo)

	hasher := auth.NewPasswordHasher(4)
	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)

	user := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		FirstName:    "Alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
	}
	repo.EXPECT().GetByEmail("alice@example.com").Return(user, nil)

	resp, err := svc.Login(&service.LoginRequest{Email: "alice@example.com", Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, user.ID, resp.User.UserID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepositoryInterface(ctrl)
	svc := newUserService(t, repo)

	repo.EXPECT().GetByEmail("nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	resp, err := svc.Login(&service.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepositoryInterface(ctrl)
	svc := newUserService(t, repo)

	hasher := auth.NewPasswordHasher(4)
	hash, err := hasher.Hash("right-password")
	require.NoError(t, err)

	user := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        "alice@example.com",
		PasswordHash: hash,
	}
	repo.EXPECT().GetByEmail("alice@example.com").Return(user, nil)

	resp, err := svc.Login(&service.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})

	assert.Nil(t, resp)
	// Same error as an unknown email so responses can't be used to probe
	// which addresses are registered
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestGetUserByID_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepositoryInterface(ctrl)
	svc := newUserService(t, repo)

	id := uuid.New()
	user := &models.User{
		BaseModel: models.BaseModel{ID: id},
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
	}
	repo.EXPECT().GetByID(id).Return(user, nil)

	resp, err := svc.GetUserByID(id)

	require.NoError(t, err)
	assert.Equal(t, id, resp.UserID)
	assert.Equal(t, "Alice", resp.FirstName)
}

func TestGetUserByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepositoryInterface(ctrl)
	svc := newUserService(t, repo)

	id := uuid.New()
	repo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := svc.GetUserByID(id)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
