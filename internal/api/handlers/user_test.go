package handlers

import (
	"net/http"
	"testing"

	apperrors "identity-service-backend/internal/errors"
	"identity-service-backend/internal/mocks"
	"identity-service-backend/internal/service"
	"identity-service-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserService *mocks.MockUserServiceInterface
	handler         *UserHandler
	httpSuite       *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)

	suite.handler = NewUserHandler(suite.mockUserService)

	suite.httpSuite = testutils.SetupHTTPTest()
	api := suite.httpSuite.Router.Group("/api")
	api.GET("/users/:id", suite.handler.GetUser)
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetUser tests retrieving a user by ID
func (suite *UserHandlerTestSuite) TestGetUser() {
	userID := uuid.New()
	expected := &service.UserResponse{
		UserID:    userID,
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
	}

	suite.mockUserService.EXPECT().
		GetUserByID(userID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/users/"+userID.String(), nil)

	body := testutils.AssertEnvelope(suite.T(), recorder, http.StatusOK, "success", "User found")
	data := body["data"].(map[string]interface{})
	assert.Equal(suite.T(), userID.String(), data["userId"])
	assert.Equal(suite.T(), "alice@example.com", data["email"])
}

// TestGetUserNotFound tests retrieving a non-existent user
func (suite *UserHandlerTestSuite) TestGetUserNotFound() {
	userID := uuid.New()

	suite.mockUserService.EXPECT().
		GetUserByID(userID).
		Return(nil, apperrors.ErrUserNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/users/"+userID.String(), nil)

	testutils.AssertEnvelope(suite.T(), recorder, http.StatusNotFound, "Not found", "User not found")
}

// TestGetUserMalformedID tests that a non-UUID path segment behaves like a
// missing user rather than leaking a different error shape
func (suite *UserHandlerTestSuite) TestGetUserMalformedID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/users/not-a-uuid", nil)

	testutils.AssertEnvelope(suite.T(), recorder, http.StatusNotFound, "Not found", "User not found")
}

// Run the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
