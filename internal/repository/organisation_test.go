//go:build integration
// +build integration

package repository

import (
	"testing"

	"identity-service-backend/internal/database/models"
	"identity-service-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganisationRepositoryTestSuite tests the OrganisationRepository
type OrganisationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganisationRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OrganisationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOrganisationRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganisationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganisationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganisationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to create and persist a user
func (suite *OrganisationRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	err := suite.userRepo.Create(user)
	suite.NoError(err)
	return user
}

// TestCreate tests creating a new organisation
func (suite *OrganisationRepositoryTestSuite) TestCreate() {
	org := suite.factories.Organisation.Create()

	err := suite.repo.Create(org)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, org.ID)
	suite.NotZero(org.CreatedAt)
}

// TestCreateWithMember tests that the creator is enrolled as a member in the
// same transaction
func (suite *OrganisationRepositoryTestSuite) TestCreateWithMember() {
	user := suite.createUser()
	org := suite.factories.Organisation.WithCreator(user.ID)

	err := suite.repo.CreateWithMember(org, user.ID)
	suite.NoError(err)

	isMember, err := suite.repo.IsMember(org.ID, user.ID)
	suite.NoError(err)
	suite.True(isMember)
}

// TestGetByIDForUser tests that a member can read the organisation
func (suite *OrganisationRepositoryTestSuite) TestGetByIDForUser() {
	user := suite.createUser()
	org := suite.factories.Organisation.Create()
	err := suite.repo.CreateWithMember(org, user.ID)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByIDForUser(org.ID, user.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(org.ID, retrieved.ID)
	suite.Equal(org.Name, retrieved.Name)
}

// TestGetByIDForUserNonMember tests that a non-member gets record-not-found
// even though the organisation exists
func (suite *OrganisationRepositoryTestSuite) TestGetByIDForUserNonMember() {
	member := suite.createUser()
	outsider := suite.createUser()
	org := suite.factories.Organisation.Create()
	err := suite.repo.CreateWithMember(org, member.ID)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByIDForUser(org.ID, outsider.ID)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

// TestGetAllForUser tests that listing returns only the user's organisations
func (suite *OrganisationRepositoryTestSuite) TestGetAllForUser() {
	user := suite.createUser()
	other := suite.createUser()

	mine1 := suite.factories.Organisation.WithName("mine-one")
	suite.NoError(suite.repo.CreateWithMember(mine1, user.ID))
	mine2 := suite.factories.Organisation.WithName("mine-two")
	suite.NoError(suite.repo.CreateWithMember(mine2, user.ID))
	theirs := suite.factories.Organisation.WithName("theirs")
	suite.NoError(suite.repo.CreateWithMember(theirs, other.ID))

	orgs, err := suite.repo.GetAllForUser(user.ID)

	suite.NoError(err)
	suite.Len(orgs, 2)
	names := []string{orgs[0].Name, orgs[1].Name}
	suite.Contains(names, "mine-one")
	suite.Contains(names, "mine-two")
	suite.NotContains(names, "theirs")
}

// TestGetAllForUserEmpty tests listing for a user with no memberships
func (suite *OrganisationRepositoryTestSuite) TestGetAllForUserEmpty() {
	user := suite.createUser()

	orgs, err := suite.repo.GetAllForUser(user.ID)

	suite.NoError(err)
	suite.Empty(orgs)
}

// TestAddMember tests adding a user to an organisation
func (suite *OrganisationRepositoryTestSuite) TestAddMember() {
	creator := suite.createUser()
	newcomer := suite.createUser()
	org := suite.factories.Organisation.Create()
	suite.NoError(suite.repo.CreateWithMember(org, creator.ID))

	err := suite.repo.AddMember(org.ID, newcomer.ID)
	suite.NoError(err)

	isMember, err := suite.repo.IsMember(org.ID, newcomer.ID)
	suite.NoError(err)
	suite.True(isMember)
}

// TestAddMemberIdempotent tests that re-adding an existing member succeeds
// without duplicating the membership row
func (suite *OrganisationRepositoryTestSuite) TestAddMemberIdempotent() {
	user := suite.createUser()
	org := suite.factories.Organisation.Create()
	suite.NoError(suite.repo.CreateWithMember(org, user.ID))

	err := suite.repo.AddMember(org.ID, user.ID)
	suite.NoError(err)

	var count int64
	suite.baseTestSuite.DB.Model(&models.UserOrganisation{}).
		Where("organisation_id = ? AND user_id = ?", org.ID, user.ID).
		Count(&count)
	suite.Equal(int64(1), count)
}

// TestIsMemberFalse tests membership check for a non-member
func (suite *OrganisationRepositoryTestSuite) TestIsMemberFalse() {
	user := suite.createUser()
	org := suite.factories.Organisation.Create()
	suite.NoError(suite.repo.Create(org))

	isMember, err := suite.repo.IsMember(org.ID, user.ID)

	suite.NoError(err)
	suite.False(isMember)
}

// Run the test suite
func TestOrganisationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganisationRepositoryTestSuite))
}
