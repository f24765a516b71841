package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/TalalMnd/sim_sales_tracker/internal/apperrors"
	portssvc "github.com/TalalMnd/sim_sales_tracker/internal/core/ports/services"
	"github.com/TalalMnd/sim_sales_tracker/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Definition ---

type SessionServiceTestSuite struct {
	suite.Suite
	mockStateRepo *MockStateRepository
	mockAuthRepo  *MockAuthSlotRepository
	stateSvc      portssvc.StateSvcFacade
	service       portssvc.SessionSvcFacade
}

func (suite *SessionServiceTestSuite) SetupTest() {
	ctx := context.Background()
	suite.mockStateRepo = new(MockStateRepository)
	suite.mockAuthRepo = new(MockAuthSlotRepository)

	// No persisted blob: the state manager seeds the default single-user state.
	suite.mockStateRepo.On("Load", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.stateSvc = services.NewStateService(ctx, suite.mockStateRepo)
	suite.service = services.NewSessionService(suite.stateSvc, suite.mockAuthRepo)
}

// --- Login ---

func (suite *SessionServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	suite.mockAuthRepo.On("SaveUserID", ctx, "talal-admin").Return(nil).Once()

	user, err := suite.service.Login(ctx, "talal", "00966")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("talal-admin", user.ID)
	suite.Equal("talal", user.Username)
	suite.mockAuthRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()

	user, err := suite.service.Login(ctx, "talal", "wrong")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)

	// The session must stay Anonymous after a rejected attempt.
	current, err := suite.service.Current(ctx)
	suite.Nil(current)
	suite.ErrorIs(err, apperrors.ErrNoSession)
	suite.mockAuthRepo.AssertNotCalled(suite.T(), "SaveUserID", mock.Anything, mock.Anything)
}

func (suite *SessionServiceTestSuite) TestLogin_UnknownUsername() {
	ctx := context.Background()

	user, err := suite.service.Login(ctx, "ghost", "00966")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *SessionServiceTestSuite) TestLogin_SlotWriteFailureDoesNotFailLogin() {
	ctx := context.Background()
	slotErr := errors.New("read-only filesystem")
	suite.mockAuthRepo.On("SaveUserID", ctx, "talal-admin").Return(slotErr).Once()

	user, err := suite.service.Login(ctx, "talal", "00966")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)

	current, err := suite.service.Current(ctx)
	suite.Require().NoError(err)
	suite.Equal("talal-admin", current.ID)
	suite.mockAuthRepo.AssertExpectations(suite.T())
}

// --- Logout ---

func (suite *SessionServiceTestSuite) TestLogout_ClearsSessionAndSlot() {
	ctx := context.Background()
	suite.mockAuthRepo.On("SaveUserID", ctx, "talal-admin").Return(nil).Once()
	suite.mockAuthRepo.On("Clear", ctx).Return(nil).Once()

	_, err := suite.service.Login(ctx, "talal", "00966")
	suite.Require().NoError(err)

	err = suite.service.Logout(ctx)
	suite.Require().NoError(err)

	current, err := suite.service.Current(ctx)
	suite.Nil(current)
	suite.ErrorIs(err, apperrors.ErrNoSession)
	suite.mockAuthRepo.AssertExpectations(suite.T())
}

// --- Restore ---

func (suite *SessionServiceTestSuite) TestRestore_Success() {
	ctx := context.Background()
	suite.mockAuthRepo.On("LoadUserID", ctx).Return("talal-admin", nil).Once()

	user, err := suite.service.Restore(ctx)

	suite.Require().NoError(err)
	suite.Equal("talal-admin", user.ID)

	current, err := suite.service.Current(ctx)
	suite.Require().NoError(err)
	suite.Equal("talal-admin", current.ID)
	suite.mockAuthRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestRestore_EmptySlot() {
	ctx := context.Background()
	suite.mockAuthRepo.On("LoadUserID", ctx).Return("", apperrors.ErrNotFound).Once()

	user, err := suite.service.Restore(ctx)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNoSession)
}

func (suite *SessionServiceTestSuite) TestRestore_StaleIdentifier() {
	ctx := context.Background()
	suite.mockAuthRepo.On("LoadUserID", ctx).Return("removed-user", nil).Once()

	user, err := suite.service.Restore(ctx)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNoSession)
}

// --- Current ---

func (suite *SessionServiceTestSuite) TestCurrent_ReResolvesAfterStateReplace() {
	ctx := context.Background()
	suite.mockAuthRepo.On("SaveUserID", ctx, "talal-admin").Return(nil).Once()

	_, err := suite.service.Login(ctx, "talal", "00966")
	suite.Require().NoError(err)

	// A pulled blob that drops the user invalidates the session on next read.
	replacement := suite.stateSvc.Snapshot(ctx)
	replacement.Users[0].ID = "someone-else"
	suite.mockStateRepo.On("Save", ctx, mock.AnythingOfType("domain.SystemState")).Return(nil).Once()
	suite.Require().NoError(suite.stateSvc.Replace(ctx, replacement))

	current, err := suite.service.Current(ctx)
	suite.Nil(current)
	suite.ErrorIs(err, apperrors.ErrNoSession)
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
