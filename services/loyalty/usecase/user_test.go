package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unistep/loyalty-backend/internal/pkg/apexerr"
	"github.com/unistep/loyalty-backend/internal/pkg/models"
	"github.com/unistep/loyalty-backend/services/loyalty"
	"github.com/unistep/loyalty-backend/services/loyalty/mocks"
)

func newUserUsecase(t *testing.T) (*UserUC, *mocks.MockUserRepo, *mocks.MockApexGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mocks.NewMockUserRepo(ctrl)
	apexGW := mocks.NewMockApexGW(ctrl)
	uc := NewUserUC(userRepo, nil, apexGW, nil, testConfig())
	return uc, userRepo, apexGW
}

func validRegisterRequest() *models.RegisterUserRequest {
	return &models.RegisterUserRequest{
		Branch:        "tbilisi",
		Gender:        "female",
		FirstName:     "Nino",
		LastName:      "Beridze",
		DateOfBirth:   "1992-04-15",
		Email:         "nino@example.com",
		CardNumber:    "7000-1234-5678",
		PhoneCode:     "+995",
		PhoneNumber:   "555123456",
		TermsAccepted: true,
		PromoChannels: models.ApexPromoFlags{
			SMS:   models.ApexPromoFlag{Enabled: true},
			Email: models.ApexPromoFlag{Enabled: false},
		},
	}
}

func TestRegisterUser_OKSyncsApexTimestamps(t *testing.T) {
	uc, userRepo, apexGW := newUserUsecase(t)

	apexGW.EXPECT().
		SyncRegister(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, payload *models.ApexRegisterPayload) (*models.ApexResult, error) {
			// Card number reaches Apex normalized
			assert.Equal(t, "700012345678", payload.CardNumber)
			assert.True(t, payload.PromoChannels.SMS.Enabled)

			return &models.ApexResult{
				Status:    models.ApexStatusOK,
				CreatedAt: "2025-03-10T08:30:00Z",
				UpdatedAt: "2025-03-10T08:30:00Z",
				PromoChannels: &models.ApexPromoTimestamps{
					SMS: &models.ApexChannelTimestamps{
						CreatedAt: "2025-03-10T08:30:00Z",
						UpdatedAt: "2025-03-10T08:30:00Z",
					},
				},
			}, nil
		})

	var persisted *models.User
	userRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			persisted = user
			return nil
		})

	user, err := uc.RegisterUser(context.Background(), validRegisterRequest())

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, persisted, user)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", user.ID.String())
	assert.Equal(t, "700012345678", user.CardNumber)

	apexTime := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	assert.True(t, user.CreatedAt.Equal(apexTime), "record timestamps follow Apex")
	assert.True(t, user.UpdatedAt.Equal(apexTime))
	require.NotNil(t, user.PromoChannels.SMS.CreatedAt)
	assert.True(t, user.PromoChannels.SMS.CreatedAt.Equal(apexTime))
	assert.True(t, user.PromoChannels.SMS.Enabled)
	assert.Nil(t, user.PromoChannels.Email.CreatedAt)
}

func TestRegisterUser_OKWithoutTimestampsFallsBackToLocalClock(t *testing.T) {
	uc, userRepo, apexGW := newUserUsecase(t)

	apexGW.EXPECT().
		SyncRegister(gomock.Any(), gomock.Any()).
		Return(&models.ApexResult{Status: models.ApexStatusOK}, nil)
	userRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)

	before := time.Now()
	user, err := uc.RegisterUser(context.Background(), validRegisterRequest())

	require.NoError(t, err)
	assert.False(t, user.CreatedAt.Before(before))
	assert.False(t, user.UpdatedAt.Before(before))
}

func TestRegisterUser_CardNotFound(t *testing.T) {
	uc, _, apexGW := newUserUsecase(t)

	// No CreateUser expectation: a rejected card never persists
	apexGW.EXPECT().
		SyncRegister(gomock.Any(), gomock.Any()).
		Return(&models.ApexResult{Status: models.ApexStatusCardNotFound}, nil)

	user, err := uc.RegisterUser(context.Background(), validRegisterRequest())

	assert.Nil(t, user)
	assert.ErrorIs(t, err, loyalty.ErrCardNotFound)
}

func TestRegisterUser_CardAlreadyUsed(t *testing.T) {
	uc, _, apexGW := newUserUsecase(t)

	apexGW.EXPECT().
		SyncRegister(gomock.Any(), gomock.Any()).
		Return(&models.ApexResult{Status: models.ApexStatusCardAlreadyUsed}, nil)

	user, err := uc.RegisterUser(context.Background(), validRegisterRequest())

	assert.Nil(t, user)
	assert.ErrorIs(t, err, loyalty.ErrCardAlreadyUsed)
}

func TestRegisterUser_UnknownStatusIsRejection(t *testing.T) {
	uc, _, apexGW := newUserUsecase(t)

	apexGW.EXPECT().
		SyncRegister(gomock.Any(), gomock.Any()).
		Return(&models.ApexResult{Status: "MAINTENANCE"}, nil)

	user, err := uc.RegisterUser(context.Background(), validRegisterRequest())

	assert.Nil(t, user)
	assert.ErrorIs(t, err, loyalty.ErrApexRejected)
	assert.Contains(t, err.Error(), "MAINTENANCE")
}

func TestRegisterUser_GatewayFailurePropagatesTagged(t *testing.T) {
	uc, _, apexGW := newUserUsecase(t)

	apexGW.EXPECT().
		SyncRegister(gomock.Any(), gomock.Any()).
		Return(nil, apexerr.New(apexerr.KindTimeout, context.DeadlineExceeded))

	user, err := uc.RegisterUser(context.Background(), validRegisterRequest())

	assert.Nil(t, user)
	assert.Equal(t, apexerr.KindTimeout, apexerr.KindOf(err))
}

func strPtr(s string) *string { return &s }

func TestUpdateUser_ForwardsOnlySubmittedFields(t *testing.T) {
	uc, userRepo, apexGW := newUserUsecase(t)

	existing := &models.User{
		CardNumber:  "700012345678",
		FirstName:   "Nino",
		LastName:    "Beridze",
		City:        "Tbilisi",
		PhoneNumber: "555123456",
	}
	userRepo.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(existing, nil)

	apexGW.EXPECT().
		SyncUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, payload *models.ApexUpdatePayload) (*models.ApexResult, error) {
			assert.Equal(t, "700012345678", payload.CardNumber, "stored card identifies the member in Apex")
			require.NotNil(t, payload.City)
			assert.Equal(t, "Batumi", *payload.City)
			assert.Nil(t, payload.FirstName, "untouched fields stay off the wire")
			assert.Nil(t, payload.PhoneNumber)

			return &models.ApexResult{
				Status:    models.ApexStatusOK,
				UpdatedAt: "2025-03-11T12:00:00Z",
			}, nil
		})

	userRepo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)

	user, err := uc.UpdateUser(context.Background(), "user-1", &models.UpdateUserRequest{
		City: strPtr("Batumi"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Batumi", user.City)
	assert.Equal(t, "Nino", user.FirstName)
	assert.True(t, user.UpdatedAt.Equal(time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC)))
}

func TestUpdateUser_UnknownUser(t *testing.T) {
	uc, userRepo, _ := newUserUsecase(t)

	userRepo.EXPECT().
		GetUserByID(gomock.Any(), "missing").
		Return(nil, loyalty.ErrUserNotFound)

	user, err := uc.UpdateUser(context.Background(), "missing", &models.UpdateUserRequest{})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, loyalty.ErrUserNotFound)
}

func TestUpdateUser_ApexRejectionLeavesRecordUntouched(t *testing.T) {
	uc, userRepo, apexGW := newUserUsecase(t)

	// No UpdateUser expectation: the local record only changes after Apex accepts
	userRepo.EXPECT().
		GetUserByID(gomock.Any(), "user-1").
		Return(&models.User{CardNumber: "700012345678"}, nil)
	apexGW.EXPECT().
		SyncUpdate(gomock.Any(), gomock.Any()).
		Return(&models.ApexResult{Status: "CARD_NOT_FOUND"}, nil)

	user, err := uc.UpdateUser(context.Background(), "user-1", &models.UpdateUserRequest{
		City: strPtr("Batumi"),
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, loyalty.ErrApexRejected)
}

func TestListUsers_Defaults(t *testing.T) {
	uc, userRepo, _ := newUserUsecase(t)

	userRepo.EXPECT().
		ListUsers(gomock.Any(), 1, 20).
		Return([]models.User{{FirstName: "Nino"}}, 41, nil)

	page, err := uc.ListUsers(context.Background(), 0, 0)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, 41, page.TotalUsers)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Users, 1)
}

func TestListUsers_LimitClamped(t *testing.T) {
	uc, userRepo, _ := newUserUsecase(t)

	userRepo.EXPECT().
		ListUsers(gomock.Any(), 2, 100).
		Return(nil, 0, nil)

	page, err := uc.ListUsers(context.Background(), 2, 1000)

	require.NoError(t, err)
	assert.Equal(t, 100, page.Limit)
}

func TestGetUsersByRegistrationDate_WholeDayWindow(t *testing.T) {
	uc, userRepo, _ := newUserUsecase(t)

	userRepo.EXPECT().
		GetUsersByCreatedRange(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, from, to time.Time) ([]models.User, error) {
			assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), from)
			assert.Equal(t, time.Date(2025, 3, 10, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC), to)
			return []models.User{{FirstName: "Nino"}}, nil
		})

	users, err := uc.GetUsersByRegistrationDate(context.Background(), "2025-03-10")

	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestGetUsersByUpdateDate_InvalidDate(t *testing.T) {
	uc, _, _ := newUserUsecase(t)

	users, err := uc.GetUsersByUpdateDate(context.Background(), "10-03-2025")

	assert.Nil(t, users)
	assert.ErrorIs(t, err, loyalty.ErrInvalidDate)
}
