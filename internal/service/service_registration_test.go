// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-register/internal/config"
	"github.com/MKhiriev/go-register/internal/crypto"
	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/MKhiriev/go-register/internal/mock"
	"github.com/MKhiriev/go-register/internal/service"
	"github.com/MKhiriev/go-register/internal/store"
	"github.com/MKhiriev/go-register/internal/validators"
	"github.com/MKhiriev/go-register/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type registrationMocks struct {
	connector *mock.MockConnector
	session   *mock.MockSession
	repo      *mock.MockUserRepository
	hasher    *mock.MockPasswordHasher
}

// newTestRegistrationSvc builds the validated registration service over mocks.
func newTestRegistrationSvc(t *testing.T, ctrl *gomock.Controller) (service.RegistrationService, registrationMocks) {
	t.Helper()

	m := registrationMocks{
		connector: mock.NewMockConnector(ctrl),
		session:   mock.NewMockSession(ctrl),
		repo:      mock.NewMockUserRepository(ctrl),
		hasher:    mock.NewMockPasswordHasher(ctrl),
	}
	m.hasher.EXPECT().Name().Return(config.HasherSHA256).AnyTimes()

	inner := service.NewRegistrationService(m.connector, m.hasher, logger.Nop())
	svc := service.NewRegistrationValidationService().Wrap(inner)

	return svc, m
}

// runInTx makes the mocked session execute the transaction body against repo.
func runInTx(repo store.UserRepository) func(ctx context.Context, fn func(context.Context, store.UserRepository) error) error {
	return func(ctx context.Context, fn func(context.Context, store.UserRepository) error) error {
		return fn(ctx, repo)
	}
}

func validRequest() models.RegistrationRequest {
	return models.RegistrationRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"}
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegistrationService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestRegistrationSvc(t, ctrl)
	ctx := context.Background()
	createdAt := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	request := models.RegistrationRequest{Username: "  alice ", Email: "\talice@example.com\n", Password: " secret1 "}

	gomock.InOrder(
		// password is hashed untrimmed
		m.hasher.EXPECT().Hash(" secret1 ").Return("digest", nil),
		m.connector.EXPECT().Connect(gomock.Any()).Return(m.session, nil),
		m.session.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx(m.repo)),
		m.repo.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), "alice", "alice@example.com").Return(false, nil),
		m.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "alice", u.Username)
				assert.Equal(t, "alice@example.com", u.Email)
				assert.Equal(t, "digest", u.PasswordHash)
				u.UserID = 42
				u.CreatedAt = createdAt
				return u, nil
			},
		),
		m.session.EXPECT().Close().Return(nil),
	)

	user, err := svc.Register(ctx, request)
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.UserID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, createdAt, user.CreatedAt)
}

func TestRegistrationService_Register_AlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestRegistrationSvc(t, ctrl)

	m.hasher.EXPECT().Hash(gomock.Any()).Return("digest", nil)
	m.connector.EXPECT().Connect(gomock.Any()).Return(m.session, nil)
	m.session.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx(m.repo))
	m.repo.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), "alice", "alice@example.com").Return(true, nil)
	m.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)
	m.session.EXPECT().Close().Return(nil)

	_, err := svc.Register(context.Background(), validRequest())
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestRegistrationService_Register_LostInsertRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestRegistrationSvc(t, ctrl)

	m.hasher.EXPECT().Hash(gomock.Any()).Return("digest", nil)
	m.connector.EXPECT().Connect(gomock.Any()).Return(m.session, nil)
	m.session.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx(m.repo))
	m.repo.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	m.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)
	m.session.EXPECT().Close().Return(nil)

	_, err := svc.Register(context.Background(), validRequest())
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestRegistrationService_Register_ValidationFailuresSkipStore(t *testing.T) {
	tests := []struct {
		name    string
		request models.RegistrationRequest
		wantErr error
	}{
		{name: "missing username", request: models.RegistrationRequest{Email: "a@b.c", Password: "secret1"}, wantErr: validators.ErrAllFieldsRequired},
		{name: "blank email", request: models.RegistrationRequest{Username: "alice", Email: "   ", Password: "secret1"}, wantErr: validators.ErrAllFieldsRequired},
		{name: "missing password", request: models.RegistrationRequest{Username: "alice", Email: "a@b.c"}, wantErr: validators.ErrAllFieldsRequired},
		{name: "short password", request: models.RegistrationRequest{Username: "alice", Email: "a@b.c", Password: "12345"}, wantErr: validators.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newTestRegistrationSvc(t, ctrl)
			m.hasher.EXPECT().Hash(gomock.Any()).Times(0)
			m.connector.EXPECT().Connect(gomock.Any()).Times(0)

			_, err := svc.Register(context.Background(), tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
		})
	}
}

func TestRegistrationService_Register_HashingFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestRegistrationSvc(t, ctrl)

	m.hasher.EXPECT().Hash(gomock.Any()).Return("", crypto.ErrPasswordTooLong)
	m.connector.EXPECT().Connect(gomock.Any()).Times(0)

	_, err := svc.Register(context.Background(), validRequest())
	assert.ErrorIs(t, err, crypto.ErrPasswordTooLong)
	assert.ErrorIs(t, err, service.ErrHashingPassword)
}

func TestRegistrationService_Register_ConnectFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestRegistrationSvc(t, ctrl)

	m.hasher.EXPECT().Hash(gomock.Any()).Return("digest", nil)
	m.connector.EXPECT().Connect(gomock.Any()).Return(nil, store.ErrConnecting)

	_, err := svc.Register(context.Background(), validRequest())
	assert.ErrorIs(t, err, store.ErrConnecting)
}

func TestRegistrationService_Register_SessionClosedOnStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestRegistrationSvc(t, ctrl)
	errDB := errors.New("db exploded")

	m.hasher.EXPECT().Hash(gomock.Any()).Return("digest", nil)
	m.connector.EXPECT().Connect(gomock.Any()).Return(m.session, nil)
	m.session.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx(m.repo))
	m.repo.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errDB)
	m.session.EXPECT().Close().Return(errors.New("close failed"))

	_, err := svc.Register(context.Background(), validRequest())
	assert.ErrorIs(t, err, errDB)
}

func TestRegistrationService_Register_SessionClosedOnPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestRegistrationSvc(t, ctrl)

	m.hasher.EXPECT().Hash(gomock.Any()).Return("digest", nil)
	m.connector.EXPECT().Connect(gomock.Any()).Return(m.session, nil)
	m.session.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, func(context.Context, store.UserRepository) error) error {
			panic("driver bug")
		},
	)
	m.session.EXPECT().Close().Return(nil)

	assert.Panics(t, func() {
		_, _ = svc.Register(context.Background(), validRequest())
	})
}

// ── NewServices ──────────────────────────────────────────────────────────────

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connector := mock.NewMockConnector(ctrl)

	services, err := service.NewServices(connector, config.App{PasswordHasher: config.HasherArgon2id}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, services.RegistrationService)

	_, err = service.NewServices(connector, config.App{PasswordHasher: "md5"}, logger.Nop())
	assert.ErrorIs(t, err, crypto.ErrUnknownHasher)
}
