//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"equiplend/internal/pkg/errs"
	"equiplend/internal/pkg/jwt"
	"equiplend/internal/pkg/password"
	"equiplend/internal/usecase/commands"
	"equiplend/internal/usecase/shared"
	"equiplend/tests/common/builder"
	commandsmock "equiplend/tests/mock/commands"
	sharedmock "equiplend/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthCommands_Login(t *testing.T) {
	newFixture := func(t *testing.T) (*sharedmock.MockUnitOfWork, *commandsmock.MockCredentialReader, commands.AuthCommands) {
		t.Helper()
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		creds := commandsmock.NewMockCredentialReader(ctrl)
		tokens := jwt.NewService("test-secret", time.Hour)
		return uow, creds, commands.NewAuthCommands(uow, creds, tokens)
	}

	newCredentials := func(t *testing.T, rawPassword string) *shared.UserCredentials {
		t.Helper()
		hash, err := password.HashPassword(rawPassword)
		require.NoError(t, err)
		return &shared.UserCredentials{
			UserSnapshot: *builder.NewUserSnapshotBuilder().Build(),
			PasswordHash: hash,
		}
	}

	t.Run("正しい資格情報でトークンが発行される", func(t *testing.T) {
		uow, credReader, auth := newFixture(t)
		creds := newCredentials(t, "correct-horse")

		credReader.EXPECT().CredentialsByEmail(gomock.Any(), creds.Email).Return(creds, nil)
		uow.EXPECT().Within(gomock.Any(), gomock.Any()).Return(nil)

		res, err := auth.Login(context.Background(), creds.Email, "correct-horse")
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, creds.ID, res.User.ID)
	})

	t.Run("未知のメールはErrInvalidCredentials", func(t *testing.T) {
		_, credReader, auth := newFixture(t)

		credReader.EXPECT().CredentialsByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, errs.Mark(errs.New("no rows"), errs.ErrUserNotFound))

		_, err := auth.Login(context.Background(), "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("パスワード不一致はErrInvalidCredentials", func(t *testing.T) {
		_, credReader, auth := newFixture(t)
		creds := newCredentials(t, "correct-horse")

		credReader.EXPECT().CredentialsByEmail(gomock.Any(), creds.Email).Return(creds, nil)

		_, err := auth.Login(context.Background(), creds.Email, "wrong-password")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("無効化されたアカウントは拒否される", func(t *testing.T) {
		_, credReader, auth := newFixture(t)
		creds := &shared.UserCredentials{
			UserSnapshot: *builder.NewUserSnapshotBuilder().Inactive().Build(),
		}
		hash, err := password.HashPassword("correct-horse")
		require.NoError(t, err)
		creds.PasswordHash = hash

		credReader.EXPECT().CredentialsByEmail(gomock.Any(), creds.Email).Return(creds, nil)

		_, err = auth.Login(context.Background(), creds.Email, "correct-horse")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("最終ログイン記録の失敗はログインを妨げない", func(t *testing.T) {
		uow, credReader, auth := newFixture(t)
		creds := newCredentials(t, "correct-horse")

		credReader.EXPECT().CredentialsByEmail(gomock.Any(), creds.Email).Return(creds, nil)
		uow.EXPECT().Within(gomock.Any(), gomock.Any()).Return(errs.New("write failed"))

		res, err := auth.Login(context.Background(), creds.Email, "correct-horse")
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
	})
}
