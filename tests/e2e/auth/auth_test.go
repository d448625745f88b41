//go:build e2e

package auth_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"equiplend/internal/domain/user"
	"equiplend/internal/handler/dto/request"
	"equiplend/tests/common/authtest"
	"equiplend/tests/common/dbtest"
	"equiplend/tests/common/httptest"
	"equiplend/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL = "/api/auth/login"
	meURL    = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "staff@example.com", string(user.RoleStaff))
	dbtest.CreateTestUser(s.T(), s.DB, "member@example.com", string(user.RoleMember))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleMember))

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "正常なログイン",
			email:          "member@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "間違ったパスワード",
			email:          "member@example.com",
			password:       "wrong-password",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "無効化されたアカウント",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var body struct {
					AccessToken string `json:"access_token"`
					User        struct {
						Email string `json:"email"`
					} `json:"user"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				require.NotEmpty(t, body.AccessToken)
				require.Equal(t, tt.email, body.User.Email)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("トークンで自分の情報を取得できる", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "staff@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, "staff@example.com", body.Email)
		require.Equal(t, "staff", body.Role)
	})

	s.Run("トークンなしは401", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
