package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"bulletin/config"
	"bulletin/internal/domain/entity"
	domainerrors "bulletin/internal/domain/errors"
	"bulletin/internal/domain/repository"
	"bulletin/internal/errors"
	mockRepo "bulletin/internal/mocks/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test_jwt_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T, users repository.UserRepository) *jwtService {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{JWT: testJWTSecret, Encryption: "enc-secret"},
		Auth:      &config.AuthConfig{TokenTTL: time.Hour},
	}

	svc, err := NewJWTService(JWTServiceParams{
		Config:   cfg,
		Cipher:   newTestCipher(t, cfg.SecretKey.Encryption),
		UserRepo: users,
	})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func testUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        "a@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuuSOMEHASHVALUE",
		RoleID:       uuid.New(),
	}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	ctx := context.Background()
	user := testUser()

	users := mockRepo.NewMockUserRepository(t)
	users.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	svc := newTestJWTService(t, users)

	issued, err := svc.Issue(user.Claim())
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), issued.ExpiresAt, 2*time.Second)

	// The email must not be readable from the token body.
	assert.NotContains(t, issued.Token, user.Email)

	refreshed, err := svc.VerifyAndRefresh(ctx, issued.Token)
	require.NoError(t, err)
	assert.Equal(t, user, refreshed.User)
	assert.NotEqual(t, issued.Token, refreshed.Token)
	assert.Equal(t, time.Hour, svc.TokenTTL())
}

func TestJWTService_IssueIsNonDeterministic(t *testing.T) {
	svc := newTestJWTService(t, mockRepo.NewMockUserRepository(t))
	claim := testUser().Claim()

	first, err := svc.Issue(claim)
	require.NoError(t, err)
	second, err := svc.Issue(claim)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestJWTService_RefreshKeepsEncryptedClaim(t *testing.T) {
	ctx := context.Background()
	user := testUser()

	users := mockRepo.NewMockUserRepository(t)
	users.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	svc := newTestJWTService(t, users)

	issued, err := svc.Issue(user.Claim())
	require.NoError(t, err)
	refreshed, err := svc.VerifyAndRefresh(ctx, issued.Token)
	require.NoError(t, err)

	original, err := svc.parse(issued.Token)
	require.NoError(t, err)
	renewed, err := svc.parse(refreshed.Token)
	require.NoError(t, err)

	assert.Equal(t, original.Data, renewed.Data)
	assert.NotEqual(t, original.ID, renewed.ID)
}

func TestJWTService_RefreshLeavesPriorTokensValid(t *testing.T) {
	ctx := context.Background()
	user := testUser()

	users := mockRepo.NewMockUserRepository(t)
	users.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	svc := newTestJWTService(t, users)

	issued, err := svc.Issue(user.Claim())
	require.NoError(t, err)

	first, err := svc.VerifyAndRefresh(ctx, issued.Token)
	require.NoError(t, err)
	second, err := svc.VerifyAndRefresh(ctx, issued.Token)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
	assert.NotEqual(t, issued.Token, first.Token)
	assert.NotEqual(t, issued.Token, second.Token)

	for name, token := range map[string]string{
		"original":       issued.Token,
		"first refresh":  first.Token,
		"second refresh": second.Token,
	} {
		got, err := svc.VerifyAndRefresh(ctx, token)
		require.NoError(t, err, name)
		assert.Equal(t, user.ID, got.User.ID, name)
	}
}

func TestJWTService_VerifyFailures(t *testing.T) {
	ctx := context.Background()
	user := testUser()

	tests := []struct {
		name       string
		setup      func(t *testing.T, users *mockRepo.MockUserRepository, svc *jwtService) string
		wantErr    error
		wantReason domainerrors.TokenFailureReason
		retryable  bool
	}{
		{
			name: "deleted user",
			setup: func(t *testing.T, users *mockRepo.MockUserRepository, svc *jwtService) string {
				users.EXPECT().FindByID(mock.Anything, user.ID).Return(nil, repository.ErrUserNotFound)
				issued, err := svc.Issue(user.Claim())
				require.NoError(t, err)
				return issued.Token
			},
			wantErr: domainerrors.ErrUnknownIdentity,
		},
		{
			name: "password changed",
			setup: func(t *testing.T, users *mockRepo.MockUserRepository, svc *jwtService) string {
				changed := *user
				changed.PasswordHash = "$2a$10$anotherhashvalueanotherhashvalue"
				users.EXPECT().FindByID(mock.Anything, user.ID).Return(&changed, nil)
				issued, err := svc.Issue(user.Claim())
				require.NoError(t, err)
				return issued.Token
			},
			wantErr: domainerrors.ErrRevokedIdentity,
		},
		{
			name: "email changed",
			setup: func(t *testing.T, users *mockRepo.MockUserRepository, svc *jwtService) string {
				changed := *user
				changed.Email = "b@example.com"
				users.EXPECT().FindByID(mock.Anything, user.ID).Return(&changed, nil)
				issued, err := svc.Issue(user.Claim())
				require.NoError(t, err)
				return issued.Token
			},
			wantErr: domainerrors.ErrRevokedIdentity,
		},
		{
			name: "store unavailable",
			setup: func(t *testing.T, users *mockRepo.MockUserRepository, svc *jwtService) string {
				users.EXPECT().FindByID(mock.Anything, user.ID).Return(nil, errors.New("connection refused"))
				issued, err := svc.Issue(user.Claim())
				require.NoError(t, err)
				return issued.Token
			},
			wantErr:   domainerrors.ErrIdentityLookupFailed,
			retryable: true,
		},
		{
			name: "expired",
			setup: func(t *testing.T, _ *mockRepo.MockUserRepository, svc *jwtService) string {
				issuedAt := time.Now().Add(-2 * time.Hour)
				svc.now = func() time.Time { return issuedAt }
				issued, err := svc.Issue(user.Claim())
				require.NoError(t, err)
				svc.now = time.Now
				return issued.Token
			},
			wantErr:    domainerrors.ErrInvalidToken,
			wantReason: domainerrors.TokenExpired,
		},
		{
			name: "wrong signing secret",
			setup: func(t *testing.T, _ *mockRepo.MockUserRepository, svc *jwtService) string {
				issued, err := svc.Issue(user.Claim())
				require.NoError(t, err)
				other := *svc
				other.secret = []byte("another_secret")
				claims, err := svc.parse(issued.Token)
				require.NoError(t, err)
				forged, err := other.sign(claims.Data)
				require.NoError(t, err)
				return forged.Token
			},
			wantErr:    domainerrors.ErrInvalidToken,
			wantReason: domainerrors.TokenSignatureInvalid,
		},
		{
			name: "tampered payload",
			setup: func(t *testing.T, _ *mockRepo.MockUserRepository, svc *jwtService) string {
				issued, err := svc.Issue(user.Claim())
				require.NoError(t, err)
				parts := strings.Split(issued.Token, ".")
				require.Len(t, parts, 3)
				parts[1] = strings.ToUpper(parts[1][:4]) + parts[1][4:]
				return strings.Join(parts, ".")
			},
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name: "unsigned algorithm",
			setup: func(t *testing.T, _ *mockRepo.MockUserRepository, svc *jwtService) string {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, sessionClaims{
					Data: "whatever",
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
					},
				})
				signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return signed
			},
			wantErr:    domainerrors.ErrInvalidToken,
			wantReason: domainerrors.TokenSignatureInvalid,
		},
		{
			name: "undecryptable data",
			setup: func(t *testing.T, _ *mockRepo.MockUserRepository, svc *jwtService) string {
				issued, err := svc.sign("bm90LWEtcmVhbC1jaXBoZXJ0ZXh0LWF0LWFsbC1yZWFsbHk")
				require.NoError(t, err)
				return issued.Token
			},
			wantErr:    domainerrors.ErrInvalidToken,
			wantReason: domainerrors.TokenUndecryptable,
		},
		{
			name: "garbage",
			setup: func(*testing.T, *mockRepo.MockUserRepository, *jwtService) string {
				return "not-a-token"
			},
			wantErr:    domainerrors.ErrInvalidToken,
			wantReason: domainerrors.TokenMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := mockRepo.NewMockUserRepository(t)
			svc := newTestJWTService(t, users)
			token := tt.setup(t, users, svc)

			refreshed, err := svc.VerifyAndRefresh(ctx, token)
			require.Error(t, err)
			assert.Nil(t, refreshed)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, tt.retryable, domainerrors.IsRetryable(err))

			if tt.wantReason != "" {
				var tokenErr *domainerrors.TokenError
				require.True(t, errors.As(err, &tokenErr))
				assert.Equal(t, tt.wantReason, tokenErr.Reason)
			}
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(JWTServiceParams{Config: &config.Config{}})
	assert.Error(t, err)
}
