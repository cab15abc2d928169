package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/fx"

	"bulletin/config"
	"bulletin/internal/domain/entity"
	domainerrors "bulletin/internal/domain/errors"
	"bulletin/internal/domain/repository"
	"bulletin/internal/domain/service"
	"bulletin/internal/errors"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// sessionClaims is the signed envelope. Data holds the encrypted identity
// claim and is carried unchanged across refreshes.
type sessionClaims struct {
	Data string `json:"data"`
	jwt.RegisteredClaims
}

// JWTServiceParams holds dependencies for the token service.
type JWTServiceParams struct {
	fx.In

	Config   *config.Config
	Cipher   service.PayloadCipher
	UserRepo repository.UserRepository
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret   []byte
	ttl      time.Duration
	cipher   service.PayloadCipher
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(params JWTServiceParams) (service.TokenService, error) {
	if params.Config.SecretKey.JWT == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultTokenTTL
	if params.Config.Auth != nil && params.Config.Auth.TokenTTL > 0 {
		ttl = params.Config.Auth.TokenTTL
	}

	return &jwtService{
		secret:   []byte(params.Config.SecretKey.JWT),
		ttl:      ttl,
		cipher:   params.Cipher,
		userRepo: params.UserRepo,
		now:      time.Now,
	}, nil
}

// Issue encrypts the claim and signs it into a fresh token.
func (s *jwtService) Issue(claim entity.IdentityClaim) (*service.IssuedToken, error) {
	data, err := s.cipher.Encrypt(claim)
	if err != nil {
		return nil, errors.Wrap(err, "encrypt identity claim")
	}

	return s.sign(data)
}

// VerifyAndRefresh checks signature, expiry and the sealed claim against the
// stored user, then re-signs the same encrypted claim with a new expiry.
func (s *jwtService) VerifyAndRefresh(ctx context.Context, token string) (*service.RefreshedToken, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}

	var identity entity.IdentityClaim
	if err := s.cipher.Decrypt(claims.Data, &identity); err != nil {
		return nil, domainerrors.NewTokenError(domainerrors.TokenUndecryptable, err)
	}

	user, err := s.userRepo.FindByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrUnknownIdentity, "user %s", identity.UserID)
		}

		return nil, errors.Wrapf(domainerrors.ErrIdentityLookupFailed, "find user %s: %v", identity.UserID, err)
	}

	if !sameCredential(identity, user) {
		return nil, errors.Wrapf(domainerrors.ErrRevokedIdentity, "user %s", user.ID)
	}

	issued, err := s.sign(claims.Data)
	if err != nil {
		return nil, err
	}

	return &service.RefreshedToken{IssuedToken: *issued, User: user}, nil
}

// TokenTTL returns the configured token lifetime.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}

func (s *jwtService) sign(data string) (*service.IssuedToken, error) {
	now := s.now()
	claims := sessionClaims{
		Data: data,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "sign token")
	}

	return &service.IssuedToken{Token: signed, ExpiresAt: claims.ExpiresAt.Time}, nil
}

func (s *jwtService) parse(token string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, domainerrors.NewTokenError(tokenFailureReason(err), err)
	}

	if claims.Data == "" {
		return nil, domainerrors.NewTokenError(domainerrors.TokenMalformed, errors.New("missing data claim"))
	}

	return claims, nil
}

func tokenFailureReason(err error) domainerrors.TokenFailureReason {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.TokenExpired
	case errors.IsAny(err, jwt.ErrTokenSignatureInvalid, jwt.ErrTokenUnverifiable):
		return domainerrors.TokenSignatureInvalid
	default:
		return domainerrors.TokenMalformed
	}
}

func sameCredential(claim entity.IdentityClaim, user *entity.User) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(claim.Email), []byte(user.Email)) == 1
	hashOK := subtle.ConstantTimeCompare([]byte(claim.PasswordHash), []byte(user.PasswordHash)) == 1

	return emailOK && hashOK
}
