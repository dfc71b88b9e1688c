package auth_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/Diana-hub4/Demo-dian-back/internal/auth"
	autherrors "github.com/Diana-hub4/Demo-dian-back/internal/auth/errors"
	"github.com/Diana-hub4/Demo-dian-back/internal/config"
)

type fakeAuthRepository struct {
	withTxFn             func(tx *sql.Tx) auth.Repository
	createFn             func(ctx context.Context, user *auth.User) error
	getByEmailFn         func(ctx context.Context, email string) (*auth.User, error)
	getByIDFn            func(ctx context.Context, id uuid.UUID) (*auth.User, error)
	updatePasswordFn     func(ctx context.Context, userID uuid.UUID, hashed string) error
	createResetTokenFn   func(ctx context.Context, token *auth.PasswordResetToken) error
	getResetTokenFn      func(ctx context.Context, token string) (*auth.PasswordResetToken, error)
	markResetTokenUsedFn func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeAuthRepository) WithTx(tx *sql.Tx) auth.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeAuthRepository) Create(ctx context.Context, user *auth.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return nil
}

func (f *fakeAuthRepository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (f *fakeAuthRepository) GetByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeAuthRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, hashed string) error {
	if f.updatePasswordFn != nil {
		return f.updatePasswordFn(ctx, userID, hashed)
	}
	return nil
}

func (f *fakeAuthRepository) CreateResetToken(ctx context.Context, token *auth.PasswordResetToken) error {
	if f.createResetTokenFn != nil {
		return f.createResetTokenFn(ctx, token)
	}
	return nil
}

func (f *fakeAuthRepository) GetResetToken(ctx context.Context, token string) (*auth.PasswordResetToken, error) {
	if f.getResetTokenFn != nil {
		return f.getResetTokenFn(ctx, token)
	}
	return nil, nil
}

func (f *fakeAuthRepository) MarkResetTokenUsed(ctx context.Context, id uuid.UUID) error {
	if f.markResetTokenUsedFn != nil {
		return f.markResetTokenUsedFn(ctx, id)
	}
	return nil
}

var testJWTConfig = config.JWTConfig{
	Secret:          "test-secret",
	AccessTokenTTL:  15 * time.Minute,
	RefreshTokenTTL: 7 * 24 * time.Hour,
}

func activeUser(t *testing.T, password string) *auth.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return &auth.User{
		ID:       uuid.New(),
		Name:     "Diana",
		LastName: "Sanchez",
		Email:    "diana@example.com",
		Password: string(hashed),
		Role:     "contador",
		IsActive: true,
	}
}

func TestAuthService_Login(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	t.Run("success returns tokens and profile", func(t *testing.T) {
		user := activeUser(t, "secret-password")
		repo := &fakeAuthRepository{
			getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				assert.Equal(t, user.Email, email)
				return user, nil
			},
		}
		svc := auth.NewService(db, repo, testJWTConfig)

		access, refresh, resp, err := svc.Login(ctx, user.Email, "secret-password")

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, user.Email, resp.Email)
		assert.Equal(t, "contador", resp.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		user := activeUser(t, "secret-password")
		repo := &fakeAuthRepository{
			getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return user, nil
			},
		}
		svc := auth.NewService(db, repo, testJWTConfig)

		_, _, _, err := svc.Login(ctx, user.Email, "wrong")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := &fakeAuthRepository{}
		svc := auth.NewService(db, repo, testJWTConfig)

		_, _, _, err := svc.Login(ctx, "nobody@example.com", "whatever")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		user := activeUser(t, "secret-password")
		user.IsActive = false
		repo := &fakeAuthRepository{
			getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return user, nil
			},
		}
		svc := auth.NewService(db, repo, testJWTConfig)

		_, _, _, err := svc.Login(ctx, user.Email, "secret-password")

		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	user := activeUser(t, "secret-password")

	repo := &fakeAuthRepository{
		getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
			return user, nil
		},
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*auth.User, error) {
			assert.Equal(t, user.ID, id)
			return user, nil
		},
	}
	svc := auth.NewService(db, repo, testJWTConfig)

	t.Run("valid refresh token rotates the pair", func(t *testing.T) {
		_, refresh, _, err := svc.Login(ctx, user.Email, "secret-password")
		assert.NoError(t, err)

		newAccess, newRefresh, resp, err := svc.RefreshToken(ctx, refresh)

		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, user.Email, resp.Email)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, _, _, err := svc.RefreshToken(ctx, "not.a.jwt")

		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_Register(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	t.Run("hashes the password and defaults the role", func(t *testing.T) {
		var created *auth.User
		repo := &fakeAuthRepository{
			createFn: func(ctx context.Context, user *auth.User) error {
				created = user
				return nil
			},
		}
		svc := auth.NewService(db, repo, testJWTConfig)

		resp, err := svc.Register(ctx, auth.RegisterRequest{
			Name:     "Diana",
			Email:    "diana@example.com",
			Password: "secret-password",
		})

		assert.NoError(t, err)
		assert.Equal(t, "asistente", resp.Role)
		assert.NotEqual(t, "secret-password", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret-password")))
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := &fakeAuthRepository{
			getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return activeUser(t, "x"), nil
			},
		}
		svc := auth.NewService(db, repo, testJWTConfig)

		_, err := svc.Register(ctx, auth.RegisterRequest{
			Name:     "Diana",
			Email:    "diana@example.com",
			Password: "secret-password",
		})

		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})

	t.Run("concurrent duplicate surfaces as conflict", func(t *testing.T) {
		repo := &fakeAuthRepository{
			createFn: func(ctx context.Context, user *auth.User) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}
			},
		}
		svc := auth.NewService(db, repo, testJWTConfig)

		_, err := svc.Register(ctx, auth.RegisterRequest{
			Name:     "Diana",
			Email:    "diana@example.com",
			Password: "secret-password",
		})

		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})

	t.Run("storage failure is not a conflict", func(t *testing.T) {
		storageErr := errors.New("connection reset")
		repo := &fakeAuthRepository{
			createFn: func(ctx context.Context, user *auth.User) error {
				return storageErr
			},
		}
		svc := auth.NewService(db, repo, testJWTConfig)

		_, err := svc.Register(ctx, auth.RegisterRequest{
			Name:     "Diana",
			Email:    "diana@example.com",
			Password: "secret-password",
		})

		assert.ErrorIs(t, err, storageErr)
		assert.NotErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email is silently accepted", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := &fakeAuthRepository{
			createResetTokenFn: func(ctx context.Context, token *auth.PasswordResetToken) error {
				t.Fatal("no token must be created for an unknown email")
				return nil
			},
		}
		svc := auth.NewService(db, repo, testJWTConfig)

		assert.NoError(t, svc.ForgotPassword(ctx, "nobody@example.com"))
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("known email stores a reset token", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		user := activeUser(t, "secret-password")
		var created *auth.PasswordResetToken
		repo := &fakeAuthRepository{
			getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return user, nil
			},
			createResetTokenFn: func(ctx context.Context, token *auth.PasswordResetToken) error {
				created = token
				return nil
			},
		}
		svc := auth.NewService(db, repo, testJWTConfig)

		assert.NoError(t, svc.ForgotPassword(ctx, user.Email))
		assert.NotNil(t, created)
		assert.Equal(t, user.ID, created.UserID)
		assert.Len(t, created.Token, 64)
		assert.False(t, created.Used)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token updates the password and burns the token", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		user := activeUser(t, "old-password")
		reset := &auth.PasswordResetToken{
			ID:        uuid.New(),
			UserID:    user.ID,
			Token:     "valid-token",
			ExpiresAt: time.Now().Add(time.Hour),
		}

		var newHash string
		var burnedID uuid.UUID
		repo := &fakeAuthRepository{
			getResetTokenFn: func(ctx context.Context, token string) (*auth.PasswordResetToken, error) {
				return reset, nil
			},
			updatePasswordFn: func(ctx context.Context, userID uuid.UUID, hashed string) error {
				assert.Equal(t, user.ID, userID)
				newHash = hashed
				return nil
			},
			markResetTokenUsedFn: func(ctx context.Context, id uuid.UUID) error {
				burnedID = id
				return nil
			},
		}
		svc := auth.NewService(db, repo, testJWTConfig)

		assert.NoError(t, svc.ResetPassword(ctx, "valid-token", "new-password"))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("new-password")))
		assert.Equal(t, reset.ID, burnedID)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("expired token", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := &fakeAuthRepository{
			getResetTokenFn: func(ctx context.Context, token string) (*auth.PasswordResetToken, error) {
				return &auth.PasswordResetToken{
					ID:        uuid.New(),
					ExpiresAt: time.Now().Add(-time.Minute),
				}, nil
			},
		}
		svc := auth.NewService(db, repo, testJWTConfig)

		err = svc.ResetPassword(ctx, "expired", "new-password")

		assert.ErrorIs(t, err, autherrors.ErrResetTokenInvalid)
	})

	t.Run("already used token", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := &fakeAuthRepository{
			getResetTokenFn: func(ctx context.Context, token string) (*auth.PasswordResetToken, error) {
				return &auth.PasswordResetToken{
					ID:        uuid.New(),
					ExpiresAt: time.Now().Add(time.Hour),
					Used:      true,
				}, nil
			},
		}
		svc := auth.NewService(db, repo, testJWTConfig)

		err = svc.ResetPassword(ctx, "used", "new-password")

		assert.ErrorIs(t, err, autherrors.ErrResetTokenInvalid)
	})
}
