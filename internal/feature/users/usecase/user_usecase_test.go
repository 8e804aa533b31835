package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"account_backend/internal/feature/users/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	CreateFunc            func(ctx context.Context, user *entity.User) error
	FindByEmailFunc       func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc          func(ctx context.Context, id uint) (*entity.User, error)
	UpdatePasswordFunc    func(ctx context.Context, id uint, hash string) error
	UpdateDesignationFunc func(ctx context.Context, id uint, designation string) error
	DeleteFunc            func(ctx context.Context, id uint) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id uint, hash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, hash)
	}
	return nil
}

func (m *mockUserRepository) UpdateDesignation(ctx context.Context, id uint, designation string) error {
	if m.UpdateDesignationFunc != nil {
		return m.UpdateDesignationFunc(ctx, id, designation)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// mockHasher is a fast stand-in for the bcrypt hasher.
type mockHasher struct {
	HashFunc  func(plaintext string) (string, error)
	CheckFunc func(plaintext, hash string) bool
}

func (m *mockHasher) Hash(plaintext string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(plaintext)
	}
	return "hashed:" + plaintext, nil
}

func (m *mockHasher) Check(plaintext, hash string) bool {
	if m.CheckFunc != nil {
		return m.CheckFunc(plaintext, hash)
	}
	return hash == "hashed:"+plaintext
}

// mockTokenManager is a mock implementation of the TokenManager interface.
type mockTokenManager struct {
	IssueFunc  func(userID uint) (string, error)
	VerifyFunc func(tokenString string) (uint, error)
}

func (m *mockTokenManager) Issue(userID uint) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID)
	}
	return "mock-token", nil
}

func (m *mockTokenManager) Verify(tokenString string) (uint, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(tokenString)
	}
	return 0, errors.New("invalid token")
}

func newTestUsecase(repo *mockUserRepository) *userUsecase {
	return NewUserUsecase(repo, &mockHasher{}, &mockTokenManager{})
}

func TestUserUsecase_Register(t *testing.T) {
	t.Run("successful registration hashes the password", func(t *testing.T) {
		var created *entity.User
		repo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				user.ID = 1
				created = user
				return nil
			},
		}

		uc := newTestUsecase(repo)
		user, err := uc.Register(context.Background(), "A", "a@b.com", "p1", "eng")

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint(1), user.ID)
		assert.Equal(t, "A", user.Name)
		assert.Equal(t, "a@b.com", user.Email)
		assert.Equal(t, "eng", user.Designation)
		assert.Equal(t, "hashed:p1", created.Password, "password must be stored hashed")
		assert.NotEqual(t, "p1", created.Password)
	})

	t.Run("duplicate email propagates", func(t *testing.T) {
		repo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrEmailAlreadyExists
			},
		}

		uc := newTestUsecase(repo)
		user, err := uc.Register(context.Background(), "A", "a@b.com", "p1", "eng")

		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
		assert.Nil(t, user)
	})

	t.Run("hash failure aborts before any write", func(t *testing.T) {
		repoCalled := false
		repo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				repoCalled = true
				return nil
			},
		}
		hasher := &mockHasher{
			HashFunc: func(plaintext string) (string, error) {
				return "", errors.New("hash failure")
			},
		}

		uc := NewUserUsecase(repo, hasher, &mockTokenManager{})
		_, err := uc.Register(context.Background(), "A", "a@b.com", "p1", "eng")

		assert.Error(t, err)
		assert.False(t, repoCalled, "repository must not be touched when hashing fails")
	})
}

func TestUserUsecase_Login(t *testing.T) {
	existing := &entity.User{ID: 7, Email: "a@b.com", Password: "hashed:p1"}

	tests := []struct {
		name      string
		findErr   error
		password  string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid credentials yield a token",
			password:  "p1",
			wantToken: "mock-token",
		},
		{
			name:     "wrong password",
			password: "p2",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			findErr:  ErrUserNotFound,
			password: "p1",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{
				FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
					if tt.findErr != nil {
						return nil, tt.findErr
					}
					return existing, nil
				},
			}

			uc := newTestUsecase(repo)
			token, err := uc.Login(context.Background(), "a@b.com", tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}

	t.Run("hash comparison runs even when the user is missing", func(t *testing.T) {
		checkCalled := false
		hasher := &mockHasher{
			CheckFunc: func(plaintext, hash string) bool {
				checkCalled = true
				return false
			},
		}

		uc := NewUserUsecase(&mockUserRepository{}, hasher, &mockTokenManager{})
		_, err := uc.Login(context.Background(), "nobody@b.com", "p1")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.True(t, checkCalled, "timing mitigation requires the comparison to always run")
	})

	t.Run("token issuance failure", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return existing, nil
			},
		}
		tokens := &mockTokenManager{
			IssueFunc: func(userID uint) (string, error) {
				return "", errors.New("signing failure")
			},
		}

		uc := NewUserUsecase(repo, &mockHasher{}, tokens)
		token, err := uc.Login(context.Background(), "a@b.com", "p1")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
	})
}

func TestUserUsecase_ForgotPassword(t *testing.T) {
	t.Run("issues a reset token for the matching user", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: 7, Email: email}, nil
			},
		}
		tokens := &mockTokenManager{
			IssueFunc: func(userID uint) (string, error) {
				assert.Equal(t, uint(7), userID)
				return "reset-token", nil
			},
		}

		uc := NewUserUsecase(repo, &mockHasher{}, tokens)
		token, err := uc.ForgotPassword(context.Background(), "a@b.com")

		require.NoError(t, err)
		assert.Equal(t, "reset-token", token)
	})

	t.Run("unknown email surfaces not found", func(t *testing.T) {
		uc := newTestUsecase(&mockUserRepository{})
		token, err := uc.ForgotPassword(context.Background(), "nobody@b.com")

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Empty(t, token)
	})
}

func TestUserUsecase_ChangePassword(t *testing.T) {
	t.Run("updates the hash for the verified subject", func(t *testing.T) {
		var gotID uint
		var gotHash string
		repo := &mockUserRepository{
			UpdatePasswordFunc: func(ctx context.Context, id uint, hash string) error {
				gotID = id
				gotHash = hash
				return nil
			},
		}
		tokens := &mockTokenManager{
			VerifyFunc: func(tokenString string) (uint, error) {
				return 7, nil
			},
		}

		uc := NewUserUsecase(repo, &mockHasher{}, tokens)
		err := uc.ChangePassword(context.Background(), "valid-token", "p2")

		require.NoError(t, err)
		assert.Equal(t, uint(7), gotID)
		assert.Equal(t, "hashed:p2", gotHash)
	})

	t.Run("token errors propagate unwrapped", func(t *testing.T) {
		tokenErr := errors.New("token has expired")
		tokens := &mockTokenManager{
			VerifyFunc: func(tokenString string) (uint, error) {
				return 0, tokenErr
			},
		}
		repoCalled := false
		repo := &mockUserRepository{
			UpdatePasswordFunc: func(ctx context.Context, id uint, hash string) error {
				repoCalled = true
				return nil
			},
		}

		uc := NewUserUsecase(repo, &mockHasher{}, tokens)
		err := uc.ChangePassword(context.Background(), "stale-token", "p2")

		assert.ErrorIs(t, err, tokenErr)
		assert.False(t, repoCalled, "no persistence work on a rejected token")
	})

	t.Run("deleted subject reports not found", func(t *testing.T) {
		tokens := &mockTokenManager{
			VerifyFunc: func(tokenString string) (uint, error) {
				return 7, nil
			},
		}
		repo := &mockUserRepository{
			UpdatePasswordFunc: func(ctx context.Context, id uint, hash string) error {
				return ErrUserNotFound
			},
		}

		uc := NewUserUsecase(repo, &mockHasher{}, tokens)
		err := uc.ChangePassword(context.Background(), "valid-token", "p2")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserUsecase_UpdateDesignation(t *testing.T) {
	t.Run("passes through to the repository", func(t *testing.T) {
		var gotID uint
		var gotDesignation string
		repo := &mockUserRepository{
			UpdateDesignationFunc: func(ctx context.Context, id uint, designation string) error {
				gotID = id
				gotDesignation = designation
				return nil
			},
		}

		uc := newTestUsecase(repo)
		err := uc.UpdateDesignation(context.Background(), 7, "manager")

		require.NoError(t, err)
		assert.Equal(t, uint(7), gotID)
		assert.Equal(t, "manager", gotDesignation)
	})

	t.Run("no matching row", func(t *testing.T) {
		repo := &mockUserRepository{
			UpdateDesignationFunc: func(ctx context.Context, id uint, designation string) error {
				return ErrUserNotFound
			},
		}

		uc := newTestUsecase(repo)
		err := uc.UpdateDesignation(context.Background(), 99, "manager")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserUsecase_Delete(t *testing.T) {
	t.Run("deletes by id", func(t *testing.T) {
		var gotID uint
		repo := &mockUserRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				gotID = id
				return nil
			},
		}

		uc := newTestUsecase(repo)
		err := uc.Delete(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, uint(7), gotID)
	})

	t.Run("already deleted reports not found", func(t *testing.T) {
		repo := &mockUserRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				return ErrUserNotFound
			},
		}

		uc := newTestUsecase(repo)
		err := uc.Delete(context.Background(), 7)

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserUsecase_GetByID(t *testing.T) {
	t.Run("returns the user", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return &entity.User{ID: id, Name: "A", Email: "a@b.com"}, nil
			},
		}

		uc := newTestUsecase(repo)
		user, err := uc.GetByID(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)
		assert.Equal(t, "A", user.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		uc := newTestUsecase(&mockUserRepository{})
		user, err := uc.GetByID(context.Background(), 99)

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)
	})
}
