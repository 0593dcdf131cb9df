package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-talenthub-backend/internal/domain"
	"go-talenthub-backend/internal/usecase"
	"go-talenthub-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) UpdatePhotoURL(ctx context.Context, id string, photoURL string) error {
	return m.Called(ctx, id, photoURL).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) FetchAll(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockChatRepo struct {
	mock.Mock
}

func (m *MockChatRepo) GetOrCreatePrivateChat(ctx context.Context, userID, otherUserID string) (*domain.Chat, bool, error) {
	args := m.Called(ctx, userID, otherUserID)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*domain.Chat), args.Bool(1), args.Error(2)
}
func (m *MockChatRepo) FindPrivateChat(ctx context.Context, userID, otherUserID string) (*domain.Chat, error) {
	args := m.Called(ctx, userID, otherUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chat), args.Error(1)
}
func (m *MockChatRepo) FetchByParticipant(ctx context.Context, userID string) ([]domain.Chat, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Chat), args.Error(1)
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func viewerCtx(userID string) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, userID)
}

func TestFilterJobsByOwner(t *testing.T) {
	jobs := []domain.Job{
		{ID: 1, UserID: "u1"},
		{ID: 2, UserID: "u2"},
		{ID: 3, UserID: "u1"},
	}

	t.Run("Should keep only the owner's postings in source order", func(t *testing.T) {
		filtered := domain.FilterJobsByOwner(jobs, "u1")
		assert.Len(t, filtered, 2)
		assert.Equal(t, int64(1), filtered[0].ID)
		assert.Equal(t, int64(3), filtered[1].ID)
	})

	t.Run("Should return empty non-nil slice for unknown owner", func(t *testing.T) {
		filtered := domain.FilterJobsByOwner(jobs, "u9")
		assert.NotNil(t, filtered)
		assert.Empty(t, filtered)
	})
}

func TestGetProfile(t *testing.T) {
	joined := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	subject := func() *domain.User {
		return &domain.User{
			ID:       "u1",
			Name:     "alice",
			Email:    "alice@example.com",
			JoinedAt: &joined,
		}
	}

	t.Run("Should return ErrNotFound for unknown subject without touching jobs", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewProfileUsecase(userRepo, jobRepo, newValidator())

		userRepo.On("GetByID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

		_, err := uc.GetProfile(context.Background(), "ghost")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		jobRepo.AssertNotCalled(t, "FetchAll", mock.Anything)
	})

	t.Run("Should compose view with placeholders and filtered jobs", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewProfileUsecase(userRepo, jobRepo, newValidator())

		userRepo.On("GetByID", mock.Anything, "u1").Return(subject(), nil)
		jobRepo.On("FetchAll", mock.Anything).Return([]domain.Job{
			{ID: 1, UserID: "u1"},
			{ID: 2, UserID: "u2"},
			{ID: 3, UserID: "u1"},
		}, nil)

		view, err := uc.GetProfile(context.Background(), "u1")
		assert.NoError(t, err)
		assert.Equal(t, "A", view.Initial)
		assert.Equal(t, "This user has not added a bio yet.", view.Bio)
		assert.Equal(t, "No skills listed", view.Skills)
		assert.Equal(t, "01/05/2024", view.JoinedDate)
		assert.Len(t, view.Jobs, 2)
		assert.Equal(t, int64(1), view.Jobs[0].ID)
		assert.Equal(t, int64(3), view.Jobs[1].ID)
	})

	t.Run("Should render provided bio and skills as-is", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewProfileUsecase(userRepo, jobRepo, newValidator())

		bio := "I build backends."
		user := subject()
		user.Bio = &bio
		user.Skills = []string{"Go", "Postgres"}
		user.JoinedAt = nil

		userRepo.On("GetByID", mock.Anything, "u1").Return(user, nil)
		jobRepo.On("FetchAll", mock.Anything).Return([]domain.Job{}, nil)

		view, err := uc.GetProfile(context.Background(), "u1")
		assert.NoError(t, err)
		assert.Equal(t, "I build backends.", view.Bio)
		assert.Equal(t, "Go, Postgres", view.Skills)
		assert.Equal(t, "Date unavailable", view.JoinedDate)
	})

	t.Run("Should expose contact affordance only to other signed-in viewers", func(t *testing.T) {
		cases := []struct {
			name     string
			ctx      context.Context
			expected bool
		}{
			{"anonymous viewer", context.Background(), false},
			{"subject viewing own profile", viewerCtx("u1"), false},
			{"other signed-in viewer", viewerCtx("u2"), true},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				userRepo := new(MockUserRepo)
				jobRepo := new(MockJobRepo)
				uc := usecase.NewProfileUsecase(userRepo, jobRepo, newValidator())

				userRepo.On("GetByID", mock.Anything, "u1").Return(subject(), nil)
				jobRepo.On("FetchAll", mock.Anything).Return([]domain.Job{}, nil)

				view, err := uc.GetProfile(tc.ctx, "u1")
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, view.CanContact)
			})
		}
	})
}

func TestUpdateProfileOwnership(t *testing.T) {
	t.Run("Should fail safely when context user is missing", func(t *testing.T) {
		uc := usecase.NewProfileUsecase(new(MockUserRepo), new(MockJobRepo), newValidator())

		err := uc.UpdateProfile(context.Background(), &domain.User{Name: "Mallory", Email: "m@example.com"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})

	t.Run("Should force the ID from context", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(userRepo, new(MockJobRepo), newValidator())

		ctx := viewerCtx("u1")
		userRepo.On("GetByID", mock.Anything, "u1").Return(&domain.User{ID: "u1", Email: "a@example.com"}, nil)
		userRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, "u1", u.ID)
			assert.Equal(t, "Alice Doe", u.Name)
		})

		err := uc.UpdateProfile(ctx, &domain.User{
			ID:    "hacker_try",
			Name:  "Alice Doe",
			Email: "a@example.com",
		})
		assert.NoError(t, err)
	})
}

func TestContactUser(t *testing.T) {
	alice := &domain.User{ID: "u2", Name: "Alice", Email: "alice@example.com"}

	t.Run("Should fail safely when unauthenticated", func(t *testing.T) {
		chatRepo := new(MockChatRepo)
		uc := usecase.NewContactUsecase(new(MockUserRepo), chatRepo)

		_, err := uc.ContactUser(context.Background(), "u2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
		chatRepo.AssertNotCalled(t, "GetOrCreatePrivateChat", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should refuse self-contact", func(t *testing.T) {
		chatRepo := new(MockChatRepo)
		uc := usecase.NewContactUsecase(new(MockUserRepo), chatRepo)

		_, err := uc.ContactUser(viewerCtx("u1"), "u1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "yourself")
		chatRepo.AssertNotCalled(t, "GetOrCreatePrivateChat", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should fail when the subject does not exist", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		chatRepo := new(MockChatRepo)
		uc := usecase.NewContactUsecase(userRepo, chatRepo)

		userRepo.On("GetByID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

		_, err := uc.ContactUser(viewerCtx("u1"), "ghost")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not found")
		chatRepo.AssertNotCalled(t, "GetOrCreatePrivateChat", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should open the existing conversation without creating", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		chatRepo := new(MockChatRepo)
		uc := usecase.NewContactUsecase(userRepo, chatRepo)

		existing := &domain.Chat{ID: "c1", UserA: "u1", UserB: "u2"}
		userRepo.On("GetByID", mock.Anything, "u2").Return(alice, nil)
		chatRepo.On("GetOrCreatePrivateChat", mock.Anything, "u1", "u2").Return(existing, false, nil)

		result, err := uc.ContactUser(viewerCtx("u1"), "u2")
		assert.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, "c1", result.Chat.ID)
		assert.Equal(t, "/chats", result.RedirectPath)
		assert.Equal(t, "Conversation opened", result.Notification.Title)
		assert.Contains(t, result.Notification.Description, "existing conversation with Alice")
		chatRepo.AssertNumberOfCalls(t, "GetOrCreatePrivateChat", 1)
	})

	t.Run("Should start a new conversation when none exists", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		chatRepo := new(MockChatRepo)
		uc := usecase.NewContactUsecase(userRepo, chatRepo)

		created := &domain.Chat{ID: "c2", UserA: "u1", UserB: "u2"}
		userRepo.On("GetByID", mock.Anything, "u2").Return(alice, nil)
		chatRepo.On("GetOrCreatePrivateChat", mock.Anything, "u1", "u2").Return(created, true, nil)

		result, err := uc.ContactUser(viewerCtx("u1"), "u2")
		assert.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, "/chats", result.RedirectPath)
		assert.Equal(t, "Conversation started", result.Notification.Title)
		assert.Contains(t, result.Notification.Description, "new conversation with Alice")
		chatRepo.AssertNumberOfCalls(t, "GetOrCreatePrivateChat", 1)
	})
}

func TestJobOwnership(t *testing.T) {
	existing := &domain.Job{ID: 7, UserID: "owner", Title: "Old", Status: domain.JobStatusOpen}

	update := &domain.Job{ID: 7, Title: "New title", Description: "d", Status: domain.JobStatusCompleted}

	t.Run("Should reject updates from non-owners", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(7)).Return(existing, nil)

		err := uc.UpdateJob(viewerCtx("intruder"), update)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own job postings")
		jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should let admins modify any posting", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		ctx := context.WithValue(viewerCtx("someone-else"), domain.KeyUserRole, "admin")
		jobRepo.On("GetByID", mock.Anything, int64(7)).Return(existing, nil)
		jobRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil).Run(func(args mock.Arguments) {
			j := args.Get(1).(*domain.Job)
			// Ownership never changes on update
			assert.Equal(t, "owner", j.UserID)
		})

		assert.NoError(t, uc.UpdateJob(ctx, update))
	})

	t.Run("Should reject deletes from non-owners", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(7)).Return(existing, nil)

		err := uc.DeleteJob(viewerCtx("intruder"), 7)
		assert.Error(t, err)
		jobRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestCreateJob(t *testing.T) {
	t.Run("Should default status to open", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil).Run(func(args mock.Arguments) {
			j := args.Get(1).(*domain.Job)
			assert.Equal(t, domain.JobStatusOpen, j.Status)
			assert.Equal(t, "u1", j.UserID)
		})

		err := uc.CreateJob(context.Background(), "u1", &domain.Job{Title: "Build an API"})
		assert.NoError(t, err)
	})

	t.Run("Should reject unknown status", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		err := uc.CreateJob(context.Background(), "u1", &domain.Job{Title: "t", Status: "paused"})
		assert.Error(t, err)
		jobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestEnsureUserExists(t *testing.T) {
	t.Run("Should be a no-op for mirrored users", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo)

		userRepo.On("GetByID", mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

		err := uc.EnsureUserExists(context.Background(), &domain.User{ID: "u1", Email: "a@example.com"})
		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should create new users with defaults", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo)

		userRepo.On("GetByID", mock.Anything, "u1").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, "member", u.Role)
			assert.Equal(t, "alice", u.Name)
			assert.NotNil(t, u.JoinedAt)
		})

		err := uc.EnsureUserExists(context.Background(), &domain.User{ID: "u1", Email: "alice@example.com"})
		assert.NoError(t, err)
	})
}
