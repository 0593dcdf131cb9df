package usecase

import (
	"context"
	"strings"
	"time"
	"unicode"

	"go-talenthub-backend/internal/domain"
	"go-talenthub-backend/pkg/apperror"
	"go-talenthub-backend/pkg/datefmt"
	"go-talenthub-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Display placeholders for profile fields the subject never filled in.
const (
	bioPlaceholder    = "This user has not added a bio yet."
	skillsPlaceholder = "No skills listed"
)

type profileUsecase struct {
	userRepo domain.UserRepository
	jobRepo  domain.JobRepository
	validate *validator.Validate
}

func NewProfileUsecase(userRepo domain.UserRepository, jobRepo domain.JobRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		userRepo: userRepo,
		jobRepo:  jobRepo,
		validate: validate,
	}
}

// GetProfile composes the profile page for subjectID. Absence of the subject
// surfaces as domain.ErrNotFound so the handler can render the fallback view;
// it is an expected outcome, not a failure.
func (u *profileUsecase) GetProfile(ctx context.Context, subjectID string) (*domain.ProfileView, error) {
	user, err := u.userRepo.GetByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	// The jobs collaborator hands over the full ordered collection; the
	// subject's postings are derived per request, never cached.
	jobs, err := u.jobRepo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	// The contact affordance is shown only to signed-in viewers looking at
	// someone else's profile. Viewer identity is optional here.
	viewerID, _ := ctx.Value(domain.KeyUserID).(string)

	return &domain.ProfileView{
		User:       *user,
		Initial:    nameInitial(user.Name),
		Bio:        bioOrPlaceholder(user.Bio),
		Skills:     skillsOrPlaceholder(user.Skills),
		JoinedDate: datefmt.Date(user.JoinedAt),
		Jobs:       domain.FilterJobsByOwner(jobs, subjectID),
		CanContact: viewerID != "" && viewerID != subjectID,
	}, nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, user *domain.User) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}

	// Force the ID to the context user so nobody can update another profile.
	user.ID = ctxUserID

	if err := u.validate.Struct(user); err != nil {
		return apperror.BadRequest(validation.FormatErrors(err))
	}

	existing, err := u.userRepo.GetByID(ctx, ctxUserID)
	if err != nil {
		return err
	}

	existing.Name = user.Name
	existing.Bio = user.Bio
	existing.Skills = user.Skills
	existing.UpdatedAt = time.Now()

	return u.userRepo.Update(ctx, existing)
}

func (u *profileUsecase) UpdatePhoto(ctx context.Context, userID string, photoURL string) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return apperror.Forbidden("You can only update your own photo")
	}
	return u.userRepo.UpdatePhotoURL(ctx, userID, photoURL)
}

// nameInitial returns the uppercased first letter of name, for the fallback
// avatar when no photo is set.
func nameInitial(name string) string {
	for _, r := range strings.TrimSpace(name) {
		return string(unicode.ToUpper(r))
	}
	return "?"
}

func bioOrPlaceholder(bio *string) string {
	if bio == nil || strings.TrimSpace(*bio) == "" {
		return bioPlaceholder
	}
	return *bio
}

// skillsOrPlaceholder treats an empty list and an absent list the same: both
// render the placeholder.
func skillsOrPlaceholder(skills []string) string {
	if len(skills) == 0 {
		return skillsPlaceholder
	}
	return strings.Join(skills, ", ")
}
