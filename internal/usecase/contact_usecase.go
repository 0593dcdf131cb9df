package usecase

import (
	"context"
	"fmt"

	"go-talenthub-backend/internal/domain"
	"go-talenthub-backend/pkg/apperror"
)

// ChatListPath is where the client is sent after the contact action resolves
// a conversation.
const ChatListPath = "/chats"

type contactUsecase struct {
	userRepo domain.UserRepository
	chatRepo domain.ChatRepository
}

func NewContactUsecase(userRepo domain.UserRepository, chatRepo domain.ChatRepository) domain.ContactUsecase {
	return &contactUsecase{
		userRepo: userRepo,
		chatRepo: chatRepo,
	}
}

// ContactUser resolves the private conversation between the session user and
// targetUserID, creating it when absent. The get-or-create is atomic in the
// chat repository, so rapid double activation cannot produce two
// conversations.
func (u *contactUsecase) ContactUser(ctx context.Context, targetUserID string) (*domain.ContactResult, error) {
	viewerID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || viewerID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if viewerID == targetUserID {
		return nil, apperror.BadRequest("You cannot start a conversation with yourself")
	}

	// The subject's display name goes into the notification wording.
	target, err := u.userRepo.GetByID(ctx, targetUserID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}

	chat, created, err := u.chatRepo.GetOrCreatePrivateChat(ctx, viewerID, targetUserID)
	if err != nil {
		return nil, err
	}

	notification := domain.Notification{
		Title:       "Conversation opened",
		Description: fmt.Sprintf("Opened your existing conversation with %s.", target.Name),
	}
	if created {
		notification = domain.Notification{
			Title:       "Conversation started",
			Description: fmt.Sprintf("Started a new conversation with %s.", target.Name),
		}
	}

	return &domain.ContactResult{
		Chat:         chat,
		Created:      created,
		RedirectPath: ChatListPath,
		Notification: notification,
	}, nil
}

func (u *contactUsecase) ListChats(ctx context.Context) ([]domain.Chat, error) {
	viewerID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || viewerID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	return u.chatRepo.FetchByParticipant(ctx, viewerID)
}
