package postgres

import (
	"context"
	"errors"
	"time"

	"go-talenthub-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type chatRepo struct {
	db *pgxpool.Pool
}

func NewChatRepository(db *pgxpool.Pool) domain.ChatRepository {
	return &chatRepo{db: db}
}

// normalizePair orders a participant pair so (a, b) and (b, a) map to the
// same conversation row. The chats table has a unique index on
// (user_a, user_b).
func normalizePair(u1, u2 string) (string, string) {
	if u1 > u2 {
		return u2, u1
	}
	return u1, u2
}

// GetOrCreatePrivateChat resolves the conversation for the participant pair
// in a single round trip where possible. The insert races safely: on
// conflict with a concurrent create, the existing row wins and is selected.
func (r *chatRepo) GetOrCreatePrivateChat(ctx context.Context, userID, otherUserID string) (*domain.Chat, bool, error) {
	userA, userB := normalizePair(userID, otherUserID)

	chat := &domain.Chat{
		ID:        uuid.NewString(),
		UserA:     userA,
		UserB:     userB,
		CreatedAt: time.Now(),
	}

	query := `INSERT INTO chats (id, user_a, user_b, created_at)
              VALUES ($1, $2, $3, $4)
              ON CONFLICT (user_a, user_b) DO NOTHING
              RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, chat.ID, chat.UserA, chat.UserB, chat.CreatedAt).
		Scan(&chat.ID, &chat.CreatedAt)
	if err == nil {
		return chat, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	// Conflict: the conversation already exists.
	existing, err := r.FindPrivateChat(ctx, userA, userB)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *chatRepo) FindPrivateChat(ctx context.Context, userID, otherUserID string) (*domain.Chat, error) {
	userA, userB := normalizePair(userID, otherUserID)

	query := `SELECT id, user_a, user_b, created_at FROM chats WHERE user_a = $1 AND user_b = $2`
	var chat domain.Chat
	err := r.db.QueryRow(ctx, query, userA, userB).Scan(
		&chat.ID, &chat.UserA, &chat.UserB, &chat.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &chat, nil
}

func (r *chatRepo) FetchByParticipant(ctx context.Context, userID string) ([]domain.Chat, error) {
	query := `SELECT id, user_a, user_b, created_at FROM chats
              WHERE user_a = $1 OR user_b = $1
              ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chats []domain.Chat
	for rows.Next() {
		var chat domain.Chat
		if err := rows.Scan(&chat.ID, &chat.UserA, &chat.UserB, &chat.CreatedAt); err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}
	return chats, rows.Err()
}
