package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

// mysqlDuplicateEntry is MySQL error 1062 (ER_DUP_ENTRY).
const mysqlDuplicateEntry = 1062

const insertUserProfileQuery = `
INSERT INTO users (id, name, email) VALUES (?, ?, ?);
`

const activeSubscriptionQuery = `
SELECT id, user_id, status, price_id, current_period_start, current_period_end
FROM subscriptions
WHERE user_id = ? AND status = 'active'
LIMIT 1;
`

type UserRepository struct {
	db *sqlx.DB
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateProfile maps a duplicate-key conflict to domain.ErrProfileExists so
// callers can tell "already provisioned" apart from genuine failures.
func (r *UserRepository) CreateProfile(ctx context.Context, profile domain.UserProfile) error {
	_, err := r.db.ExecContext(ctx, insertUserProfileQuery, profile.ID, profile.Name, profile.Email)
	if err != nil {
		if isDuplicateKeyError(err) {
			return domain.ErrProfileExists
		}
		return err
	}
	return nil
}

type SubscriptionRepository struct {
	db *sqlx.DB
}

type subscriptionRow struct {
	ID                 string    `db:"id"`
	UserID             string    `db:"user_id"`
	Status             string    `db:"status"`
	PriceID            string    `db:"price_id"`
	CurrentPeriodStart time.Time `db:"current_period_start"`
	CurrentPeriodEnd   time.Time `db:"current_period_end"`
}

var _ ports.SubscriptionRepository = (*SubscriptionRepository)(nil)

func NewSubscriptionRepository(db *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) ActiveForUser(ctx context.Context, userID string) (domain.Subscription, error) {
	var row subscriptionRow
	if err := r.db.GetContext(ctx, &row, activeSubscriptionQuery, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Subscription{}, domain.ErrSubscriptionNotFound
		}
		return domain.Subscription{}, err
	}

	return domain.Subscription{
		ID:                 row.ID,
		UserID:             row.UserID,
		Status:             domain.SubscriptionStatus(row.Status),
		PriceID:            row.PriceID,
		CurrentPeriodStart: row.CurrentPeriodStart,
		CurrentPeriodEnd:   row.CurrentPeriodEnd,
	}, nil
}

func isDuplicateKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
