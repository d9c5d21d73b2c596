package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/unistep/loyalty-backend/internal/pkg/models"
	"github.com/unistep/loyalty-backend/services/loyalty"
)

const userColumns = `id, branch, gender, first_name, last_name, date_of_birth,
	address, city, country, email, card_number, phone_code, phone_number,
	terms_accepted, sms_promo_enabled, sms_promo_created_at, sms_promo_updated_at,
	email_promo_enabled, email_promo_created_at, email_promo_updated_at,
	created_at, updated_at`

// rowScanner covers both sql.Row and sqlx.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	var smsCreated, smsUpdated, emailCreated, emailUpdated sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Branch,
		&user.Gender,
		&user.FirstName,
		&user.LastName,
		&user.DateOfBirth,
		&user.Address,
		&user.City,
		&user.Country,
		&user.Email,
		&user.CardNumber,
		&user.PhoneCode,
		&user.PhoneNumber,
		&user.TermsAccepted,
		&user.PromoChannels.SMS.Enabled,
		&smsCreated,
		&smsUpdated,
		&user.PromoChannels.Email.Enabled,
		&emailCreated,
		&emailUpdated,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if smsCreated.Valid {
		user.PromoChannels.SMS.CreatedAt = &smsCreated.Time
	}
	if smsUpdated.Valid {
		user.PromoChannels.SMS.UpdatedAt = &smsUpdated.Time
	}
	if emailCreated.Valid {
		user.PromoChannels.Email.CreatedAt = &emailCreated.Time
	}
	if emailUpdated.Valid {
		user.PromoChannels.Email.UpdatedAt = &emailUpdated.Time
	}

	return &user, nil
}

func userParams(user *models.User) map[string]interface{} {
	return map[string]interface{}{
		"id":                     user.ID,
		"branch":                 user.Branch,
		"gender":                 user.Gender,
		"first_name":             user.FirstName,
		"last_name":              user.LastName,
		"date_of_birth":          user.DateOfBirth,
		"address":                user.Address,
		"city":                   user.City,
		"country":                user.Country,
		"email":                  user.Email,
		"card_number":            user.CardNumber,
		"phone_code":             user.PhoneCode,
		"phone_number":           user.PhoneNumber,
		"terms_accepted":         user.TermsAccepted,
		"sms_promo_enabled":      user.PromoChannels.SMS.Enabled,
		"sms_promo_created_at":   user.PromoChannels.SMS.CreatedAt,
		"sms_promo_updated_at":   user.PromoChannels.SMS.UpdatedAt,
		"email_promo_enabled":    user.PromoChannels.Email.Enabled,
		"email_promo_created_at": user.PromoChannels.Email.CreatedAt,
		"email_promo_updated_at": user.PromoChannels.Email.UpdatedAt,
		"created_at":             user.CreatedAt,
		"updated_at":             user.UpdatedAt,
	}
}

// CreateUser inserts a new user record
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (
			id, branch, gender, first_name, last_name, date_of_birth,
			address, city, country, email, card_number, phone_code, phone_number,
			terms_accepted, sms_promo_enabled, sms_promo_created_at, sms_promo_updated_at,
			email_promo_enabled, email_promo_created_at, email_promo_updated_at,
			created_at, updated_at
		) VALUES (
			:id, :branch, :gender, :first_name, :last_name, :date_of_birth,
			:address, :city, :country, :email, :card_number, :phone_code, :phone_number,
			:terms_accepted, :sms_promo_enabled, :sms_promo_created_at, :sms_promo_updated_at,
			:email_promo_enabled, :email_promo_created_at, :email_promo_updated_at,
			:created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, userParams(user)); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UpdateUser overwrites the mutable fields of an existing user record
func (r *UserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			branch = :branch,
			gender = :gender,
			first_name = :first_name,
			last_name = :last_name,
			date_of_birth = :date_of_birth,
			address = :address,
			city = :city,
			country = :country,
			email = :email,
			phone_code = :phone_code,
			phone_number = :phone_number,
			sms_promo_enabled = :sms_promo_enabled,
			sms_promo_created_at = :sms_promo_created_at,
			sms_promo_updated_at = :sms_promo_updated_at,
			email_promo_enabled = :email_promo_enabled,
			email_promo_created_at = :email_promo_created_at,
			email_promo_updated_at = :email_promo_updated_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, userParams(user))
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return loyalty.ErrUserNotFound
	}

	return nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, loyalty.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// ListUsers returns one page of users, newest first, with the total count
func (r *UserRepo) ListUsers(ctx context.Context, page, limit int) ([]models.User, int, error) {
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, userColumns)

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate users: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	return users, total, nil
}

// GetUsersByCreatedRange returns users registered inside [from, to]
func (r *UserRepo) GetUsersByCreatedRange(ctx context.Context, from, to time.Time) ([]models.User, error) {
	return r.getUsersByRange(ctx, "created_at", from, to)
}

// GetUsersByUpdatedRange returns users updated inside [from, to]
func (r *UserRepo) GetUsersByUpdatedRange(ctx context.Context, from, to time.Time) ([]models.User, error) {
	return r.getUsersByRange(ctx, "updated_at", from, to)
}

func (r *UserRepo) getUsersByRange(ctx context.Context, column string, from, to time.Time) ([]models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE %s >= $1 AND %s <= $2
		ORDER BY %s DESC
	`, userColumns, column, column, column)

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query users by %s: %w", column, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}
