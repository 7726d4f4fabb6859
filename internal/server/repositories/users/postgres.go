package users

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/dbx"
	"github.com/dmitrijs2005/plantvision/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (email, display_name, salt, verifier, is_anonymous)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.DisplayName, user.Salt, user.Verifier, user.IsAnonymous,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, dbx.StoreError("insert user", err)
	}

	return user, nil
}

const selectUser = `
	SELECT id, email, display_name, salt, verifier, is_anonymous, created_at
	FROM users
`

func (r *PostgresRepository) get(ctx context.Context, where string, arg any) (*models.User, error) {
	var (
		u     models.User
		email sql.NullString
	)
	err := r.db.QueryRowContext(ctx, selectUser+where, arg).
		Scan(&u.ID, &email, &u.DisplayName, &u.Salt, &u.Verifier, &u.IsAnonymous, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbx.StoreError("select user", err)
	}
	if email.Valid {
		u.Email = &email.String
	}
	return &u, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.get(ctx, "WHERE email = $1", email)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.get(ctx, "WHERE id = $1", id)
}
