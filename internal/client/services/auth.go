// Package services contains application services for the PlantVision CLI.
// This file defines the authentication service: register, login, guest
// sign-in, resuming a stored session and logout.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/plantvision/internal/api"
	"github.com/dmitrijs2005/plantvision/internal/client/client"
	"github.com/dmitrijs2005/plantvision/internal/client/repositories/history"
	"github.com/dmitrijs2005/plantvision/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/plantvision/internal/dbx"
)

// User is the signed-in account as the CLI shows it.
type User struct {
	ID          string
	DisplayName string
	Anonymous   bool
}

// AuthService defines authentication operations for the CLI.
//
// Resume returns (nil, nil) when no session is stored locally.
type AuthService interface {
	Register(ctx context.Context, email, password, displayName string) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	Guest(ctx context.Context) (*User, error)
	Resume(ctx context.Context) (*User, error)
	LastUser(ctx context.Context) (*User, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
}

// NewAuthService constructs an AuthService bound to the given API client
// and local database. Refresh tokens rotated by the client are written
// back to the database.
func NewAuthService(c client.Client, db *sql.DB) AuthService {
	s := &authService{client: c, db: db}
	c.OnTokensRefreshed(func(refreshToken string) {
		_ = metadata.NewSQLiteRepository(db).Set(context.Background(), metadata.KeyRefreshToken, refreshToken)
	})
	return s
}

func (a *authService) signedIn(ctx context.Context, resp *api.AuthResponse) (*User, error) {
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		prev, _, err := repo.Get(ctx, metadata.KeyUserID)
		if err != nil {
			return err
		}
		// the cache belongs to one account
		if prev != resp.UserID {
			if err := history.NewSQLiteRepository(tx).Clear(ctx); err != nil {
				return err
			}
		}

		return repo.SetMany(ctx, map[string]string{
			metadata.KeyUserID:       resp.UserID,
			metadata.KeyDisplayName:  resp.DisplayName,
			metadata.KeyAnonymous:    strconv.FormatBool(resp.Anonymous),
			metadata.KeyRefreshToken: resp.RefreshToken,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return &User{ID: resp.UserID, DisplayName: resp.DisplayName, Anonymous: resp.Anonymous}, nil
}

func (a *authService) Register(ctx context.Context, email, password, displayName string) (*User, error) {
	resp, err := a.client.Register(ctx, email, password, displayName)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	return a.signedIn(ctx, resp)
}

func (a *authService) Login(ctx context.Context, email, password string) (*User, error) {
	resp, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	return a.signedIn(ctx, resp)
}

func (a *authService) Guest(ctx context.Context) (*User, error) {
	resp, err := a.client.SignInAnonymously(ctx)
	if err != nil {
		return nil, fmt.Errorf("guest sign-in error: %w", err)
	}
	return a.signedIn(ctx, resp)
}

// Resume exchanges the stored refresh token for a new pair. A token the
// server rejects is forgotten; an unreachable server leaves it in place.
func (a *authService) Resume(ctx context.Context) (*User, error) {
	repo := metadata.NewSQLiteRepository(a.db)

	token, ok, err := repo.Get(ctx, metadata.KeyRefreshToken)
	if err != nil {
		return nil, err
	}
	if !ok || token == "" {
		return nil, nil
	}

	resp, err := a.client.Resume(ctx, token)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			_ = repo.Delete(ctx, metadata.KeyRefreshToken)
		}
		return nil, fmt.Errorf("resume error: %w", err)
	}
	return a.signedIn(ctx, resp)
}

// LastUser returns the account whose data is cached locally, or nil.
func (a *authService) LastUser(ctx context.Context) (*User, error) {
	values := make(map[string]string, 3)
	repo := metadata.NewSQLiteRepository(a.db)
	for _, key := range []string{metadata.KeyUserID, metadata.KeyDisplayName, metadata.KeyAnonymous} {
		v, _, err := repo.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		values[key] = v
	}
	if values[metadata.KeyUserID] == "" {
		return nil, nil
	}
	anonymous, _ := strconv.ParseBool(values[metadata.KeyAnonymous])
	return &User{
		ID:          values[metadata.KeyUserID],
		DisplayName: values[metadata.KeyDisplayName],
		Anonymous:   anonymous,
	}, nil
}

// Logout forgets the tokens and wipes everything cached locally.
func (a *authService) Logout(ctx context.Context) error {
	a.client.Forget()
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := history.NewSQLiteRepository(tx).Clear(ctx); err != nil {
			return err
		}
		return metadata.NewSQLiteRepository(tx).Clear(ctx)
	})
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
