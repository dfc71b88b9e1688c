package client

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/Diana-hub4/Demo-dian-back/internal/owner"
)

//go:generate mockgen -source=client_repo.go -destination=mock/client_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, client *Client) error
	FindAllByOwner(ctx context.Context, userID string) ([]Client, error)
	FindByIDAndOwner(ctx context.Context, userID, id string) (*Client, error)
	FindByTaxIDAndOwner(ctx context.Context, userID, taxID string) (*Client, error)
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, userID, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, client *Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *repository) FindAllByOwner(ctx context.Context, userID string) ([]Client, error) {
	var clients []Client
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		Order("name ASC").
		Find(&clients).Error
	return clients, err
}

func (r *repository) FindByIDAndOwner(ctx context.Context, userID, id string) (*Client, error) {
	var client Client
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *repository) FindByTaxIDAndOwner(ctx context.Context, userID, taxID string) (*Client, error) {
	var client Client
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		First(&client, "tax_id = ?", taxID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *repository) Update(ctx context.Context, client *Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *repository) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		Delete(&Client{}, "id = ?", id).Error
}
