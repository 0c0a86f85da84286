package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vibe-gaming/clan-api/internal/db"
	"github.com/vibe-gaming/clan-api/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const insertClanQuery = `
	INSERT INTO clans (id, name, region, created_at) VALUES (?, ?, ?, ?);
	`

type clanRepository struct {
	db *sqlx.DB
}

func newClanRepository(db *sqlx.DB) *clanRepository {
	return &clanRepository{
		db: db,
	}
}

func (r *clanRepository) Create(ctx context.Context, clan *domain.Clan) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(insertClanQuery),
		clan.ID,
		clan.Name,
		clan.Region,
		clan.CreatedAt,
	)
	if err != nil {
		return insertError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

// CreateBatch inserts clans in order inside one transaction; either every row
// is stored or none is.
func (r *clanRepository) CreateBatch(ctx context.Context, clans []domain.Clan) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx failed: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PreparexContext(ctx, tx.Rebind(insertClanQuery))
	if err != nil {
		return fmt.Errorf("prepare insert clan failed: %w", err)
	}
	defer stmt.Close()

	for i := range clans {
		if _, err := stmt.ExecContext(ctx, clans[i].ID, clans[i].Name, clans[i].Region, clans[i].CreatedAt); err != nil {
			return insertError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx failed: %w", err)
	}

	return nil
}

func (r *clanRepository) GetAll(ctx context.Context, filter domain.ClanFilter) ([]domain.Clan, error) {
	query := `
	SELECT id, name, region, created_at FROM clans`
	args := []interface{}{}

	if filter.Region != nil {
		query += ` WHERE region = ?`
		args = append(args, *filter.Region)
	}

	switch filter.Sort {
	case domain.SortAsc:
		query += ` ORDER BY created_at ASC, id ASC`
	case domain.SortDesc:
		query += ` ORDER BY created_at DESC, id DESC`
	}

	clans := []domain.Clan{}
	if err := r.db.SelectContext(ctx, &clans, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select from clans failed: %w", err)
	}
	return clans, nil
}

func (r *clanRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Clan, error) {
	const query = `
	SELECT id, name, region, created_at FROM clans WHERE id = ?;
	`
	var clan domain.Clan
	if err := r.db.GetContext(ctx, &clan, r.db.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from clans by id failed: %w", err)
	}
	return &clan, nil
}

func (r *clanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `
	DELETE FROM clans WHERE id = ?;
	`
	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), id)
	if err != nil {
		return fmt.Errorf("delete from clans failed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func insertError(err error) error {
	var mysqlError *mysql.MySQLError
	if errors.As(err, &mysqlError) && mysqlError.Number == db.DuplicateEntry {
		return domain.ErrDuplicateEntry
	}
	return fmt.Errorf("db insert clan: %w", err)
}
