package postgres

import (
	"context"
	"errors"
	"fmt"

	"sim-registry/internal/core/domain"
	"sim-registry/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

// BindingRepo implements ports.BindingRepository over the bindings table.
// phone_number is the primary key; national_id carries a secondary index
// for the cap and fraud fan-out queries.
type BindingRepo struct {
	pool Pool
}

// NewBindingRepo creates a new BindingRepo.
func NewBindingRepo(pool Pool) *BindingRepo {
	return &BindingRepo{pool: pool}
}

const bindingColumns = `phone_number, first_name, last_name, email, national_id,
		birth_year, birth_month, birth_day, binding_id,
		activation_year, activation_month, activation_day, created_at, updated_at`

// GetByPhone fetches the binding stored for a phone number.
// Returns (nil, nil) when the number is not registered.
func (r *BindingRepo) GetByPhone(ctx context.Context, phoneNumber string) (*domain.Binding, error) {
	query := `SELECT ` + bindingColumns + ` FROM bindings WHERE phone_number = $1`

	b, err := scanBinding(r.pool.QueryRow(ctx, query, phoneNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get binding by phone: %w", err)
	}
	return b, nil
}

// Create inserts a new binding at key = phone_number.
func (r *BindingRepo) Create(ctx context.Context, b *domain.Binding) error {
	query := `INSERT INTO bindings (` + bindingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.pool.Exec(ctx, query,
		b.PhoneNumber, b.Identity.FirstName, b.Identity.LastName, b.Identity.Email, b.Identity.NationalID,
		b.Identity.DateOfBirth.Year, b.Identity.DateOfBirth.Month, b.Identity.DateOfBirth.Day, b.BindingID.ID,
		b.BindingID.ActivationDate.Year, b.BindingID.ActivationDate.Month, b.BindingID.ActivationDate.Day,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert binding: %w", err)
	}
	return nil
}

// UpdateBindingID rotates only the binding id token. The identity and
// activation date columns are untouched. Updating a missing key is a
// precondition violation and fails as not-registered.
func (r *BindingRepo) UpdateBindingID(ctx context.Context, phoneNumber string, newID string) error {
	query := `UPDATE bindings SET binding_id = $1, updated_at = NOW() WHERE phone_number = $2`

	tag, err := r.pool.Exec(ctx, query, newID, phoneNumber)
	if err != nil {
		return fmt.Errorf("update binding id: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrNotRegistered()
	}
	return nil
}

// ListByNationalID returns every binding registered under a national id.
func (r *BindingRepo) ListByNationalID(ctx context.Context, nationalID string) ([]domain.Binding, error) {
	query := `SELECT ` + bindingColumns + ` FROM bindings WHERE national_id = $1`

	rows, err := r.pool.Query(ctx, query, nationalID)
	if err != nil {
		return nil, fmt.Errorf("list bindings by national id: %w", err)
	}
	defer rows.Close()

	var bindings []domain.Binding
	for rows.Next() {
		b, err := scanBinding(rows)
		if err != nil {
			return nil, fmt.Errorf("scan binding: %w", err)
		}
		bindings = append(bindings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bindings by national id: %w", err)
	}
	return bindings, nil
}

func scanBinding(row pgx.Row) (*domain.Binding, error) {
	b := &domain.Binding{}
	err := row.Scan(
		&b.PhoneNumber, &b.Identity.FirstName, &b.Identity.LastName, &b.Identity.Email, &b.Identity.NationalID,
		&b.Identity.DateOfBirth.Year, &b.Identity.DateOfBirth.Month, &b.Identity.DateOfBirth.Day, &b.BindingID.ID,
		&b.BindingID.ActivationDate.Year, &b.BindingID.ActivationDate.Month, &b.BindingID.ActivationDate.Day,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}
