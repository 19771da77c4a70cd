package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool   *pgxpool.Pool
	schema Schema
}

// NewRepoPG returns the PostgreSQL repository for the given schema's
// table. Ids come from the table's BIGSERIAL sequence, so they are
// never reused after a delete.
func NewRepoPG(pool *pgxpool.Pool, schema Schema) Repository {
	return &repoPG{pool: pool, schema: schema}
}

func (r *repoPG) columns() string {
	if r.schema.HasLicense {
		return "id, nome, idade, cpf, crm, dob, created_at, updated_at"
	}
	return "id, nome, idade, cpf, dob, created_at, updated_at"
}

func (r *repoPG) scanRow(row pgx.Row) (*Record, error) {
	var rec Record
	var err error
	if r.schema.HasLicense {
		err = row.Scan(&rec.ID, &rec.Nome, &rec.Idade, &rec.CPF, &rec.CRM,
			&rec.DOB.Time, &rec.CreatedAt, &rec.UpdatedAt)
	} else {
		err = row.Scan(&rec.ID, &rec.Nome, &rec.Idade, &rec.CPF,
			&rec.DOB.Time, &rec.CreatedAt, &rec.UpdatedAt)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repoPG) FindAll(ctx context.Context) ([]*Record, error) {
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM %s ORDER BY id`, r.columns(), r.schema.Table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Record
	for rows.Next() {
		rec, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}

func (r *repoPG) FindByID(ctx context.Context, id int64) (*Record, error) {
	return r.scanRow(r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, r.columns(), r.schema.Table), id))
}

func (r *repoPG) FindByField(ctx context.Context, field Field, value string) (*Record, error) {
	if field == FieldCRM && !r.schema.HasLicense {
		return nil, ErrNoRecord
	}
	return r.scanRow(r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, r.columns(), r.schema.Table, field), value))
}

func (r *repoPG) Insert(ctx context.Context, rec *Record) error {
	var row pgx.Row
	if r.schema.HasLicense {
		row = r.pool.QueryRow(ctx, fmt.Sprintf(`
			INSERT INTO %s (nome, idade, cpf, crm, dob)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at`, r.schema.Table),
			rec.Nome, rec.Idade, rec.CPF, rec.CRM, rec.DOB.Time)
	} else {
		row = r.pool.QueryRow(ctx, fmt.Sprintf(`
			INSERT INTO %s (nome, idade, cpf, dob)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at, updated_at`, r.schema.Table),
			rec.Nome, rec.Idade, rec.CPF, rec.DOB.Time)
	}
	return row.Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
}

func (r *repoPG) UpdatePartial(ctx context.Context, id int64, ch Changes) (*Record, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{id}

	add := func(col string, val interface{}) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if ch.Nome != nil {
		add("nome", *ch.Nome)
	}
	if ch.Idade != nil {
		add("idade", *ch.Idade)
	}
	if ch.CPF != nil {
		add("cpf", *ch.CPF)
	}
	if ch.CRM != nil && r.schema.HasLicense {
		add("crm", *ch.CRM)
	}
	if ch.DOB != nil {
		add("dob", ch.DOB.Time)
	}

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $1 RETURNING %s`,
		r.schema.Table, strings.Join(sets, ", "), r.columns())
	return r.scanRow(r.pool.QueryRow(ctx, query, args...))
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.schema.Table), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRecord
	}
	return nil
}

// IsUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation, the storage-level backstop behind the
// service's uniqueness pre-checks.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
