package reference

import (
	"context"
	"database/sql"
	"fmt"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ListCategories(ctx context.Context) ([]*Lookup, error) {
	return r.listLookup(ctx, "category")
}

func (r *postgresRepo) ListTypes(ctx context.Context) ([]*Lookup, error) {
	return r.listLookup(ctx, "type")
}

func (r *postgresRepo) ListColors(ctx context.Context) ([]*Lookup, error) {
	return r.listLookup(ctx, "color")
}

func (r *postgresRepo) ListWarehouses(ctx context.Context) ([]*Lookup, error) {
	return r.listLookup(ctx, "warehouse")
}

// listLookup reads an id+name reference table. The table name comes from the
// fixed set above, never from request input.
func (r *postgresRepo) listLookup(ctx context.Context, table string) ([]*Lookup, error) {
	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT id, name FROM %q ORDER BY name`, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []*Lookup
	for rows.Next() {
		l := &Lookup{}
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}

func (r *postgresRepo) ListMONumbers(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT mo_number FROM product WHERE mo_number <> '' ORDER BY mo_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}
