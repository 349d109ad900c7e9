package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// buildWhere renders the filters as a conjunction over the base product
// table (aliased p). Absent filters contribute nothing.
func buildWhere(f ListFilters) (string, []interface{}) {
	var clauses []string
	var args []interface{}
	n := 1
	if f.NameLike != "" {
		clauses = append(clauses, fmt.Sprintf("p.product_name LIKE $%d", n))
		args = append(args, "%"+f.NameLike+"%")
		n++
	}
	if f.TypeID != nil {
		clauses = append(clauses, fmt.Sprintf("p.type_id = $%d", n))
		args = append(args, *f.TypeID)
		n++
	}
	if f.ColorID != nil {
		clauses = append(clauses, fmt.Sprintf("p.color_id = $%d", n))
		args = append(args, *f.ColorID)
		n++
	}
	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

// List pages over distinct product ids first and only then joins the photo,
// price and inventory tables. Joining before LIMIT/OFFSET would paginate over
// fanned-out rows instead of products.
func (r *postgresRepo) List(ctx context.Context, f ListFilters, limit, offset int) ([]*Product, error) {
	where, args := buildWhere(f)
	n := len(args) + 1
	query := fmt.Sprintf(`
		SELECT p.product_id, p.product_name, p.type_id, p.color_id, p.category_id, p.size, p.mo_number,
		       p.microwave_safe, p.description, p.is_active, p.created_at, p.updated_at,
		       pr.price, ph.photo, i.quantity, i.reorder_level, i.warehouse_id, w.warehouse_name
		FROM (
			SELECT DISTINCT p.id AS product_id, p.product_name, p.type_id, p.color_id, p.category_id,
			       p.size, p.mo_number, p.microwave_safe, p.description, p.is_active, p.created_at, p.updated_at
			FROM product p
			%s
			ORDER BY p.created_at DESC
			LIMIT $%d OFFSET $%d
		) AS p
		LEFT JOIN photo ph ON p.product_id = ph.product_id
		LEFT JOIN price pr ON p.product_id = pr.product_id
		LEFT JOIN inventory i ON p.product_id = i.product_id
		LEFT JOIN warehouse w ON i.warehouse_id = w.id
		ORDER BY p.created_at DESC, p.product_id, ph.created_at`,
		where, n, n+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flat, err := collectRows(rows)
	if err != nil {
		return nil, err
	}
	return foldRows(flat), nil
}

// Count runs the same predicate against the base table only, so join fan-out
// can never inflate the total.
func (r *postgresRepo) Count(ctx context.Context, f ListFilters) (int, error) {
	where, args := buildWhere(f)
	var count int
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT COUNT(DISTINCT p.id) FROM product p %s`, where),
		args...).Scan(&count)
	return count, err
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.product_name, p.type_id, p.color_id, p.category_id, p.size, p.mo_number,
		       p.microwave_safe, p.description, p.is_active, p.created_at, p.updated_at,
		       pr.price, ph.photo, i.quantity, i.reorder_level, i.warehouse_id, w.warehouse_name
		FROM product p
		LEFT JOIN photo ph ON p.id = ph.product_id
		LEFT JOIN price pr ON p.id = pr.product_id
		LEFT JOIN inventory i ON p.id = i.product_id
		LEFT JOIN warehouse w ON i.warehouse_id = w.id
		WHERE p.id = $1
		ORDER BY ph.created_at`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flat, err := collectRows(rows)
	if err != nil {
		return nil, err
	}
	products := foldRows(flat)
	if len(products) == 0 {
		return nil, nil
	}
	return products[0], nil
}

func (r *postgresRepo) CategoryExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM category WHERE id = $1`, id).Scan(&count)
	return count > 0, err
}

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO product
		  (id, product_name, type_id, color_id, category_id, size, mo_number,
		   microwave_safe, description, is_active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NOW(),NOW())`,
		p.ID, p.ProductName, p.TypeID, p.ColorID, p.CategoryID, p.Size, p.MONumber,
		p.MicrowaveSafe, p.Description, p.IsActive)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	if p.Price.Valid {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO price (id, product_id, price, effective_date)
			VALUES ($1,$2,$3,NOW())`,
			uuid.New(), p.ID, p.Price.Decimal)
		if err != nil {
			return fmt.Errorf("insert price: %w", err)
		}
	}

	for _, photo := range p.Photos {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO photo (id, product_id, photo, created_at)
			VALUES ($1,$2,$3,NOW())`,
			uuid.New(), p.ID, photo)
		if err != nil {
			return fmt.Errorf("insert photo: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO inventory (id, product_id, quantity, reorder_level, warehouse_id)
		VALUES ($1,$2,$3,$4,$5)`,
		uuid.New(), p.ID, p.Quantity, p.ReorderLevel, p.WarehouseID)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}

	return tx.Commit()
}

func (r *postgresRepo) Update(ctx context.Context, p *Product, replacePhotos bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE product
		SET product_name=$1, type_id=$2, color_id=$3, category_id=$4, size=$5, mo_number=$6,
		    microwave_safe=$7, description=$8, is_active=$9, updated_at=NOW()
		WHERE id=$10`,
		p.ProductName, p.TypeID, p.ColorID, p.CategoryID, p.Size, p.MONumber,
		p.MicrowaveSafe, p.Description, p.IsActive, p.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	if p.Price.Valid {
		if err := upsertPrice(ctx, tx, p); err != nil {
			return err
		}
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE inventory SET quantity=$1, reorder_level=$2, warehouse_id=$3
		WHERE product_id=$4`,
		p.Quantity, p.ReorderLevel, p.WarehouseID, p.ID)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO inventory (id, product_id, quantity, reorder_level, warehouse_id)
			VALUES ($1,$2,$3,$4,$5)`,
			uuid.New(), p.ID, p.Quantity, p.ReorderLevel, p.WarehouseID)
		if err != nil {
			return fmt.Errorf("insert inventory: %w", err)
		}
	}

	if replacePhotos {
		_, err = tx.ExecContext(ctx, `DELETE FROM photo WHERE product_id=$1`, p.ID)
		if err != nil {
			return fmt.Errorf("delete photos: %w", err)
		}
		for _, photo := range p.Photos {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO photo (id, product_id, photo, created_at)
				VALUES ($1,$2,$3,NOW())`,
				uuid.New(), p.ID, photo)
			if err != nil {
				return fmt.Errorf("insert photo: %w", err)
			}
		}
	}

	return tx.Commit()
}

func upsertPrice(ctx context.Context, tx *sql.Tx, p *Product) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE price SET price=$1, effective_date=NOW() WHERE product_id=$2`,
		p.Price.Decimal, p.ID)
	if err != nil {
		return fmt.Errorf("update price: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO price (id, product_id, price, effective_date)
			VALUES ($1,$2,$3,NOW())`,
			uuid.New(), p.ID, p.Price.Decimal)
		if err != nil {
			return fmt.Errorf("insert price: %w", err)
		}
	}
	return nil
}

// Delete removes children before the parent to satisfy the foreign keys.
func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM photo WHERE product_id=$1`,
		`DELETE FROM price WHERE product_id=$1`,
		`DELETE FROM inventory WHERE product_id=$1`,
		`DELETE FROM product WHERE id=$1`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return fmt.Errorf("delete product %s: %w", id, err)
		}
	}
	return tx.Commit()
}

// ── helpers ──────────────────────────────────────────────────────────────────

func collectRows(rows *sql.Rows) ([]productRow, error) {
	var flat []productRow
	for rows.Next() {
		var row productRow
		if err := rows.Scan(
			&row.ID, &row.ProductName, &row.TypeID, &row.ColorID, &row.CategoryID,
			&row.Size, &row.MONumber, &row.MicrowaveSafe, &row.Description, &row.IsActive,
			&row.CreatedAt, &row.UpdatedAt,
			&row.Price, &row.Photo, &row.Quantity, &row.ReorderLevel,
			&row.WarehouseID, &row.WarehouseName); err != nil {
			return nil, err
		}
		flat = append(flat, row)
	}
	return flat, rows.Err()
}
