package db

import (
	"context"

	"github.com/muhdemir/lifehub/internal/nutrition/entity"
)

func (s *DB) GetProductByBarcode(ctx context.Context, barcode string) (_ *entity.Product, err error) {
	ctx, span := s.startSpan(ctx, "GetProductByBarcode")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		SELECT id, barcode, name, brand, calories, protein, carbs, fat, created_at
		FROM products
		WHERE barcode = $1
	`, barcode)

	var p entity.Product
	err = row.Scan(&p.ID, &p.Barcode, &p.Name, &p.Brand, &p.Calories, &p.Protein, &p.Carbs, &p.Fat, &p.CreatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &p, nil
}

func (s *DB) SearchProductsByName(ctx context.Context, query string, limit int32) (_ []entity.Product, err error) {
	ctx, span := s.startSpan(ctx, "SearchProductsByName")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `
		SELECT id, barcode, name, brand, calories, protein, carbs, fat, created_at
		FROM products
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2
	`, query, limit)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var out []entity.Product
	for rows.Next() {
		var p entity.Product
		if err = rows.Scan(&p.ID, &p.Barcode, &p.Name, &p.Brand, &p.Calories, &p.Protein, &p.Carbs, &p.Fat, &p.CreatedAt); err != nil {
			return nil, s.mapError(err)
		}
		out = append(out, p)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return out, nil
}

// CreateProduct inserts a cached product. The cache is write-once: an insert
// hitting an existing barcode maps to a conflict and the caller keeps the
// stored row.
func (s *DB) CreateProduct(ctx context.Context, p entity.Product) (err error) {
	ctx, span := s.startSpan(ctx, "CreateProduct")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO products (id, barcode, name, brand, calories, protein, carbs, fat)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, p.ID, p.Barcode, p.Name, p.Brand, p.Calories, p.Protein, p.Carbs, p.Fat)

	err = s.mapError(err)
	return err
}
