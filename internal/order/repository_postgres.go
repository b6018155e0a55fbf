package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, o *Order) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}

	query := `
		INSERT INTO orders (
			id, order_number, firstname, lastname, email, phone,
			address, postal_code, city, total, pdf_url, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		o.ID, o.Number,
		o.Customer.FirstName, o.Customer.LastName, o.Customer.Email, o.Customer.Phone,
		o.Customer.Address, o.Customer.PostalCode, o.Customer.City,
		o.Total, o.PDFUrl, o.CreatedAt,
	)
	return err
}

func (r *PostgresRepository) FindByNumber(ctx context.Context, number string) (*Order, error) {
	query := `
		SELECT id, order_number, firstname, lastname, email, phone,
		       address, postal_code, city, total, pdf_url, created_at
		FROM orders WHERE order_number=$1
	`
	row := r.db.QueryRow(ctx, query, number)

	o := &Order{}
	if err := row.Scan(
		&o.ID, &o.Number,
		&o.Customer.FirstName, &o.Customer.LastName, &o.Customer.Email, &o.Customer.Phone,
		&o.Customer.Address, &o.Customer.PostalCode, &o.Customer.City,
		&o.Total, &o.PDFUrl, &o.CreatedAt,
	); err != nil {
		return nil, errors.New("order not found")
	}
	return o, nil
}
