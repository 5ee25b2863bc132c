package connectors

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)

// LegacyShop reads the pre-migration SQL shop database. The catalogue was
// originally a Django application; table names follow its conventions.
type LegacyShop struct {
	db     *sql.DB
	driver string
}

// ParameterRow is one parameter declaration of the legacy schema.
type ParameterRow struct {
	Category string
	Name     string
}

// OpenLegacyShop connects to the legacy database. Supported drivers:
// "postgres" and "mysql".
func OpenLegacyShop(driver, dsn string) (*LegacyShop, error) {
	if driver != "postgres" && driver != "mysql" {
		return nil, fmt.Errorf("unsupported legacy driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("legacy database unreachable: %w", err)
	}
	return &LegacyShop{db: db, driver: driver}, nil
}

func (c *LegacyShop) Close() error {
	return c.db.Close()
}

func (c *LegacyShop) Categories(ctx context.Context) ([]string, error) {
	return c.stringColumn(ctx, "SELECT name FROM catalogue_category ORDER BY name")
}

func (c *LegacyShop) Providers(ctx context.Context) ([]string, error) {
	return c.stringColumn(ctx, "SELECT name FROM stock_provider ORDER BY name")
}

func (c *LegacyShop) Destinations(ctx context.Context) ([]string, error) {
	return c.stringColumn(ctx, "SELECT value FROM catalogue_carbrandmodel ORDER BY value")
}

func (c *LegacyShop) Parameters(ctx context.Context) ([]ParameterRow, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT c.name, p.name
		 FROM catalogue_newparameter p
		 JOIN catalogue_category c ON c.id = p.category_id
		 ORDER BY c.name, p.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var params []ParameterRow
	for rows.Next() {
		var row ParameterRow
		if err := rows.Scan(&row.Category, &row.Name); err != nil {
			return nil, err
		}
		params = append(params, row)
	}
	return params, rows.Err()
}

func (c *LegacyShop) stringColumn(ctx context.Context, query string) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, rows.Err()
}
