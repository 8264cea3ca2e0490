package datasource

import (
	"context"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/consulta-ai/consulta-ai/pkg/types"
)

const (
	DRIVER_MYSQL    = "mysql"
	DRIVER_POSTGRES = "postgres"
)

// DataSource is the relational database that generated SQL runs against.
// It is read-side only from the service's point of view; writes are kept
// out by the API-layer keyword denylist.
type DataSource struct {
	db     *sqlx.DB
	driver string
}

type ConnectConfig interface {
	FormatDSN() string
	DriverName() string
}

func MustSetup(cfg ConnectConfig) *DataSource {
	driver := cfg.DriverName()
	if driver == "" {
		driver = DRIVER_MYSQL
	}
	return &DataSource{
		db:     sqlx.MustOpen(driver, cfg.FormatDSN()),
		driver: driver,
	}
}

func (s *DataSource) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *DataSource) Close() error {
	return s.db.Close()
}

// RunQuery executes sql and normalizes the rows into the canonical
// column/value shape right at the ingress, so nothing downstream has to
// care whether the driver produced positional or named values.
func (s *DataSource) RunQuery(ctx context.Context, sql string) (types.ResultSet, error) {
	rows, err := s.db.QueryxContext(ctx, sql)
	if err != nil {
		return types.ResultSet{}, fmt.Errorf("datasource.RunQuery: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return types.ResultSet{}, fmt.Errorf("datasource.RunQuery.Columns: %w", err)
	}

	result := types.ResultSet{Columns: columns}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return types.ResultSet{}, fmt.Errorf("datasource.RunQuery.SliceScan: %w", err)
		}
		for i, v := range values {
			// the mysql driver hands text columns back as []byte
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}

	if err = rows.Err(); err != nil {
		return types.ResultSet{}, fmt.Errorf("datasource.RunQuery.Rows: %w", err)
	}
	return result, nil
}

// ListTables enumerates the tables of the connected schema.
func (s *DataSource) ListTables(ctx context.Context) ([]string, error) {
	var query string
	switch s.driver {
	case DRIVER_POSTGRES:
		query = "SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename"
	default:
		query = "SHOW TABLES"
	}

	result, err := s.RunQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	var tables []string
	for _, row := range result.Rows {
		if len(row) == 0 {
			continue
		}
		if name, ok := row[0].(string); ok {
			tables = append(tables, name)
		}
	}
	return tables, nil
}

// TableDDL returns the CREATE TABLE statement for name, the text trained
// into the knowledge store as a schema fragment.
func (s *DataSource) TableDDL(ctx context.Context, name string) (string, error) {
	if s.driver == DRIVER_POSTGRES {
		return s.postgresDDL(ctx, name)
	}

	result, err := s.RunQuery(ctx, fmt.Sprintf("SHOW CREATE TABLE `%s`", name))
	if err != nil {
		return "", err
	}
	// SHOW CREATE TABLE yields (table name, create statement)
	if len(result.Rows) == 0 || len(result.Rows[0]) < 2 {
		return "", fmt.Errorf("datasource.TableDDL: unexpected result shape for table %s", name)
	}
	ddl, ok := result.Rows[0][1].(string)
	if !ok {
		return "", fmt.Errorf("datasource.TableDDL: non-text DDL for table %s", name)
	}
	return ddl, nil
}

// postgresDDL reconstructs a CREATE TABLE statement from
// information_schema; postgres has no SHOW CREATE TABLE.
func (s *DataSource) postgresDDL(ctx context.Context, name string) (string, error) {
	result, err := s.RunQuery(ctx, fmt.Sprintf(
		`SELECT column_name, data_type, is_nullable FROM information_schema.columns WHERE table_name = '%s' ORDER BY ordinal_position`,
		strings.ReplaceAll(name, "'", "''")))
	if err != nil {
		return "", err
	}
	if len(result.Rows) == 0 {
		return "", fmt.Errorf("datasource.postgresDDL: table %s not found", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", name)
	for i, row := range result.Rows {
		nullable := ""
		if fmt.Sprint(row[2]) == "NO" {
			nullable = " NOT NULL"
		}
		fmt.Fprintf(&b, "  %v %v%s", row[0], row[1], nullable)
		if i < len(result.Rows)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(")")
	return b.String(), nil
}

// DescribeTable returns the column layout used by the table browser.
func (s *DataSource) DescribeTable(ctx context.Context, name string) (types.ResultSet, error) {
	switch s.driver {
	case DRIVER_POSTGRES:
		return s.RunQuery(ctx, fmt.Sprintf(
			`SELECT column_name, data_type, is_nullable, column_default FROM information_schema.columns WHERE table_name = '%s' ORDER BY ordinal_position`,
			strings.ReplaceAll(name, "'", "''")))
	default:
		return s.RunQuery(ctx, fmt.Sprintf("DESCRIBE `%s`", name))
	}
}
