package v1

import (
	"context"
	"net/http"
	"regexp"

	"github.com/consulta-ai/consulta-ai/app/core"
	"github.com/consulta-ai/consulta-ai/pkg/errors"
	"github.com/consulta-ai/consulta-ai/pkg/i18n"
	"github.com/consulta-ai/consulta-ai/pkg/types"
)

// Only read statements are allowed against the business datasource.
var forbiddenSQLRe = regexp.MustCompile(`(?i)\b(DROP|DELETE|UPDATE|INSERT|ALTER|CREATE|TRUNCATE|GRANT)\b`)

// CheckSQLAllowed rejects statements that could mutate the datasource.
func CheckSQLAllowed(sql string) error {
	if forbiddenSQLRe.MatchString(sql) {
		return errors.New("database.CheckSQLAllowed", i18n.ERROR_SQL_NOT_ALLOWED, nil).Code(http.StatusBadRequest)
	}
	return nil
}

type DatabaseLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewDatabaseLogic(ctx context.Context, core *core.Core) *DatabaseLogic {
	return &DatabaseLogic{
		ctx:  ctx,
		core: core,
	}
}

func (l *DatabaseLogic) Tables() ([]string, error) {
	tables, err := l.core.Datasource().ListTables(l.ctx)
	if err != nil {
		return nil, errors.New("DatabaseLogic.Tables.ListTables", i18n.ERROR_DATASOURCE_UNAVAILABLE, err)
	}
	return tables, nil
}

func (l *DatabaseLogic) Describe(table string) (types.ResultSet, error) {
	desc, err := l.core.Datasource().DescribeTable(l.ctx, table)
	if err != nil {
		return types.ResultSet{}, errors.New("DatabaseLogic.Describe.DescribeTable", i18n.ERROR_DATASOURCE_UNAVAILABLE, err)
	}
	return desc, nil
}

// RunQuery executes a caller supplied read-only statement.
func (l *DatabaseLogic) RunQuery(sql string) (types.ResultSet, error) {
	if err := CheckSQLAllowed(sql); err != nil {
		return types.ResultSet{}, err
	}

	results, err := l.core.Datasource().RunQuery(l.ctx, sql)
	if err != nil {
		return types.ResultSet{}, errors.New("DatabaseLogic.RunQuery", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}
	return results, nil
}
