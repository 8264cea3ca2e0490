package v1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/consulta-ai/consulta-ai/app/logic/v1"
)

func TestCheckSQLAllowed(t *testing.T) {
	allowed := []string{
		"SELECT * FROM usuarios",
		"SELECT COUNT(*) FROM pedidos WHERE fecha > '2024-01-01'",
		"SELECT updated_at FROM productos",
		"SELECT * FROM creators",
		"WITH ventas AS (SELECT 1) SELECT * FROM ventas",
	}
	for _, sql := range allowed {
		assert.NoError(t, v1.CheckSQLAllowed(sql), sql)
	}

	forbidden := []string{
		"DROP TABLE usuarios",
		"delete from usuarios",
		"UPDATE usuarios SET nombre = 'x'",
		"INSERT INTO usuarios VALUES (1)",
		"ALTER TABLE usuarios ADD COLUMN x INT",
		"CREATE TABLE x (id INT)",
		"TRUNCATE usuarios",
		"SELECT 1; DROP TABLE usuarios",
	}
	for _, sql := range forbidden {
		assert.Error(t, v1.CheckSQLAllowed(sql), sql)
	}
}
