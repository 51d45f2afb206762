package db_test

import (
	"testing"

	"github.com/gnames/gncamtrap/internal/iodb"
	"github.com/gnames/gncamtrap/internal/ioschema"
	"github.com/gnames/gncamtrap/pkg/db"
	"github.com/stretchr/testify/assert"
)

func TestImplementations(t *testing.T) {
	op := iodb.NewPgxOperator()
	assert.Implements(t, (*db.Operator)(nil), op)
	assert.Nil(t, op.Pool())
	assert.Implements(t, (*db.SchemaManager)(nil), ioschema.NewManager(op))
}
