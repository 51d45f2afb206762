package ioschema

import (
	"fmt"

	"github.com/gnames/gncamtrap/pkg/schema"
)

// collatedColumn is a text column sorted and compared bytewise.
type collatedColumn struct {
	table, column string
}

var collated = []collatedColumn{
	{schema.Prediction{}.TableName(), "prediction"},
	{schema.Prediction{}.TableName(), "scientific_name"},
}

func (c collatedColumn) sql() string {
	return fmt.Sprintf(`ALTER TABLE %s ALTER COLUMN %s TYPE TEXT COLLATE "C"`,
		c.table, c.column)
}
