package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// Columns returns column names of a model in field order.
func Columns(model any) []string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var res []string
	for i := 0; i < t.NumField(); i++ {
		if col := t.Field(i).Tag.Get("db"); col != "" {
			res = append(res, col)
		}
	}
	return res
}

// Values returns field values of a model in the order of Columns.
func Values(model any) []any {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var res []any
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("db") != "" {
			res = append(res, v.Field(i).Interface())
		}
	}
	return res
}

// InsertSQL returns an INSERT statement with positional placeholders
// for all columns of a model.
func InsertSQL(model any, tableName string) string {
	cols := Columns(model)
	ph := make([]string, len(cols))
	for i := range cols {
		ph[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		tableName,
		strings.Join(cols, ", "),
		strings.Join(ph, ", "),
	)
}

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string, extra ...string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}
	for _, e := range extra {
		columns = append(columns, "    "+e)
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// Run DDL methods
func (r Run) TableDDL() string {
	return generateDDL(r, r.TableName())
}

func (r Run) IndexDDL() []string {
	return nil
}

func (r Run) TableName() string {
	return "runs"
}

// Prediction DDL methods
func (p Prediction) TableDDL() string {
	return generateDDL(p, p.TableName(), "PRIMARY KEY (id, run_id)")
}

func (p Prediction) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_predictions_run_id ON predictions(run_id);",
		"CREATE INDEX IF NOT EXISTS idx_predictions_prediction ON predictions(prediction);",
		"CREATE INDEX IF NOT EXISTS idx_predictions_scientific_name ON predictions(scientific_name);",
	}
}

func (p Prediction) TableName() string {
	return "predictions"
}
