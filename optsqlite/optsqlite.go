// Package optsqlite maps nullable SQLite parameters and columns to option.Option
// for zombiezen.com/go/sqlite connections.
//
// NULL is None in both directions.
package optsqlite

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/pouriyajamshidi/option"
	"zombiezen.com/go/sqlite"
)

// TimeFormat is the text layout used for time.Time parameters.
const TimeFormat = time.RFC3339Nano

// ErrUnsupportedType is returned by Bind for values SQLite has no storage class for.
var ErrUnsupportedType = errors.New("unsupported type")

// Bind binds o to the 1-based parameter param of stmt.
// None, and Some of a nil pointer, bind NULL.
func Bind[A any](stmt *sqlite.Stmt, param int, o option.Option[A]) error {
	v, ok := o.Unwrap()
	if !ok {
		stmt.BindNull(param)
		return nil
	}

	if err := bindValue(stmt, param, reflect.ValueOf(&v).Elem()); err != nil {
		return fmt.Errorf("bind parameter %d: %w", param, err)
	}

	return nil
}

func bindValue(stmt *sqlite.Stmt, param int, v reflect.Value) error {
	if t, ok := v.Interface().(time.Time); ok {
		stmt.BindText(param, t.Format(TimeFormat))
		return nil
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			stmt.BindNull(param)
			return nil
		}
		return bindValue(stmt, param, v.Elem())
	case reflect.Bool:
		stmt.BindBool(param, v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		stmt.BindInt64(param, v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > 1<<63-1 {
			return fmt.Errorf("%d overflows INTEGER", u)
		}
		stmt.BindInt64(param, int64(u))
	case reflect.Float32, reflect.Float64:
		stmt.BindFloat(param, v.Float())
	case reflect.String:
		stmt.BindText(param, v.String())
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.Uint8 {
			return fmt.Errorf("%s: %w", v.Type(), ErrUnsupportedType)
		}
		if v.IsNil() {
			stmt.BindNull(param)
			return nil
		}
		stmt.BindBytes(param, v.Bytes())
	default:
		return fmt.Errorf("%s: %w", v.Type(), ErrUnsupportedType)
	}

	return nil
}

// Arg returns the value held by o, or nil for None.
// Use it to pass options through sqlitex.ExecOptions.Args.
// Like Bind, it dereferences pointers, and nil pointers and nil byte slices are NULL.
func Arg[A any](o option.Option[A]) any {
	v, ok := o.Unwrap()
	if !ok {
		return nil
	}

	return argValue(reflect.ValueOf(&v).Elem())
}

func argValue(v reflect.Value) any {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	if v.Kind() == reflect.Slice && v.IsNil() {
		return nil
	}

	x := v.Interface()
	if t, ok := x.(time.Time); ok {
		return t.Format(TimeFormat)
	}

	return x
}

func isNull(stmt *sqlite.Stmt, col int) bool {
	return col < 0 || col >= stmt.ColumnCount() || stmt.ColumnType(col) == sqlite.TypeNull
}

// ColumnInt64 returns the 0-based column col as an int64, or None if it is NULL.
func ColumnInt64(stmt *sqlite.Stmt, col int) option.Option[int64] {
	if isNull(stmt, col) {
		return option.None[int64]()
	}

	return option.Some(stmt.ColumnInt64(col))
}

// ColumnFloat returns the column as a float64, or None if it is NULL.
func ColumnFloat(stmt *sqlite.Stmt, col int) option.Option[float64] {
	if isNull(stmt, col) {
		return option.None[float64]()
	}

	return option.Some(stmt.ColumnFloat(col))
}

// ColumnText returns the column as a string, or None if it is NULL.
func ColumnText(stmt *sqlite.Stmt, col int) option.Option[string] {
	if isNull(stmt, col) {
		return option.None[string]()
	}

	return option.Some(stmt.ColumnText(col))
}

// ColumnBytes returns a copy of the column's bytes, or None if it is NULL.
func ColumnBytes(stmt *sqlite.Stmt, col int) option.Option[[]byte] {
	if isNull(stmt, col) {
		return option.None[[]byte]()
	}

	buf := make([]byte, stmt.ColumnLen(col))
	stmt.ColumnBytes(col, buf)
	return option.Some(buf)
}

// ColumnBool returns the column as a bool, or None if it is NULL.
func ColumnBool(stmt *sqlite.Stmt, col int) option.Option[bool] {
	return option.Map(ColumnInt64(stmt, col), func(n int64) bool { return n != 0 })
}

// ColumnTime parses the column with TimeFormat.
// NULL and text that does not parse are None.
func ColumnTime(stmt *sqlite.Stmt, col int) option.Option[time.Time] {
	return option.FlatMap(ColumnText(stmt, col), func(s string) option.Option[time.Time] {
		t, err := time.Parse(TimeFormat, s)
		return option.FromOk(t, err == nil)
	})
}

// GetInt64 is ColumnInt64 by column name. Unknown columns are None.
func GetInt64(stmt *sqlite.Stmt, name string) option.Option[int64] {
	return ColumnInt64(stmt, stmt.ColumnIndex(name))
}

// GetFloat is ColumnFloat by column name.
func GetFloat(stmt *sqlite.Stmt, name string) option.Option[float64] {
	return ColumnFloat(stmt, stmt.ColumnIndex(name))
}

// GetText is ColumnText by column name.
func GetText(stmt *sqlite.Stmt, name string) option.Option[string] {
	return ColumnText(stmt, stmt.ColumnIndex(name))
}

// GetBytes is ColumnBytes by column name.
func GetBytes(stmt *sqlite.Stmt, name string) option.Option[[]byte] {
	return ColumnBytes(stmt, stmt.ColumnIndex(name))
}

// GetBool is ColumnBool by column name.
func GetBool(stmt *sqlite.Stmt, name string) option.Option[bool] {
	return ColumnBool(stmt, stmt.ColumnIndex(name))
}

// GetTime is ColumnTime by column name.
func GetTime(stmt *sqlite.Stmt, name string) option.Option[time.Time] {
	return ColumnTime(stmt, stmt.ColumnIndex(name))
}
