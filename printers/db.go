package printers

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/pouriyajamshidi/option"
	"github.com/pouriyajamshidi/option/internal/options"
	"github.com/pouriyajamshidi/option/optsqlite"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const defaultTableName = "options"

const (
	dataTableSchema = `CREATE TABLE IF NOT EXISTS %s (
    id INTEGER PRIMARY KEY,
    timestamp DATETIME NOT NULL,
    label TEXT NOT NULL,
    defined INTEGER NOT NULL, -- 1 for Some, 0 for None
    value TEXT -- JSON encoded value, NULL for None
	);`

	optionSaveSchema = `INSERT INTO %s (timestamp, label, defined, value) VALUES (?, ?, ?, ?);`

	historySchema = `SELECT timestamp, defined, value FROM %s WHERE label = ? ORDER BY id;`
)

// Record is one stored option.
type Record struct {
	Timestamp time.Time
	Label     string
	Defined   bool
	// Value is the JSON encoding of the value, None when the option was empty.
	Value option.Option[string]
}

// DatabasePrinter represents a SQLite database connection for storing options.
type DatabasePrinter struct {
	Conn      *sqlite.Conn
	DbPath    string
	TableName string
	opt       settings
}

type DatabasePrinterOption = options.Option[DatabasePrinter]

func (p *DatabasePrinter) settings() *settings {
	return &p.opt
}

// WithTableName stores records in the given table instead of "options".
func WithTableName(name string) DatabasePrinterOption {
	return func(p *DatabasePrinter) {
		p.TableName = sanitizeTableName(name)
	}
}

// NewDatabasePrinter opens (or creates) the database at dbPath, adding a .db
// extension when missing, and creates the data table.
func NewDatabasePrinter(dbPath string, opts ...DatabasePrinterOption) (*DatabasePrinter, error) {
	filename := addDbExtension(dbPath)

	conn, err := sqlite.OpenConn(filename, sqlite.OpenCreate, sqlite.OpenReadWrite)
	if err != nil {
		return nil, fmt.Errorf("create database %q: %w", filename, err)
	}

	p := &DatabasePrinter{
		Conn:      conn,
		DbPath:    filename,
		TableName: defaultTableName,
		opt:       defaultSettings(),
	}
	options.Apply(p, opts...)

	err = sqlitex.ExecuteTransient(conn, fmt.Sprintf(dataTableSchema, p.TableName), nil)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("create data table %s: %w", p.TableName, err)
	}

	return p, nil
}

func addDbExtension(filename string) string {
	if strings.HasSuffix(filename, ".db") {
		return filename
	}

	return filename + ".db"
}

// sanitizeTableName will return a table name SQLite accepts unquoted:
// anything other than letters, digits and '_' becomes '_'
// and a leading digit gets a '_' prefix
func sanitizeTableName(name string) string {
	sanitized := strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, name)

	if sanitized == "" {
		return defaultTableName
	}

	if r, _ := utf8.DecodeRuneInString(sanitized); unicode.IsDigit(r) {
		sanitized = "_" + sanitized
	}

	return sanitized
}

// saveOption inserts a row for o
func (p *DatabasePrinter) saveOption(label string, o Optional) error {
	value, err := valueJSON(o)
	if err != nil {
		return fmt.Errorf("encode %s: %w", label, err)
	}

	return sqlitex.Execute(
		p.Conn,
		fmt.Sprintf(optionSaveSchema, p.TableName),
		&sqlitex.ExecOptions{Args: []any{
			p.opt.Now().Format(TimeFormat),
			label,
			o.IsDefined(),
			optsqlite.Arg(value),
		}},
	)
}

// PrintOption saves o to the database.
func (p *DatabasePrinter) PrintOption(label string, o Optional) {
	if p.opt.skip(o) {
		return
	}

	if err := p.saveOption(label, o); err != nil {
		p.PrintError("Error while writing %s to the database %q: %s", label, p.DbPath, err)
	}
}

// History returns every record stored under label, oldest first.
func (p *DatabasePrinter) History(label string) ([]Record, error) {
	var records []Record

	err := sqlitex.Execute(p.Conn, fmt.Sprintf(historySchema, p.TableName), &sqlitex.ExecOptions{
		Args: []any{label},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			ts, err := time.ParseInLocation(TimeFormat, stmt.GetText("timestamp"), time.Local)
			if err != nil {
				return fmt.Errorf("parse timestamp: %w", err)
			}

			records = append(records, Record{
				Timestamp: ts,
				Label:     label,
				Defined:   optsqlite.GetBool(stmt, "defined").GetOrZero(),
				Value:     optsqlite.GetText(stmt, "value"),
			})
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("read history of %s: %w", label, err)
	}

	return records, nil
}

// PrintInfo satisfies the "printer" interface but does nothing in this implementation
func (p *DatabasePrinter) PrintInfo(_ string, _ ...any) {}

// PrintError prints an error message to the error writer.
func (p *DatabasePrinter) PrintError(format string, args ...any) {
	fmt.Fprintf(p.opt.Err, format+"\n", args...)
}

// Done closes the database connection.
func (p *DatabasePrinter) Done() error {
	return p.Conn.Close()
}
