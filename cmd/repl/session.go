package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/bawdo/sqlcraft/database"
	"github.com/bawdo/sqlcraft/dialect"
	"github.com/bawdo/sqlcraft/managers"
	"github.com/bawdo/sqlcraft/nodes"
	"github.com/ergochat/readline"
)

var errNoQuery = errors.New("no query defined (use 'from <table>' first)")

// dmlMode tracks which kind of statement the REPL is currently building.
type dmlMode int

const (
	modeSelect dmlMode = iota
	modeInsert
	modeUpdate
	modeDelete
)

// Session holds the REPL state: registered tables, the statement being
// built, the active dialect and any enabled plugins.
type Session struct {
	engine      string
	dialect     *dialect.Dialect
	db          *database.DB
	tables      map[string]*nodes.Table
	mode        dmlMode
	query       *managers.SelectManager
	insertQuery *managers.InsertManager
	updateQuery *managers.UpdateManager
	deleteQuery *managers.DeleteManager
	target      *nodes.Table // table unqualified column names resolve against
	plugins     pluginRegistry
	commands    []commandEntry // sorted by prefix length desc
	conn        *dbConn        // nil when disconnected
	lastDSN     string
	rl          *readline.Instance
	out         io.Writer
	errOut      io.Writer // receives renderer warnings
}

// NewSession creates a session for the named engine.
func NewSession(engine string, rl *readline.Instance) *Session {
	s := &Session{
		tables: make(map[string]*nodes.Table),
		rl:     rl,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	s.setEngine(engine)
	s.initCommands()
	return s
}

// setEngine selects a preset dialect; unknown names fall back to postgres.
func (s *Session) setEngine(engine string) {
	d, ok := dialect.Lookup(engine)
	if !ok {
		engine, d = "postgres", dialect.Postgres()
	}
	s.engine = strings.ToLower(engine)
	s.setDialect(d)
}

func (s *Session) setDialect(d *dialect.Dialect) {
	s.dialect = d
	s.db = database.New(d, database.WithLogger(s.logger()))
}

// logger reports unsupported-feature warnings on errOut, without timestamps.
func (s *Session) logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(writerFunc(func(p []byte) (int, error) {
		return s.errOut.Write(p)
	}), &slog.HandlerOptions{
		Level: slog.LevelWarn,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// writerFunc defers the destination lookup so tests can swap errOut.
type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

// ensureTable returns the table if registered, otherwise registers it.
func (s *Session) ensureTable(name string) *nodes.Table {
	if t, ok := s.tables[name]; ok {
		return t
	}
	t := nodes.NewTable(name)
	s.tables[name] = t
	return t
}

// resolveColumn turns "table.col" or a bare name into an attribute.
func (s *Session) resolveColumn(ref string) *nodes.Attribute {
	if table, col, ok := strings.Cut(ref, "."); ok {
		return s.ensureTable(table).Col(col)
	}
	if s.target != nil {
		return s.target.Col(ref)
	}
	return nodes.Column(ref)
}

// parseColumns parses a comma or space separated column list.
func (s *Session) parseColumns(args string) []nodes.Node {
	var cols []nodes.Node
	for _, f := range strings.FieldsFunc(args, func(r rune) bool { return r == ',' || r == ' ' }) {
		switch {
		case f == "*":
			cols = append(cols, nodes.Star())
		case strings.HasSuffix(f, ".*"):
			cols = append(cols, s.ensureTable(strings.TrimSuffix(f, ".*")).Star())
		default:
			cols = append(cols, s.resolveColumn(f))
		}
	}
	return cols
}

// build produces the statement for the current mode with session plugins
// applied to a copy.
func (s *Session) build() (nodes.Node, error) {
	p := s.plugins.pipeline()
	switch s.mode {
	case modeInsert:
		stmt, err := s.insertQuery.Build()
		if err != nil {
			return nil, err
		}
		return p.Insert(stmt)
	case modeUpdate:
		stmt, err := s.updateQuery.Build()
		if err != nil {
			return nil, err
		}
		return p.Update(stmt)
	case modeDelete:
		stmt, err := s.deleteQuery.Build()
		if err != nil {
			return nil, err
		}
		return p.Delete(stmt)
	default:
		if s.query == nil {
			return nil, errNoQuery
		}
		return p.Select(s.query.CloneCore())
	}
}

// render builds the current statement and renders it with the session dialect.
func (s *Session) render() (database.Query, error) {
	root, err := s.build()
	if err != nil {
		return database.Query{}, err
	}
	q := s.db.Render(root)
	if q.Empty() {
		return q, errors.New("statement rendered no SQL")
	}
	return q, nil
}

// Execute parses and runs a single REPL command.
func (s *Session) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	lower := strings.ToLower(line)

	for _, cmd := range s.commands {
		if strings.HasSuffix(cmd.prefix, " ") {
			if strings.HasPrefix(lower, cmd.prefix) {
				return cmd.handler(line[len(cmd.prefix):])
			}
		} else if lower == cmd.prefix {
			return cmd.handler("")
		}
	}

	word := strings.Fields(line)[0]
	return fmt.Errorf("unknown command: %s (type 'help' for commands)", word)
}

// --- Command handlers ---

func (s *Session) cmdEngine(args string) error {
	name := strings.TrimSpace(args)
	if !isValidEngine(strings.ToLower(name)) {
		return fmt.Errorf("unknown engine: %s (use postgres, mysql or sqlite)", name)
	}
	s.setEngine(name)
	_, _ = fmt.Fprintf(s.out, "  Engine set to %s\n", s.engine)
	return nil
}

func (s *Session) cmdDialectFile(args string) error {
	path := strings.TrimSpace(args)
	if path == "" {
		return errors.New("usage: dialect-file <path>")
	}
	d, err := dialect.LoadProfileFile(path)
	if err != nil {
		return err
	}
	s.setDialect(d)
	_, _ = fmt.Fprintf(s.out, "  Dialect %q loaded from %s\n", d.Name(), path)
	return nil
}

func (s *Session) cmdFrom(args string) error {
	name := strings.TrimSpace(args)
	if name == "" {
		return errors.New("usage: from <table>")
	}
	t := s.ensureTable(name)
	s.mode = modeSelect
	s.target = t
	s.query = managers.NewSelectManager(t)
	_, _ = fmt.Fprintf(s.out, "  Query started from %q\n", name)
	return nil
}

func (s *Session) requireSelect() error {
	if s.mode != modeSelect {
		return errors.New("only available while building a SELECT (use 'from <table>')")
	}
	if s.query == nil {
		return errNoQuery
	}
	return nil
}

func (s *Session) cmdSelect(args string) error {
	if err := s.requireSelect(); err != nil {
		return err
	}
	cols := s.parseColumns(args)
	if len(cols) == 0 {
		return errors.New("usage: select <col>[, <col> ...]")
	}
	s.query.Select(cols...)
	return nil
}

func (s *Session) cmdDistinct() error {
	if err := s.requireSelect(); err != nil {
		return err
	}
	s.query.Distinct()
	return nil
}

func (s *Session) cmdWhere(args string) error {
	cond, err := s.parseCondition(args)
	if err != nil {
		return err
	}
	switch s.mode {
	case modeUpdate:
		s.updateQuery.Where(cond)
	case modeDelete:
		s.deleteQuery.Where(cond)
	case modeInsert:
		return errors.New("WHERE is not available on INSERT")
	default:
		if s.query == nil {
			return errNoQuery
		}
		s.query.Where(cond)
	}
	return nil
}

func (s *Session) cmdGroup(args string) error {
	if err := s.requireSelect(); err != nil {
		return err
	}
	cols := s.parseColumns(args)
	if len(cols) == 0 {
		return errors.New("usage: group <col>[, <col> ...]")
	}
	s.query.Group(cols...)
	return nil
}

func (s *Session) cmdOrder(args string) error {
	if err := s.requireSelect(); err != nil {
		return err
	}
	parts := strings.Fields(args)
	if len(parts) == 0 || len(parts) > 2 {
		return errors.New("usage: order <col> [asc|desc]")
	}
	col := s.resolveColumn(parts[0])
	if len(parts) == 1 {
		s.query.Order(col.Asc())
		return nil
	}
	switch strings.ToLower(parts[1]) {
	case "asc":
		s.query.Order(col.Asc())
	case "desc":
		s.query.Order(col.Desc())
	default:
		return fmt.Errorf("unknown direction: %s", parts[1])
	}
	return nil
}

func parseCount(args, usage string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil || n < 0 {
		return 0, errors.New(usage)
	}
	return n, nil
}

func (s *Session) cmdLimit(args string) error {
	if err := s.requireSelect(); err != nil {
		return err
	}
	n, err := parseCount(args, "usage: limit <n>")
	if err != nil {
		return err
	}
	s.query.Limit(n)
	return nil
}

func (s *Session) cmdOffset(args string) error {
	if err := s.requireSelect(); err != nil {
		return err
	}
	n, err := parseCount(args, "usage: offset <n>")
	if err != nil {
		return err
	}
	s.query.Offset(n)
	return nil
}

// cmdJoin handles "join <table> on <a> = <b>".
func (s *Session) cmdJoin(args string, jt nodes.JoinType) error {
	if err := s.requireSelect(); err != nil {
		return err
	}
	lower := strings.ToLower(args)
	idx := strings.Index(lower, " on ")
	if idx < 0 {
		return errors.New("usage: join <table> on <condition>")
	}
	t := s.ensureTable(strings.TrimSpace(args[:idx]))
	cond, err := s.parseCondition(args[idx+4:])
	if err != nil {
		return err
	}
	s.query.Join(t, jt).On(cond)
	return nil
}

func (s *Session) cmdLock(exclusive bool) error {
	if err := s.requireSelect(); err != nil {
		return err
	}
	if exclusive {
		s.query.ForUpdate()
	} else {
		s.query.ForShare()
	}
	return nil
}

func (s *Session) cmdInsert(args string) error {
	name, rest, _ := strings.Cut(strings.TrimSpace(args), " ")
	if name == "" {
		return errors.New("usage: insert into <table> [<col>=<value> ...]")
	}
	t := s.ensureTable(name)
	m := managers.NewInsertManager(t)
	if rest = strings.TrimSpace(rest); rest != "" {
		pairs, err := parseAssignments(rest)
		if err != nil {
			return err
		}
		cols := make([]nodes.Node, len(pairs))
		vals := make([]any, len(pairs))
		for i, p := range pairs {
			cols[i] = t.Col(p.column)
			vals[i] = p.value
		}
		m.Columns(cols...).Values(vals...)
	}
	s.mode, s.target, s.insertQuery = modeInsert, t, m
	_, _ = fmt.Fprintf(s.out, "  INSERT into %q\n", name)
	return nil
}

// cmdValues appends another row to the INSERT being built.
func (s *Session) cmdValues(args string) error {
	if s.mode != modeInsert {
		return errors.New("values requires 'insert into <table>' first")
	}
	var vals []any
	for _, tok := range tokenize(args) {
		if tok == "," || tok == "(" || tok == ")" {
			continue
		}
		if strings.EqualFold(tok, "default") {
			vals = append(vals, nodes.Default())
			continue
		}
		v, err := parseValue(tok)
		if err != nil {
			return err
		}
		vals = append(vals, v)
	}
	if len(vals) == 0 {
		return errors.New("usage: values <v1>, <v2> ...")
	}
	s.insertQuery.Values(vals...)
	return nil
}

func (s *Session) cmdUpdate(args string) error {
	name, rest, _ := strings.Cut(strings.TrimSpace(args), " ")
	if name == "" || strings.TrimSpace(rest) == "" {
		return errors.New("usage: update <table> <col>=<value> ...")
	}
	pairs, err := parseAssignments(rest)
	if err != nil {
		return err
	}
	t := s.ensureTable(name)
	m := managers.NewUpdateManager(t)
	for _, p := range pairs {
		m.Set(t.Col(p.column), p.value)
	}
	s.mode, s.target, s.updateQuery = modeUpdate, t, m
	_, _ = fmt.Fprintf(s.out, "  UPDATE %q\n", name)
	return nil
}

func (s *Session) cmdDelete(args string) error {
	name := strings.TrimSpace(args)
	if name == "" {
		return errors.New("usage: delete from <table>")
	}
	t := s.ensureTable(name)
	s.mode, s.target, s.deleteQuery = modeDelete, t, managers.NewDeleteManager(t)
	_, _ = fmt.Fprintf(s.out, "  DELETE from %q\n", name)
	return nil
}

func (s *Session) cmdReturning(args string) error {
	cols := s.parseColumns(args)
	if len(cols) == 0 {
		return errors.New("usage: returning <col>[, <col> ...]")
	}
	switch s.mode {
	case modeInsert:
		s.insertQuery.Returning(cols...)
	case modeUpdate:
		s.updateQuery.Returning(cols...)
	case modeDelete:
		s.deleteQuery.Returning(cols...)
	default:
		return errors.New("RETURNING is only available on INSERT, UPDATE and DELETE")
	}
	return nil
}

func (s *Session) cmdSQL() error {
	q, err := s.render()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "  %s;\n", q.SQL)
	if len(q.Args) > 0 {
		_, _ = fmt.Fprintf(s.out, "  Binds: %v\n", q.Args)
	}
	return nil
}

func (s *Session) cmdReset() error {
	s.mode = modeSelect
	s.query, s.insertQuery, s.updateQuery, s.deleteQuery = nil, nil, nil, nil
	s.target = nil
	_, _ = fmt.Fprintln(s.out, "  Query reset")
	return nil
}

func (s *Session) cmdTables() error {
	if len(s.tables) == 0 {
		_, _ = fmt.Fprintln(s.out, "  No tables registered")
		return nil
	}
	for _, name := range slices.Sorted(maps.Keys(s.tables)) {
		_, _ = fmt.Fprintf(s.out, "  %s\n", name)
	}
	return nil
}

func (s *Session) cmdConnect(args string) error {
	dsn := strings.TrimSpace(args)
	if dsn == "" {
		dsn = s.lastDSN
	}
	if dsn == "" && s.rl != nil {
		dsn = buildDSN(s.rl, s.engine)
	}
	if dsn == "" {
		return errors.New("usage: connect <dsn>")
	}
	conn, err := connect(s.engine, dsn)
	if err != nil {
		return err
	}
	if s.conn != nil {
		_ = s.conn.close()
	}
	s.conn, s.lastDSN = conn, dsn
	_, _ = fmt.Fprintf(s.out, "  Connected to %s (%s)\n", s.engine, sanitizeDSN(s.engine, dsn))
	return nil
}

func (s *Session) cmdDisconnect() error {
	if s.conn == nil {
		return errors.New("not connected")
	}
	err := s.conn.close()
	s.conn = nil
	_, _ = fmt.Fprintln(s.out, "  Disconnected")
	return err
}

func (s *Session) cmdExec() error {
	if s.conn == nil {
		return errors.New("not connected (use 'connect <dsn>' first)")
	}
	if s.conn.engine != s.engine {
		_, _ = fmt.Fprintf(s.out, "  Warning: connected to %s but engine is set to %s\n", s.conn.engine, s.engine)
	}
	q, err := s.render()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "  %s;\n", q.SQL)
	if len(q.Args) > 0 {
		_, _ = fmt.Fprintf(s.out, "  Binds: %v\n", q.Args)
	}
	result, err := s.conn.execQuery(q.SQL, q.Args)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(s.out, result)
	return nil
}

func (s *Session) cmdHelp() {
	_, _ = fmt.Fprintln(s.out, `
  Query Building:
    from <table>              Start a new SELECT
    select <cols>             Set projections (col, table.col, *, table.*)
    distinct                  Enable DISTINCT
    where <condition>         Add a condition (col op value, is [not] null,
                              [not] in (...), between a and b, not like)
    join <t> on <a> = <b>     INNER JOIN (also: left join, right join)
    group <cols>              Add GROUP BY
    order <col> [asc|desc]    Add ORDER BY
    limit <n> / offset <n>    Set LIMIT / OFFSET
    for update / for share    Row locking

  DML:
    insert into <t> c=v ...   Start an INSERT with one row
    values <v1>, <v2>         Add another row (default for DEFAULT)
    update <t> c=v ...        Start an UPDATE
    delete from <t>           Start a DELETE
    returning <cols>          Set RETURNING

  Output:
    sql                       Render the current statement and its binds
    reset                     Clear the current statement
    tables                    List registered tables

  Dialect:
    engine <name>             postgres, mysql or sqlite
    dialect-file <path>       Load a YAML dialect profile

  Database:
    connect [<dsn>]           Connect (reuses the last DSN when omitted)
    disconnect                Close the connection
    exec                      Run the current statement

  Plugins:
    softdelete [...]          Filter soft-deleted rows (softdelete off to disable)
    plugins                   List enabled plugins

    exit                      Quit`)
}
