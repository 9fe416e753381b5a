package nodes

import (
	"log/slog"
	"strings"

	"github.com/bawdo/sqlcraft/dialect"
)

// TriggerOrder places a trigger relative to another one on the same
// table and event: FOLLOWS "other" or PRECEDES "other".
type TriggerOrder struct {
	Precedes bool
	Other    string
}

// TriggerBody is an inline BEGIN ... END trigger body. Each statement is
// terminated with a semicolon.
type TriggerBody struct {
	Statements []Node
}

// NewTriggerBody creates a TriggerBody.
func NewTriggerBody(stmts ...Node) *TriggerBody {
	return &TriggerBody{Statements: stmts}
}

func (n *TriggerBody) Serialize(s *Serializer) {
	s.WriteSQL("BEGIN")
	for _, stmt := range n.Statements {
		s.WriteSQL(" ")
		stmt.Serialize(s)
		s.WriteSQL(";")
	}
	s.WriteSQL(" END")
}

// RowRef references a column of the row a trigger fires for: NEW."c" or
// OLD."c".
type RowRef struct {
	Old    bool
	Column string
}

// NewRow references col of the incoming row.
func NewRow(col string) *RowRef { return &RowRef{Column: col} }

// OldRow references col of the previous row.
func OldRow(col string) *RowRef { return &RowRef{Old: true, Column: col} }

func (n *RowRef) Serialize(s *Serializer) {
	if n.Old {
		s.WriteSQL("OLD.")
	} else {
		s.WriteSQL("NEW.")
	}
	s.WriteIdent(n.Column)
}

// CreateTrigger represents CREATE [CONSTRAINT] TRIGGER. Exactly one of
// Body and Procedure must be set.
//
// Options the dialect cannot express are dropped with a warning, except
// where dropping would change what the trigger does (an inline body on a
// procedure-only dialect is rendered anyway). Inconsistent combinations
// panic, as do the dialect's own legality rules.
type CreateTrigger struct {
	Name        string
	Table       *Table
	Timing      dialect.TriggerTiming
	Events      []dialect.TriggerEvent
	Columns     []string // UPDATE OF filter
	Scope       dialect.TriggerScope
	Condition   Node // WHEN
	Constraint  bool // CONSTRAINT TRIGGER
	Referenced  *Table
	Deferred    bool // DEFERRABLE INITIALLY DEFERRED, constraint triggers only
	Order       *TriggerOrder
	Definer     string
	IfNotExists bool
	Body        *TriggerBody
	Procedure   string // EXECUTE FUNCTION name()
}

// scope returns the granularity the trigger renders with. INSTEAD OF
// triggers are always per row, so the default is made explicit for them.
func (n *CreateTrigger) scope() dialect.TriggerScope {
	if n.Timing == dialect.TriggerInsteadOf && n.Scope == dialect.ScopeDefault {
		return dialect.ScopeRow
	}
	return n.Scope
}

// Shape summarises the trigger for dialect validation.
func (n *CreateTrigger) Shape() dialect.TriggerShape {
	return dialect.TriggerShape{
		Name:               n.Name,
		Timing:             n.Timing,
		Events:             n.Events,
		Scope:              n.scope(),
		Constraint:         n.Constraint,
		HasReferencedTable: n.Referenced != nil,
		HasColumnFilter:    len(n.Columns) > 0,
		HasCondition:       n.Condition != nil,
	}
}

func (n *CreateTrigger) validate(d *dialect.Dialect) {
	shape := n.Shape()
	switch {
	case n.Table == nil:
		panic("sqlcraft: trigger " + n.Name + " has no table")
	case len(n.Events) == 0:
		panic("sqlcraft: trigger " + n.Name + " has no events")
	case n.Timing == dialect.TriggerInsteadOf && n.scope() != dialect.ScopeRow:
		panic("sqlcraft: INSTEAD OF trigger " + n.Name + " must be FOR EACH ROW")
	case n.Body != nil && n.Procedure != "":
		panic("sqlcraft: trigger " + n.Name + " has both a body and a procedure")
	case n.Body == nil && n.Procedure == "":
		panic("sqlcraft: trigger " + n.Name + " has neither a body nor a procedure")
	case len(n.Columns) > 0 && !shape.HasEvent(dialect.TriggerUpdate):
		panic("sqlcraft: trigger " + n.Name + " filters columns without an UPDATE event")
	case n.Deferred && !n.Constraint:
		panic("sqlcraft: trigger " + n.Name + " is deferred but not a constraint trigger")
	}
	if err := d.CheckTrigger(shape); err != nil {
		panic("sqlcraft: trigger " + n.Name + ": " + err.Error())
	}
}

func (n *CreateTrigger) Serialize(s *Serializer) {
	d := s.Dialect()
	n.validate(d)
	f := d.CreateTrigger()
	warn := func(feature string) {
		s.Warn(feature, slog.String("trigger", n.Name))
	}

	st := s.Statement().Raw("CREATE")
	constraint := n.Constraint && f.Has(dialect.TriggerConstraint)
	if n.Constraint && !constraint {
		warn("constraint_trigger")
	}
	st.RawIf(constraint, "CONSTRAINT")
	if n.Definer != "" {
		if f.Has(dialect.TriggerDefiner) {
			st.Raw("DEFINER =").Raw(definerSQL(d, n.Definer))
		} else {
			warn("trigger_definer")
		}
	}
	st.Raw("TRIGGER")
	if n.IfNotExists {
		if f.Has(dialect.TriggerIfNotExists) {
			st.Raw("IF NOT EXISTS")
		} else {
			warn("trigger_if_not_exists")
		}
	}
	st.Expr(NewIdentifier(n.Name))
	st.Raw(n.Timing.String())

	filter := len(n.Columns) > 0 && f.Has(dialect.TriggerColumnFilter)
	if len(n.Columns) > 0 && !filter {
		warn("trigger_column_filter")
	}
	events := make([]Node, len(n.Events))
	for i, ev := range n.Events {
		if ev == dialect.TriggerUpdate && filter {
			events[i] = &joinedNode{items: []Node{rawNode("UPDATE OF"), commaList(identList(n.Columns))}, sep: " "}
			continue
		}
		events[i] = rawNode(ev.String())
	}
	st.Expr(&joinedNode{items: events, sep: " OR "})
	st.Raw("ON").Expr(n.Table)

	if constraint {
		if n.Referenced != nil {
			st.Raw("FROM").Expr(n.Referenced)
		}
		st.RawIf(n.Deferred, "DEFERRABLE INITIALLY DEFERRED")
	}

	switch {
	case f.Has(dialect.TriggerRequiresForEachRow):
		if n.Scope == dialect.ScopeStatement {
			warn("trigger_for_each_statement")
		}
		st.Raw("FOR EACH ROW")
	case f.Has(dialect.TriggerForEachChoice):
		switch n.scope() {
		case dialect.ScopeRow:
			st.Raw("FOR EACH ROW")
		case dialect.ScopeStatement:
			st.Raw("FOR EACH STATEMENT")
		}
	case n.Scope != dialect.ScopeDefault:
		warn("trigger_scope")
	}

	if n.Order != nil {
		if f.Has(dialect.TriggerOrdering) {
			st.RawIf(n.Order.Precedes, "PRECEDES").RawIf(!n.Order.Precedes, "FOLLOWS").
				Expr(NewIdentifier(n.Order.Other))
		} else {
			warn("trigger_ordering")
		}
	}

	if n.Condition != nil {
		switch {
		case !f.Has(dialect.TriggerCondition):
			warn("trigger_condition")
		case f.Has(dialect.TriggerConditionParens):
			st.Raw("WHEN").Expr(parenNode{inner: n.Condition})
		default:
			st.Raw("WHEN").Expr(n.Condition)
		}
	}

	if n.Body != nil {
		if !f.Has(dialect.TriggerInlineBody) {
			warn("trigger_inline_body")
		}
		st.Expr(n.Body)
	} else {
		validateSQLFunctionName(n.Procedure)
		st.Raw("EXECUTE FUNCTION " + n.Procedure + "()")
	}
	st.Finish()
}

// definerSQL quotes user@host definers part by part.
func definerSQL(d *dialect.Dialect, definer string) string {
	user, host, ok := strings.Cut(definer, "@")
	if !ok {
		return d.QuoteIdent(definer)
	}
	return d.QuoteIdent(user) + "@" + d.QuoteIdent(host)
}

// DropTrigger represents DROP TRIGGER [IF EXISTS] "name" [ON t].
type DropTrigger struct {
	Name     string
	Table    *Table
	IfExists bool
	Behavior DropBehavior
}

func (n *DropTrigger) Serialize(s *Serializer) {
	f := s.Dialect().DropTrigger()
	st := s.Statement().
		Raw("DROP TRIGGER").
		Raw(ifExistsSQL(s, n.IfExists, "IF EXISTS")).
		Expr(NewIdentifier(n.Name))
	if f.Has(dialect.TriggerDropTableName) {
		if n.Table == nil {
			panic("sqlcraft: DROP TRIGGER " + n.Name + " requires a table for dialect " + s.Dialect().Name())
		}
		st.Raw("ON").Expr(n.Table)
	}
	if n.Behavior != DropDefault {
		if f.Has(dialect.TriggerDropCascade) {
			st.Raw(dropBehaviorSQL(s, n.Behavior))
		} else {
			s.Warn("trigger_drop_behavior", slog.String("trigger", n.Name))
		}
	}
	st.Finish()
}
