package dialect

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile is the YAML form of a dialect: a preset to start from plus the
// capabilities to override. Absent keys keep the base preset's value.
//
//	base: postgres
//	name: cockroach
//	union: [union, union_all, intersect, except]
//	create_trigger: []
//	locking:
//	  shared: FOR SHARE
//	  exclusive: FOR UPDATE
type Profile struct {
	Base            string             `yaml:"base"`
	Name            string             `yaml:"name"`
	IdentifierQuote string             `yaml:"identifier_quote"`
	StringQuote     string             `yaml:"string_quote"`
	Placeholder     string             `yaml:"placeholder"`
	AutoIncrement   *string            `yaml:"auto_increment"`
	IfExists        *bool              `yaml:"if_exists"`
	DropBehavior    *bool              `yaml:"drop_behavior"`
	Returning       *bool              `yaml:"returning"`
	PartialIndexes  *bool              `yaml:"partial_indexes"`
	Enum            string             `yaml:"enum"`
	Upsert          string             `yaml:"upsert"`
	AlterTable      *AlterTableProfile `yaml:"alter_table"`
	Union           *[]string          `yaml:"union"`
	CreateTrigger   *[]string          `yaml:"create_trigger"`
	DropTrigger     *[]string          `yaml:"drop_trigger"`
	Locking         *LockingProfile    `yaml:"locking"`
}

// AlterTableProfile is the YAML form of AlterTableSyntax.
type AlterTableProfile struct {
	ColumnType string `yaml:"column_type"` // alter | modify | unsupported
	Batch      bool   `yaml:"batch"`
}

// LockingProfile is the YAML form of the row-locking clauses.
type LockingProfile struct {
	Shared    string `yaml:"shared"`
	Exclusive string `yaml:"exclusive"`
}

// Lookup returns the preset registered under name (postgres, mysql, sqlite).
func Lookup(name string) (*Dialect, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "postgres", "postgresql", "pg":
		return Postgres(), true
	case "mysql", "mariadb":
		return MySQL(), true
	case "sqlite", "sqlite3":
		return SQLite(), true
	default:
		return nil, false
	}
}

// LoadProfileFile reads a YAML profile from path and builds its dialect.
func LoadProfileFile(path string) (*Dialect, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profile: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadProfile(f)
}

// LoadProfile decodes a YAML profile from r and builds its dialect.
func LoadProfile(r io.Reader) (*Dialect, error) {
	var p Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return p.Dialect()
}

// Dialect builds the profile's dialect on top of its base preset, or on
// top of New's defaults when Base is empty.
func (p Profile) Dialect() (*Dialect, error) {
	var d *Dialect
	if p.Base == "" {
		d = New("custom")
	} else {
		var ok bool
		if d, ok = Lookup(p.Base); !ok {
			return nil, fmt.Errorf("unknown base dialect %q", p.Base)
		}
	}

	opts, err := p.options()
	if err != nil {
		return nil, err
	}
	return d.With(opts...), nil
}

func (p Profile) options() ([]Option, error) {
	var opts []Option
	if p.Name != "" {
		opts = append(opts, WithName(p.Name))
	}
	if p.IdentifierQuote != "" {
		if len(p.IdentifierQuote) != 1 {
			return nil, fmt.Errorf("identifier_quote must be one character, got %q", p.IdentifierQuote)
		}
		opts = append(opts, WithIdentifierQuote(p.IdentifierQuote[0]))
	}
	if p.StringQuote != "" {
		if len(p.StringQuote) != 1 {
			return nil, fmt.Errorf("string_quote must be one character, got %q", p.StringQuote)
		}
		opts = append(opts, WithStringQuote(p.StringQuote[0]))
	}
	if p.Placeholder != "" {
		fn, err := parsePlaceholder(p.Placeholder)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithPlaceholder(fn))
	}
	if p.AutoIncrement != nil {
		opts = append(opts, WithAutoIncrement(*p.AutoIncrement))
	}
	if p.IfExists != nil {
		opts = append(opts, WithIfExists(*p.IfExists))
	}
	if p.DropBehavior != nil {
		on := *p.DropBehavior
		opts = append(opts, func(d *Dialect) { d.dropBehavior = on })
	}
	if p.Returning != nil {
		on := *p.Returning
		opts = append(opts, func(d *Dialect) { d.returning = on })
	}
	if p.PartialIndexes != nil {
		on := *p.PartialIndexes
		opts = append(opts, func(d *Dialect) { d.partialIndex = on })
	}
	if p.Enum != "" {
		s, err := parseEnum(p.Enum)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithEnum(s))
	}
	if p.Upsert != "" {
		s, err := parseUpsert(p.Upsert)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithUpsert(s))
	}
	if p.AlterTable != nil {
		s := AlterTableSyntax{Batch: p.AlterTable.Batch}
		switch p.AlterTable.ColumnType {
		case "", "unsupported":
		case "alter":
			s.ColumnType = ColumnTypeAlter
		case "modify":
			s.ColumnType = ColumnTypeModify
		default:
			return nil, fmt.Errorf("unknown alter_table.column_type %q", p.AlterTable.ColumnType)
		}
		opts = append(opts, WithAlterTable(s))
	}
	if p.Union != nil {
		var set UnionFeatures
		for _, name := range *p.Union {
			f, ok := ParseUnionFeature(name)
			if !ok {
				return nil, fmt.Errorf("unknown union feature %q", name)
			}
			set |= f
		}
		opts = append(opts, WithUnion(set))
	}
	if p.CreateTrigger != nil {
		set, err := parseTriggerFeatures(*p.CreateTrigger)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithCreateTrigger(set))
	}
	if p.DropTrigger != nil {
		set, err := parseTriggerFeatures(*p.DropTrigger)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithDropTrigger(set))
	}
	if p.Locking != nil {
		opts = append(opts, WithLocking(p.Locking.Shared, p.Locking.Exclusive))
	}
	return opts, nil
}

func parsePlaceholder(s string) (func(int) string, error) {
	switch s {
	case "question", "?":
		return QuestionPlaceholder, nil
	case "dollar", "$":
		return DollarPlaceholder, nil
	case "numbered", "?n":
		return NumberedQuestionPlaceholder, nil
	default:
		return nil, fmt.Errorf("unknown placeholder style %q", s)
	}
}

func parseEnum(s string) (EnumSyntax, error) {
	for _, e := range []EnumSyntax{EnumUnsupported, EnumInline, EnumNamedType} {
		if e.String() == s {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown enum syntax %q", s)
}

func parseUpsert(s string) (UpsertSyntax, error) {
	for _, u := range []UpsertSyntax{UpsertUnsupported, UpsertOnConflict, UpsertOnDuplicateKey} {
		if u.String() == s {
			return u, nil
		}
	}
	return 0, fmt.Errorf("unknown upsert syntax %q", s)
}

func parseTriggerFeatures(names []string) (TriggerFeatures, error) {
	var set TriggerFeatures
	for _, name := range names {
		f, ok := ParseTriggerFeature(name)
		if !ok {
			return 0, fmt.Errorf("unknown trigger feature %q", name)
		}
		set |= f
	}
	return set, nil
}
