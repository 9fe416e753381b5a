package nodes

import (
	"log/slog"

	"github.com/bawdo/sqlcraft/dialect"
)

// Serializer accumulates SQL text and bind values for one render call.
// It is not safe for concurrent use; create one per render.
//
// The bind list and the placeholders in the text always agree: the n-th
// placeholder written is dialect.Placeholder(n) and stands for Binds()[n-1].
type Serializer struct {
	dialect *dialect.Dialect
	logger  *slog.Logger
	buf     []byte
	binds   []any
}

// NewSerializer creates a Serializer for d. A nil logger discards records.
func NewSerializer(d *dialect.Dialect, logger *slog.Logger) *Serializer {
	if d == nil {
		panic("sqlcraft: serializer requires a dialect")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Serializer{dialect: d, logger: logger, buf: make([]byte, 0, 128)}
}

// Dialect returns the dialect being rendered for.
func (s *Serializer) Dialect() *dialect.Dialect { return s.dialect }

// Logger returns the logger used for degradation warnings.
func (s *Serializer) Logger() *slog.Logger { return s.logger }

// WriteSQL appends raw text.
func (s *Serializer) WriteSQL(text string) {
	s.buf = append(s.buf, text...)
}

// WriteIdent appends name quoted as an identifier.
func (s *Serializer) WriteIdent(name string) {
	s.WriteSQL(s.dialect.QuoteIdent(name))
}

// WriteBind records v as the next bind value and appends its placeholder.
func (s *Serializer) WriteBind(v any) {
	s.binds = append(s.binds, v)
	s.WriteSQL(s.dialect.Placeholder(len(s.binds)))
}

// Write renders n. A nil node writes nothing.
func (s *Serializer) Write(n Node) {
	if n != nil {
		n.Serialize(s)
	}
}

// Statement starts a space-joined statement builder writing into s.
func (s *Serializer) Statement() *Statement {
	return &Statement{s: s}
}

// SQL returns the text rendered so far.
func (s *Serializer) SQL() string { return string(s.buf) }

// Binds returns the bind values recorded so far, in placeholder order.
func (s *Serializer) Binds() []any { return s.binds }

// Finish returns the rendered text and binds.
func (s *Serializer) Finish() (string, []any) {
	return string(s.buf), s.binds
}

// Warn logs that feature is not supported by the dialect and was degraded.
func (s *Serializer) Warn(feature string, attrs ...any) {
	args := append([]any{slog.String("dialect", s.dialect.Name()), slog.String("feature", feature)}, attrs...)
	s.logger.Warn("unsupported feature", args...)
}

// renderMark is a rollback point covering both the text and the bind list.
type renderMark struct{ text, binds int }

func (s *Serializer) mark() renderMark {
	return renderMark{text: len(s.buf), binds: len(s.binds)}
}

// wroteSince reports whether any text was written after m.
func (s *Serializer) wroteSince(m renderMark) bool { return len(s.buf) > m.text }

// truncate discards text and binds written after m, so a dropped fragment
// never leaves a bind without its placeholder.
func (s *Serializer) truncate(m renderMark) {
	s.buf = s.buf[:m.text]
	clear(s.binds[m.binds:])
	s.binds = s.binds[:m.binds]
}

// Render serializes n for d and returns the SQL and binds.
func Render(d *dialect.Dialect, logger *slog.Logger, n Node) (string, []any) {
	s := NewSerializer(d, logger)
	s.Write(n)
	return s.Finish()
}
