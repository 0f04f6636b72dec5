// Package qb assembles parameterized SQL incrementally at runtime, mixing
// literal fragments with bind values without manual placeholder bookkeeping.
package qb

import (
	"bytes"
	"fmt"
	"reflect"
)

// QueryBuilder accumulates SQL text and bind arguments for queries whose
// shape is only known at runtime. It is not safe for concurrent use.
type QueryBuilder struct {
	dialect Dialect
	buf     bytes.Buffer
	initLen int

	// args is nil after a terminal operation. Reset restores it.
	args *Arguments
}

// New starts building a query with an initial SQL fragment, which may be an
// empty string. A query almost always starts with a constant fragment such
// as "INSERT INTO ..." or "SELECT ...".
func New(dialect Dialect, init string) *QueryBuilder {
	b := &QueryBuilder{
		dialect: dialect,
		initLen: len(init),
		args:    NewArguments(dialect),
	}
	b.buf.WriteString(init)
	return b
}

// WithArguments starts building with existing SQL and arguments. The
// arguments are not checked against placeholders already present in init;
// that is the caller's responsibility.
func WithArguments(init string, args *Arguments) *QueryBuilder {
	if args == nil {
		panic("qb: WithArguments requires a non-nil argument buffer")
	}
	b := &QueryBuilder{
		dialect: args.dialect,
		initLen: len(init),
		args:    args,
	}
	b.buf.WriteString(init)
	return b
}

func (b *QueryBuilder) sanityCheck() {
	if b.args == nil {
		panic("qb: QueryBuilder must be Reset before reuse after ToSQL")
	}
}

// Push appends sql verbatim, formatted with the fmt package. No escaping is
// performed; never pass untrusted input here, use PushBind for that.
func (b *QueryBuilder) Push(sql interface{}) *QueryBuilder {
	b.sanityCheck()

	if _, err := fmt.Fprint(&b.buf, sql); err != nil {
		panic("qb: error formatting sql: " + err.Error())
	}
	return b
}

// Pushf appends a fmt.Sprintf-style formatted fragment. The same injection
// warning as Push applies to every formatted operand.
func (b *QueryBuilder) Pushf(format string, a ...interface{}) *QueryBuilder {
	b.sanityCheck()

	if _, err := fmt.Fprintf(&b.buf, format, a...); err != nil {
		panic("qb: error formatting sql: " + err.Error())
	}
	return b
}

// PushBind appends one placeholder to the SQL and binds value to it. The
// value is recorded before its placeholder is written, so a failed encode
// leaves both text and arguments exactly as they were.
func (b *QueryBuilder) PushBind(value interface{}) error {
	b.sanityCheck()

	if err := b.args.Add(value); err != nil {
		return err
	}
	if err := b.args.WritePlaceholder(&b.buf); err != nil {
		// Add enforced the parameter ceiling; a failure here is a
		// formatting bug, not caller error.
		panic("qb: error writing placeholder: " + err.Error())
	}
	return nil
}

// PushIdentifier appends ident quoted per the dialect's identifier rules.
func (b *QueryBuilder) PushIdentifier(ident string) *QueryBuilder {
	b.sanityCheck()

	b.dialect.WriteIdentifier(&b.buf, ident)
	return b
}

// PushLiteral appends value as a dialect-escaped string literal. Prefer
// PushBind; literals are for constant SQL such as DEFAULT expressions.
func (b *QueryBuilder) PushLiteral(value string) *QueryBuilder {
	b.sanityCheck()

	b.dialect.WriteStringLiteral(&b.buf, value)
	return b
}

// PushFragment merges a fully built sub-query into this one: other's SQL is
// appended once and its bind values follow this builder's in their original
// order. Both builders must use the same dialect. other is consumed and must
// be Reset before reuse.
//
// Placeholder renumbering is not performed; fragments for numbered dialects
// should be built with WithArguments so their numbering continues from the
// parent's.
func (b *QueryBuilder) PushFragment(other *QueryBuilder) error {
	b.sanityCheck()
	if other == b {
		panic("qb: cannot merge a QueryBuilder into itself")
	}
	other.sanityCheck()

	if reflect.TypeOf(other.dialect) != reflect.TypeOf(b.dialect) {
		logger.Error("Fragment dialect mismatch")
		return ErrDialectMismatch
	}
	if max := b.dialect.MaxParams(); max > 0 && b.args.Len()+other.args.Len() > max {
		logger.Error("Bind parameter limit exceeded", "max", max)
		return ErrTooManyParams
	}

	frag := other.args
	other.args = nil

	b.buf.Write(other.buf.Bytes())
	b.args.Reserve(frag.Len())
	b.args.values = append(b.args.values, frag.values...)
	return nil
}

// Separated starts a list whose elements are joined by sep. The builder must
// not be mutated through any other handle until the returned view is
// discarded.
func (b *QueryBuilder) Separated(sep string) *Separated {
	b.sanityCheck()

	return &Separated{builder: b, sep: sep}
}

// Reset returns the builder to its initial state: the SQL is truncated to
// the fragment given at construction and the bind arguments are cleared.
// Valid in any state, including after ToSQL.
func (b *QueryBuilder) Reset() *QueryBuilder {
	b.buf.Truncate(b.initLen)
	b.args = NewArguments(b.dialect)
	return b
}

// SQL returns the SQL built so far. It may not be syntactically complete.
// Valid in any state and never consumes the builder.
func (b *QueryBuilder) SQL() string {
	return b.buf.String()
}

// Len returns the number of bind arguments recorded so far.
func (b *QueryBuilder) Len() int {
	if b.args == nil {
		return 0
	}
	return b.args.Len()
}

// ToSQL finishes the query, returning the SQL string and the bind arguments
// in placeholder order. The builder is unusable afterward until Reset.
func (b *QueryBuilder) ToSQL() (string, []interface{}) {
	b.sanityCheck()

	args := b.args
	b.args = nil
	return b.buf.String(), args.Values()
}

// IntoSQL finishes the query, returning the SQL alone. Like ToSQL it leaves
// the builder unusable until Reset.
func (b *QueryBuilder) IntoSQL() string {
	b.sanityCheck()

	b.args = nil
	return b.buf.String()
}
