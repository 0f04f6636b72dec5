package qb

import "github.com/syreclabs/qb/common"

// Arguments is an ordered buffer of encoded bind values tied to one dialect.
// It is owned by its QueryBuilder until ToSQL transfers the values out.
type Arguments struct {
	dialect Dialect
	values  []interface{}
}

// NewArguments creates an empty argument buffer for the given dialect.
func NewArguments(dialect Dialect) *Arguments {
	return &Arguments{dialect: dialect}
}

// ArgumentsFrom creates an argument buffer holding the given values, encoded
// in order. Use it with WithArguments to continue a query that already has
// placeholders in its SQL.
func ArgumentsFrom(dialect Dialect, values ...interface{}) (*Arguments, error) {
	a := NewArguments(dialect)
	a.Reserve(len(values))
	for _, v := range values {
		if err := a.Add(v); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Add encodes value for the dialect and appends it. The parameter ceiling is
// checked before anything is encoded so a failed Add leaves the buffer
// untouched.
func (a *Arguments) Add(value interface{}) error {
	if max := a.dialect.MaxParams(); max > 0 && len(a.values) >= max {
		logger.Error("Bind parameter limit exceeded", "max", max)
		return ErrTooManyParams
	}

	v, err := a.dialect.Encode(value)
	if err != nil {
		logger.Error("Cannot encode bind argument", "err", err)
		return err
	}

	a.values = append(a.values, v)
	return nil
}

// Reserve grows the buffer's capacity by at least n additional values.
func (a *Arguments) Reserve(n int) {
	if n <= 0 || cap(a.values)-len(a.values) >= n {
		return
	}
	values := make([]interface{}, len(a.values), len(a.values)+n)
	copy(values, a.values)
	a.values = values
}

// Len returns the number of buffered bind values.
func (a *Arguments) Len() int {
	return len(a.values)
}

// WritePlaceholder writes the placeholder for the most recently added value.
// Call it after Add; the placeholder number is the current count.
func (a *Arguments) WritePlaceholder(buf common.BufferWriter) error {
	return a.dialect.WritePlaceholder(buf, len(a.values))
}

// Values returns the encoded values in bind order.
func (a *Arguments) Values() []interface{} {
	return a.values
}
