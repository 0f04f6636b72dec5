package qb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syreclabs/qb/common"
)

// capDialect is an ordinal dialect with a tiny parameter ceiling so limit
// handling can be tested without binding tens of thousands of values.
type capDialect struct {
	max int
}

func (d *capDialect) Encode(value interface{}) (interface{}, error) {
	return EncodeValue(value)
}

func (d *capDialect) WritePlaceholder(buf common.BufferWriter, n int) error {
	if d.max > 0 && n > d.max {
		return ErrTooManyParams
	}
	_, err := buf.WriteRune('?')
	return err
}

func (d *capDialect) WriteStringLiteral(buf common.BufferWriter, val string) {
	buf.WriteRune('\'')
	buf.WriteString(val)
	buf.WriteRune('\'')
}

func (d *capDialect) WriteIdentifier(buf common.BufferWriter, ident string) {
	buf.WriteString(ident)
}

func (d *capDialect) MaxParams() int {
	return d.max
}

func TestArgumentsAdd(t *testing.T) {
	a := NewArguments(&capDialect{})

	assert.NoError(t, a.Add(1))
	assert.NoError(t, a.Add("x"))
	assert.Equal(t, a.Len(), 2)
	assert.Equal(t, a.Values(), []interface{}{int64(1), "x"})
}

func TestArgumentsAddLimit(t *testing.T) {
	a := NewArguments(&capDialect{max: 2})

	assert.NoError(t, a.Add(1))
	assert.NoError(t, a.Add(2))

	err := a.Add(3)
	assert.Equal(t, err, ErrTooManyParams)
	assert.Equal(t, a.Len(), 2)
}

func TestArgumentsReserve(t *testing.T) {
	a := NewArguments(&capDialect{})
	a.Reserve(16)
	assert.Equal(t, a.Len(), 0)

	assert.NoError(t, a.Add(1))
	assert.Equal(t, a.Len(), 1)
}

func TestArgumentsFromEncodeError(t *testing.T) {
	_, err := ArgumentsFrom(&capDialect{}, 1, make(chan int))
	assert.Equal(t, err, ErrInvalidValue)
}

func TestPushBindLimitLeavesStateConsistent(t *testing.T) {
	b := New(&capDialect{max: 1}, "IN (")

	assert.NoError(t, b.PushBind(1))

	err := b.PushBind(2)
	assert.Equal(t, err, ErrTooManyParams)
	assert.Equal(t, b.SQL(), "IN (?")
	assert.Equal(t, b.Len(), 1)
}

func TestPushFragmentLimit(t *testing.T) {
	frag := New(&capDialect{max: 3}, "")
	assert.NoError(t, frag.PushBind(10))
	assert.NoError(t, frag.PushBind(20))

	b := New(&capDialect{max: 3}, "")
	assert.NoError(t, b.PushBind(1))
	assert.NoError(t, b.PushBind(2))

	err := b.PushFragment(frag)
	assert.Equal(t, err, ErrTooManyParams)
	// nothing was merged, the fragment is still usable
	assert.Equal(t, b.Len(), 2)
	assert.Equal(t, frag.Len(), 2)
}

func TestPushValuesLimit(t *testing.T) {
	b := New(&capDialect{max: 3}, "INSERT INTO t (a, b)")

	err := b.PushValues([]interface{}{1, 2}, []interface{}{3, 4})
	assert.Equal(t, err, ErrTooManyParams)
	assert.Equal(t, b.SQL(), "INSERT INTO t (a, b)")
	assert.Equal(t, b.Len(), 0)
}
