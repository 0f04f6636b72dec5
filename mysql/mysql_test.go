package mysql

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syreclabs/qb"
)

func TestWritePlaceholder(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, New().WritePlaceholder(&buf, 1))
	assert.NoError(t, New().WritePlaceholder(&buf, 2))
	assert.Equal(t, buf.String(), "??")
}

func TestWritePlaceholderLimit(t *testing.T) {
	var buf bytes.Buffer
	err := New().WritePlaceholder(&buf, maxParams+1)
	assert.Equal(t, err, qb.ErrTooManyParams)
}

func TestEncodeScalar(t *testing.T) {
	v, err := New().Encode(7)
	assert.NoError(t, err)
	assert.Equal(t, v, int64(7))
}

func TestEncodeRejectsSlices(t *testing.T) {
	_, err := New().Encode([]int{1, 2})
	assert.Equal(t, err, qb.ErrInvalidValue)

	// []byte is a scalar blob, not an array
	raw := []byte{1, 2}
	v, err := New().Encode(raw)
	assert.NoError(t, err)
	assert.Equal(t, v, raw)
}

func TestWriteStringLiteral(t *testing.T) {
	var buf bytes.Buffer
	New().WriteStringLiteral(&buf, `bat'man \ robin`)
	assert.Equal(t, buf.String(), `'bat''man \\ robin'`)
}

func TestWriteIdentifier(t *testing.T) {
	var buf bytes.Buffer
	New().WriteIdentifier(&buf, "db.user")
	assert.Equal(t, buf.String(), "`db`.`user`")

	assert.Panics(t, func() { New().WriteIdentifier(&buf, "") })
}
