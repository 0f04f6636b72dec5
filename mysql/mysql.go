// Package mysql implements the MySQL dialect: ordinal ? placeholders and
// backtick-quoted identifiers.
package mysql

import (
	"reflect"
	"strings"

	"github.com/syreclabs/qb"
	"github.com/syreclabs/qb/common"
)

// maxParams is MySQL's default prepared-statement placeholder ceiling.
const maxParams = 65535

// MySQL is the MySQL dialect.
type MySQL struct{}

// New returns a new MySQL dialect.
func New() *MySQL {
	return &MySQL{}
}

// Encode converts value for binding. MySQL has no array bind type, so
// slices other than []byte are rejected; expand them with a Separated list
// instead.
func (md *MySQL) Encode(value interface{}) (interface{}, error) {
	if value != nil {
		if _, ok := value.([]byte); !ok {
			k := reflect.TypeOf(value).Kind()
			if k == reflect.Slice || k == reflect.Array {
				return nil, qb.ErrInvalidValue
			}
		}
	}
	return qb.EncodeValue(value)
}

// WritePlaceholder writes the ordinal placeholder. The 1-based n is used
// only to enforce the parameter ceiling.
func (md *MySQL) WritePlaceholder(buf common.BufferWriter, n int) error {
	if n < 1 || n > maxParams {
		return qb.ErrTooManyParams
	}
	_, err := buf.WriteRune('?')
	return err
}

// MaxParams returns the placeholder ceiling.
func (md *MySQL) MaxParams() int {
	return maxParams
}

// WriteStringLiteral writes a single-quoted literal with apostrophes and
// backslashes doubled.
func (md *MySQL) WriteStringLiteral(buf common.BufferWriter, val string) {
	buf.WriteRune('\'')
	for _, char := range val {
		switch char {
		case '\'':
			buf.WriteString(`''`)
		case '\\':
			buf.WriteString(`\\`)
		default:
			buf.WriteRune(char)
		}
	}
	buf.WriteRune('\'')
}

// WriteIdentifier writes a backtick-quoted identifier.
func (md *MySQL) WriteIdentifier(buf common.BufferWriter, ident string) {
	if ident == "" {
		panic("Identifier is empty string")
	}

	buf.WriteRune('`')
	if strings.Contains(ident, ".") {
		for _, char := range ident {
			if char == '.' {
				buf.WriteString("`.`")
			} else {
				buf.WriteRune(char)
			}
		}
	} else {
		buf.WriteString(ident)
	}
	buf.WriteRune('`')
}
