// Package postgres implements the PostgreSQL dialect: numbered $N
// placeholders, double-quoted identifiers, dollar-tag string literals and
// array encoding via lib/pq.
package postgres

import (
	"bytes"
	"math/rand"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/syreclabs/qb"
	"github.com/syreclabs/qb/common"
)

// maxParams is the bind-parameter ceiling Postgres enforces per statement.
// The server asserts the parameter count is in [0, 65535).
const maxParams = 65535

// maxLookup is the max index of the precomputed placeholder table.
const maxLookup = 100

// placeholderTab holds $0, $1 ... $n to avoid "$" + strconv.Itoa on the
// hot path. Most queries bind fewer than maxLookup values.
var placeholderTab = make([]string, maxLookup)

// pgDollarTag is the double dollar tag for escaping long strings.
var pgDollarTag string
var pgDollarMutex sync.Mutex

var rnd = rand.New(rand.NewSource(time.Now().UTC().UnixNano()))
var rndMutex sync.Mutex

func init() {
	for i := 0; i < maxLookup; i++ {
		placeholderTab[i] = "$" + strconv.Itoa(i)
	}
	randomizePgDollarTag()
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

func randomString(n int) string {
	rndMutex.Lock()
	defer rndMutex.Unlock()
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rnd.Intn(len(letters))]
	}
	return string(b)
}

func randomizePgDollarTag() {
	pgDollarMutex.Lock()
	defer pgDollarMutex.Unlock()
	var buf bytes.Buffer
	buf.WriteRune('$')
	buf.WriteString(randomString(3))
	buf.WriteRune('$')
	pgDollarTag = buf.String()
}

// GetPgDollarTag returns the current Postgres string dollar quoting tag.
func GetPgDollarTag() string {
	return pgDollarTag
}

// Postgres is the PostgreSQL dialect.
type Postgres struct{}

// New returns a new Postgres dialect.
func New() *Postgres {
	return &Postgres{}
}

// Encode converts value for binding. Slices other than []byte are encoded
// as Postgres arrays through pq.Array; everything else follows
// qb.EncodeValue.
func (pd *Postgres) Encode(value interface{}) (interface{}, error) {
	if value != nil {
		if _, ok := value.([]byte); !ok {
			k := reflect.TypeOf(value).Kind()
			if k == reflect.Slice || k == reflect.Array {
				return pq.Array(value).Value()
			}
		}
	}
	return qb.EncodeValue(value)
}

// WritePlaceholder writes the 1-based numbered placeholder $n.
func (pd *Postgres) WritePlaceholder(buf common.BufferWriter, n int) error {
	if n < 1 || n > maxParams {
		return qb.ErrTooManyParams
	}
	if n < maxLookup {
		_, err := buf.WriteString(placeholderTab[n])
		return err
	}
	if _, err := buf.WriteRune('$'); err != nil {
		return err
	}
	_, err := buf.WriteString(strconv.Itoa(n))
	return err
}

// MaxParams returns the bind-parameter ceiling.
func (pd *Postgres) MaxParams() int {
	return maxParams
}

// WriteStringLiteral writes an escaped string. No escape characters
// are allowed.
//
// Postgres 9.1+ does not allow any escape sequences by default. See
// http://www.postgresql.org/docs/9.3/interactive/sql-syntax-lexical.html#SQL-SYNTAX-STRINGS-ESCAPE
// In short, all backslashes are treated literally not as escape sequences.
func (pd *Postgres) WriteStringLiteral(buf common.BufferWriter, val string) {
	if val == "" {
		buf.WriteString("''")
		return
	}

	hasTag := true

	// don't use double dollar quote strings unless the string is long enough
	if len(val) > 64 {
		// if pgDollarTag unique tag is in string, try to create a new one (only once though)
		hasTag = strings.Contains(val, pgDollarTag)
		if hasTag {
			randomizePgDollarTag()
			hasTag = strings.Contains(val, pgDollarTag)
		}
	}

	if hasTag {
		buf.WriteRune('\'')
		if strings.Contains(val, "'") {
			for _, char := range val {
				// apos
				if char == '\'' {
					buf.WriteString(`''`)
				} else if char == 0 {
					panic("postgres doesn't support NULL char in text, see http://stackoverflow.com/questions/1347646/postgres-error-on-insert-error-invalid-byte-sequence-for-encoding-utf8-0x0")
				} else {
					buf.WriteRune(char)
				}
			}
		} else {
			buf.WriteString(val)
		}
		buf.WriteRune('\'')
	} else {
		buf.WriteString(pgDollarTag)
		buf.WriteString(val)
		buf.WriteString(pgDollarTag)
	}
}

// WriteIdentifier writes escaped identifier.
func (pd *Postgres) WriteIdentifier(buf common.BufferWriter, ident string) {
	if ident == "" {
		panic("Identifier is empty string")
	}

	buf.WriteRune('"')
	if strings.Contains(ident, ".") {
		for _, char := range ident {
			if char == '.' {
				buf.WriteString("\".\"")
			} else {
				buf.WriteRune(char)
			}
		}
	} else {
		buf.WriteString(ident)
	}
	buf.WriteRune('"')
}
