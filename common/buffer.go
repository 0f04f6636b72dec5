package common

// BufferWriter is the common interface between bytes.Buffer and
// bufio.Writer. Dialects write placeholders, literals and identifiers
// through it so they stay decoupled from the builder's buffer type.
type BufferWriter interface {
	Write(p []byte) (nn int, err error)
	WriteRune(r rune) (n int, err error)
	WriteString(s string) (n int, err error)
}
