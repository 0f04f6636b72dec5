package qb

import "github.com/syreclabs/qb/common"

// Dialect is a vendor specific SQL dialect. It governs how bind values are
// encoded, how placeholders are written, and how many bind parameters a
// single statement may carry. A dialect is fixed per builder at construction
// and is never switched at runtime.
type Dialect interface {
	// Encode converts value into the wire representation the engine's
	// driver accepts. Encoding failures are recoverable by the caller.
	Encode(value interface{}) (interface{}, error)
	// WritePlaceholder writes the placeholder for the n-th bind argument,
	// 1-based. Returns an error when n exceeds the dialect's limit.
	WritePlaceholder(buf common.BufferWriter, n int) error
	// WriteStringLiteral writes a string literal.
	WriteStringLiteral(buf common.BufferWriter, value string)
	// WriteIdentifier writes a quoted identifier such as a column or table.
	WriteIdentifier(buf common.BufferWriter, ident string)
	// MaxParams is the engine's bind-parameter ceiling. Zero means no limit.
	MaxParams() int
}
