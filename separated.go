package qb

// Separated wraps a QueryBuilder to build comma (or other token) separated
// lists. The separator is written between consecutive elements only, never
// before the first or after the last. The "already pushed an element" flag
// lives on the view, so one logical element may span several Push/PushBind
// calls on the parent without doubling separators.
//
// A Separated holds the only sanctioned mutation path to its parent for the
// duration of one list-building operation; do not retain it beyond that or
// interleave it with direct mutation of the parent.
type Separated struct {
	builder *QueryBuilder
	sep     string
	pushed  bool
}

// Push writes the separator if an element was already pushed, then sql.
func (s *Separated) Push(sql interface{}) *Separated {
	if s.pushed {
		s.builder.Push(s.sep)
	} else {
		s.pushed = true
	}
	s.builder.Push(sql)
	return s
}

// PushUnseparated writes sql with no separator logic, for opening and
// closing tokens such as ")".
func (s *Separated) PushUnseparated(sql interface{}) *Separated {
	s.builder.Push(sql)
	return s
}

// PushBind writes the separator if applicable, then binds value behind a
// placeholder. The separator is only written once the value has been
// accepted, so a failed encode leaves the list text untouched.
func (s *Separated) PushBind(value interface{}) error {
	b := s.builder
	b.sanityCheck()

	if err := b.args.Add(value); err != nil {
		return err
	}
	if s.pushed {
		b.Push(s.sep)
	} else {
		s.pushed = true
	}
	if err := b.args.WritePlaceholder(&b.buf); err != nil {
		panic("qb: error writing placeholder: " + err.Error())
	}
	return nil
}

// PushBindUnseparated binds value with no separator logic.
func (s *Separated) PushBindUnseparated(value interface{}) error {
	return s.builder.PushBind(value)
}

// PushTuple writes one parenthesized tuple of bind placeholders as a single
// separated element, e.g. "($4, $5, $6)". On an encode error the tuple may
// be left partially written; bound values and placeholders always stay in
// step.
func (s *Separated) PushTuple(values ...interface{}) error {
	b := s.builder
	b.sanityCheck()

	if s.pushed {
		b.Push(s.sep)
	} else {
		s.pushed = true
	}
	b.Push("(")
	for i, v := range values {
		if i > 0 {
			b.Push(", ")
		}
		if err := b.PushBind(v); err != nil {
			return err
		}
	}
	b.Push(")")
	return nil
}
