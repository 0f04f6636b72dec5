package qb

// PushValues appends a VALUES clause covering rows, binding every cell:
//
//	b := qb.New(postgres.New(), "INSERT INTO users (name, email)")
//	b.PushValues([]interface{}{"mario", "m@x.io"}, []interface{}{"luigi", "l@x.io"})
//
// yields `INSERT INTO users (name, email) VALUES ($1, $2), ($3, $4)`.
//
// Postgres callers inserting many rows of identical shape may get better
// performance from arrays and UNNEST().
func (b *QueryBuilder) PushValues(rows ...[]interface{}) error {
	b.sanityCheck()

	if len(rows) == 0 {
		return ErrEmptyValues
	}

	n := 0
	for _, row := range rows {
		n += len(row)
	}
	if max := b.dialect.MaxParams(); max > 0 && b.args.Len()+n > max {
		logger.Error("Bind parameter limit exceeded", "max", max)
		return ErrTooManyParams
	}
	b.args.Reserve(n)

	b.Push(" VALUES ")
	sep := b.Separated(", ")
	for _, row := range rows {
		if err := sep.PushTuple(row...); err != nil {
			return err
		}
	}
	return nil
}
