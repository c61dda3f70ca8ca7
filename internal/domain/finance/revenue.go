package finance

// Revenue is the amount earned in one calendar month. Month is the key.
type Revenue struct {
	Month   string
	Revenue int64
}

// RevenueUpdate carries the fields of a partial update.
type RevenueUpdate struct {
	Revenue *int64
}

// IsEmpty reports whether no field was supplied.
func (u RevenueUpdate) IsEmpty() bool {
	return u.Revenue == nil
}

// Apply copies the supplied fields onto r.
func (u RevenueUpdate) Apply(r *Revenue) {
	if u.Revenue != nil {
		r.Revenue = *u.Revenue
	}
}

// Columns returns the supplied fields keyed by column name.
func (u RevenueUpdate) Columns() map[string]any {
	cols := make(map[string]any, 1)
	if u.Revenue != nil {
		cols["revenue"] = *u.Revenue
	}
	return cols
}
