package repokit

// Binder builds a repo over a Queryer, a TxRunner, or the Queryer handed to a transaction
type Binder[T any] interface {
	Bind(Queryer) T
}

// MustBind binds b to q and panics when q is nil
// a nil pool here means the process was started without its DBURL
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		panic("repokit: bind on a nil Queryer")
	}
	return b.Bind(q)
}
