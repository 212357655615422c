package store

// ContentStore abstracts CRUD operations over a content collection.
//
// List returns records in the collection's configured order. When
// visibleOnly is set, records hidden from the public site are filtered
// out; collections without a visibility toggle return everything.
//
// Update applies a partial JSON document over the stored record: only
// the attributes present in the patch change. The id and timestamps are
// never patchable.
type ContentStore[T any] interface {
	List(visibleOnly bool) ([]T, error)
	Get(id string) (*T, error)
	GetBySlug(slug string) (*T, error)
	Create(rec *T) error
	Update(id string, patch []byte) (*T, error)
	Delete(id string) error
}
