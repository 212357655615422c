package gorm

import (
	"encoding/json"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"gorm.io/gorm"

	"github.com/iqmath/iqmath-server/pkg/model"
	"github.com/iqmath/iqmath-server/pkg/server/store"
)

// record constrains P to a pointer to T that carries the model behavior.
type record[T any] interface {
	*T
	model.Record
}

// ContentOptions configures a ContentStore for a particular collection.
type ContentOptions struct {
	// OrderBy is the SQL order clause applied to List.
	OrderBy string

	// VisibilityColumn names the boolean column backing the public
	// visibility toggle. Empty when the collection has no toggle.
	VisibilityColumn string

	// SlugColumn names the unique slug column. Empty when the
	// collection is not addressable by slug.
	SlugColumn string
}

// ContentStore implements store.ContentStore using GORM
type ContentStore[T any, P record[T]] struct {
	db   *gorm.DB
	opts ContentOptions
}

// NewContentStore creates a ContentStore for one collection
func NewContentStore[T any, P record[T]](db *gorm.DB, opts ContentOptions) *ContentStore[T, P] {
	if opts.OrderBy == "" {
		opts.OrderBy = "created_at desc"
	}
	return &ContentStore[T, P]{db: db, opts: opts}
}

// List returns records in the configured order, optionally restricted to
// publicly visible ones.
func (s *ContentStore[T, P]) List(visibleOnly bool) ([]T, error) {
	tx := s.db.Order(s.opts.OrderBy)
	if visibleOnly && s.opts.VisibilityColumn != "" {
		tx = tx.Where(s.opts.VisibilityColumn+" = ?", true)
	}

	var recs []T
	if err := tx.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// Get retrieves a record by id.
func (s *ContentStore[T, P]) Get(id string) (*T, error) {
	var rec T
	tx := s.db.Where("id = ?", id).First(&rec)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &rec, nil
}

// GetBySlug retrieves a record by its slug. Collections without a slug
// column report not found.
func (s *ContentStore[T, P]) GetBySlug(slug string) (*T, error) {
	if s.opts.SlugColumn == "" {
		return nil, store.ErrNotFound
	}

	var rec T
	tx := s.db.Where(s.opts.SlugColumn+" = ?", slug).First(&rec)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &rec, nil
}

// Create normalizes, validates and inserts a record.
func (s *ContentStore[T, P]) Create(rec *T) error {
	p := P(rec)
	p.Normalize()
	if err := p.Validate(); err != nil {
		return err
	}

	if err := s.db.Create(rec).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update applies a partial JSON document over the stored record. Only the
// attributes present in the patch change. The id and timestamps cannot be
// patched.
func (s *ContentStore[T, P]) Update(id string, patch []byte) (*T, error) {
	rec, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	patch, err = stripImmutable(patch)
	if err != nil {
		return nil, &model.ValidationError{Field: "body", Reason: "must be a JSON object"}
	}
	if err := json.Unmarshal(patch, rec); err != nil {
		return nil, &model.ValidationError{Field: "body", Reason: "must be a JSON object"}
	}

	p := P(rec)
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.db.Save(rec).Error; err != nil {
		return nil, translateError(err)
	}
	return rec, nil
}

// Delete removes a record by id.
func (s *ContentStore[T, P]) Delete(id string) error {
	tx := s.db.Where("id = ?", id).Delete(new(T))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// stripImmutable drops attributes that must never change through a patch.
func stripImmutable(patch []byte) ([]byte, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(patch, &doc); err != nil {
		return nil, err
	}
	delete(doc, "id")
	delete(doc, "createdAt")
	delete(doc, "updatedAt")
	return json.Marshal(doc)
}

// translateError maps driver errors onto the store error taxonomy.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return store.ErrDuplicateKey
	}
	return err
}
