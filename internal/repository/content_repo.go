package repository

import (
	"gorm.io/gorm"
)

// ContentRepository is the data-access layer shared by every managed
// collection: list ordered by a column, fetch, insert, update, delete.
// Each screen instantiates it with its own model; operations are single
// round trips with no cross-table transactions.
type ContentRepository[T any] struct {
	db      *gorm.DB
	orderBy string
}

// NewContentRepository returns a repository for T. orderBy is the list
// ordering clause (e.g. "sort_order ASC, id ASC"); empty means store
// order.
func NewContentRepository[T any](db *gorm.DB, orderBy string) *ContentRepository[T] {
	return &ContentRepository[T]{db: db, orderBy: orderBy}
}

// List returns the full row set. Pagination, where the console wants it,
// happens client-side over this set.
func (r *ContentRepository[T]) List() ([]T, error) {
	var list []T
	q := r.db
	if r.orderBy != "" {
		q = q.Order(r.orderBy)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *ContentRepository[T]) GetByID(id uint) (*T, error) {
	var m T
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ContentRepository[T]) Create(m *T) error {
	return r.db.Create(m).Error
}

// Update writes the full record back; last write wins.
func (r *ContentRepository[T]) Update(m *T) error {
	return r.db.Save(m).Error
}

// Delete removes the row. Deleting an id that no longer exists is a
// no-op at this layer.
func (r *ContentRepository[T]) Delete(id uint) error {
	var m T
	return r.db.Delete(&m, id).Error
}

// CountWhere counts rows matching the condition, used for the
// active-content caps.
func (r *ContentRepository[T]) CountWhere(query interface{}, args ...interface{}) (int64, error) {
	var m T
	var n int64
	err := r.db.Model(&m).Where(query, args...).Count(&n).Error
	return n, err
}
