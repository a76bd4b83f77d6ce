// Package store holds the gorm helpers the feature repositories share.
package store

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmbook/pkg/apperr"
)

const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

type Page struct {
	Page    int
	PerPage int
}

func NewPage(page, perPage int) Page {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Page{Page: page, PerPage: perPage}
}

func (p Page) Offset() int { return (p.Page - 1) * p.PerPage }

func (p Page) LastPage(total int64) int {
	if total == 0 {
		return 1
	}
	return int(math.Ceil(float64(total) / float64(p.PerPage)))
}

// First loads one row by primary key, mapping a miss to apperr.NotFound.
func First[T any](db *gorm.DB, resource string, id uint, preload ...string) (*T, error) {
	var out T
	q := db
	for _, p := range preload {
		q = q.Preload(p)
	}
	if err := q.First(&out, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(resource, id)
		}
		return nil, fmt.Errorf("find %s %d: %w", resource, id, err)
	}
	return &out, nil
}

// Exists reports whether a row with id exists; when activeOnly is set the
// row must also have is_active = true.
func Exists[T any](db *gorm.DB, id uint, activeOnly bool) (bool, error) {
	var n int64
	q := db.Model(new(T)).Where("id = ?", id)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// Taken reports whether column already holds value on a row other than
// exceptID. Comparison is exact.
func Taken[T any](db *gorm.DB, column, value string, exceptID uint) (bool, error) {
	var n int64
	q := db.Model(new(T)).Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// Paginate counts q, then loads one page of it with the given preloads.
func Paginate[T any](q *gorm.DB, page Page, order string, preload ...string) ([]T, int64, error) {
	var total int64
	if err := q.Session(&gorm.Session{}).Model(new(T)).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	out := make([]T, 0, page.PerPage)
	if order == "" {
		order = "id ASC"
	}
	for _, p := range preload {
		q = q.Preload(p)
	}
	if err := q.Order(order).Offset(page.Offset()).Limit(page.PerPage).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Search adds a case-insensitive LIKE over the given columns.
func Search(q *gorm.DB, term string, columns ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return q
	}
	like := "%" + strings.ToLower(term) + "%"
	parts := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, c := range columns {
		parts[i] = "LOWER(" + c + ") LIKE ?"
		args[i] = like
	}
	return q.Where("("+strings.Join(parts, " OR ")+")", args...)
}

// Save updates every column of row without touching loaded associations.
func Save(db *gorm.DB, row any) error {
	return db.Omit(clause.Associations).Save(row).Error
}

// Create inserts row without cascading into associations.
func Create(db *gorm.DB, row any) error {
	return db.Omit(clause.Associations).Create(row).Error
}
