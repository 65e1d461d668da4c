package repository

import (
	"catalog_service/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// applySort orders q by the requested sort keys, falling back to the primary key so that
// pages are stable. Unknown properties are skipped; handlers reject them earlier.
func applySort(q *gorm.DB, orders []domain.SortOrder, columns map[string]string) *gorm.DB {
	sorted := false
	for _, o := range orders {
		column, ok := columns[o.Property]
		if !ok {
			continue
		}
		q = q.Order(clause.OrderByColumn{
			Column: clause.Column{Name: column},
			Desc:   o.Direction == domain.Desc,
		})
		sorted = true
	}
	if !sorted {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	}
	return q
}
