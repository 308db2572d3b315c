package specification

import "gorm.io/gorm"

// Specification narrows a query; implementations compose by chaining Apply.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
