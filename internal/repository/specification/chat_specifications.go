package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySessionID scopes a message query to one chat session.
type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return Filter("session_id", s.SessionID).Apply(db)
}
