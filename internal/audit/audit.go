package audit

import (
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// Service appends an audit trail of account-affecting actions.
type Service struct {
	db  *sql.DB
	log *zap.Logger
}

func New(db *sql.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

func (s *Service) Log(username, action, metadata string) {
	_, err := s.db.Exec(`
	INSERT INTO audit_logs(username, action, metadata, created_at)
	VALUES (?, ?, ?, ?)
	`, username, action, metadata, time.Now().Unix())
	if err != nil {
		s.log.Warn("audit write failed", zap.Error(err))
	}
}
