package mappers

import (
	"github.com/tosinajy/carrier-code-verify/internal/domain/user"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/models"
)

func SessionToModel(s *user.Session) *models.SessionModel {
	if s == nil {
		return nil
	}
	return &models.SessionModel{
		ID:        s.ID,
		UserID:    s.UserID,
		IPAddress: s.IPAddress,
		UserAgent: s.UserAgent,
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
	}
}

func SessionToDomain(m *models.SessionModel) *user.Session {
	if m == nil {
		return nil
	}
	return &user.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		IPAddress: m.IPAddress,
		UserAgent: m.UserAgent,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}
