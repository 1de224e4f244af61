package http

import (
	"github.com/tosinajy/carrier-code-verify/internal/domain/audit"
	"github.com/tosinajy/carrier-code-verify/internal/domain/carrier"
	"github.com/tosinajy/carrier-code-verify/internal/domain/directory"
	"github.com/tosinajy/carrier-code-verify/internal/domain/naic"
	"github.com/tosinajy/carrier-code-verify/internal/domain/payer"
	"github.com/tosinajy/carrier-code-verify/internal/domain/setting"
	"github.com/tosinajy/carrier-code-verify/internal/domain/user"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	payerRepo   payer.Repository
	naicRepo    naic.Repository
	carrierRepo carrier.Repository
	auditRepo   audit.Repository
	queryRepo   directory.QueryRepository
	settingRepo setting.Repository
	userRepo    user.Repository
	sessionRepo user.SessionRepository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		payerRepo:   repository.NewPayerRepository(c.db, c.log),
		naicRepo:    repository.NewNaicRepository(c.db, c.log),
		carrierRepo: repository.NewCarrierRepository(c.db, c.log),
		auditRepo:   repository.NewAuditRepository(c.db, c.log),
		queryRepo:   repository.NewDirectoryQueryRepository(c.db, c.log),
		settingRepo: repository.NewSystemSettingRepository(c.db, c.log),
		userRepo:    repository.NewUserRepository(c.db, c.log),
		sessionRepo: repository.NewSessionRepository(c.db),
	}
}
