package http

import (
	"time"

	adminUsecases "github.com/tosinajy/carrier-code-verify/internal/application/admin/usecases"
	directoryUsecases "github.com/tosinajy/carrier-code-verify/internal/application/directory/usecases"
	mappingUsecases "github.com/tosinajy/carrier-code-verify/internal/application/mapping/usecases"
	reconciliationUsecases "github.com/tosinajy/carrier-code-verify/internal/application/reconciliation/usecases"
	settingUsecases "github.com/tosinajy/carrier-code-verify/internal/application/setting/usecases"
	"github.com/tosinajy/carrier-code-verify/internal/application/user/usecases"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/ratelimit"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Auth
	login           *usecases.LoginUseCase
	logout          *usecases.LogoutUseCase
	validateSession *usecases.ValidateSessionUseCase
	cleanupSessions *usecases.CleanupSessionsUseCase

	// Directory (public)
	landingPage   *directoryUsecases.GetLandingPageUseCase
	listDirectory *directoryUsecases.ListDirectoryUseCase
	carrierDetail *directoryUsecases.GetCarrierDetailUseCase
	search        *directoryUsecases.SearchCarriersUseCase
	autocomplete  *directoryUsecases.AutocompleteUseCase
	lookupNaic    *directoryUsecases.LookupNaicUseCase

	// Reconciliation
	importPayers *reconciliationUsecases.ImportPayersUseCase
	importNaic   *reconciliationUsecases.ImportNaicUseCase
	addPayer     *reconciliationUsecases.AddPayerUseCase
	addNaic      *reconciliationUsecases.AddNaicUseCase

	// Mapping
	assignNaic       *mappingUsecases.AssignNaicUseCase
	processApprovals *mappingUsecases.ProcessApprovalsUseCase

	// Admin screens
	dashboard     *adminUsecases.GetDashboardUseCase
	listPayers    *adminUsecases.ListPayersUseCase
	listNaic      *adminUsecases.ListNaicUseCase
	listPending   *adminUsecases.ListPendingApprovalsUseCase
	listUsers     *adminUsecases.ListUsersUseCase
	displayFlags  *settingUsecases.DisplaySettingProvider
	getDisplay    *settingUsecases.GetDisplaySettingsUseCase
	updateDisplay *settingUsecases.UpdateDisplaySettingsUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	s := c.svcs

	loginRule := ratelimit.Rule{
		Limit:  c.cfg.Auth.LoginLimit.Attempts,
		Window: time.Duration(c.cfg.Auth.LoginLimit.WindowSeconds) * time.Second,
	}
	displayFlags := settingUsecases.NewDisplaySettingProvider(r.settingRepo, c.cfg.Display.ShowAdsDefault, c.log)

	c.ucs = &allUseCases{
		login: usecases.NewLoginUseCase(
			r.userRepo, r.sessionRepo, s.hasher, s.jwt, s.limiter, loginRule, c.cfg.Auth.JWT.SessionHours, c.log,
		),
		logout:          usecases.NewLogoutUseCase(r.sessionRepo, c.log),
		validateSession: usecases.NewValidateSessionUseCase(s.jwt, r.sessionRepo, r.userRepo, c.log),
		cleanupSessions: usecases.NewCleanupSessionsUseCase(r.sessionRepo, c.log),

		landingPage:   directoryUsecases.NewGetLandingPageUseCase(r.carrierRepo, r.payerRepo, r.naicRepo, s.markdown, c.log),
		listDirectory: directoryUsecases.NewListDirectoryUseCase(r.queryRepo, c.log),
		carrierDetail: directoryUsecases.NewGetCarrierDetailUseCase(r.queryRepo, r.auditRepo, c.log),
		search:        directoryUsecases.NewSearchCarriersUseCase(r.queryRepo, c.log),
		autocomplete:  directoryUsecases.NewAutocompleteUseCase(r.queryRepo, s.suggestionCache, c.log),
		lookupNaic:    directoryUsecases.NewLookupNaicUseCase(r.naicRepo, c.log),

		importPayers: reconciliationUsecases.NewImportPayersUseCase(r.payerRepo, s.txMgr, s.suggestionInvalid, c.log),
		importNaic:   reconciliationUsecases.NewImportNaicUseCase(r.naicRepo, s.txMgr, s.suggestionInvalid, c.log),
		addPayer:     reconciliationUsecases.NewAddPayerUseCase(r.payerRepo, s.suggestionInvalid, c.cfg.Import.DefaultClearingHouse, c.log),
		addNaic:      reconciliationUsecases.NewAddNaicUseCase(r.naicRepo, s.suggestionInvalid, c.log),

		assignNaic:       mappingUsecases.NewAssignNaicUseCase(r.payerRepo, r.naicRepo, s.notifier, c.log),
		processApprovals: mappingUsecases.NewProcessApprovalsUseCase(r.payerRepo, r.carrierRepo, r.auditRepo, s.txMgr, c.log),

		dashboard:     adminUsecases.NewGetDashboardUseCase(r.payerRepo, r.naicRepo, c.log),
		listPayers:    adminUsecases.NewListPayersUseCase(r.payerRepo, c.log),
		listNaic:      adminUsecases.NewListNaicUseCase(r.naicRepo, c.log),
		listPending:   adminUsecases.NewListPendingApprovalsUseCase(r.payerRepo, c.log),
		listUsers:     adminUsecases.NewListUsersUseCase(r.userRepo, c.log),
		displayFlags:  displayFlags,
		getDisplay:    settingUsecases.NewGetDisplaySettingsUseCase(displayFlags),
		updateDisplay: settingUsecases.NewUpdateDisplaySettingsUseCase(r.settingRepo, c.log),
	}
}
