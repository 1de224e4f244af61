package admin

import (
	"context"

	adminDto "github.com/tosinajy/carrier-code-verify/internal/application/admin/dto"
	adminUsecases "github.com/tosinajy/carrier-code-verify/internal/application/admin/usecases"
	mappingDto "github.com/tosinajy/carrier-code-verify/internal/application/mapping/dto"
	mappingUsecases "github.com/tosinajy/carrier-code-verify/internal/application/mapping/usecases"
	reconciliationDto "github.com/tosinajy/carrier-code-verify/internal/application/reconciliation/dto"
	reconciliationUsecases "github.com/tosinajy/carrier-code-verify/internal/application/reconciliation/usecases"
	settingDto "github.com/tosinajy/carrier-code-verify/internal/application/setting/dto"
)

type dashboardUseCase interface {
	Execute(ctx context.Context) (*adminDto.DashboardDTO, error)
}

type listPayersUseCase interface {
	Execute(ctx context.Context, q adminUsecases.ListPayersQuery) (*adminDto.PayerListDTO, error)
}

type listNaicUseCase interface {
	Execute(ctx context.Context, q adminUsecases.ListNaicQuery) (*adminDto.NaicListDTO, error)
}

type listPendingUseCase interface {
	Execute(ctx context.Context) ([]*adminDto.PayerDTO, error)
}

type listUsersUseCase interface {
	Execute(ctx context.Context) ([]*adminDto.UserDTO, error)
}

type importPayersUseCase interface {
	Execute(ctx context.Context, cmd reconciliationUsecases.ImportPayersCommand) (*reconciliationDto.ImportResult, error)
}

type importNaicUseCase interface {
	Execute(ctx context.Context, cmd reconciliationUsecases.ImportNaicCommand) (*reconciliationDto.ImportResult, error)
}

type addPayerUseCase interface {
	Execute(ctx context.Context, cmd reconciliationUsecases.AddPayerCommand) (*reconciliationDto.AddResult, error)
}

type addNaicUseCase interface {
	Execute(ctx context.Context, cmd reconciliationUsecases.AddNaicCommand) (*reconciliationDto.AddResult, error)
}

type assignNaicUseCase interface {
	Execute(ctx context.Context, cmd mappingUsecases.AssignNaicCommand) error
}

type processApprovalsUseCase interface {
	Execute(ctx context.Context, cmd mappingUsecases.ProcessApprovalsCommand) (*mappingDto.ProcessApprovalsResult, error)
}

type getDisplaySettingsUseCase interface {
	Execute(ctx context.Context) *settingDto.DisplaySettingsDTO
}

type updateDisplaySettingsUseCase interface {
	Execute(ctx context.Context, req settingDto.UpdateDisplaySettingsRequest, updatedBy uint) error
}
