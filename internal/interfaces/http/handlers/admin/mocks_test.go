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

type mockDashboardUC struct {
	result *adminDto.DashboardDTO
	err    error
}

func (m *mockDashboardUC) Execute(context.Context) (*adminDto.DashboardDTO, error) {
	return m.result, m.err
}

type mockListPayersUC struct {
	ExecuteFunc func(ctx context.Context, q adminUsecases.ListPayersQuery) (*adminDto.PayerListDTO, error)
}

func (m *mockListPayersUC) Execute(ctx context.Context, q adminUsecases.ListPayersQuery) (*adminDto.PayerListDTO, error) {
	return m.ExecuteFunc(ctx, q)
}

type mockListNaicUC struct {
	ExecuteFunc func(ctx context.Context, q adminUsecases.ListNaicQuery) (*adminDto.NaicListDTO, error)
}

func (m *mockListNaicUC) Execute(ctx context.Context, q adminUsecases.ListNaicQuery) (*adminDto.NaicListDTO, error) {
	return m.ExecuteFunc(ctx, q)
}

type mockListPendingUC struct {
	result []*adminDto.PayerDTO
	err    error
}

func (m *mockListPendingUC) Execute(context.Context) ([]*adminDto.PayerDTO, error) {
	return m.result, m.err
}

type mockListUsersUC struct {
	result []*adminDto.UserDTO
	err    error
}

func (m *mockListUsersUC) Execute(context.Context) ([]*adminDto.UserDTO, error) {
	return m.result, m.err
}

type mockImportPayersUC struct {
	ExecuteFunc func(ctx context.Context, cmd reconciliationUsecases.ImportPayersCommand) (*reconciliationDto.ImportResult, error)
}

func (m *mockImportPayersUC) Execute(ctx context.Context, cmd reconciliationUsecases.ImportPayersCommand) (*reconciliationDto.ImportResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockImportNaicUC struct {
	ExecuteFunc func(ctx context.Context, cmd reconciliationUsecases.ImportNaicCommand) (*reconciliationDto.ImportResult, error)
}

func (m *mockImportNaicUC) Execute(ctx context.Context, cmd reconciliationUsecases.ImportNaicCommand) (*reconciliationDto.ImportResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockAddPayerUC struct {
	ExecuteFunc func(ctx context.Context, cmd reconciliationUsecases.AddPayerCommand) (*reconciliationDto.AddResult, error)
}

func (m *mockAddPayerUC) Execute(ctx context.Context, cmd reconciliationUsecases.AddPayerCommand) (*reconciliationDto.AddResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockAddNaicUC struct {
	ExecuteFunc func(ctx context.Context, cmd reconciliationUsecases.AddNaicCommand) (*reconciliationDto.AddResult, error)
}

func (m *mockAddNaicUC) Execute(ctx context.Context, cmd reconciliationUsecases.AddNaicCommand) (*reconciliationDto.AddResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockAssignNaicUC struct {
	ExecuteFunc func(ctx context.Context, cmd mappingUsecases.AssignNaicCommand) error
}

func (m *mockAssignNaicUC) Execute(ctx context.Context, cmd mappingUsecases.AssignNaicCommand) error {
	return m.ExecuteFunc(ctx, cmd)
}

type mockProcessApprovalsUC struct {
	ExecuteFunc func(ctx context.Context, cmd mappingUsecases.ProcessApprovalsCommand) (*mappingDto.ProcessApprovalsResult, error)
}

func (m *mockProcessApprovalsUC) Execute(ctx context.Context, cmd mappingUsecases.ProcessApprovalsCommand) (*mappingDto.ProcessApprovalsResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockGetDisplayUC struct {
	showAds bool
}

func (m *mockGetDisplayUC) Execute(context.Context) *settingDto.DisplaySettingsDTO {
	return &settingDto.DisplaySettingsDTO{ShowAds: m.showAds}
}

type mockUpdateDisplayUC struct {
	requests  []settingDto.UpdateDisplaySettingsRequest
	updatedBy []uint
	err       error
}

func (m *mockUpdateDisplayUC) Execute(_ context.Context, req settingDto.UpdateDisplaySettingsRequest, updatedBy uint) error {
	m.requests = append(m.requests, req)
	m.updatedBy = append(m.updatedBy, updatedBy)
	return m.err
}
