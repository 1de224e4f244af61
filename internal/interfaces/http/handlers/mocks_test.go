package handlers

import (
	"context"

	directoryDto "github.com/tosinajy/carrier-code-verify/internal/application/directory/dto"
	directoryUsecases "github.com/tosinajy/carrier-code-verify/internal/application/directory/usecases"
	userUsecases "github.com/tosinajy/carrier-code-verify/internal/application/user/usecases"
)

type mockLandingUC struct {
	ExecuteFunc func(ctx context.Context) (*directoryDto.LandingPageDTO, error)
}

func (m *mockLandingUC) Execute(ctx context.Context) (*directoryDto.LandingPageDTO, error) {
	return m.ExecuteFunc(ctx)
}

type mockListDirectoryUC struct {
	ExecuteFunc func(ctx context.Context, q directoryUsecases.ListDirectoryQuery) (*directoryDto.DirectoryPageDTO, error)
}

func (m *mockListDirectoryUC) Execute(ctx context.Context, q directoryUsecases.ListDirectoryQuery) (*directoryDto.DirectoryPageDTO, error) {
	return m.ExecuteFunc(ctx, q)
}

type mockCarrierDetailUC struct {
	ExecuteFunc func(ctx context.Context, carrierID uint) (*directoryDto.CarrierDetailDTO, error)
}

func (m *mockCarrierDetailUC) Execute(ctx context.Context, carrierID uint) (*directoryDto.CarrierDetailDTO, error) {
	return m.ExecuteFunc(ctx, carrierID)
}

type mockSearchUC struct {
	ExecuteFunc func(ctx context.Context, term string) ([]*directoryDto.SearchHitDTO, error)
}

func (m *mockSearchUC) Execute(ctx context.Context, term string) ([]*directoryDto.SearchHitDTO, error) {
	return m.ExecuteFunc(ctx, term)
}

type mockAutocompleteUC struct {
	ExecuteFunc func(ctx context.Context, term string) []*directoryDto.SuggestionDTO
}

func (m *mockAutocompleteUC) Execute(ctx context.Context, term string) []*directoryDto.SuggestionDTO {
	return m.ExecuteFunc(ctx, term)
}

type mockLookupNaicUC struct {
	ExecuteFunc func(ctx context.Context, term string) ([]*directoryDto.NaicOptionDTO, error)
}

func (m *mockLookupNaicUC) Execute(ctx context.Context, term string) ([]*directoryDto.NaicOptionDTO, error) {
	return m.ExecuteFunc(ctx, term)
}

type mockLoginUC struct {
	ExecuteFunc func(ctx context.Context, cmd userUsecases.LoginCommand) (*userUsecases.LoginResult, error)
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd userUsecases.LoginCommand) (*userUsecases.LoginResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockLogoutUC struct {
	sessionIDs []string
	err        error
}

func (m *mockLogoutUC) Execute(_ context.Context, sessionID string) error {
	m.sessionIDs = append(m.sessionIDs, sessionID)
	return m.err
}

type mockPinger struct {
	err error
}

func (m *mockPinger) PingContext(context.Context) error {
	return m.err
}
