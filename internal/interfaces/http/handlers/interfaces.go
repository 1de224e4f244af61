package handlers

import (
	"context"

	directoryDto "github.com/tosinajy/carrier-code-verify/internal/application/directory/dto"
	directoryUsecases "github.com/tosinajy/carrier-code-verify/internal/application/directory/usecases"
	userUsecases "github.com/tosinajy/carrier-code-verify/internal/application/user/usecases"
)

// Use case interfaces for the public and auth handlers - enables unit testing with mocks.

type landingPageUseCase interface {
	Execute(ctx context.Context) (*directoryDto.LandingPageDTO, error)
}

type listDirectoryUseCase interface {
	Execute(ctx context.Context, q directoryUsecases.ListDirectoryQuery) (*directoryDto.DirectoryPageDTO, error)
}

type carrierDetailUseCase interface {
	Execute(ctx context.Context, carrierID uint) (*directoryDto.CarrierDetailDTO, error)
}

type searchCarriersUseCase interface {
	Execute(ctx context.Context, term string) ([]*directoryDto.SearchHitDTO, error)
}

type autocompleteUseCase interface {
	Execute(ctx context.Context, term string) []*directoryDto.SuggestionDTO
}

type lookupNaicUseCase interface {
	Execute(ctx context.Context, term string) ([]*directoryDto.NaicOptionDTO, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd userUsecases.LoginCommand) (*userUsecases.LoginResult, error)
}

type logoutUseCase interface {
	Execute(ctx context.Context, sessionID string) error
}

// databasePinger is satisfied by *sql.DB.
type databasePinger interface {
	PingContext(ctx context.Context) error
}
