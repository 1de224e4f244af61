package usecases

import (
	"context"
	_ "embed"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tosinajy/carrier-code-verify/internal/application/directory/dto"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/services/markdown"
)

//go:embed content/landing.md
var landingMarkdown string

// Counter is satisfied by the carrier, payer and naic repositories.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type GetLandingPageUseCase struct {
	carriers Counter
	payers   Counter
	naics    Counter
	markdown markdown.MarkdownService
	logger   logger.Interface

	renderOnce sync.Once
	html       string
	renderErr  error
}

func NewGetLandingPageUseCase(
	carriers Counter,
	payers Counter,
	naics Counter,
	markdownService markdown.MarkdownService,
	logger logger.Interface,
) *GetLandingPageUseCase {
	return &GetLandingPageUseCase{
		carriers: carriers,
		payers:   payers,
		naics:    naics,
		markdown: markdownService,
		logger:   logger,
	}
}

// Execute renders the embedded landing copy once and pairs it with live counts.
func (uc *GetLandingPageUseCase) Execute(ctx context.Context) (*dto.LandingPageDTO, error) {
	uc.renderOnce.Do(func() {
		uc.html, uc.renderErr = uc.markdown.ToHTMLSanitized(landingMarkdown)
	})
	if uc.renderErr != nil {
		uc.logger.Errorw("failed to render landing page", "error", uc.renderErr)
		return nil, uc.renderErr
	}

	var counts dto.LandingCountsDTO
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts.Carriers, err = uc.carriers.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		counts.Payers, err = uc.payers.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		counts.Naic, err = uc.naics.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to count landing page totals", "error", err)
		return nil, err
	}

	return &dto.LandingPageDTO{ContentHTML: uc.html, Counts: counts}, nil
}
