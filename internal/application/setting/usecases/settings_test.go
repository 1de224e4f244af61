package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tosinajy/carrier-code-verify/internal/application/setting/dto"
	"github.com/tosinajy/carrier-code-verify/internal/domain/setting"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/testdb"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/repository"
	sharedErrors "github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

type mockSettingRepository struct {
	GetByKeyFunc      func(ctx context.Context, category, key string) (*setting.SystemSetting, error)
	GetByCategoryFunc func(ctx context.Context, category string) ([]*setting.SystemSetting, error)
	UpsertFunc        func(ctx context.Context, s *setting.SystemSetting) error
}

func (m *mockSettingRepository) GetByKey(ctx context.Context, category, key string) (*setting.SystemSetting, error) {
	return m.GetByKeyFunc(ctx, category, key)
}

func (m *mockSettingRepository) GetByCategory(ctx context.Context, category string) ([]*setting.SystemSetting, error) {
	return m.GetByCategoryFunc(ctx, category)
}

func (m *mockSettingRepository) Upsert(ctx context.Context, s *setting.SystemSetting) error {
	return m.UpsertFunc(ctx, s)
}

func TestDisplaySettings_RoundTrip(t *testing.T) {
	repo := repository.NewSystemSettingRepository(testdb.New(t), logger.NewNopLogger())
	provider := NewDisplaySettingProvider(repo, true, logger.NewNopLogger())
	get := NewGetDisplaySettingsUseCase(provider)
	update := NewUpdateDisplaySettingsUseCase(repo, logger.NewNopLogger())
	ctx := context.Background()

	assert.True(t, get.Execute(ctx).ShowAds, "default applies before the row exists")

	require.NoError(t, update.Execute(ctx, dto.UpdateDisplaySettingsRequest{ShowAds: false}, 1))
	assert.False(t, get.Execute(ctx).ShowAds)

	require.NoError(t, update.Execute(ctx, dto.UpdateDisplaySettingsRequest{ShowAds: true}, 1))
	assert.True(t, provider.ShowAds(ctx))

	stored, err := repo.GetByKey(ctx, setting.CategoryDisplay, setting.KeyShowAds)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Version())
}

func TestDisplaySettingProvider_FallsBackToDefault(t *testing.T) {
	tests := []struct {
		name string
		get  func(ctx context.Context, category, key string) (*setting.SystemSetting, error)
	}{
		{"read error", func(context.Context, string, string) (*setting.SystemSetting, error) {
			return nil, errors.New("db down")
		}},
		{"empty value", func(context.Context, string, string) (*setting.SystemSetting, error) {
			s, err := setting.NewSystemSetting(setting.CategoryDisplay, setting.KeyShowAds, setting.ValueTypeBool, "")
			return s, err
		}},
		{"garbage value", func(context.Context, string, string) (*setting.SystemSetting, error) {
			return setting.ReconstructSystemSetting(1, setting.CategoryDisplay, setting.KeyShowAds, "maybe",
				setting.ValueTypeBool, "", 0, 1, zeroTime, zeroTime), nil
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := NewDisplaySettingProvider(&mockSettingRepository{GetByKeyFunc: tt.get}, true, logger.NewNopLogger())
			assert.True(t, provider.ShowAds(context.Background()))
		})
	}
}

var zeroTime time.Time

func TestUpdateDisplaySettings_StorageError(t *testing.T) {
	repo := &mockSettingRepository{
		GetByKeyFunc: func(context.Context, string, string) (*setting.SystemSetting, error) {
			return nil, setting.ErrSettingNotFound
		},
		UpsertFunc: func(context.Context, *setting.SystemSetting) error {
			return errors.New("read-only")
		},
	}
	err := NewUpdateDisplaySettingsUseCase(repo, logger.NewNopLogger()).Execute(context.Background(), dto.UpdateDisplaySettingsRequest{}, 1)
	require.Error(t, err)
	appErr := sharedErrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, sharedErrors.ErrorTypeInternal, appErr.Type)
}
