package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tosinajy/carrier-code-verify/internal/domain/audit"
	"github.com/tosinajy/carrier-code-verify/internal/domain/payer"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/models"
)

func TestPayerMapper(t *testing.T) {
	naicID := uint(5)
	m := NewPayerMapper()

	p := m.ToDomain(&models.PayerModel{
		PayerID:       2,
		PayerCode:     "60054",
		PayerName:     "Aetna",
		ClearingHouse: "Availity",
		NaicID:        &naicID,
		MappingStatus: "pending",
	})
	require.NotNil(t, p)
	assert.Equal(t, payer.StatusPending, p.Status())
	assert.Equal(t, uint(5), *p.NaicID())

	back := m.ToModel(p)
	assert.Equal(t, "pending", back.MappingStatus)
	assert.Equal(t, "Availity", back.ClearingHouse)

	assert.Nil(t, m.ToDomainList(nil))
	assert.Len(t, m.ToDomainList([]*models.PayerModel{{PayerID: 1}, nil}), 1)
}

func TestAuditMapper(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	model, err := AuditEntryToModel(&audit.Entry{
		CarrierID: 9,
		Action:    audit.ActionCreated,
		ChangedBy: "alice",
		ChangedAt: at,
		Changes:   map[string]any{"naic_id": 3},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"naic_id":3}`, string(model.Changes))

	e := AuditEntryToDomain(model)
	assert.Equal(t, uint(9), e.CarrierID)
	assert.Equal(t, float64(3), e.Changes["naic_id"])

	model.Changes = []byte("{broken")
	assert.NotNil(t, AuditEntryToDomain(model))
}
