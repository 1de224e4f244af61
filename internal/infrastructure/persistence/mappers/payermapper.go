package mappers

import (
	"github.com/tosinajy/carrier-code-verify/internal/domain/payer"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/models"
)

type PayerMapper interface {
	ToDomain(model *models.PayerModel) *payer.Payer
	ToModel(p *payer.Payer) *models.PayerModel
	ToDomainList(modelList []*models.PayerModel) []*payer.Payer
}

type PayerMapperImpl struct{}

func NewPayerMapper() PayerMapper {
	return &PayerMapperImpl{}
}

func (m *PayerMapperImpl) ToDomain(model *models.PayerModel) *payer.Payer {
	if model == nil {
		return nil
	}
	return payer.ReconstructPayer(
		model.PayerID,
		model.PayerCode,
		model.PayerName,
		model.ClearingHouse,
		model.NaicID,
		payer.MappingStatus(model.MappingStatus),
	)
}

func (m *PayerMapperImpl) ToModel(p *payer.Payer) *models.PayerModel {
	if p == nil {
		return nil
	}
	return &models.PayerModel{
		PayerID:       p.ID(),
		PayerCode:     p.Code(),
		PayerName:     p.Name(),
		ClearingHouse: p.ClearingHouse(),
		NaicID:        p.NaicID(),
		MappingStatus: p.Status().String(),
	}
}

func (m *PayerMapperImpl) ToDomainList(modelList []*models.PayerModel) []*payer.Payer {
	return toDomainList(modelList, m.ToDomain)
}
