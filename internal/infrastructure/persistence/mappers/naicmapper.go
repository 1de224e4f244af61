package mappers

import (
	"github.com/tosinajy/carrier-code-verify/internal/domain/naic"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/persistence/models"
)

type NaicMapper interface {
	ToDomain(model *models.NaicModel) *naic.Record
	ToModel(record *naic.Record) *models.NaicModel
	ToDomainList(modelList []*models.NaicModel) []*naic.Record
}

type NaicMapperImpl struct{}

func NewNaicMapper() NaicMapper {
	return &NaicMapperImpl{}
}

func (m *NaicMapperImpl) ToDomain(model *models.NaicModel) *naic.Record {
	if model == nil {
		return nil
	}
	return naic.ReconstructRecord(model.NaicID, model.Cocode, model.CompanyName)
}

func (m *NaicMapperImpl) ToModel(record *naic.Record) *models.NaicModel {
	if record == nil {
		return nil
	}
	return &models.NaicModel{
		NaicID:      record.ID(),
		Cocode:      record.Cocode(),
		CompanyName: record.CompanyName(),
	}
}

func (m *NaicMapperImpl) ToDomainList(modelList []*models.NaicModel) []*naic.Record {
	return toDomainList(modelList, m.ToDomain)
}
