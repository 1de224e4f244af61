package mappers

// toDomainList maps a model slice, dropping nil results. A nil input stays nil.
func toDomainList[M any, D any](modelList []*M, toDomain func(*M) *D) []*D {
	if modelList == nil {
		return nil
	}

	domains := make([]*D, 0, len(modelList))
	for _, model := range modelList {
		if domain := toDomain(model); domain != nil {
			domains = append(domains, domain)
		}
	}
	return domains
}
