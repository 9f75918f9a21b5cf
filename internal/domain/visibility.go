package domain

// DataVisibilityPolicy define se linhas sintéticas (is_mock_data) entram nas consultas.
// A mesma política deve ser aplicada a todas as janelas de uma requisição.
type DataVisibilityPolicy struct {
	IncludeMockData bool
}

// VisibilityFromHideFlag converte a flag HIDE_MOCK_DATA em política
func VisibilityFromHideFlag(hideMockData bool) DataVisibilityPolicy {
	return DataVisibilityPolicy{IncludeMockData: !hideMockData}
}

func (p DataVisibilityPolicy) CacheKey() string {
	if p.IncludeMockData {
		return "all"
	}
	return "real"
}
