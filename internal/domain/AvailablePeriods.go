package domain

import (
	"sort"
	"strings"
)

// AvailablePeriods representa os períodos mensais com snapshot disponível
type AvailablePeriods struct {
	Periods []string `json:"periods"` // Lista de períodos no formato mm-yyyy
	Years   []string `json:"years"`   // Lista de anos únicos disponíveis
	Months  []string `json:"months"`  // Lista de meses únicos disponíveis
}

// NewAvailablePeriods monta a lista a partir dos períodos mm-yyyy, ignorando valores fora do formato
func NewAvailablePeriods(periods []string) *AvailablePeriods {
	result := &AvailablePeriods{Periods: []string{}, Years: []string{}, Months: []string{}}
	years := map[string]bool{}
	months := map[string]bool{}

	for _, period := range periods {
		parts := strings.Split(period, "-")
		if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 4 {
			continue
		}

		result.Periods = append(result.Periods, period)
		if !months[parts[0]] {
			months[parts[0]] = true
			result.Months = append(result.Months, parts[0])
		}
		if !years[parts[1]] {
			years[parts[1]] = true
			result.Years = append(result.Years, parts[1])
		}
	}

	// Mais recentes primeiro
	sort.SliceStable(result.Periods, func(i, j int) bool {
		pi, pj := result.Periods[i], result.Periods[j]
		if pi[3:] != pj[3:] {
			return pi[3:] > pj[3:]
		}
		return pi[:2] > pj[:2]
	})
	sort.Sort(sort.Reverse(sort.StringSlice(result.Years)))
	sort.Strings(result.Months)

	return result
}
