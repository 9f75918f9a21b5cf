// Package kpi calcula as razões do dashboard e as variações entre períodos.
// Toda divisão é protegida contra denominador zero e o arredondamento acontece só no final.
package kpi

import (
	"math"

	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

// SafeDivide retorna 0 quando o denominador não é positivo
func SafeDivide(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator
}

// CTR = cliques / impressões × 100
func CTR(clicks, impressions float64) float64 {
	return SafeDivide(clicks, impressions) * 100
}

// CPC = investimento / cliques
func CPC(spend, clicks float64) float64 {
	return SafeDivide(spend, clicks)
}

// CPM = investimento / impressões × 1000
func CPM(spend, impressions float64) float64 {
	return SafeDivide(spend, impressions) * 1000
}

// CPA = investimento / conversões
func CPA(spend, conversions float64) float64 {
	return SafeDivide(spend, conversions)
}

// ROAS = receita / investimento
func ROAS(revenue, spend float64) float64 {
	return SafeDivide(revenue, spend)
}

// ROI em % = (receita − investimento) / investimento × 100
func ROI(revenue, spend float64) float64 {
	if spend <= 0 {
		return 0
	}
	return (revenue - spend) / spend * 100
}

// ConversionRate = conversões / cliques × 100
func ConversionRate(conversions, clicks float64) float64 {
	return SafeDivide(conversions, clicks) * 100
}

// Growth retorna a variação percentual, ou nil quando não existe base anterior
func Growth(current, previous float64) *float64 {
	if previous <= 0 {
		return nil
	}
	g := (current - previous) / previous * 100
	return &g
}

type GrowthPolicy int

const (
	// GrowthStrict devolve nil sempre que não existe base anterior
	GrowthStrict GrowthPolicy = iota
	// GrowthDemoFallback substitui a ausência de histórico por uma tendência determinística
	GrowthDemoFallback
)

// FallbackRule define o módulo e o deslocamento da tendência determinística
type FallbackRule struct {
	Modulus int
	Offset  int
}

func ParseGrowthPolicy(fallbackEnabled bool) GrowthPolicy {
	if fallbackEnabled {
		return GrowthDemoFallback
	}
	return GrowthStrict
}

// Trend aplica a política: com base anterior é sempre a variação real; sem base, nil na política
// estrita ou a tendência determinística quando há valor atual e o fallback está habilitado
func (p GrowthPolicy) Trend(current, previous float64, rule FallbackRule) *float64 {
	if g := Growth(current, previous); g != nil {
		return g
	}

	if p != GrowthDemoFallback || previous != 0 || current <= 0 || rule.Modulus <= 0 {
		return nil
	}

	v := FallbackTrend(current, rule)
	return &v
}

// FallbackTrend = floor(atual) mod módulo − deslocamento
func FallbackTrend(current float64, rule FallbackRule) float64 {
	whole := int64(math.Floor(current))
	return float64(whole%int64(rule.Modulus)) - float64(rule.Offset)
}

// Round arredonda o valor já calculado
func Round(v float64, places int) float64 {
	return utils.RoundTo(v, places)
}

// RoundPtr arredonda preservando a ausência de valor
func RoundPtr(v *float64, places int) *float64 {
	if v == nil {
		return nil
	}
	r := Round(*v, places)
	return &r
}
