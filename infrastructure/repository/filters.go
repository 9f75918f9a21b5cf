package repository

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// withVisibility exclui as linhas sintéticas quando a política não as inclui
func withVisibility(builder squirrel.SelectBuilder, column string, policy domain.DataVisibilityPolicy) squirrel.SelectBuilder {
	if policy.IncludeMockData {
		return builder
	}
	return builder.Where(squirrel.Eq{column: false})
}

// withDateRange aplica o intervalo inclusivo; intervalo vazio não filtra
func withDateRange(builder squirrel.SelectBuilder, column string, dateRange domain.DateRange) squirrel.SelectBuilder {
	if dateRange.IsZero() {
		return builder
	}
	return builder.
		Where(squirrel.GtOrEq{column: dateRange.From()}).
		Where(squirrel.LtOrEq{column: dateRange.To()})
}

// likeEscaper neutraliza os curingas do LIKE; o Postgres usa a barra invertida como escape padrão
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern monta o padrão de busca por trecho literal
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
