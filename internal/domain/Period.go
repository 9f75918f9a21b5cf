package domain

import (
	"strings"
	"time"
)

// DateLayout é o formato de data aceito nos filtros (YYYY-MM-DD)
const DateLayout = "2006-01-02"

type Period string

const (
	PeriodLast7Days  Period = "7d"
	PeriodLast30Days Period = "30d"
	PeriodThisMonth  Period = "this_month"
	PeriodLastMonth  Period = "last_month"
	PeriodCustom     Period = "custom"
)

// DefaultPeriod é usado quando nenhum período ou intervalo explícito é informado
const DefaultPeriod = PeriodLast7Days

func (p Period) IsValid() bool {
	switch p {
	case PeriodLast7Days, PeriodLast30Days, PeriodThisMonth, PeriodLastMonth:
		return true
	}
	return false
}

// DateRange é um intervalo inclusivo de dias em UTC
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: truncateDay(start), End: truncateDay(end)}
}

func (d DateRange) IsZero() bool {
	return d.Start.IsZero() && d.End.IsZero()
}

// Days retorna a quantidade de dias do intervalo, contando as duas pontas
func (d DateRange) Days() int {
	if d.IsZero() {
		return 0
	}
	return int(d.End.Sub(d.Start).Hours()/24) + 1
}

func (d DateRange) Contains(t time.Time) bool {
	day := truncateDay(t)
	return !day.Before(d.Start) && !day.After(d.End)
}

// EachDay lista todos os dias do intervalo em ordem crescente
func (d DateRange) EachDay() []time.Time {
	days := make([]time.Time, 0, d.Days())
	for day := d.Start; !day.After(d.End); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

func (d DateRange) From() string {
	return d.Start.Format(DateLayout)
}

func (d DateRange) To() string {
	return d.End.Format(DateLayout)
}

// PeriodParams são os parâmetros de período recebidos na requisição
type PeriodParams struct {
	Period    string
	StartDate string
	EndDate   string
}

func (p PeriodParams) HasExplicitRange() bool {
	return strings.TrimSpace(p.StartDate) != "" || strings.TrimSpace(p.EndDate) != ""
}

// QueryRange é a janela consultada e a janela anterior usada no cálculo de crescimento
type QueryRange struct {
	Period   Period
	Current  DateRange
	Previous DateRange
}

// ResolveQueryRange converte o período (ou intervalo explícito) em datas concretas.
// Um intervalo explícito tem precedência sobre o token de período.
func ResolveQueryRange(params PeriodParams, now time.Time) (QueryRange, error) {
	return ResolveQueryRangeWithDefault(params, DefaultPeriod, now)
}

func ResolveQueryRangeWithDefault(params PeriodParams, fallback Period, now time.Time) (QueryRange, error) {
	if params.HasExplicitRange() {
		current, err := ParseDateRange(params.StartDate, params.EndDate)
		if err != nil {
			return QueryRange{}, err
		}

		return QueryRange{
			Period:   PeriodCustom,
			Current:  current,
			Previous: precedingWindow(current),
		}, nil
	}

	period := Period(strings.TrimSpace(params.Period))
	if period == "" {
		period = fallback
	}

	today := truncateDay(now)

	switch period {
	case PeriodLast7Days:
		return lastDays(period, today, 7), nil
	case PeriodLast30Days:
		return lastDays(period, today, 30), nil
	case PeriodThisMonth:
		firstDay := firstDayOfMonth(today)
		prevFirstDay := firstDay.AddDate(0, -1, 0)
		prevEnd := clampToMonth(prevFirstDay, today.Day())

		return QueryRange{
			Period:   period,
			Current:  DateRange{Start: firstDay, End: today},
			Previous: DateRange{Start: prevFirstDay, End: prevEnd},
		}, nil
	case PeriodLastMonth:
		qr := MonthQueryRange(firstDayOfMonth(today).AddDate(0, -1, 0))
		qr.Period = period
		return qr, nil
	}

	return QueryRange{}, ErrInvalidPeriod
}

// MonthQueryRange devolve o mês completo de t comparado ao mês completo anterior
func MonthQueryRange(t time.Time) QueryRange {
	current := fullMonth(firstDayOfMonth(t.UTC()))
	previous := fullMonth(current.Start.AddDate(0, -1, 0))

	return QueryRange{Period: PeriodCustom, Current: current, Previous: previous}
}

// ParseDateRange valida um intervalo explícito: as duas datas são obrigatórias e o fim não pode ser anterior ao início
func ParseDateRange(startDate, endDate string) (DateRange, error) {
	startDate = strings.TrimSpace(startDate)
	endDate = strings.TrimSpace(endDate)

	if startDate == "" || endDate == "" {
		return DateRange{}, ErrInvalidDateRange
	}

	start, err := time.ParseInLocation(DateLayout, startDate, time.UTC)
	if err != nil {
		return DateRange{}, ErrInvalidDateRange
	}

	end, err := time.ParseInLocation(DateLayout, endDate, time.UTC)
	if err != nil {
		return DateRange{}, ErrInvalidDateRange
	}

	if end.Before(start) {
		return DateRange{}, ErrInvalidDateRange
	}

	return DateRange{Start: start, End: end}, nil
}

// LastDays retorna os últimos n dias terminando em now, sem janela anterior
func LastDays(now time.Time, days int) DateRange {
	today := truncateDay(now)
	return DateRange{Start: today.AddDate(0, 0, -(days - 1)), End: today}
}

func lastDays(period Period, today time.Time, days int) QueryRange {
	current := DateRange{Start: today.AddDate(0, 0, -(days - 1)), End: today}
	return QueryRange{Period: period, Current: current, Previous: precedingWindow(current)}
}

// precedingWindow retorna a janela de mesmo tamanho imediatamente anterior
func precedingWindow(current DateRange) DateRange {
	days := current.Days()
	return DateRange{
		Start: current.Start.AddDate(0, 0, -days),
		End:   current.Start.AddDate(0, 0, -1),
	}
}

func fullMonth(firstDay time.Time) DateRange {
	return DateRange{Start: firstDay, End: firstDay.AddDate(0, 1, -1)}
}

func firstDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// clampToMonth posiciona no dia informado sem ultrapassar o último dia do mês
func clampToMonth(firstDay time.Time, day int) time.Time {
	lastDay := firstDay.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstDay.Year(), firstDay.Month(), day, 0, 0, 0, 0, time.UTC)
}

func truncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthPeriod formata a data no padrão mm-yyyy usado nos relatórios mensais
func MonthPeriod(t time.Time) string {
	return t.Format("01-2006")
}

// ParseMonthPeriod converte mm-yyyy no intervalo do mês completo
func ParseMonthPeriod(period string) (DateRange, error) {
	t, err := time.ParseInLocation("01-2006", period, time.UTC)
	if err != nil {
		return DateRange{}, ErrInvalidPeriod
	}
	return fullMonth(t), nil
}
