package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	return RoundTo(f, 2)
}

func RoundWithOneDecimalPlace(f float64) float64 {
	return RoundTo(f, 1)
}

// RoundTo arredonda para a quantidade de casas decimais informada
func RoundTo(f float64, places int) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	pow := math.Pow(10, float64(places))
	return math.Round(f*pow) / pow
}

// FormatPercent formata com uma casa decimal e o sufixo %
func FormatPercent(f float64) string {
	return strconv.FormatFloat(RoundTo(f, 1), 'f', 1, 64) + "%"
}

// FormatDecimal formata com duas casas decimais
func FormatDecimal(f float64) string {
	return strconv.FormatFloat(RoundTo(f, 2), 'f', 2, 64)
}
