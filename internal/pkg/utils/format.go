package utils

import "fmt"

// FormatDuration форматирует длительность в секундах в строку вида
// "2시간 15분" (при длительности от часа) или "45분"
func FormatDuration(seconds int) string {
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%d분", minutes)
	}
	return fmt.Sprintf("%d시간 %d분", minutes/60, minutes%60)
}

// FormatDistance форматирует расстояние в метрах в километры
// с одним знаком после запятой, например "12.4km"
func FormatDistance(meters int) string {
	return fmt.Sprintf("%.1fkm", float64(meters)/1000.0)
}
