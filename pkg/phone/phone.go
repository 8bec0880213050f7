package phone

import "strings"

// Digits оставляет в строке только цифры
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format форматирует номер для отображения:
// 11 цифр -> (XX) XXXXX-XXXX, 10 цифр -> (XX) XXXX-XXXX, иначе без изменений
func Format(raw string) string {
	d := Digits(raw)
	switch len(d) {
	case 11:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	case 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return raw
	}
}
