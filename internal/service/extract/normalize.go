package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

var (
	// Запятая-разделитель тысяч между цифрами
	thousandsComma = regexp.MustCompile(`(\d),(\d)`)
	// Прогоны пробелов, табов и оставшихся запятых
	separatorRun = regexp.MustCompile(`[ \t,]+`)
)

// Отдельные варианты минуса, которые width.Fold не сводит к ASCII
var minusReplacer = strings.NewReplacer(
	"−", "-", // математический минус
	"‐", "-", // дефис
	"―", "-", // горизонтальная черта
)

// Normalize приводит сырой текст распознавания к канонической форме:
// полноширинные цифры/латиница/знаки становятся ASCII, полуширинная кана -
// полной, разделители тысяч убираются, прогоны пробелов схлопываются,
// буквы переводятся в нижний регистр. Повторная нормализация ничего
// не меняет - на этом стоит пайплайн.
func Normalize(raw string) string {
	// OCR движки на смешанных шрифтах часто выдают полноширинные
	// глифы: Ｇ, ３２００, ＋, －. Сводим до ASCII до любого матчинга.
	text := width.Fold.String(raw)
	text = minusReplacer.Replace(text)

	// "1,234,567" -> "1234567" (прогоняем до неподвижной точки)
	for {
		next := thousandsComma.ReplaceAllString(text, "$1$2")
		if next == text {
			break
		}
		text = next
	}

	text = separatorRun.ReplaceAllString(text, " ")

	return strings.ToLower(strings.TrimSpace(text))
}
