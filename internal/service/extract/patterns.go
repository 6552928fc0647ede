package extract

import "regexp"

// fieldPattern - пара (шаблон, извлекатель). Шаблоны каждого поля
// перебираются по приоритету: от помеченного ключевым словом к голому
// числу. Новую формулировку OCR добавляем строкой таблицы, не кодом.
type fieldPattern struct {
	re *regexp.Regexp
	// accept извлекает значение из совпадения m (индексы как у
	// FindStringSubmatchIndex); ok=false - совпадение отвергнуто
	accept func(text string, m []int) (value string, ok bool)
}

// group1 - извлекатель по умолчанию: первая группа шаблона
func group1(text string, m []int) (string, bool) {
	return text[m[2]:m[3]], true
}

// rejectRatio отбрасывает числа, примыкающие к дроби вида "1/150g".
// RE2 не поддерживает lookaround, поэтому соседей совпадения
// проверяем кодом - ради этого шаблоны и ходят парой с извлекателем.
func rejectRatio(text string, m []int) (string, bool) {
	if m[0] > 0 && text[m[0]-1] == '/' {
		return "", false
	}
	if m[1] < len(text) && text[m[1]] == '/' {
		return "", false
	}
	return text[m[2]:m[3]], true
}

var (
	// Общее число игр: сначала метка, затем голое "NNNNg".
	// Голый вариант заведомо неоднозначен в тексте с несколькими
	// числами - это осознанный компромисс, без перекрёстных проверок.
	gamePatterns = []fieldPattern{
		{re: regexp.MustCompile(`(?:総回転数|総回転|総ゲーム数|ゲーム数|回転数|累計スタート|total\s*games?|spins?)\s*[:=]?\s*(\d{2,6})\s*g?`), accept: group1},
		{re: regexp.MustCompile(`(\d{3,6})g`), accept: rejectRatio},
	}

	// BIG: только помеченные варианты
	bigPatterns = []fieldPattern{
		{re: regexp.MustCompile(`(?:ビッグ|big|bb)\s*(?:回数)?\s*[:=]?\s*(\d{1,3})`), accept: group1},
	}

	// REG: только помеченные варианты
	regPatterns = []fieldPattern{
		{re: regexp.MustCompile(`(?:レギュラー|バケ|reg|rb)\s*(?:回数)?\s*[:=]?\s*(\d{1,3})`), accept: group1},
	}

	// Разница монет: метка, затем любое число с явным знаком.
	// Знак обязан сохраниться.
	diffPatterns = []fieldPattern{
		{re: regexp.MustCompile(`(?:差枚数|差枚|差コイン|差玉|diff)\s*[:=]?\s*([+-]?\d{1,6})`), accept: group1},
		{re: regexp.MustCompile(`([+-]\d{1,6})\s*(?:枚|coins?)?`), accept: group1},
	}
)

// firstMatch перебирает шаблоны по приоритету и возвращает первое
// принятое совпадение
func firstMatch(text string, pats []fieldPattern) (string, bool) {
	for _, p := range pats {
		for _, m := range p.re.FindAllStringSubmatchIndex(text, -1) {
			if val, ok := p.accept(text, m); ok {
				return val, true
			}
		}
	}
	return "", false
}
