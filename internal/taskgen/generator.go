package taskgen

import (
	"errors"
	"strings"

	"deutschprofi_backend/internal/domain"

	"github.com/google/uuid"
	"github.com/valyala/fastrand"
)

// ErrModeUnsupported возвращается для режимов, которые генератор правил
// не покрывает: эталонные группы слов он построить не может
var ErrModeUnsupported = errors.New("генерация правилами доступна только для режима wortarten")

// Generator строит задания по эвристикам немецкой грамматики.
// Это запасной путь: полноценный контент приходит из внешнего
// хранилища заданий
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// Generate строит cfg.TaskCount заданий из пула примеров, перемешивая
// предложения для разнообразия
func (g *Generator) Generate(cfg domain.GameConfig) ([]domain.GameTask, error) {
	if cfg.GameMode.UsesGroupings() {
		return nil, ErrModeUnsupported
	}

	pool := append([]string(nil), sampleSentences[cfg.Difficulty]...)
	if len(pool) == 0 {
		pool = append(pool, sampleSentences[domain.DifficultyEasy]...)
	}
	shuffle(pool)

	tasks := make([]domain.GameTask, 0, cfg.TaskCount)
	for i := 0; i < cfg.TaskCount; i++ {
		sentence := pool[i%len(pool)]
		tasks = append(tasks, g.buildTask(sentence, cfg))
	}
	return tasks, nil
}

func (g *Generator) buildTask(sentence string, cfg domain.GameConfig) domain.GameTask {
	raw := strings.Fields(sentence)

	words := make([]domain.Word, 0, len(raw))
	for i, token := range raw {
		text := strings.TrimRight(token, ".,!?;:")
		words = append(words, domain.Word{
			ID:              uuid.NewString(),
			Text:            text,
			CorrectWordType: DetermineWordType(text),
			Position:        i,
		})
	}

	// в карту ответов попадают только слова выбранных категорий,
	// остальные должны отвечаться меткой "andere"
	selected := make(map[string]bool, len(cfg.WordTypes))
	for _, wt := range cfg.WordTypes {
		selected[wt] = true
	}
	correctAnswers := make(map[string]string)
	for _, w := range words {
		if selected[w.CorrectWordType] {
			correctAnswers[w.ID] = w.CorrectWordType
		}
	}

	return domain.GameTask{
		ID:             uuid.NewString(),
		Sentence:       sentence,
		Words:          words,
		CorrectAnswers: correctAnswers,
		TimeLimit:      TimeLimitFor(cfg.Difficulty),
	}
}

// TimeLimitFor возвращает лимит на задание в секундах по сложности.
// Сервер лимит не навязывает, значение информационное для UI
func TimeLimitFor(d domain.Difficulty) int {
	switch d {
	case domain.DifficultyMedium:
		return 20
	case domain.DifficultyHard:
		return 15
	default:
		return 30
	}
}

func shuffle(ss []string) {
	for i := len(ss) - 1; i > 0; i-- {
		j := int(fastrand.Uint32n(uint32(i + 1)))
		ss[i], ss[j] = ss[j], ss[i]
	}
}

var (
	artikelWords = wordSet("der", "die", "das", "ein", "eine", "einen", "einem", "einer", "eines")

	pronomenWords = wordSet("ich", "du", "er", "sie", "es", "wir", "ihr",
		"mich", "dich", "sich", "uns", "euch", "mein", "dein", "sein", "unser", "euer")

	praepositionWords = wordSet("in", "auf", "unter", "über", "neben", "zwischen", "durch",
		"für", "gegen", "ohne", "mit", "von", "zu", "bei", "nach", "vor", "hinter", "an", "um")

	konjunktionWords = wordSet("und", "oder", "aber", "denn", "sondern", "dass", "weil",
		"wenn", "obwohl", "damit", "während", "bevor", "nachdem", "bis", "seit", "sobald")

	adverbWords = wordSet("sehr", "nicht", "auch", "nur", "schon", "noch", "immer", "oft",
		"manchmal", "selten", "nie", "heute", "gestern", "morgen", "hier", "dort", "da", "so", "dann", "jetzt")
)

// DetermineWordType классифицирует слово эвристиками: сначала закрытые
// классы по спискам, затем суффиксы, затем заглавная буква как признак
// существительного
func DetermineWordType(word string) string {
	lower := strings.ToLower(word)

	switch {
	case artikelWords[lower]:
		return domain.WordTypeArtikel
	case pronomenWords[lower]:
		return domain.WordTypePronomen
	case praepositionWords[lower]:
		return domain.WordTypePraepositionen
	case konjunktionWords[lower]:
		return domain.WordTypeKonjunktionen
	case adverbWords[lower]:
		return domain.WordTypeAdverbien
	}

	if strings.HasSuffix(lower, "en") || strings.HasSuffix(lower, "st") ||
		strings.HasSuffix(lower, "t") || strings.HasSuffix(lower, "e") {
		return domain.WordTypeVerben
	}

	if strings.HasSuffix(lower, "ig") || strings.HasSuffix(lower, "lich") ||
		strings.HasSuffix(lower, "isch") || strings.HasSuffix(lower, "bar") ||
		strings.HasSuffix(lower, "sam") {
		return domain.WordTypeAdjektive
	}

	if first := []rune(word); len(first) > 0 && strings.ToUpper(string(first[0])) == string(first[0]) &&
		strings.ToLower(string(first[0])) != string(first[0]) {
		return domain.WordTypeNomen
	}

	return domain.WordTypeAdjektive
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
