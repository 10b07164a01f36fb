package domain

// Word - одно слово предложения с эталонной классификацией
type Word struct {
	ID                  string `json:"id"`
	Text                string `json:"text"`
	CorrectWordType     string `json:"correctWordType"`
	Position            int    `json:"position"`
	Explanation         string `json:"explanation,omitempty"`
	IsUncertain         bool   `json:"isUncertain,omitempty"`
	AlternativeWordType string `json:"alternativeWordType,omitempty"`
}

// SentencePart - эталонная группа слов для режимов satzglieder/fall
type SentencePart struct {
	WordIDs     []string `json:"wordIds"`
	CorrectType string   `json:"correctType"`
}

// GameTask - одна игровая единица контента. После передачи сессии задание
// не мутируется; CorrectAnswers содержит только слова, чей эталонный тип
// входит в выбранный набор категорий (отсутствие записи значимо при оценке)
type GameTask struct {
	ID             string            `json:"id"`
	Sentence       string            `json:"sentence"`
	Words          []Word            `json:"words"`
	CorrectAnswers map[string]string `json:"correctAnswers"`
	SentenceParts  []SentencePart    `json:"sentenceParts,omitempty"`
	TimeLimit      int               `json:"timeLimit,omitempty"`
}

// Grouping - присланная игроком группа слов с заявленной категорией
type Grouping struct {
	WordIDs []string `json:"wordIds"`
	Type    string   `json:"type"`
}
