package domain

// Части речи (режим wortarten)
const (
	WordTypeNomen          = "nomen"
	WordTypeVerben         = "verben"
	WordTypeAdjektive      = "adjektive"
	WordTypeArtikel        = "artikel"
	WordTypePronomen       = "pronomen"
	WordTypeAdverbien      = "adverbien"
	WordTypePraepositionen = "präpositionen"
	WordTypeKonjunktionen  = "konjunktionen"

	// WordTypeAndere - специальная метка "другая часть речи": правильный
	// ответ для слова, чей эталонный тип не входит в выбранный набор
	WordTypeAndere = "andere"
)

// Члены предложения (режим satzglieder)
const (
	PartSubjekt    = "subjekt"
	PartPraedikat  = "prädikat"
	PartObjekt     = "objekt"
	PartAdverbiale = "adverbiale"
)

// Падежи (режим fall)
const (
	CaseNominativ = "nominativ"
	CaseGenitiv   = "genitiv"
	CaseDativ     = "dativ"
	CaseAkkusativ = "akkusativ"
)

// AllWordTypes - полный набор частей речи, доступных учителю при настройке
var AllWordTypes = []string{
	WordTypeNomen,
	WordTypeVerben,
	WordTypeAdjektive,
	WordTypeArtikel,
	WordTypePronomen,
	WordTypeAdverbien,
	WordTypePraepositionen,
	WordTypeKonjunktionen,
	WordTypeAndere,
}
