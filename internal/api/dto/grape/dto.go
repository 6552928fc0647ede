package grape

type AnalyzeRequest struct {
	Model string `json:"model"` // Имя модели автомата из каталога
	Games string `json:"games"` // Общее число игр (как набрано)
	Big   string `json:"big"`   // Количество BIG
	Reg   string `json:"reg"`   // Количество REG
	Diff  string `json:"diff"`  // Разница монет, со знаком
}

type AnalyzeResponse struct {
	Model   string           `json:"model"`
	Games   int              `json:"games"`
	Big     int              `json:"big"`
	Reg     int              `json:"reg"`
	Diff    int              `json:"diff"`
	Results []StrategyResult `json:"results"` // По одной записи на стратегию
}

type StrategyResult struct {
	Strategy    string  `json:"strategy"`
	Grapes      float64 `json:"grapes"`      // Выведенное число попаданий
	Probability string  `json:"probability"` // "1/6.02" либо "-"
	Reconciled  bool    `json:"reconciled"`  // false - баланс не сошёлся, ноль после отсечения
}

type ExtractRequest struct {
	Text     string `json:"text,omitempty"`      // Сырой текст OCR, если он уже есть
	ImageB64 string `json:"image_b64,omitempty"` // Либо скриншот в base64
	Mime     string `json:"mime,omitempty"`
}

type ExtractResponse struct {
	Recognized bool             `json:"recognized"` // false - ни одно поле не найдено, нужен снимок почётче
	RawText    string           `json:"raw_text,omitempty"`
	Fields     *ExtractedFields `json:"fields,omitempty"`
}

// Отсутствующие поля опускаются: клиент не должен затирать ими
// уже введённые значения
type ExtractedFields struct {
	Model *string `json:"model,omitempty"`
	Games *int    `json:"games,omitempty"`
	Big   *int    `json:"big,omitempty"`
	Reg   *int    `json:"reg,omitempty"`
	Diff  *int    `json:"diff,omitempty"`
}

type SessionResponse struct {
	Model string `json:"model"`
	Games string `json:"games"`
	Big   string `json:"big"`
	Reg   string `json:"reg"`
	Diff  string `json:"diff"`
}

type HistoryEntry struct {
	Model     string            `json:"model"`
	Summary   []StrategySummary `json:"summary"`
	CreatedAt string            `json:"created_at"`
}

type StrategySummary struct {
	Strategy    string `json:"strategy"`
	Probability string `json:"probability"`
}

type CatalogResponse struct {
	Machines   []Machine  `json:"machines"`
	Strategies []Strategy `json:"strategies"`
}

type Machine struct {
	Name         string  `json:"name"`
	Replay       float64 `json:"replay"`
	Cherry       float64 `json:"cherry"`
	Bell         float64 `json:"bell"`
	Piero        float64 `json:"piero"`
	BigPayout    float64 `json:"big_payout"`
	RegPayout    float64 `json:"reg_payout"`
	CherryPayout float64 `json:"cherry_payout"`
	BellPayout   float64 `json:"bell_payout"`
	PieroPayout  float64 `json:"piero_payout"`
}

type Strategy struct {
	Name   string  `json:"name"`
	Cherry float64 `json:"cherry"`
	Bell   float64 `json:"bell"`
	Piero  float64 `json:"piero"`
}

type UsageResponse struct {
	Analyses       int            `json:"analyses"`
	AnalysesByName map[string]int `json:"analyses_by_model"`
	Extracts       int            `json:"extracts"`
	Recognized     int            `json:"recognized"`
	Empty          int            `json:"empty"`
}
