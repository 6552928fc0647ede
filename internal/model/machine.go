package model

// MachinePreset - константы модели автомата из каталога (config.yaml).
// Знаменатели заданы как "игр на одно попадание" и всегда > 0.
// После загрузки каталога не изменяется.
type MachinePreset struct {
	Name string

	// Знаменатели вероятностей малых ролей
	ReplayRate float64
	CherryRate float64
	BellRate   float64
	PieroRate  float64

	// Средние выплаты за бонусы (в монетах)
	BigPayout float64
	RegPayout float64

	// Выплаты за малые роли (в монетах)
	CherryPayout float64
	BellPayout   float64
	PieroPayout  float64
}

// CaptureStrategy - профиль игры: какую долю естественных попаданий
// малых ролей игрок реально забирает. Все доли в [0,1].
type CaptureStrategy struct {
	Name   string
	Cherry float64
	Bell   float64
	Piero  float64
}
