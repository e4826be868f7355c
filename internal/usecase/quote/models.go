package quote

// Request запрос на расчёт стоимости
type Request struct {
	ProductSlug string
	SlotID      string

	Guests     int
	Nobu       bool
	Catering   bool
	VeganCount int
}

// Line строка детализации стоимости
type Line struct {
	Label       string
	AmountCents int64
}

// Response детализированная стоимость
type Response struct {
	Currency         string
	Breakdown        []Line
	TotalAmountCents int64
}
