package domain

// QuoteLine is one labelled amount in a price breakdown.
type QuoteLine struct {
	Label       string
	AmountCents int64
}

// Quote is an ordered price breakdown plus its total.
// A quote is a pure function of its inputs and the pricing configuration:
// re-quoting identical inputs always yields an identical result.
type Quote struct {
	Currency   string
	Lines      []QuoteLine
	TotalCents int64
}

// AddLine appends a breakdown line and keeps the total in sync.
func (q *Quote) AddLine(label string, amountCents int64) {
	q.Lines = append(q.Lines, QuoteLine{Label: label, AmountCents: amountCents})
	q.TotalCents += amountCents
}
