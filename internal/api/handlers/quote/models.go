package quote

import (
	uc "github.com/calypso-charters/CharterBookingService/internal/usecase/quote"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	ProductSlug string `json:"productSlug"`
	SlotID      string `json:"slotId"`

	Guests     int  `json:"guests"`
	Nobu       bool `json:"nobu,omitempty"`
	Catering   bool `json:"catering,omitempty"`
	VeganCount int  `json:"veganCount,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос usecase
func (r *QuoteRequest) ToUseCaseRequest() *uc.Request {
	return &uc.Request{
		ProductSlug: r.ProductSlug,
		SlotID:      r.SlotID,
		Guests:      r.Guests,
		Nobu:        r.Nobu,
		Catering:    r.Catering,
		VeganCount:  r.VeganCount,
	}
}

// LineResponse строка детализации стоимости
type LineResponse struct {
	Label       string `json:"label"`
	AmountCents int64  `json:"amountCents"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Currency         string         `json:"currency"`
	Breakdown        []LineResponse `json:"breakdown"`
	TotalAmountCents int64          `json:"totalAmountCents"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *uc.Response) *QuoteResponse {
	breakdown := make([]LineResponse, 0, len(resp.Breakdown))
	for _, line := range resp.Breakdown {
		breakdown = append(breakdown, LineResponse{Label: line.Label, AmountCents: line.AmountCents})
	}

	return &QuoteResponse{
		Currency:         resp.Currency,
		Breakdown:        breakdown,
		TotalAmountCents: resp.TotalAmountCents,
	}
}
