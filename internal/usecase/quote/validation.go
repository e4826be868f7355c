package quote

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProductSlug == "" {
		return fmt.Errorf("%w: productSlug is required", ErrInvalidInput)
	}

	if req.SlotID == "" {
		return fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}

	if req.Guests <= 0 {
		return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}

	if req.VeganCount < 0 {
		return fmt.Errorf("%w: veganCount must not be negative", ErrInvalidInput)
	}

	return nil
}
