package quote

import "errors"

var (
	// ErrProductNotFound возвращается, когда продукт не найден в каталоге
	ErrProductNotFound = errors.New("quote: charter product not found")

	// ErrProductNotBookable возвращается для продуктов без слотов (партнёрская линия)
	ErrProductNotBookable = errors.New("quote: product is not bookable")

	// ErrSlotNotForProduct возвращается, когда продукт не продаёт указанный слот
	ErrSlotNotForProduct = errors.New("quote: slot is not sold for this product")

	// ErrInvalidGuests возвращается при количестве гостей вне границ продукта
	ErrInvalidGuests = errors.New("quote: invalid guest count")

	// ErrOptionNotAllowed возвращается при недопустимой комбинации опций и слота
	ErrOptionNotAllowed = errors.New("quote: option is not allowed for this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote: internal error")
)
