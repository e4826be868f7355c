package get_availability

import "errors"

var (
	// ErrProductNotFound возвращается, когда продукт не найден в каталоге
	ErrProductNotFound = errors.New("get_availability: charter product not found")

	// ErrProductNotBookable возвращается для продуктов без слотов (партнёрская линия)
	ErrProductNotBookable = errors.New("get_availability: product is not bookable")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("get_availability: invalid date range")

	// ErrRangeTooLarge возвращается, когда диапазон превышает допустимый максимум
	ErrRangeTooLarge = errors.New("get_availability: date range is too large")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
