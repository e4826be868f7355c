package create_hold

import "errors"

var (
	// ErrProductNotFound возвращается, когда продукт не найден в каталоге
	ErrProductNotFound = errors.New("create_hold: charter product not found")

	// ErrProductNotBookable возвращается для продуктов без слотов (партнёрская линия)
	ErrProductNotBookable = errors.New("create_hold: product is not bookable")

	// ErrSlotNotForProduct возвращается, когда продукт не продаёт указанный слот
	ErrSlotNotForProduct = errors.New("create_hold: slot is not sold for this product")

	// ErrInvalidGuests возвращается при количестве гостей вне границ продукта
	ErrInvalidGuests = errors.New("create_hold: invalid guest count")

	// ErrOptionNotAllowed возвращается при недопустимой комбинации опций и слота
	ErrOptionNotAllowed = errors.New("create_hold: option is not allowed for this slot")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_hold: invalid charter date")

	// ErrSlotNotAvailable возвращается, когда интервал слота уже занят
	ErrSlotNotAvailable = errors.New("create_hold: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_hold: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_hold: internal error")
)
