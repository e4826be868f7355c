package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotBookable возвращается для продуктов без слотов в каталоге
	// (партнёрская шаттл-линия продаётся не через этот движок)
	ErrProductNotBookable = errors.New("domain: product is not bookable through this engine")

	// ErrSlotNotForProduct возвращается, когда продукт не продаёт указанный слот
	ErrSlotNotForProduct = errors.New("domain: slot is not sold for this product")

	// ErrGuestCountOutOfBounds возвращается при количестве гостей вне границ продукта
	ErrGuestCountOutOfBounds = errors.New("domain: guest count out of bounds")

	// ErrOptionNotAllowed возвращается, когда опция недопустима для выбранного слота.
	// Недопустимые комбинации отклоняются, а не молча выбрасываются или тарифицируются
	ErrOptionNotAllowed = errors.New("domain: option is not allowed for this slot")

	// ErrVeganCountInvalid возвращается при некорректном количестве веган-меню
	ErrVeganCountInvalid = errors.New("domain: vegan meal count must be between 0 and guest count")
)

// QuoteOptions опции, влияющие на расчёт стоимости
type QuoteOptions struct {
	// Nobu премиум-выход к ресторану (топливный сбор), только для DAY слота
	Nobu bool

	// Catering бортовое питание, тарифицируется за каждого гостя
	Catering bool

	// VeganCount количество веган-меню внутри Catering.
	// На цену не влияет - уходит в заметки для кухни
	VeganCount int
}

// ComputeQuote считает детализированную стоимость для продукта/слота/гостей/опций.
//
// Чистая функция каталога и входных данных: повторный расчёт с теми же
// аргументами всегда даёт тот же результат (UI пересчитывает цену на каждое
// изменение формы). Строки добавляются в фиксированном порядке:
// база, доплата за гостей, опции, питание.
func (c *Catalog) ComputeQuote(productSlug string, slot SlotID, guests int, opts QuoteOptions) (*Quote, error) {
	product, err := c.Product(productSlug)
	if err != nil {
		return nil, err
	}
	if !product.IsBookable() {
		return nil, fmt.Errorf("%w: %s", ErrProductNotBookable, productSlug)
	}
	if !product.SellsSlot(slot) {
		return nil, fmt.Errorf("%w: product %s, slot %s", ErrSlotNotForProduct, productSlug, slot)
	}
	if _, err := c.Slot(slot); err != nil {
		return nil, err
	}

	if guests < MinGuests || guests > product.MaxGuests {
		return nil, fmt.Errorf("%w: guests must be %d-%d, got %d",
			ErrGuestCountOutOfBounds, MinGuests, product.MaxGuests, guests)
	}

	if opts.VeganCount < 0 || opts.VeganCount > guests {
		return nil, fmt.Errorf("%w: got %d of %d guests", ErrVeganCountInvalid, opts.VeganCount, guests)
	}
	if opts.VeganCount > 0 && !opts.Catering {
		return nil, fmt.Errorf("%w: vegan meals require catering", ErrVeganCountInvalid)
	}

	quote := &Quote{Currency: product.Currency}

	// База
	quote.AddLine(product.Title, product.BasePriceCents)

	// Доплата за гостей сверх включённых
	if rule, ok := c.Rule(RuleExtraGuest); ok {
		threshold := rule.Threshold
		if threshold == 0 {
			threshold = product.IncludedGuests
		}
		capped := guests
		if rule.MaxValue > 0 && capped > rule.MaxValue {
			capped = rule.MaxValue
		}
		if extra := capped - threshold; extra > 0 && rule.AmountCents > 0 {
			quote.AddLine(
				fmt.Sprintf("%s (%d x $%d)", rule.Label, extra, rule.AmountCents/100),
				int64(extra)*rule.AmountCents,
			)
		}
	}

	// Премиум-выход (топливный сбор)
	if opts.Nobu {
		rule, ok := c.Rule(RuleNobuFuel)
		if !ok || !rule.AppliesTo(slot) {
			return nil, fmt.Errorf("%w: %s for slot %s", ErrOptionNotAllowed, RuleNobuFuel, slot)
		}
		quote.AddLine(rule.Label, rule.AmountCents)
	}

	// Питание за каждого гостя
	if opts.Catering {
		rule, ok := c.Rule(RuleCateringPerHead)
		if !ok || !rule.AppliesTo(slot) {
			return nil, fmt.Errorf("%w: %s for slot %s", ErrOptionNotAllowed, RuleCateringPerHead, slot)
		}
		quote.AddLine(
			fmt.Sprintf("%s (%d x $%d)", rule.Label, guests, rule.AmountCents/100),
			int64(guests)*rule.AmountCents,
		)
	}

	return quote, nil
}
