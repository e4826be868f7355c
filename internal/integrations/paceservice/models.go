package paceservice

import "time"

// BusyBlock занятый интервал из партнёрского фида Pace Shuttles
type BusyBlock struct {
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

// busyBlocksRequest тело запроса к фиду
type busyBlocksRequest struct {
	FromISO string `json:"fromISO"`
	ToISO   string `json:"toISO"`
}

// busyBlocksResponse ответ фида
type busyBlocksResponse struct {
	Blocks []BusyBlock `json:"blocks"`
}
