package confirm_reservation

// ConfirmReservationRequest HTTP request model
type ConfirmReservationRequest struct {
	ReservationID string `json:"reservationId"`
}
