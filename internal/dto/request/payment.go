package request

type PaymentRequest struct {
	BookingID     int64   `json:"booking_id" validate:"required"`
	PaymentMethod string  `json:"payment_method" validate:"required,max=50"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
}
