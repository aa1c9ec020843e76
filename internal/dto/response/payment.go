package response

import (
	"time"

	"safari-booking/internal/data/entity"
)

type PaymentResponse struct {
	ID            int64     `json:"id"`
	BookingID     int64     `json:"booking_id"`
	PaymentMethod string    `json:"payment_method"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"payment_date"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID,
		BookingID:     payment.BookingID,
		PaymentMethod: payment.PaymentMethod,
		Amount:        payment.Amount,
		PaymentDate:   payment.PaymentDate,
	}
}
