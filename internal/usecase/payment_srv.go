package usecase

import (
	"context"
	"fmt"

	"safari-booking/internal/data/entity"
	"safari-booking/internal/data/repository"
	"safari-booking/internal/dto/request"
	"safari-booking/internal/dto/response"

	"go.uber.org/zap"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, req *request.PaymentRequest) (*response.PaymentResponse, error)
	GetPayments(ctx context.Context, req *request.PaginatedRequest, bookingID int64) (*response.PaginatedResponse[response.PaymentResponse], error)
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, req *request.PaymentRequest) (*response.PaymentResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, req.BookingID)
	if err != nil {
		s.log.Error("Failed to check booking", zap.Error(err), zap.Int64("booking_id", req.BookingID))
		return nil, fmt.Errorf("failed to check booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	payment := &entity.Payment{
		BookingID:     req.BookingID,
		PaymentMethod: req.PaymentMethod,
		Amount:        req.Amount,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to create payment", zap.Error(err), zap.Int64("booking_id", req.BookingID))
		return nil, fmt.Errorf("failed to create payment")
	}

	s.log.Info("Payment recorded",
		zap.Int64("payment_id", payment.ID),
		zap.Int64("booking_id", payment.BookingID),
		zap.Float64("amount", payment.Amount))

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) GetPayments(ctx context.Context, req *request.PaginatedRequest, bookingID int64) (*response.PaginatedResponse[response.PaymentResponse], error) {
	var payments []*entity.Payment
	var total int64
	var err error

	if bookingID > 0 {
		payments, err = s.repo.Payment.FindByBookingID(ctx, bookingID)
		if err != nil {
			s.log.Error("Failed to get payments for booking",
				zap.Error(err),
				zap.Int64("booking_id", bookingID))
			return nil, fmt.Errorf("get payments: %w", err)
		}
		total = int64(len(payments))
	} else {
		payments, err = s.repo.Payment.FindAll(ctx, req.Limit(), req.Offset())
		if err != nil {
			s.log.Error("Failed to get payments", zap.Error(err))
			return nil, fmt.Errorf("get payments: %w", err)
		}
		total, err = s.repo.Payment.CountAll(ctx)
		if err != nil {
			s.log.Error("Failed to count payments", zap.Error(err))
			return nil, fmt.Errorf("count payments: %w", err)
		}
	}

	paymentResponses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		paymentResponses[i] = response.PaymentToResponse(payment)
	}

	return response.NewPaginatedResponse(paymentResponses, req.Page, req.Limit(), total), nil
}
