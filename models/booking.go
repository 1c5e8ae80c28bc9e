package models

type BookingStatus string

const (
	BookingCompleted BookingStatus = "Completed"
	BookingPending   BookingStatus = "Pending"
	BookingCancelled BookingStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "Paid"
	PaymentUnpaid   PaymentStatus = "Unpaid"
	PaymentRefunded PaymentStatus = "Refunded"
)

// Booking is a customer's order of a provider's service.
type Booking struct {
	ID            int           `json:"id"`
	Customer      string        `json:"customer"`
	Provider      string        `json:"provider"`
	Service       string        `json:"service"`
	Date          string        `json:"date"`
	Amount        float64       `json:"amount"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}

// BookingRequest is the body of POST /bookings.
type BookingRequest struct {
	ServiceID string `json:"serviceId" binding:"required" example:"1"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02" example:"2024-03-18"`
}
