package domain

// OrderStatus tracks one submission attempt for a cart snapshot.
type OrderStatus string

const (
	OrderIdle       OrderStatus = "Idle"
	OrderSubmitting OrderStatus = "Submitting"
	OrderSubmitted  OrderStatus = "Submitted"
	OrderFailed     OrderStatus = "Failed"
)

// Customer is the contact detail block entered on the order form.
// PaymentCode is the 10-digit Mpesa confirmation code typed by the user;
// payment itself happens out of band.
type Customer struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	PaymentCode string `json:"paymentCode"`
}

// OrderNotification is the payload handed to the outbound email relay.
type OrderNotification struct {
	FromName     string
	FromEmail    string
	Phone        string
	PaymentCode  string
	OrderDetails string
	TotalPrice   string
}
