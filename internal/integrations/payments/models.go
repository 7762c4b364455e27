package payments

// IntentRequest запрос на создание платёжного намерения
type IntentRequest struct {
	BookingID int64   `json:"booking_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

// Intent платёжное намерение, созданное платёжным сервисом
type Intent struct {
	ID        string  `json:"id"`
	BookingID int64   `json:"booking_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
}

// RefundRequest запрос на возврат средств по бронированию
type RefundRequest struct {
	BookingID int64  `json:"booking_id"`
	Reason    string `json:"reason"`
}

// ErrorResponse модель ошибки от платёжного сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
