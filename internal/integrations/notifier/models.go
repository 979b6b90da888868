package notifier

// DefaultSubject тема письма об ответе администратора
const DefaultSubject = "Tiny Diner Weddings • New message in your estimate"

// EstimateSummary краткая смета в письме
type EstimateSummary struct {
	Total   int64 `json:"total"`
	Deposit int64 `json:"deposit"`
}

// Email письмо паре по заявке
type Email struct {
	RequestID       string           `json:"requestId"`
	To              string           `json:"to"`
	From            string           `json:"from,omitempty"`
	Subject         string           `json:"subject"`
	Message         string           `json:"message"`
	SentBy          string           `json:"sentBy,omitempty"`
	EstimateSummary *EstimateSummary `json:"estimateSummary,omitempty"`
}

// ErrorResponse модель ошибки от почтового webhook
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
