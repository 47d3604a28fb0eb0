package model

// Stats is the dashboard counter set returned by GET /api/stats.
type Stats struct {
	TotalQuotes          int64 `json:"total_quotes"`
	PendingQuotes        int64 `json:"pending_quotes"`
	TotalConsultations   int64 `json:"total_consultations"`
	PendingConsultations int64 `json:"pending_consultations"`
}

// AccessToken is the response body of a successful admin login.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
