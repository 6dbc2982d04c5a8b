package response

type Response struct {
	Message string `json:"message"`
}

type ThrottledResponse struct {
	Message      string `json:"message"`
	RetryAfterMs int64  `json:"retry_after_ms"`
}
