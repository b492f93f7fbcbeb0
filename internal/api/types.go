package api

// ChatRequest is the body of POST /chat. A missing message is treated as empty.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the body of a successful POST /chat
type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status string `json:"status"`
}
