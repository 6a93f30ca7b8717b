package ollama

// GenerateRequest тело запроса POST /api/generate
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// GenerateResponse ответ Ollama при stream=false
type GenerateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// ErrorResponse модель ошибки от Ollama
type ErrorResponse struct {
	Error string `json:"error"`
}
