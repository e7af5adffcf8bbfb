// Package entity defines the JSON payloads exchanged with the browser.
package entity

// Status values of LanguageResponse.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type LanguageRequest struct {
	Language string `json:"language"`
}

// LanguageResponse carries Language on success and Message on error.
type LanguageResponse struct {
	Status   string `json:"status"`
	Language string `json:"language,omitempty"`
	Message  string `json:"message,omitempty"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse holds either the bot reply or a user-facing error text.
type ChatResponse struct {
	Response string `json:"response"`
}

type TranslateRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type TranslateResponse struct {
	Translated string `json:"translated"`
	Language   string `json:"language"`
}

type DetectRequest struct {
	Text string `json:"text"`
}

type DetectResponse struct {
	Language string `json:"language"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginForm is shared by the login and register forms.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}
