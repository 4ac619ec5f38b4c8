package resend

// Config holds Resend transport configuration.
// Embed this in your app config for env parsing.
type Config struct {
	APIKey      string `env:"RESEND_API_KEY"`
	SenderEmail string `env:"RESEND_FROM_EMAIL"`
	SenderName  string `env:"RESEND_FROM_NAME"`
}
