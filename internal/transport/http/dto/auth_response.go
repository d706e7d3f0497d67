package dto

// LoginData is the login payload: the bearer token proving a completed
// login. Nothing else; role is resolved from storage per request.
type LoginData struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
