package dto

type LoginResult struct {
	AccessToken  string
	ExpiresIn    int64
	RefreshToken string
}
