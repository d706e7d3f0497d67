package users

type Service struct {
	repo   Repo
	hasher PasswordHasher
}

func NewService(repo Repo, hasher PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}
