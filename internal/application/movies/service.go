package movies

type Service struct {
	repo    Repo
	catalog CatalogSource
}

func NewService(repo Repo, catalog CatalogSource) *Service {
	return &Service{repo: repo, catalog: catalog}
}
