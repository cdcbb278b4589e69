package repo

import (
	accountrepo "github.com/GlebRadaev/kudos/internal/repo/account-repo"
)

type Repositories struct {
	AccountRepo *accountrepo.Repository
}

func New() *Repositories {
	return &Repositories{
		AccountRepo: accountrepo.New(),
	}
}
