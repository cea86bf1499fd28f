package handler

import (
	"backend-quicklink/internal/config"
	"backend-quicklink/internal/notify"
	"backend-quicklink/internal/store"
)

// Handler carries the owned store handle instead of a package global, so
// tests can build isolated instances.
type Handler struct {
	store    *store.Store
	notifier *notify.Notifier
	admin    config.AdminAccount
}

func New(st *store.Store, n *notify.Notifier, admin config.AdminAccount) *Handler {
	return &Handler{
		store:    st,
		notifier: n,
		admin:    admin,
	}
}
