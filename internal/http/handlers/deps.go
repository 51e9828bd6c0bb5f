package handlers

import (
	"shopwave/internal/config"
	"shopwave/internal/store"
)

type Deps struct {
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	AuthHandler     *AuthHandler
	CheckoutHandler *CheckoutHandler
	AccountHandler  *AccountHandler
}

func NewDeps(cart *store.CartStore, auth *store.AuthStore, cfg config.Config) *Deps {
	checkout := store.NewCheckout(cart, nil, cfg.CheckoutDelay)
	return &Deps{
		ProductHandler:  &ProductHandler{},
		CartHandler:     &CartHandler{Cart: cart},
		AuthHandler:     &AuthHandler{Auth: auth},
		CheckoutHandler: &CheckoutHandler{Cart: cart, Auth: auth, Checkout: checkout},
		AccountHandler:  &AccountHandler{Auth: auth},
	}
}
