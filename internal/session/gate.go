// Package session holds the admin gate: a persisted boolean flag, not a
// security mechanism. Anyone with access to the data file is the admin.
package session

import (
	"errors"

	"go.uber.org/zap"

	"fertistore/internal/store"
)

// ErrBadPassword is returned when a login attempt fails.
var ErrBadPassword = errors.New("wrong password")

type state struct {
	Authenticated bool `json:"authenticated"`
}

// Gate answers whether the current session may use admin commands.
type Gate struct {
	kv       store.KV
	password string
	logger   *zap.Logger
}

// NewGate creates a Gate that accepts the given password.
func NewGate(kv store.KV, password string, logger *zap.Logger) *Gate {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Gate{kv: kv, password: password, logger: logger}
}

// IsAuthenticated reports whether the admin flag is set.
func (g *Gate) IsAuthenticated() bool {
	st := state{}
	g.kv.Get(store.KeyAdminAuth, &st)
	return st.Authenticated
}

// Login sets the admin flag when password matches.
func (g *Gate) Login(password string) error {
	if password != g.password {
		g.logger.Warn("admin login rejected")
		return ErrBadPassword
	}
	g.kv.Set(store.KeyAdminAuth, state{Authenticated: true})
	g.logger.Info("admin logged in")
	return nil
}

// Logout clears the admin flag.
func (g *Gate) Logout() {
	g.kv.Set(store.KeyAdminAuth, state{Authenticated: false})
	g.logger.Info("admin logged out")
}
