package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/MikeMC777/snackshop/internal/session"
)

// Sessions stores the token under "token" and the profile under "user".
type Sessions struct {
	store  session.Store
	tokens *TokenParser
}

func NewSessions(store session.Store, tokens *TokenParser) *Sessions {
	if tokens == nil {
		tokens = NewTokenParser("")
	}
	return &Sessions{store: store, tokens: tokens}
}

func (s *Sessions) Save(ctx context.Context, sid string, id Identity) error {
	profile, err := json.Marshal(id.User)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, sid, session.KeyToken, []byte(id.Token)); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	if err := s.store.Set(ctx, sid, session.KeyUser, profile); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (s *Sessions) Logout(ctx context.Context, sid string) error {
	if err := s.store.Delete(ctx, sid, session.KeyToken); err != nil {
		return err
	}
	return s.store.Delete(ctx, sid, session.KeyUser)
}

// Current returns the session's identity, or ErrUnauthorized. An expired or
// rejected token logs the session out.
func (s *Sessions) Current(ctx context.Context, sid string) (Identity, error) {
	raw, err := s.store.Get(ctx, sid, session.KeyToken)
	if errors.Is(err, session.ErrNotFound) || (err == nil && len(raw) == 0) {
		return Identity{}, ErrUnauthorized
	}
	if err != nil {
		return Identity{}, err
	}
	id := Identity{Token: string(raw)}

	claims, err := s.tokens.Parse(id.Token)
	if err != nil {
		log.Printf("[auth] sid=%s token rejected: %v", sid, err)
		if lerr := s.Logout(ctx, sid); lerr != nil {
			log.Printf("[auth] sid=%s logout: %v", sid, lerr)
		}
		return Identity{}, ErrUnauthorized
	}

	if b, err := s.store.Get(ctx, sid, session.KeyUser); err == nil {
		if err := json.Unmarshal(b, &id.User); err != nil {
			log.Printf("[auth] sid=%s bad profile: %v", sid, err)
		}
	} else if !errors.Is(err, session.ErrNotFound) {
		return Identity{}, err
	}

	if claims != nil {
		if id.User.Username == "" {
			id.User.Username = claims.Username
		}
		// a verified role wins over the stored profile
		if claims.Role != "" && (s.tokens.Verifying() || id.User.Role == "") {
			id.User.Role = claims.Role
		}
	}
	return id, nil
}

func (s *Sessions) IsAdmin(ctx context.Context, sid string) bool {
	id, err := s.Current(ctx, sid)
	return err == nil && id.IsAdmin()
}
