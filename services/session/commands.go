package session

import (
	"context"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/lib/myvault"
)

// userKey is the single uid under which the logged-in account is persisted
const userKey = "user"

// Current returns the active session. The second return value is false when
// nobody is logged in.
func (s *service) Current(c context.Context) (Session, bool, error) {
	token, found, err := s.vault.Get(c, myvault.CurrentToken)
	if err != nil {
		return Session{}, false, myerrors.NewInternalError(err)
	}
	if !found {
		return Session{}, false, nil
	}

	user, found, err := s.userStore.Get(c, userKey)
	if err != nil {
		return Session{}, false, myerrors.NewInternalError(err)
	}
	if !found {
		// A token without an account is useless
		return Session{}, false, nil
	}

	return Session{
		User:  user,
		Token: token.AccessToken,
	}, true, nil
}

func (s *service) login(c context.Context, email string, password string) (Session, error) {
	s.logger.Log(c, email, mylog.SeverityInfo, "Login attempt for %s", email)

	token, err := s.client.Login(c, email, password)
	if err != nil {
		return Session{}, err
	}

	user, err := s.client.GetCurrentUser(c, token)
	if err != nil {
		return Session{}, err
	}

	err = s.vault.Put(c, myvault.CurrentToken, myvault.Token{AccessToken: token})
	if err != nil {
		return Session{}, myerrors.NewInternalError(err)
	}

	err = s.userStore.Put(c, userKey, user)
	if err != nil {
		return Session{}, myerrors.NewInternalError(err)
	}

	s.logger.Log(c, user.UID, mylog.SeverityInfo, "User %s (%s) logged in", user.Name, user.UID)

	return Session{User: user, Token: token}, nil
}

func (s *service) logout(c context.Context) error {
	s.logger.Log(c, userKey, mylog.SeverityInfo, "Logout")

	err := s.vault.Delete(c, myvault.CurrentToken)
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	err = s.userStore.Delete(c, userKey)
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	return nil
}
