package secret

import (
	"encoding/json"

	"github.com/99designs/keyring"

	apperrors "fpath/internal/errors"
)

const serviceName = "fpath.smb"

type keyringStore struct {
	ring keyring.Keyring
}

type keyringItem struct {
	Domain string `json:"domain"`
	User   string `json:"user"`
	Pass   string `json:"pass"`
}

// NewKeyringStore tries to open the OS keyring via 99designs/keyring.
// If it fails, returns an error so callers can fall back to memory.
func NewKeyringStore() (Store, error) {
	r, err := keyring.Open(keyring.Config{ServiceName: serviceName})
	if err != nil {
		return nil, apperrors.NewSecretError("open_keyring", "cannot open OS keyring", err)
	}
	return &keyringStore{ring: r}, nil
}

func (s *keyringStore) Get(host, share string) (domain, user, pass string, found bool, err error) {
	item, err := s.ring.Get(makeKey(host, share))
	if err != nil {
		if err == keyring.ErrKeyNotFound {
			return "", "", "", false, nil
		}
		return "", "", "", false, apperrors.NewSecretError("get_credentials", "cannot read keyring item", err)
	}
	var v keyringItem
	if err := json.Unmarshal(item.Data, &v); err != nil {
		return "", "", "", false, apperrors.NewSecretError("get_credentials", "malformed keyring item", err)
	}
	return v.Domain, v.User, v.Pass, true, nil
}

func (s *keyringStore) Set(host, share, domain, user, pass string) error {
	data, err := json.Marshal(keyringItem{Domain: domain, User: user, Pass: pass})
	if err != nil {
		return apperrors.NewSecretError("set_credentials", "cannot encode keyring item", err)
	}
	return s.ring.Set(keyring.Item{
		Key:   makeKey(host, share),
		Data:  data,
		Label: serviceName,
	})
}

func (s *keyringStore) Delete(host, share string) error {
	return s.ring.Remove(makeKey(host, share))
}
