package fspath

import (
	"sync"

	"fpath/internal/secret"
)

// Credentials represents SMB authentication parameters.
type Credentials struct {
	Domain   string
	Username string
	Password string
	Persist  bool
}

// CredentialsProvider can interactively or programmatically provide credentials.
type CredentialsProvider interface {
	Get(host, share, relPath string) (Credentials, error)
}

var credProvider CredentialsProvider
var secretStore secret.Store
var persistByDefault bool

// SetCredentialsProvider sets the global credentials provider used by SMBFS.
func SetCredentialsProvider(p CredentialsProvider) { credProvider = p }

// SetSecretStore sets the global secret store (OS keyring). If nil, only
// the in-memory cache is consulted.
func SetSecretStore(s secret.Store) { secretStore = s }

// SetPersistCredentials sets whether credentials obtained for a share are
// written to the secret store after a successful mount. Individual
// Credentials values with Persist already set are unaffected.
func SetPersistCredentials(enabled bool) { persistByDefault = enabled }

func getCredentials(host, share, rel string) Credentials {
	// 1) Prefer in-memory cached credentials (e.g., seeded from a URL)
	if c, ok := GetCachedCredentials(host, share); ok {
		c.Persist = c.Persist || persistByDefault
		return c
	}
	// 2) Then try the keyring, seeding the session cache on a hit
	if secretStore != nil {
		if d, u, p, found, _ := secretStore.Get(host, share); found {
			c := Credentials{Domain: d, Username: u, Password: p}
			PutCachedCredentials(host, share, c)
			return c
		}
	}
	// 3) Finally, ask the provider, if any
	if credProvider == nil {
		return Credentials{}
	}
	c, err := credProvider.Get(host, share, rel)
	if err != nil {
		return Credentials{}
	}
	c.Persist = c.Persist || persistByDefault
	return c
}

// persistCredentials writes credentials to the secret store after a
// successful mount, when persistence was requested. Credentials that came
// out of the store in the first place carry Persist == false, so keyring
// hits are not rewritten.
func persistCredentials(host, share string, c Credentials) {
	if !c.Persist || secretStore == nil {
		return
	}
	if c.Username == "" && c.Password == "" && c.Domain == "" {
		return
	}
	_ = secretStore.Set(host, share, c.Domain, c.Username, c.Password)
}

var credCache sync.Map // host+"\x00"+share -> Credentials

func credCacheKey(host, share string) string { return host + "\x00" + share }

// GetCachedCredentials returns session-cached credentials for host/share.
func GetCachedCredentials(host, share string) (Credentials, bool) {
	v, ok := credCache.Load(credCacheKey(host, share))
	if !ok {
		return Credentials{}, false
	}
	c := v.(Credentials)
	if c.Username == "" && c.Password == "" && c.Domain == "" {
		return Credentials{}, false
	}
	return c, true
}

// PutCachedCredentials caches credentials for host/share for this session.
func PutCachedCredentials(host, share string, c Credentials) {
	credCache.Store(credCacheKey(host, share), c)
}

// ClearCachedCredentials drops cached credentials, e.g. after an auth failure.
func ClearCachedCredentials(host, share string) {
	credCache.Delete(credCacheKey(host, share))
}
