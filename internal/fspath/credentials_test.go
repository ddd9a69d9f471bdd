package fspath

import (
	"testing"

	"fpath/internal/secret"
)

func TestGetCredentialsHonorsPersistToggle(t *testing.T) {
	PutCachedCredentials("persisthost", "share", Credentials{Username: "alice", Password: "pw"})
	defer ClearCachedCredentials("persisthost", "share")
	defer SetPersistCredentials(false)

	c := getCredentials("persisthost", "share", "")
	if c.Persist {
		t.Fatalf("Persist should default to false")
	}

	SetPersistCredentials(true)
	c = getCredentials("persisthost", "share", "")
	if !c.Persist {
		t.Errorf("Persist not applied from toggle")
	}
	if c.Username != "alice" || c.Password != "pw" {
		t.Errorf("credentials changed: got %q/%q", c.Username, c.Password)
	}
}

func TestPersistCredentialsWritesStore(t *testing.T) {
	store := secret.NewMemoryStore()
	SetSecretStore(store)
	defer SetSecretStore(nil)

	persistCredentials("persisthost", "share", Credentials{Domain: "CORP", Username: "alice", Password: "pw", Persist: true})
	d, u, p, found, err := store.Get("persisthost", "share")
	if err != nil || !found {
		t.Fatalf("credentials not persisted: found=%v err=%v", found, err)
	}
	if d != "CORP" || u != "alice" || p != "pw" {
		t.Errorf("stored credentials got %q/%q/%q", d, u, p)
	}

	persistCredentials("otherhost", "share", Credentials{Username: "bob", Password: "pw"})
	if _, _, _, found, _ := store.Get("otherhost", "share"); found {
		t.Errorf("credentials persisted without Persist set")
	}
}

func TestKeyringHitNotRewritten(t *testing.T) {
	store := secret.NewMemoryStore()
	if err := store.Set("ringhost", "share", "", "alice", "pw"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	SetSecretStore(store)
	defer SetSecretStore(nil)
	defer ClearCachedCredentials("ringhost", "share")
	SetPersistCredentials(true)
	defer SetPersistCredentials(false)

	c := getCredentials("ringhost", "share", "")
	if c.Username != "alice" {
		t.Fatalf("keyring lookup failed: %+v", c)
	}
	if c.Persist {
		t.Errorf("store hit should not request a rewrite")
	}
}
