//go:build linux
// +build linux

package fspath

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"github.com/hirochachacha/go-smb2"

	"fpath/internal/constants"
)

// SMBFS implements VFS for direct SMB access on Linux. Each call dials a
// fresh session; nothing is kept open between calls, matching the
// no-resource-ownership model of Path values.
type SMBFS struct {
	host  string
	share string
	cred  *Credentials
}

func NewSMBFS(host, share string) SMBFS { return SMBFS{host: host, share: share} }
func NewSMBFSWithCred(host, share string, c Credentials) SMBFS {
	return SMBFS{host: host, share: share, cred: &c}
}

func (SMBFS) Capabilities() Capabilities { return Capabilities{FastList: false, Watch: false} }

// withShare dials the server, mounts the share, runs fn, and tears the
// session down. Cached credentials are dropped on auth failures so the
// next attempt can re-prompt.
func (s SMBFS) withShare(relPath string, fn func(*smb2.Share) error) error {
	creds := Credentials{}
	if s.cred != nil {
		creds = *s.cred
	} else {
		creds = getCredentials(s.host, s.share, relPath)
	}

	d := &smb2.Dialer{
		Initiator: &smb2.NTLMInitiator{
			User:     creds.Username,
			Password: creds.Password,
			Domain:   creds.Domain,
		},
	}

	conn, err := net.DialTimeout("tcp", net.JoinHostPort(s.host, constants.SMBPort), constants.SMBDialTimeout)
	if err != nil {
		return err
	}
	defer conn.Close()

	sess, err := d.Dial(conn)
	if err != nil {
		if isAuthError(err) {
			ClearCachedCredentials(s.host, s.share)
		}
		return err
	}
	defer sess.Logoff()

	share, err := sess.Mount(s.share)
	if err != nil {
		return err
	}
	defer share.Umount()

	persistCredentials(s.host, s.share, creds)

	if err := fn(share); err != nil {
		if isAuthError(err) {
			ClearCachedCredentials(s.host, s.share)
		}
		return err
	}
	return nil
}

// sharePath normalizes a path relative to the share; go-smb2 forbids
// leading separators. "" addresses the share root.
func sharePath(p string) string {
	if p == "/" || p == "\\" {
		return ""
	}
	for len(p) > 0 && (p[0] == '/' || p[0] == '\\') {
		p = p[1:]
	}
	return p
}

func (s SMBFS) ReadDir(relPath string) ([]os.DirEntry, error) {
	var out []os.DirEntry
	err := s.withShare(relPath, func(share *smb2.Share) error {
		fis, err := share.ReadDir(sharePath(relPath))
		if err != nil {
			return err
		}
		out = make([]os.DirEntry, 0, len(fis))
		for _, fi := range fis {
			if fi.Name() == "." {
				continue
			}
			out = append(out, smbDirEntry{fi: fi})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s SMBFS) Stat(relPath string) (os.FileInfo, error) {
	var out os.FileInfo
	err := s.withShare(relPath, func(share *smb2.Share) error {
		p := sharePath(relPath)
		if p == "" {
			p = "."
		}
		fi, err := share.Stat(p)
		if err != nil {
			return err
		}
		out = fi
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s SMBFS) Open(relPath string) (io.ReadCloser, error) {
	// Read the file into memory within one session; keeping the remote
	// handle open past the session teardown is not possible.
	var out io.ReadCloser
	err := s.withShare(relPath, func(share *smb2.Share) error {
		f, err := share.Open(sharePath(relPath))
		if err != nil {
			return err
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return err
		}
		out = io.NopCloser(bytes.NewReader(data))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s SMBFS) Mkdir(relPath string) error {
	return s.withShare(relPath, func(share *smb2.Share) error {
		return share.Mkdir(sharePath(relPath), 0755)
	})
}

func (s SMBFS) Remove(relPath string) error {
	return s.withShare(relPath, func(share *smb2.Share) error {
		return share.Remove(sharePath(relPath))
	})
}

func (s SMBFS) Truncate(relPath string, size int64) error {
	return s.withShare(relPath, func(share *smb2.Share) error {
		return share.Truncate(sharePath(relPath), size)
	})
}

// Abs canonicalizes relative to the share root; SMB has no symlink
// resolution here, so this only verifies existence.
func (s SMBFS) Abs(relPath string) (string, error) {
	if _, err := s.Stat(relPath); err != nil {
		return "", err
	}
	return "/" + sharePath(relPath), nil
}

func (SMBFS) Getwd() (string, error) {
	return "", fmt.Errorf("Getwd not supported for SMBFS")
}

func (SMBFS) Executable() (string, error) {
	return "", fmt.Errorf("Executable not supported for SMBFS")
}

func isAuthError(err error) bool {
	if err == nil {
		return false
	}
	e := strings.ToLower(err.Error())
	// Common indicators from Windows/SMB servers
	if strings.Contains(e, "logon is invalid") ||
		strings.Contains(e, "bad username") ||
		strings.Contains(e, "authentication") ||
		strings.Contains(e, "status_logon_failure") ||
		strings.Contains(e, "access is denied") {
		return true
	}
	return false
}
