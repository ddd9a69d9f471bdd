package fspath

import (
	"bufio"
	"os"
	"strings"

	apperrors "fpath/internal/errors"
)

// archiveExtensions are the archive kinds the resolver routes into.
var archiveExtensions = []string{
	".zip", ".tar", ".tgz", ".tar.gz", ".tar.bz2", ".tar.xz", ".7z", ".rar",
}

// Resolve maps raw user input to a storage provider and a parsed Path.
//
//   - smb://[domain;user[:pass]@]host/share/... and \\host\share\... map to
//     a mounted CIFS path when one exists, otherwise to the direct SMB
//     provider with a share-relative path. Credentials embedded in the URL
//     seed the session cache.
//   - A local path that descends through an existing archive file maps to
//     the archive provider with the inner remainder.
//   - Everything else is the local provider with the input parsed in the
//     native dialect.
func Resolve(input string) (VFS, Path, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return LocalFS{}, Path{dialect: Native()}, nil
	}

	if isSMBURL(raw) || isUNC(raw) || strings.HasPrefix(raw, "//") {
		return resolveSMB(raw)
	}

	p := Parse(raw, Native())
	if vfs, inner, ok := resolveArchive(p); ok {
		return vfs, inner, nil
	}
	return LocalFS{}, p, nil
}

func resolveSMB(raw string) (VFS, Path, error) {
	host, share, segs, user, pass, domain := parseSMBInput(raw)
	if host == "" || share == "" {
		return LocalFS{}, Path{dialect: Native()}, apperrors.NewPathError("resolve", raw, "malformed share path", nil)
	}

	// Seed the session cache with credentials carried in the URL.
	if user != "" || pass != "" || domain != "" {
		PutCachedCredentials(host, share, Credentials{Domain: domain, Username: user, Password: pass})
	}

	// Prefer an existing CIFS mount; the share then behaves as local disk.
	if mp, ok := findSMBMount(host, share); ok {
		mounted := Parse(mp, Native())
		for _, seg := range segs {
			mounted = mounted.JoinName(seg)
		}
		return LocalFS{}, mounted, nil
	}

	rel := "/"
	if len(segs) > 0 {
		rel += strings.Join(segs, "/")
	}
	var vfs VFS
	if user != "" || pass != "" || domain != "" {
		vfs = newSMBProvider(host, share, &Credentials{Domain: domain, Username: user, Password: pass})
	} else {
		vfs = newSMBProvider(host, share, nil)
	}
	return vfs, Parse(rel, Posix), nil
}

// resolveArchive checks whether some prefix of p is an existing regular
// file with an archive extension and segments remain below it. The match
// returns an archive provider plus the inner path.
func resolveArchive(p Path) (VFS, Path, bool) {
	segs := p.Segments()
	for i, seg := range segs {
		if i == len(segs)-1 {
			break // no inner remainder below the archive itself
		}
		if !hasArchiveExtension(seg) {
			continue
		}
		prefix := Path{segments: segs[:i+1], absolute: p.IsAbsolute(), dialect: p.Dialect()}
		info, err := os.Stat(prefix.String())
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		inner := "/" + strings.Join(segs[i+1:], "/")
		return NewArchiveFS(prefix.String()), Parse(inner, Posix), true
	}
	return nil, Path{}, false
}

func hasArchiveExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range archiveExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func isUNC(p string) bool {
	// Leading \\ or \\?\UNC\
	return strings.HasPrefix(p, `\\?\UNC\`) || strings.HasPrefix(p, `\\`)
}

func isSMBURL(p string) bool {
	return strings.HasPrefix(strings.ToLower(p), "smb://")
}

// parseSMBInput extracts host, share, segments and optional credentials
// from smb://, //host/share, or UNC input.
// Credential forms: user, user:pass, domain;user:pass, domain\user:pass.
func parseSMBInput(raw string) (host, share string, segments []string, user, pass, domain string) {
	s := strings.TrimSpace(raw)
	if isUNC(s) {
		s = strings.TrimPrefix(s, `\\?\UNC\`)
		s = strings.TrimPrefix(s, `\\`)
		s = strings.ReplaceAll(s, `\`, "/")
		s = "smb://" + s
	} else if strings.HasPrefix(s, "//") && !isSMBURL(s) {
		s = "smb:" + s
	}
	if !isSMBURL(s) {
		return "", "", nil, "", "", ""
	}
	t := s[len("smb://"):]

	if at := strings.Index(t, "@"); at >= 0 {
		cred := t[:at]
		t = t[at+1:]
		if colon := strings.Index(cred, ":"); colon >= 0 {
			pass = cred[colon+1:]
			cred = cred[:colon]
		}
		if semi := strings.Index(cred, ";"); semi >= 0 {
			domain = cred[:semi]
			user = cred[semi+1:]
		} else if bs := strings.Index(cred, `\`); bs >= 0 {
			domain = cred[:bs]
			user = cred[bs+1:]
		} else {
			user = cred
		}
	}

	parts := splitSeparators(t, Posix)
	if len(parts) < 2 {
		return "", "", nil, "", "", ""
	}
	host = parts[0]
	share = parts[1]
	segments = parts[2:]
	return
}

// findSMBMount attempts to find a mounted CIFS/SMB mount matching
// host/share. It scans /proc/self/mountinfo (Linux) and matches either the
// mount source (//host/share) or unc=\\host\share in options. On other
// platforms the scan fails and resolution falls through to the direct
// provider.
func findSMBMount(host, share string) (mountPoint string, ok bool) {
	f, err := os.Open("/proc/self/mountinfo")
	if err != nil {
		return "", false
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fsType, src, mp, superOpts, opts, parsed := parseMountInfo(scanner.Text())
		if !parsed {
			continue
		}
		lfs := strings.ToLower(fsType)
		if !(lfs == "cifs" || strings.Contains(lfs, "smb")) {
			continue
		}
		if shost, sshare := parseSourceUNC(src); shost != "" &&
			strings.EqualFold(shost, host) && strings.EqualFold(sshare, share) {
			return mp, true
		}
		unc := findUNCOption(superOpts)
		if unc == "" {
			unc = findUNCOption(opts)
		}
		if unc != "" {
			if shost, sshare := parseBackslashUNC(unc); shost != "" &&
				strings.EqualFold(shost, host) && strings.EqualFold(sshare, share) {
				return mp, true
			}
		}
	}
	return "", false
}

// parseMountInfo extracts minimal fields from a mountinfo line.
func parseMountInfo(line string) (fsType, source, mountPoint, superOpts, opts string, ok bool) {
	// split at " - " separator
	parts := strings.SplitN(line, " - ", 2)
	if len(parts) != 2 {
		return
	}
	left := strings.Fields(parts[0])
	right := strings.Fields(parts[1])
	// mountinfo may have zero optional fields; accept 6+ tokens on the left side.
	if len(left) < 6 || len(right) < 3 {
		return
	}
	mountPoint = decodeMountPoint(left[4])
	opts = strings.Join(left[5:], " ")
	fsType = right[0]
	source = right[1]
	superOpts = strings.Join(right[2:], " ")
	ok = true
	return
}

// decodeMountPoint converts mountinfo escape sequences (e.g., \040 -> space).
func decodeMountPoint(s string) string {
	s = strings.ReplaceAll(s, `\040`, " ")
	s = strings.ReplaceAll(s, `\134`, `\`)
	return s
}

func parseSourceUNC(src string) (host, share string) {
	if strings.HasPrefix(src, "//") {
		parts := strings.Split(strings.TrimPrefix(src, "//"), "/")
		if len(parts) >= 2 {
			return parts[0], parts[1]
		}
	}
	return "", ""
}

func findUNCOption(opts string) string {
	// look for unc=\\host\share in comma-separated options
	for _, part := range strings.Split(opts, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) == 2 && strings.ToLower(kv[0]) == "unc" {
			return kv[1]
		}
	}
	return ""
}

func parseBackslashUNC(unc string) (host, share string) {
	parts := strings.Split(strings.TrimPrefix(unc, `\\`), `\`)
	if len(parts) >= 2 {
		return parts[0], parts[1]
	}
	return "", ""
}
