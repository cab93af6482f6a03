// Package download fetches package dist archives over HTTP(S) or from file:// URLs.
package download

import (
	"context"
	"crypto/sha1" //nolint:gosec // composer dist shasums are sha1
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/platdep/internal/core/domain"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 60 * time.Second

// Downloader implements ports.Downloader.
type Downloader struct {
	httpClient *http.Client
}

// New creates a new Downloader with a default HTTP client.
func New() *Downloader {
	return newDownloaderWithClient(&http.Client{Timeout: httpClientTimeout})
}

func newDownloaderWithClient(client *http.Client) *Downloader {
	return &Downloader{httpClient: client}
}

// Download fetches the dist archive of pkg into dir and returns the path of the
// written file. When the dist carries a shasum the archive is verified and
// removed again on mismatch.
func (d *Downloader) Download(ctx context.Context, pkg *domain.Package, dir string) (string, error) {
	if pkg.Dist == nil || pkg.Dist.URL == "" {
		return "", zerr.With(domain.ErrMissingDist, "package", pkg.Name)
	}

	u, err := url.Parse(pkg.Dist.URL)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", pkg.Dist.URL)
	}

	body, err := d.open(ctx, u)
	if err != nil {
		return "", zerr.With(err, "package", pkg.Name)
	}
	defer func() {
		_ = body.Close()
	}()

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}

	target := filepath.Join(dir, archiveName(u, pkg))
	sum, err := writeAtomic(target, body, hasherFor(pkg.Dist.Shasum))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "package", pkg.Name)
	}

	if want := strings.ToLower(pkg.Dist.Shasum); want != "" && sum != want {
		_ = os.Remove(target)
		mismatch := zerr.With(domain.ErrChecksumMismatch, "expected", want)
		return "", zerr.With(zerr.With(mismatch, "actual", sum), "package", pkg.Name)
	}

	return target, nil
}

func (d *Downloader) open(ctx context.Context, u *url.URL) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch u.Scheme {
	case "file":
		f, err := os.Open(filepath.FromSlash(u.Path))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", u.String())
		}
		return f, nil
	case "http", "https":
	default:
		return nil, zerr.With(domain.ErrDownloadFailed, "unsupported_scheme", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		statusErr := zerr.With(domain.ErrDownloadFailed, "status_code", resp.StatusCode)
		return nil, zerr.With(statusErr, "url", u.String())
	}

	return resp.Body, nil
}

// writeAtomic streams r into a temporary file next to target, then renames it.
// It returns the hex digest of the content when h is not nil.
func writeAtomic(target string, r io.Reader, h hash.Hash) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(target), ".download-*")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()

	w := io.Writer(tmp)
	if h != nil {
		w = io.MultiWriter(tmp, h)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", err
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return "", err
	}

	if h == nil {
		return "", nil
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// hasherFor selects the digest by the length of the expected hex checksum.
func hasherFor(shasum string) hash.Hash {
	switch len(shasum) {
	case sha1.Size * 2:
		return sha1.New() //nolint:gosec // composer dist shasums are sha1
	case sha256.Size * 2:
		return sha256.New()
	default:
		return nil
	}
}

func archiveName(u *url.URL, pkg *domain.Package) string {
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		name = strings.ReplaceAll(pkg.Name, "/", "-") + "-" + pkg.Version
		if pkg.Dist.Type != "" {
			name += "." + pkg.Dist.Type
		}
	}
	return name
}
