package download

import "net/http"

// NewDownloaderWithClient exports newDownloaderWithClient for testing.
func NewDownloaderWithClient(client *http.Client) *Downloader {
	return newDownloaderWithClient(client)
}
