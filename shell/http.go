package shell

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.bug.st/downloader/v2"

	"github.com/smarty/workshop/contracts"
)

type HTTPDownloader struct {
	client   *http.Client
	progress func(completed, total int64)
	interval time.Duration
}

// NewHTTPDownloader reports progress (which may be nil) every two seconds while a
// download is running and once more when it finishes.
func NewHTTPDownloader(client *http.Client, progress func(completed, total int64)) *HTTPDownloader {
	if progress == nil {
		progress = func(int64, int64) {}
	}
	return &HTTPDownloader{client: client, progress: progress, interval: 2 * time.Second}
}

func (this *HTTPDownloader) Download(ctx context.Context, request contracts.DownloadRequest) error {
	if err := os.Remove(request.LocalPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing partial download %q: %w", request.LocalPath, err)
	}

	config := downloader.Config{HttpClient: *this.client}
	download, err := downloader.DownloadWithConfigAndContext(ctx, request.LocalPath, request.RemoteAddress, config)
	if err != nil {
		return classifyDownloadError(ctx, err)
	}
	if err = checkStatus(download.Resp); err != nil {
		_ = download.Close()
		return classifyDownloadError(ctx, err)
	}

	err = download.RunAndPoll(func(completed int64) {
		this.progress(completed, download.Size())
	}, this.interval)
	if err != nil {
		return classifyDownloadError(ctx, err)
	}
	return nil
}

func checkStatus(response *http.Response) error {
	if response == nil || (response.StatusCode >= 200 && response.StatusCode < 300) {
		return nil
	}
	return &statusError{StatusCode: response.StatusCode, Status: response.Status}
}

func classifyDownloadError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	var status *statusError
	if errors.As(err, &status) && !status.Retryable() {
		return err
	}
	return fmt.Errorf("%w: %s", contracts.RetryErr, err)
}

type statusError struct {
	StatusCode int
	Status     string
}

func (this *statusError) Error() string {
	return fmt.Sprintf("unexpected status code: %s", this.Status)
}

func (this *statusError) Retryable() bool {
	return this.StatusCode >= 500 || this.StatusCode == http.StatusTooManyRequests
}
