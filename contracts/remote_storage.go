package contracts

import (
	"context"
	"errors"
)

type DownloadRequest struct {
	RemoteAddress string
	LocalPath     string
}

type Downloader interface {
	Download(ctx context.Context, request DownloadRequest) error
}

type Extractor interface {
	Extract(archivePath, destination string) error
}

// RetryErr marks a download failure that may succeed when attempted again.
var RetryErr = errors.New("retry")
