package core

import (
	"context"
	"errors"
	"time"

	"github.com/smartystreets/clock"
	"github.com/smartystreets/logging"

	"github.com/smarty/workshop/contracts"
)

type RetryDownloader struct {
	inner    contracts.Downloader
	maxRetry int
	sleeper  *clock.Sleeper
	logger   *logging.Logger
}

func NewRetryDownloader(inner contracts.Downloader, maxRetry int) *RetryDownloader {
	return &RetryDownloader{inner: inner, maxRetry: maxRetry}
}

func (this *RetryDownloader) Download(ctx context.Context, request contracts.DownloadRequest) (err error) {
	for x := 0; x <= this.maxRetry; x++ {
		err = this.inner.Download(ctx, request)
		if err == nil {
			return nil
		}
		if !errors.Is(err, contracts.RetryErr) || ctx.Err() != nil {
			return err
		}
		if x < this.maxRetry {
			this.logger.Println("[WARN] download failed, retry imminent:", err)
			this.sleeper.Sleep(time.Second * 3)
		}
	}
	return err
}
