package contracts

import "time"

type Config struct {
	WorkingDirectory string
	SteamCMDPath     string
	ModIDs           []string
	Update           bool
	MaxRetry         int
	FetchTimeout     time.Duration
	ShowVersion      bool
}

func (this Config) HasWork() bool {
	return this.Update || len(this.ModIDs) > 0
}
