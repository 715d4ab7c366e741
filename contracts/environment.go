package contracts

type Environment interface {
	LookupEnv(key string) (value string, set bool)
	Getwd() (string, error)
}

// ResolvedEnvironment is fixed once the resolver succeeds and is not modified for the
// rest of the run.
type ResolvedEnvironment struct {
	WorkingDirectory string
	SteamCMD         string
}

func (this ResolvedEnvironment) SteamCMDDirectory() string {
	return parentDirectory(this.SteamCMD)
}
