package contracts

type ExitCode int

const (
	ExitSuccess     ExitCode = 0
	ExitFailure     ExitCode = 1
	ExitUsage       ExitCode = 2
	ExitEnvironment ExitCode = 3
	ExitDownload    ExitCode = 4
)
