package domain

// RunStore persists extraction run artifacts.
type RunStore interface {
	SaveRun(run RunArtifact) (id string, err error)
	LoadRun(id string) (RunArtifact, error)
	ListRuns() ([]RunSummary, error)
}

// InspectService runs extraction specs over source files.
type InspectService interface {
	Run(spec ExtractSpec) (RunArtifact, error)
}
