package epub2md

// Input describes one conversion request.
type Input struct {
	EPUBPath   string // must end in ".epub" (case-sensitive)
	OutputPath string // empty = derive "<stem>.md" in the working directory
}

// Paths holds the filesystem locations used by one conversion.
type Paths struct {
	Intermediate string // HTML staged by the external tool
	Output       string // final Markdown file
}

// Stage identifies a step of the conversion pipeline.
type Stage int

// Pipeline stages, in execution order.
const (
	StageValidate Stage = iota
	StageDependency
	StageResolve
	StageExternal
	StageRead
	StageTransform
	StageWrite
	StageCleanup
)

var stageNames = [...]string{
	StageValidate:   "validating input",
	StageDependency: "checking dependency",
	StageResolve:    "resolving paths",
	StageExternal:   "converting EPUB to HTML",
	StageRead:       "reading intermediate HTML",
	StageTransform:  "converting HTML to Markdown",
	StageWrite:      "writing Markdown",
	StageCleanup:    "removing intermediate HTML",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown stage"
	}
	return stageNames[s]
}
