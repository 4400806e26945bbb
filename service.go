package epub2md

import (
	"context"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// filePermissions is rw-r--r-- for the Markdown output.
const filePermissions = 0o644

// Service orchestrates the EPUB-to-Markdown pipeline.
// A Service holds no per-run state and runs one conversion at a time per call.
type Service struct {
	tool        Tool
	transformer Transformer
	fs          afero.Fs
	getwd       func() (string, error)
	token       func() string
	logger      *zap.Logger
}

// New creates a Service that drives Pandoc from PATH, stages HTML under a
// unique name in the working directory and writes through the OS filesystem.
func New(opts ...Option) *Service {
	s := &Service{
		transformer: HTMLToMarkdown{},
		fs:          afero.NewOsFs(),
		getwd:       os.Getwd,
		token:       uuid.NewString,
		logger:      zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.tool == nil {
		s.tool = NewPandocTool(DefaultToolPath)
	}

	return s
}

// run carries the state of one conversion between steps.
type run struct {
	input    Input
	paths    Paths
	html     string
	markdown string
}

type step struct {
	stage Stage
	do    func(ctx context.Context, r *run) error
}

// steps returns the pipeline in execution order. Input validation is pure
// and runs ahead of the dependency check so a bad path never spawns a process.
func (s *Service) steps() []step {
	return []step{
		{StageValidate, s.validate},
		{StageDependency, s.checkDependency},
		{StageResolve, s.resolvePaths},
		{StageExternal, s.produceHTML},
		{StageRead, s.readHTML},
		{StageTransform, s.transform},
		{StageWrite, s.writeMarkdown},
		{StageCleanup, s.removeIntermediate},
	}
}

// Convert runs the full pipeline for input. The first failing step ends the
// run with a *StepError; nothing is retried.
//
// If writing the Markdown fails, the intermediate HTML is left in place.
// If only the final cleanup fails, the Markdown output is complete and the
// returned StepError reports OutputWritten.
//
// ctx is handed to the subprocess runner. No timeout is applied here: a
// hung external tool blocks Convert until ctx is done.
func (s *Service) Convert(ctx context.Context, input Input) error {
	r := &run{input: input}
	log := s.logger.With(zap.String("input", input.EPUBPath))

	for _, st := range s.steps() {
		start := time.Now()
		if err := st.do(ctx, r); err != nil {
			log.Debug("step failed", zap.Stringer("stage", st.stage), zap.Error(err))
			if st.stage == StageCleanup {
				log.Warn("markdown written but intermediate file remains",
					zap.String("output", r.paths.Output),
					zap.String("intermediate", r.paths.Intermediate))
			}
			return &StepError{Stage: st.stage, Err: err, Paths: r.paths}
		}
		log.Debug("step done", zap.Stringer("stage", st.stage), zap.Duration("elapsed", time.Since(start)))
	}

	log.Debug("conversion complete", zap.String("output", r.paths.Output))
	return nil
}

func (s *Service) validate(_ context.Context, r *run) error {
	return ValidateInput(r.input.EPUBPath)
}

func (s *Service) checkDependency(ctx context.Context, _ *run) error {
	return s.tool.CheckVersion(ctx)
}

func (s *Service) resolvePaths(_ context.Context, r *run) error {
	cwd, err := s.getwd()
	if err != nil {
		return fmt.Errorf("%w: getting working directory: %w", ErrIO, err)
	}

	paths, err := ResolvePaths(r.input, cwd, s.token())
	if err != nil {
		return err
	}
	r.paths = paths
	s.logger.Debug("paths resolved",
		zap.String("intermediate", paths.Intermediate),
		zap.String("output", paths.Output))
	return nil
}

func (s *Service) produceHTML(ctx context.Context, r *run) error {
	return s.tool.Convert(ctx, r.input.EPUBPath, r.paths.Intermediate)
}

func (s *Service) readHTML(_ context.Context, r *run) error {
	data, err := afero.ReadFile(s.fs, r.paths.Intermediate)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %w", ErrIO, r.paths.Intermediate, err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("%w: reading %s: content is not valid UTF-8", ErrIO, r.paths.Intermediate)
	}
	r.html = string(data)
	return nil
}

func (s *Service) transform(_ context.Context, r *run) error {
	md, err := s.transformer.ToMarkdown(r.html)
	if err != nil {
		return err
	}
	r.markdown = md
	return nil
}

func (s *Service) writeMarkdown(_ context.Context, r *run) error {
	if err := afero.WriteFile(s.fs, r.paths.Output, []byte(r.markdown), filePermissions); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrIO, r.paths.Output, err)
	}
	return nil
}

func (s *Service) removeIntermediate(_ context.Context, r *run) error {
	if err := s.fs.Remove(r.paths.Intermediate); err != nil {
		return fmt.Errorf("%w: removing %s: %w", ErrIO, r.paths.Intermediate, err)
	}
	return nil
}
