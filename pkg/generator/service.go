package generator

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/adi-family/apigen/pkg/config"
	"github.com/adi-family/apigen/pkg/errs"
	"github.com/adi-family/apigen/pkg/ir"
	"github.com/adi-family/apigen/pkg/parser"
)

// Service runs the full pipeline: parse the input document into the IR,
// then fan out to every enabled generation.
type Service struct {
	parsers    *parser.Registry
	generators *Registry
	log        *zap.SugaredLogger
}

// NewService wires the default parser and generator registries. A nil
// logger disables logging.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		parsers:    parser.NewRegistry(),
		generators: NewRegistry(),
		log:        logger.Sugar(),
	}
}

// ParseInput resolves the parser for the configured input and produces
// the IR. The format is taken from the config when set, otherwise
// detected from the source extension, falling back to openapi.
func (s *Service) ParseInput(in *config.Input) (*ir.SchemaIR, error) {
	if in == nil || in.Source == "" {
		return nil, errors.New("no input source configured")
	}

	format := in.Format
	if format == "" {
		if detected, ok := s.parsers.DetectFormat(in.Source); ok {
			format = detected
		} else {
			format = "openapi"
		}
	}

	p, ok := s.parsers.Get(format)
	if !ok {
		return nil, errors.Mark(errors.Newf("no parser registered for format %q", format), errs.ErrUnknownFormat)
	}

	s.log.Debugw("parsing input", "format", format, "source", in.Source)
	return p.Parse(in.Source, in.Options)
}

// Run executes hooks and generations for the given config. It fails on
// the first error: a failing before-hook or generation aborts the run.
func (s *Service) Run(cfg *config.Config) error {
	schema, err := s.ParseInput(cfg.Input)
	if err != nil {
		return errors.Wrap(err, "parse input")
	}
	s.log.Infow("parsed input",
		"title", schema.Metadata.Title,
		"schemas", len(schema.Schemas),
		"operations", len(schema.Operations))

	outputDir := cfg.Output
	if outputDir == "" {
		outputDir = "generated"
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return errors.Wrapf(err, "create output directory %s", outputDir)
	}

	if err := s.runHooks(cfg.Hooks.BeforeGenerate, outputDir); err != nil {
		return errors.Wrap(err, "before_generate hook")
	}

	generated := 0
	for _, gen := range cfg.Generations {
		if !gen.IsEnabled() {
			s.log.Debugw("skipping disabled generation", "generator", gen.Generator)
			continue
		}
		g, ok := s.generators.Get(gen.Generator)
		if !ok {
			return errors.Mark(errors.Newf("no generator registered for %q", gen.Generator), errs.ErrUnknownGenerator)
		}
		out, err := g.Generate(schema, gen)
		if err != nil {
			return errors.Wrapf(err, "generator %s", gen.Generator)
		}
		filename := out.Filename
		if filename == "" {
			filename = "client." + g.FileExtension()
		}
		target := filepath.Join(outputDir, filename)
		if err := os.WriteFile(target, []byte(out.Content), 0o644); err != nil {
			return errors.Wrapf(err, "write %s", target)
		}
		s.log.Infow("generated", "generator", gen.Generator, "file", target)
		generated++
	}

	if err := s.runHooks(cfg.Hooks.AfterGenerate, outputDir); err != nil {
		return errors.Wrap(err, "after_generate hook")
	}

	if generated == 0 {
		s.log.Warn("no generations produced output")
	}
	return nil
}

// runHooks runs shell commands sequentially in the output directory.
func (s *Service) runHooks(commands []string, dir string) error {
	for _, command := range commands {
		s.log.Debugw("running hook", "command", command)
		cmd := exec.Command("sh", "-c", command)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			return errors.Wrapf(err, "hook %q: %s", command, out)
		}
	}
	return nil
}
