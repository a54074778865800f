package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/cinematool/internal/cinema"
	"github.com/ivlev/cinematool/internal/config"
	"github.com/ivlev/cinematool/internal/export"
	"github.com/ivlev/cinematool/internal/ident"
	"github.com/ivlev/cinematool/internal/renderer"
	"github.com/ivlev/cinematool/internal/scenario"
	"github.com/ivlev/cinematool/internal/system"
)

var (
	ErrNoInputs = errors.New("no input files")
	ErrDrift    = errors.New("records change when re-encoded")
	ErrWarnings = errors.New("decode warnings in strict mode")
	ErrConflict = errors.New("output written by more than one input")
)

// Project runs one batch over the configured inputs.
type Project struct {
	Config *config.Config
	Log    logrus.FieldLogger
	IDs    ident.Generator

	claims *outputClaims
}

// outputClaims records which input owns each output path of a run.
type outputClaims struct {
	mu    sync.Mutex
	owner map[string]string
}

func (o *outputClaims) claim(out, in string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if prev, ok := o.owner[out]; ok && prev != in {
		return fmt.Errorf("%s from %s and %s: %w", out, prev, in, ErrConflict)
	}
	o.owner[out] = in
	return nil
}

func NewProject(cfg *config.Config, log logrus.FieldLogger) *Project {
	return &Project{
		Config: cfg,
		Log:    log,
		IDs:    ident.UUIDGenerator{},
	}
}

// Result describes what happened to one input file.
type Result struct {
	Input    string
	Outputs  []string
	Cinemas  int
	Warnings []export.Diagnostic
	Drift    bool
}

// Run executes the configured mode. Independent inputs are processed
// concurrently, at most Config.Workers at a time.
func (p *Project) Run(ctx context.Context) ([]Result, error) {
	start := time.Now()
	cfg := p.Config
	p.claims = &outputClaims{owner: make(map[string]string)}

	if cfg.Mode != config.ModeCheck {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	var results []Result
	var err error
	switch cfg.Mode {
	case config.ModeNew:
		var res Result
		res, err = p.create()
		results = []Result{res}
	case config.ModeMerge:
		results, err = p.merge(ctx)
	default:
		results, err = p.each(ctx)
	}
	if err != nil {
		return results, err
	}

	if cfg.ShowStats {
		cinemas, warnings := 0, 0
		for _, r := range results {
			cinemas += r.Cinemas
			warnings += len(r.Warnings)
		}
		p.Log.WithFields(logrus.Fields{
			"mode":     cfg.Mode,
			"files":    len(results),
			"cinemas":  cinemas,
			"warnings": warnings,
			"elapsed":  time.Since(start).Round(time.Millisecond).String(),
		}).Info("[*] batch finished")
	}

	if cfg.Mode == config.ModeCheck {
		var drifted []string
		for _, r := range results {
			if r.Drift {
				drifted = append(drifted, r.Input)
			}
		}
		if len(drifted) > 0 {
			return results, fmt.Errorf("%s: %w", strings.Join(drifted, ", "), ErrDrift)
		}
	}
	return results, nil
}

func (p *Project) inputExts() []string {
	switch p.Config.Mode {
	case config.ModeExport:
		return system.ScenarioExts
	case config.ModeMerge:
		return append(append([]string(nil), system.ExportExts...), system.ScenarioExts...)
	}
	return system.ExportExts
}

// inputs resolves the files to process: explicit inputs, the newest file of
// the input dir, or every matching file of the input dir.
func (p *Project) inputs() ([]string, error) {
	cfg := p.Config
	exts := p.inputExts()

	if cfg.Latest && len(cfg.Inputs) == 0 {
		latest, err := system.FindLatest(cfg.InputDir, exts...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoInputs, err)
		}
		p.Log.Infof("[*] selected %s", latest)
		return []string{latest}, nil
	}

	paths := cfg.Inputs
	if len(paths) == 0 {
		paths = []string{cfg.InputDir}
	}
	files, err := system.ListInputs(paths, exts...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoInputs, strings.Join(paths, ", "))
	}
	return files, nil
}

// each runs the per-file mode over all inputs.
func (p *Project) each(ctx context.Context) ([]Result, error) {
	files, err := p.inputs()
	if err != nil {
		return nil, err
	}

	if p.Config.Mode == config.ModeYAML {
		for _, in := range files {
			out := filepath.Join(p.Config.OutputDir, scenario.ScenarioFileName(in))
			if err := p.claims.claim(out, in); err != nil {
				return nil, err
			}
		}
	}

	results := make([]Result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Config.Workers)

	for i, in := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := p.process(in)
			results[i] = res
			return err
		})
	}
	return results, g.Wait()
}

func (p *Project) process(in string) (Result, error) {
	log := p.Log.WithField("file", in)
	cs, res, err := p.load(in)
	if err != nil {
		return res, err
	}

	switch p.Config.Mode {
	case config.ModeCheck:
		again, err := export.Decode(export.EncodeAll(cs))
		if err != nil {
			return res, fmt.Errorf("%s: re-decode: %w", in, err)
		}
		res.Drift = !reflect.DeepEqual(cs, again.Cinemas)
		if res.Drift {
			log.Warn("[!] records change when re-encoded")
		}

	case config.ModeExport:
		out := filepath.Join(p.Config.OutputDir, scenario.ExportFileNameFor(in, cs))
		if err := p.claims.claim(out, in); err != nil {
			return res, err
		}
		if err := writeText(out, export.EncodeAll(cs)); err != nil {
			return res, err
		}
		res.Outputs = append(res.Outputs, out)

	case config.ModeYAML:
		out := filepath.Join(p.Config.OutputDir, scenario.ScenarioFileName(in))
		if err := scenario.WriteScenario(scenario.New(cs...), out); err != nil {
			return res, fmt.Errorf("%s: %w", out, err)
		}
		res.Outputs = append(res.Outputs, out)

	case config.ModePreview:
		outs, err := p.preview(in, cs)
		res.Outputs = outs
		if err != nil {
			return res, err
		}
	}

	log.WithFields(logrus.Fields{
		"cinemas":  res.Cinemas,
		"warnings": len(res.Warnings),
		"outputs":  len(res.Outputs),
	}).Infof("[+] %s done", p.Config.Mode)
	return res, nil
}

// load reads a YAML scenario or an EXPORT file, depending on the extension.
func (p *Project) load(in string) ([]*cinema.Cinema, Result, error) {
	res := Result{Input: in}
	log := p.Log.WithField("file", in)

	var cs []*cinema.Cinema
	lower := strings.ToLower(in)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		s, err := scenario.ReadScenario(in)
		if err != nil {
			return nil, res, err
		}
		cs = s.Cinemas
	} else {
		data, err := os.ReadFile(in)
		if err != nil {
			return nil, res, err
		}
		doc, err := export.Decode(string(data))
		if err != nil {
			return nil, res, fmt.Errorf("%s: %w", in, err)
		}
		cs = doc.Cinemas
		res.Warnings = doc.Warnings
	}
	res.Cinemas = len(cs)

	for _, d := range res.Warnings {
		log.WithField("line", d.Line).Warnf("[!] %s", d.Message)
	}
	if p.Config.Strict && len(res.Warnings) > 0 {
		return nil, res, fmt.Errorf("%s: %d warnings: %w", in, len(res.Warnings), ErrWarnings)
	}
	return cs, res, nil
}

// merge loads every input concurrently and writes all records, in input
// order, into one EXPORT file.
func (p *Project) merge(ctx context.Context) ([]Result, error) {
	files, err := p.inputs()
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(files))
	loaded := make([][]*cinema.Cinema, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Config.Workers)

	for i, in := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cs, res, err := p.load(in)
			loaded[i], results[i] = cs, res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	var all []*cinema.Cinema
	for _, cs := range loaded {
		all = append(all, cs...)
	}
	out := filepath.Join(p.Config.OutputDir, scenario.ExportFileName(all))
	if err := writeText(out, export.EncodeAll(all)); err != nil {
		return results, err
	}
	for i := range results {
		results[i].Outputs = []string{out}
	}

	p.Log.WithFields(logrus.Fields{
		"files":   len(files),
		"cinemas": len(all),
	}).Infof("[+] merged into %s", out)
	return results, nil
}

// create writes a fresh record template as an EXPORT file.
func (p *Project) create() (Result, error) {
	c := cinema.New(p.IDs, p.Config.Name)
	cs := []*cinema.Cinema{c}
	out := filepath.Join(p.Config.OutputDir, scenario.ExportFileName(cs))
	if _, err := os.Stat(out); err == nil {
		return Result{}, fmt.Errorf("%s already exists", out)
	}
	if err := writeText(out, export.EncodeAll(cs)); err != nil {
		return Result{}, err
	}

	p.Log.WithFields(logrus.Fields{"guid": c.GUID, "file": out}).Info("[+] new cinema created")
	return Result{Outputs: []string{out}, Cinemas: 1}, nil
}

func (p *Project) preview(in string, cs []*cinema.Cinema) ([]string, error) {
	base := strings.TrimSuffix(scenario.ScenarioFileName(in), ".yaml")
	var outs []string
	for ci, c := range cs {
		for pi := range c.CameraPaths {
			img := renderer.RenderPreview(&c.CameraPaths[pi], p.Config.PreviewWidth, p.Config.PreviewHeight)
			out := filepath.Join(p.Config.OutputDir, fmt.Sprintf("%s_%d_%d.png", base, ci, pi))
			if err := p.claims.claim(out, in); err != nil {
				return outs, err
			}
			if err := renderer.SavePNG(img, out); err != nil {
				return outs, err
			}
			outs = append(outs, out)
		}
	}
	return outs, nil
}

func writeText(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
