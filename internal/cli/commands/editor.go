package commands

import (
	"MyWeddBlue/internal/cli/api"
	"MyWeddBlue/internal/cli/gateway"
	"MyWeddBlue/internal/config"
	"MyWeddBlue/internal/imaging"
	"MyWeddBlue/internal/ornament"
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// Размер контейнера секции по умолчанию (мобильный макет приглашения).
const (
	defaultContainerWidth  = 400
	defaultContainerHeight = 800
)

// editorOptions — общие флаги команд редактирования.
type editorOptions struct {
	yes       bool
	intrinsic bool
	container ornament.Size
}

func parseEditorFlags(name string, args []string) (editorOptions, []string, error) {
	opts := editorOptions{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&opts.yes, "y", false, "не спрашивать подтверждение")
	fs.BoolVar(&opts.intrinsic, "intrinsic", false, "учитывать реальные пропорции изображения")
	fs.Float64Var(&opts.container.Width, "width", defaultContainerWidth, "ширина контейнера секции, px")
	fs.Float64Var(&opts.container.Height, "height", defaultContainerHeight, "высота контейнера секции, px")
	if err := fs.Parse(args); err != nil {
		return opts, nil, ErrUsage
	}
	if opts.container.Width <= 0 || opts.container.Height <= 0 {
		return opts, nil, ErrUsage
	}
	return opts, fs.Args(), nil
}

// parseScope разбирает "client:<id>" / "template:<id>".
func parseScope(s string) (ornament.Scope, error) {
	kind, id, ok := strings.Cut(s, ":")
	if !ok || id == "" {
		return ornament.Scope{}, fmt.Errorf("scope must be client:<id> or template:<id>, got %q", s)
	}
	k, err := ornament.ParseScopeKind(kind)
	if err != nil {
		return ornament.Scope{}, err
	}
	return ornament.Scope{Kind: k, ID: id}, nil
}

func newGateway(cfg *config.Config) *gateway.Gateway {
	return gateway.New(api.New(cfg.ServerURL))
}

// editor — загруженная сессия редактора и источник пропорций, общий с контроллером.
type editor struct {
	s      *ornament.Session
	aspect ornament.AspectFunc
	opts   editorOptions
}

func openEditor(ctx context.Context, cfg *config.Config, scopeArg string, opts editorOptions) (*editor, error) {
	scope, err := parseScope(scopeArg)
	if err != nil {
		return nil, err
	}
	ed := &editor{
		s:      ornament.NewSession(newGateway(cfg), scope, opts.container, logger),
		aspect: func(ornament.Ornament) float64 { return 0 },
		opts:   opts,
	}
	if opts.intrinsic {
		prober := imaging.NewProber(nil)
		ed.aspect = func(o ornament.Ornament) float64 { return prober.Aspect(o.Image) }
		ed.s.View(func(ctrl *ornament.Controller, _ *ornament.Collection) { ctrl.SetAspect(ed.aspect) })
	}
	if err := ed.s.Load(ctx); err != nil {
		return nil, err
	}
	return ed, nil
}

// save сохраняет рабочую коллекцию и печатает итог.
func (ed *editor) save(ctx context.Context) error {
	if !ed.s.Dirty() {
		fmt.Fprintln(Out, "Нет изменений")
		return nil
	}
	if err := ed.s.Save(ctx); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Сохранено орнаментов: %d\n", len(ed.s.Snapshot().Ornaments))
	return nil
}

// confirmer спрашивает подтверждение на In; -y подтверждает всё.
func (ed *editor) confirmer() ornament.Confirmer {
	if ed.opts.yes {
		return func(string) bool { return true }
	}
	return func(prompt string) bool {
		fmt.Fprintf(Out, "%s [y/N]: ", prompt)
		line, _ := bufio.NewReader(In).ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes", "д", "да":
			return true
		}
		return false
	}
}

// cancelled превращает отказ оператора в обычное завершение.
func cancelled(err error) error {
	if errors.Is(err, ornament.ErrNotConfirmed) {
		fmt.Fprintln(Out, "Отменено")
		return nil
	}
	return err
}

// loadImage принимает data URI как есть, а файл сжимает так же, как сервер.
func loadImage(cfg *config.Config, arg string) (string, error) {
	if strings.HasPrefix(arg, "data:") {
		return arg, nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", err
	}
	opts := imaging.DefaultOptions()
	if cfg.ImageQuality > 0 {
		opts.Quality = cfg.ImageQuality
	}
	if cfg.ImageMaxMB > 0 {
		opts.MaxSizeMB = cfg.ImageMaxMB
	}
	if cfg.ImageMaxSide > 0 {
		opts.MaxWidthOrHeight = cfg.ImageMaxSide
	}
	res, err := imaging.Compress(data, opts)
	if err != nil {
		return "", fmt.Errorf("compress %s: %w", arg, err)
	}
	return res.DataURI, nil
}

func describe(o ornament.Ornament) string {
	pos := make([]string, 0, 2)
	for _, p := range []struct {
		name string
		v    *string
	}{{"top", o.Position.Top}, {"bottom", o.Position.Bottom}, {"left", o.Position.Left}, {"right", o.Position.Right}} {
		if p.v != nil {
			pos = append(pos, p.name+"="+*p.v)
		}
	}
	hidden := ""
	if !o.IsVisible {
		hidden = " (hidden)"
	}
	return fmt.Sprintf("- %s  section=%s  name=%s  %s  width=%s  scale=%g  rotate=%g  z=%d%s",
		o.ID, o.Section, o.Name, strings.Join(pos, " "), o.Style.Width, o.Transform.Scale, o.Transform.Rotate, o.Style.ZIndex, hidden)
}
