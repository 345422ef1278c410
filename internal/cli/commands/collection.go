package commands

import (
	"MyWeddBlue/internal/config"
	"MyWeddBlue/internal/ornament"
	"context"
	"fmt"
	"strings"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "Показать орнаменты scope (опционально одной секции)" }
func (listCmd) Usage() string       { return "list <scope> [section]" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	filter := ornament.SectionUnknown
	if len(args) == 2 {
		s, ok := ornament.ParseSection(args[1])
		if !ok {
			return fmt.Errorf("unknown section %q", args[1])
		}
		filter = s
	}
	ed, err := openEditor(ctx, cfg, args[0], editorOptions{container: ornament.Size{Width: defaultContainerWidth, Height: defaultContainerHeight}})
	if err != nil {
		return err
	}
	n := 0
	for _, o := range ed.s.Snapshot().Ornaments {
		if filter.Known() && o.Section != filter {
			continue
		}
		fmt.Fprintln(Out, describe(o))
		n++
	}
	if n == 0 {
		fmt.Fprintln(Out, "Нет орнаментов")
		return nil
	}
	fmt.Fprintf(Out, "Всего: %d\n", n)
	return nil
}

type sectionsCmd struct{}

func (sectionsCmd) Name() string        { return "sections" }
func (sectionsCmd) Description() string { return "Число видимых орнаментов по секциям" }
func (sectionsCmd) Usage() string       { return "sections <scope>" }

func (sectionsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	scope, err := parseScope(args[0])
	if err != nil {
		return err
	}
	counts, err := newGateway(cfg).Sections(ctx, scope)
	if err != nil {
		return err
	}
	// порядок секций как на странице приглашения
	for _, s := range ornament.Sections() {
		fmt.Fprintf(Out, "  %-12s %d\n", s, counts[s.String()])
	}
	return nil
}

type layoutCmd struct{}

func (layoutCmd) Name() string { return "layout" }
func (layoutCmd) Description() string {
	return "Показать раскладку секции в пикселях (как в редакторе)"
}
func (layoutCmd) Usage() string {
	return "layout [-width W -height H -intrinsic] <scope> <section>"
}

func (layoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	opts, rest, err := parseEditorFlags("layout", args)
	if err != nil {
		return err
	}
	if len(rest) != 2 {
		return ErrUsage
	}
	section, ok := ornament.ParseSection(rest[1])
	if !ok {
		return fmt.Errorf("unknown section %q", rest[1])
	}
	ed, err := openEditor(ctx, cfg, rest[0], opts)
	if err != nil {
		return err
	}
	views := ed.s.RenderSection(section)
	if len(views) == 0 {
		fmt.Fprintln(Out, "Нет орнаментов")
		return nil
	}
	for _, v := range views {
		flags := ""
		if v.Hidden {
			flags = " (hidden)"
		}
		anim := "static"
		if len(v.Animation.Classes) > 0 {
			anim = strings.Join(v.Animation.Classes, " ")
		}
		fmt.Fprintf(Out, "- %s  %s  x=%g y=%g  w=%g h=%g  z=%d  transform=%q  animation=%s%s\n",
			v.ID, v.Name, v.Origin.X, v.Origin.Y, v.Size.Width, v.Size.Height, v.ZIndex,
			v.Transform.Style["transform"], anim, flags)
	}
	return nil
}

type addCmd struct{}

func (addCmd) Name() string        { return "add" }
func (addCmd) Description() string { return "Добавить орнамент (файл изображения или data URI)" }
func (addCmd) Usage() string       { return "add <scope> <section> <name> <image>" }

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 4 {
		return ErrUsage
	}
	section, ok := ornament.ParseSection(args[1])
	if !ok {
		return fmt.Errorf("unknown section %q", args[1])
	}
	image, err := loadImage(cfg, args[3])
	if err != nil {
		return err
	}
	ed, err := openEditor(ctx, cfg, args[0], editorOptions{container: ornament.Size{Width: defaultContainerWidth, Height: defaultContainerHeight}})
	if err != nil {
		return err
	}
	o, err := ed.s.Add(section, args[2], image)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Добавлен %s\n", o.ID)
	return ed.save(ctx)
}

type resetCmd struct{}

func (resetCmd) Name() string        { return "reset" }
func (resetCmd) Description() string { return "Удалить все орнаменты scope" }
func (resetCmd) Usage() string       { return "reset [-y] <scope>" }

func (resetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	opts, rest, err := parseEditorFlags("reset", args)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return ErrUsage
	}
	ed, err := openEditor(ctx, cfg, rest[0], opts)
	if err != nil {
		return err
	}
	if err := ed.s.Reset(ed.confirmer()); err != nil {
		return cancelled(err)
	}
	return ed.save(ctx)
}

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Удалить орнамент" }
func (deleteCmd) Usage() string       { return "delete [-y] <scope> <id>" }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	opts, rest, err := parseEditorFlags("delete", args)
	if err != nil {
		return err
	}
	if len(rest) != 2 {
		return ErrUsage
	}
	ed, err := openEditor(ctx, cfg, rest[0], opts)
	if err != nil {
		return err
	}
	if err := ed.s.Delete(rest[1], ed.confirmer()); err != nil {
		return cancelled(err)
	}
	return ed.save(ctx)
}

func init() {
	RegisterCmd(listCmd{})
	RegisterCmd(sectionsCmd{})
	RegisterCmd(layoutCmd{})
	RegisterCmd(addCmd{})
	RegisterCmd(resetCmd{})
	RegisterCmd(deleteCmd{})
}
