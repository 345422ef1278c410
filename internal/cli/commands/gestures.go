package commands

import (
	"MyWeddBlue/internal/config"
	"MyWeddBlue/internal/ornament"
	"context"
	"fmt"
	"math"
	"strconv"
)

// rotateRadius — расстояние «ручки» поворота от центра, px.
const rotateRadius = 100

func parseFloats(args ...string) ([]float64, error) {
	out := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out = append(out, v)
	}
	return out, nil
}

// geometry возвращает текущие левый верхний угол и размер орнамента.
func (ed *editor) geometry(ctrl *ornament.Controller, o ornament.Ornament) (ornament.Point, ornament.Size) {
	aspect := ed.aspect(o)
	return ornament.Origin(o, ctrl.Container(), aspect), ornament.ElementSize(o.Style, aspect)
}

type moveCmd struct{}

func (moveCmd) Name() string        { return "move" }
func (moveCmd) Description() string { return "Перетащить орнамент: левый верхний угол в (x, y), px" }
func (moveCmd) Usage() string {
	return "move [-width W -height H -intrinsic] <scope> <id> <x> <y>"
}

func (moveCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	opts, rest, err := parseEditorFlags("move", args)
	if err != nil {
		return err
	}
	if len(rest) != 4 {
		return ErrUsage
	}
	xy, err := parseFloats(rest[2], rest[3])
	if err != nil {
		return err
	}
	ed, err := openEditor(ctx, cfg, rest[0], opts)
	if err != nil {
		return err
	}
	id := rest[1]
	err = ed.s.Edit(func(ctrl *ornament.Controller, coll *ornament.Collection) error {
		if err := ctrl.Select(id); err != nil {
			return err
		}
		o, _ := coll.Get(id)
		from, _ := ed.geometry(ctrl, o)
		if err := ctrl.BeginDrag(id, from); err != nil {
			return err
		}
		return ctrl.EndDrag(ornament.Point{X: xy[0], Y: xy[1]})
	})
	if err != nil {
		return err
	}
	return ed.save(ctx)
}

type resizeCmd struct{}

func (resizeCmd) Name() string { return "resize" }
func (resizeCmd) Description() string {
	return "Изменить размер за правый нижний угол (высота — только для явной)"
}
func (resizeCmd) Usage() string {
	return "resize [-width W -height H -intrinsic] <scope> <id> <width> [height]"
}

func (resizeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	opts, rest, err := parseEditorFlags("resize", args)
	if err != nil {
		return err
	}
	if len(rest) != 3 && len(rest) != 4 {
		return ErrUsage
	}
	dims, err := parseFloats(rest[2:]...)
	if err != nil {
		return err
	}
	ed, err := openEditor(ctx, cfg, rest[0], opts)
	if err != nil {
		return err
	}
	id := rest[1]
	err = ed.s.Edit(func(ctrl *ornament.Controller, coll *ornament.Collection) error {
		if err := ctrl.Select(id); err != nil {
			return err
		}
		o, _ := coll.Get(id)
		_, size := ed.geometry(ctrl, o)
		if err := ctrl.BeginResize(id, ornament.Point{}); err != nil {
			return err
		}
		end := ornament.Point{X: dims[0] - size.Width}
		if len(dims) == 2 {
			end.Y = dims[1] - size.Height
		}
		return ctrl.EndResize(end)
	})
	if err != nil {
		return err
	}
	return ed.save(ctx)
}

type rotateCmd struct{}

func (rotateCmd) Name() string        { return "rotate" }
func (rotateCmd) Description() string { return "Повернуть орнамент на угол (по часовой, градусы)" }
func (rotateCmd) Usage() string {
	return "rotate [-width W -height H -intrinsic] <scope> <id> <degrees>"
}

func (rotateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	opts, rest, err := parseEditorFlags("rotate", args)
	if err != nil {
		return err
	}
	if len(rest) != 3 {
		return ErrUsage
	}
	deg, err := parseFloats(rest[2])
	if err != nil {
		return err
	}
	ed, err := openEditor(ctx, cfg, rest[0], opts)
	if err != nil {
		return err
	}
	id := rest[1]
	var result float64
	err = ed.s.Edit(func(ctrl *ornament.Controller, coll *ornament.Collection) error {
		if err := ctrl.Select(id); err != nil {
			return err
		}
		o, _ := coll.Get(id)
		origin, size := ed.geometry(ctrl, o)
		center := ornament.Point{X: origin.X + size.Width/2, Y: origin.Y + size.Height/2}
		handle := func(a float64) ornament.Point {
			rad := a * math.Pi / 180
			return ornament.Point{X: center.X + rotateRadius*math.Cos(rad), Y: center.Y + rotateRadius*math.Sin(rad)}
		}
		if err := ctrl.BeginRotate(id, handle(0)); err != nil {
			return err
		}
		// указатель ведётся шагами не больше 90°, чтобы накопление угла было однозначным
		steps := int(math.Ceil(math.Abs(deg[0]) / 90))
		for i := 1; i < steps; i++ {
			if _, err := ctrl.RotateTo(handle(deg[0] * float64(i) / float64(steps))); err != nil {
				return err
			}
		}
		if err := ctrl.EndRotate(handle(deg[0])); err != nil {
			return err
		}
		o, _ = coll.Get(id)
		result = o.Transform.Rotate
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Угол: %g°\n", result)
	return ed.save(ctx)
}

func init() {
	RegisterCmd(moveCmd{})
	RegisterCmd(resizeCmd{})
	RegisterCmd(rotateCmd{})
}
