package commands

import (
	"MyWeddBlue/internal/config"
	"MyWeddBlue/internal/ornament"
	"context"
	"fmt"
	"strconv"
	"strings"
)

var propertyNames = []string{
	"name", "image", "scale", "rotate", "opacity", "z", "width", "visible", "anchor",
	"animation", "speed", "intensity", "delay", "entrance", "entrance-duration",
}

type setCmd struct{}

func (setCmd) Name() string { return "set" }
func (setCmd) Description() string {
	return "Изменить свойство: " + strings.Join(propertyNames, ", ")
}
func (setCmd) Usage() string {
	return "set [-width W -height H -intrinsic] <scope> <id> <property> <value>"
}

func (setCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	opts, rest, err := parseEditorFlags("set", args)
	if err != nil {
		return err
	}
	if len(rest) != 4 {
		return ErrUsage
	}
	prop, value := rest[2], rest[3]
	if prop == "image" {
		if value, err = loadImage(cfg, value); err != nil {
			return err
		}
	}
	ed, err := openEditor(ctx, cfg, rest[0], opts)
	if err != nil {
		return err
	}
	id := rest[1]
	var applyErr error
	err = ed.s.Edit(func(ctrl *ornament.Controller, coll *ornament.Collection) error {
		if err := ctrl.Select(id); err != nil {
			return err
		}
		if err := coll.Update(id, func(o *ornament.Ornament) {
			applyErr = applyProperty(o, prop, value, ctrl.Container(), ed.aspect(*o))
		}); err != nil {
			return err
		}
		return applyErr
	})
	if err != nil {
		return err
	}
	ed.s.View(func(_ *ornament.Controller, coll *ornament.Collection) {
		if o, ok := coll.Get(id); ok {
			fmt.Fprintln(Out, describe(o))
		}
	})
	return ed.save(ctx)
}

// applyProperty применяет одно значение панели свойств. При ошибке разбора
// орнамент не меняется.
func applyProperty(o *ornament.Ornament, prop, value string, container ornament.Size, aspect float64) error {
	num := func() (float64, error) {
		v, err := parseFloats(value)
		if err != nil {
			return 0, err
		}
		return v[0], nil
	}
	switch prop {
	case "name":
		o.SetName(value)
	case "image":
		o.SetImage(value)
	case "scale", "rotate", "opacity", "width":
		v, err := num()
		if err != nil {
			return err
		}
		switch prop {
		case "scale":
			o.SetScale(v)
		case "rotate":
			o.SetRotate(v)
		case "opacity":
			o.SetOpacity(v)
		case "width":
			o.SetWidth(v, container, aspect)
		}
	case "z":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid z-index %q", value)
		}
		o.SetZIndex(v)
	case "visible":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid visibility %q", value)
		}
		o.SetVisible(v)
	case "anchor":
		// "right-bottom", "left-top" и т.п.
		h, v, ok := strings.Cut(value, "-")
		if !ok || (h != "left" && h != "right") || (v != "top" && v != "bottom") {
			return fmt.Errorf("anchor must be <left|right>-<top|bottom>, got %q", value)
		}
		ornament.FlipAnchor(o, ornament.ParseAnchorX(h), ornament.ParseAnchorY(v), container, aspect)
	default:
		return applyAnimation(o, prop, value)
	}
	return nil
}

func applyAnimation(o *ornament.Ornament, prop, value string) error {
	a := ornament.DefaultAnimation()
	if o.Animation != nil {
		a = *o.Animation
	}
	switch prop {
	case "animation":
		var t ornament.LoopType
		if err := t.UnmarshalText([]byte(value)); err != nil || t.Legacy() {
			return fmt.Errorf("unknown animation %q", value)
		}
		a.Type = t
		a.Enabled = t != ornament.LoopNone || a.EntranceEnabled
	case "speed":
		var s ornament.Speed
		if err := s.UnmarshalText([]byte(value)); err != nil || s.Legacy() {
			return fmt.Errorf("unknown speed %q", value)
		}
		a.Speed = s
	case "entrance":
		var e ornament.EntranceType
		if err := e.UnmarshalText([]byte(value)); err != nil || e.Legacy() {
			return fmt.Errorf("unknown entrance %q", value)
		}
		a.Entrance = e
		a.EntranceEnabled = e != ornament.EntranceNone
		a.Enabled = a.Type != ornament.LoopNone || a.EntranceEnabled
	case "intensity", "delay":
		v, err := parseFloats(value)
		if err != nil {
			return err
		}
		if prop == "intensity" {
			a.Intensity = v[0]
		} else {
			a.Delay = v[0]
		}
	case "entrance-duration":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q", value)
		}
		a.EntranceDuration = v
	default:
		return fmt.Errorf("unknown property %q", prop)
	}
	o.SetAnimation(&a)
	return nil
}

func init() { RegisterCmd(setCmd{}) }
