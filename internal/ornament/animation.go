package ornament

import (
	"math"
	"strconv"
)

// CSS-переменные, которые читают классы анимаций.
const (
	VarSwayDistance     = "--sway-distance"
	VarFloatDistance    = "--float-distance"
	VarPulseScale       = "--pulse-scale"
	VarAnimationDelay   = "--animation-delay"
	VarEntranceDuration = "--entrance-duration"
)

// TriggerViewport - входная анимация запускается при первом попадании элемента во viewport,
// а не при монтировании.
const TriggerViewport = "viewport"

// Descriptor - директивы представления для зацикленной анимации.
type Descriptor struct {
	Classes   []string          `json:"classes"`
	Variables map[string]string `json:"variables"`
}

// Static сообщает, что анимации нет.
func (d Descriptor) Static() bool { return len(d.Classes) == 0 }

// Entrance - одноразовая анимация появления.
type Entrance struct {
	Class      string            `json:"class"`
	DurationMs int               `json:"durationMs"`
	Trigger    string            `json:"trigger"`
	Variables  map[string]string `json:"variables"`
}

func staticDescriptor() Descriptor {
	return Descriptor{Classes: []string{}, Variables: map[string]string{}}
}

// Resolve переводит описание анимации в классы и переменные. Отсутствующая,
// выключенная, "none" и нераспознанная анимация дают статику.
func Resolve(a *Animation) Descriptor {
	if a == nil || !a.Enabled {
		return staticDescriptor()
	}
	var loop string
	switch a.Type {
	case LoopSway:
		loop = "ornament-loop-sway"
	case LoopFloat:
		loop = "ornament-loop-float"
	case LoopPulse:
		loop = "ornament-loop-pulse"
	case LoopSpin:
		loop = "ornament-loop-spin"
	default:
		return staticDescriptor()
	}

	intensity := clampFloat(a.Intensity, MinIntensity, MaxIntensity)
	delay := clampFloat(a.Delay, MinDelay, MaxDelay)
	return Descriptor{
		Classes: []string{loop, speedClass(a.Speed)},
		Variables: map[string]string{
			VarSwayDistance:   formatNumber(15*intensity) + "px",
			VarFloatDistance:  formatNumber(20*intensity) + "px",
			VarPulseScale:     formatNumber(1 + 0.2*intensity),
			VarAnimationDelay: formatNumber(delay) + "s",
		},
	}
}

func speedClass(s Speed) string {
	switch s {
	case SpeedSlow:
		return "ornament-speed-slow"
	case SpeedFast:
		return "ornament-speed-fast"
	default:
		return "ornament-speed-normal"
	}
}

// ResolveEntrance возвращает входную анимацию или nil. Независима от зацикленной.
func ResolveEntrance(a *Animation) *Entrance {
	if a == nil || !a.EntranceEnabled {
		return nil
	}
	var class string
	switch a.Entrance {
	case EntranceFadeIn:
		class = "ornament-entrance-fade-in"
	case EntranceSlideUp:
		class = "ornament-entrance-slide-up"
	case EntranceSlideDown:
		class = "ornament-entrance-slide-down"
	case EntranceSlideLeft:
		class = "ornament-entrance-slide-left"
	case EntranceSlideRight:
		class = "ornament-entrance-slide-right"
	case EntranceZoomIn:
		class = "ornament-entrance-zoom-in"
	case EntranceFlipIn:
		class = "ornament-entrance-flip-in"
	default:
		return nil
	}
	d := clampInt(a.EntranceDuration, MinEntranceDuration, MaxEntranceDuration)
	return &Entrance{
		Class:      class,
		DurationMs: d,
		Trigger:    TriggerViewport,
		Variables:  map[string]string{VarEntranceDuration: strconv.Itoa(d) + "ms"},
	}
}

// formatNumber округляет до 2 знаков, чтобы 20*0.3 не превращалось в 6.000000000000001.
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
