package handlers

import (
	"MyWeddBlue/internal/ornament"
	"html/template"
	"io"
	"sort"
	"strings"
)

// Слои: позиция → статическое преобразование → анимация → изображение.
var fragmentTmpl = template.Must(template.New("section").Parse(`<div class="ornament-section" style="position:relative;pointer-events:none">
{{- range .}}
<div class="ornament{{if .EntranceClass}} {{.EntranceClass}}{{end}}" data-ornament-id="{{.ID}}"{{if .EntranceTrigger}} data-entrance-trigger="{{.EntranceTrigger}}"{{end}} style="{{.PositionStyle}}">
<div class="ornament-transform" style="{{.TransformStyle}}">
<div class="{{.AnimationClass}}" style="{{.AnimationStyle}}">
<img src="{{.Src}}" alt="{{.Name}}" draggable="false" style="width:100%;height:100%;object-fit:contain;display:block">
</div>
</div>
</div>
{{- end}}
</div>
`))

type fragmentItem struct {
	ID              string
	Name            string
	Src             any
	PositionStyle   template.CSS
	TransformStyle  template.CSS
	AnimationStyle  template.CSS
	AnimationClass  string
	EntranceClass   string
	EntranceTrigger string
}

func renderFragment(w io.Writer, views []ornament.View) error {
	items := make([]fragmentItem, 0, len(views))
	for _, v := range views {
		pos := cloneStyle(v.Position.Style)
		pos["pointer-events"] = v.PointerEvents
		anim := cloneStyle(v.Animation.Style)
		it := fragmentItem{
			ID:             v.ID,
			Name:           v.Name,
			Src:            imageSrc(v.Image),
			TransformStyle: cssText(v.Transform.Style),
			AnimationClass: strings.Join(append([]string{"ornament-animation"}, v.Animation.Classes...), " "),
		}
		if e := v.Entrance; e != nil {
			it.EntranceClass = e.Class
			it.EntranceTrigger = e.Trigger
			for k, val := range e.Variables {
				pos[k] = val
			}
		}
		it.PositionStyle = cssText(pos)
		it.AnimationStyle = cssText(anim)
		items = append(items, it)
	}
	return fragmentTmpl.Execute(w, items)
}

// imageSrc помечает как безопасные только data:image и http(s) ссылки,
// остальное html/template заменит заглушкой.
func imageSrc(s string) any {
	if strings.HasPrefix(s, "data:image/") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://") {
		return template.URL(s)
	}
	return s
}

func cloneStyle(m map[string]string) map[string]string {
	out := make(map[string]string, len(m)+2)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// cssText собирает inline-стиль в стабильном порядке. Значения вычислены сервером
// из нормализованных полей; символы, способные закрыть декларацию, отбрасываются.
func cssText(m map[string]string) template.CSS {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		v := strings.Map(func(r rune) rune {
			switch r {
			case ';', '{', '}', '<', '>', '"', '\\':
				return -1
			}
			return r
		}, m[k])
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(v)
		b.WriteByte(';')
	}
	return template.CSS(b.String())
}
