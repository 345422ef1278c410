package ornament

import (
	"math"
	"strconv"
	"strings"
)

// PercentToPixels переводит строку вида "12.5%" в пиксели относительно размера контейнера.
// nil и некорректные строки дают 0.
func PercentToPixels(p *string, containerDim float64) float64 {
	if p == nil {
		return 0
	}
	return percentValue(*p) / 100 * containerDim
}

// PixelsToPercent переводит пиксели в процент от контейнера, округляя до 2 знаков.
func PixelsToPercent(px, containerDim float64) string {
	if containerDim <= 0 || math.IsNaN(px) || math.IsInf(px, 0) {
		return "0%"
	}
	v := math.Round(px/containerDim*100*100) / 100
	if v == 0 {
		v = 0 // -0 → 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func percentValue(s string) float64 {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "%") {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParsePixels разбирает "150px" (или "150"). Второе значение false для "auto" и мусора.
func ParsePixels(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	if s == "" || s == "auto" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FormatPixels — обратная к ParsePixels запись целыми пикселями.
func FormatPixels(v float64) string {
	return strconv.Itoa(int(math.Round(v))) + "px"
}
