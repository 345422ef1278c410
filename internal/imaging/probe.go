package imaging

import (
	"MyWeddBlue/internal/cache"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ErrNotDataURI — строка не является base64 data URI.
var ErrNotDataURI = errors.New("not a base64 data URI")

// dataURIPayload извлекает base64-часть из "data:<mime>;base64,<payload>".
func dataURIPayload(uri string) (string, error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", ErrNotDataURI
	}
	meta, payload, ok := strings.Cut(uri[len("data:"):], ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return "", ErrNotDataURI
	}
	return payload, nil
}

// Probe возвращает отношение ширины к высоте изображения из data URI. Декодируется
// только начало payload: DecodeConfig читает заголовок.
func Probe(uri string) (float64, error) {
	payload, err := dataURIPayload(uri)
	if err != nil {
		return 0, err
	}
	cfg, _, err := image.DecodeConfig(base64.NewDecoder(base64.StdEncoding, strings.NewReader(payload)))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return 0, ErrUnsupportedImage
		}
		return 0, err
	}
	if cfg.Height == 0 {
		return 0, ErrUnsupportedImage
	}
	return float64(cfg.Width) / float64(cfg.Height), nil
}

// Prober хранит пропорции изображений в cache.Store с TTL: одно и то же изображение
// разбирается при каждом рендере секции с intrinsic-пропорциями.
type Prober struct {
	store cache.Store
}

// NewProber создаёт пробер. При store == nil пропорции живут в отдельном кэше в памяти.
func NewProber(store cache.Store) *Prober {
	if store == nil {
		store = cache.NewMemory(cache.DefaultTTL, nil)
	}
	return &Prober{store: store}
}

func aspectKey(uri string) string {
	return "aspect:" + strconv.FormatUint(xxhash.Sum64String(uri), 16) + ":" + strconv.Itoa(len(uri))
}

// Aspect возвращает пропорции или 0, если изображение не удалось разобрать
// (например, это внешний URL). Внешние URL не кэшируются.
func (p *Prober) Aspect(uri string) float64 {
	if !strings.HasPrefix(uri, "data:") {
		return 0
	}
	ctx := context.Background()
	key := aspectKey(uri)
	if b, ok := p.store.Get(ctx, key); ok {
		if v, err := strconv.ParseFloat(string(b), 64); err == nil {
			return v
		}
	}
	v, err := Probe(uri)
	if err != nil {
		v = 0
	}
	p.store.Set(ctx, key, []byte(strconv.FormatFloat(v, 'g', -1, 64)))
	return v
}
