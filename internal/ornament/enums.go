package ornament

// Section - секция страницы приглашения, к которой привязан орнамент. Значение хранится
// строкой как есть: имя, неизвестное этой версии, переживает загрузку и сохранение.
type Section string

const (
	// SectionUnknown - пустая секция. Не проходит валидацию.
	SectionUnknown    Section = ""
	SectionFullscreen Section = "fullscreen"
	SectionKutipan    Section = "kutipan"
	SectionWelcome    Section = "welcome"
	SectionTimeline   Section = "timeline"
	SectionEvent      Section = "event"
	SectionGift       Section = "gift"
	SectionGallery    Section = "gallery"
	SectionRSVP       Section = "rsvp"
	SectionGuestbook  Section = "guestbook"
	SectionThankYou   Section = "thankyou"
	SectionFooter     Section = "footer"
)

// Sections возвращает все известные секции в порядке следования на странице.
func Sections() []Section {
	return []Section{
		SectionFullscreen, SectionKutipan, SectionWelcome, SectionTimeline, SectionEvent,
		SectionGift, SectionGallery, SectionRSVP, SectionGuestbook, SectionThankYou, SectionFooter,
	}
}

// ParseSection разбирает имя секции. Для неизвестных имён возвращает исходное значение и false.
func ParseSection(s string) (Section, bool) {
	sec := Section(s)
	return sec, sec.Known()
}

func (s Section) String() string {
	if s == SectionUnknown {
		return "unknown"
	}
	return string(s)
}

// Known сообщает, что секция входит в закрытый набор.
func (s Section) Known() bool {
	for _, k := range Sections() {
		if s == k {
			return true
		}
	}
	return false
}

// AnchorX - какая из горизонтальных координат авторитетна.
type AnchorX uint8

const (
	AnchorLeft AnchorX = iota
	AnchorRight
)

func (a AnchorX) String() string {
	if a == AnchorRight {
		return "right"
	}
	return "left"
}

// ParseAnchorX: всё, кроме "right", трактуется как left (якорь по умолчанию).
func ParseAnchorX(s string) AnchorX {
	if s == "right" {
		return AnchorRight
	}
	return AnchorLeft
}

// AnchorY - какая из вертикальных координат авторитетна.
type AnchorY uint8

const (
	AnchorTop AnchorY = iota
	AnchorBottom
)

func (a AnchorY) String() string {
	if a == AnchorBottom {
		return "bottom"
	}
	return "top"
}

func ParseAnchorY(s string) AnchorY {
	if s == "bottom" {
		return AnchorBottom
	}
	return AnchorTop
}

// LoopType - тип зацикленной анимации. Значение, неизвестное этой версии (legacy),
// хранится как есть и рендерится как статика.
type LoopType string

const (
	LoopNone  LoopType = "none"
	LoopSway  LoopType = "sway"
	LoopFloat LoopType = "float"
	LoopPulse LoopType = "pulse"
	LoopSpin  LoopType = "spin"
)

// Known сообщает, что тип входит в закрытый набор. Пустое значение читается как none.
func (t LoopType) Known() bool {
	switch t {
	case "", LoopNone, LoopSway, LoopFloat, LoopPulse, LoopSpin:
		return true
	}
	return false
}

// Legacy - значение из хранилища, неизвестное этой версии.
func (t LoopType) Legacy() bool { return !t.Known() }

func (t LoopType) MarshalText() ([]byte, error) {
	if t == "" {
		return []byte(LoopNone), nil
	}
	return []byte(t), nil
}

func (t *LoopType) UnmarshalText(b []byte) error {
	*t = LoopType(b)
	if *t == "" {
		*t = LoopNone
	}
	return nil
}

// Speed - скорость зацикленной анимации.
type Speed string

const (
	SpeedSlow   Speed = "slow"
	SpeedNormal Speed = "normal"
	SpeedFast   Speed = "fast"
)

func (s Speed) Known() bool {
	switch s {
	case "", SpeedSlow, SpeedNormal, SpeedFast:
		return true
	}
	return false
}

func (s Speed) Legacy() bool { return !s.Known() }

func (s Speed) MarshalText() ([]byte, error) {
	if s == "" {
		return []byte(SpeedNormal), nil
	}
	return []byte(s), nil
}

func (s *Speed) UnmarshalText(b []byte) error {
	*s = Speed(b)
	if *s == "" {
		*s = SpeedNormal
	}
	return nil
}

// EntranceType - одноразовая анимация появления.
type EntranceType string

const (
	EntranceNone       EntranceType = "none"
	EntranceFadeIn     EntranceType = "fadeIn"
	EntranceSlideUp    EntranceType = "slideUp"
	EntranceSlideDown  EntranceType = "slideDown"
	EntranceSlideLeft  EntranceType = "slideLeft"
	EntranceSlideRight EntranceType = "slideRight"
	EntranceZoomIn     EntranceType = "zoomIn"
	EntranceFlipIn     EntranceType = "flipIn"
)

func (e EntranceType) Known() bool {
	switch e {
	case "", EntranceNone, EntranceFadeIn, EntranceSlideUp, EntranceSlideDown,
		EntranceSlideLeft, EntranceSlideRight, EntranceZoomIn, EntranceFlipIn:
		return true
	}
	return false
}

func (e EntranceType) Legacy() bool { return !e.Known() }

func (e EntranceType) MarshalText() ([]byte, error) {
	if e == "" {
		return []byte(EntranceNone), nil
	}
	return []byte(e), nil
}

func (e *EntranceType) UnmarshalText(b []byte) error {
	*e = EntranceType(b)
	if *e == "" {
		*e = EntranceNone
	}
	return nil
}
