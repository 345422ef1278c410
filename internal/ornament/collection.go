package ornament

// Collection - рабочая коллекция орнаментов одного scope в сессии редактирования.
// Не потокобезопасна: редактор однопоточный, конкурентность закрывает Session.
type Collection struct {
	items []Ornament
	rev   uint64 // растёт при каждом изменении содержимого
}

// NewCollection создаёт коллекцию из сохранённых данных (копия с нормализацией).
func NewCollection(d Data) *Collection {
	c := &Collection{}
	c.Replace(d)
	return c
}

// Replace заменяет содержимое коллекции целиком.
func (c *Collection) Replace(d Data) {
	c.items = make([]Ornament, 0, len(d.Ornaments))
	for _, o := range d.Ornaments {
		cl := o.Clone()
		cl.Normalize()
		c.items = append(c.items, cl)
	}
	c.rev++
}

func (c *Collection) Len() int { return len(c.items) }

// All возвращает копии всех орнаментов, включая скрытые.
func (c *Collection) All() []Ornament {
	out := make([]Ornament, 0, len(c.items))
	for _, o := range c.items {
		out = append(out, o.Clone())
	}
	return out
}

// Snapshot - данные для сохранения (полная замена).
func (c *Collection) Snapshot() Data {
	return Data{Ornaments: c.All()}
}

func (c *Collection) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Get возвращает копию орнамента по id.
func (c *Collection) Get(id string) (Ornament, bool) {
	i := c.indexOf(id)
	if i < 0 {
		return Ornament{}, false
	}
	return c.items[i].Clone(), true
}

// Add добавляет орнамент в конец коллекции.
func (c *Collection) Add(o Ornament) error {
	if c.indexOf(o.ID) >= 0 {
		return ErrDuplicateID
	}
	cl := o.Clone()
	cl.Normalize()
	c.items = append(c.items, cl)
	c.rev++
	return nil
}

// Update применяет fn к орнаменту на месте и нормализует результат.
func (c *Collection) Update(id string, fn func(o *Ornament)) error {
	i := c.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	fn(&c.items[i])
	c.items[i].Normalize()
	c.rev++
	return nil
}

// Remove удаляет орнамент. Возвращает false, если его не было.
func (c *Collection) Remove(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.rev++
	return true
}

// ForSection - орнаменты секции для просмотра: только видимые.
func (c *Collection) ForSection(s Section) []Ornament {
	var out []Ornament
	for _, o := range c.items {
		if o.Section == s && o.IsVisible {
			out = append(out, o.Clone())
		}
	}
	return out
}

// BySection - все орнаменты секции, включая скрытые (список в редакторе).
func (c *Collection) BySection(s Section) []Ornament {
	var out []Ornament
	for _, o := range c.items {
		if o.Section == s {
			out = append(out, o.Clone())
		}
	}
	return out
}

// SectionCounts считает видимые орнаменты по секциям.
func (c *Collection) SectionCounts() map[Section]int {
	counts := make(map[Section]int)
	for _, o := range c.items {
		if o.IsVisible && o.Section.Known() {
			counts[o.Section]++
		}
	}
	return counts
}
