// Package reader implements the speed-reading core: the sample-text
// registry, the playback controller and the tick engine that drives it.
package reader

import "strings"

// SampleText is a text that can be read in the trainer.
type SampleText struct {
	ID    int    `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Registry is an ordered list of sample texts.
type Registry struct {
	texts []SampleText
	index map[int]int
}

// NewRegistry builds a registry from texts in the given order.
// Texts with an empty body are skipped and duplicate ids keep the first occurrence.
func NewRegistry(texts ...SampleText) *Registry {
	r := &Registry{index: make(map[int]int, len(texts))}
	for _, t := range texts {
		if t.Body == "" {
			continue
		}
		if _, dup := r.index[t.ID]; dup {
			continue
		}
		r.index[t.ID] = len(r.texts)
		r.texts = append(r.texts, t)
	}
	return r
}

// Add appends t to the registry. A zero or taken id is replaced with the
// next free one. Texts with an empty body are rejected.
func (r *Registry) Add(t SampleText) (SampleText, bool) {
	if strings.TrimSpace(t.Body) == "" {
		return SampleText{}, false
	}
	if _, taken := r.index[t.ID]; taken || t.ID == 0 {
		t.ID = r.nextID()
	}
	r.index[t.ID] = len(r.texts)
	r.texts = append(r.texts, t)
	return t, true
}

func (r *Registry) nextID() int {
	id := 0
	for _, t := range r.texts {
		if t.ID > id {
			id = t.ID
		}
	}
	return id + 1
}

// List returns a copy of the texts in registry order.
func (r *Registry) List() []SampleText {
	out := make([]SampleText, len(r.texts))
	copy(out, r.texts)
	return out
}

// Len returns the number of texts.
func (r *Registry) Len() int {
	return len(r.texts)
}

// First returns the first text, or the zero value for an empty registry.
func (r *Registry) First() SampleText {
	if len(r.texts) == 0 {
		return SampleText{}
	}
	return r.texts[0]
}

// Get looks up a text by id.
func (r *Registry) Get(id int) (SampleText, bool) {
	i, ok := r.index[id]
	if !ok {
		return SampleText{}, false
	}
	return r.texts[i], true
}

// Next returns the text after id, wrapping around.
func (r *Registry) Next(id int) SampleText {
	return r.step(id, 1)
}

// Prev returns the text before id, wrapping around.
func (r *Registry) Prev(id int) SampleText {
	return r.step(id, -1)
}

func (r *Registry) step(id, delta int) SampleText {
	n := len(r.texts)
	if n == 0 {
		return SampleText{}
	}
	i, ok := r.index[id]
	if !ok {
		return r.texts[0]
	}
	return r.texts[((i+delta)%n+n)%n]
}

// DefaultTexts returns the built-in sample texts.
func DefaultTexts() []SampleText {
	return []SampleText{
		{
			ID:    1,
			Title: "Будущее технологий",
			Body:  "Искусственный интеллект и машинное обучение революционизируют нашу жизнь и работу. От беспилотных автомобилей до умных домашних устройств, технологии продолжают развиваться с беспрецедентной скоростью. Интеграция ИИ в повседневные приложения создает новые возможности и вызовы для общества.",
		},
		{
			ID:    2,
			Title: "Исследование океана",
			Body:  "Глубоко под поверхностью океана лежит мир тайн и чудес. Морские ученые открывают новые виды и экосистемы, которые бросают вызов нашему пониманию жизни на Земле. Глубокое море остается одним из наиболее изученных рубежей на нашей планете.",
		},
		{
			ID:    3,
			Title: "Космические путешествия",
			Body:  "Поскольку частные компании присоединяются к космическим агентствам в гонке за исследование космоса, мечта о межпланетных путешествиях становится ближе к реальности. Планируются миссии на Марс, разрабатываются лунные базы. Следующее десятилетие может стать первым шагом человечества к тому, чтобы стать мультипланетным видом.",
		},
		{
			ID:    4,
			Title: "Изменение климата",
			Body:  "Глобальные температуры продолжают расти, влияя на экосистемы по всему миру. Ученые предупреждают, что необходимы немедленные действия для предотвращения необратимого ущерба нашей планете. Внедрение возобновляемых источников энергии и устойчивых практик становится все боле важным в борьбе с изменением климата.",
		},
		{
			ID:    5,
			Title: "Человеческий мозг",
			Body:  "Нейробиологи делают прорывные открытия о работе нашего мозга. Новые исследования раскрывают сложность нейронных сетей и сознания. Понимание человеческого мозга может привести к лечению различных неврологических состояний и достижениям в области искусственного интеллекта.",
		},
	}
}
