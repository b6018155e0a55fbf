package configurator

import (
	"fmt"
	"sync"
)

// CategoryState remembers, per category, whether the upsell modal already
// fired for the current threshold crossing and the last observed count.
type CategoryState struct {
	HasShownModal bool `json:"hasShownModal"`
	LastCount     int  `json:"lastCount"`
}

// Observe records a fresh count and reports whether the upsell modal should
// open. Opening is edge-triggered: it happens at most once per upward
// crossing of the required count, and dropping back below the requirement
// re-arms it. An unchanged count never re-fires.
func (st *CategoryState) Observe(current, required int) bool {
	if current < required {
		st.HasShownModal = false
		st.LastCount = current
		return false
	}

	if !st.HasShownModal && current > st.LastCount {
		st.HasShownModal = true
		st.LastCount = current
		return true
	}

	st.LastCount = current
	return false
}

// Progress is one session's configurator state for one menu. It lives only
// for the duration of the configuration and is dropped when the package is
// committed or the configurator is abandoned.
type Progress struct {
	MenuID           int                       `json:"menuId"`
	Step             int                       `json:"step"`
	Categories       map[string]*CategoryState `json:"categories"`
	Modal            ModalState                `json:"modal"`
	TrackedProductID string                    `json:"trackedProductId,omitempty"`
}

func NewProgress(menuID int) *Progress {
	return &Progress{
		MenuID:     menuID,
		Categories: make(map[string]*CategoryState),
		Modal:      ModalClosed,
	}
}

func (p *Progress) clone() *Progress {
	c := *p
	c.Categories = make(map[string]*CategoryState, len(p.Categories))
	for name, st := range p.Categories {
		cp := *st
		c.Categories[name] = &cp
	}
	return &c
}

// ProgressRepository stores configurator progress per session and menu so a
// configuration survives across requests.
type ProgressRepository interface {
	Load(token string, menuID int) (*Progress, error)
	Save(token string, menuID int, p *Progress) error
	Clear(token string, menuID int) error
}

type InMemoryProgressRepository struct {
	mu       sync.Mutex
	sessions map[string]*Progress
}

func NewInMemoryProgressRepository() *InMemoryProgressRepository {
	return &InMemoryProgressRepository{
		sessions: make(map[string]*Progress),
	}
}

func progressKey(token string, menuID int) string {
	return fmt.Sprintf("%s:%d", token, menuID)
}

// Load hands out a deep copy. Callers mutate their copy freely and
// concurrent requests for the same session never share state; changes only
// become visible through Save.
func (r *InMemoryProgressRepository) Load(token string, menuID int) (*Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.sessions[progressKey(token, menuID)]; ok {
		return p.clone(), nil
	}
	return NewProgress(menuID), nil
}

func (r *InMemoryProgressRepository) Save(token string, menuID int, p *Progress) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[progressKey(token, menuID)] = p.clone()
	return nil
}

func (r *InMemoryProgressRepository) Clear(token string, menuID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, progressKey(token, menuID))
	return nil
}
