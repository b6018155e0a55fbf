package configurator

import (
	"context"
	"errors"

	"github.com/toushik018/hardal/internal/commerce"
)

var (
	ErrNoTrackedProduct = errors.New("no product selected for extra")
)

// Commerce is the slice of the commerce client the configurator needs.
type Commerce interface {
	GetCart(ctx context.Context, token string) (*commerce.Cart, error)
	AddPackage(ctx context.Context, token string) error
	AddExtra(ctx context.Context, token, productID string) error
}

// Menus provides the configurator's step definitions and step products.
type Menus interface {
	Content(ctx context.Context, token string, menuID int) (*commerce.Menu, error)
	StepProducts(ctx context.Context, token string, content commerce.MenuContent) ([]commerce.Product, error)
}

type Service struct {
	api   Commerce
	menus Menus
	repo  ProgressRepository
}

func NewService(api Commerce, menus Menus, repo ProgressRepository) *Service {
	return &Service{api: api, menus: menus, repo: repo}
}

// StepState describes the configurator after an operation: where the session
// stands, how the active category's gate looks, and whether the modal is up.
type StepState struct {
	Step          int                  `json:"step"`
	TotalSteps    int                  `json:"totalSteps"`
	Category      commerce.MenuContent `json:"category"`
	CurrentCount  int                  `json:"currentCount"`
	RequiredCount int                  `json:"requiredCount"`
	Satisfied     bool                 `json:"satisfied"`
	Modal         ModalState           `json:"modal"`
	ModalOpened   bool                 `json:"modalOpened,omitempty"`
	Finished      bool                 `json:"finished,omitempty"`
}

// State recomputes the active step's gate from the live cart and runs the
// edge-triggered modal check. Callers poll this after every cart mutation,
// so this is where completion crossings are detected.
func (s *Service) State(ctx context.Context, token string, menuID int) (StepState, error) {
	p, m, err := s.load(ctx, token, menuID)
	if err != nil {
		return StepState{}, err
	}

	count, content, err := s.observe(ctx, token, p, m)
	if err != nil {
		return StepState{}, err
	}

	fired := s.applyObservation(p, content, count)
	if err := s.repo.Save(token, menuID, p); err != nil {
		return StepState{}, err
	}

	st := s.stepState(p, m, content, count)
	st.ModalOpened = fired
	return st, nil
}

// Next advances one step, or commits the package when the last step's gate is
// met. A failed commit leaves the step untouched so the action stays
// retryable; a successful one drops the session's progress entirely.
func (s *Service) Next(ctx context.Context, token string, menuID int) (StepState, error) {
	p, m, err := s.load(ctx, token, menuID)
	if err != nil {
		return StepState{}, err
	}

	count, content, err := s.observe(ctx, token, p, m)
	if err != nil {
		return StepState{}, err
	}

	next, commit, err := Next(p.Step, m.Contents, count)
	if err != nil {
		return s.stepState(p, m, content, count), err
	}

	if commit {
		if err := s.api.AddPackage(ctx, token); err != nil {
			return s.stepState(p, m, content, count), err
		}
		if err := s.repo.Clear(token, menuID); err != nil {
			return StepState{}, err
		}
		st := s.stepState(p, m, content, count)
		st.Finished = true
		st.Modal = ModalClosed
		return st, nil
	}

	p.Step = next
	p.Modal = Transition(p.Modal, EventStepChanged)
	if err := s.repo.Save(token, menuID, p); err != nil {
		return StepState{}, err
	}
	return s.State(ctx, token, menuID)
}

// Previous steps back one; the modal never survives a step change.
func (s *Service) Previous(ctx context.Context, token string, menuID int) (StepState, error) {
	p, err := s.repo.Load(token, menuID)
	if err != nil {
		return StepState{}, err
	}

	p.Step = Previous(p.Step)
	p.Modal = Transition(p.Modal, EventStepChanged)
	if err := s.repo.Save(token, menuID, p); err != nil {
		return StepState{}, err
	}
	return s.State(ctx, token, menuID)
}

// JumpTo moves directly to a step where the jump rules allow it.
func (s *Service) JumpTo(ctx context.Context, token string, menuID, target int) (StepState, error) {
	p, m, err := s.load(ctx, token, menuID)
	if err != nil {
		return StepState{}, err
	}

	gateSatisfied := false
	if target == p.Step+1 {
		count, content, err := s.observe(ctx, token, p, m)
		if err != nil {
			return StepState{}, err
		}
		gateSatisfied = count >= content.Count
	}

	next, err := JumpTo(p.Step, target, len(m.Contents), gateSatisfied)
	if err != nil {
		count, content, oerr := s.observe(ctx, token, p, m)
		if oerr != nil {
			return StepState{}, oerr
		}
		return s.stepState(p, m, content, count), err
	}

	p.Step = next
	p.Modal = Transition(p.Modal, EventStepChanged)
	if err := s.repo.Save(token, menuID, p); err != nil {
		return StepState{}, err
	}
	return s.State(ctx, token, menuID)
}

// TrackProduct remembers which product the upsell modal would add as an
// extra.
func (s *Service) TrackProduct(token string, menuID int, productID string) error {
	p, err := s.repo.Load(token, menuID)
	if err != nil {
		return err
	}
	p.TrackedProductID = productID
	return s.repo.Save(token, menuID, p)
}

// AddExtra books the tracked product as a priced extra and closes the modal.
func (s *Service) AddExtra(ctx context.Context, token string, menuID int) (StepState, error) {
	p, err := s.repo.Load(token, menuID)
	if err != nil {
		return StepState{}, err
	}

	if p.TrackedProductID == "" {
		return StepState{}, ErrNoTrackedProduct
	}

	if err := s.api.AddExtra(ctx, token, p.TrackedProductID); err != nil {
		return StepState{}, err
	}

	p.TrackedProductID = ""
	p.Modal = Transition(p.Modal, EventAddExtra)
	if err := s.repo.Save(token, menuID, p); err != nil {
		return StepState{}, err
	}
	return s.State(ctx, token, menuID)
}

// Advance closes the modal and moves on like Next.
func (s *Service) Advance(ctx context.Context, token string, menuID int) (StepState, error) {
	p, err := s.repo.Load(token, menuID)
	if err != nil {
		return StepState{}, err
	}

	p.Modal = Transition(p.Modal, EventAdvance)
	if err := s.repo.Save(token, menuID, p); err != nil {
		return StepState{}, err
	}
	return s.Next(ctx, token, menuID)
}

// Dismiss closes the modal without taking either action.
func (s *Service) Dismiss(ctx context.Context, token string, menuID int) (StepState, error) {
	p, err := s.repo.Load(token, menuID)
	if err != nil {
		return StepState{}, err
	}

	p.Modal = Transition(p.Modal, EventDismiss)
	if err := s.repo.Save(token, menuID, p); err != nil {
		return StepState{}, err
	}
	return s.State(ctx, token, menuID)
}

// Abandon drops the session's progress for a menu, mirroring the storefront
// clearing its saved progress when the configurator unmounts.
func (s *Service) Abandon(token string, menuID int) error {
	return s.repo.Clear(token, menuID)
}

// --------------------------------------------------

func (s *Service) load(ctx context.Context, token string, menuID int) (*Progress, *commerce.Menu, error) {
	p, err := s.repo.Load(token, menuID)
	if err != nil {
		return nil, nil, err
	}

	m, err := s.menus.Content(ctx, token, menuID)
	if err != nil {
		return nil, nil, err
	}
	if len(m.Contents) == 0 {
		return nil, nil, errors.New("menu has no configurator steps")
	}

	// Step indices must stay inside the menu.
	if p.Step < 0 || p.Step >= len(m.Contents) {
		p.Step = 0
	}
	return p, m, nil
}

func (s *Service) observe(ctx context.Context, token string, p *Progress, m *commerce.Menu) (int, commerce.MenuContent, error) {
	content := m.Contents[p.Step]

	products, err := s.menus.StepProducts(ctx, token, content)
	if err != nil {
		return 0, content, err
	}
	ids := make(map[string]bool, len(products))
	for _, product := range products {
		ids[product.ProductID] = true
	}

	c, err := s.api.GetCart(ctx, token)
	if err != nil {
		return 0, content, err
	}
	return CurrentCount(c, content.Name, ids), content, nil
}

// applyObservation runs the edge trigger. A category seen for the first time
// is seeded with the observed count and never fires on that sighting.
func (s *Service) applyObservation(p *Progress, content commerce.MenuContent, count int) bool {
	st, ok := p.Categories[content.Name]
	if !ok {
		p.Categories[content.Name] = &CategoryState{LastCount: count}
		return false
	}

	fired := st.Observe(count, content.Count)
	if fired {
		p.Modal = Transition(p.Modal, EventCompleted)
	}
	return fired
}

func (s *Service) stepState(p *Progress, m *commerce.Menu, content commerce.MenuContent, count int) StepState {
	return StepState{
		Step:          p.Step,
		TotalSteps:    len(m.Contents),
		Category:      content,
		CurrentCount:  count,
		RequiredCount: content.Count,
		Satisfied:     count >= content.Count,
		Modal:         p.Modal,
	}
}
