// Package wizard drives the two-step promotion form: step one collects
// the basic info, step two picks the products. The wizard holds a draft,
// gates the step transition on validation and hands a clean draft back
// when the form finishes.
package wizard

import (
	"github.com/avillega/petstore-admin/internal/catalog"
	"github.com/avillega/petstore-admin/internal/models"
	"github.com/avillega/petstore-admin/internal/validation"
)

// Step identifies a wizard page.
type Step int

const (
	StepBasicInfo Step = 1
	StepProducts  Step = 2
)

// BasicInfo carries the step-one fields as entered by the user.
type BasicInfo struct {
	Name        string
	Description string
	Category    models.Category
	Discount    int
	StartDate   string
	EndDate     string
	Image       string
}

// Wizard is one in-flight form session. It is not safe for concurrent
// use; each editing session owns its own Wizard.
type Wizard struct {
	validator *validation.Validator
	draft     models.PromotionDraft
	step      Step
	errors    map[string]string
}

// New starts an empty creation session on step one.
func New(v *validation.Validator) *Wizard {
	return &Wizard{
		validator: v,
		draft:     models.PromotionDraft{SelectedProducts: []string{}},
		step:      StepBasicInfo,
		errors:    map[string]string{},
	}
}

// NewFromPromotion starts an editing session pre-filled from an existing
// promotion, on step one.
func NewFromPromotion(v *validation.Validator, p models.Promotion) *Wizard {
	w := New(v)
	w.draft = models.PromotionDraft{
		Name:             p.Name,
		Description:      p.Description,
		Category:         p.Category,
		Discount:         p.Discount,
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		Image:            p.Image,
		SelectedProducts: append([]string{}, p.SelectedProducts...),
	}
	return w
}

// Step returns the current page.
func (w *Wizard) Step() Step { return w.step }

// Draft returns a snapshot of the current draft.
func (w *Wizard) Draft() models.PromotionDraft {
	d := w.draft
	d.SelectedProducts = append([]string{}, w.draft.SelectedProducts...)
	return d
}

// Errors returns the field messages from the last gate that failed.
func (w *Wizard) Errors() map[string]string {
	out := make(map[string]string, len(w.errors))
	for field, msg := range w.errors {
		out[field] = msg
	}
	return out
}

// SetBasicInfo writes the step-one fields into the draft. Changing the
// category goes through SetCategory so the selection reset applies.
func (w *Wizard) SetBasicInfo(info BasicInfo) {
	w.draft.Name = info.Name
	w.draft.Description = info.Description
	w.draft.Discount = info.Discount
	w.draft.StartDate = info.StartDate
	w.draft.EndDate = info.EndDate
	w.draft.Image = info.Image
	w.SetCategory(info.Category)
}

// SetCategory changes the draft's category. Since products belong to a
// category, switching to a different one discards the current selection.
func (w *Wizard) SetCategory(c models.Category) {
	if c != w.draft.Category {
		w.draft.SelectedProducts = []string{}
	}
	w.draft.Category = c
}

// ToggleProduct adds the product to the selection, or removes it when it
// is already selected. Products outside the draft's category are ignored.
func (w *Wizard) ToggleProduct(id string) {
	if !catalog.IDsFor(w.draft.Category)[id] {
		return
	}
	for i, sel := range w.draft.SelectedProducts {
		if sel == id {
			w.draft.SelectedProducts = append(
				w.draft.SelectedProducts[:i], w.draft.SelectedProducts[i+1:]...)
			return
		}
	}
	w.draft.SelectedProducts = append(w.draft.SelectedProducts, id)
}

// Next advances from the basic-info step to the product step. It refuses
// to advance while step one has validation errors, which stay available
// through Errors.
func (w *Wizard) Next() bool {
	if w.step != StepBasicInfo {
		return false
	}
	w.errors = w.validator.Step1(w.draft)
	if len(w.errors) > 0 {
		return false
	}
	w.step = StepProducts
	return true
}

// Back returns to the basic-info step. The draft, selection included,
// survives the move.
func (w *Wizard) Back() {
	w.step = StepBasicInfo
}

// Finish validates the complete draft and returns it when every rule
// passes. On failure it returns false and records the messages.
func (w *Wizard) Finish() (models.PromotionDraft, bool) {
	w.errors = w.validator.Draft(w.draft)
	if len(w.errors) > 0 {
		return models.PromotionDraft{}, false
	}
	return w.Draft(), true
}
