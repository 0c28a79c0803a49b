package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/ledger"
	"github.com/theirongolddev/tally/internal/status"
	"github.com/theirongolddev/tally/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type formKind int

const (
	formNone formKind = iota
	formAdd
	formEdit
	formDelete
)

// formValues backs the huh fields. It lives behind a pointer because App is
// copied on every update.
type formValues struct {
	description string
	amount      string
	category    string
	confirm     bool

	// entry targeted by a delete, resolved again on confirm
	deleteID uint64
}

func validateDescription(s string) error {
	if strings.TrimSpace(s) == "" {
		return ledger.ErrEmptyDescription
	}
	return nil
}

func validateAmount(s string) error {
	v, err := cli.ParseAmount(s)
	if err != nil {
		return errors.New("not a number")
	}
	if v <= 0 {
		return ledger.ErrInvalidAmount
	}
	return nil
}

func newExpenseForm(vals *formValues, title string, categories []string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				CharLimit(120).
				Value(&vals.description).
				Validate(validateDescription),
			huh.NewInput().
				Title("Amount").
				Placeholder("0,00").
				Value(&vals.amount).
				Validate(validateAmount),
			huh.NewSelect[string]().
				Title("Category").
				Options(huh.NewOptions(categories...)...).
				Value(&vals.category),
		).Title(title),
	).WithShowHelp(true).WithTheme(huh.ThemeBase16())
}

func newDeleteForm(vals *formValues, label string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete expense?").
				Description(label).
				Affirmative("Delete").
				Negative("Keep").
				Value(&vals.confirm),
		),
	).WithShowHelp(true).WithTheme(huh.ThemeBase16())
}

func (a App) formWidth() int {
	w := components.CardInnerWidth(a.contentWidth())
	if w > 70 {
		w = 70
	}
	return w
}

func (a App) openForm(form *huh.Form, vals *formValues, kind formKind) (tea.Model, tea.Cmd) {
	a.form = form.WithWidth(a.formWidth())
	if a.height > 0 {
		a.form = a.form.WithHeight(a.height)
	}
	a.formVals = vals
	a.formKind = kind
	return a, a.form.Init()
}

func (a App) openAddForm() (tea.Model, tea.Cmd) {
	a.store.CancelEdit()
	vals := &formValues{}
	if cats := a.store.Categories(); len(cats) > 0 {
		vals.category = cats[0]
	}
	return a.openForm(newExpenseForm(vals, "New expense", a.store.Categories()), vals, formAdd)
}

func (a App) openEditForm(pos int) (tea.Model, tea.Cmd) {
	e, err := a.store.BeginEdit(pos)
	if err != nil {
		return a, a.reportStoreError(err)
	}
	vals := &formValues{
		description: e.Description,
		amount:      strings.TrimPrefix(cli.FormatAmount(e.Amount), cli.CurrencyPrefix),
		category:    e.Category,
	}
	title := fmt.Sprintf("Edit expense #%d", pos+1)
	return a.openForm(newExpenseForm(vals, title, a.store.Categories()), vals, formEdit)
}

func (a App) openDeleteForm(pos int) (tea.Model, tea.Cmd) {
	entries := a.store.Entries()
	if pos < 0 || pos >= len(entries) {
		return a, a.reportStoreError(ledger.ErrIndexOutOfRange)
	}
	e := entries[pos]
	vals := &formValues{deleteID: e.ID}
	label := fmt.Sprintf("#%d %s · %s · %s", pos+1, e.Description, e.Category, cli.FormatAmount(e.Amount))
	return a.openForm(newDeleteForm(vals, label), vals, formDelete)
}

// cancelForm closes the form without applying it. Cancelling an edit also
// returns the store to adding mode.
func (a App) cancelForm() (tea.Model, tea.Cmd) {
	kind := a.formKind
	a.closeForm()
	if kind == formEdit {
		a.store.CancelEdit()
		return a, a.setStatus("Edit cancelled", status.Info)
	}
	return a, nil
}

func (a *App) closeForm() {
	a.form = nil
	a.formVals = nil
	a.formKind = formNone
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		return a.submitForm()
	case huh.StateAborted:
		return a.cancelForm()
	}

	return a, cmd
}

func (a App) submitForm() (tea.Model, tea.Cmd) {
	vals, kind := a.formVals, a.formKind
	a.closeForm()

	if kind == formDelete {
		if !vals.confirm {
			return a, nil
		}
		return a.removeByID(vals.deleteID)
	}

	amount, err := cli.ParseAmount(vals.amount)
	if err != nil {
		return a, a.setStatus(err.Error(), status.Error)
	}
	outcome, err := a.store.Commit(vals.description, amount, vals.category)
	if err != nil && outcome == ledger.OutcomeNone {
		// Validation failed: the store is untouched and still in the
		// same mode.
		return a, a.reportStoreError(err)
	}
	a.clampCursor(len(a.visibleRows()))
	if err != nil {
		return a, a.reportStoreError(err)
	}

	if outcome == ledger.OutcomeUpdated {
		return a, a.setStatus("Expense updated", status.Success)
	}
	a.exp.cursor = a.rowOf(a.store.Len() - 1)
	return a, a.setStatus("Expense added", status.Success)
}

func (a App) removeByID(id uint64) (tea.Model, tea.Cmd) {
	pos := -1
	for i, e := range a.store.Entries() {
		if e.ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return a, a.reportStoreError(ledger.ErrIndexOutOfRange)
	}
	err := a.store.Remove(pos)
	a.clampCursor(len(a.visibleRows()))
	if err != nil {
		return a, a.reportStoreError(err)
	}
	return a, a.setStatus("Expense deleted", status.Success)
}

// rowOf returns the filtered row showing store position pos, or the
// current cursor when it is filtered out.
func (a App) rowOf(pos int) int {
	for i, p := range a.visibleRows() {
		if p == pos {
			return i
		}
	}
	return a.exp.cursor
}

func (a App) renderForm(cw int) string {
	title := "Expense"
	switch a.formKind {
	case formAdd:
		title = "Add"
	case formEdit:
		title = "Edit"
	case formDelete:
		title = "Delete"
	}
	return components.ContentCard(title, a.form.View(), cw)
}
