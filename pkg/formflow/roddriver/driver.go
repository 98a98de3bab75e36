// Package roddriver adapts a Rod page to the formflow Driver contract.
//
// Failure classification follows the taxonomy the page model relies on:
// an element that never appears within the wait budget is not-found (the
// fixture broke its contract); a state wait that expires on an element
// that does exist is a timeout (a race or slow render, safe to retry);
// an unreachable location is a navigation failure.
package roddriver

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/formflow/formflow/pkg/formflow"
)

// DefaultWaitBudget bounds every locate and state wait unless the caller's
// context expires first.
const DefaultWaitBudget = 10 * time.Second

// Driver drives a single Rod page. Like the sessions built on top of it,
// it expects one caller making sequential calls.
type Driver struct {
	page       *rod.Page
	waitBudget time.Duration
}

// Option configures a Driver.
type Option func(*Driver)

// WithWaitBudget overrides the per-operation wait budget.
func WithWaitBudget(d time.Duration) Option {
	return func(drv *Driver) { drv.waitBudget = d }
}

// New wraps an already-connected Rod page.
func New(page *rod.Page, opts ...Option) *Driver {
	d := &Driver{page: page, waitBudget: DefaultWaitBudget}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Navigate opens the location and waits for the document to load.
// A location without a scheme is treated as a local file path.
func (d *Driver) Navigate(ctx context.Context, location string) error {
	url := location
	if !strings.Contains(location, "://") {
		abs, err := filepath.Abs(location)
		if err != nil {
			return &formflow.NavigationError{Location: location, Err: err}
		}
		url = "file://" + abs
	}
	page := d.page.Context(ctx).Timeout(d.waitBudget)
	if err := page.Navigate(url); err != nil {
		return &formflow.NavigationError{Location: location, Err: err}
	}
	if err := page.WaitLoad(); err != nil {
		return &formflow.NavigationError{Location: location, Err: err}
	}
	return nil
}

// Locate resolves a descriptor, waiting up to the budget for the element
// to be attached to the document.
func (d *Driver) Locate(ctx context.Context, desc formflow.Descriptor) (formflow.Element, error) {
	page := d.page.Context(ctx).Timeout(d.waitBudget)

	var el *rod.Element
	var err error
	if desc.TestID != "" {
		el, err = page.Element(fmt.Sprintf(`[data-testid=%q]`, desc.TestID))
	} else {
		// The accessible name of a form control usually comes from its
		// aria-label attribute, which a text regex never sees; the name of
		// a button is usually its text, which an attribute selector never
		// sees. Race both so either source of the name resolves.
		el, err = page.Race().
			Element(fmt.Sprintf(`[role=%q][aria-label=%q]`, desc.Role, desc.Name)).
			ElementR(fmt.Sprintf(`[role=%q]`, desc.Role), "(?i)"+regexp.QuoteMeta(desc.Name)).
			Do()
	}
	if err != nil {
		return nil, &formflow.ElementNotFoundError{Op: "locate", Descriptor: desc, Err: err}
	}
	// Detach the locate deadline so the handle outlives it; every later
	// operation applies its own bound via bounded().
	return &element{el: el.CancelTimeout(), desc: desc, waitBudget: d.waitBudget}, nil
}

type element struct {
	el         *rod.Element
	desc       formflow.Descriptor
	waitBudget time.Duration
}

func (e *element) bounded(ctx context.Context) *rod.Element {
	return e.el.Context(ctx).Timeout(e.waitBudget)
}

// Fill replaces the element's value. Rod's Input appends, so any existing
// text is selected first.
func (e *element) Fill(ctx context.Context, value string) error {
	el := e.bounded(ctx)
	if err := el.SelectAllText(); err != nil {
		return e.classify("fill", err)
	}
	if err := el.Input(value); err != nil {
		return e.classify("fill", err)
	}
	return nil
}

func (e *element) Click(ctx context.Context) error {
	if err := e.bounded(ctx).Click(proto.InputMouseButtonLeft, 1); err != nil {
		return e.classify("click", err)
	}
	return nil
}

func (e *element) SelectOption(ctx context.Context, value string) error {
	sel := fmt.Sprintf(`[value=%q]`, value)
	if err := e.bounded(ctx).Select([]string{sel}, true, rod.SelectorTypeCSSSector); err != nil {
		return e.classify("select option", err)
	}
	return nil
}

func (e *element) Visible(ctx context.Context) (bool, error) {
	visible, err := e.bounded(ctx).Visible()
	if err != nil {
		return false, e.classify("visible", err)
	}
	return visible, nil
}

func (e *element) Text(ctx context.Context) (string, error) {
	text, err := e.bounded(ctx).Text()
	if err != nil {
		return "", e.classify("text", err)
	}
	return text, nil
}

func (e *element) WaitFor(ctx context.Context, state formflow.ElementState) error {
	el := e.bounded(ctx)
	var err error
	if state == formflow.StateHidden {
		err = el.WaitInvisible()
	} else {
		err = el.WaitVisible()
	}
	if err != nil {
		return e.classify("wait for "+state.String(), err)
	}
	return nil
}

// classify maps a Rod failure on an existing element to the error
// taxonomy. Budget exhaustion on an element handle is a timeout, never
// silently downgraded; everything else passes through with context.
func (e *element) classify(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &formflow.TimeoutError{Op: op, Descriptor: e.desc, Err: err}
	}
	return fmt.Errorf("%s %s: %w", op, e.desc, err)
}
