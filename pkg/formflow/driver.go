package formflow

import (
	"context"
	"fmt"
)

// Descriptor locates an element semantically: either by a stable
// test-identifier attribute or by ARIA role plus accessible name.
// Positional or structural selection is deliberately not expressible.
type Descriptor struct {
	// TestID is the value of the element's data-testid attribute.
	// Takes precedence when set.
	TestID string

	// Role and Name locate by ARIA role and accessible name.
	Role string
	Name string
}

// ByTestID builds a test-identifier descriptor.
func ByTestID(id string) Descriptor { return Descriptor{TestID: id} }

// ByRole builds a role+name descriptor.
func ByRole(role, name string) Descriptor { return Descriptor{Role: role, Name: name} }

// String returns a human-readable form used in error messages.
func (d Descriptor) String() string {
	if d.TestID != "" {
		return fmt.Sprintf("testid=%s", d.TestID)
	}
	return fmt.Sprintf("role=%s name=%q", d.Role, d.Name)
}

// ElementState is a wait condition on a located element.
type ElementState int

const (
	// StateVisible waits until the element is rendered and visible.
	StateVisible ElementState = iota
	// StateHidden waits until the element is hidden or detached.
	StateHidden
)

// String returns a string representation of the ElementState.
func (s ElementState) String() string {
	if s == StateHidden {
		return "hidden"
	}
	return "visible"
}

// Driver is the capability contract the page model consumes from a
// browser-automation backend. Implementations must wait (bounded by ctx)
// for an element to exist before returning it from Locate, and must
// surface wait-budget exhaustion as a distinguishable error so callers
// can tell "never existed" from "never became ready".
type Driver interface {
	// Navigate opens the given location. Location may be a network URL or
	// a local-file reference.
	Navigate(ctx context.Context, location string) error

	// Locate resolves a descriptor to an element handle, waiting for the
	// element to be attached to the document.
	Locate(ctx context.Context, d Descriptor) (Element, error)
}

// Element is a handle to one located element.
type Element interface {
	// Fill replaces the element's value.
	Fill(ctx context.Context, value string) error

	// Click dispatches a click to the element.
	Click(ctx context.Context) error

	// SelectOption selects the option with the given value on a select
	// control and fires the change event.
	SelectOption(ctx context.Context, value string) error

	// Visible reports whether the element is currently rendered.
	Visible(ctx context.Context) (bool, error)

	// Text returns the element's text content. Empty string if none.
	Text(ctx context.Context) (string, error)

	// WaitFor blocks until the element reaches the given state.
	WaitFor(ctx context.Context, state ElementState) error
}
