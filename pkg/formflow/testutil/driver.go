// driver.go provides an in-memory Driver that simulates the application
// form fixture. It lets the page model and its state machine be verified
// without a rendering engine: the mock applies the same conditional
// visibility and submit-time validation rules as the fixture document.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/formflow/formflow/pkg/formflow"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// variant selector values, mirroring the fixture's option values.
var variantValues = []string{"individual", "business", "institutional"}

// blockFields maps each conditional block to the inputs it contains.
var blockFields = map[string][]string{
	"individual-fields":    {},
	"business-fields":      {"company", "tax-id"},
	"institutional-fields": {"institution", "accreditation-id"},
}

// MockDriver simulates the fixture document behind the Driver contract.
// Not safe for concurrent use; like a real session it expects one caller
// making sequential calls.
type MockDriver struct {
	dom       map[string]*mockElement
	navigated bool

	// NavigateErr, when set, is returned by Navigate wrapped in a
	// NavigationError. For testing the navigation failure path.
	NavigateErr error

	// Missing marks test identifiers that Locate reports as not found,
	// simulating a contract break between model and fixture.
	Missing map[string]bool

	// StuckWaits marks test identifiers whose WaitFor never resolves,
	// simulating a render that hangs past the wait budget.
	StuckWaits map[string]bool

	// TokenWord is the trailing word of minted tokens. Defaults to "alpha".
	TokenWord string
}

// NewMockDriver returns a driver with no document loaded. Navigate builds
// the fixture document, matching the real lifecycle where a session starts
// with a navigation event.
func NewMockDriver() *MockDriver {
	return &MockDriver{
		Missing:    map[string]bool{},
		StuckWaits: map[string]bool{},
		TokenWord:  "alpha",
	}
}

// Navigate resets the simulated document to its initial rendering.
func (m *MockDriver) Navigate(_ context.Context, location string) error {
	if m.NavigateErr != nil {
		return &formflow.NavigationError{Location: location, Err: m.NavigateErr}
	}
	m.dom = map[string]*mockElement{}
	add := func(id string, visible bool) {
		m.dom[id] = &mockElement{drv: m, id: id, visible: visible}
	}
	add("username", true)
	add("password", true)
	add("email", true)
	add("account-type", true)
	add("submit", true)
	add("individual-fields", false)
	add("business-fields", false)
	add("institutional-fields", false)
	add("company", false)
	add("tax-id", false)
	add("institution", false)
	add("accreditation-id", false)
	add("secure-area", false)
	add("token", false)
	add("status-message", false)
	add("region", false)
	m.navigated = true
	return nil
}

// Locate resolves a descriptor against the simulated document.
func (m *MockDriver) Locate(_ context.Context, d formflow.Descriptor) (formflow.Element, error) {
	id := m.resolve(d)
	if !m.navigated || id == "" || m.Missing[id] {
		return nil, &formflow.ElementNotFoundError{
			Op:         "locate",
			Descriptor: d,
			Err:        errors.New("no such element"),
		}
	}
	el, ok := m.dom[id]
	if !ok {
		return nil, &formflow.ElementNotFoundError{
			Op:         "locate",
			Descriptor: d,
			Err:        errors.New("no such element"),
		}
	}
	return el, nil
}

// resolve maps role+name descriptors onto the fixture's test identifiers.
func (m *MockDriver) resolve(d formflow.Descriptor) string {
	if d.TestID != "" {
		return d.TestID
	}
	switch {
	case d.Role == "button" && strings.EqualFold(d.Name, "submit application"):
		return "submit"
	case d.Role == "status":
		return "status-message"
	case d.Role == "combobox" && strings.EqualFold(d.Name, "account type"):
		return "account-type"
	case d.Role == "textbox":
		switch strings.ToLower(d.Name) {
		case "username":
			return "username"
		case "password":
			return "password"
		case "email":
			return "email"
		}
	}
	return ""
}

// Value returns the current value of an input, for assertions on the
// simulated document (e.g. that switching variants cleared a field).
func (m *MockDriver) Value(id string) string {
	if el, ok := m.dom[id]; ok {
		return el.value
	}
	return ""
}

// selectVariantValue applies the fixture's conditional visibility rule:
// the chosen block becomes visible, every other block is hidden and its
// inputs are cleared.
func (m *MockDriver) selectVariantValue(value string) {
	for _, v := range variantValues {
		block := v + "-fields"
		if v == value {
			m.show(block)
			for _, f := range blockFields[block] {
				m.show(f)
			}
			continue
		}
		m.hide(block)
		for _, f := range blockFields[block] {
			m.hide(f)
			m.dom[f].value = ""
		}
	}
}

// submitForm applies the fixture's submit-time validation.
func (m *MockDriver) submitForm() {
	variant := m.dom["account-type"].value
	reason := ""
	switch {
	case len(m.dom["username"].value) < 3:
		reason = "Username must be at least 3 characters."
	case len(m.dom["password"].value) < 6:
		reason = "Password must be at least 6 characters."
	case !emailPattern.MatchString(m.dom["email"].value):
		reason = "Enter a valid email address."
	case variant == "business" && (m.dom["company"].value == "" || m.dom["tax-id"].value == ""):
		reason = "Complete the business fields."
	case variant == "institutional" && (m.dom["institution"].value == "" || m.dom["accreditation-id"].value == ""):
		reason = "Complete the institutional fields."
	}

	status := m.dom["status-message"]
	status.visible = true
	if reason != "" {
		status.text = reason
		return
	}
	status.text = "Application submitted."
	m.show("secure-area")
	m.show("region")
	token := m.dom["token"]
	token.visible = true
	token.text = fmt.Sprintf("JWT-%d-%s", time.Now().UnixMilli(), m.TokenWord)
}

func (m *MockDriver) show(id string) { m.dom[id].visible = true }
func (m *MockDriver) hide(id string) { m.dom[id].visible = false }

type mockElement struct {
	drv     *MockDriver
	id      string
	value   string
	text    string
	visible bool
}

// Fill replaces the element's value. Filling a hidden element fails the
// same way a real driver's actionability wait does: with a timeout.
func (e *mockElement) Fill(_ context.Context, value string) error {
	if !e.visible {
		return &formflow.TimeoutError{
			Op:         "fill",
			Descriptor: formflow.ByTestID(e.id),
			Err:        context.DeadlineExceeded,
		}
	}
	e.value = value
	return nil
}

func (e *mockElement) Click(_ context.Context) error {
	if !e.visible {
		return &formflow.TimeoutError{
			Op:         "click",
			Descriptor: formflow.ByTestID(e.id),
			Err:        context.DeadlineExceeded,
		}
	}
	if e.id == "submit" {
		e.drv.submitForm()
	}
	return nil
}

func (e *mockElement) SelectOption(_ context.Context, value string) error {
	e.value = value
	if e.id == "account-type" {
		e.drv.selectVariantValue(value)
	}
	return nil
}

func (e *mockElement) Visible(_ context.Context) (bool, error) {
	return e.visible, nil
}

func (e *mockElement) Text(_ context.Context) (string, error) {
	return e.text, nil
}

// WaitFor resolves immediately when the document already satisfies the
// state. The simulated document only changes in response to calls, so a
// state that does not hold now never will; that surfaces as a timeout,
// mirroring a render that hangs past the wait budget.
func (e *mockElement) WaitFor(_ context.Context, state formflow.ElementState) error {
	if e.drv.StuckWaits[e.id] {
		return e.timeout("wait for " + state.String())
	}
	want := state == formflow.StateVisible
	if e.visible == want {
		return nil
	}
	return e.timeout("wait for " + state.String())
}

func (e *mockElement) timeout(op string) error {
	return &formflow.TimeoutError{
		Op:         op,
		Descriptor: formflow.ByTestID(e.id),
		Err:        context.DeadlineExceeded,
	}
}
