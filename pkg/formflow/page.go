package formflow

import (
	"context"
	"fmt"
)

// FormPage is the page object for the account application form. It owns one
// FormSession and drives the form through the Driver capability contract.
//
// One session, one caller, sequential calls: a FormPage must not be shared
// across goroutines. Independent instances (one per test) share nothing.
type FormPage struct {
	drv      Driver
	location string
	session  FormSession
}

// NewFormPage builds a page object for the form at the given location.
// Location may be a network URL or a local-file reference; both are passed
// through to the driver unchanged.
func NewFormPage(drv Driver, location string) *FormPage {
	return &FormPage{drv: drv, location: location}
}

// Session returns a snapshot of the current session state.
func (p *FormPage) Session() FormSession {
	return p.session.snapshot()
}

// Load navigates to the form and resets the session to its initial empty
// state. A fresh session requires a new Load.
func (p *FormPage) Load(ctx context.Context) error {
	if err := p.drv.Navigate(ctx, p.location); err != nil {
		return fmt.Errorf("load: %w", err)
	}
	p.session.reset()
	return nil
}

// FillBasicInfo writes the username, password and email fields. Values are
// not validated here; validation is the form's job at submit time.
func (p *FormPage) FillBasicInfo(ctx context.Context, username, password, email string) error {
	const op = "fill basic info"
	if err := p.session.checkFillBasic(op); err != nil {
		return err
	}
	pairs := []struct {
		loc   Descriptor
		value string
	}{
		{LocUsername, username},
		{LocPassword, password},
		{LocEmail, email},
	}
	for _, pr := range pairs {
		if err := p.fill(ctx, op, pr.loc, pr.value); err != nil {
			return err
		}
	}
	p.session.applyFillBasic(BasicFields{Username: username, Password: password, Email: email})
	return nil
}

// SelectVariant activates the conditional field block for v. It returns
// only after the driver confirms the new block is visible, so a caller may
// immediately fill the block's fields without racing the render. Selecting
// a different variant discards the previous variant's field values.
func (p *FormPage) SelectVariant(ctx context.Context, v AccountVariant) error {
	const op = "select variant"
	if err := p.session.checkSelectVariant(op, v); err != nil {
		return err
	}
	sel, err := p.drv.Locate(ctx, LocAccountType)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := sel.SelectOption(ctx, v.String()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	block, err := p.drv.Locate(ctx, variantBlocks[v])
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := block.WaitFor(ctx, StateVisible); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	p.session.applySelectVariant(v)
	return nil
}

// FillVariantInfo writes the currently visible variant-specific fields.
// Field names are the caller-facing names of the active variant (for
// business: company, taxId; for institutional: institution,
// accreditationId). Valid only after SelectVariant has activated a
// non-Individual variant whose block is rendered.
func (p *FormPage) FillVariantInfo(ctx context.Context, fields map[string]string) error {
	const op = "fill variant info"
	if err := p.session.checkFillVariant(op); err != nil {
		return err
	}
	block, err := p.drv.Locate(ctx, variantBlocks[p.session.Variant])
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	visible, err := block.Visible(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !visible {
		// Model says a variant is active but the document disagrees.
		// Treat as a caller sequencing error, not a missing element.
		return &InvalidStateError{Op: op, Phase: p.session.Phase}
	}
	for name, value := range fields {
		if err := p.fill(ctx, op, fieldDescriptor(p.session.Variant, name), value); err != nil {
			return err
		}
	}
	p.session.applyFillVariant(fields)
	return nil
}

// Submit triggers form submission and records the outcome. The rendered
// document is authoritative: if the secure area becomes visible the
// session is Submitted and the issued token is captured; otherwise the
// session is Rejected and the status message carries the reason.
//
// Submit never returns an error for a validation failure. Rejection is a
// modeled business outcome, readable via Session and StatusMessage; errors
// are reserved for driver and infrastructure faults.
func (p *FormPage) Submit(ctx context.Context) error {
	const op = "submit"
	if err := p.session.checkSubmit(op); err != nil {
		return err
	}
	btn, err := p.drv.Locate(ctx, LocSubmit)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := btn.Click(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	// The fixture populates the status region on both outcomes, so it is
	// the single readiness signal for "submission processed".
	status, err := p.drv.Locate(ctx, LocStatusMessage)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := status.WaitFor(ctx, StateVisible); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	secure, err := p.drv.Locate(ctx, LocSecureArea)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	accepted, err := secure.Visible(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !accepted {
		p.session.reject()
		return nil
	}

	tokenEl, err := p.drv.Locate(ctx, LocToken)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	token, err := tokenEl.Text(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	p.session.accept(token)
	return nil
}

// VariantFieldsVisible reports whether the conditional block for v is
// currently rendered. This reads the document, not session bookkeeping, so
// tests can verify the two never drift apart.
func (p *FormPage) VariantFieldsVisible(ctx context.Context, v AccountVariant) (bool, error) {
	const op = "variant fields visible"
	d, ok := variantBlocks[v]
	if !ok {
		return false, &InvalidStateError{Op: op, Phase: p.session.Phase}
	}
	block, err := p.drv.Locate(ctx, d)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	visible, err := block.Visible(ctx)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return visible, nil
}

// IssuedToken returns the token captured on successful submission.
func (p *FormPage) IssuedToken() (string, error) {
	if p.session.SubmissionState != Submitted {
		return "", &InvalidStateError{Op: "issued token", Phase: p.session.Phase}
	}
	return p.session.IssuedToken, nil
}

// StatusMessage reads the status region's text.
func (p *FormPage) StatusMessage(ctx context.Context) (string, error) {
	el, err := p.drv.Locate(ctx, LocStatusMessage)
	if err != nil {
		return "", fmt.Errorf("status message: %w", err)
	}
	text, err := el.Text(ctx)
	if err != nil {
		return "", fmt.Errorf("status message: %w", err)
	}
	return text, nil
}

// SecureAreaVisible reports whether the post-submission view is rendered.
func (p *FormPage) SecureAreaVisible(ctx context.Context) (bool, error) {
	el, err := p.drv.Locate(ctx, LocSecureArea)
	if err != nil {
		return false, fmt.Errorf("secure area visible: %w", err)
	}
	visible, err := el.Visible(ctx)
	if err != nil {
		return false, fmt.Errorf("secure area visible: %w", err)
	}
	return visible, nil
}

// SelectRegion sets the region selector in the secure area. A convenience
// for the post-submission view; it does not interact with the variant
// state machine.
func (p *FormPage) SelectRegion(ctx context.Context, value string) error {
	el, err := p.drv.Locate(ctx, LocRegion)
	if err != nil {
		return fmt.Errorf("select region: %w", err)
	}
	if err := el.SelectOption(ctx, value); err != nil {
		return fmt.Errorf("select region: %w", err)
	}
	return nil
}

// Locate resolves a descriptor through the underlying driver, for ad-hoc
// assertions not covered by a workflow method.
func (p *FormPage) Locate(ctx context.Context, d Descriptor) (Element, error) {
	return p.drv.Locate(ctx, d)
}

func (p *FormPage) fill(ctx context.Context, op string, d Descriptor, value string) error {
	el, err := p.drv.Locate(ctx, d)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := el.Fill(ctx, value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
