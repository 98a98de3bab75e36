package formflow

import "context"

// Composite workflows. Pure sequencing over the primitive operations;
// they add no state of their own. Each starts from a freshly loaded form.

// SubmitIndividualApplication loads the form, fills the basic fields,
// selects the individual variant and submits. The outcome is readable via
// Session, IssuedToken and StatusMessage.
func (p *FormPage) SubmitIndividualApplication(ctx context.Context, username, password, email string) error {
	if err := p.Load(ctx); err != nil {
		return err
	}
	if err := p.FillBasicInfo(ctx, username, password, email); err != nil {
		return err
	}
	if err := p.SelectVariant(ctx, VariantIndividual); err != nil {
		return err
	}
	return p.Submit(ctx)
}

// SubmitBusinessApplication runs the business path end to end. Fields are
// the business block's caller-facing names (company, taxId).
func (p *FormPage) SubmitBusinessApplication(ctx context.Context, username, password, email string, fields map[string]string) error {
	if err := p.Load(ctx); err != nil {
		return err
	}
	if err := p.FillBasicInfo(ctx, username, password, email); err != nil {
		return err
	}
	if err := p.SelectVariant(ctx, VariantBusiness); err != nil {
		return err
	}
	if err := p.FillVariantInfo(ctx, fields); err != nil {
		return err
	}
	return p.Submit(ctx)
}

// SubmitInstitutionalApplication runs the institutional path end to end.
// Fields are the institutional block's caller-facing names (institution,
// accreditationId).
func (p *FormPage) SubmitInstitutionalApplication(ctx context.Context, username, password, email string, fields map[string]string) error {
	if err := p.Load(ctx); err != nil {
		return err
	}
	if err := p.FillBasicInfo(ctx, username, password, email); err != nil {
		return err
	}
	if err := p.SelectVariant(ctx, VariantInstitutional); err != nil {
		return err
	}
	if err := p.FillVariantInfo(ctx, fields); err != nil {
		return err
	}
	return p.Submit(ctx)
}
