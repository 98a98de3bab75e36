package formflow

// session.go holds the transition rules for FormSession. The session is the
// authoritative client-side model of the form; visibility queries against
// the rendered document are verification, not control.
//
// Transitions are split into check/apply pairs: the page model checks the
// transition before touching the driver and applies it only after the
// driver operation succeeded, so a driver fault never leaves the session
// ahead of the rendered document.

// reset returns the session to its initial empty state. Called on Load.
func (s *FormSession) reset() {
	*s = FormSession{
		Phase:           PhaseEmpty,
		Variant:         VariantUnset,
		SubmissionState: NotSubmitted,
	}
}

// terminal reports whether the session has reached a final phase.
func (s *FormSession) terminal() bool {
	return s.Phase == PhaseSubmitted || s.Phase == PhaseRejected
}

// checkFillBasic validates the FillBasicInfo transition. Re-enterable from
// any live phase: re-filling after a variant was selected keeps the
// variant selection.
func (s *FormSession) checkFillBasic(op string) error {
	if s.terminal() {
		return &InvalidStateError{Op: op, Phase: s.Phase}
	}
	return nil
}

func (s *FormSession) applyFillBasic(f BasicFields) {
	s.Basic = f
	if s.Phase == PhaseEmpty {
		s.Phase = PhaseBasicFilled
	}
}

// checkSelectVariant validates activating v from the current phase.
func (s *FormSession) checkSelectVariant(op string, v AccountVariant) error {
	if v == VariantUnset {
		return &InvalidStateError{Op: op, Phase: s.Phase}
	}
	switch s.Phase {
	case PhaseBasicFilled, PhaseVariantSelected, PhaseVariantFilled:
		return nil
	default:
		return &InvalidStateError{Op: op, Phase: s.Phase}
	}
}

// applySelectVariant activates v. Selecting a different variant than the
// one currently active discards the previous variant's field values; this
// mirrors the rendered form, which hides and clears the de-selected block.
func (s *FormSession) applySelectVariant(v AccountVariant) {
	if v != s.Variant {
		s.VariantFields = nil
	}
	s.Variant = v
	s.Phase = PhaseVariantSelected
}

// checkFillVariant validates writing variant-specific fields. Only valid
// while a non-Individual variant block is active.
func (s *FormSession) checkFillVariant(op string) error {
	switch s.Phase {
	case PhaseVariantSelected, PhaseVariantFilled:
	default:
		return &InvalidStateError{Op: op, Phase: s.Phase}
	}
	if s.Variant != VariantBusiness && s.Variant != VariantInstitutional {
		return &InvalidStateError{Op: op, Phase: s.Phase}
	}
	return nil
}

func (s *FormSession) applyFillVariant(fields map[string]string) {
	if s.VariantFields == nil {
		s.VariantFields = make(map[string]string, len(fields))
	}
	for k, v := range fields {
		s.VariantFields[k] = v
	}
	s.Phase = PhaseVariantFilled
}

// checkSubmit validates that submission may be attempted from the current
// phase. The Individual path needs no variant fields, so BasicFilled and
// VariantSelected are both valid starting points: a non-Individual variant
// with unfilled fields still reaches the form's own validation, which
// rejects it. Rejection is an outcome, not a caller error.
func (s *FormSession) checkSubmit(op string) error {
	switch s.Phase {
	case PhaseBasicFilled, PhaseVariantSelected, PhaseVariantFilled:
		return nil
	default:
		return &InvalidStateError{Op: op, Phase: s.Phase}
	}
}

// accept finalizes the session as Submitted. The token, once issued,
// is immutable for the life of the session.
func (s *FormSession) accept(token string) {
	s.Phase = PhaseSubmitted
	s.SubmissionState = Submitted
	s.IssuedToken = token
}

// reject finalizes the session as Rejected.
func (s *FormSession) reject() {
	s.Phase = PhaseRejected
	s.SubmissionState = Rejected
	s.IssuedToken = ""
}

// snapshot returns a copy safe to hand to callers. The variant field map
// is copied so callers cannot mutate session state through it.
func (s *FormSession) snapshot() FormSession {
	out := *s
	if s.VariantFields != nil {
		out.VariantFields = make(map[string]string, len(s.VariantFields))
		for k, v := range s.VariantFields {
			out.VariantFields[k] = v
		}
	}
	return out
}
