// Package formflow implements a page-object model for a multi-variant
// account application form. It translates high-level intent ("apply as a
// business account") into primitive driver operations while enforcing the
// form's visibility and validation contract through an explicit session
// state machine.
package formflow

// AccountVariant identifies one of the three mutually exclusive form modes.
// Each variant exposes a different conditional field block.
type AccountVariant int

const (
	// VariantUnset means no variant has been selected yet.
	VariantUnset AccountVariant = iota
	// VariantIndividual is the default application path with no extra fields.
	VariantIndividual
	// VariantBusiness requires company and tax ID fields.
	VariantBusiness
	// VariantInstitutional requires institution and accreditation ID fields.
	VariantInstitutional
)

// String returns the selector value used by the rendered form.
func (v AccountVariant) String() string {
	switch v {
	case VariantIndividual:
		return "individual"
	case VariantBusiness:
		return "business"
	case VariantInstitutional:
		return "institutional"
	default:
		return "unset"
	}
}

// ParseVariant maps a selector value to its AccountVariant.
// Returns VariantUnset for unknown values.
func ParseVariant(s string) AccountVariant {
	switch s {
	case "individual":
		return VariantIndividual
	case "business":
		return VariantBusiness
	case "institutional":
		return VariantInstitutional
	default:
		return VariantUnset
	}
}

// SubmissionState records the outcome of the submit operation.
type SubmissionState int

const (
	// NotSubmitted means submit has not been attempted for this session.
	NotSubmitted SubmissionState = iota
	// Submitted means the form was accepted and a token was issued.
	Submitted
	// Rejected means validation failed. This is a modeled business outcome,
	// not a program error.
	Rejected
)

// String returns a string representation of the SubmissionState.
func (s SubmissionState) String() string {
	switch s {
	case NotSubmitted:
		return "NotSubmitted"
	case Submitted:
		return "Submitted"
	case Rejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Phase is the position of a session in the form's state machine.
//
//	Empty -> BasicFilled -> VariantSelected -> VariantFilled -> Submitted
//
// plus the terminal Rejected phase. FillBasicInfo is re-enterable;
// SelectVariant may be repeated with a different variant, discarding the
// previous variant's field values.
type Phase int

const (
	// PhaseEmpty is the state right after Load.
	PhaseEmpty Phase = iota
	// PhaseBasicFilled means username, password and email have been written.
	PhaseBasicFilled
	// PhaseVariantSelected means a variant block is active but unfilled.
	PhaseVariantSelected
	// PhaseVariantFilled means the active variant's fields have been written.
	PhaseVariantFilled
	// PhaseSubmitted is terminal: the form was accepted.
	PhaseSubmitted
	// PhaseRejected is terminal: the form was rejected by validation.
	PhaseRejected
)

// String returns a string representation of the Phase.
func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "Empty"
	case PhaseBasicFilled:
		return "BasicFilled"
	case PhaseVariantSelected:
		return "VariantSelected"
	case PhaseVariantFilled:
		return "VariantFilled"
	case PhaseSubmitted:
		return "Submitted"
	case PhaseRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// BasicFields holds the three fields common to every variant.
// Values are not validated client-side; validation happens at submit time
// in the rendered form.
type BasicFields struct {
	Username string
	Password string
	Email    string
}

// FormSession is the client-side view of one interaction with the form,
// from navigation to submission outcome. At most one variant's field set is
// populated at a time. IssuedToken is non-empty if and only if
// SubmissionState is Submitted, and is immutable once set.
type FormSession struct {
	Phase           Phase
	Variant         AccountVariant
	Basic           BasicFields
	VariantFields   map[string]string
	SubmissionState SubmissionState
	IssuedToken     string
}
