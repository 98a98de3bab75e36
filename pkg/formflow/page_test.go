package formflow_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formflow/formflow/pkg/formflow"
	"github.com/formflow/formflow/pkg/formflow/testutil"
)

var tokenPattern = regexp.MustCompile(`^JWT-\d+-[a-z]+$`)

func newLoadedPage(t *testing.T) (*formflow.FormPage, *testutil.MockDriver) {
	t.Helper()
	drv := testutil.NewMockDriver()
	page := formflow.NewFormPage(drv, "http://fixture.local/")
	require.NoError(t, page.Load(context.Background()))
	return page, drv
}

func TestFormPage_IndividualPath(t *testing.T) {
	// Scenario: basic info -> individual -> submit. The secure area becomes
	// visible and the issued token carries the JWT prefix.
	page, _ := newLoadedPage(t)
	ctx := context.Background()

	require.NoError(t, page.FillBasicInfo(ctx, "john_doe", "securepass123", "john.doe@example.com"))
	require.NoError(t, page.SelectVariant(ctx, formflow.VariantIndividual))
	require.NoError(t, page.Submit(ctx))

	session := page.Session()
	assert.Equal(t, formflow.Submitted, session.SubmissionState)

	visible, err := page.SecureAreaVisible(ctx)
	require.NoError(t, err)
	assert.True(t, visible, "secure area should be visible after acceptance")

	token, err := page.IssuedToken()
	require.NoError(t, err)
	assert.Contains(t, token, "JWT")
	assert.Regexp(t, tokenPattern, token)
}

func TestFormPage_BusinessPath(t *testing.T) {
	page, _ := newLoadedPage(t)
	ctx := context.Background()

	require.NoError(t, page.FillBasicInfo(ctx, "jane_smith", "password456", "jane@acmecorp.com"))
	require.NoError(t, page.SelectVariant(ctx, formflow.VariantBusiness))

	// The business block is rendered, the institutional one is not.
	visible, err := page.VariantFieldsVisible(ctx, formflow.VariantBusiness)
	require.NoError(t, err)
	assert.True(t, visible)
	visible, err = page.VariantFieldsVisible(ctx, formflow.VariantInstitutional)
	require.NoError(t, err)
	assert.False(t, visible)

	require.NoError(t, page.FillVariantInfo(ctx, map[string]string{
		"company": "Acme Corporation",
		"taxId":   "12-3456789",
	}))
	require.NoError(t, page.Submit(ctx))

	assert.Equal(t, formflow.Submitted, page.Session().SubmissionState)
}

func TestFormPage_VariantBlocksMutuallyExclusive(t *testing.T) {
	// For every sequence of variant selections, at most one block is
	// rendered at a time.
	page, _ := newLoadedPage(t)
	ctx := context.Background()
	require.NoError(t, page.FillBasicInfo(ctx, "john_doe", "securepass123", "john.doe@example.com"))

	variants := []formflow.AccountVariant{
		formflow.VariantBusiness,
		formflow.VariantInstitutional,
		formflow.VariantIndividual,
		formflow.VariantBusiness,
	}
	for _, v := range variants {
		require.NoError(t, page.SelectVariant(ctx, v))
		for _, other := range []formflow.AccountVariant{
			formflow.VariantIndividual,
			formflow.VariantBusiness,
			formflow.VariantInstitutional,
		} {
			visible, err := page.VariantFieldsVisible(ctx, other)
			require.NoError(t, err)
			assert.Equal(t, other == v, visible,
				"after selecting %s, %s visibility should be %v", v, other, other == v)
		}
	}
}

func TestFormPage_SwitchingVariantClearsRenderedValues(t *testing.T) {
	// Business -> Institutional -> Business must show empty business
	// fields, never stale data.
	page, drv := newLoadedPage(t)
	ctx := context.Background()

	require.NoError(t, page.FillBasicInfo(ctx, "jane_smith", "password456", "jane@acmecorp.com"))
	require.NoError(t, page.SelectVariant(ctx, formflow.VariantBusiness))
	require.NoError(t, page.FillVariantInfo(ctx, map[string]string{
		"company": "Acme Corporation",
		"taxId":   "12-3456789",
	}))
	require.Equal(t, "Acme Corporation", drv.Value("company"))

	require.NoError(t, page.SelectVariant(ctx, formflow.VariantInstitutional))
	assert.Empty(t, drv.Value("company"), "rendered business value should be cleared")
	assert.Empty(t, drv.Value("tax-id"))
	assert.Nil(t, page.Session().VariantFields, "model should drop the cleared values too")

	require.NoError(t, page.SelectVariant(ctx, formflow.VariantBusiness))
	assert.Empty(t, drv.Value("company"), "re-selected block starts empty")
}

func TestFormPage_FillVariantBeforeSelectIsInvalid(t *testing.T) {
	page, _ := newLoadedPage(t)
	ctx := context.Background()

	err := page.FillVariantInfo(ctx, map[string]string{"company": "Acme Corporation"})
	var ise *formflow.InvalidStateError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, formflow.PhaseEmpty, ise.Phase)
}

func TestFormPage_UsernameBoundary(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     formflow.SubmissionState
	}{
		{"two characters rejected", "jo", formflow.Rejected},
		{"three characters accepted", "joe", formflow.Submitted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, _ := newLoadedPage(t)
			ctx := context.Background()

			require.NoError(t, page.FillBasicInfo(ctx, tt.username, "securepass123", "joe@example.com"))
			require.NoError(t, page.SelectVariant(ctx, formflow.VariantIndividual))
			require.NoError(t, page.Submit(ctx), "validation failure is an outcome, not an error")

			assert.Equal(t, tt.want, page.Session().SubmissionState)
		})
	}
}

func TestFormPage_RejectionPopulatesStatusMessage(t *testing.T) {
	page, _ := newLoadedPage(t)
	ctx := context.Background()

	require.NoError(t, page.FillBasicInfo(ctx, "john_doe", "short", "john.doe@example.com"))
	require.NoError(t, page.SelectVariant(ctx, formflow.VariantIndividual))
	require.NoError(t, page.Submit(ctx))

	session := page.Session()
	assert.Equal(t, formflow.Rejected, session.SubmissionState)
	assert.Empty(t, session.IssuedToken)

	msg, err := page.StatusMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Password must be at least 6 characters.", msg)

	visible, err := page.SecureAreaVisible(ctx)
	require.NoError(t, err)
	assert.False(t, visible, "secure area stays hidden on rejection")
}

func TestFormPage_UnfilledBusinessVariantIsRejected(t *testing.T) {
	// Submitting with a non-Individual variant selected but unfilled
	// reaches the form's validation and comes back Rejected.
	page, _ := newLoadedPage(t)
	ctx := context.Background()

	require.NoError(t, page.FillBasicInfo(ctx, "jane_smith", "password456", "jane@acmecorp.com"))
	require.NoError(t, page.SelectVariant(ctx, formflow.VariantBusiness))
	require.NoError(t, page.Submit(ctx))

	assert.Equal(t, formflow.Rejected, page.Session().SubmissionState)
	msg, err := page.StatusMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Complete the business fields.", msg)
}

func TestFormPage_IssuedTokenRequiresSubmission(t *testing.T) {
	page, _ := newLoadedPage(t)

	_, err := page.IssuedToken()
	var ise *formflow.InvalidStateError
	assert.ErrorAs(t, err, &ise)
}

func TestFormPage_SubmitIsTerminal(t *testing.T) {
	page, _ := newLoadedPage(t)
	ctx := context.Background()

	require.NoError(t, page.FillBasicInfo(ctx, "john_doe", "securepass123", "john.doe@example.com"))
	require.NoError(t, page.SelectVariant(ctx, formflow.VariantIndividual))
	require.NoError(t, page.Submit(ctx))

	var ise *formflow.InvalidStateError
	assert.ErrorAs(t, page.Submit(ctx), &ise, "second submit is a caller error")
	assert.ErrorAs(t, page.FillBasicInfo(ctx, "a", "b", "c"), &ise)

	// A fresh session requires a new navigation.
	require.NoError(t, page.Load(ctx))
	assert.Equal(t, formflow.PhaseEmpty, page.Session().Phase)
	assert.Empty(t, page.Session().IssuedToken)
}

func TestFormPage_SelectRegionAfterSubmission(t *testing.T) {
	page, drv := newLoadedPage(t)
	ctx := context.Background()

	require.NoError(t, page.FillBasicInfo(ctx, "john_doe", "securepass123", "john.doe@example.com"))
	require.NoError(t, page.SelectVariant(ctx, formflow.VariantIndividual))
	require.NoError(t, page.Submit(ctx))

	require.NoError(t, page.SelectRegion(ctx, "eu-west"))
	assert.Equal(t, "eu-west", drv.Value("region"))
	assert.Equal(t, formflow.Submitted, page.Session().SubmissionState,
		"region selection does not touch the state machine")
}

func TestFormPage_NavigationFailure(t *testing.T) {
	drv := testutil.NewMockDriver()
	drv.NavigateErr = errors.New("connection refused")
	page := formflow.NewFormPage(drv, "http://unreachable.local/")

	err := page.Load(context.Background())
	var nav *formflow.NavigationError
	require.ErrorAs(t, err, &nav)
	assert.Equal(t, "http://unreachable.local/", nav.Location)
}

func TestFormPage_MissingElementIsNotFound(t *testing.T) {
	page, drv := newLoadedPage(t)
	drv.Missing["username"] = true

	err := page.FillBasicInfo(context.Background(), "john_doe", "securepass123", "john.doe@example.com")
	var nf *formflow.ElementNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "username", nf.Descriptor.TestID)

	// Not-found is a contract break, never reported as a timeout.
	var to *formflow.TimeoutError
	assert.False(t, errors.As(err, &to))
}

func TestFormPage_StuckRenderIsTimeout(t *testing.T) {
	page, drv := newLoadedPage(t)
	ctx := context.Background()
	require.NoError(t, page.FillBasicInfo(ctx, "john_doe", "securepass123", "john.doe@example.com"))

	// The block exists but never becomes visible: a timeout, not not-found.
	drv.StuckWaits["business-fields"] = true
	err := page.SelectVariant(ctx, formflow.VariantBusiness)
	var to *formflow.TimeoutError
	require.ErrorAs(t, err, &to)
	var nf *formflow.ElementNotFoundError
	assert.False(t, errors.As(err, &nf))

	// The model did not advance past the failed driver operation.
	assert.Equal(t, formflow.VariantUnset, page.Session().Variant)
}

func TestFormPage_LocateExposesNamedElements(t *testing.T) {
	page, _ := newLoadedPage(t)
	ctx := context.Background()

	el, err := page.Locate(ctx, formflow.LocStatusMessage)
	require.NoError(t, err)
	visible, err := el.Visible(ctx)
	require.NoError(t, err)
	assert.False(t, visible, "status region is hidden before submission")

	// Role+name descriptors resolve too.
	_, err = page.Locate(ctx, formflow.ByRole("button", "Submit application"))
	assert.NoError(t, err)
}
