package formflow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formflow/formflow/pkg/formflow"
	"github.com/formflow/formflow/pkg/formflow/testutil"
)

func TestWorkflow_SubmitIndividualApplication(t *testing.T) {
	// Round trip: valid basic fields always come back Submitted with a
	// non-empty token matching JWT-<digits>-<word>.
	drv := testutil.NewMockDriver()
	page := formflow.NewFormPage(drv, "http://fixture.local/")

	err := page.SubmitIndividualApplication(context.Background(),
		"john_doe", "securepass123", "john.doe@example.com")
	require.NoError(t, err)

	assert.Equal(t, formflow.Submitted, page.Session().SubmissionState)
	token, err := page.IssuedToken()
	require.NoError(t, err)
	assert.Regexp(t, tokenPattern, token)
}

func TestWorkflow_SubmitBusinessApplication(t *testing.T) {
	drv := testutil.NewMockDriver()
	page := formflow.NewFormPage(drv, "http://fixture.local/")

	err := page.SubmitBusinessApplication(context.Background(),
		"jane_smith", "password456", "jane@acmecorp.com",
		map[string]string{"company": "Acme Corporation", "taxId": "12-3456789"})
	require.NoError(t, err)

	session := page.Session()
	assert.Equal(t, formflow.Submitted, session.SubmissionState)
	assert.Equal(t, formflow.VariantBusiness, session.Variant)
}

func TestWorkflow_SubmitInstitutionalApplication(t *testing.T) {
	drv := testutil.NewMockDriver()
	page := formflow.NewFormPage(drv, "http://fixture.local/")

	err := page.SubmitInstitutionalApplication(context.Background(),
		"dr_jones", "artifacts1936", "jones@marshall.edu",
		map[string]string{"institution": "Marshall College", "accreditationId": "AC-1936"})
	require.NoError(t, err)

	assert.Equal(t, formflow.Submitted, page.Session().SubmissionState)
}

func TestWorkflow_RejectionIsDataNotError(t *testing.T) {
	drv := testutil.NewMockDriver()
	page := formflow.NewFormPage(drv, "http://fixture.local/")

	err := page.SubmitIndividualApplication(context.Background(),
		"jd", "securepass123", "jd@example.com")
	require.NoError(t, err, "a rejected application is not a workflow error")

	session := page.Session()
	assert.Equal(t, formflow.Rejected, session.SubmissionState)
	assert.Empty(t, session.IssuedToken)
}
