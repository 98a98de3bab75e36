package formflow

// Named locators for the application form fixture. Exposed so the test
// layer can run ad-hoc assertions not covered by a workflow method.
var (
	LocUsername      = ByTestID("username")
	LocPassword      = ByTestID("password")
	LocEmail         = ByTestID("email")
	LocAccountType   = ByTestID("account-type")
	LocSubmit        = ByTestID("submit")
	LocSecureArea    = ByTestID("secure-area")
	LocToken         = ByTestID("token")
	LocStatusMessage = ByTestID("status-message")
	LocRegion        = ByTestID("region")
)

// variantBlocks maps each variant to its conditional field block.
var variantBlocks = map[AccountVariant]Descriptor{
	VariantIndividual:    ByTestID("individual-fields"),
	VariantBusiness:      ByTestID("business-fields"),
	VariantInstitutional: ByTestID("institutional-fields"),
}

// variantFieldIDs maps the caller-facing field names of each variant to
// the test identifiers declared by the fixture.
var variantFieldIDs = map[AccountVariant]map[string]string{
	VariantBusiness: {
		"company": "company",
		"taxId":   "tax-id",
	},
	VariantInstitutional: {
		"institution":     "institution",
		"accreditationId": "accreditation-id",
	},
}

// fieldDescriptor resolves a caller-facing variant field name. Unknown
// names fall through as raw test identifiers so the driver surfaces them
// as not-found rather than this package inventing its own error.
func fieldDescriptor(v AccountVariant, name string) Descriptor {
	if ids, ok := variantFieldIDs[v]; ok {
		if id, ok := ids[name]; ok {
			return ByTestID(id)
		}
	}
	return ByTestID(name)
}
