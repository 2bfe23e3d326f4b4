// Package classifier maps uploaded file names to coarse document types.
package classifier

import (
	"strings"

	"legalease/internal/domain"
)

// rule associates filename substrings with a document type. Rules are
// evaluated in order; the first match wins.
type rule struct {
	keywords []string
	docType  domain.DocumentType
}

var rules = []rule{
	{[]string{"rental", "lease"}, domain.DocTypeRentalAgreement},
	{[]string{"employment", "job"}, domain.DocTypeEmploymentContract},
	{[]string{"loan", "credit"}, domain.DocTypeLoanAgreement},
	{[]string{"service", "contract"}, domain.DocTypeServiceAgreement},
	{[]string{"insurance"}, domain.DocTypeInsurancePolicy},
}

// Classify returns the document type for a file name. It is total: names
// matching no rule classify as the generic legal document type.
func Classify(fileName string) domain.DocumentType {
	name := strings.ToLower(fileName)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(name, kw) {
				return r.docType
			}
		}
	}
	return domain.DocTypeLegalDocument
}
