// Package fallback is the single source of canned per-document-type content.
//
// The same content backs two paths: the template extractor (when no real
// text can be pulled from a file) and the resilient text-generation wrapper
// (when the external AI service is unavailable). Keeping both in one place
// prevents the two copies from drifting.
package fallback

import (
	"strings"

	"legalease/internal/domain"
)

// SimplifyDisclaimer is appended to the warnings of a degraded simplification.
const SimplifyDisclaimer = "AI service temporarily unavailable - using fallback analysis"

// AnswerDisclaimer is appended to a degraded Q&A answer.
const AnswerDisclaimer = "\n\n*Note: AI service temporarily unavailable - using fallback response.*"

// FallbackFairnessScore is returned when the external service cannot supply one.
const FallbackFairnessScore = 75

// DefaultReadingLevel is the before/after pair reported for simplifications.
var DefaultReadingLevel = domain.ReadingLevel{
	Original:   "College Level (Grade 16)",
	Simplified: "8th Grade Level",
}

// SecurityAnalysisFallback is the fixed payload of the best-effort security
// endpoint when the upstream response cannot be parsed.
func SecurityAnalysisFallback() *domain.SecurityAnalysis {
	return &domain.SecurityAnalysis{
		Score:           85,
		Risks:           []string{"Unable to perform full security analysis"},
		Recommendations: []string{"Manual review recommended"},
	}
}

// ExtractedText returns template document text for a file the extractor
// could not read.
func ExtractedText(docType domain.DocumentType) string {
	switch docType {
	case domain.DocTypeRentalAgreement:
		return `RESIDENTIAL LEASE AGREEMENT

This Lease Agreement ("Agreement") is entered into on [DATE] between [LANDLORD NAME] ("Landlord") and [TENANT NAME] ("Tenant").

PREMISES: The Landlord agrees to rent to the Tenant the property located at [PROPERTY ADDRESS] ("Premises").

TERM: The lease term begins on [START DATE] and ends on [END DATE], for a total period of [LEASE TERM].

RENT: The monthly rent is $[AMOUNT], due on the first day of each month. Late fees of $[LATE FEE] apply after [GRACE PERIOD] days.

SECURITY DEPOSIT: Tenant shall pay a security deposit of $[DEPOSIT AMOUNT] prior to occupancy.

UTILITIES: Tenant is responsible for [UTILITY LIST]. Landlord is responsible for [LANDLORD UTILITIES].

MAINTENANCE: Tenant agrees to maintain the premises in good condition and report any damages immediately.

TERMINATION: Either party may terminate this lease with [NOTICE PERIOD] days written notice.

By signing below, both parties agree to the terms and conditions set forth in this Agreement.

[SIGNATURES AND DATE]`
	case domain.DocTypeEmploymentContract:
		return `EMPLOYMENT AGREEMENT

This Employment Agreement is entered into between [COMPANY NAME] ("Company") and [EMPLOYEE NAME] ("Employee").

POSITION: Employee is hired as [JOB TITLE] in the [DEPARTMENT] department.

COMPENSATION: Employee will receive an annual salary of $[SALARY] paid in [FREQUENCY] installments.

BENEFITS: Employee is eligible for health insurance, dental coverage, 401(k) matching, and [PTO DAYS] days of paid time off annually.

CONFIDENTIALITY: Employee agrees to maintain confidentiality of all proprietary company information.

TERMINATION: Employment may be terminated by either party with [NOTICE PERIOD] notice. Company reserves the right to terminate immediately for cause.

NON-COMPETE: Employee agrees not to work for direct competitors for [NON_COMPETE_PERIOD] after termination.

[SIGNATURES AND DATE]`
	default:
		return `LEGAL DOCUMENT

[This is a sample legal document with standard contractual language, terms and conditions, obligations of parties, and legal provisions that would typically require professional interpretation.]`
	}
}

// SimplifiedText returns the canned plain-English rendition for a document type.
func SimplifiedText(docType domain.DocumentType) string {
	switch docType {
	case domain.DocTypeRentalAgreement:
		return `**Your Rental Agreement - Simplified**

**What you're renting:** A property that the landlord owns and is letting you live in.

**How long:** Your lease has specific start and end dates. You can't just leave whenever you want.

**Monthly payment:** You must pay rent on the 1st of each month. If you're late, you'll pay extra fees.

**Security deposit:** You pay money upfront that the landlord holds. You get it back if you don't damage anything.

**Bills and utilities:** The agreement says who pays for electricity, water, internet, etc. Make sure you know what you're responsible for.

**Taking care of the place:** You need to keep the rental clean and in good condition. Tell the landlord right away if something breaks.

**Moving out:** Both you and the landlord need to give advance notice before ending the lease.

**Important:** This is a legal contract. Breaking it can have serious consequences including losing your deposit or being sued.`
	case domain.DocTypeEmploymentContract:
		return `**Your Employment Contract - Simplified**

**Your job:** You're being hired for a specific position and department.

**Your pay:** You'll receive a set salary paid regularly (weekly, bi-weekly, or monthly).

**Benefits:** You may get health insurance, retirement savings matching, and paid time off.

**Company secrets:** You can't share confidential company information with others, even after you leave.

**Ending your job:** Either you or the company can end your employment, usually with advance notice.

**Working for competitors:** You might not be allowed to work for competing companies for a certain time after leaving.

**Important:** This contract controls your work relationship. Make sure you understand your obligations and rights.`
	default:
		return `**Your Legal Document - Simplified**

This document creates legal obligations between the parties involved. Key points include:

• **Parties:** Who is involved and their roles
• **Terms:** What each party must do
• **Timeline:** When things must happen
• **Consequences:** What happens if someone doesn't follow the rules

**Important:** Legal documents are binding contracts. Breaking them can result in financial penalties or legal action.`
	}
}

// KeyPoints returns the deterministic key points for a document type.
func KeyPoints(docType domain.DocumentType) []string {
	common := []string{
		"This is a legally binding agreement",
		"Both parties have specific obligations",
		"Breaking the contract can have serious consequences",
	}

	switch docType {
	case domain.DocTypeRentalAgreement:
		return append(common,
			"Rent must be paid on time every month",
			"Security deposit is refundable if no damages occur",
			"Proper notice is required before moving out",
			"Tenant is responsible for maintaining the property",
		)
	case domain.DocTypeEmploymentContract:
		return append(common,
			"Salary and benefits are clearly defined",
			"Confidentiality requirements continue after employment ends",
			"Non-compete clauses may limit future job opportunities",
			"Termination procedures are specified",
		)
	default:
		return common
	}
}

// Warnings returns the deterministic warnings for a document type.
func Warnings(docType domain.DocumentType) []string {
	common := []string{
		"Seek legal advice if you don't understand any terms",
		"Keep a copy of this document for your records",
	}

	switch docType {
	case domain.DocTypeRentalAgreement:
		return append(common,
			"Late rent payments can result in eviction",
			"Security deposits have specific return requirements",
			"Some lease terms may not be enforceable in your state",
		)
	case domain.DocTypeEmploymentContract:
		return append(common,
			"Non-compete clauses vary in enforceability by state",
			"Confidentiality agreements can be very broad",
			"At-will employment may override some contract terms",
		)
	default:
		return common
	}
}

// Simplification bundles the full canned simplification result for a
// document type, including the degraded-service disclaimer.
func Simplification(docType domain.DocumentType) *domain.SimplificationResult {
	return &domain.SimplificationResult{
		SimplifiedText: SimplifiedText(docType),
		ReadingLevel:   DefaultReadingLevel,
		KeyPoints:      KeyPoints(docType),
		Warnings:       append(Warnings(docType), SimplifyDisclaimer),
		FairnessScore:  FallbackFairnessScore,
	}
}

// ContextualAnswer returns a keyword-matched canned answer for a question.
// The degraded-service disclaimer is appended by the caller.
func ContextualAnswer(question string) string {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "rent") || strings.Contains(q, "payment"):
		return "Based on your document, rent payments are due on the first of each month. Late payments typically incur additional fees. The exact amount and late fee structure should be clearly specified in your lease agreement. If you're having trouble making payments, contact your landlord immediately to discuss options."
	case strings.Contains(q, "deposit") || strings.Contains(q, "security"):
		return "Your security deposit is held by the landlord to cover potential damages or unpaid rent. In most states, landlords must return your deposit within 30 days of move-out, minus any legitimate deductions. They should provide an itemized list of any deductions. Normal wear and tear cannot be deducted from your deposit."
	case strings.Contains(q, "terminate") || strings.Contains(q, "end") || strings.Contains(q, "break"):
		return "To end your lease early, check your agreement for specific termination clauses. Most leases require 30-60 days written notice. Breaking a lease without proper notice can result in penalties, loss of your security deposit, or being held responsible for rent until a new tenant is found. Some states have exceptions for military deployment, domestic violence, or uninhabitable conditions."
	case strings.Contains(q, "salary") || strings.Contains(q, "pay") || strings.Contains(q, "wage"):
		return "Your employment contract should clearly state your compensation structure, including base salary, payment frequency, and any bonuses or commissions. Make sure you understand whether your pay is exempt or non-exempt from overtime laws. If you're non-exempt, you're entitled to overtime pay for hours worked over 40 per week."
	case strings.Contains(q, "quit") || strings.Contains(q, "resign") || strings.Contains(q, "leave"):
		return "Most employment is 'at-will,' meaning you can quit at any time. However, your contract may require advance notice (typically 2 weeks). Check for any non-compete or confidentiality clauses that continue after you leave. You may be entitled to unused vacation pay depending on your state's laws and company policy."
	default:
		return "I'd be happy to help you understand this document better. Could you be more specific about which section or term you'd like me to explain? I can break down complex legal language into plain English and help you understand your rights and obligations."
	}
}
