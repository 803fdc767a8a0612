// Package pdf renders a contract summary as a minimal single-page PDF.
// It emits PDF 1.4 objects directly; the document is plain Helvetica text.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"leaseflow/internal/domain/entities"
)

const (
	pageLineLimit = 48
	lineHeight    = 14
	topMargin     = 760
	leftMargin    = 56
)

// RenderContract builds the printable rendition of the contract's current
// state.
func RenderContract(c entities.Contract) ([]byte, error) {
	return render(contractLines(c))
}

func contractLines(c entities.Contract) []string {
	lines := []string{
		"RENTAL CONTRACT",
		"",
		fmt.Sprintf("Contract ID: %s", c.ID),
		fmt.Sprintf("Property:    %s", c.PropertyID),
		fmt.Sprintf("Status:      %s", c.Status),
		"",
		fmt.Sprintf("Hoster:      %s <%s>", c.Hoster.Name, c.Hoster.Email),
		fmt.Sprintf("Tenant:      %s <%s>", c.Tenant.Name, c.Tenant.Email),
	}
	for _, g := range c.Guarantors {
		lines = append(lines, fmt.Sprintf("Guarantor:   %s <%s>", g.Name, g.Email))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Term:        %s to %s", c.StartDate.Format("2006-01-02"), c.EndDate.Format("2006-01-02")),
		fmt.Sprintf("Rent:        %.2f %s (due day %d)", c.Terms.RentAmount, c.Terms.PaymentFrequency, c.Terms.PaymentDueDay),
		fmt.Sprintf("Deposit:     %.2f", c.Terms.DepositAmount),
		fmt.Sprintf("Maintenance: %s", c.Terms.Maintenance),
	)
	if len(c.Terms.UtilitiesIncluded) > 0 {
		lines = append(lines, fmt.Sprintf("Utilities:   %s", strings.Join(c.Terms.UtilitiesIncluded, ", ")))
	}
	if len(c.Clauses) > 0 {
		lines = append(lines, "", "Clauses:")
		for i, clause := range c.Clauses {
			lines = append(lines, fmt.Sprintf("  %d. %s", i+1, clause))
		}
	}
	lines = append(lines, "", "Signatures:")
	lines = append(lines, fmt.Sprintf("  Tenant: %s", signedMark(c.Signatures.TenantSigned)))
	lines = append(lines, fmt.Sprintf("  Hoster: %s", signedMark(c.Signatures.HosterSigned)))
	for _, g := range c.Guarantors {
		sig := c.Signatures.Guarantors[g.ID]
		lines = append(lines, fmt.Sprintf("  Guarantor %s: %s", g.Name, signedMark(sig.Signed)))
	}

	if len(lines) > pageLineLimit {
		lines = append(lines[:pageLineLimit-1], "(truncated)")
	}
	return lines
}

func signedMark(signed bool) string {
	if signed {
		return "signed"
	}
	return "pending"
}

func render(lines []string) ([]byte, error) {
	var content bytes.Buffer
	fmt.Fprintf(&content, "BT /F1 11 Tf %d %d Td %d TL\n", leftMargin, topMargin, lineHeight)
	for _, line := range lines {
		fmt.Fprintf(&content, "(%s) Tj T*\n", escapeText(line))
	}
	content.WriteString("ET\n")

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", content.Len(), content.String()),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefStart)

	return buf.Bytes(), nil
}

func escapeText(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
