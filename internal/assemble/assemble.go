// Package assemble turns a parsed source document into a patent document
// model: it locates the claims section, parses the claims, wraps the
// remaining prose as description paragraphs and extracts bibliographic
// metadata.
package assemble

import (
	"errors"
	"regexp"
	"strings"

	"github.com/priorart/patdoc/internal/claims"
	"github.com/priorart/patdoc/internal/docsrc"
	"github.com/priorart/patdoc/internal/textmodel"
)

// ErrNoClaimsSection reports a source document with no recognizable
// claims. The document model requires a claim set, so assembly fails fast
// instead of fabricating an empty one.
var ErrNoClaimsSection = errors.New("no claims section found in document")

var (
	claimsHeadingRe = regexp.MustCompile(`(?i)^\s*claims?\s*$`)
	claimsLeadInRe  = regexp.MustCompile(`(?i)^\s*(what is claimed is|we claim|i claim|the claims? (?:defining the invention )?(?:is|are))\s*[:.]?\s*$`)
	patentNumberRe  = regexp.MustCompile(`\b[A-Z]{2}[ -]?\d{6,10}[ -]?[AB]\d?\b`)
	ipcClassRe      = regexp.MustCompile(`\b[A-H]\d{2}[A-Z]\s?\d{1,4}/\d{2,6}\b`)
	figureRe        = regexp.MustCompile(`(?i)\bFIGS?\.?\s+\d`)
)

// Build assembles a patent document from a sectioned source document.
func Build(an textmodel.Analyzer, src *docsrc.Document) (*textmodel.PatentDoc, error) {
	descParas, claimsText := partition(src)
	if strings.TrimSpace(claimsText) == "" {
		return nil, ErrNoClaimsSection
	}

	claimSet, err := claims.Parse(an, claimsText)
	if err != nil {
		return nil, err
	}

	var desc *textmodel.Description
	if len(descParas) > 0 {
		desc = textmodel.NewDescriptionFromStrings(an, descParas)
	}

	doc, err := textmodel.NewPatentDoc(an, desc, claimSet)
	if err != nil {
		return nil, err
	}

	plain := src.PlainText()
	doc.Title = src.Title
	doc.Number = patentNumberRe.FindString(plain)
	doc.Classifications = uniqueMatches(ipcClassRe, plain)
	if figureRe.MatchString(plain) {
		doc.SetFigures(&textmodel.Figures{})
	}
	return doc, nil
}

// partition separates a source document into description paragraphs and
// claims text. A section headed "Claims" (and everything nested under it)
// is claims; so is everything after an inline lead-in line such as "What
// is claimed is:".
func partition(src *docsrc.Document) (descParas []string, claimsText string) {
	var claimsParts []string
	inClaims := false

	var visit func(secs []*docsrc.Section)
	visit = func(secs []*docsrc.Section) {
		for _, s := range secs {
			sectionClaims := inClaims || claimsHeadingRe.MatchString(s.Heading)
			if sectionClaims {
				if s.Text != "" {
					claimsParts = append(claimsParts, s.Text)
				}
				prev := inClaims
				inClaims = true
				visit(s.Children)
				inClaims = prev
				continue
			}

			for _, para := range docsrc.Paragraphs(s.Text) {
				if claimsLeadInRe.MatchString(para) {
					inClaims = true
					continue
				}
				if inClaims {
					claimsParts = append(claimsParts, para)
				} else if lead, rest, ok := splitAtLeadIn(para); ok {
					if lead != "" {
						descParas = append(descParas, lead)
					}
					if rest != "" {
						claimsParts = append(claimsParts, rest)
					}
					inClaims = true
				} else {
					descParas = append(descParas, para)
				}
			}
			visit(s.Children)
		}
	}
	visit(src.Sections)

	return descParas, strings.Join(claimsParts, "\n")
}

// splitAtLeadIn splits a paragraph whose interior contains a claims
// lead-in line into the text before it and the text after it.
func splitAtLeadIn(para string) (before, after string, ok bool) {
	lines := strings.Split(para, "\n")
	for i, line := range lines {
		if claimsLeadInRe.MatchString(line) {
			before = strings.TrimSpace(strings.Join(lines[:i], "\n"))
			after = strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
			return before, after, true
		}
	}
	return "", "", false
}

func uniqueMatches(re *regexp.Regexp, text string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, m := range re.FindAllString(text, -1) {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
