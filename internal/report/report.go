// Package report renders profiles and saved CV analyses as Markdown
// documents for export.
package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/jonathan/careerbridge/internal/types"
)

// WriteProfile renders a profile as a Markdown document.
func WriteProfile(w io.Writer, profile types.UserProfile) error {
	md := markdown.NewMarkdown(w)

	title := "Career Profile"
	if strings.TrimSpace(profile.Name) != "" {
		title = profile.Name + "'s Career Profile"
	}
	md.H1(title)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Name", orDash(profile.Name)},
			{"Field", orDash(profile.Field)},
			{"Visa Type", orDash(profile.VisaType)},
			{"French Level", orDash(profile.LanguageLevel)},
			{"Preferences", orDash(profile.Preferences)},
		},
	})
	md.PlainText("")

	md.H2("Skills")
	md.PlainText("")
	if len(profile.Skills) == 0 {
		md.PlainText("No skills listed.")
	} else {
		md.BulletList(profile.Skills...)
	}
	md.PlainText("")

	writeFooter(md)
	return md.Build()
}

// WriteSavedAnalysis renders a saved CV analysis as a Markdown document.
func WriteSavedAnalysis(w io.Writer, saved types.SavedAnalysis) error {
	md := markdown.NewMarkdown(w)

	md.H1("CV Analysis Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Saved", saved.SavedAt.Format("2006-01-02 15:04 MST")},
			{"Formatting Score", strconv.Itoa(saved.FormattingScore) + " / 100"},
		},
	})
	md.PlainText("")

	md.H2("Content Suggestions")
	md.PlainText("")
	if len(saved.ContentSuggestions) == 0 {
		md.PlainText("No suggestions.")
	} else {
		md.BulletList(saved.ContentSuggestions...)
	}
	md.PlainText("")

	md.H2("Cultural Tips")
	md.PlainText("")
	if len(saved.CulturalTips) == 0 {
		md.PlainText("No tips.")
	} else {
		md.BulletList(saved.CulturalTips...)
	}
	md.PlainText("")

	if strings.TrimSpace(saved.ReformattedCV) != "" {
		md.H2("Reformatted CV")
		md.PlainText("")
		md.CodeBlocks(markdown.SyntaxHighlight("markdown"), saved.ReformattedCV)
		md.PlainText("")
	}

	writeFooter(md)
	return md.Build()
}

func writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Exported from CareerBridge France*")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
