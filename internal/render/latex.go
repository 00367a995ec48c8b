package render

import "strings"

// escapeLatex escapes characters with special meaning in LaTeX.
// Order matters: & must come before escapes that could produce &.
var escapeLatex = strings.NewReplacer(
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// unicodeToLatex maps accented and other non-ASCII characters to their LaTeX
// control sequences, so the generated entry stays pure ASCII. Applied after
// escapeLatex, since the replacements themselves contain backslashes and
// braces.
var unicodeToLatex = strings.NewReplacer(
	"À", `{\`+"`"+`A}`, "Á", `{\'A}`, "Â", `{\^A}`, "Ã", `{\~A}`,
	"Ä", `{\"A}`, "Å", `{\AA}`, "Æ", `{\AE}`, "Ç", `{\cC}`,
	"È", `{\`+"`"+`E}`, "É", `{\'E}`, "Ê", `{\^E}`, "Ë", `{\"E}`,
	"Ì", `{\`+"`"+`I}`, "Í", `{\'I}`, "Î", `{\^I}`, "Ï", `{\"I}`,
	"Ð", `{\DH}`, "Ñ", `{\~N}`, "Ò", `{\`+"`"+`O}`, "Ó", `{\'O}`,
	"Ô", `{\^O}`, "Õ", `{\~O}`, "Ö", `{\"O}`, "×", `\(\times\)`,
	"Ø", `{\O}`, "Ù", `{\`+"`"+`U}`, "Ú", `{\'U}`, "Û", `{\^U}`,
	"Ü", `{\"U}`, "Ý", `{\'Y}`, "Þ", `{\TH}`, "ß", `{\ss}`,
	"à", `{\`+"`"+`a}`, "á", `{\'a}`, "â", `{\^a}`, "ã", `{\~a}`,
	"ä", `{\"a}`, "å", `{\aa}`, "æ", `{\ae}`, "ç", `{\cc}`,
	"è", `{\`+"`"+`e}`, "é", `{\'e}`, "ê", `{\^e}`, "ë", `{\"e}`,
	"ì", `{\`+"`"+`\i}`, "í", `{\'\i}`, "î", `{\^\i}`, "ï", `{\"\i}`,
	"ð", `{\dh}`, "ñ", `{\~n}`, "ò", `{\`+"`"+`o}`, "ó", `{\'o}`,
	"ô", `{\^o}`, "õ", `{\~o}`, "ö", `{\"o}`, "÷", `\(\div\)`,
	"ø", `{\o}`, "ù", `{\`+"`"+`u}`, "ú", `{\'u}`, "û", `{\^u}`,
	"ü", `{\"u}`, "ý", `{\'y}`, "þ", `{\th}`, "ÿ", `{\"y}`,

	// Stray characters that turn up in real metadata.
	"Ć", `{\'C}`,
	"ć", `{\'c}`,
	"č", `{\v{c}}`,
	"Ē", `{\=E}`,
	"Ł", `{\L{}}`,
	"ł", `{\l{}}`,
	"Ń", `{\'N}`,
	"ń", `{\'n}`,
	"‐", "-",
	"–", "--",
	"—", "---",
	"‘", "`",
	"’", "'",
	"“", "``",
	"”", "''",
)

// latexField prepares a metadata string for inclusion in a BibLaTeX field.
func latexField(s string) string {
	return unicodeToLatex.Replace(escapeLatex.Replace(s))
}
