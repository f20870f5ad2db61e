package template

import "resumeforge/pkg/models"

// Builtins returns the hardcoded template set. It doubles as the fallback
// when the remote store is unreachable and as the seed data written on first
// use against an empty store.
func Builtins() []models.TemplateDefinition {
	return []models.TemplateDefinition{
		{
			Name:             "Modern",
			Description:      "A clean, modern template with bold colors and clear section dividers.",
			Preamble:         modernPreamble,
			CSSContent:       modernCSS,
			ContactSeparator: `$\cdot$`,
			Active:           true,
		},
		{
			Name:             "Classic",
			Description:      "Traditional resume format suitable for all industries.",
			Preamble:         classicPreamble,
			CSSContent:       classicCSS,
			ContactSeparator: `$|$`,
			Active:           true,
		},
		{
			Name:             "Professional",
			Description:      "Formal template ideal for corporate applications.",
			Preamble:         professionalPreamble,
			CSSContent:       professionalCSS,
			ContactSeparator: `$\cdot$`,
			Active:           true,
		},
		{
			Name:             "Minimalist",
			Description:      "Simple, clean design focusing on content rather than style.",
			Preamble:         minimalistPreamble,
			CSSContent:       minimalistCSS,
			ContactSeparator: `$\cdot$`,
			Active:           true,
		},
		{
			Name:             "Creative",
			Description:      "Stand out with this creative template for design and tech roles.",
			Preamble:         creativePreamble,
			CSSContent:       creativeCSS,
			ContactSeparator: `$\bullet$`,
			Active:           true,
		},
	}
}

// BuiltinByName returns the named builtin, falling back to the default
// template for unknown names. It never fails.
func BuiltinByName(name string) models.TemplateDefinition {
	for _, t := range Builtins() {
		if t.Name == name {
			return t
		}
	}
	for _, t := range Builtins() {
		if t.Name == models.DefaultTemplate {
			return t
		}
	}
	// Unreachable as long as the builtin set carries the default.
	return models.TemplateDefinition{Name: models.DefaultTemplate}
}

const modernPreamble = `\documentclass[11pt,a4paper]{article}
\usepackage{geometry}
\usepackage{hyperref}
\usepackage{fontawesome}
\usepackage{titlesec}
\usepackage{color}
\definecolor{linkcolor}{rgb}{0.0, 0.53, 0.74}

\geometry{left=1.5cm, right=1.5cm, top=2cm, bottom=2cm}

\hypersetup{colorlinks=true, linkcolor=linkcolor, urlcolor=linkcolor}

\titleformat{\section}{\Large\bfseries\color{linkcolor}}{}{0em}{}[\titlerule]
\titlespacing{\section}{0pt}{12pt}{8pt}

\newcommand{\entry}[4]{
  \vspace{0.5em}\noindent\textbf{#1} \hfill #2 \\
  \textit{#3} \hfill #4 \\
}`

const classicPreamble = `\documentclass[12pt,a4paper]{article}
\usepackage{geometry}
\usepackage{hyperref}
\usepackage{fontawesome}
\usepackage{titlesec}

\geometry{left=2.5cm, right=2.5cm, top=2cm, bottom=2cm}

\hypersetup{colorlinks=true, linkcolor=black, urlcolor=black}

\titleformat{\section}{\large\bfseries}{}{0em}{\MakeUppercase}[\titlerule]
\titlespacing{\section}{0pt}{12pt}{8pt}

\newcommand{\entry}[4]{
  \vspace{0.5em}\noindent\textbf{#1} \hfill #2 \\
  \textit{#3} \hfill #4 \\
}`

const professionalPreamble = `\documentclass[11pt,a4paper]{article}
\usepackage{geometry}
\usepackage{hyperref}
\usepackage{fontawesome}
\usepackage{titlesec}
\usepackage{color}
\definecolor{darkblue}{rgb}{0.1, 0.32, 0.46}

\geometry{left=2cm, right=2cm, top=2cm, bottom=2cm}

\hypersetup{colorlinks=true, linkcolor=darkblue, urlcolor=darkblue}

\titleformat{\section}{\Large\bfseries\color{darkblue}}{}{0em}{}
\titlespacing{\section}{0pt}{14pt}{8pt}

\newcommand{\entry}[4]{
  \vspace{0.5em}\noindent\textbf{\large #1} \hfill #2 \\
  \textit{#3} \hfill #4 \\
}`

const minimalistPreamble = `\documentclass[10pt,a4paper]{article}
\usepackage{geometry}
\usepackage{hyperref}
\usepackage{fontawesome}
\usepackage{titlesec}
\usepackage{color}

\geometry{left=1.8cm, right=1.8cm, top=1.8cm, bottom=1.8cm}

\hypersetup{colorlinks=true, linkcolor=black, urlcolor=black}

\titleformat{\section}{\normalsize\bfseries}{}{0em}{}
\titlespacing{\section}{0pt}{10pt}{5pt}

\newcommand{\entry}[4]{
  \vspace{0.3em}\noindent\textbf{#1} \hfill #2 \\
  \textit{#3} \hfill #4 \\
}`

const creativePreamble = `\documentclass[11pt,a4paper]{article}
\usepackage{geometry}
\usepackage{hyperref}
\usepackage{fontawesome}
\usepackage{titlesec}
\usepackage{xcolor}
\definecolor{accent}{rgb}{0.91, 0.3, 0.24}

\geometry{left=1.5cm, right=1.5cm, top=1.5cm, bottom=1.5cm}

\hypersetup{colorlinks=true, linkcolor=accent, urlcolor=accent}

\titleformat{\section}{\Large\bfseries\color{accent}}{}{0em}{}
\titlespacing{\section}{0pt}{15pt}{8pt}

\newcommand{\entry}[4]{
  \vspace{0.5em}\noindent\textbf{\large #1} \hfill #2 \\
  \textit{\color{accent}#3} \hfill #4 \\
}`

const modernCSS = `.resume-modern {
  font-family: 'Roboto', Arial, sans-serif;
  max-width: 800px;
  margin: 0 auto;
  color: #333;
  line-height: 1.5;
}
.resume-modern h1 {
  color: #2c3e50;
  font-size: 2.5rem;
  margin-bottom: 0.5rem;
  border-bottom: 2px solid #3498db;
  padding-bottom: 10px;
}
.resume-modern h2 {
  color: #3498db;
  font-size: 1.8rem;
  margin-top: 1.5rem;
}
.resume-modern h3 {
  color: #2c3e50;
  font-size: 1.3rem;
  margin-top: 1.2rem;
}
.resume-modern a {
  color: #3498db;
  text-decoration: none;
}
.resume-modern a:hover {
  text-decoration: underline;
}`

const classicCSS = `.resume-classic {
  font-family: 'Times New Roman', Times, serif;
  max-width: 800px;
  margin: 0 auto;
  color: #000;
  line-height: 1.6;
}
.resume-classic h1 {
  text-align: center;
  font-size: 2.2rem;
  margin-bottom: 0.5rem;
}
.resume-classic h2 {
  text-align: center;
  font-style: italic;
  color: #444;
  font-size: 1.5rem;
  margin-bottom: 1.5rem;
}
.resume-classic h3 {
  text-transform: uppercase;
  letter-spacing: 1px;
  font-size: 1.2rem;
  border-bottom: 1px solid #000;
  padding-bottom: 5px;
  margin-top: 1.5rem;
}`

const professionalCSS = `.resume-professional {
  font-family: 'Georgia', serif;
  max-width: 800px;
  margin: 0 auto;
  color: #333;
  line-height: 1.6;
}
.resume-professional h1 {
  color: #1a5276;
  font-size: 2.2rem;
  text-transform: uppercase;
  letter-spacing: 2px;
  margin-bottom: 0.5rem;
}
.resume-professional h2 {
  color: #1a5276;
  font-size: 1.6rem;
  border-left: 4px solid #1a5276;
  padding-left: 10px;
  margin: 1.5rem 0 1rem;
}
.resume-professional h3 {
  font-weight: bold;
  font-size: 1.2rem;
  color: #444;
}
.resume-professional a {
  color: #1a5276;
}`

const minimalistCSS = `.resume-minimalist {
  font-family: 'Open Sans', Arial, sans-serif;
  max-width: 800px;
  margin: 0 auto;
  color: #333;
  line-height: 1.5;
}
.resume-minimalist h1 {
  font-weight: 300;
  font-size: 2.4rem;
  color: #000;
  margin-bottom: 5px;
}
.resume-minimalist h2 {
  font-weight: 300;
  color: #555;
  font-size: 1.5rem;
  margin-top: 1.5rem;
  text-transform: uppercase;
  letter-spacing: 1px;
  border-top: 1px solid #eee;
  padding-top: 10px;
}
.resume-minimalist h3 {
  font-weight: 600;
  font-size: 1.1rem;
}
.resume-minimalist a {
  color: #000;
  text-decoration: none;
  border-bottom: 1px dotted #555;
}`

const creativeCSS = `.resume-creative {
  font-family: 'Montserrat', Arial, sans-serif;
  max-width: 800px;
  margin: 0 auto;
  color: #333;
  line-height: 1.6;
  background: linear-gradient(to bottom right, #ffffff, #f9f9f9);
  padding: 20px;
  border-radius: 5px;
}
.resume-creative h1 {
  font-size: 3rem;
  color: #e74c3c;
  margin-bottom: 0.3rem;
  font-weight: 700;
}
.resume-creative h2 {
  color: #e74c3c;
  font-size: 1.5rem;
  position: relative;
  padding-bottom: 10px;
  margin-top: 1.8rem;
}
.resume-creative h2:after {
  content: "";
  position: absolute;
  width: 60px;
  height: 4px;
  background: #e74c3c;
  bottom: 0;
  left: 0;
}
.resume-creative h3 {
  font-size: 1.3rem;
  color: #333;
  font-weight: 600;
}
.resume-creative a {
  color: #e74c3c;
  text-decoration: none;
  font-weight: 600;
}`
