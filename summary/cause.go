package summary

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
)

var templateFuncs = sprig.TxtFuncMap()

const causeTemplate = `{{- $c := .Cause | default "unknown" -}}
{{- if eq $c "unknown" -}}
Lost to unknown forces after {{ .Survived }}
{{- else if hasSuffix " deflect" $c -}}
Struck by a bolt turned back by the {{ trimSuffix " deflect" $c | title }} after {{ .Survived }}
{{- else if hasPrefix "boss " $c -}}
Crushed by the {{ trimPrefix "boss " $c | title }} Boss after {{ .Survived }}
{{- else -}}
Killed by {{ if regexMatch "^[aeiou]" $c }}an{{ else }}a{{ end }} {{ $c | title }} after {{ .Survived }}
{{- end -}}`

const reportTemplate = `{{ repeat 32 "=" }}
Run {{ .ID | trunc 8 }}  {{ .Class | title }}
{{ repeat 32 "-" }}
Score      {{ .Score | int64 }}
Survived   {{ .SurvivedText }}
Level      {{ .Level }}
Kills      {{ .Kills }} ({{ .EliteKills }} elite, {{ .BossKills }} boss)
{{- range $i, $h := .Hexes }}
Hex        {{ $h.Type }} L{{ $h.Level }} @{{ $h.AcquiredKills }} kills
{{- end }}
{{ .CauseText }}
{{ repeat 32 "=" }}`

var (
	causeTmpl  = template.Must(template.New("cause").Funcs(templateFuncs).Parse(causeTemplate))
	reportTmpl = template.Must(template.New("report").Funcs(templateFuncs).Parse(reportTemplate))
)

// FormatSurvived renders a run length as m:ss
func FormatSurvived(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// CauseText renders a death cause tag as a sentence
func CauseText(cause string, survived time.Duration) (string, error) {
	var buf bytes.Buffer
	err := causeTmpl.Execute(&buf, struct {
		Cause    string
		Survived string
	}{strings.TrimSpace(cause), FormatSurvived(survived)})
	if err != nil {
		return "", fmt.Errorf("executing cause template: %w", err)
	}
	return buf.String(), nil
}

// Report renders a multi-line text report of a summary
func Report(s *RunSummary) (string, error) {
	var buf bytes.Buffer
	err := reportTmpl.Execute(&buf, struct {
		*RunSummary
		SurvivedText string
	}{s, FormatSurvived(s.Survived())})
	if err != nil {
		return "", fmt.Errorf("executing report template: %w", err)
	}
	return buf.String(), nil
}
