// Command zipgen writes the fixed-arity tuple types and Zip functions of
// package rop.
package main

import (
	"bytes"
	"flag"
	"go/format"
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"go.uber.org/zap"

	"github.com/ib-77/outcome/internal/logging"
)

const source = `// Code generated by zipgen. DO NOT EDIT.

package rop
{{ range $n := .Arities }}
{{- $ks := untilStep 1 (add1 $n | int) 1 }}
{{- $types := list }}{{ $vals := list }}{{ $params := list }}
{{- range $ks }}
{{- $types = append $types (printf "S%d" .) }}
{{- $vals = append $vals (printf "t.V%d" .) }}
{{- $params = append $params (printf "r%d Result[S%d, F]" . .) }}
{{- end }}
{{- $tp := join ", " $types }}
{{- $tuple := printf "Tuple%d[%s]" $n $tp }}

// Tuple{{ $n }} is an ordered group of {{ $n }} value{{ if gt $n 1 }}s{{ end }}.
type Tuple{{ $n }}[{{ $tp }} any] struct {
{{- range $ks }}
	V{{ . }} S{{ . }}
{{- end }}
}

// Unpack returns the values in order.
func (t {{ $tuple }}) Unpack() {{ if eq $n 1 }}{{ $tp }}{{ else }}({{ $tp }}){{ end }} {
	return {{ join ", " $vals }}
}

// Zip{{ $n }} combines {{ $n }} result{{ if gt $n 1 }}s{{ end }} into one. The first failure, left to right, is
// returned and later results are not inspected.
func Zip{{ $n }}[{{ $tp }}, F any]({{ join ", " $params }}) Result[{{ $tuple }}, F] {
{{- range $ks }}
	if !r{{ . }}.isSuccess {
		return Fail[{{ $tuple }}](r{{ . }}.failure)
	}
{{- end }}
	return Success[{{ $tuple }}, F]({{ $tuple }}{
{{- range $ks }}
		V{{ . }}: r{{ . }}.result,
{{- end }}
	})
}
{{ end }}`

type params struct {
	Arities []int
}

func main() {
	out := flag.String("out", "zip_gen.go", "output file")
	maxArity := flag.Int("max", 8, "largest arity to generate")
	flag.Parse()

	log := logging.New()
	defer func() { _ = log.Sync() }()

	if *maxArity < 1 {
		log.Fatal("arity must be at least 1", zap.Int("max", *maxArity))
	}

	tmpl, err := template.New("zip").Funcs(sprig.TxtFuncMap()).Parse(source)
	if err != nil {
		log.Fatal("could not parse template", zap.Error(err))
	}

	p := params{}
	for n := 1; n <= *maxArity; n++ {
		p.Arities = append(p.Arities, n)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		log.Fatal("could not render template", zap.Error(err))
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal("generated code does not parse", zap.Error(err))
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatal("could not write output", zap.String("file", *out), zap.Error(err))
	}

	log.Info("generated zip functions", zap.String("file", *out), zap.Int("max", *maxArity))
}
