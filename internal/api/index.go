package api

import (
	"html/template"
	"log/slog"
	"net/http"
)

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Ubuzima Health Assistant</title>
</head>
<body>
  <h1>Ubuzima Health Assistant</h1>
  <p>Describe your symptoms by text or voice and we will help you find care.</p>
  <h2>Doctor Directory</h2>
  <ul>
    {{range $specialty, $number := .Doctors}}<li>{{$specialty}}: {{$number}}</li>
    {{end}}
  </ul>
</body>
</html>
`

var indexTemplate = template.Must(template.New("index").Parse(indexPage))

// Index renders the landing page with the doctor directory.
func (s *CareService) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, map[string]any{"Doctors": s.directory.All()}); err != nil {
		slog.Error("error rendering index page", "error", err)
	}
}
