package render

// pageTemplates holds every page template. The shared skeleton keeps the
// markup minimal; styling is a single embedded stylesheet so pages work
// offline with no asset pipeline.
const pageTemplates = `
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.}}</title>
<style>
body { font-family: Georgia, serif; max-width: 40rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
nav { display: flex; justify-content: space-between; margin: 1.5rem 0; }
nav a { text-decoration: none; }
.crumbs { font-size: 0.9rem; color: #666; }
.grid { display: flex; flex-wrap: wrap; gap: 0.5rem; list-style: none; padding: 0; }
.grid a { display: inline-block; min-width: 2.2rem; text-align: center; padding: 0.3rem 0.5rem; border: 1px solid #ccc; border-radius: 4px; text-decoration: none; }
blockquote { font-size: 1.2rem; line-height: 1.6; margin: 1.5rem 0; }
</style>
</head>
<body>
{{end}}

{{define "foot"}}</body>
</html>
{{end}}

{{define "verse"}}{{template "head" printf "%s %d:%d" .BookName .Chapter .Verse}}
<p class="crumbs"><a href="/">Books</a> &rsaquo; <a href="/{{.BookSlug}}/">{{.BookName}}</a> &rsaquo; <a href="/{{.BookSlug}}/{{.Chapter}}/">Chapter {{.Chapter}}</a></p>
<h1>{{.BookName}} {{.Chapter}}:{{.Verse}}</h1>
<blockquote>{{.Text}}</blockquote>
<p class="crumbs">Verse {{.Verse}} of {{.TotalVerses}}</p>
<nav>
{{if .Prev}}<a href="{{refURL .Prev}}" rel="prev">&larr; Previous verse</a>{{else}}<span></span>{{end}}
{{if .Next}}<a href="{{refURL .Next}}" rel="next">Next verse &rarr;</a>{{else}}<span></span>{{end}}
</nav>
{{template "foot"}}{{end}}

{{define "chapter"}}{{template "head" printf "%s %d" .BookName .Chapter}}
<p class="crumbs"><a href="/">Books</a> &rsaquo; <a href="/{{.BookSlug}}/">{{.BookName}}</a></p>
<h1>{{.BookName}} — Chapter {{.Chapter}}</h1>
<ul class="grid">
{{- $h := . }}
{{- range seq .VerseCount}}
<li><a href="/{{$h.BookSlug}}/{{$h.Chapter}}/{{.}}/">{{.}}</a></li>
{{- end}}
</ul>
{{template "foot"}}{{end}}

{{define "book"}}{{template "head" .BookName}}
<p class="crumbs"><a href="/">Books</a></p>
<h1>{{.BookName}}</h1>
<ul class="grid">
{{- $h := . }}
{{- range .Chapters}}
<li><a href="/{{$h.BookSlug}}/{{.}}/">{{.}}</a></li>
{{- end}}
</ul>
{{template "foot"}}{{end}}

{{define "home"}}{{template "head" "Bible — verse by verse"}}
<h1>The Bible, verse by verse</h1>
<ul>
{{- range .}}
<li><a href="/{{.Slug}}/">{{.Name}}</a></li>
{{- end}}
</ul>
{{template "foot"}}{{end}}
`
