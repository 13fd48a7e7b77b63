// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

// indexTemplate is the dashboard page: filter form, overview counts, chart
// frames keyed by the current query string, and the sampled table view.
const indexTemplate = `<!DOCTYPE html>
<html>
<head>
<title>CORD-19 Data Explorer</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
form { background: #f4f4f4; padding: 1em; border-radius: 6px; margin-bottom: 1.5em; }
form label { margin-right: 1em; }
form input[type=number] { width: 5em; }
.overview span { display: inline-block; margin-right: 2em; font-size: 1.1em; }
.overview b { font-size: 1.4em; }
.error { background: #fde8e8; color: #8a1c1c; padding: 0.8em; border-radius: 6px; margin-bottom: 1em; }
iframe { border: 1px solid #ddd; border-radius: 6px; width: 100%; height: 540px; margin-bottom: 1.5em; }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; padding: 0.4em 0.8em; border-bottom: 1px solid #ddd; }
</style>
</head>
<body>
<h1>CORD-19 Data Explorer</h1>
<p>Interactive exploration of COVID-19 research paper metadata.</p>

<form method="get" action="/">
	<label>Year from <input type="number" name="year_from" value="{{.Filters.YearFrom}}" min="{{.MinYear}}" max="{{.MaxYear}}"></label>
	<label>to <input type="number" name="year_to" value="{{.Filters.YearTo}}" min="{{.MinYear}}" max="{{.MaxYear}}"></label>
	<label>Journal contains <input type="text" name="journal" value="{{.Filters.Journal}}"></label>
	<label>Min abstract words <input type="number" name="min_abstract" value="{{.Filters.MinAbstractWords}}" min="0"></label>
	<label>Sample rows <input type="number" name="rows" value="{{.Filters.Rows}}" min="1" max="50"></label>
	<label>Top journals <input type="number" name="top_journals" value="{{.Filters.TopJournals}}" min="1" max="20"></label>
	<label>Top words <input type="number" name="top_words" value="{{.Filters.TopWords}}" min="1" max="30"></label>
	<label><input type="checkbox" name="abstracts" value="1" {{if .Filters.Abstracts}}checked{{end}}> Analyze abstracts</label>
	<label><input type="checkbox" name="wordcloud" value="1" {{if .Filters.WordCloud}}checked{{end}}> Word cloud (memory heavy)</label>
	<button type="submit">Apply</button>
</form>

<div class="overview">
	<span>Total papers<br><b>{{.TotalRows}}</b></span>
	<span>Filtered papers<br><b>{{.FilteredRows}}</b></span>
	<span>Date range<br><b>{{.MinYear}} &ndash; {{.MaxYear}}</b></span>
	<span><a href="/download?{{.Query}}">Download filtered CSV</a></span>
</div>

{{if .Error}}<div class="error">{{.Error}}</div>{{end}}

<h2>Publications Over Time</h2>
<iframe src="/charts/by_year?{{.Query}}"></iframe>

<h2>Journal Analysis</h2>
<iframe src="/charts/top_journals?{{.Query}}"></iframe>

<h2>Word Analysis</h2>
<iframe src="/charts/word_frequency?{{.Query}}"></iframe>
{{if .Filters.WordCloud}}
<h2>Word Cloud</h2>
<iframe src="/charts/word_cloud?{{.Query}}"></iframe>
{{end}}

<h2>Sample Data</h2>
<table>
	<tr><th>Title</th><th>Journal</th><th>Year</th><th>Abstract words</th></tr>
	{{range .Sample}}
	<tr><td>{{.Title}}</td><td>{{.Journal}}</td><td>{{.Year}}</td><td>{{.AbstractWords}}</td></tr>
	{{end}}
</table>
</body>
</html>
`
