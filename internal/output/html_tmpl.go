package output

const htmlTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Dashboard de Gestión de Proyectos</title>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --table-alt: #f1f3f5; --muted: #6c757d; --accent: #0d6efd;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057;
    --table-alt: #0f3460; --muted: #adb5bd; --accent: #5b9aff;
  }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1400px; margin: 0 auto; }
header { margin-bottom: 1.5rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p { color: var(--muted); font-size: .875rem; }
.warning { border-left: 4px solid #fd7e14; padding: .5rem .75rem; margin-bottom: 1rem; background: var(--card-bg); }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: .75rem; margin-bottom: 1.5rem; }
.card { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: .75rem; text-align: center; }
.card .value { font-size: 1.5rem; font-weight: 700; }
.card .label { font-size: .75rem; color: var(--muted); text-transform: uppercase; }
.charts { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1rem; margin-bottom: 1.5rem; }
@media (max-width: 768px) { .charts { grid-template-columns: 1fr; } }
.chart-box { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; }
.chart-box h3 { font-size: .875rem; margin-bottom: .5rem; }
.bar-row { display: grid; grid-template-columns: 10rem 1fr 4rem; gap: .5rem; align-items: center; font-size: .8rem; }
.bar { background: var(--accent); height: .75rem; border-radius: 2px; }
.empty { color: var(--muted); font-style: italic; }
table { width: 100%; border-collapse: collapse; font-size: .8rem; }
th, td { text-align: left; padding: .35rem .5rem; border-bottom: 1px solid var(--border); }
tr:nth-child(even) td { background: var(--table-alt); }
a { color: var(--accent); }
</style>
</head>
<body>
<header>
<h1>Dashboard de Gestión de Proyectos</h1>
<p>{{.Source}}{{if .Sheet}} [{{.Sheet}}]{{end}} &middot; generado {{.Generated}}</p>
<p>Empresa: {{.Filters.Company}} &middot; Estado: {{.Filters.Status}} &middot; Asignado: {{.Filters.Assignee}}{{if or .Filters.From .Filters.To}} &middot; Fecha Inicio: {{.Filters.From}} &ndash; {{.Filters.To}}{{end}}</p>
</header>
{{if .Undated}}<div class="warning">{{.Undated}} tareas sin Fecha Inicio válida quedaron fuera del rango de fechas.</div>{{end}}
<section class="cards">
<div class="card"><div class="value">{{.Metrics.TotalCount}}</div><div class="label">Total Tareas</div></div>
<div class="card"><div class="value">{{hours .Metrics.TotalHours}}</div><div class="label">Total Horas</div></div>
<div class="card"><div class="value">{{.Metrics.InProgressCount}}</div><div class="label">Tareas en Proceso</div></div>
<div class="card"><div class="value">{{.Metrics.DistinctAssignees}}</div><div class="label">Personal Activo</div></div>
</section>
<section class="charts">
{{range .Charts}}<div class="chart-box">
<h3>{{.Title}}</h3>
{{if .Bars}}{{$unit := .Unit}}{{range .Bars}}<div class="bar-row"><span>{{.Label}}</span><div class="bar" style="width: {{.Percent}}%"></div><span title="{{$unit}}">{{.Value}}</span></div>
{{end}}{{else}}<p class="empty">Sin datos</p>{{end}}
</div>
{{end}}</section>
<section>
<h2>Detalles de Tareas</h2>
<table>
<thead><tr><th>Fecha Inicio</th><th>Código</th><th>Tipo</th><th>Horas</th><th>Empresa</th><th>Tipo Tarea</th><th>Resumen</th><th>Estado</th><th>Asignado</th></tr></thead>
<tbody>
{{range .Tasks}}<tr><td>{{.StartDate}}</td><td><a {{issueHref .URL}} target="_blank">{{.Code}}</a></td><td>{{.Type}}</td><td>{{hours .Hours}}</td><td>{{.Company}}</td><td>{{.TaskType}}</td><td>{{.Summary}}</td><td>{{.Status}}</td><td>{{.Assignee}}</td></tr>
{{else}}<tr><td colspan="9" class="empty">Sin datos</td></tr>
{{end}}</tbody>
</table>
</section>
</body>
</html>
`
