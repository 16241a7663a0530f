package report

import (
	"fmt"
	"html/template"
	"os"

	"github.com/martinsuchenak/vedgeip/internal/model"
)

// HTMLOptions controls the HTML report
type HTMLOptions struct {
	// IncludeEmpty also lists devices without public interfaces. The
	// spreadsheet always lists them; the HTML report does not by default.
	IncludeEmpty bool
}

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{"join": joinBreak}).Parse(`<html>
<head>
	<title>Cisco Public IPs</title>
</head>
<body>
<table border='1'>
	<thead>
		<tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr>
	</thead>
	<tbody>
{{- range .Rows}}
		<tr>{{range .Cells}}<td>{{.}}</td>{{end}}<td>{{join .Names}}</td><td>{{join .Addresses}}</td></tr>
{{- end}}
	</tbody>
</table>
</body>
</html>
`))

type htmlRow struct {
	Cells     []string
	Names     []string
	Addresses []string
}

type htmlPage struct {
	Header []string
	Rows   []htmlRow
}

// WriteHTML writes a single-table HTML report to path. Unless
// opts.IncludeEmpty is set, devices without interfaces are left out.
func WriteHTML(devices *model.DeviceSet, path string, keys []string, opts HTMLOptions) error {
	page := htmlPage{Header: model.HeaderRow(keys)}
	for _, device := range devices.Devices() {
		if !device.HasInterfaces() && !opts.IncludeEmpty {
			continue
		}
		row := htmlRow{
			Names:     device.Interfaces.Names(),
			Addresses: device.Interfaces.Addresses(),
		}
		for _, key := range keys {
			row.Cells = append(row.Cells, device.Field(key))
		}
		page.Rows = append(page.Rows, row)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating html report: %w", err)
	}
	if err := htmlTemplate.Execute(f, page); err != nil {
		f.Close()
		return fmt.Errorf("rendering html report: %w", err)
	}
	return f.Close()
}

// joinBreak escapes each value and joins them with <br>
func joinBreak(values []string) template.HTML {
	var out string
	for i, v := range values {
		if i > 0 {
			out += "<br>"
		}
		out += template.HTMLEscapeString(v)
	}
	return template.HTML(out)
}
