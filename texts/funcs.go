package texts

import (
	"html/template"
	"time"
)

const timeFormat = "2006-01-02 15:04:05"

var funcs = template.FuncMap{
	"fmtTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Local().Format(timeFormat)
	},
	"orDash": func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	},
}
