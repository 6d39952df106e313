package template

// TemplateRenderer renders named templates with arbitrary data. Data is
// converted through its JSON form, so templates address fields by their JSON
// names.
type TemplateRenderer interface {
	RenderTemplate(name string, data any) (string, error)
}
