package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateWelcome greets a freshly registered user.
const TemplateWelcome = "welcome"

var welcomeHTML = template.Must(template.New(TemplateWelcome).Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Lato, sans-serif; color: #222;">
    <h2>Welcome to Events Now, {{.Name}}!</h2>
    <p>Your account is ready. Log in to browse free and pro events or upload your own.</p>
    <p>— The Events Now team</p>
  </body>
</html>`))

// Render produces subject, text and HTML bodies for a named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case TemplateWelcome:
		var buf bytes.Buffer
		if err := welcomeHTML.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		userName := fmt.Sprintf("%v", data["Name"])
		subject = "Welcome to Events Now"
		text = "Welcome to Events Now, " + userName + "! Your account is ready."
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
