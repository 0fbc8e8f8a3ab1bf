package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

var welcomeTpl = template.Must(template.New("welcome").Parse(`
<html>
<body style="font-family: sans-serif; color: #222;">
  <h2>Welcome to KERT, {{.Name}}!</h2>
  <p>Your account for student id <strong>{{.StudentID}}</strong> is ready.</p>
  <p>You can now sign in and browse posts, members and the club history.</p>
  <p style="color:#888; font-size:12px;">If you did not sign up, please contact the staff.</p>
</body>
</html>
`))

// RenderWelcome renders the welcome email from job data.
// Expected keys: Name, StudentID.
func RenderWelcome(data map[string]any) (subject, html string, err error) {
	var buf bytes.Buffer
	if err := welcomeTpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render welcome: %w", err)
	}
	return "Welcome to KERT", buf.String(), nil
}
