package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

const receiptSubject = "Thanks for your order! This is your receipt."

var receiptTmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"price": func(cents int) string {
		return fmt.Sprintf("$%.2f", float64(cents)/100)
	},
}).Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #111;">
    <h1>Your receipt</h1>
    <p>Order <strong>#{{ .OrderID }}</strong> &middot; {{ .Date.Format "Jan 2, 2006" }}</p>
    <p>Sent to {{ .Email }}</p>
    <table style="width: 100%; border-collapse: collapse;">
      {{ range .Products }}
      <tr>
        <td style="padding: 8px 0; border-bottom: 1px solid #eee;">{{ .Name }}</td>
        <td style="padding: 8px 0; border-bottom: 1px solid #eee; text-align: right;">{{ price .Price }}</td>
      </tr>
      {{ end }}
      {{ if .Fee }}
      <tr>
        <td style="padding: 8px 0; border-bottom: 1px solid #eee;">Transaction Fee</td>
        <td style="padding: 8px 0; border-bottom: 1px solid #eee; text-align: right;">{{ price .Fee }}</td>
      </tr>
      {{ end }}
      <tr>
        <td style="padding: 8px 0; font-weight: bold;">Total</td>
        <td style="padding: 8px 0; text-align: right; font-weight: bold;">{{ price .Total }}</td>
      </tr>
    </table>
    <p>Thanks for shopping with us.</p>
  </body>
</html>`))

// RenderReceipt produces the HTML body of the receipt email.
func RenderReceipt(r Receipt) (string, error) {
	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}
