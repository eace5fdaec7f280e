package components

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/folio/internal/contact"
)

// ContactFormProps is the state of the contact form.
type ContactFormProps struct {
	Values contact.Form
	Errors *contact.ValidationError
	// Message is a form-level notice, shown above the fields.
	Message string
	Success bool
}

// ContactForm renders the form. With htmx the form replaces itself with the
// server's response; without it the browser posts and follows the redirect.
func ContactForm(p ContactFormProps) cmp.Node {
	if p.Success {
		return g.Div(
			g.ID("contact-form"),
			g.Class("rounded-xl border border-emerald-700 bg-emerald-900/40 p-6"),
			cmp.Attr("role", "status"),
			g.P(cmp.Text(p.Message)),
		)
	}

	return g.Form(
		g.ID("contact-form"),
		g.Method("post"),
		g.Action("/contact"),
		hx.Post("/contact"),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		g.Class("space-y-5 max-w-xl"),
		cmp.If(p.Message != "", g.P(g.Class("rounded-lg bg-rose-900/60 border border-rose-700 px-4 py-3"), cmp.Attr("role", "alert"), cmp.Text(p.Message))),
		field("name", "Name", "text", p.Values.Name, p.Errors, true),
		field("email", "Email", "email", p.Values.Email, p.Errors, true),
		field("subject", "Subject", "text", p.Values.Subject, p.Errors, false),
		g.Div(
			g.Label(g.For("message"), g.Class("block text-sm font-medium"), cmp.Text("Message")),
			g.Textarea(
				g.ID("message"),
				g.Name("message"),
				cmp.Attr("rows", "6"),
				g.Required(),
				g.Class("mt-1 w-full rounded-lg bg-slate-900 border border-slate-700 px-3 py-2"),
				cmp.If(p.Errors.Field("message") != "", cmp.Attr("aria-invalid", "true")),
				cmp.Text(p.Values.Message),
			),
			fieldError("message", p.Errors),
		),
		// Honeypot, hidden from people.
		g.Div(
			g.Class("hidden"),
			cmp.Attr("aria-hidden", "true"),
			g.Label(g.For("website"), cmp.Text("Website")),
			g.Input(g.ID("website"), g.Name("website"), g.Type("text"), cmp.Attr("tabindex", "-1"), cmp.Attr("autocomplete", "off")),
		),
		g.Button(
			g.Type("submit"),
			g.Class("rounded-full bg-cyan-500 px-6 py-3 font-semibold text-slate-950"),
			cmp.Text("Send message"),
		),
	)
}

func field(name, label, typ, value string, errs *contact.ValidationError, required bool) cmp.Node {
	return g.Div(
		g.Label(g.For(name), g.Class("block text-sm font-medium"), cmp.Text(label)),
		g.Input(
			g.ID(name),
			g.Name(name),
			g.Type(typ),
			g.Value(value),
			cmp.If(required, g.Required()),
			g.Class("mt-1 w-full rounded-lg bg-slate-900 border border-slate-700 px-3 py-2"),
			cmp.If(errs.Field(name) != "", cmp.Attr("aria-invalid", "true")),
		),
		fieldError(name, errs),
	)
}

func fieldError(name string, errs *contact.ValidationError) cmp.Node {
	msg := errs.Field(name)
	if msg == "" {
		return nil
	}
	return g.P(g.ID(name+"-error"), g.Class("mt-1 text-sm text-rose-400"), cmp.Text(msg))
}
