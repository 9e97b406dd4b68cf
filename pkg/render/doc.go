// Package render produces the HTML for notifications and inline field errors
// as templ components. Message text is passed through a strict bluemonday
// policy, so markup in messages is never interpreted.
//
//	html, err := render.Render(ctx, render.Container(center.Active()))
//
// Snapshot follows a notification center and keeps the rendered container
// current for hosts that patch the page with ready HTML.
package render
