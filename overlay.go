package scrollreel

import "strings"

// Overlay is the full-window loading indicator. After a first-frame failure
// it shows the unresolved path instead.
type Overlay struct {
	Visible bool
	Failed  bool
	Lines   []string
}

func (o *Overlay) showLoading() {
	o.Visible = true
	o.Failed = false
	o.Lines = []string{"Loading..."}
}

func (o *Overlay) hide() {
	o.Visible = false
	o.Failed = false
	o.Lines = nil
}

// fail replaces the indicator with a fatal error naming path verbatim.
func (o *Overlay) fail(path string) {
	o.Visible = true
	o.Failed = true
	o.Lines = []string{
		"Error: Missing Image",
		"The viewer is looking for this exact file, but cannot find it:",
		path,
		"Check the asset directory the viewer was started with.",
	}
}

// Message returns the overlay text joined by newlines.
func (o *Overlay) Message() string {
	return strings.Join(o.Lines, "\n")
}
