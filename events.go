package scrollreel

import "image"

// eventKind identifies a message handled by Viewer.dispatch.
type eventKind uint8

const (
	evSelectCategory eventKind = iota // user picked a category
	evToggleTheme                     // user flipped the theme
	evResize                          // window size changed
	evScrollBy                        // relative scroll (wheel, arrows)
	evScrollTo                        // absolute scroll, animated when duration > 0
	evSwitchDelayElapsed              // fade-out finished; swap the category
	evRevealSection                   // start fading the new section in
	evFirstFrame                      // frame 1 settled (image or err)
	evFrame                           // a background frame loaded
	evBackgroundDone                  // background fan-out finished
)

var eventKindNames = [...]string{
	evSelectCategory:     "select-category",
	evToggleTheme:        "toggle-theme",
	evResize:             "resize",
	evScrollBy:           "scroll-by",
	evScrollTo:           "scroll-to",
	evSwitchDelayElapsed: "switch-delay-elapsed",
	evRevealSection:      "reveal-section",
	evFirstFrame:         "first-frame",
	evFrame:              "frame",
	evBackgroundDone:     "background-done",
}

func (k eventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// event is a single message for the coordinator. Only the fields relevant
// to kind are set.
type event struct {
	kind eventKind

	category Category
	width    int
	height   int
	scroll   float64
	duration float32

	generation uint64
	index      int
	path       string
	image      image.Image
	err        error
}

// timer delivers ev once remaining seconds of update time have passed.
type timer struct {
	remaining float64
	ev        event
}
