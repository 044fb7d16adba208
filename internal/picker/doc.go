// Package picker holds the color picker's state machine.
//
// A Controller keeps one canonical HSV value and five ways to change it:
// the saturation/value panel (pointer down, move and up with capture), the
// hue slider, the hex field, the three RGB fields, and the host. Every
// change is followed by a render of all display surfaces from that state.
//
// Changes made by the user are reported to the host through a Notifier.
// Changes that came from the host (tool input, tool result) are rendered
// but never reported back.
//
// The controller is single-threaded. Host events arrive on the bridge's
// reader goroutine and must be posted to the same loop that delivers user
// input; Loop provides one for callers without a UI framework.
package picker
