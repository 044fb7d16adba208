// Package tui is the terminal presentation of the color picker.
//
// The Model embeds a picker.Controller and acts as its View and Presenter.
// Every input surface of the browser page has a terminal counterpart:
//
//   - the saturation/value panel is a block of colored cells driven by the
//     mouse (press, drag, release) or by the arrow keys when focused
//   - the hue slider is a one-line gradient driven by mouse or arrow keys
//   - the hex and R/G/B fields are text inputs committed on enter or when
//     focus leaves them
//
// Host events arrive on the bridge goroutine. Dispatcher turns them into
// Bubble Tea messages so the controller only ever runs inside Update.
package tui
